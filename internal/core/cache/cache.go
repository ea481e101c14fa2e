// Package cache 以正規化網址為鍵快取抽取完成的食譜
// 提供記憶體與 Redis 兩種後端，由設定檔的 cache.backend 選擇
package cache

import (
	"context"
	"net/url"

	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"
)

// Store 食譜快取介面
type Store interface {
	// Get 以網址查快取，未命中或過期回傳 false
	Get(ctx context.Context, rawURL string) (*common.Recipe, bool)
	// Set 寫入快取，容量滿且無法騰出空間時回傳錯誤
	Set(ctx context.Context, rawURL string, recipe *common.Recipe) error
	// Stats 回傳命中統計
	Stats() Stats
}

// Stats 快取統計
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
}

// New 依設定建立快取後端；快取停用時回傳 nil
func New(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("快取已停用")
		return nil, nil
	}

	if cfg.Cache.Backend == "redis" {
		return NewRedisStore(cfg)
	}
	return NewManager(cfg), nil
}

// NormalizeKey 把網址正規化為快取鍵：去掉 fragment，其餘原樣保留
// 同一頁面帶不同錨點時必須命中同一筆快取
func NormalizeKey(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.Fragment = ""
	return parsed.String()
}
