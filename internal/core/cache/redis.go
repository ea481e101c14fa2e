package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"
)

// RedisStore Redis 快取後端，食譜以 JSON 序列化儲存
// 過期交由 Redis 的 TTL 處理，不需要清理協程
type RedisStore struct {
	client *redis.Client
	config *config.Config
	hits   int64
	misses int64
}

// NewRedisStore 創建 Redis 快取後端
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("快取管理員已初始化",
		zap.String("後端", "redis"),
		zap.String("位址", cfg.Cache.RedisAddr),
		zap.Duration("存活時間", cfg.Cache.TTL),
	)

	return &RedisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get 以網址查快取
func (s *RedisStore) Get(ctx context.Context, rawURL string) (*common.Recipe, bool) {
	key := s.redisKey(rawURL)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			common.LogWarn("Redis 讀取失敗",
				zap.String("鍵", key),
				zap.Error(err))
		}
		atomic.AddInt64(&s.misses, 1)
		common.LogCacheMiss("redis", key)
		return nil, false
	}

	var recipe common.Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		common.LogWarn("Redis 快取內容損毀",
			zap.String("鍵", key),
			zap.Error(err))
		atomic.AddInt64(&s.misses, 1)
		return nil, false
	}

	atomic.AddInt64(&s.hits, 1)
	common.LogCacheHit("redis", key)
	return &recipe, true
}

// Set 寫入快取
func (s *RedisStore) Set(ctx context.Context, rawURL string, recipe *common.Recipe) error {
	key := s.redisKey(rawURL)

	data, err := json.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.config.Cache.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	common.LogInfo("快取已儲存",
		zap.String("鍵", key),
	)
	return nil
}

// Stats 回傳快取統計；條目數與淘汰數由 Redis 管理，不在此累計
func (s *RedisStore) Stats() Stats {
	return Stats{
		Hits:   atomic.LoadInt64(&s.hits),
		Misses: atomic.LoadInt64(&s.misses),
	}
}

// redisKey 生成 Redis 鍵，網址雜湊後加前綴，避免過長的鍵
func (s *RedisStore) redisKey(rawURL string) string {
	sum := sha256.Sum256([]byte(NormalizeKey(rawURL)))
	return "recipe:url:" + hex.EncodeToString(sum[:])
}
