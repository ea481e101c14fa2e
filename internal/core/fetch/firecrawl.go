package fetch

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"
)

// firecrawlResponse Firecrawl /v2/scrape 的回應格式
type firecrawlResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Data    struct {
		HTML     string `json:"html"`
		Markdown string `json:"markdown"`
		Metadata struct {
			Title      string `json:"title"`
			SourceURL  string `json:"sourceURL"`
			StatusCode int    `json:"statusCode"`
		} `json:"metadata"`
	} `json:"data"`
}

// FirecrawlClient Firecrawl 代理抓取客戶端
// 用於目標站點擋爬蟲或需要執行 JavaScript 的情況
type FirecrawlClient struct {
	config *config.Config
	client *resty.Client
}

// NewFirecrawlClient 創建 Firecrawl 客戶端
func NewFirecrawlClient(cfg *config.Config) *FirecrawlClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Firecrawl.BaseURL, "/")).
		SetTimeout(cfg.Firecrawl.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Firecrawl.APIKey))

	return &FirecrawlClient{
		config: cfg,
		client: client,
	}
}

// Scrape 透過 Firecrawl 抓取頁面並回傳 HTML
func (c *FirecrawlClient) Scrape(ctx context.Context, rawURL string) (string, error) {
	if strings.TrimSpace(c.config.Firecrawl.APIKey) == "" {
		return "", common.NewError(common.ErrCodeServiceUnavailable,
			"Firecrawl API Key 未設定", common.ErrServiceUnavailable.Status, nil)
	}

	var result firecrawlResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"url":     rawURL,
			"formats": []string{"html"},
		}).
		SetResult(&result).
		Post("/v2/scrape")
	if err != nil {
		if ctx.Err() != nil || strings.Contains(err.Error(), "timeout") {
			return "", common.NewError(common.ErrCodeRequestTimeout,
				"Firecrawl 請求逾時", common.ErrRequestTimeout.Status, err)
		}
		return "", common.NewError(common.ErrCodeFetchFailed,
			"Firecrawl 請求失敗", common.ErrFetchFailed.Status, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", common.NewError(common.ErrCodeFetchFailed,
			fmt.Sprintf("Firecrawl 回應 HTTP %d", resp.StatusCode()),
			common.ErrFetchFailed.Status, nil)
	}

	if !result.Success {
		message := result.Error
		if message == "" {
			message = result.Message
		}
		if message == "" {
			message = "Firecrawl 回報錯誤"
		}
		return "", common.NewError(common.ErrCodeFetchFailed, message,
			common.ErrFetchFailed.Status, nil)
	}

	if result.Data.HTML == "" {
		return "", common.NewError(common.ErrCodeFetchFailed,
			"Firecrawl 回應未包含 HTML 內容", common.ErrFetchFailed.Status, nil)
	}

	common.LogInfo("Firecrawl 抓取完成",
		zap.String("url", rawURL),
		zap.Int("html_length", len(result.Data.HTML)))

	return result.Data.HTML, nil
}
