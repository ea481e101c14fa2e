// Package fetch 負責抓取目標網頁的 HTML
// 直接抓取失敗時可依設定改走 Firecrawl 代理
package fetch

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"
)

// 私有網段（RFC 1918），禁止對內網發請求
var privateIPRegex = regexp.MustCompile(`^(10\.|172\.(1[6-9]|2[0-9]|3[01])\.|192\.168\.)`)

// Result 抓取結果
type Result struct {
	HTML      string
	Domain    string
	FetchTime int64  // 毫秒
	Via       string // direct 或 firecrawl
}

// Fetcher 網頁抓取器
type Fetcher struct {
	config    *config.Config
	client    *resty.Client
	firecrawl *FirecrawlClient
}

// NewFetcher 創建網頁抓取器
func NewFetcher(cfg *config.Config) *Fetcher {
	client := resty.New().
		SetTimeout(cfg.Fetch.Timeout).
		SetHeader("User-Agent", cfg.Fetch.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.5").
		SetHeader("Accept-Encoding", "gzip, deflate")

	return &Fetcher{
		config:    cfg,
		client:    client,
		firecrawl: NewFirecrawlClient(cfg),
	}
}

// ValidateURL 檢查網址是否允許抓取
// 只放行 http/https，擋下 localhost 與私有網段，避免被當作內網探針
func ValidateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return common.ErrInvalidURL
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return common.ErrForbiddenURL.WithMessage("只允許 HTTP 與 HTTPS 網址")
	}

	hostname := strings.ToLower(parsed.Hostname())
	if hostname == "" {
		return common.ErrInvalidURL
	}
	if hostname == "localhost" || hostname == "127.0.0.1" || hostname == "::1" {
		return common.ErrForbiddenURL.WithMessage("不允許本機網址")
	}
	if privateIPRegex.MatchString(hostname) {
		return common.ErrForbiddenURL.WithMessage("不允許私有網段的網址")
	}

	return nil
}

// Fetch 抓取網頁 HTML，依 Firecrawl 模式決定抓取路徑：
//
//	off      只直接抓取
//	fallback 先直接抓取，失敗改走 Firecrawl
//	prefer   先走 Firecrawl，失敗改直接抓取
//	only     只走 Firecrawl
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	mode := f.config.FirecrawlMode()
	switch mode {
	case "only":
		return f.fetchFirecrawl(ctx, rawURL)
	case "prefer":
		result, err := f.fetchFirecrawl(ctx, rawURL)
		if err == nil {
			return result, nil
		}
		common.LogWarn("Firecrawl 抓取失敗，改為直接抓取",
			zap.String("url", rawURL),
			zap.Error(err))
		return f.fetchDirect(ctx, rawURL)
	case "fallback":
		result, err := f.fetchDirect(ctx, rawURL)
		if err == nil {
			return result, nil
		}
		common.LogWarn("直接抓取失敗，改走 Firecrawl",
			zap.String("url", rawURL),
			zap.Error(err))
		return f.fetchFirecrawl(ctx, rawURL)
	default:
		return f.fetchDirect(ctx, rawURL)
	}
}

// fetchDirect 直接向目標站點發 GET 請求
func (f *Fetcher) fetchDirect(ctx context.Context, rawURL string) (*Result, error) {
	start := time.Now()

	resp, err := f.client.R().
		SetContext(ctx).
		Get(rawURL)
	if err != nil {
		if ctx.Err() != nil || strings.Contains(err.Error(), "timeout") {
			return nil, common.NewError(common.ErrCodeRequestTimeout,
				"目標網站回應逾時", common.ErrRequestTimeout.Status, err)
		}
		return nil, common.NewError(common.ErrCodeFetchFailed,
			"無法連線到目標網站", common.ErrFetchFailed.Status, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, common.NewError(common.ErrCodeFetchFailed,
			fmt.Sprintf("目標網站回應 HTTP %d", resp.StatusCode()),
			common.ErrFetchFailed.Status, nil)
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "text/html") &&
		!strings.Contains(contentType, "application/xhtml") {
		return nil, common.NewError(common.ErrCodeFetchFailed,
			fmt.Sprintf("目標網址不是 HTML 頁面（%s）", contentType),
			common.ErrFetchFailed.Status, nil)
	}

	body := resp.Body()
	if maxSize := f.config.Fetch.MaxBodySize; maxSize > 0 && int64(len(body)) > maxSize {
		return nil, common.NewError(common.ErrCodeFetchFailed,
			"目標頁面超過大小上限", common.ErrFetchFailed.Status, nil)
	}

	fetchTime := time.Since(start).Milliseconds()
	parsed, _ := url.Parse(rawURL)
	domain := ""
	if parsed != nil {
		domain = parsed.Hostname()
	}

	common.LogInfo("網頁抓取完成",
		zap.String("domain", domain),
		zap.Int64("fetch_time_ms", fetchTime),
		zap.Int("html_length", len(body)))

	return &Result{
		HTML:      string(body),
		Domain:    domain,
		FetchTime: fetchTime,
		Via:       "direct",
	}, nil
}

func (f *Fetcher) fetchFirecrawl(ctx context.Context, rawURL string) (*Result, error) {
	start := time.Now()

	html, err := f.firecrawl.Scrape(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	parsed, _ := url.Parse(rawURL)
	domain := ""
	if parsed != nil {
		domain = parsed.Hostname()
	}

	return &Result{
		HTML:      html,
		Domain:    domain,
		FetchTime: time.Since(start).Milliseconds(),
		Via:       "firecrawl",
	}, nil
}
