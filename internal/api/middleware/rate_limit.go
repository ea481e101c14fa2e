package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"recipe-scaler/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiter 以客戶端 IP 為單位的滑動視窗限流器
// 每個 IP 記錄視窗內的請求時間戳，過期的時間戳在查核時順手剔除
type RateLimiter struct {
	mu          sync.Mutex
	requests    map[string][]time.Time
	maxRequests int
	window      time.Duration
}

// NewRateLimiter 創建限流器並啟動閒置條目的清理協程
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests:    make(map[string][]time.Time),
		maxRequests: maxRequests,
		window:      window,
	}

	go rl.startCleanup()
	return rl
}

// Check 查核此 IP 是否仍在限額內
// 回傳是否放行、剩餘額度與視窗重置時間
func (rl *RateLimiter) Check(ip string) (allowed bool, remaining int, resetTime time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	windowStart := now.Add(-rl.window)

	// 剔除視窗外的時間戳
	recent := rl.requests[ip][:0]
	for _, ts := range rl.requests[ip] {
		if ts.After(windowStart) {
			recent = append(recent, ts)
		}
	}

	allowed = len(recent) < rl.maxRequests
	if allowed {
		recent = append(recent, now)
	}
	rl.requests[ip] = recent

	remaining = rl.maxRequests - len(recent)
	if remaining < 0 {
		remaining = 0
	}

	oldest := now
	if len(recent) > 0 {
		oldest = recent[0]
	}
	return allowed, remaining, oldest.Add(rl.window)
}

// startCleanup 定期清掉長時間沒有請求的 IP，避免 map 無限成長
func (rl *RateLimiter) startCleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-rl.window * 2)

		rl.mu.Lock()
		for ip, timestamps := range rl.requests {
			if len(timestamps) == 0 || timestamps[len(timestamps)-1].Before(cutoff) {
				delete(rl.requests, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit 限流中間件，回應帶 X-RateLimit-* 標頭
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(requests, window)

	return func(c *gin.Context) {
		allowed, remaining, resetTime := limiter.Check(c.ClientIP())

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", requests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime.Unix()))

		if !allowed {
			common.LogInfo("Rate limit exceeded",
				zap.String("ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)

			retryAfter := int(time.Until(resetTime).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, common.ErrorResponse{
				Code:       common.ErrCodeTooManyRequests,
				Message:    "請求過於頻繁，請稍後再試",
				Suggestion: fmt.Sprintf("請在 %d 秒後重試", retryAfter),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
