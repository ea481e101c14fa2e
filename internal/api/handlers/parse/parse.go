// Package parse 提供食譜抽取與份數換算的 HTTP 處理程序
package parse

import (
	"errors"
	"net/http"

	"recipe-scaler/internal/core/cache"
	"recipe-scaler/internal/core/extract"
	"recipe-scaler/internal/core/fetch"
	"recipe-scaler/internal/core/scale"
	"recipe-scaler/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 食譜抽取處理程序
type Handler struct {
	fetcher *fetch.Fetcher
	store   cache.Store
}

// NewHandler 創建食譜抽取處理程序
func NewHandler(fetcher *fetch.Fetcher, store cache.Store) *Handler {
	return &Handler{
		fetcher: fetcher,
		store:   store,
	}
}

// ParseResponse 抽取成功的響應
type ParseResponse struct {
	Recipe            *common.Recipe `json:"recipe"`
	Cached            bool           `json:"cached"`
	FetchTimeMs       int64          `json:"fetchTime,omitempty"` // 毫秒；快取命中時省略
	Via               string         `json:"via,omitempty"`       // direct 或 firecrawl
	SuggestedServings []int          `json:"suggestedServings"`
}

// HandleParse 處理 GET /api/v1/parse?url=...
// 流程：驗證網址 → 查快取 → 抓取 → 三層抽取 → 寫快取
func (h *Handler) HandleParse(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		respondError(c, common.ErrMissingURL, "請以 url 參數提供食譜頁面網址")
		return
	}

	if err := fetch.ValidateURL(rawURL); err != nil {
		var customErr *common.CustomError
		if errors.As(err, &customErr) {
			respondError(c, customErr, "請確認網址為公開的 HTTP/HTTPS 頁面")
			return
		}
		respondError(c, common.ErrInvalidURL, "請確認網址格式正確")
		return
	}

	ctx := c.Request.Context()

	// 查快取
	if h.store != nil {
		if recipe, ok := h.store.Get(ctx, rawURL); ok {
			c.JSON(http.StatusOK, ParseResponse{
				Recipe:            recipe,
				Cached:            true,
				SuggestedServings: scale.SuggestedServings(scale.ParseServings(recipe.Servings)),
			})
			return
		}
	}

	// 抓取頁面
	result, err := h.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		var customErr *common.CustomError
		if errors.As(err, &customErr) {
			respondError(c, customErr, "請確認網址可以正常開啟後重試")
			return
		}
		respondError(c, common.ErrFetchFailed, "請確認網址可以正常開啟後重試")
		return
	}

	// 三層抽取
	recipe := extract.Parse(result.HTML, rawURL)
	if !recipe.Found() {
		common.LogInfo("頁面中找不到食譜",
			zap.String("domain", result.Domain),
			zap.String("via", result.Via),
		)
		respondError(c, common.ErrNoRecipeFound,
			"請確認網址指向單一食譜頁面，而不是列表或首頁")
		return
	}

	// 寫快取；寫入失敗不影響回應
	if h.store != nil {
		if err := h.store.Set(ctx, rawURL, recipe); err != nil {
			common.LogWarn("快取寫入失敗",
				zap.String("url", rawURL),
				zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, ParseResponse{
		Recipe:            recipe,
		Cached:            false,
		FetchTimeMs:       result.FetchTime,
		Via:               result.Via,
		SuggestedServings: scale.SuggestedServings(scale.ParseServings(recipe.Servings)),
	})
}

// ScaleRequest 份數換算請求
type ScaleRequest struct {
	Recipe         *common.Recipe `json:"recipe" binding:"required"`
	TargetServings int            `json:"target_servings" binding:"required"`
}

// ScaleResponse 份數換算響應
type ScaleResponse struct {
	Recipe            *common.ScaledRecipe `json:"recipe"`
	SuggestedServings []int                `json:"suggestedServings"`
}

// HandleScale 處理 POST /api/v1/scale
// 目標份數夾到合理範圍後換算，原始食譜不變
func (h *Handler) HandleScale(c *gin.Context) {
	var req ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, common.ErrInvalidRequest.WithMessage("請求格式錯誤"),
			"請提供 recipe 與 target_servings 欄位")
		return
	}

	if !req.Recipe.Found() {
		respondError(c, common.ErrInvalidRequest.WithMessage("食譜內容不完整"),
			"食譜必須包含食材與步驟")
		return
	}

	target := scale.ClampServings(req.TargetServings)
	scaled := scale.Scale(req.Recipe, target)

	common.LogInfo("份數換算完成",
		zap.String("title", req.Recipe.Title),
		zap.Int("target_servings", target),
		zap.Float64("multiplier", scaled.ScalingMultiplier),
	)

	c.JSON(http.StatusOK, ScaleResponse{
		Recipe:            scaled,
		SuggestedServings: scale.SuggestedServings(scale.ParseServings(req.Recipe.Servings)),
	})
}

// respondError 以統一格式回應錯誤
func respondError(c *gin.Context, err *common.CustomError, suggestion string) {
	c.JSON(err.Status, common.ErrorResponse{
		Code:       err.Code,
		Message:    err.Message,
		Suggestion: suggestion,
	})
}
