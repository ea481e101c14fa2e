package common

import (
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code       string `json:"error"`                // 錯誤代碼
	Message    string `json:"message"`              // 錯誤信息
	Suggestion string `json:"suggestion,omitempty"` // 給使用者的建議
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code       string // 錯誤代碼
	Message    string // 錯誤信息
	Suggestion string // 給使用者的建議
	Err        error  // 原始錯誤
	Status     int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// WithMessage 以新的訊息複製錯誤，保留代碼與狀態碼
func (e *CustomError) WithMessage(message string) *CustomError {
	clone := *e
	clone.Message = message
	return &clone
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeMissingURL       = "MISSING_URL"        // 400
	ErrCodeInvalidURL       = "INVALID_URL"        // 400
	ErrCodeForbiddenURL     = "FORBIDDEN_URL"      // 403
	ErrCodeNotFound         = "NOT_FOUND"          // 404
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // 405
	ErrCodeRequestTimeout   = "REQUEST_TIMEOUT"    // 408
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"  // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504

	// 業務錯誤
	ErrCodeFetchFailed   = "FETCH_FAILED"    // 上游網頁抓取失敗
	ErrCodeNoRecipeFound = "NO_RECIPE_FOUND" // 三層抽取全部落空
)

// 預定義錯誤
var (
	// 客戶端錯誤
	ErrInvalidRequest   = NewError(ErrCodeInvalidRequest, "無效的請求", http.StatusBadRequest, nil)
	ErrMissingURL       = NewError(ErrCodeMissingURL, "缺少 url 參數", http.StatusBadRequest, nil)
	ErrInvalidURL       = NewError(ErrCodeInvalidURL, "無效的網址格式", http.StatusBadRequest, nil)
	ErrForbiddenURL     = NewError(ErrCodeForbiddenURL, "不允許的網址", http.StatusForbidden, nil)
	ErrNotFound         = NewError(ErrCodeNotFound, "資源不存在", http.StatusNotFound, nil)
	ErrMethodNotAllowed = NewError(ErrCodeMethodNotAllowed, "不支持的請求方法", http.StatusMethodNotAllowed, nil)
	ErrRequestTimeout   = NewError(ErrCodeRequestTimeout, "請求超時", http.StatusRequestTimeout, nil)
	ErrTooManyRequests  = NewError(ErrCodeTooManyRequests, "請求過於頻繁", http.StatusTooManyRequests, nil)

	// 服務器錯誤
	ErrInternalError      = NewError(ErrCodeInternalError, "服務器內部錯誤", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "服務暫時不可用", http.StatusServiceUnavailable, nil)
	ErrGatewayTimeout     = NewError(ErrCodeGatewayTimeout, "網關超時", http.StatusGatewayTimeout, nil)

	// 業務錯誤
	ErrFetchFailed   = NewError(ErrCodeFetchFailed, "無法抓取目標網頁", http.StatusBadGateway, nil)
	ErrNoRecipeFound = NewError(ErrCodeNoRecipeFound, "頁面中找不到食譜", http.StatusNotFound, nil)
	ErrCacheDisabled = NewError("CACHE_DISABLED", "緩存已禁用", http.StatusServiceUnavailable, nil)
	ErrCacheFull     = NewError("CACHE_FULL", "緩存已滿", http.StatusServiceUnavailable, nil)
)
