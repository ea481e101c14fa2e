package textutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"recipe-scaler/internal/pkg/common"
)

var (
	iso8601Regex = regexp.MustCompile(`^pt(?:(\d+)h)?(?:(\d+)m)?$`)
	hourRegex    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hours?|hrs?|h)\b`)
	minuteRegex  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:minutes?|mins?|m)\b`)
	secondRegex  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:seconds?|secs?|s)\b`)
)

// ParseDuration 解析時間長度：ISO-8601（PT1H30M）或自由文字（"1 hour 30 mins"）
// 各時間單位相加為總分鐘數；沒有任何時間單位時回傳 nil（光一個數字不算時間）
// 範圍如 "8 to 10 minutes" 取貼著單位的那個數字，也就是較大的後界
func ParseDuration(text string) *common.Duration {
	if text == "" {
		return nil
	}

	clean := strings.ToLower(strings.TrimSpace(text))

	// ISO 8601 格式
	if m := iso8601Regex.FindStringSubmatch(clean); m != nil {
		hours := atoiDefault(m[1])
		minutes := atoiDefault(m[2])
		total := hours*60 + minutes

		return &common.Duration{
			Minutes: total,
			Display: FormatDuration(total),
			ISO8601: strings.ToUpper(strings.TrimSpace(text)),
		}
	}

	// 自由文字格式：小時、分鐘、秒各自比對後相加
	var total float64
	if m := hourRegex.FindStringSubmatch(clean); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		total += h * 60
	}
	if m := minuteRegex.FindStringSubmatch(clean); m != nil {
		mins, _ := strconv.ParseFloat(m[1], 64)
		total += mins
	}
	if m := secondRegex.FindStringSubmatch(clean); m != nil {
		s, _ := strconv.ParseFloat(m[1], 64)
		total += s / 60
	}

	if total > 0 {
		rounded := int(math.Round(total))
		return &common.Duration{
			Minutes: rounded,
			Display: FormatDuration(rounded),
			ISO8601: fmt.Sprintf("PT%dM", rounded),
		}
	}

	return nil
}

// FormatDuration 將分鐘數格式化為人類可讀字串
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minute%s", minutes, plural(minutes))
	}

	hours := minutes / 60
	remaining := minutes % 60

	if remaining == 0 {
		return fmt.Sprintf("%d hour%s", hours, plural(hours))
	}
	return fmt.Sprintf("%d hour%s %d minute%s", hours, plural(hours), remaining, plural(remaining))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func atoiDefault(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
