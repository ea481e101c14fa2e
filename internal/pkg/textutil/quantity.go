package textutil

import (
	"regexp"
	"strconv"
	"strings"

	"recipe-scaler/internal/pkg/common"
)

var (
	rangeRegex    = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:-|–|—|to)\s*(\d+(?:\.\d+)?)$`)
	fractionRegex = regexp.MustCompile(`^(?:(\d+)\s+)?(\d+)/(\d+)$`)
)

// Unicode 分數字元轉為 ASCII 分數，前面補空格保住詞界（"1½" → "1 1/2"）
var vulgarFractions = strings.NewReplacer(
	"¼", " 1/4", "½", " 1/2", "¾", " 3/4",
	"⅐", " 1/7", "⅑", " 1/9", "⅒", " 1/10",
	"⅓", " 1/3", "⅔", " 2/3",
	"⅕", " 1/5", "⅖", " 2/5", "⅗", " 3/5", "⅘", " 4/5",
	"⅙", " 1/6", "⅚", " 5/6",
	"⅛", " 1/8", "⅜", " 3/8", "⅝", " 5/8", "⅞", " 7/8",
)

// NormalizeVulgarFractions 把 Unicode 分數字元換成 ASCII 形式並整理空白
func NormalizeVulgarFractions(text string) string {
	replaced := vulgarFractions.Replace(text)
	if replaced == text {
		return text
	}
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(replaced, " "))
}

// ParseQuantity 解析數量字串
// 純數字回傳數值；範圍（"2-3"、"2 to 3"）與分數（"1/2"、"2 1/4"）
// 保留為顯示字串以免精度流失；解析不了就原樣回傳，永不失敗
func ParseQuantity(text string) *common.Quantity {
	clean := NormalizeVulgarFractions(strings.TrimSpace(text))

	if m := rangeRegex.FindStringSubmatch(clean); m != nil {
		return common.TextQuantity(m[1] + "-" + m[2])
	}

	if m := fractionRegex.FindStringSubmatch(clean); m != nil {
		if m[1] != "" {
			return common.TextQuantity(m[1] + " " + m[2] + "/" + m[3])
		}
		return common.TextQuantity(m[2] + "/" + m[3])
	}

	if n, err := strconv.ParseFloat(clean, 64); err == nil {
		return common.NumberQuantity(n)
	}

	return common.TextQuantity(strings.TrimSpace(text))
}

// FractionValue 將分數字串（"1/2"、"2 1/4"）換算為小數
func FractionValue(text string) (float64, bool) {
	m := fractionRegex.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, false
	}
	whole := 0.0
	if m[1] != "" {
		w, _ := strconv.ParseFloat(m[1], 64)
		whole = w
	}
	num, _ := strconv.ParseFloat(m[2], 64)
	den, _ := strconv.ParseFloat(m[3], 64)
	if den == 0 {
		return 0, false
	}
	return whole + num/den, true
}
