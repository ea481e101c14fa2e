package scale

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// 常見的烹飪分數，換算後的小數優先對回這些寫法
// 順序由小到大，逐一用容差比對
var culinaryFractions = []struct {
	value   float64
	display string
}{
	{1.0 / 8, "1/8"},
	{1.0 / 6, "1/6"},
	{1.0 / 4, "1/4"},
	{1.0 / 3, "1/3"},
	{3.0 / 8, "3/8"},
	{1.0 / 2, "1/2"},
	{5.0 / 8, "5/8"},
	{2.0 / 3, "2/3"},
	{3.0 / 4, "3/4"},
	{5.0 / 6, "5/6"},
	{7.0 / 8, "7/8"},
}

// 分數比對容差；食譜份量的精度不會超過這個等級
const fractionTolerance = 0.05

// formatNumber 整數直接輸出，小數最多兩位並去掉尾端的零
func formatNumber(num float64) string {
	if num == math.Trunc(num) {
		return strconv.FormatInt(int64(num), 10)
	}
	return trimZeros(fmt.Sprintf("%.2f", num))
}

// formatScaledNumber 量級越大精度越低：1 以下一到兩位小數，10 以上取整
func formatScaledNumber(num float64) string {
	switch {
	case num < 0.1:
		return trimZeros(fmt.Sprintf("%.2f", num))
	case num < 10:
		return trimZeros(fmt.Sprintf("%.1f", num))
	default:
		return strconv.FormatInt(int64(math.Round(num)), 10)
	}
}

// formatFraction 把小數轉回「整數 分數」的寫法
// 分數部分對不上常見分數時退回小數輸出
func formatFraction(decimal float64) string {
	whole := math.Floor(decimal)
	fractional := decimal - whole

	if fractional < fractionTolerance {
		return strconv.FormatInt(int64(whole), 10)
	}

	for _, f := range culinaryFractions {
		if math.Abs(fractional-f.value) < fractionTolerance {
			if whole > 0 {
				return fmt.Sprintf("%d %s", int64(whole), f.display)
			}
			return f.display
		}
	}

	return formatScaledNumber(decimal)
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}
