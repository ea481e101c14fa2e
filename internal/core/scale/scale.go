// Package scale 實作食譜份數換算
// 換算永遠以原始食譜為基準重新計算，對相同輸入結果相同，
// 不修改傳入的 Recipe
package scale

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"recipe-scaler/internal/pkg/common"
	"recipe-scaler/internal/pkg/textutil"
)

const (
	// DefaultServings 份量字串缺漏或解析不出數字時的預設原始份數
	DefaultServings = 4
	// MinServings、MaxServings 目標份數的合理範圍
	MinServings = 1
	MaxServings = 50

	// 步驟引用的食材名稱與食材清單模糊比對的門檻
	resolveThreshold = 0.6
)

var (
	rangeQuantityRegex    = regexp.MustCompile(`^(\d+(?:\.\d+)?)-(\d+(?:\.\d+)?)$`)
	fractionQuantityRegex = regexp.MustCompile(`^(?:(\d+)\s+)?(\d+)/(\d+)$`)
	textRangeRegex        = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*[-–]\s*(\d+(?:\.\d+)?)$`)

	// 步驟文字裡的「數量 + 計量單位」樣式，例如 "2 cups"、"1/2 pound"、"3-4 oz"
	// 只認計量單位，避免把 "3-4 minutes" 這類時間也改掉
	inlineQuantityRegex = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?(?:\s*[-–]\s*\d+(?:\.\d+)?)?(?:\s+\d+/\d+)?|\d+/\d+)\s*(cups?|tablespoons?|teaspoons?|pounds?|ounces?|grams?|kilograms?|liters?|milliliters?|tbsp|tsp|lb|lbs|oz|g|kg|ml|l)\b`)
)

// ParseServings 取份量字串中的第一個整數，沒有就用預設值
func ParseServings(servings string) int {
	if n, ok := textutil.FirstInt(servings); ok && n > 0 {
		return n
	}
	return DefaultServings
}

// ClampServings 把目標份數夾到合理範圍
func ClampServings(n int) int {
	if n < MinServings {
		return MinServings
	}
	if n > MaxServings {
		return MaxServings
	}
	return n
}

// Scale 依目標份數換算食譜
// 食材逐項換算；所有步驟文字中內嵌的「數量 + 單位」也一併改寫，
// 步驟引用的食材名稱與換算後的清單比對不上時從結果中剔除
func Scale(recipe *common.Recipe, targetServings int) *common.ScaledRecipe {
	originalServings := ParseServings(recipe.Servings)
	multiplier := float64(targetServings) / float64(originalServings)

	scaled := *recipe

	// 換算後的視圖不共用原始食譜的任何切片
	if recipe.Images != nil {
		scaled.Images = append([]string(nil), recipe.Images...)
	}

	scaled.Ingredients = make([]common.ParsedIngredient, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		scaled.Ingredients[i] = ScaleIngredient(ing, multiplier)
	}

	candidates := recipe.IngredientNames()
	scaled.Instructions = make([]common.Instruction, len(recipe.Instructions))
	for i, instr := range recipe.Instructions {
		instr.Text = scaleQuantitiesInText(instr.Text, multiplier)
		instr.Ingredients = resolveStepIngredients(instr.Ingredients, candidates)
		scaled.Instructions[i] = instr
	}

	return &common.ScaledRecipe{
		Recipe:            scaled,
		OriginalServings:  recipe.Servings,
		CurrentServings:   targetServings,
		ScalingMultiplier: multiplier,
	}
}

// ScaleIngredient 換算單一食材的數量
// 數字直接相乘；範圍兩端各自換算；分數轉小數換算後再轉回分數寫法；
// 其餘（沒有數量、非數字文字）原樣保留
func ScaleIngredient(ing common.ParsedIngredient, multiplier float64) common.ParsedIngredient {
	scaled := ing
	if ing.Quantity == nil {
		return scaled
	}

	if ing.Quantity.Numeric {
		scaled.Quantity = common.NumberQuantity(ing.Quantity.Number * multiplier)
		return scaled
	}

	text := ing.Quantity.Text
	if m := rangeQuantityRegex.FindStringSubmatch(text); m != nil {
		min, _ := strconv.ParseFloat(m[1], 64)
		max, _ := strconv.ParseFloat(m[2], 64)
		scaled.Quantity = common.TextQuantity(
			formatNumber(min*multiplier) + "-" + formatNumber(max*multiplier))
		return scaled
	}

	if m := fractionQuantityRegex.FindStringSubmatch(text); m != nil {
		whole := atoiDefault(m[1], 0)
		numerator, _ := strconv.Atoi(m[2])
		denominator, _ := strconv.Atoi(m[3])
		if denominator != 0 {
			decimal := (float64(whole) + float64(numerator)/float64(denominator)) * multiplier
			scaled.Quantity = common.TextQuantity(formatFraction(decimal))
		}
		return scaled
	}

	return scaled
}

// scaleQuantitiesInText 改寫步驟文字中內嵌的數量，單位與前後文保持不動
func scaleQuantitiesInText(text string, multiplier float64) string {
	return inlineQuantityRegex.ReplaceAllStringFunc(text, func(match string) string {
		m := inlineQuantityRegex.FindStringSubmatch(match)
		if m == nil {
			return match
		}
		quantity, ok := scaleQuantityString(strings.TrimSpace(m[1]), multiplier)
		if !ok {
			return match
		}
		return quantity + " " + m[2]
	})
}

// scaleQuantityString 換算一段數量文字：範圍、分數（含帶分數）、小數
func scaleQuantityString(quantity string, multiplier float64) (string, bool) {
	if m := textRangeRegex.FindStringSubmatch(quantity); m != nil {
		min, _ := strconv.ParseFloat(m[1], 64)
		max, _ := strconv.ParseFloat(m[2], 64)
		return formatScaledNumber(min*multiplier) + "-" + formatScaledNumber(max*multiplier), true
	}

	if m := fractionQuantityRegex.FindStringSubmatch(quantity); m != nil {
		whole := atoiDefault(m[1], 0)
		numerator, _ := strconv.Atoi(m[2])
		denominator, _ := strconv.Atoi(m[3])
		if denominator == 0 {
			return "", false
		}
		decimal := (float64(whole) + float64(numerator)/float64(denominator)) * multiplier
		return formatFraction(decimal), true
	}

	if decimal, err := strconv.ParseFloat(quantity, 64); err == nil && !math.IsNaN(decimal) {
		return formatScaledNumber(decimal * multiplier), true
	}

	return "", false
}

// resolveStepIngredients 把步驟引用的食材名稱對回食材清單
// 先做互相包含的子字串比對，再退到編輯距離的模糊比對，
// 兩者都比不上的引用剔除
func resolveStepIngredients(refs []string, candidates []string) []string {
	if len(refs) == 0 {
		return nil
	}

	var resolved []string
	for _, ref := range refs {
		if containsMatch(ref, candidates) {
			resolved = append(resolved, ref)
			continue
		}
		if _, _, ok := textutil.FindBestIngredientMatch(ref, candidates, resolveThreshold); ok {
			resolved = append(resolved, ref)
		}
	}
	return resolved
}

func containsMatch(ref string, candidates []string) bool {
	refLower := strings.ToLower(ref)
	for _, candidate := range candidates {
		candidateLower := strings.ToLower(candidate)
		if strings.Contains(candidateLower, refLower) || strings.Contains(refLower, candidateLower) {
			return true
		}
	}
	return false
}

// SuggestedServings 回傳至多六個建議份數：
// 原始份數的一半、原樣、兩倍，加上不超過三倍的常見份數，排序去重
func SuggestedServings(originalServings int) []int {
	half := int(math.Round(float64(originalServings) * 0.5))
	if half < 1 {
		half = 1
	}

	seen := make(map[int]bool)
	var suggestions []int
	add := func(n int) {
		if !seen[n] {
			seen[n] = true
			suggestions = append(suggestions, n)
		}
	}

	add(half)
	add(originalServings)
	add(originalServings * 2)

	for _, size := range []int{1, 2, 4, 6, 8, 12} {
		if size <= originalServings*3 {
			add(size)
		}
	}

	sort.Ints(suggestions)
	if len(suggestions) > 6 {
		suggestions = suggestions[:6]
	}
	return suggestions
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
