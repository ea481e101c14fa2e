package ingredient

import (
	"regexp"
	"strings"

	"recipe-scaler/internal/pkg/common"
	"recipe-scaler/internal/pkg/textutil"
)

// 常見的前處理方式，tier 4 用來判斷逗號後的片段是不是備料說明
var preparations = []string{
	"chopped", "diced", "minced", "sliced", "grated", "shredded", "crushed",
	"peeled", "seeded", "deveined", "trimmed", "cleaned", "washed",
	"cooked", "boiled", "steamed", "roasted", "grilled", "fried",
	"fresh", "dried", "frozen", "canned", "bottled",
	"finely chopped", "roughly chopped", "thinly sliced", "thickly sliced",
	"julienned", "cubed", "quartered", "halved", "whole",
}

var (
	optionalRegex = regexp.MustCompile(`(?i)\(optional\)|optional`)

	// tier 1：數量 + 單位 + 名稱 [+ 備料]，單位須通過查表驗證
	quantityUnitRegex = regexp.MustCompile(`^([0-9/\-.\s]+)\s*([a-zA-Z\s.]+?)\s+(.+?)(?:,\s*(.+))?$`)
	// tier 2/3：數量 + 剩餘文字
	quantityRestRegex = regexp.MustCompile(`^([0-9/\-.\s]+)\s+(.+)$`)
	// 大小描述詞開頭（"large eggs, beaten"）
	sizeLeadRegex = regexp.MustCompile(`(?i)^(large|medium|small|whole|half|quarter)\s+(.+?)(?:,\s*(.+))?$`)
	// tier 4：名稱 [+ 備料]
	namePrepRegex = regexp.MustCompile(`^(.+?)(?:,\s*(.+))?$`)
)

// Parse 把一行原始食材文字解析為結構化記錄
// 永不失敗：最壞情況整行清理後的文字就是食材名稱，沒有數量與單位
func Parse(raw string) common.ParsedIngredient {
	cleanRaw := textutil.CleanText(raw)

	result := common.ParsedIngredient{
		Raw:        cleanRaw,
		Ingredient: cleanRaw,
	}

	// 標記可省略的食材（"(optional)" 或獨立的 optional 一詞）
	if optionalRegex.MatchString(cleanRaw) {
		result.Optional = true
	}

	parsed, ok := parseText(cleanRaw)
	if ok {
		result.Quantity = parsed.Quantity
		result.Unit = parsed.Unit
		result.Ingredient = parsed.Ingredient
		result.Preparation = parsed.Preparation
	}

	return result
}

// parseText 依序嘗試各層樣式，第一個命中的結果勝出
func parseText(text string) (common.ParsedIngredient, bool) {
	// 去掉 optional 標記後再解析
	clean := strings.TrimSpace(optionalRegex.ReplaceAllString(text, ""))
	// Unicode 分數（½）先換成 ASCII，讓數量樣式抓得到
	clean = textutil.NormalizeVulgarFractions(clean)
	if clean == "" {
		return common.ParsedIngredient{}, false
	}

	// tier 1：數量 + 單位 + 名稱 [+ 備料]
	// 只有單位查表成功才接受，避免把名稱的一部分誤認成單位
	if m := quantityUnitRegex.FindStringSubmatch(clean); m != nil {
		if unit, ok := textutil.NormalizeUnit(m[2]); ok {
			return common.ParsedIngredient{
				Quantity:    textutil.ParseQuantity(m[1]),
				Unit:        unit,
				Ingredient:  strings.TrimSpace(m[3]),
				Preparation: strings.TrimSpace(m[4]),
			}, true
		}
	}

	// tier 2/3：數量開頭但沒有可辨識的單位
	if m := quantityRestRegex.FindStringSubmatch(clean); m != nil {
		quantity := textutil.ParseQuantity(m[1])
		rest := m[2]

		// tier 2：數量 + 大小描述詞 + 名稱（"3 large eggs"）
		if sm := sizeLeadRegex.FindStringSubmatch(rest); sm != nil {
			return common.ParsedIngredient{
				Quantity:    quantity,
				Unit:        strings.ToLower(sm[1]),
				Ingredient:  strings.TrimSpace(sm[2]),
				Preparation: strings.TrimSpace(sm[3]),
			}, true
		}

		// tier 3：逗號後的文字一律當備料
		parts := strings.SplitN(rest, ",", 2)
		parsed := common.ParsedIngredient{
			Quantity:   quantity,
			Ingredient: strings.TrimSpace(parts[0]),
		}
		if len(parts) == 2 {
			parsed.Preparation = strings.TrimSpace(parts[1])
		}
		return parsed, true
	}

	// tier 4：沒有數量，逗號後的片段要比對得上已知備料詞才算備料，
	// 否則折回名稱，避免把複合食材名稱切壞
	if m := namePrepRegex.FindStringSubmatch(clean); m != nil && m[2] != "" {
		if isKnownPreparation(m[2]) {
			return common.ParsedIngredient{
				Ingredient:  strings.TrimSpace(m[1]),
				Preparation: strings.TrimSpace(m[2]),
			}, true
		}
	}

	// tier 5：整行就是食材名稱
	return common.ParsedIngredient{Ingredient: clean}, true
}

func isKnownPreparation(text string) bool {
	lower := strings.ToLower(text)
	for _, prep := range preparations {
		if strings.Contains(lower, prep) {
			return true
		}
	}
	return false
}
