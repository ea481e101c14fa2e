package ingredient

import (
	"regexp"
	"strings"

	"recipe-scaler/internal/pkg/common"
	"recipe-scaler/internal/pkg/textutil"
)

var (
	vulgarFractionClass = regexp.MustCompile(`[¼½¾⅐⅑⅒⅓⅔⅕⅖⅗⅘⅙⅚⅛⅜⅝⅞]`)
	leadingNumbers      = regexp.MustCompile(`\b\d+[\d\s/.\-]*\b`)
	rangeConnectors     = regexp.MustCompile(`(?i)\b(to|–|-)\b`)
	descriptorWords     = regexp.MustCompile(`(?i)\b(fresh|freshly|dried|frozen|canned|organic|raw|cooked|ground|coarsely|coarse|finely|cracked)\b`)
	categoryWords       = regexp.MustCompile(`(?i)\b(all-purpose|whole wheat|self-rising)\b`)
	saltVariants        = regexp.MustCompile(`(?i)\b(kosher|sea|table|iodized)\s+salt\b`)
	pepperVariants      = regexp.MustCompile(`(?i)\bblack\s+pepper\b`)
	nonLetters          = regexp.MustCompile(`[^a-zA-Z\s]`)
	spaces              = regexp.MustCompile(`\s+`)

	// 單位拼法的比對樣式，長拼法在前，避免短單位吃掉長單位的一部分
	unitTokens = buildUnitRegex()
)

func buildUnitRegex() *regexp.Regexp {
	variants := textutil.UnitVariants()
	quoted := make([]string, 0, len(variants))
	for _, v := range variants {
		quoted = append(quoted, regexp.QuoteMeta(v))
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

// ExtractNames 把食材清單化為可供步驟比對的正規化名稱：
// 去掉數量、單位與常見描述詞，統一鹽與胡椒的寫法，最後只留字母
// 回傳順序與輸入一一對應
func ExtractNames(ingredients []common.ParsedIngredient) []string {
	names := make([]string, 0, len(ingredients))

	for _, ing := range ingredients {
		name := ing.Ingredient
		if name == "" {
			name = ing.Raw
		}

		// 丟掉數量：Unicode 分數、數字、範圍與連接詞（以空格取代以保住詞界）
		name = vulgarFractionClass.ReplaceAllString(name, " ")
		name = leadingNumbers.ReplaceAllString(name, " ")
		name = unitTokens.ReplaceAllString(name, " ")
		name = rangeConnectors.ReplaceAllString(name, " ")

		// 丟掉描述詞與大分類
		name = descriptorWords.ReplaceAllString(name, " ")
		name = categoryWords.ReplaceAllString(name, " ")

		// 統一特例寫法，讓步驟文字裡的 "salt"、"pepper" 比對得上
		name = saltVariants.ReplaceAllString(name, "salt")
		name = pepperVariants.ReplaceAllString(name, "pepper")

		// 去標點、壓空白
		name = nonLetters.ReplaceAllString(name, " ")
		name = strings.TrimSpace(spaces.ReplaceAllString(name, " "))

		names = append(names, name)
	}

	return names
}
