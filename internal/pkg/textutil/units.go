package textutil

import (
	"sort"
	"strings"
)

// unitEntry 一個標準單位與它的各種拼法
type unitEntry struct {
	canonical string
	variants  []string
}

// 單位對照表：約 60 種拼法映射到標準名稱
// 宣告順序即建表順序，後出現的拼法覆蓋先前的（例如 't' 最終映射到 teaspoon）
var unitTable = []unitEntry{
	// 容量
	{"cup", []string{"cup", "cups", "c"}},
	{"tablespoon", []string{"tablespoon", "tablespoons", "tbsp", "tbs", "T"}},
	{"teaspoon", []string{"teaspoon", "teaspoons", "tsp", "t"}},
	{"fluid ounce", []string{"fluid ounce", "fluid ounces", "fl oz", "fl. oz.", "floz"}},
	{"pint", []string{"pint", "pints", "pt"}},
	{"quart", []string{"quart", "quarts", "qt"}},
	{"gallon", []string{"gallon", "gallons", "gal"}},
	{"liter", []string{"liter", "liters", "litre", "litres", "l"}},
	{"milliliter", []string{"milliliter", "milliliters", "millilitre", "millilitres", "ml", "mL"}},

	// 重量
	{"pound", []string{"pound", "pounds", "lb", "lbs", "#"}},
	{"ounce", []string{"ounce", "ounces", "oz"}},
	{"gram", []string{"gram", "grams", "g"}},
	{"kilogram", []string{"kilogram", "kilograms", "kg"}},

	// 個數／容器
	{"piece", []string{"piece", "pieces", "pc", "pcs"}},
	{"slice", []string{"slice", "slices"}},
	{"clove", []string{"clove", "cloves"}},
	{"head", []string{"head", "heads"}},
	{"bunch", []string{"bunch", "bunches"}},
	{"package", []string{"package", "packages", "pkg", "pack"}},
	{"can", []string{"can", "cans"}},
	{"jar", []string{"jar", "jars"}},
	{"bottle", []string{"bottle", "bottles"}},
	{"box", []string{"box", "boxes"}},
	{"bag", []string{"bag", "bags"}},

	// 大小描述詞
	{"large", []string{"large", "lg"}},
	{"medium", []string{"medium", "med", "medium-sized"}},
	{"small", []string{"small", "sm"}},
	{"whole", []string{"whole"}},
	{"half", []string{"half", "1/2"}},
	{"quarter", []string{"quarter", "1/4"}},
}

// 大小描述詞，可直接作為單位使用（"3 large eggs"）
var sizeDescriptors = map[string]bool{
	"large":   true,
	"medium":  true,
	"small":   true,
	"whole":   true,
	"half":    true,
	"quarter": true,
}

var (
	unitLookup          map[string]string
	unitVariantsByWidth []string
)

func init() {
	unitLookup = make(map[string]string)
	for _, entry := range unitTable {
		for _, v := range entry.variants {
			unitLookup[strings.ToLower(v)] = entry.canonical
		}
	}

	unitVariantsByWidth = make([]string, 0, len(unitLookup))
	for v := range unitLookup {
		unitVariantsByWidth = append(unitVariantsByWidth, v)
	}
	// 長的拼法排前面，避免短單位吃掉長單位的一部分
	sort.Slice(unitVariantsByWidth, func(i, j int) bool {
		if len(unitVariantsByWidth[i]) != len(unitVariantsByWidth[j]) {
			return len(unitVariantsByWidth[i]) > len(unitVariantsByWidth[j])
		}
		return unitVariantsByWidth[i] < unitVariantsByWidth[j]
	})
}

// NormalizeUnit 把單位拼法映射為標準名稱
// 查表不分大小寫，也容忍結尾句點；查不到時回傳 false
func NormalizeUnit(text string) (string, bool) {
	clean := strings.ToLower(strings.TrimSpace(text))
	if clean == "" {
		return "", false
	}

	if canonical, ok := unitLookup[clean]; ok {
		return canonical, true
	}

	// 再試一次去掉句點的版本（"lb." → "lb"）
	withoutPeriods := strings.ReplaceAll(clean, ".", "")
	if canonical, ok := unitLookup[withoutPeriods]; ok {
		return canonical, true
	}

	// 大小描述詞本身就是合法單位
	if sizeDescriptors[clean] {
		return clean, true
	}

	return "", false
}

// IsSizeDescriptor 回報文字是否為大小描述詞
func IsSizeDescriptor(text string) bool {
	return sizeDescriptors[strings.ToLower(strings.TrimSpace(text))]
}

// UnitVariants 回傳所有單位拼法，長度由大到小排序
func UnitVariants() []string {
	out := make([]string, len(unitVariantsByWidth))
	copy(out, unitVariantsByWidth)
	return out
}
