package textutil

import (
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
)

var punctuationRegex = regexp.MustCompile(`[^\w\s]`)

// NormalizeIngredientName 去掉標點、壓縮空白並轉小寫，供模糊比對使用
func NormalizeIngredientName(name string) string {
	if name == "" {
		return ""
	}
	clean := strings.ToLower(name)
	clean = punctuationRegex.ReplaceAllString(clean, "")
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(clean, " "))
}

// Similarity 以編輯距離計算兩字串相似度，0 到 1，1 為完全相同
func Similarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	distance := matchr.Levenshtein(a, b)
	return float64(maxLen-distance) / float64(maxLen)
}

// FindBestIngredientMatch 在候選名單中找出與目標最相似的食材名稱
// 相似度未達門檻時回傳 false
func FindBestIngredientMatch(target string, candidates []string, threshold float64) (string, float64, bool) {
	normalizedTarget := NormalizeIngredientName(target)

	var best string
	var bestScore float64
	for _, candidate := range candidates {
		score := Similarity(normalizedTarget, NormalizeIngredientName(candidate))
		if score > bestScore && score >= threshold {
			bestScore = score
			best = candidate
		}
	}

	if best == "" {
		return "", 0, false
	}
	return best, bestScore, true
}
