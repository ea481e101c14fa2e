package ingredient

import (
	"strings"
)

// DefaultMatchThreshold 步驟與食材模糊比對的門檻
// 經驗值，調整它屬於調校決策而不是修 bug
const DefaultMatchThreshold = 0.6

// FindInStep 找出步驟文字中提及的食材名稱
// 先做不分大小寫的子字串比對（直接命中），否則把名稱與步驟拆詞，
// 計算 matchedWords/totalNameWords；詞與詞只要互相包含就算命中
// （廉價地涵蓋複數與部分重疊），比率達門檻才收錄
func FindInStep(stepText string, ingredientNames []string, threshold float64) []string {
	var found []string

	stepLower := strings.ToLower(stepText)
	stepWords := strings.Fields(stepLower)

	for _, name := range ingredientNames {
		if name == "" {
			continue
		}

		if strings.Contains(stepLower, strings.ToLower(name)) {
			found = append(found, name)
			continue
		}

		nameWords := strings.Fields(strings.ToLower(name))
		if len(nameWords) == 0 {
			continue
		}

		matched := 0
		for _, nameWord := range nameWords {
			if len(nameWord) <= 2 {
				continue
			}
			for _, stepWord := range stepWords {
				if strings.Contains(stepWord, nameWord) || strings.Contains(nameWord, stepWord) {
					matched++
					break
				}
			}
		}

		if float64(matched)/float64(len(nameWords)) >= threshold {
			found = append(found, name)
		}
	}

	return found
}
