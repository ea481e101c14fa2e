// Package extract 實作三層食譜抽取管線：
// JSON-LD 結構化資料 → microdata → HTML 啟發式，第一個成功者勝出。
// 所有抽取函式對格式錯誤的內容一律回傳「未找到」而不是錯誤，
// 彼此無共享狀態，對相同輸入重複呼叫結果相同。
package extract

import (
	"net/url"
	"time"

	"recipe-scaler/internal/core/ingredient"
	"recipe-scaler/internal/pkg/common"
	"recipe-scaler/internal/pkg/textutil"
)

// Parse 依序嘗試三種抽取策略，回傳第一個同時具備食材與步驟的結果
// 三次嘗試各自拿到同一份原始 HTML，互不影響；全部落空回傳 nil
func Parse(html string, sourceURL string) *common.Recipe {
	domain := domainOf(sourceURL)

	type attempt struct {
		source common.Source
		fn     func(string, string) *common.Recipe
	}
	attempts := []attempt{
		{common.SourceJSONLD, ParseJSONLD},
		{common.SourceMicrodata, ParseMicrodata},
		{common.SourceHeuristics, ParseHeuristics},
	}

	for _, a := range attempts {
		start := time.Now()
		recipe := a.fn(html, sourceURL)
		// microdata 是寬鬆解析，可能回傳欄位殘缺的最小物件，
		// 必須明確檢查食材與步驟非空才算找到
		found := recipe.Found()
		common.LogExtraction(string(a.source), domain, time.Since(start), found)
		if found {
			return recipe
		}
	}

	return nil
}

func domainOf(sourceURL string) string {
	parsed, err := url.Parse(sourceURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}

// buildInstructions 把清理過的步驟文字組裝為帶編號的步驟
// 編號從 1 起連續遞增、依文件順序指定，不採用來源標記的編號
func buildInstructions(texts []string, ingredients []common.ParsedIngredient) []common.Instruction {
	names := ingredient.ExtractNames(ingredients)

	instructions := make([]common.Instruction, 0, len(texts))
	for _, text := range texts {
		if text == "" {
			continue
		}
		instructions = append(instructions, common.Instruction{
			Step:        len(instructions) + 1,
			Text:        text,
			Duration:    textutil.ParseDuration(text),
			Ingredients: ingredient.FindInStep(text, names, ingredient.DefaultMatchThreshold),
		})
	}
	return instructions
}

// parseIngredientLines 逐行解析食材文字，空行略過
func parseIngredientLines(lines []string) []common.ParsedIngredient {
	ingredients := make([]common.ParsedIngredient, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		ingredients = append(ingredients, ingredient.Parse(line))
	}
	return ingredients
}

// durationDisplay 解析時間文字並回傳顯示字串，解析不出來回傳空字串
func durationDisplay(text string) string {
	if text == "" {
		return ""
	}
	d := textutil.ParseDuration(text)
	if d == nil {
		return ""
	}
	return d.Display
}
