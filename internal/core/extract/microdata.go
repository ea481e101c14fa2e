package extract

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"recipe-scaler/internal/pkg/common"
	"recipe-scaler/internal/pkg/textutil"
)

// ParseMicrodata 解析 schema.org/Recipe microdata 標記
// 這一層刻意寬鬆：欄位缺漏照樣組物件，交給呼叫端判斷是否可用
func ParseMicrodata(html string, sourceURL string) *common.Recipe {
	start := time.Now()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	scope := doc.Find(`[itemtype*="schema.org/Recipe"], [itemtype*="Recipe"]`).First()
	if scope.Length() == 0 {
		return nil
	}

	title := textutil.CleanText(scope.Find(`[itemprop="name"]`).First().Text())
	if title == "" {
		title = textutil.CleanText(doc.Find("h1").First().Text())
	}
	if title == "" {
		title = "Untitled Recipe"
	}

	var ingredientLines []string
	scope.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`).Each(func(_ int, s *goquery.Selection) {
		if text := textutil.CleanText(s.Text()); text != "" {
			ingredientLines = append(ingredientLines, text)
		}
	})
	ingredients := parseIngredientLines(ingredientLines)

	var instructionLines []string
	scope.Find(`[itemprop="recipeInstructions"]`).Each(func(_ int, s *goquery.Selection) {
		if text := textutil.CleanText(s.Text()); text != "" {
			instructionLines = append(instructionLines, text)
		}
	})
	instructions := buildInstructions(instructionLines, ingredients)

	var images []string
	scope.Find(`[itemprop="image"]`).Each(func(_ int, s *goquery.Selection) {
		raw := s.AttrOr("src", "")
		if raw == "" {
			raw = s.AttrOr("content", "")
		}
		if resolved, ok := textutil.CleanURL(raw, sourceURL); ok {
			images = append(images, resolved)
		}
	})

	return &common.Recipe{
		Title:        title,
		Description:  textutil.CleanText(scope.Find(`[itemprop="description"]`).First().Text()),
		Author:       textutil.CleanText(scope.Find(`[itemprop="author"]`).First().Text()),
		Ingredients:  ingredients,
		Instructions: instructions,
		TotalTime:    microdataDuration(scope, "totalTime"),
		PrepTime:     microdataDuration(scope, "prepTime"),
		CookTime:     microdataDuration(scope, "cookTime"),
		Servings:     textutil.CleanText(scope.Find(`[itemprop="recipeYield"], [itemprop="yield"]`).First().Text()),
		Images:       images,
		URL:          sourceURL,
		Domain:       domainOf(sourceURL),
		Source:       common.SourceMicrodata,
		ParseTime:    time.Since(start).Milliseconds(),
	}
}

// microdataDuration 優先取 datetime 屬性（通常是 ISO 8601），沒有才取內文
func microdataDuration(scope *goquery.Selection, prop string) string {
	sel := scope.Find(`[itemprop="` + prop + `"]`).First()
	if sel.Length() == 0 {
		return ""
	}
	raw := sel.AttrOr("datetime", "")
	if raw == "" {
		raw = sel.Text()
	}
	return durationDisplay(textutil.CleanText(raw))
}
