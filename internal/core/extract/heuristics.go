package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"recipe-scaler/internal/pkg/common"
	"recipe-scaler/internal/pkg/textutil"
)

// 頁面雜訊，抽取前先移除以免干擾選擇器
const noiseSelector = "script, style, nav, header, footer, .ad, .advertisement, .social, .share, .comment"

var titleSelectors = []string{
	"h1.recipe-title",
	"h1.entry-title",
	`h1[class*="recipe"]`,
	`h1[class*="title"]`,
	".recipe-header h1",
	".recipe-title",
	".entry-title",
	"h1",
	"title",
}

// 食材選擇器，由站點常見的專用樣式退到裸 <li>
var ingredientSelectors = []string{
	".recipe-ingredients li",
	".ingredients li",
	".recipe-ingredient",
	`[class*="ingredient"] li`,
	`ul[class*="ingredient"] li`,
	".ingredient-list li",
	"ul li",
}

var instructionSelectors = []string{
	".recipe-instructions li",
	".instructions li",
	".recipe-instruction",
	".directions li",
	".method li",
	`[class*="instruction"] li`,
	`ol[class*="instruction"] li`,
	".instruction-list li",
	"ol li",
}

var imageSelectors = []string{
	".recipe-image img",
	".recipe-photo img",
	".featured-image img",
	".entry-image img",
	`[class*="recipe"] img`,
	`img[class*="recipe"]`,
	"img",
}

var (
	skipNavRegex     = regexp.MustCompile(`(?i)^(print|save|share|rate|review|comment|subscribe|follow)`)
	skipSiteRegex    = regexp.MustCompile(`(?i)^(home|about|contact|privacy|terms)`)
	skipAdRegex      = regexp.MustCompile(`(?i)^(advertisement|sponsored|affiliate)`)
	skipStepRegex    = regexp.MustCompile(`(?i)^(step \d+|instruction)`)
	skipNonStepRegex = regexp.MustCompile(`(?i)^(ingredient|nutrition|calories)`)

	quantityUnitHint = regexp.MustCompile(`(?i)\d+.*(cup|tablespoon|teaspoon|pound|ounce|gram|liter|ml|tsp|tbsp|lb|oz|g|kg)`)
	quantitySizeHint = regexp.MustCompile(`(?i)\d+.*(large|medium|small|whole|half|quarter)`)
	stapleHint       = regexp.MustCompile(`(?i)(salt|pepper|oil|butter|flour|sugar|egg|milk|water|onion|garlic)`)

	cookingVerbHint = regexp.MustCompile(`(?i)(heat|cook|bake|boil|simmer|fry|sauté|saute|mix|stir|add|combine|place|put|set)`)
	prepVerbHint    = regexp.MustCompile(`(?i)(preheat|prepare|chop|dice|slice|cut|season|serve)`)
	cookwareHint    = regexp.MustCompile(`(?i)(oven|pan|pot|bowl|skillet|saucepan)`)
	timeHint        = regexp.MustCompile(`(?i)(minutes?|hours?|degrees?|°[CF])`)

	ingredientsHeadingRegex = regexp.MustCompile(`(?i)^ingredients$`)
	methodHeadingRegex      = regexp.MustCompile(`(?i)^(method|methods|instructions|directions?)$`)
	stepLeadRegex           = regexp.MustCompile(`(?i)^step\s*\d+`)
	brTagRegex              = regexp.MustCompile(`(?i)<br\s*/?>`)
	htmlTagRegex            = regexp.MustCompile(`<[^>]*>`)
)

// ParseHeuristics 在沒有結構化資料時用常見的 HTML 樣式抽取食譜
// 標題、食材、步驟缺一不可，任何一項抽不到就回傳 nil
func ParseHeuristics(html string, sourceURL string) *common.Recipe {
	start := time.Now()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	doc.Find(noiseSelector).Remove()

	title := extractTitle(doc)
	if title == "" {
		return nil
	}

	ingredients := extractIngredients(doc)
	if len(ingredients) == 0 {
		return nil
	}

	instructions := extractInstructions(doc, ingredients)
	if len(instructions) == 0 {
		return nil
	}

	return &common.Recipe{
		Title:        title,
		Description:  extractMetaText(doc, descriptionSelectors, 10, 1000),
		Author:       extractMetaText(doc, authorSelectors, 1, 100),
		Ingredients:  ingredients,
		Instructions: instructions,
		TotalTime:    extractTime(doc, totalTimeSelectors),
		PrepTime:     extractTime(doc, prepTimeSelectors),
		CookTime:     extractTime(doc, cookTimeSelectors),
		Servings:     extractServings(doc),
		Images:       extractImages(doc, sourceURL),
		URL:          sourceURL,
		Domain:       domainOf(sourceURL),
		Source:       common.SourceHeuristics,
		ParseTime:    time.Since(start).Milliseconds(),
	}
}

func extractTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		element := doc.Find(selector).First()
		if element.Length() == 0 {
			continue
		}
		text := textutil.CleanText(element.Text())
		if len(text) > 3 && len(text) < 200 {
			return text
		}
	}
	return ""
}

// extractIngredients 先試選擇器清單，每個選擇器要湊到 3 行以上
// 通過食材判定才算數；全部失敗再退到 "Ingredients" 標題掃描
func extractIngredients(doc *goquery.Document) []common.ParsedIngredient {
	for _, selector := range ingredientSelectors {
		elements := doc.Find(selector)
		if elements.Length() <= 2 {
			continue
		}

		var lines []string
		elements.Each(func(_ int, s *goquery.Selection) {
			text := textutil.CleanText(s.Text())
			if isLikelyIngredient(text) {
				lines = append(lines, text)
			}
		})
		if len(lines) > 2 {
			return parseIngredientLines(lines)
		}
	}

	// 有些頁面把食材塞在標題後的散文或 <br> 分行裡
	section := headingSection(doc, ingredientsHeadingRegex)
	var lines []string
	for _, text := range section {
		if isLikelyIngredient(text) {
			lines = append(lines, text)
		}
	}
	if len(lines) > 2 {
		return parseIngredientLines(lines)
	}
	return nil
}

func isLikelyIngredient(text string) bool {
	if len(text) < 3 || len(text) > 200 {
		return false
	}
	if skipNavRegex.MatchString(text) || skipSiteRegex.MatchString(text) ||
		skipAdRegex.MatchString(text) || skipStepRegex.MatchString(text) {
		return false
	}
	return quantityUnitHint.MatchString(text) ||
		quantitySizeHint.MatchString(text) ||
		stapleHint.MatchString(text)
}

// extractInstructions 與食材同樣的兩段式策略，門檻放寬到 2 行
// 再加兩層保底：Method 類標題掃描與全頁 "STEP n" 段落掃描
func extractInstructions(doc *goquery.Document, ingredients []common.ParsedIngredient) []common.Instruction {
	for _, selector := range instructionSelectors {
		elements := doc.Find(selector)
		if elements.Length() <= 1 {
			continue
		}

		var lines []string
		elements.Each(func(_ int, s *goquery.Selection) {
			text := textutil.CleanText(s.Text())
			if isLikelyInstruction(text) {
				lines = append(lines, text)
			}
		})
		if len(lines) > 1 {
			return buildInstructions(lines, ingredients)
		}
	}

	// "STEP 1" 開頭的段落即使沒有動詞線索也視為步驟
	section := headingSection(doc, methodHeadingRegex)
	var lines []string
	for _, text := range section {
		if isLikelyInstruction(text) || stepLeadRegex.MatchString(text) {
			lines = append(lines, text)
		}
	}
	if len(lines) > 1 {
		return buildInstructions(lines, ingredients)
	}

	lines = lines[:0]
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := textutil.CleanText(s.Text())
		if stepLeadRegex.MatchString(text) {
			lines = append(lines, text)
		}
	})
	if len(lines) > 1 {
		return buildInstructions(lines, ingredients)
	}
	return nil
}

func isLikelyInstruction(text string) bool {
	if len(text) < 10 || len(text) > 999 {
		return false
	}
	if skipNavRegex.MatchString(text) || skipSiteRegex.MatchString(text) ||
		skipAdRegex.MatchString(text) || skipNonStepRegex.MatchString(text) {
		return false
	}
	return cookingVerbHint.MatchString(text) ||
		prepVerbHint.MatchString(text) ||
		cookwareHint.MatchString(text) ||
		timeHint.MatchString(text)
}

// headingSection 找到第一個符合樣式的標題，向後走訪同層元素
// 直到下一個標題為止，收集清單項目、段落文字與 <br> 分行
func headingSection(doc *goquery.Document, headingRegex *regexp.Regexp) []string {
	var collected []string

	doc.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		if !headingRegex.MatchString(textutil.CleanText(heading.Text())) {
			return true
		}

		heading.NextUntil("h1, h2, h3, h4, h5, h6").Each(func(_ int, sibling *goquery.Selection) {
			items := sibling.Find("li")
			if items.Length() > 0 {
				items.Each(func(_ int, li *goquery.Selection) {
					if text := textutil.CleanText(li.Text()); text != "" {
						collected = append(collected, text)
					}
				})
				return
			}
			collected = append(collected, brLines(sibling)...)
		})
		return false
	})

	return collected
}

// brLines 把元素內容依 <br> 切行，去掉殘餘標籤後逐行清理
func brLines(s *goquery.Selection) []string {
	inner, err := s.Html()
	if err != nil {
		return nil
	}
	var lines []string
	for _, chunk := range brTagRegex.Split(inner, -1) {
		text := textutil.CleanText(htmlTagRegex.ReplaceAllString(chunk, " "))
		if text != "" {
			lines = append(lines, text)
		}
	}
	return lines
}

var descriptionSelectors = []string{
	".recipe-description",
	".recipe-summary",
	".entry-summary",
	".recipe-intro",
	`[class*="description"]`,
	`meta[name="description"]`,
}

var authorSelectors = []string{
	".recipe-author",
	".author-name",
	".by-author",
	`[class*="author"]`,
	`meta[name="author"]`,
}

var (
	totalTimeSelectors = []string{".total-time", ".recipe-time", `[class*="total"]`, ".time"}
	prepTimeSelectors  = []string{".prep-time", `[class*="prep"]`}
	cookTimeSelectors  = []string{".cook-time", `[class*="cook"]`}
)

// extractMetaText 取第一個長度落在範圍內的元素文字，meta 標籤讀 content 屬性
func extractMetaText(doc *goquery.Document, selectors []string, minLen, maxLen int) string {
	for _, selector := range selectors {
		element := doc.Find(selector).First()
		if element.Length() == 0 {
			continue
		}
		raw := element.AttrOr("content", "")
		if raw == "" {
			raw = element.Text()
		}
		text := textutil.CleanText(raw)
		if len(text) > minLen && len(text) < maxLen {
			return text
		}
	}
	return ""
}

func extractTime(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		element := doc.Find(selector).First()
		if element.Length() == 0 {
			continue
		}
		if display := durationDisplay(textutil.CleanText(element.Text())); display != "" {
			return display
		}
	}
	return ""
}

var servingsSelectors = []string{
	".recipe-yield",
	".servings",
	".serves",
	`[class*="yield"]`,
	`[class*="serving"]`,
}

// extractServings 文字中要抓得到 1 到 99 的數字才當作份量
func extractServings(doc *goquery.Document) string {
	for _, selector := range servingsSelectors {
		element := doc.Find(selector).First()
		if element.Length() == 0 {
			continue
		}
		text := textutil.CleanText(element.Text())
		if n, ok := textutil.ExtractNumber(text); ok && n > 0 && n < 100 {
			return text
		}
	}
	return ""
}

// extractImages 收集至多三張大圖，略過明顯是圖示尺寸的元素
func extractImages(doc *goquery.Document, sourceURL string) []string {
	var images []string
	seen := make(map[string]bool)

	for _, selector := range imageSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			src := s.AttrOr("src", "")
			if src == "" {
				src = s.AttrOr("data-src", "")
			}
			if src == "" {
				src = s.AttrOr("data-lazy-src", "")
			}
			if src == "" {
				return
			}

			resolved, ok := textutil.CleanURL(src, sourceURL)
			if !ok || seen[resolved] {
				return
			}

			width, _ := strconv.Atoi(s.AttrOr("width", "0"))
			height, _ := strconv.Atoi(s.AttrOr("height", "0"))
			if (width == 0 && height == 0) || (width >= 200 && height >= 150) {
				images = append(images, resolved)
				seen[resolved] = true
			}
		})
		if len(images) >= 3 {
			break
		}
	}

	return images
}
