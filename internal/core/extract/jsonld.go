package extract

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"recipe-scaler/internal/pkg/common"
	"recipe-scaler/internal/pkg/textutil"
)

// ParseJSONLD 從頁面的 ld+json 腳本中尋找 schema.org Recipe 節點
// 單一腳本解析失敗不影響其他腳本；整頁找不到可用節點回傳 nil
func ParseJSONLD(html string, sourceURL string) *common.Recipe {
	start := time.Now()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var node map[string]interface{}
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data interface{}
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			// 這個腳本壞了，繼續找下一個
			return true
		}
		if found := findRecipeNode(data); found != nil {
			node = found
			return false
		}
		return true
	})

	if node == nil {
		return nil
	}
	return recipeFromNode(node, sourceURL, start)
}

// findRecipeNode 深度優先搜尋 @type 為 Recipe 的節點
// 先展開陣列與 @graph，再檢查節點本身，最後依鍵名排序走訪巢狀值，
// 確保同一份文件每次都找到同一個節點
func findRecipeNode(data interface{}) map[string]interface{} {
	switch v := data.(type) {
	case []interface{}:
		for _, item := range v {
			if found := findRecipeNode(item); found != nil {
				return found
			}
		}
	case map[string]interface{}:
		if graph, ok := v["@graph"]; ok {
			if found := findRecipeNode(graph); found != nil {
				return found
			}
		}
		if isRecipeType(v["@type"]) {
			return v
		}

		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := v[k]
			switch child.(type) {
			case map[string]interface{}, []interface{}:
				if found := findRecipeNode(child); found != nil {
					return found
				}
			}
		}
	}
	return nil
}

// isRecipeType 接受字串 "Recipe" 或包含 "Recipe" 的型別陣列
func isRecipeType(t interface{}) bool {
	switch v := t.(type) {
	case string:
		return v == "Recipe"
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

func recipeFromNode(node map[string]interface{}, sourceURL string, start time.Time) *common.Recipe {
	title := textutil.CleanText(stringField(node, "name"))
	if title == "" {
		title = "Untitled Recipe"
	}

	ingredients := parseIngredientLines(stringList(node["recipeIngredient"]))
	instructions := buildInstructions(instructionTexts(node["recipeInstructions"]), ingredients)

	return &common.Recipe{
		Title:        title,
		Description:  textutil.CleanText(stringField(node, "description")),
		Author:       normalizeAuthor(node["author"]),
		Ingredients:  ingredients,
		Instructions: instructions,
		TotalTime:    durationDisplay(stringField(node, "totalTime")),
		PrepTime:     durationDisplay(stringField(node, "prepTime")),
		CookTime:     durationDisplay(stringField(node, "cookTime")),
		Servings:     normalizeYield(node["recipeYield"]),
		Images:       normalizeImages(node["image"], sourceURL),
		URL:          sourceURL,
		Domain:       domainOf(sourceURL),
		Source:       common.SourceJSONLD,
		ParseTime:    time.Since(start).Milliseconds(),
	}
}

func stringField(node map[string]interface{}, key string) string {
	if s, ok := node[key].(string); ok {
		return s
	}
	return ""
}

// stringList 把字串或字串陣列攤平成字串切片，其他型別忽略
func stringList(v interface{}) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []interface{}:
		list := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		return list
	}
	return nil
}

// instructionTexts 攤平 recipeInstructions：
// 字串直接收，物件取 text 欄位、沒有再取 name，其餘忽略
func instructionTexts(v interface{}) []string {
	var texts []string

	var collect func(item interface{})
	collect = func(item interface{}) {
		switch t := item.(type) {
		case string:
			texts = append(texts, textutil.CleanText(t))
		case []interface{}:
			for _, child := range t {
				collect(child)
			}
		case map[string]interface{}:
			if s, ok := t["text"].(string); ok && s != "" {
				texts = append(texts, textutil.CleanText(s))
				return
			}
			if s, ok := t["name"].(string); ok && s != "" {
				texts = append(texts, textutil.CleanText(s))
			}
		}
	}
	collect(v)

	return texts
}

// normalizeAuthor 接受字串、Person 物件或其陣列（取第一個有名字的）
func normalizeAuthor(v interface{}) string {
	switch t := v.(type) {
	case string:
		return textutil.CleanText(t)
	case map[string]interface{}:
		if name, ok := t["name"].(string); ok {
			return textutil.CleanText(name)
		}
	case []interface{}:
		for _, item := range t {
			if author := normalizeAuthor(item); author != "" {
				return author
			}
		}
	}
	return ""
}

// normalizeYield 接受字串、數字或陣列（取第一個可用元素）
func normalizeYield(v interface{}) string {
	switch t := v.(type) {
	case string:
		return textutil.CleanText(t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case []interface{}:
		for _, item := range t {
			if yield := normalizeYield(item); yield != "" {
				return yield
			}
		}
	}
	return ""
}

// normalizeImages 接受字串、ImageObject（取 url）或其混合陣列，
// 相對路徑以來源頁面補全，無法解析的丟棄
func normalizeImages(v interface{}, sourceURL string) []string {
	var images []string

	add := func(raw string) {
		if resolved, ok := textutil.CleanURL(raw, sourceURL); ok {
			images = append(images, resolved)
		}
	}

	switch t := v.(type) {
	case string:
		add(t)
	case map[string]interface{}:
		if u, ok := t["url"].(string); ok {
			add(u)
		}
	case []interface{}:
		for _, item := range t {
			switch it := item.(type) {
			case string:
				add(it)
			case map[string]interface{}:
				if u, ok := it["url"].(string); ok {
					add(u)
				}
			}
		}
	}

	return images
}
