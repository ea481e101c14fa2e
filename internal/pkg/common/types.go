package common

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Source 食譜來源（抽取策略）
type Source string

const (
	SourceJSONLD     Source = "json-ld"
	SourceMicrodata  Source = "microdata"
	SourceHeuristics Source = "html-heuristics"
)

// Recipe 從網頁抽取出的標準化食譜
// 注意：ingredients 與 instructions 非空才算「找到食譜」，
// 抽取器無法同時填滿兩者時必須回傳「未找到」，不得輸出殘缺資料
type Recipe struct {
	Title        string             `json:"title"`
	Description  string             `json:"description,omitempty"`
	Author       string             `json:"author,omitempty"`
	Ingredients  []ParsedIngredient `json:"ingredients"`
	Instructions []Instruction      `json:"instructions"`
	TotalTime    string             `json:"totalTime,omitempty"`
	PrepTime     string             `json:"prepTime,omitempty"`
	CookTime     string             `json:"cookTime,omitempty"`
	Servings     string             `json:"servings,omitempty"`
	Images       []string           `json:"images"`
	URL          string             `json:"url"`
	Domain       string             `json:"domain"`
	Source       Source             `json:"source"`
	ParseTime    int64              `json:"parseTime"` // 解析耗時（毫秒）
}

// ParsedIngredient 結構化的食材行
// raw 一律保留原文；其餘欄位皆為推導值，解析不出來就留空
type ParsedIngredient struct {
	Raw         string    `json:"raw"`
	Quantity    *Quantity `json:"quantity,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Ingredient  string    `json:"ingredient"`
	Preparation string    `json:"preparation,omitempty"`
	Optional    bool      `json:"optional,omitempty"`
}

// Instruction 食譜步驟，步驟編號從 1 起連續遞增，由抽取器指定
type Instruction struct {
	Step        int       `json:"step"`
	Text        string    `json:"text"`
	Duration    *Duration `json:"duration,omitempty"`
	Ingredients []string  `json:"ingredients,omitempty"` // 此步驟提及的食材名稱
}

// Duration 解析後的時間長度
type Duration struct {
	Minutes int    `json:"minutes"`
	Display string `json:"display"` // 例如 "20 minutes"、"1 hour 30 minutes"
	ISO8601 string `json:"iso8601,omitempty"`
}

// ScaledRecipe 依目標份數換算後的食譜視圖
// 每次換算都從原始 Recipe 重新計算，不持久化、不回寫原資料
type ScaledRecipe struct {
	Recipe
	OriginalServings  string  `json:"originalServings,omitempty"`
	CurrentServings   int     `json:"currentServings"`
	ScalingMultiplier float64 `json:"scalingMultiplier"`
}

// Quantity 數量值：純數字（2、0.5）或保留原樣的顯示字串（"1/2"、"2-3"）
// 分數與範圍以字串保存，避免在解析階段就失去精度
type Quantity struct {
	Number  float64
	Text    string
	Numeric bool
}

// NumberQuantity 建立數字型數量
func NumberQuantity(n float64) *Quantity {
	return &Quantity{Number: n, Numeric: true}
}

// TextQuantity 建立字串型數量（分數、範圍或無法解析的原文）
func TextQuantity(s string) *Quantity {
	return &Quantity{Text: s}
}

// String 回傳顯示用字串
func (q *Quantity) String() string {
	if q == nil {
		return ""
	}
	if q.Numeric {
		return strconv.FormatFloat(q.Number, 'f', -1, 64)
	}
	return q.Text
}

// MarshalJSON 數字輸出為 JSON number，其餘輸出為字串
func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.Numeric {
		return json.Marshal(q.Number)
	}
	return json.Marshal(q.Text)
}

// UnmarshalJSON 接受 JSON number 或字串
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		q.Number = n
		q.Numeric = true
		q.Text = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("quantity must be a number or string: %w", err)
	}
	q.Text = s
	q.Numeric = false
	q.Number = 0
	return nil
}

// Found 回報此食譜是否符合「找到」的最低條件
func (r *Recipe) Found() bool {
	return r != nil && len(r.Ingredients) > 0 && len(r.Instructions) > 0
}

// IngredientNames 回傳每個食材的名稱（空名稱以 raw 代替）
func (r *Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		name := ing.Ingredient
		if name == "" {
			name = ing.Raw
		}
		names = append(names, name)
	}
	return names
}

// FormatIngredient 以「數量 單位 名稱」格式化食材，用於顯示
func FormatIngredient(ing ParsedIngredient) string {
	parts := make([]string, 0, 3)
	if ing.Quantity != nil {
		parts = append(parts, ing.Quantity.String())
	}
	if ing.Unit != "" {
		parts = append(parts, ing.Unit)
	}
	parts = append(parts, ing.Ingredient)
	return strings.Join(parts, " ")
}
