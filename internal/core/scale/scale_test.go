package scale

import (
	"testing"

	"github.com/stretchr/testify/require"

	"recipe-scaler/internal/pkg/common"
)

func TestParseServings(t *testing.T) {
	require.Equal(t, 8, ParseServings("8"))
	require.Equal(t, 4, ParseServings("4 to 6 servings"))
	require.Equal(t, 12, ParseServings("Makes 12 muffins"))
	// 缺漏或解析不出數字時用預設值
	require.Equal(t, DefaultServings, ParseServings(""))
	require.Equal(t, DefaultServings, ParseServings("a crowd"))
}

func TestClampServings(t *testing.T) {
	require.Equal(t, MinServings, ClampServings(0))
	require.Equal(t, MinServings, ClampServings(-3))
	require.Equal(t, 25, ClampServings(25))
	require.Equal(t, MaxServings, ClampServings(100))
}

func TestScaleIngredientNumeric(t *testing.T) {
	ing := common.ParsedIngredient{
		Raw:        "2 cups flour",
		Quantity:   common.NumberQuantity(2),
		Unit:       "cup",
		Ingredient: "flour",
	}

	scaled := ScaleIngredient(ing, 1.5)
	require.True(t, scaled.Quantity.Numeric)
	require.Equal(t, 3.0, scaled.Quantity.Number)
	// 原值不變
	require.Equal(t, 2.0, ing.Quantity.Number)
}

func TestScaleIngredientFractionDoubles(t *testing.T) {
	ing := common.ParsedIngredient{
		Raw:        "1/2 cup butter",
		Quantity:   common.TextQuantity("1/2"),
		Unit:       "cup",
		Ingredient: "butter",
	}

	scaled := ScaleIngredient(ing, 2)
	require.False(t, scaled.Quantity.Numeric)
	require.Equal(t, "1", scaled.Quantity.Text)
}

func TestScaleIngredientMixedFraction(t *testing.T) {
	ing := common.ParsedIngredient{
		Quantity: common.TextQuantity("2 1/4"),
	}

	scaled := ScaleIngredient(ing, 2)
	require.Equal(t, "4 1/2", scaled.Quantity.Text)
}

func TestScaleIngredientRange(t *testing.T) {
	ing := common.ParsedIngredient{
		Quantity: common.TextQuantity("2-3"),
	}

	scaled := ScaleIngredient(ing, 2)
	require.Equal(t, "4-6", scaled.Quantity.Text)

	scaled = ScaleIngredient(ing, 0.5)
	require.Equal(t, "1-1.5", scaled.Quantity.Text)
}

func TestScaleIngredientPassthrough(t *testing.T) {
	// 沒有數量或非數字文字原樣保留
	noQuantity := common.ParsedIngredient{Ingredient: "salt to taste"}
	require.Nil(t, ScaleIngredient(noQuantity, 2).Quantity)

	freeText := common.ParsedIngredient{Quantity: common.TextQuantity("a pinch")}
	require.Equal(t, "a pinch", ScaleIngredient(freeText, 2).Quantity.Text)
}

func TestFormatFraction(t *testing.T) {
	require.Equal(t, "1/2", formatFraction(0.5))
	require.Equal(t, "1 1/2", formatFraction(1.5))
	require.Equal(t, "3", formatFraction(3.0))
	require.Equal(t, "2/3", formatFraction(0.7))
	require.Equal(t, "1/8", formatFraction(0.125))
	// 分數表由小到大逐一比對，0.667 先落在 5/8 的容差內
	require.Equal(t, "5/8", formatFraction(0.667))
	// 對不上常見分數時退回小數
	require.Equal(t, "0.06", formatFraction(0.06))
}

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "4", formatNumber(4))
	require.Equal(t, "1.5", formatNumber(1.5))
	require.Equal(t, "0.33", formatNumber(1.0/3))
}

func TestScaleRecipe(t *testing.T) {
	recipe := &common.Recipe{
		Title:    "Pancakes",
		Servings: "4 servings",
		Ingredients: []common.ParsedIngredient{
			{Raw: "2 cups flour", Quantity: common.NumberQuantity(2), Unit: "cup", Ingredient: "flour"},
			{Raw: "1/2 cup milk", Quantity: common.TextQuantity("1/2"), Unit: "cup", Ingredient: "milk"},
		},
		Instructions: []common.Instruction{
			{Step: 1, Text: "Mix 2 cups flour with the milk.", Ingredients: []string{"flour", "milk"}},
			{Step: 2, Text: "Cook on a hot skillet."},
		},
	}

	scaled := Scale(recipe, 8)

	require.Equal(t, 8, scaled.CurrentServings)
	require.Equal(t, "4 servings", scaled.OriginalServings)
	require.Equal(t, 2.0, scaled.ScalingMultiplier)

	require.Equal(t, 4.0, scaled.Ingredients[0].Quantity.Number)
	require.Equal(t, "1", scaled.Ingredients[1].Quantity.Text)

	// 步驟文字中的數量也跟著改寫
	require.Equal(t, "Mix 4 cups flour with the milk.", scaled.Instructions[0].Text)
	require.Equal(t, "Cook on a hot skillet.", scaled.Instructions[1].Text)

	// 原始食譜不受影響
	require.Equal(t, 2.0, recipe.Ingredients[0].Quantity.Number)
	require.Equal(t, "Mix 2 cups flour with the milk.", recipe.Instructions[0].Text)
}

// 換算後的視圖不共用原始食譜的切片
func TestScaleCopiesImages(t *testing.T) {
	recipe := &common.Recipe{
		Servings: "4",
		Images:   []string{"https://example.com/cake.jpg"},
		Ingredients: []common.ParsedIngredient{
			{Quantity: common.NumberQuantity(2), Unit: "cup", Ingredient: "flour"},
		},
		Instructions: []common.Instruction{
			{Step: 1, Text: "Mix the flour."},
		},
	}

	scaled := Scale(recipe, 8)
	require.Equal(t, recipe.Images, scaled.Images)

	scaled.Images[0] = "https://example.com/other.jpg"
	require.Equal(t, "https://example.com/cake.jpg", recipe.Images[0])
}

// 目標等於原始份數時，換算是恆等轉換
func TestScaleIdentity(t *testing.T) {
	recipe := &common.Recipe{
		Servings: "4",
		Ingredients: []common.ParsedIngredient{
			{Quantity: common.NumberQuantity(3), Unit: "cup", Ingredient: "flour"},
			{Quantity: common.TextQuantity("1/2"), Unit: "teaspoon", Ingredient: "salt"},
		},
		Instructions: []common.Instruction{
			{Step: 1, Text: "Combine the flour and salt."},
		},
	}

	scaled := Scale(recipe, 4)
	require.Equal(t, 1.0, scaled.ScalingMultiplier)
	require.Equal(t, 3.0, scaled.Ingredients[0].Quantity.Number)
	require.Equal(t, "1/2", scaled.Ingredients[1].Quantity.Text)
}

func TestScaleQuantitiesInText(t *testing.T) {
	tests := []struct {
		text       string
		multiplier float64
		want       string
	}{
		{"Add 2 cups of broth", 2, "Add 4 cups of broth"},
		{"Add 1/2 cup sugar", 2, "Add 1 cup sugar"},
		{"Use 3-4 oz of cheese", 2, "Use 6-8 oz of cheese"},
		// 時間不帶計量單位，不得被改寫
		{"Simmer for 10 minutes", 2, "Simmer for 10 minutes"},
		{"Bake at 350 degrees", 3, "Bake at 350 degrees"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, scaleQuantitiesInText(tt.text, tt.multiplier), "text %q", tt.text)
	}
}

func TestResolveStepIngredients(t *testing.T) {
	candidates := []string{"onion", "olive oil"}

	// 子字串與模糊比對都比不上的引用剔除
	resolved := resolveStepIngredients([]string{"onion", "onions", "chocolate"}, candidates)
	require.Equal(t, []string{"onion", "onions"}, resolved)

	require.Nil(t, resolveStepIngredients(nil, candidates))
}

func TestSuggestedServings(t *testing.T) {
	suggestions := SuggestedServings(4)
	require.LessOrEqual(t, len(suggestions), 6)
	require.Contains(t, suggestions, 2)  // 一半
	require.Contains(t, suggestions, 4)  // 原樣
	require.Contains(t, suggestions, 8)  // 兩倍
	require.NotContains(t, suggestions, 16)

	// 排序且去重
	for i := 1; i < len(suggestions); i++ {
		require.Greater(t, suggestions[i], suggestions[i-1])
	}
}
