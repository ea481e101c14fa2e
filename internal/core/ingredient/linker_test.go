package ingredient

import (
	"testing"

	"github.com/stretchr/testify/require"

	"recipe-scaler/internal/pkg/common"
)

func TestFindInStepDirectMatch(t *testing.T) {
	names := []string{"onion", "garlic", "olive oil"}

	found := FindInStep("Add the diced onion and cook 8 to 10 minutes", names, DefaultMatchThreshold)
	require.Equal(t, []string{"onion"}, found)
}

func TestFindInStepMultipleMatches(t *testing.T) {
	names := []string{"onion", "garlic", "olive oil"}

	found := FindInStep("Heat the olive oil, then add garlic and onion", names, DefaultMatchThreshold)
	require.ElementsMatch(t, []string{"onion", "garlic", "olive oil"}, found)
}

// 詞與詞互相包含即算命中，涵蓋複數與部分重疊
func TestFindInStepWordContainment(t *testing.T) {
	names := []string{"chicken breasts"}

	found := FindInStep("Place the chicken breast in the pan", names, DefaultMatchThreshold)
	require.Equal(t, []string{"chicken breasts"}, found)
}

func TestFindInStepNoMatch(t *testing.T) {
	names := []string{"onion", "garlic"}

	found := FindInStep("Preheat the oven to 350 degrees", names, DefaultMatchThreshold)
	require.Empty(t, found)
}

// 空名稱跳過，比不上的名稱不收
func TestFindInStepEmptyNamesSkipped(t *testing.T) {
	names := []string{"", "saffron"}

	found := FindInStep("Stir gently until combined", names, DefaultMatchThreshold)
	require.Empty(t, found)
}

func TestExtractNames(t *testing.T) {
	ingredients := []common.ParsedIngredient{
		{Ingredient: "all-purpose flour"},
		{Ingredient: "kosher salt"},
		{Ingredient: "fresh basil leaves"},
		{Ingredient: "onion"},
		{Raw: "2 cups water"}, // 名稱空白時退回原文
	}

	names := ExtractNames(ingredients)
	require.Len(t, names, len(ingredients))
	// 連字號先被範圍連接詞的樣式吃掉，所以留下 "all purpose"
	require.Equal(t, "all purpose flour", names[0])
	require.Equal(t, "salt", names[1])
	require.Equal(t, "basil leaves", names[2])
	require.Equal(t, "onion", names[3])
	require.Equal(t, "water", names[4])
}
