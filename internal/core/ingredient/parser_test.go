package ingredient

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuantityUnitName(t *testing.T) {
	parsed := Parse("2 cups all-purpose flour")

	require.Equal(t, "2 cups all-purpose flour", parsed.Raw)
	require.NotNil(t, parsed.Quantity)
	require.True(t, parsed.Quantity.Numeric)
	require.Equal(t, 2.0, parsed.Quantity.Number)
	require.Equal(t, "cup", parsed.Unit)
	require.Equal(t, "all-purpose flour", parsed.Ingredient)
	require.False(t, parsed.Optional)
}

func TestParseWithPreparation(t *testing.T) {
	parsed := Parse("1 cup onion, finely chopped")

	require.NotNil(t, parsed.Quantity)
	require.Equal(t, 1.0, parsed.Quantity.Number)
	require.Equal(t, "cup", parsed.Unit)
	require.Equal(t, "onion", parsed.Ingredient)
	require.Equal(t, "finely chopped", parsed.Preparation)
}

func TestParseFractionQuantity(t *testing.T) {
	parsed := Parse("1/2 cup butter")

	require.NotNil(t, parsed.Quantity)
	require.False(t, parsed.Quantity.Numeric)
	require.Equal(t, "1/2", parsed.Quantity.Text)
	require.Equal(t, "cup", parsed.Unit)
	require.Equal(t, "butter", parsed.Ingredient)
}

func TestParseVulgarFraction(t *testing.T) {
	parsed := Parse("½ cup sugar")

	require.NotNil(t, parsed.Quantity)
	require.Equal(t, "1/2", parsed.Quantity.Text)
	require.Equal(t, "cup", parsed.Unit)
	require.Equal(t, "sugar", parsed.Ingredient)
}

func TestParseSizeDescriptorAsUnit(t *testing.T) {
	parsed := Parse("3 large eggs, beaten")

	require.NotNil(t, parsed.Quantity)
	require.Equal(t, 3.0, parsed.Quantity.Number)
	require.Equal(t, "large", parsed.Unit)
	require.Equal(t, "eggs", parsed.Ingredient)
	require.Equal(t, "beaten", parsed.Preparation)
}

func TestParseQuantityWithoutUnit(t *testing.T) {
	parsed := Parse("2 tomatoes, diced")

	require.NotNil(t, parsed.Quantity)
	require.Equal(t, 2.0, parsed.Quantity.Number)
	require.Empty(t, parsed.Unit)
	require.Equal(t, "tomatoes", parsed.Ingredient)
	require.Equal(t, "diced", parsed.Preparation)
}

func TestParseNameOnly(t *testing.T) {
	parsed := Parse("salt and pepper to taste")

	require.Nil(t, parsed.Quantity)
	require.Empty(t, parsed.Unit)
	require.Equal(t, "salt and pepper to taste", parsed.Ingredient)
}

// 逗號後不是已知備料詞時不能切開名稱
func TestParseUnknownCommaSegmentStaysInName(t *testing.T) {
	parsed := Parse("sea salt, for serving")

	require.Equal(t, "sea salt, for serving", parsed.Ingredient)
	require.Empty(t, parsed.Preparation)
}

func TestParseKnownPreparationWithoutQuantity(t *testing.T) {
	parsed := Parse("cilantro, chopped")

	require.Equal(t, "cilantro", parsed.Ingredient)
	require.Equal(t, "chopped", parsed.Preparation)
}

func TestParseOptionalFlag(t *testing.T) {
	parsed := Parse("1 cup heavy cream (optional)")

	require.True(t, parsed.Optional)
	require.NotNil(t, parsed.Quantity)
	require.Equal(t, 1.0, parsed.Quantity.Number)
	require.Equal(t, "cup", parsed.Unit)
	require.Equal(t, "heavy cream", parsed.Ingredient)
}

func TestParseRangeQuantity(t *testing.T) {
	parsed := Parse("2-3 cups chicken broth")

	require.NotNil(t, parsed.Quantity)
	require.Equal(t, "2-3", parsed.Quantity.Text)
	require.Equal(t, "cup", parsed.Unit)
	require.Equal(t, "chicken broth", parsed.Ingredient)
}

func TestParseEmptyLine(t *testing.T) {
	parsed := Parse("   ")

	require.Empty(t, parsed.Raw)
	require.Nil(t, parsed.Quantity)
	require.Empty(t, parsed.Ingredient)
}

func TestParseHTMLEntities(t *testing.T) {
	parsed := Parse("2 cups mac &amp; cheese")

	require.Equal(t, "2 cups mac & cheese", parsed.Raw)
	require.Equal(t, "cup", parsed.Unit)
	require.Equal(t, "mac & cheese", parsed.Ingredient)
}
