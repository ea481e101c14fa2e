package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cup", "cup"},
		{"cups", "cup"},
		{"Cups", "cup"},
		{"tbsp", "tablespoon"},
		{"tablespoons", "tablespoon"},
		{"tsp", "teaspoon"},
		{"tsp.", "teaspoon"},
		{"lb", "pound"},
		{"lbs.", "pound"},
		{"oz", "ounce"},
		{"fl oz", "fluid ounce"},
		{"g", "gram"},
		{"kg", "kilogram"},
		{"ml", "milliliter"},
		{"cloves", "clove"},
		{"pkg", "package"},
		{"large", "large"},
		{"med", "medium"},
	}

	for _, tt := range tests {
		got, ok := NormalizeUnit(tt.input)
		require.True(t, ok, "input %q", tt.input)
		require.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestNormalizeUnitUnknown(t *testing.T) {
	for _, input := range []string{"", "flour", "xyz", "handful"} {
		_, ok := NormalizeUnit(input)
		require.False(t, ok, "input %q", input)
	}
}

// 標準名稱再查一次結果不變
func TestNormalizeUnitStable(t *testing.T) {
	for _, unit := range []string{"cup", "tablespoon", "teaspoon", "pound", "gram"} {
		first, ok := NormalizeUnit(unit)
		require.True(t, ok)
		second, ok := NormalizeUnit(first)
		require.True(t, ok)
		require.Equal(t, first, second)
	}
}

func TestIsSizeDescriptor(t *testing.T) {
	require.True(t, IsSizeDescriptor("large"))
	require.True(t, IsSizeDescriptor("Medium "))
	require.False(t, IsSizeDescriptor("cup"))
}

func TestUnitVariantsSortedByWidth(t *testing.T) {
	variants := UnitVariants()
	require.NotEmpty(t, variants)
	for i := 1; i < len(variants); i++ {
		require.GreaterOrEqual(t, len(variants[i-1]), len(variants[i]),
			"variants must be sorted longest first")
	}
}
