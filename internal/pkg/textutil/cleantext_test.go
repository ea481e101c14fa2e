package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"壓縮空白", "  2   cups\n\tflour  ", "2 cups flour"},
		{"具名實體", "Tom &amp; Jerry", "Tom & Jerry"},
		{"引號實體", "&quot;secret&quot; sauce", `"secret" sauce`},
		{"十進位實體", "It&#39;s done", "It's done"},
		{"十六進位實體", "caf&#xe9;", "café"},
		{"雙重轉義", "mom&amp;#039;s recipe", "mom's recipe"},
		{"nbsp", "1&nbsp;cup", "1 cup"},
		{"空字串", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestCleanURL(t *testing.T) {
	base := "https://example.com/recipes/cake"

	resolved, ok := CleanURL("https://cdn.example.com/a.jpg", base)
	require.True(t, ok)
	require.Equal(t, "https://cdn.example.com/a.jpg", resolved)

	// 協議相對
	resolved, ok = CleanURL("//cdn.example.com/a.jpg", base)
	require.True(t, ok)
	require.Equal(t, "https://cdn.example.com/a.jpg", resolved)

	// 根相對
	resolved, ok = CleanURL("/img/a.jpg", base)
	require.True(t, ok)
	require.Equal(t, "https://example.com/img/a.jpg", resolved)

	// 相對路徑
	resolved, ok = CleanURL("img/a.jpg", base)
	require.True(t, ok)
	require.Equal(t, "https://example.com/recipes/img/a.jpg", resolved)

	_, ok = CleanURL("", base)
	require.False(t, ok)

	// 沒有 base 的相對路徑解析不出絕對網址
	_, ok = CleanURL("img/a.jpg", "")
	require.False(t, ok)
}

func TestExtractNumber(t *testing.T) {
	n, ok := ExtractNumber("Serves 4 people")
	require.True(t, ok)
	require.Equal(t, 4.0, n)

	n, ok = ExtractNumber("about 2.5 servings")
	require.True(t, ok)
	require.Equal(t, 2.5, n)

	_, ok = ExtractNumber("serves a crowd")
	require.False(t, ok)
}

func TestFirstInt(t *testing.T) {
	n, ok := FirstInt("Makes 12 muffins")
	require.True(t, ok)
	require.Equal(t, 12, n)

	_, ok = FirstInt("a dozen")
	require.False(t, ok)
}
