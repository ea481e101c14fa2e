package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"recipe-scaler/internal/pkg/common"
)

const jsonldPage = `<html><head>
<script type="application/ld+json">{not valid json</script>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@graph": [
    {"@type": "WebSite", "name": "Example Cooking"},
    {
      "@type": "Recipe",
      "name": "Chocolate Cake",
      "description": "A rich chocolate cake.",
      "author": {"@type": "Person", "name": "Jane Doe"},
      "recipeIngredient": [
        "2 cups all-purpose flour",
        "1/2 cup butter",
        "1 large onion, diced"
      ],
      "recipeInstructions": [
        {"@type": "HowToStep", "text": "Preheat the oven to 350 degrees."},
        {"@type": "HowToStep", "text": "Add the diced onion and cook 8 to 10 minutes."}
      ],
      "totalTime": "PT1H15M",
      "prepTime": "PT15M",
      "recipeYield": "8",
      "image": ["https://example.com/cake.jpg", {"url": "/images/cake2.jpg"}]
    }
  ]
}
</script>
</head><body><h1>Chocolate Cake</h1></body></html>`

func TestParseJSONLD(t *testing.T) {
	recipe := ParseJSONLD(jsonldPage, "https://example.com/recipes/cake")
	require.True(t, recipe.Found())

	require.Equal(t, "Chocolate Cake", recipe.Title)
	require.Equal(t, "A rich chocolate cake.", recipe.Description)
	require.Equal(t, "Jane Doe", recipe.Author)
	require.Equal(t, "1 hour 15 minutes", recipe.TotalTime)
	require.Equal(t, "15 minutes", recipe.PrepTime)
	require.Equal(t, "8", recipe.Servings)
	require.Equal(t, common.SourceJSONLD, recipe.Source)
	require.Equal(t, "example.com", recipe.Domain)

	require.Len(t, recipe.Ingredients, 3)
	require.Equal(t, 2.0, recipe.Ingredients[0].Quantity.Number)
	require.Equal(t, "cup", recipe.Ingredients[0].Unit)
	require.Equal(t, "all-purpose flour", recipe.Ingredients[0].Ingredient)
	require.Equal(t, "1/2", recipe.Ingredients[1].Quantity.Text)

	require.Len(t, recipe.Instructions, 2)
	require.Equal(t, 1, recipe.Instructions[0].Step)
	require.Equal(t, 2, recipe.Instructions[1].Step)

	// 範圍時間取較大的後界，步驟連結到 onion
	require.NotNil(t, recipe.Instructions[1].Duration)
	require.Equal(t, 10, recipe.Instructions[1].Duration.Minutes)
	require.Contains(t, recipe.Instructions[1].Ingredients, "onion")

	// 相對路徑的圖片以來源頁面補全
	require.Equal(t, []string{
		"https://example.com/cake.jpg",
		"https://example.com/images/cake2.jpg",
	}, recipe.Images)
}

func TestParseJSONLDTypeArray(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
	{"@type": ["Recipe", "NewsArticle"], "name": "Pasta",
	 "recipeIngredient": ["1 pound spaghetti"],
	 "recipeInstructions": ["Boil the pasta for 9 minutes."]}
	</script></head></html>`

	recipe := ParseJSONLD(page, "https://example.com/pasta")
	require.True(t, recipe.Found())
	require.Equal(t, "Pasta", recipe.Title)
}

func TestParseJSONLDUntitledDefault(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
	{"@type": "Recipe",
	 "recipeIngredient": ["1 cup rice"],
	 "recipeInstructions": ["Cook the rice in a pot."]}
	</script></head></html>`

	recipe := ParseJSONLD(page, "https://example.com/rice")
	require.True(t, recipe.Found())
	require.Equal(t, "Untitled Recipe", recipe.Title)
}

const microdataPage = `<html><body>
<div itemscope itemtype="https://schema.org/Recipe">
  <h2 itemprop="name">Beef Stew</h2>
  <span itemprop="author">John Smith</span>
  <ul>
    <li itemprop="recipeIngredient">2 pounds beef chuck</li>
    <li itemprop="recipeIngredient">3 large carrots</li>
  </ul>
  <ol>
    <li itemprop="recipeInstructions">Brown the beef in a pot over high heat.</li>
    <li itemprop="recipeInstructions">Simmer for 2 hours until tender.</li>
  </ol>
  <time itemprop="totalTime" datetime="PT2H30M">about 2.5 hrs</time>
  <span itemprop="recipeYield">6 servings</span>
</div>
</body></html>`

func TestParseMicrodata(t *testing.T) {
	recipe := ParseMicrodata(microdataPage, "https://example.com/stew")
	require.True(t, recipe.Found())

	require.Equal(t, "Beef Stew", recipe.Title)
	require.Equal(t, "John Smith", recipe.Author)
	require.Equal(t, common.SourceMicrodata, recipe.Source)

	require.Len(t, recipe.Ingredients, 2)
	require.Equal(t, "pound", recipe.Ingredients[0].Unit)

	require.Len(t, recipe.Instructions, 2)
	require.Equal(t, 1, recipe.Instructions[0].Step)

	// datetime 屬性優先於顯示文字
	require.Equal(t, "2 hours 30 minutes", recipe.TotalTime)
	require.Equal(t, "6 servings", recipe.Servings)
}

func TestParseMicrodataAbsent(t *testing.T) {
	recipe := ParseMicrodata("<html><body><p>no recipe here</p></body></html>", "https://example.com/x")
	require.Nil(t, recipe)
}

const heuristicsPage = `<html><head><title>Simple Cake Recipe</title></head><body>
<h1>Simple Cake</h1>
<ul class="ingredients">
  <li>2 cups flour</li>
  <li>1 cup sugar</li>
  <li>3 large eggs</li>
  <li>Print this recipe</li>
</ul>
<ol class="instructions">
  <li>Preheat the oven to 350 degrees.</li>
  <li>Mix the flour and sugar in a large bowl.</li>
  <li>Bake for 30 minutes.</li>
</ol>
</body></html>`

func TestParseHeuristics(t *testing.T) {
	recipe := ParseHeuristics(heuristicsPage, "https://example.com/simple-cake")
	require.True(t, recipe.Found())

	require.Equal(t, "Simple Cake", recipe.Title)
	require.Equal(t, common.SourceHeuristics, recipe.Source)

	// 導覽類文字被食材判定擋掉
	require.Len(t, recipe.Ingredients, 3)
	require.Len(t, recipe.Instructions, 3)
	require.NotNil(t, recipe.Instructions[2].Duration)
	require.Equal(t, 30, recipe.Instructions[2].Duration.Minutes)
}

const headingPage = `<html><body>
<h1>Grandma's Pancakes</h1>
<h2>Ingredients</h2>
<p>2 cups flour<br>1 cup milk<br>3 large eggs</p>
<h2>Method</h2>
<p>STEP 1 Whisk everything together in a bowl.</p>
<p>STEP 2 Cook on a hot skillet for 3 minutes per side.</p>
</body></html>`

// 沒有清單結構時退到標題掃描與 <br> 分行
func TestParseHeuristicsHeadingFallback(t *testing.T) {
	recipe := ParseHeuristics(headingPage, "https://example.com/pancakes")
	require.True(t, recipe.Found())

	require.Len(t, recipe.Ingredients, 3)
	require.Equal(t, "flour", recipe.Ingredients[0].Ingredient)

	require.Len(t, recipe.Instructions, 2)
	require.Contains(t, recipe.Instructions[0].Text, "Whisk")
}

func TestParseOrchestratorOrder(t *testing.T) {
	// JSON-LD 優先於 microdata 與啟發式
	recipe := Parse(jsonldPage, "https://example.com/recipes/cake")
	require.True(t, recipe.Found())
	require.Equal(t, common.SourceJSONLD, recipe.Source)

	recipe = Parse(microdataPage, "https://example.com/stew")
	require.True(t, recipe.Found())
	require.Equal(t, common.SourceMicrodata, recipe.Source)

	recipe = Parse(heuristicsPage, "https://example.com/simple-cake")
	require.True(t, recipe.Found())
	require.Equal(t, common.SourceHeuristics, recipe.Source)
}

func TestParseNotFound(t *testing.T) {
	page := `<html><body><h1>Welcome to my blog</h1><p>Nothing to cook here.</p></body></html>`
	recipe := Parse(page, "https://example.com/blog")
	require.Nil(t, recipe)
	require.False(t, recipe.Found())
}
