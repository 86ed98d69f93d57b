package reporting

import "strings"

// Category names produced by the classifier and the distribution report
const (
	CategoryBasketball = "Basketball"
	CategoryRunning    = "Running"
	CategoryClothing   = "Clothing"
	CategorySneakers   = "Sneakers"
	CategoryOther      = "Other"
)

// classifierRules are tested in order; first match wins
var classifierRules = []struct {
	keywords []string
	category string
}{
	{[]string{"basketball", "ball"}, CategoryBasketball},
	{[]string{"running", "run"}, CategoryRunning},
	{[]string{"shirt", "clothing", "shorts", "apparel"}, CategoryClothing},
	{[]string{"sneaker", "shoe", "nike", "adidas"}, CategorySneakers},
}

// ClassifyCategory maps a free-text product name to a category by keyword.
// Used when a product carries no explicit category, or when an order line
// names a product no longer in the catalog.
func ClassifyCategory(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// categoryColors is the fixed display palette; unrecognized categories share
// the fallback color.
var categoryColors = map[string]string{
	CategorySneakers:   "#6366f1",
	CategoryRunning:    "#22c55e",
	CategoryBasketball: "#f59e0b",
	CategoryClothing:   "#ec4899",
	CategoryOther:      "#94a3b8",
}

const fallbackColor = "#94a3b8"

// CategoryColor returns the display color for a category
func CategoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return fallbackColor
}
