package utils

// DefaultCategoryColor is shown for user-created categories.
const DefaultCategoryColor = "#808080"

var categoryColors = map[string]string{
	"Food":        "#FF6B6B",
	"Transport":   "#4ECDC4",
	"Housing":     "#45B7D1",
	"Leisure":     "#96CEB4",
	"Health":      "#D4A5A5",
	"Education":   "#9FA8DA",
	"Salary":      "#81C784",
	"Investments": "#FFD93D",
	"Other":       "#A8A8A8",
}

// CategoryColor returns the display colour of a category.
func CategoryColor(name string) string {
	if c, ok := categoryColors[name]; ok {
		return c
	}
	return DefaultCategoryColor
}
