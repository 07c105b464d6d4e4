package domain

// Category is one of the fixed spending categories.
type Category string

const (
	Housing        Category = "Housing"
	FoodAndDining  Category = "Food & Dining"
	Transportation Category = "Transportation"
	Utilities      Category = "Utilities"
	Entertainment  Category = "Entertainment"
	Shopping       Category = "Shopping"
	Health         Category = "Health"
	Income         Category = "Income"
	Transfers      Category = "Transfers"
	Other          Category = "Other"
)

// NeutralColor is used for any category without an assigned color.
const NeutralColor = "#94a3b8"

// NoCategory is reported as the top spending category when there is no spend.
const NoCategory = "None"

// Categories lists every category in display order.
var Categories = []Category{
	Housing,
	FoodAndDining,
	Transportation,
	Utilities,
	Entertainment,
	Shopping,
	Health,
	Income,
	Transfers,
	Other,
}

var categoryColors = map[Category]string{
	Housing:        "#3b82f6",
	FoodAndDining:  "#10b981",
	Transportation: "#f59e0b",
	Utilities:      "#6366f1",
	Entertainment:  "#ec4899",
	Shopping:       "#8b5cf6",
	Health:         "#ef4444",
	Income:         "#22c55e",
	Transfers:      "#94a3b8",
	Other:          "#64748b",
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color returns the display color for c, or NeutralColor for unknown values.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return NeutralColor
}

// ParseCategory returns the category matching s exactly.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.IsValid()
}
