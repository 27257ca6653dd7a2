package models

// Category is the closed set of attraction kinds.
type Category string

const (
	CategoryRestaurant    Category = "restaurant"
	CategoryMuseum        Category = "museum"
	CategoryHistorical    Category = "historical"
	CategoryPark          Category = "park"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"

	// CategoryAll is accepted by filters only, never stored on an attraction.
	CategoryAll Category = "all"
)

var categories = []Category{
	CategoryRestaurant,
	CategoryMuseum,
	CategoryHistorical,
	CategoryPark,
	CategoryEntertainment,
	CategoryShopping,
}

// Categories returns the storable categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}
