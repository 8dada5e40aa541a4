package entity

// Category is the closed set of grocery categories shared by inventory items
// and shopping-list items.
type Category string

const (
	CategoryProduce Category = "Produce"
	CategoryMeat    Category = "Meat"
	CategoryDairy   Category = "Dairy"
	CategoryGrains  Category = "Grains"
	CategoryPantry  Category = "Pantry"
	CategoryFrozen  Category = "Frozen"
	CategorySpices  Category = "Spices"
	CategoryOther   Category = "Other"
)

// Categories lists every valid category value.
var Categories = []Category{
	CategoryProduce,
	CategoryMeat,
	CategoryDairy,
	CategoryGrains,
	CategoryPantry,
	CategoryFrozen,
	CategorySpices,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}
