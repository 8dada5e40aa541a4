package impl

import (
	"regexp"
	"strings"

	"smartchef/internal/domain/entity"
)

// Recipe ingredients are free text in the form "name, quantity" ("chicken
// breast, 500g"). The helpers below split, normalize and classify them for
// the suggestion engine and shopping list generation.

// splitIngredient separates an ingredient line into its name and quantity.
// The name is everything before the first comma; the quantity is the segment
// between the first and second commas. Lines without a comma are all name,
// with the quantity defaulting to "1".
func splitIngredient(ingredient string) (name, quantity string) {
	parts := strings.Split(ingredient, ",")
	name = strings.TrimSpace(parts[0])
	quantity = "1"
	if len(parts) > 1 {
		quantity = strings.TrimSpace(parts[1])
	}

	return name, quantity
}

// normalizeIngredientName lowercases the name part of an ingredient line for
// case-insensitive matching against pantry item names.
func normalizeIngredientName(ingredient string) string {
	name, _ := splitIngredient(ingredient)

	return strings.ToLower(name)
}

// categoryPatterns map keyword matches to grocery categories. Order matters:
// the first matching pattern wins, so "pepper" classifies as Produce before
// the Spices pattern sees it.
var categoryPatterns = []struct {
	category entity.Category
	pattern  *regexp.Regexp
}{
	{entity.CategoryMeat, regexp.MustCompile(`(?i)meat|chicken|beef|pork|fish|salmon|tuna|shrimp`)},
	{entity.CategoryDairy, regexp.MustCompile(`(?i)milk|cheese|yogurt|cream|butter`)},
	{entity.CategoryProduce, regexp.MustCompile(`(?i)apple|banana|orange|lettuce|spinach|onion|garlic|pepper|tomato|carrot`)},
	{entity.CategoryGrains, regexp.MustCompile(`(?i)rice|pasta|flour|bread|cereal|oats`)},
	{entity.CategoryPantry, regexp.MustCompile(`(?i)oil|vinegar|sauce|canned|soup|beans`)},
	{entity.CategoryFrozen, regexp.MustCompile(`(?i)frozen`)},
	{entity.CategorySpices, regexp.MustCompile(`(?i)salt|pepper|spice|herb|seasoning`)},
}

// classifyIngredient guesses a grocery category from an ingredient name.
func classifyIngredient(name string) entity.Category {
	for _, entry := range categoryPatterns {
		if entry.pattern.MatchString(name) {
			return entry.category
		}
	}

	return entity.CategoryOther
}
