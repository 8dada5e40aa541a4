package impl

import (
	"testing"

	"smartchef/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSplitIngredient(t *testing.T) {
	tests := []struct {
		name         string
		ingredient   string
		wantName     string
		wantQuantity string
	}{
		{
			name:         "name and quantity",
			ingredient:   "Chicken breast, 500g",
			wantName:     "Chicken breast",
			wantQuantity: "500g",
		},
		{
			name:         "no comma defaults quantity",
			ingredient:   "Salt",
			wantName:     "Salt",
			wantQuantity: "1",
		},
		{
			name:         "extra segments are ignored",
			ingredient:   "Tomatoes, 3, diced",
			wantName:     "Tomatoes",
			wantQuantity: "3",
		},
		{
			name:         "whitespace is trimmed",
			ingredient:   "  Olive oil ,  2 tbsp ",
			wantName:     "Olive oil",
			wantQuantity: "2 tbsp",
		},
		{
			name:         "empty quantity segment stays empty",
			ingredient:   "Rice,",
			wantName:     "Rice",
			wantQuantity: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, quantity := splitIngredient(tt.ingredient)

			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantQuantity, quantity)
		})
	}
}

func TestNormalizeIngredientName(t *testing.T) {
	assert.Equal(t, "chicken breast", normalizeIngredientName("Chicken Breast, 500g"))
	assert.Equal(t, "salt", normalizeIngredientName("Salt"))
}

func TestClassifyIngredient(t *testing.T) {
	tests := []struct {
		name string
		want entity.Category
	}{
		{"Chicken breast", entity.CategoryMeat},
		{"Ground beef", entity.CategoryMeat},
		{"Milk", entity.CategoryDairy},
		{"Cheddar cheese", entity.CategoryDairy},
		{"Bell pepper", entity.CategoryProduce}, // Produce wins over Spices
		{"Tomato", entity.CategoryProduce},
		{"Rice", entity.CategoryGrains},
		{"Bread", entity.CategoryGrains},
		{"Olive oil", entity.CategoryPantry},
		{"Soy sauce", entity.CategoryPantry},
		{"Frozen peas", entity.CategoryFrozen},
		{"Salt", entity.CategorySpices},
		{"Italian seasoning", entity.CategorySpices},
		{"Toothpicks", entity.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyIngredient(tt.name))
		})
	}
}
