package usecase

import (
	"context"

	"smartchef/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipeUsecase defines the interface for recipe operations. Reads are
// visibility-checked; writes require ownership of the target recipe.
type RecipeUsecase interface {
	ListRecipes(ctx context.Context, userID uuid.UUID, filter *RecipeListFilter) ([]*entity.Recipe, error)
	GetRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entity.Recipe, error)
	CreateRecipe(ctx context.Context, userID uuid.UUID, input *CreateRecipeInput) (*entity.Recipe, error)
	UpdateRecipe(ctx context.Context, userID, recipeID uuid.UUID, input *UpdateRecipeInput) (*entity.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
}

// --- Input DTOs ---

// RecipeListFilter describes the composable list query. The two include
// flags default to true when nil, so an unfiltered listing returns the
// user's own recipes merged with the system catalog.
type RecipeListFilter struct {
	IncludeUserRecipes   *bool             `json:"includeUserRecipes,omitempty"`
	IncludeSystemRecipes *bool             `json:"includeSystemRecipes,omitempty"`
	Search               string            `json:"search,omitempty"`
	Tags                 []string          `json:"tags,omitempty"`
	Difficulty           entity.Difficulty `json:"difficulty,omitempty"`
	MaxPrepTime          *int              `json:"maxPrepTime,omitempty"`
	MaxCookTime          *int              `json:"maxCookTime,omitempty"`
}

// CreateRecipeInput defines the data required to create a user recipe.
type CreateRecipeInput struct {
	Title        string            `json:"title" validate:"required"`
	Image        string            `json:"image,omitempty"`
	PrepTime     int               `json:"prepTime" validate:"gte=0"`
	CookTime     int               `json:"cookTime" validate:"gte=0"`
	Servings     int               `json:"servings" validate:"gte=0"`
	Difficulty   entity.Difficulty `json:"difficulty,omitempty"`
	Ingredients  []string          `json:"ingredients" validate:"required,min=1"`
	Instructions []string          `json:"instructions" validate:"required,min=1"`
	Tags         []string          `json:"tags,omitempty"`
	Rating       float64           `json:"rating,omitempty" validate:"gte=0,lte=5"`
}

// UpdateRecipeInput defines a partial recipe update. Nil fields are left
// untouched; slice fields replace the stored slice wholesale when present.
type UpdateRecipeInput struct {
	Title        *string            `json:"title,omitempty"`
	Image        *string            `json:"image,omitempty"`
	PrepTime     *int               `json:"prepTime,omitempty" validate:"omitempty,gte=0"`
	CookTime     *int               `json:"cookTime,omitempty" validate:"omitempty,gte=0"`
	Servings     *int               `json:"servings,omitempty" validate:"omitempty,gte=0"`
	Difficulty   *entity.Difficulty `json:"difficulty,omitempty"`
	Ingredients  []string           `json:"ingredients,omitempty"`
	Instructions []string           `json:"instructions,omitempty"`
	Tags         []string           `json:"tags,omitempty"`
}
