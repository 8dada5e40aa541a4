package repository

import (
	"context"
	"errors"

	"smartchef/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is returned when a recipe id does not resolve.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeFilter describes the composable list filter. Zero values mean
// "no constraint"; visibility defaults are applied by the caller.
type RecipeFilter struct {
	// IncludeUserRecipes selects recipes owned by the requesting user.
	IncludeUserRecipes bool
	// IncludeSystemRecipes selects system recipes.
	IncludeSystemRecipes bool
	// Search is matched case-insensitively against title, tags and ingredients.
	Search string
	// Tags selects recipes carrying any of the given tags.
	Tags []string
	// Difficulty selects recipes with exactly this difficulty.
	Difficulty entity.Difficulty
	// MaxPrepTime / MaxCookTime are inclusive upper bounds in minutes.
	MaxPrepTime *int
	MaxCookTime *int
}

// RecipeRepository defines the persistence operations for recipes.
type RecipeRepository interface {
	// FindByID retrieves a recipe regardless of visibility; the caller is
	// responsible for the capability check.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// List retrieves recipes matching the filter for the given user,
	// newest first.
	List(ctx context.Context, userID uuid.UUID, filter RecipeFilter) ([]*entity.Recipe, error)

	// FindVisible retrieves every recipe visible to the user (system recipes
	// plus the user's own), newest first.
	FindVisible(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error)

	// Create persists a new recipe.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Update modifies an existing recipe.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// Delete removes a recipe by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
