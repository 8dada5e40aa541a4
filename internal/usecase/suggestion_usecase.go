package usecase

import (
	"context"

	"smartchef/internal/domain/entity"

	"github.com/google/uuid"
)

// SuggestionUsecase ranks the recipes visible to a user by how much of each
// recipe's ingredient list the user's pantry already covers.
type SuggestionUsecase interface {
	SuggestRecipes(ctx context.Context, userID uuid.UUID) ([]*RecipeSuggestion, error)
}

// RecipeSuggestion is a recipe annotated with its pantry match. The
// percentage is 100 * matched / total ingredients; a recipe with no
// ingredients scores zero.
type RecipeSuggestion struct {
	entity.Recipe
	MatchPercentage         float64 `json:"matchPercentage"`
	MissingIngredientsCount int     `json:"missingIngredientsCount"`
}
