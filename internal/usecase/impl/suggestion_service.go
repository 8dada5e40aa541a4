package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	deliverycontext "smartchef/internal/delivery/context"
	domainerrors "smartchef/internal/domain/errors"
	"smartchef/internal/domain/repository"
	"smartchef/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// suggestionService implements the SuggestionUsecase interface.
type suggestionService struct {
	recipeRepo    repository.RecipeRepository
	inventoryRepo repository.InventoryRepository
	logger        *slog.Logger
}

// SuggestionServiceParams holds dependencies for suggestionService, injected by Fx.
type SuggestionServiceParams struct {
	fx.In

	RecipeRepo    repository.RecipeRepository
	InventoryRepo repository.InventoryRepository
	Logger        *slog.Logger
}

// NewSuggestionService is the constructor for suggestionService.
func NewSuggestionService(params SuggestionServiceParams) usecase.SuggestionUsecase {
	return &suggestionService{
		recipeRepo:    params.RecipeRepo,
		inventoryRepo: params.InventoryRepo,
		logger:        params.Logger,
	}
}

func (srv *suggestionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SuggestRecipes ranks every recipe visible to the user by pantry coverage,
// best match first. The sort is stable, so equally-scored recipes keep their
// newest-first order. An empty pantry still returns all recipes, scored zero.
func (srv *suggestionService) SuggestRecipes(ctx context.Context, userID uuid.UUID) ([]*usecase.RecipeSuggestion, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing user id")
	}

	recipes, err := srv.recipeRepo.FindVisible(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load visible recipes")
	}

	items, err := srv.inventoryRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load inventory")
	}

	pantryNames := make([]string, 0, len(items))
	for _, item := range items {
		pantryNames = append(pantryNames, strings.ToLower(item.Name))
	}

	suggestions := make([]*usecase.RecipeSuggestion, 0, len(recipes))
	for _, recipe := range recipes {
		matched := 0
		for _, ingredient := range recipe.Ingredients {
			if pantryHas(pantryNames, normalizeIngredientName(ingredient)) {
				matched++
			}
		}

		percentage := 0.0
		if total := len(recipe.Ingredients); total > 0 {
			percentage = 100 * float64(matched) / float64(total)
		}

		suggestions = append(suggestions, &usecase.RecipeSuggestion{
			Recipe:                  *recipe,
			MatchPercentage:         percentage,
			MissingIngredientsCount: len(recipe.Ingredients) - matched,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchPercentage > suggestions[j].MatchPercentage
	})

	srv.log(ctx).Debug("ranked recipe suggestions",
		slog.String("userID", userID.String()),
		slog.Int("recipes", len(suggestions)),
		slog.Int("pantryItems", len(items)))

	return suggestions, nil
}

// pantryHas reports whether any pantry name matches the ingredient name.
// Matching is a bidirectional substring test, so "chicken" in the pantry
// covers "chicken breast" and vice versa.
func pantryHas(pantryNames []string, ingredientName string) bool {
	if ingredientName == "" {
		return false
	}

	for _, pantryName := range pantryNames {
		if pantryName == "" {
			continue
		}
		if strings.Contains(ingredientName, pantryName) || strings.Contains(pantryName, ingredientName) {
			return true
		}
	}

	return false
}
