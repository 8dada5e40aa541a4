package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"smartchef/internal/domain/entity"
	domainerrors "smartchef/internal/domain/errors"
	mockRepo "smartchef/internal/mocks/repository"
	"smartchef/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// suggestionServiceFixtures holds all test dependencies for suggestion service tests.
type suggestionServiceFixtures struct {
	service       usecase.SuggestionUsecase
	recipeRepo    *mockRepo.MockRecipeRepository
	inventoryRepo *mockRepo.MockInventoryRepository
}

func createTestSuggestionService(t *testing.T) suggestionServiceFixtures {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSuggestionService(SuggestionServiceParams{
		RecipeRepo:    recipeRepo,
		InventoryRepo: inventoryRepo,
		Logger:        logger,
	})

	return suggestionServiceFixtures{
		service:       service,
		recipeRepo:    recipeRepo,
		inventoryRepo: inventoryRepo,
	}
}

func TestSuggestionService_SuggestRecipes_MissingUserID(t *testing.T) {
	fx := createTestSuggestionService(t)

	suggestions, err := fx.service.SuggestRecipes(context.Background(), uuid.Nil)

	assert.Nil(t, suggestions)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSuggestionService_SuggestRecipes_RanksByPantryCoverage(t *testing.T) {
	fx := createTestSuggestionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fullMatch := &entity.Recipe{
		ID:          uuid.New(),
		Title:       "Chicken and Rice",
		Ingredients: []string{"Chicken breast, 500g", "Rice, 2 cups"},
	}
	halfMatch := &entity.Recipe{
		ID:          uuid.New(),
		Title:       "Chicken Tacos",
		Ingredients: []string{"Chicken, 300g", "Tortillas, 8"},
	}
	noMatch := &entity.Recipe{
		ID:          uuid.New(),
		Title:       "Lentil Curry",
		Ingredients: []string{"Lentils, 1 cup", "Coconut milk, 1 can"},
	}

	fx.recipeRepo.EXPECT().
		FindVisible(ctx, userID).
		Return([]*entity.Recipe{noMatch, halfMatch, fullMatch}, nil)
	fx.inventoryRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.InventoryItem{
			{ID: uuid.New(), UserID: userID, Name: "Chicken", Category: entity.CategoryMeat},
			{ID: uuid.New(), UserID: userID, Name: "Rice", Category: entity.CategoryGrains},
		}, nil)

	suggestions, err := fx.service.SuggestRecipes(ctx, userID)

	require.NoError(t, err)
	require.Len(t, suggestions, 3)

	assert.Equal(t, fullMatch.ID, suggestions[0].Recipe.ID)
	assert.InDelta(t, 100.0, suggestions[0].MatchPercentage, 0.001)
	assert.Equal(t, 0, suggestions[0].MissingIngredientsCount)

	assert.Equal(t, halfMatch.ID, suggestions[1].Recipe.ID)
	assert.InDelta(t, 50.0, suggestions[1].MatchPercentage, 0.001)
	assert.Equal(t, 1, suggestions[1].MissingIngredientsCount)

	assert.Equal(t, noMatch.ID, suggestions[2].Recipe.ID)
	assert.InDelta(t, 0.0, suggestions[2].MatchPercentage, 0.001)
	assert.Equal(t, 2, suggestions[2].MissingIngredientsCount)
}

func TestSuggestionService_SuggestRecipes_NoIngredientsScoresZero(t *testing.T) {
	fx := createTestSuggestionService(t)

	ctx := context.Background()
	userID := uuid.New()
	empty := &entity.Recipe{ID: uuid.New(), Title: "Mystery Dish"}

	fx.recipeRepo.EXPECT().FindVisible(ctx, userID).Return([]*entity.Recipe{empty}, nil)
	fx.inventoryRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.InventoryItem{{ID: uuid.New(), Name: "Chicken"}}, nil)

	suggestions, err := fx.service.SuggestRecipes(ctx, userID)

	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.InDelta(t, 0.0, suggestions[0].MatchPercentage, 0.001)
	assert.Equal(t, 0, suggestions[0].MissingIngredientsCount)
}

func TestSuggestionService_SuggestRecipes_EmptyPantry(t *testing.T) {
	fx := createTestSuggestionService(t)

	ctx := context.Background()
	userID := uuid.New()
	recipe := &entity.Recipe{
		ID:          uuid.New(),
		Title:       "Chicken and Rice",
		Ingredients: []string{"Chicken, 500g"},
	}

	fx.recipeRepo.EXPECT().FindVisible(ctx, userID).Return([]*entity.Recipe{recipe}, nil)
	fx.inventoryRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.InventoryItem{}, nil)

	suggestions, err := fx.service.SuggestRecipes(ctx, userID)

	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.InDelta(t, 0.0, suggestions[0].MatchPercentage, 0.001)
	assert.Equal(t, 1, suggestions[0].MissingIngredientsCount)
}

func TestSuggestionService_SuggestRecipes_StableOrderForTies(t *testing.T) {
	fx := createTestSuggestionService(t)

	ctx := context.Background()
	userID := uuid.New()

	first := &entity.Recipe{ID: uuid.New(), Title: "First", Ingredients: []string{"Lentils, 1 cup"}}
	second := &entity.Recipe{ID: uuid.New(), Title: "Second", Ingredients: []string{"Tofu, 200g"}}

	fx.recipeRepo.EXPECT().
		FindVisible(ctx, userID).
		Return([]*entity.Recipe{first, second}, nil)
	fx.inventoryRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.InventoryItem{}, nil)

	suggestions, err := fx.service.SuggestRecipes(ctx, userID)

	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, first.ID, suggestions[0].Recipe.ID)
	assert.Equal(t, second.ID, suggestions[1].Recipe.ID)
}
