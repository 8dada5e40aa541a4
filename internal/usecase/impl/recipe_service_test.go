package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"smartchef/internal/domain/entity"
	domainerrors "smartchef/internal/domain/errors"
	"smartchef/internal/domain/repository"
	mockRepo "smartchef/internal/mocks/repository"
	"smartchef/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recipeServiceFixtures holds all test dependencies for recipe service tests.
type recipeServiceFixtures struct {
	service    usecase.RecipeUsecase
	recipeRepo *mockRepo.MockRecipeRepository
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRecipeService(RecipeServiceParams{
		RecipeRepo: recipeRepo,
		Logger:     logger,
	})

	return recipeServiceFixtures{
		service:    service,
		recipeRepo: recipeRepo,
	}
}

func systemRecipe(title string) *entity.Recipe {
	return &entity.Recipe{
		ID:             uuid.New(),
		Title:          title,
		Difficulty:     entity.DifficultyEasy,
		Ingredients:    []string{"Rice, 2 cups"},
		Instructions:   []string{"Cook the rice"},
		IsSystemRecipe: true,
	}
}

func userRecipe(ownerID uuid.UUID, title string) *entity.Recipe {
	r := entity.NewUserRecipe(ownerID)
	r.ID = uuid.New()
	r.Title = title
	r.Difficulty = entity.DifficultyMedium

	return &r
}

func TestRecipeService_ListRecipes_DefaultsIncludeBoth(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.recipeRepo.EXPECT().
		List(ctx, userID, mock.AnythingOfType("repository.RecipeFilter")).
		Run(func(ctx context.Context, id uuid.UUID, filter repository.RecipeFilter) {
			assert.True(t, filter.IncludeUserRecipes)
			assert.True(t, filter.IncludeSystemRecipes)
		}).
		Return([]*entity.Recipe{systemRecipe("Fried Rice")}, nil)

	recipes, err := fx.service.ListRecipes(ctx, userID, nil)

	require.NoError(t, err)
	assert.Len(t, recipes, 1)
}

func TestRecipeService_ListRecipes_ExplicitFlags(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	userID := uuid.New()
	off := false

	fx.recipeRepo.EXPECT().
		List(ctx, userID, mock.AnythingOfType("repository.RecipeFilter")).
		Run(func(ctx context.Context, id uuid.UUID, filter repository.RecipeFilter) {
			assert.True(t, filter.IncludeUserRecipes)
			assert.False(t, filter.IncludeSystemRecipes)
		}).
		Return([]*entity.Recipe{}, nil)

	_, err := fx.service.ListRecipes(ctx, userID, &usecase.RecipeListFilter{
		IncludeSystemRecipes: &off,
	})

	require.NoError(t, err)
}

func TestRecipeService_ListRecipes_UnknownDifficulty(t *testing.T) {
	fx := createTestRecipeService(t)

	recipes, err := fx.service.ListRecipes(context.Background(), uuid.New(), &usecase.RecipeListFilter{
		Difficulty: entity.Difficulty("Impossible"),
	})

	assert.Nil(t, recipes)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRecipeService_GetRecipe_SystemVisibleToAnyone(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipe := systemRecipe("Fried Rice")

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)

	got, err := fx.service.GetRecipe(ctx, uuid.New(), recipe.ID)

	require.NoError(t, err)
	assert.Equal(t, recipe.ID, got.ID)
}

func TestRecipeService_GetRecipe_OtherUsersRecipeDenied(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipe := userRecipe(uuid.New(), "Secret Sauce")

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)

	got, err := fx.service.GetRecipe(ctx, uuid.New(), recipe.ID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeAccessDenied))
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipeID := uuid.New()

	fx.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(nil, repository.ErrRecipeNotFound)

	got, err := fx.service.GetRecipe(ctx, uuid.New(), recipeID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestRecipeService_CreateRecipe_DefaultsDifficulty(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateRecipeInput{
		Title:        "Pasta Night",
		Ingredients:  []string{"Pasta, 200g", "Tomato sauce, 1 jar"},
		Instructions: []string{"Boil pasta", "Add sauce"},
	}

	fx.recipeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Recipe")).
		Run(func(ctx context.Context, recipe *entity.Recipe) {
			recipe.ID = uuid.New()
		}).
		Return(nil)

	recipe, err := fx.service.CreateRecipe(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.DifficultyMedium, recipe.Difficulty)
	assert.False(t, recipe.IsSystemRecipe)
	require.NotNil(t, recipe.OwnerID)
	assert.Equal(t, userID, *recipe.OwnerID)
}

func TestRecipeService_UpdateRecipe_SystemRecipeNotOwned(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipe := systemRecipe("Fried Rice")
	newTitle := "My Fried Rice"

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)

	got, err := fx.service.UpdateRecipe(ctx, uuid.New(), recipe.ID, &usecase.UpdateRecipeInput{
		Title: &newTitle,
	})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotOwned))
}

func TestRecipeService_UpdateRecipe_OwnerCanUpdate(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipe := userRecipe(ownerID, "Old Title")
	newTitle := "New Title"

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)
	fx.recipeRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Recipe")).
		Run(func(ctx context.Context, updated *entity.Recipe) {
			assert.Equal(t, "New Title", updated.Title)
		}).
		Return(nil)

	got, err := fx.service.UpdateRecipe(ctx, ownerID, recipe.ID, &usecase.UpdateRecipeInput{
		Title: &newTitle,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Title", got.Title)
}

func TestRecipeService_DeleteRecipe_OtherUsersRecipe(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipe := userRecipe(uuid.New(), "Secret Sauce")

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)

	err := fx.service.DeleteRecipe(ctx, uuid.New(), recipe.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotOwned))
}

func TestRecipeService_DeleteRecipe_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipe := userRecipe(ownerID, "Pasta Night")

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)
	fx.recipeRepo.EXPECT().Delete(ctx, recipe.ID).Return(nil)

	err := fx.service.DeleteRecipe(ctx, ownerID, recipe.ID)

	require.NoError(t, err)
}
