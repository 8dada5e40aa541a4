package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

// mealPlanServiceFixtures holds all test dependencies for meal plan service tests.
type mealPlanServiceFixtures struct {
	service      usecase.MealPlanUsecase
	mealPlanRepo *mockRepo.MockMealPlanRepository
	recipeRepo   *mockRepo.MockRecipeRepository
}

func createTestMealPlanService(t *testing.T) mealPlanServiceFixtures {
	mealPlanRepo := mockRepo.NewMockMealPlanRepository(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMealPlanService(MealPlanServiceParams{
		MealPlanRepo: mealPlanRepo,
		RecipeRepo:   recipeRepo,
		Logger:       logger,
	})

	return mealPlanServiceFixtures{
		service:      service,
		mealPlanRepo: mealPlanRepo,
		recipeRepo:   recipeRepo,
	}
}

func TestDayWindow(t *testing.T) {
	date := time.Date(2025, 3, 15, 14, 30, 45, 0, time.UTC)

	start, end := dayWindow(date)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 999000000, time.UTC), end)
}

func TestMealPlanService_GetPlanByDate_UsesDayWindow(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)
	plan := &entity.MealPlan{ID: uuid.New(), UserID: userID, Day: "Saturday", Date: date}

	fx.mealPlanRepo.EXPECT().
		FindByUserAndDateRange(ctx, userID,
			time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 15, 23, 59, 59, 999000000, time.UTC)).
		Return(plan, nil)

	got, err := fx.service.GetPlanByDate(ctx, userID, date)

	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)
}

func TestMealPlanService_GetPlanByDate_NotFound(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.mealPlanRepo.EXPECT().
		FindByUserAndDateRange(ctx, userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrMealPlanNotFound)

	got, err := fx.service.GetPlanByDate(ctx, userID, time.Now())

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrMealPlanNotFound))
}

func TestMealPlanService_CreatePlan_NewDay(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	recipeID := uuid.New()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	input := &usecase.CreateMealPlanInput{
		Day:  "Saturday",
		Date: date,
		Meals: []usecase.MealInput{
			{Type: entity.MealTypeDinner, RecipeID: &recipeID, Notes: "family dinner"},
		},
	}

	fx.recipeRepo.EXPECT().
		FindByID(ctx, recipeID).
		Return(&entity.Recipe{ID: recipeID, Title: "Fried Rice"}, nil)

	fx.mealPlanRepo.EXPECT().
		FindByUserAndDateRange(ctx, userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrMealPlanNotFound).
		Once()

	var createdID uuid.UUID
	fx.mealPlanRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MealPlan")).
		Run(func(ctx context.Context, plan *entity.MealPlan) {
			plan.ID = uuid.New()
			createdID = plan.ID

			require.Len(t, plan.Meals, 1)
			assert.Equal(t, entity.MealTypeDinner, plan.Meals[0].Type)
			assert.NotEqual(t, uuid.Nil, plan.Meals[0].ID)
		}).
		Return(nil)

	fx.mealPlanRepo.EXPECT().
		FindByIDAndUser(ctx, mock.AnythingOfType("uuid.UUID"), userID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID, uid uuid.UUID) (*entity.MealPlan, error) {
			return &entity.MealPlan{ID: createdID, UserID: userID, Day: "Saturday", Date: date}, nil
		})

	plan, err := fx.service.CreatePlan(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, createdID, plan.ID)
}

func TestMealPlanService_CreatePlan_ReplacesExistingKeepingIdentity(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	existing := &entity.MealPlan{
		ID:     uuid.New(),
		UserID: userID,
		Day:    "Saturday",
		Date:   date,
		Meals:  []entity.Meal{{ID: uuid.New(), Type: entity.MealTypeLunch}},
	}

	input := &usecase.CreateMealPlanInput{
		Day:   "Saturday",
		Date:  date,
		Meals: []usecase.MealInput{{Type: entity.MealTypeBreakfast, Notes: "oatmeal"}},
	}

	fx.mealPlanRepo.EXPECT().
		FindByUserAndDateRange(ctx, userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(existing, nil)

	fx.mealPlanRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.MealPlan")).
		Run(func(ctx context.Context, plan *entity.MealPlan) {
			assert.Equal(t, existing.ID, plan.ID)
			require.Len(t, plan.Meals, 1)
			assert.Equal(t, entity.MealTypeBreakfast, plan.Meals[0].Type)
		}).
		Return(nil)

	fx.mealPlanRepo.EXPECT().
		FindByIDAndUser(ctx, existing.ID, userID).
		Return(existing, nil)

	plan, err := fx.service.CreatePlan(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, plan.ID)
}

func TestMealPlanService_CreatePlan_MissingRecipeRef(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	recipeID := uuid.New()

	input := &usecase.CreateMealPlanInput{
		Day:   "Saturday",
		Date:  time.Now(),
		Meals: []usecase.MealInput{{Type: entity.MealTypeDinner, RecipeID: &recipeID}},
	}

	fx.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(nil, repository.ErrRecipeNotFound)

	plan, err := fx.service.CreatePlan(ctx, uuid.New(), input)

	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeReferenceInvalid))
}

func TestMealPlanService_AddMeal_InvalidType(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	plan := &entity.MealPlan{ID: uuid.New(), UserID: userID}

	fx.mealPlanRepo.EXPECT().FindByIDAndUser(ctx, plan.ID, userID).Return(plan, nil)

	got, err := fx.service.AddMeal(ctx, userID, plan.ID, &usecase.MealInput{
		Type: entity.MealType("Brunch"),
	})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMealPlanService_UpdateMeal_NotFound(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	plan := &entity.MealPlan{
		ID:     uuid.New(),
		UserID: userID,
		Meals:  []entity.Meal{{ID: uuid.New(), Type: entity.MealTypeLunch}},
	}

	fx.mealPlanRepo.EXPECT().FindByIDAndUser(ctx, plan.ID, userID).Return(plan, nil)

	notes := "updated"
	got, err := fx.service.UpdateMeal(ctx, userID, plan.ID, uuid.New(), &usecase.UpdateMealInput{
		Notes: &notes,
	})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrMealNotFound))
}

func TestMealPlanService_UpdateMeal_ClearRecipeOnExplicitNull(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	recipeID := uuid.New()
	mealID := uuid.New()
	plan := &entity.MealPlan{
		ID:     uuid.New(),
		UserID: userID,
		Meals: []entity.Meal{
			{
				ID:       mealID,
				Type:     entity.MealTypeDinner,
				RecipeID: &recipeID,
				Recipe:   &entity.Recipe{ID: recipeID, Title: "Fried Rice"},
			},
		},
	}

	fx.mealPlanRepo.EXPECT().FindByIDAndUser(ctx, plan.ID, userID).Return(plan, nil).Once()
	fx.mealPlanRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.MealPlan")).
		Run(func(ctx context.Context, updated *entity.MealPlan) {
			require.Len(t, updated.Meals, 1)
			assert.Nil(t, updated.Meals[0].RecipeID)
			assert.Nil(t, updated.Meals[0].Recipe)
		}).
		Return(nil)
	fx.mealPlanRepo.EXPECT().FindByIDAndUser(ctx, plan.ID, userID).Return(plan, nil).Once()

	got, err := fx.service.UpdateMeal(ctx, userID, plan.ID, mealID, &usecase.UpdateMealInput{
		RecipeID: usecase.NewNullableNull[uuid.UUID](),
	})

	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)
}

func TestMealPlanService_UpdateMeal_AbsentRecipeLeftUntouched(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	recipeID := uuid.New()
	mealID := uuid.New()
	plan := &entity.MealPlan{
		ID:     uuid.New(),
		UserID: userID,
		Meals:  []entity.Meal{{ID: mealID, Type: entity.MealTypeDinner, RecipeID: &recipeID}},
	}

	fx.mealPlanRepo.EXPECT().FindByIDAndUser(ctx, plan.ID, userID).Return(plan, nil).Once()
	fx.mealPlanRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.MealPlan")).
		Run(func(ctx context.Context, updated *entity.MealPlan) {
			require.NotNil(t, updated.Meals[0].RecipeID)
			assert.Equal(t, recipeID, *updated.Meals[0].RecipeID)
			assert.Equal(t, "skip dessert", updated.Meals[0].Notes)
		}).
		Return(nil)
	fx.mealPlanRepo.EXPECT().FindByIDAndUser(ctx, plan.ID, userID).Return(plan, nil).Once()

	notes := "skip dessert"
	_, err := fx.service.UpdateMeal(ctx, userID, plan.ID, mealID, &usecase.UpdateMealInput{
		Notes: &notes,
	})

	require.NoError(t, err)
}

func TestMealPlanService_UpdateMeal_ReplaceRecipeValidatesRef(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	mealID := uuid.New()
	newRecipeID := uuid.New()
	plan := &entity.MealPlan{
		ID:     uuid.New(),
		UserID: userID,
		Meals:  []entity.Meal{{ID: mealID, Type: entity.MealTypeDinner}},
	}

	fx.mealPlanRepo.EXPECT().FindByIDAndUser(ctx, plan.ID, userID).Return(plan, nil)
	fx.recipeRepo.EXPECT().FindByID(ctx, newRecipeID).Return(nil, repository.ErrRecipeNotFound)

	got, err := fx.service.UpdateMeal(ctx, userID, plan.ID, mealID, &usecase.UpdateMealInput{
		RecipeID: usecase.NewNullable(newRecipeID),
	})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeReferenceInvalid))
}

func TestMealPlanService_RemoveMeal_Success(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	mealID := uuid.New()
	plan := &entity.MealPlan{
		ID:     uuid.New(),
		UserID: userID,
		Meals: []entity.Meal{
			{ID: mealID, Type: entity.MealTypeLunch},
			{ID: uuid.New(), Type: entity.MealTypeDinner},
		},
	}

	fx.mealPlanRepo.EXPECT().FindByIDAndUser(ctx, plan.ID, userID).Return(plan, nil).Once()
	fx.mealPlanRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.MealPlan")).
		Run(func(ctx context.Context, updated *entity.MealPlan) {
			require.Len(t, updated.Meals, 1)
			assert.Equal(t, entity.MealTypeDinner, updated.Meals[0].Type)
		}).
		Return(nil)
	fx.mealPlanRepo.EXPECT().FindByIDAndUser(ctx, plan.ID, userID).Return(plan, nil).Once()

	got, err := fx.service.RemoveMeal(ctx, userID, plan.ID, mealID)

	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)
}

func TestMealPlanService_RemoveMeal_NotFound(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	plan := &entity.MealPlan{ID: uuid.New(), UserID: userID}

	fx.mealPlanRepo.EXPECT().FindByIDAndUser(ctx, plan.ID, userID).Return(plan, nil)

	got, err := fx.service.RemoveMeal(ctx, userID, plan.ID, uuid.New())

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrMealNotFound))
}

func TestMealPlanService_DeletePlan_NotFound(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()

	fx.mealPlanRepo.EXPECT().Delete(ctx, planID, userID).Return(repository.ErrMealPlanNotFound)

	err := fx.service.DeletePlan(ctx, userID, planID)

	assert.True(t, errors.Is(err, domainerrors.ErrMealPlanNotFound))
}
