package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "smartchef/internal/delivery/context"
	"smartchef/internal/domain/entity"
	domainerrors "smartchef/internal/domain/errors"
	"smartchef/internal/domain/repository"
	"smartchef/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mealPlanService implements the MealPlanUsecase interface.
type mealPlanService struct {
	mealPlanRepo repository.MealPlanRepository
	recipeRepo   repository.RecipeRepository
	logger       *slog.Logger
}

// MealPlanServiceParams holds dependencies for mealPlanService, injected by Fx.
type MealPlanServiceParams struct {
	fx.In

	MealPlanRepo repository.MealPlanRepository
	RecipeRepo   repository.RecipeRepository
	Logger       *slog.Logger
}

// NewMealPlanService is the constructor for mealPlanService.
func NewMealPlanService(params MealPlanServiceParams) usecase.MealPlanUsecase {
	return &mealPlanService{
		mealPlanRepo: params.MealPlanRepo,
		recipeRepo:   params.RecipeRepo,
		logger:       params.Logger,
	}
}

func (srv *mealPlanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// dayWindow returns the inclusive bounds of the calendar day containing t.
func dayWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = start.Add(24*time.Hour - time.Millisecond)

	return start, end
}

// ListPlans retrieves the user's plans, earliest date first.
func (srv *mealPlanService) ListPlans(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error) {
	plans, err := srv.mealPlanRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal plans")
	}

	return plans, nil
}

// GetPlanByDate retrieves the plan whose date falls on the same calendar day
// as the given date.
func (srv *mealPlanService) GetPlanByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.MealPlan, error) {
	start, end := dayWindow(date)

	plan, err := srv.mealPlanRepo.FindByUserAndDateRange(ctx, userID, start, end)
	if err != nil {
		if errors.Is(err, repository.ErrMealPlanNotFound) {
			return nil, domainerrors.ErrMealPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal plan by date")
	}

	return plan, nil
}

// CreatePlan creates the plan for a day, or replaces the existing one.
// Replacing keeps the plan's identity so links to it stay valid.
func (srv *mealPlanService) CreatePlan(ctx context.Context, userID uuid.UUID, input *usecase.CreateMealPlanInput) (*entity.MealPlan, error) {
	srv.log(ctx).Info("Creating meal plan", slog.String("userID", userID.String()), slog.Time("date", input.Date))

	meals := make([]entity.Meal, 0, len(input.Meals))
	for _, mealInput := range input.Meals {
		meal, err := srv.buildMeal(ctx, &mealInput)
		if err != nil {
			return nil, err
		}
		meals = append(meals, *meal)
	}

	start, end := dayWindow(input.Date)
	existing, err := srv.mealPlanRepo.FindByUserAndDateRange(ctx, userID, start, end)
	if err != nil && !errors.Is(err, repository.ErrMealPlanNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing plan")
	}

	if existing != nil {
		existing.Day = input.Day
		existing.Date = input.Date
		existing.Meals = meals

		if err := srv.mealPlanRepo.Update(ctx, existing); err != nil {
			return nil, errors.Wrap(err, "failed to replace meal plan")
		}

		return srv.reload(ctx, userID, existing.ID)
	}

	plan := &entity.MealPlan{
		UserID: userID,
		Day:    input.Day,
		Date:   input.Date,
		Meals:  meals,
	}

	if err := srv.mealPlanRepo.Create(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to create meal plan")
	}

	return srv.reload(ctx, userID, plan.ID)
}

// AddMeal appends a meal to an existing plan.
func (srv *mealPlanService) AddMeal(ctx context.Context, userID, planID uuid.UUID, input *usecase.MealInput) (*entity.MealPlan, error) {
	plan, err := srv.findPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	meal, err := srv.buildMeal(ctx, input)
	if err != nil {
		return nil, err
	}
	plan.Meals = append(plan.Meals, *meal)

	if err := srv.mealPlanRepo.Update(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to add meal")
	}

	return srv.reload(ctx, userID, planID)
}

// UpdateMeal applies a partial update to one meal within a plan.
func (srv *mealPlanService) UpdateMeal(ctx context.Context, userID, planID, mealID uuid.UUID, input *usecase.UpdateMealInput) (*entity.MealPlan, error) {
	plan, err := srv.findPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	meal := plan.FindMeal(mealID)
	if meal == nil {
		return nil, domainerrors.ErrMealNotFound
	}

	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown meal type")
		}
		meal.Type = *input.Type
	}
	if input.RecipeID.Set {
		if input.RecipeID.Valid {
			if err := srv.checkRecipeRef(ctx, input.RecipeID.Value); err != nil {
				return nil, err
			}
			recipeID := input.RecipeID.Value
			meal.RecipeID = &recipeID
		} else {
			// Explicit null detaches the recipe.
			meal.RecipeID = nil
			meal.Recipe = nil
		}
	}
	if input.Notes != nil {
		meal.Notes = *input.Notes
	}

	if err := srv.mealPlanRepo.Update(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to update meal")
	}

	return srv.reload(ctx, userID, planID)
}

// RemoveMeal deletes one meal from a plan.
func (srv *mealPlanService) RemoveMeal(ctx context.Context, userID, planID, mealID uuid.UUID) (*entity.MealPlan, error) {
	plan, err := srv.findPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	if !plan.RemoveMeal(mealID) {
		return nil, domainerrors.ErrMealNotFound
	}

	if err := srv.mealPlanRepo.Update(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to remove meal")
	}

	return srv.reload(ctx, userID, planID)
}

// DeletePlan removes a plan under the owner scope.
func (srv *mealPlanService) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	srv.log(ctx).Info("Deleting meal plan", slog.String("userID", userID.String()), slog.String("planID", planID.String()))

	if err := srv.mealPlanRepo.Delete(ctx, planID, userID); err != nil {
		if errors.Is(err, repository.ErrMealPlanNotFound) {
			return domainerrors.ErrMealPlanNotFound
		}

		return errors.Wrap(err, "failed to delete meal plan")
	}

	return nil
}

// --- helpers ---

func (srv *mealPlanService) findPlan(ctx context.Context, userID, planID uuid.UUID) (*entity.MealPlan, error) {
	plan, err := srv.mealPlanRepo.FindByIDAndUser(ctx, planID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMealPlanNotFound) {
			return nil, domainerrors.ErrMealPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal plan")
	}

	return plan, nil
}

// buildMeal validates a meal input and stamps a fresh identity on it.
func (srv *mealPlanService) buildMeal(ctx context.Context, input *usecase.MealInput) (*entity.Meal, error) {
	if !input.Type.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown meal type")
	}
	if input.RecipeID != nil {
		if err := srv.checkRecipeRef(ctx, *input.RecipeID); err != nil {
			return nil, err
		}
	}

	return &entity.Meal{
		ID:       uuid.New(),
		Type:     input.Type,
		RecipeID: input.RecipeID,
		Notes:    input.Notes,
	}, nil
}

// checkRecipeRef rejects meals pointing at recipes that do not exist, naming
// the offending id.
func (srv *mealPlanService) checkRecipeRef(ctx context.Context, recipeID uuid.UUID) error {
	_, err := srv.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return domainerrors.ErrRecipeReferenceInvalid.WithDetails("recipe " + recipeID.String() + " does not exist")
		}

		return errors.Wrap(err, "failed to check recipe reference")
	}

	return nil
}

// reload re-reads a plan so meals come back with their recipes populated.
func (srv *mealPlanService) reload(ctx context.Context, userID, planID uuid.UUID) (*entity.MealPlan, error) {
	plan, err := srv.mealPlanRepo.FindByIDAndUser(ctx, planID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload meal plan")
	}

	return plan, nil
}
