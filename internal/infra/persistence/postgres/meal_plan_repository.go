package postgres

import (
	"context"
	"time"

	"smartchef/internal/domain/entity"
	domainerrors "smartchef/internal/domain/errors"
	"smartchef/internal/domain/repository"
	"smartchef/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mealPlanRepository implements the repository.MealPlanRepository interface using GORM.
type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository is the constructor for mealPlanRepository.
func NewMealPlanRepository(db *gorm.DB) repository.MealPlanRepository {
	return &mealPlanRepository{
		db: db,
	}
}

// FindByUser retrieves all plans owned by the user, ascending by date, with
// each meal's referenced recipe populated.
func (repo *mealPlanRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error) {
	var planModels []*model.MealPlanModel

	if err := repo.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB {
			return db.Order("meals.position ASC")
		}).
		Preload("Meals.Recipe").
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find meal plans by user")
	}

	plans := make([]*entity.MealPlan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toMealPlanDomain(planM))
	}

	return plans, nil
}

// FindByIDAndUser retrieves a single plan under the owner scope.
func (repo *mealPlanRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.MealPlan, error) {
	var planM model.MealPlanModel

	if err := repo.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB {
			return db.Order("meals.position ASC")
		}).
		Preload("Meals.Recipe").
		Where("id = ? AND user_id = ?", id, userID).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal plan by id")
	}

	return toMealPlanDomain(&planM), nil
}

// FindByUserAndDateRange retrieves the user's plan whose date falls in
// [start, end], or ErrMealPlanNotFound.
func (repo *mealPlanRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.MealPlan, error) {
	var planM model.MealPlanModel

	if err := repo.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB {
			return db.Order("meals.position ASC")
		}).
		Preload("Meals.Recipe").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal plan by date range")
	}

	return toMealPlanDomain(&planM), nil
}

// Create persists a new plan together with its meals.
func (repo *mealPlanRepository) Create(ctx context.Context, plan *entity.MealPlan) error {
	planM := fromMealPlanDomain(plan)

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("a meal plan already exists for this date")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRecipeReferenceInvalid
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal plan")
	}

	// Update the entity with generated values
	plan.ID = planM.ID
	plan.CreatedAt = planM.CreatedAt
	plan.UpdatedAt = planM.UpdatedAt

	return nil
}

// Update saves the plan and rewrites its meal list wholesale. The delete and
// re-insert run inside one transaction so readers never observe a partial
// meal list.
func (repo *mealPlanRepository) Update(ctx context.Context, plan *entity.MealPlan) error {
	planM := fromMealPlanDomain(plan)
	planM.CreatedAt = plan.CreatedAt

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_plan_id = ?", plan.ID).Delete(&model.MealModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear plan meals")
		}

		if err := tx.Omit("Meals.Recipe").Save(planM).Error; err != nil {
			return errors.Wrap(err, "failed to save meal plan")
		}

		return nil
	})
	if err != nil {
		if isForeignKeyConstraintViolation(errors.Cause(err)) {
			return domainerrors.ErrRecipeReferenceInvalid
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update meal plan")
	}

	plan.UpdatedAt = planM.UpdatedAt

	return nil
}

// Delete removes the plan under the owner scope together with its meals.
func (repo *mealPlanRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.MealPlanModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete meal plan")
		}

		if result.RowsAffected == 0 {
			return repository.ErrMealPlanNotFound
		}

		if err := tx.Where("meal_plan_id = ?", id).Delete(&model.MealModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete plan meals")
		}

		return nil
	})
}

// --- Mapper Functions ---

// toMealPlanDomain converts a GORM MealPlanModel to a domain MealPlan entity.
func toMealPlanDomain(data *model.MealPlanModel) *entity.MealPlan {
	if data == nil {
		return nil
	}

	meals := make([]entity.Meal, 0, len(data.Meals))
	for _, mealM := range data.Meals {
		meals = append(meals, entity.Meal{
			ID:       mealM.ID,
			Type:     entity.MealType(mealM.Type),
			RecipeID: mealM.RecipeID,
			Recipe:   toRecipeDomain(mealM.Recipe),
			Notes:    mealM.Notes,
		})
	}

	return &entity.MealPlan{
		ID:        data.ID,
		UserID:    data.UserID,
		Day:       data.Day,
		Date:      data.Date,
		Meals:     meals,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromMealPlanDomain converts a domain MealPlan entity to a GORM MealPlanModel.
func fromMealPlanDomain(data *entity.MealPlan) *model.MealPlanModel {
	if data == nil {
		return nil
	}

	meals := make([]*model.MealModel, 0, len(data.Meals))
	for i, meal := range data.Meals {
		meals = append(meals, &model.MealModel{
			ID:         meal.ID,
			MealPlanID: data.ID,
			Position:   i,
			Type:       string(meal.Type),
			RecipeID:   meal.RecipeID,
			Notes:      meal.Notes,
		})
	}

	return &model.MealPlanModel{
		ID:     data.ID,
		UserID: data.UserID,
		Day:    data.Day,
		Date:   data.Date,
		Meals:  meals,
	}
}
