package usecase

import (
	"context"
	"time"

	"smartchef/internal/domain/entity"

	"github.com/google/uuid"
)

// MealPlanUsecase defines the interface for meal plan operations. Creating a
// plan for a day that already has one replaces that day's plan.
type MealPlanUsecase interface {
	ListPlans(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error)
	GetPlanByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.MealPlan, error)
	CreatePlan(ctx context.Context, userID uuid.UUID, input *CreateMealPlanInput) (*entity.MealPlan, error)
	AddMeal(ctx context.Context, userID, planID uuid.UUID, input *MealInput) (*entity.MealPlan, error)
	UpdateMeal(ctx context.Context, userID, planID, mealID uuid.UUID, input *UpdateMealInput) (*entity.MealPlan, error)
	RemoveMeal(ctx context.Context, userID, planID, mealID uuid.UUID) (*entity.MealPlan, error)
	DeletePlan(ctx context.Context, userID, planID uuid.UUID) error
}

// --- Input DTOs ---

// MealInput defines one meal entry within a plan.
type MealInput struct {
	Type     entity.MealType `json:"type" validate:"required"`
	RecipeID *uuid.UUID      `json:"recipeId,omitempty"`
	Notes    string          `json:"notes,omitempty"`
}

// CreateMealPlanInput defines the data required to create (or replace) the
// plan for a single day.
type CreateMealPlanInput struct {
	Day   string      `json:"day" validate:"required"`
	Date  time.Time   `json:"date" validate:"required"`
	Meals []MealInput `json:"meals,omitempty" validate:"omitempty,dive"`
}

// UpdateMealInput defines a partial update of one meal. Absent fields are
// left untouched; an explicit null recipeId detaches the meal's recipe.
type UpdateMealInput struct {
	Type     *entity.MealType    `json:"type,omitempty"`
	RecipeID Nullable[uuid.UUID] `json:"recipeId"`
	Notes    *string             `json:"notes,omitempty"`
}
