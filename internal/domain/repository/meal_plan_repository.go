package repository

import (
	"context"
	"errors"
	"time"

	"smartchef/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMealPlanNotFound is returned when a plan does not exist under the
// requested owner scope.
var ErrMealPlanNotFound = errors.New("meal plan not found")

// MealPlanRepository defines the persistence operations for meal plans.
// Reads populate each meal's referenced recipe.
type MealPlanRepository interface {
	// FindByUser retrieves all plans owned by the user, ascending by date.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error)

	// FindByIDAndUser retrieves a single plan under the owner scope.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.MealPlan, error)

	// FindByUserAndDateRange retrieves the user's plan whose date falls in
	// [start, end], or ErrMealPlanNotFound.
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.MealPlan, error)

	// Create persists a new plan together with its meals.
	Create(ctx context.Context, plan *entity.MealPlan) error

	// Update saves the plan and rewrites its meal list wholesale.
	Update(ctx context.Context, plan *entity.MealPlan) error

	// Delete removes the plan under the owner scope.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
