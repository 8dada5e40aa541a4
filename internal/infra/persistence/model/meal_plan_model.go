package model

import (
	"time"

	"github.com/google/uuid"
)

// MealPlanModel mirrors the 'meal_plans' table. The unique (user_id, date)
// index enforces the one-plan-per-day invariant at the storage layer and
// backstops concurrent upserts.
type MealPlanModel struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;index;uniqueIndex:idx_meal_plans_user_date"`
	Day       string       `gorm:"type:varchar(16);not null"`
	Date      time.Time    `gorm:"not null;index;uniqueIndex:idx_meal_plans_user_date"`
	Meals     []*MealModel `gorm:"foreignKey:MealPlanID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// MealModel mirrors the 'meals' table. Meals keep an application-assigned
// identity so individual entries can be targeted; Position preserves the
// plan's ordering when the list is rewritten.
type MealModel struct {
	ID         uuid.UUID    `gorm:"type:uuid;primary_key"`
	MealPlanID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Position   int          `gorm:"not null"`
	Type       string       `gorm:"type:varchar(16);not null"`
	RecipeID   *uuid.UUID   `gorm:"type:uuid"`
	Recipe     *RecipeModel `gorm:"foreignKey:RecipeID"`
	Notes      string       `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}
