package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealType identifies the slot a meal occupies within a day.
type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
	MealTypeSnack     MealType = "Snack"
)

// Valid reports whether t is a known meal type.
func (t MealType) Valid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}

	return false
}

// Meal is one entry in a meal plan. It carries its own identity so it can be
// updated or removed individually. Recipe is populated on reads when RecipeID
// is set.
type Meal struct {
	ID       uuid.UUID  `json:"id"`
	Type     MealType   `json:"type"`
	RecipeID *uuid.UUID `json:"recipeId,omitempty"`
	Recipe   *Recipe    `json:"recipe,omitempty"`
	Notes    string     `json:"notes"`
}

// MealPlan is one user's plan for a single calendar day. At most one plan
// exists per (user, date); the storage layer enforces the uniqueness.
type MealPlan struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Day       string    `json:"day"` // label, e.g. "Monday"
	Date      time.Time `json:"date"`
	Meals     []Meal    `json:"meals"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FindMeal returns a pointer to the meal with the given identity, or nil.
func (p *MealPlan) FindMeal(mealID uuid.UUID) *Meal {
	for i := range p.Meals {
		if p.Meals[i].ID == mealID {
			return &p.Meals[i]
		}
	}

	return nil
}

// RemoveMeal filters the meal with the given identity out of the plan.
// It reports whether a meal was removed.
func (p *MealPlan) RemoveMeal(mealID uuid.UUID) bool {
	kept := p.Meals[:0]
	removed := false
	for _, meal := range p.Meals {
		if meal.ID == mealID {
			removed = true

			continue
		}
		kept = append(kept, meal)
	}
	p.Meals = kept

	return removed
}
