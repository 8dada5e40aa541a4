package entity

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty grades how hard a recipe is to cook.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}

	return false
}

// Recipe is either a system recipe (no owner, readable by everyone, immutable
// through the API) or a user recipe owned by exactly one user. The two states
// are mutually exclusive and fixed at creation; callers must go through the
// capability methods below instead of branching on the raw fields.
type Recipe struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Image          string     `json:"image"`
	PrepTime       int        `json:"prepTime"` // minutes
	CookTime       int        `json:"cookTime"` // minutes
	Servings       int        `json:"servings"`
	Difficulty     Difficulty `json:"difficulty"`
	Ingredients    []string   `json:"ingredients"`  // ordered, free text
	Instructions   []string   `json:"instructions"` // ordered
	Tags           []string   `json:"tags"`
	Rating         float64    `json:"rating"`
	OwnerID        *uuid.UUID `json:"userId,omitempty"` // nil for system recipes
	IsSystemRecipe bool       `json:"isSystemRecipe"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// NewUserRecipe stamps ownership on a recipe. The API affords no way to
// create a system recipe.
func NewUserRecipe(ownerID uuid.UUID) Recipe {
	owner := ownerID

	return Recipe{OwnerID: &owner, IsSystemRecipe: false}
}

// VisibleTo reports whether the given user may read this recipe.
// System recipes are world-readable; user recipes are owner-only.
func (r *Recipe) VisibleTo(userID uuid.UUID) bool {
	if r.IsSystemRecipe {
		return true
	}

	return r.OwnerID != nil && *r.OwnerID == userID
}

// OwnedBy reports whether the given user may mutate or delete this recipe.
// System recipes are owned by nobody.
func (r *Recipe) OwnedBy(userID uuid.UUID) bool {
	if r.IsSystemRecipe {
		return false
	}

	return r.OwnerID != nil && *r.OwnerID == userID
}
