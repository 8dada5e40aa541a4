package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RecipeModel mirrors the 'recipes' table. Ordered free-text lists live in
// text[] columns; a null owner_id together with is_system_recipe=true marks
// a system recipe.
type RecipeModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title          string         `gorm:"type:varchar(255);not null"`
	Image          string         `gorm:"type:text"`
	PrepTime       int            `gorm:"not null"`
	CookTime       int            `gorm:"not null"`
	Servings       int            `gorm:"not null"`
	Difficulty     string         `gorm:"type:varchar(16);not null;default:'Medium';index"`
	Ingredients    pq.StringArray `gorm:"type:text[]"`
	Instructions   pq.StringArray `gorm:"type:text[]"`
	Tags           pq.StringArray `gorm:"type:text[];index:,type:gin"`
	Rating         float64        `gorm:"not null;default:0"`
	OwnerID        *uuid.UUID     `gorm:"type:uuid;index"`
	IsSystemRecipe bool           `gorm:"not null;default:false;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
