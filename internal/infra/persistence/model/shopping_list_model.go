package model

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingListModel mirrors the 'shopping_lists' table. The generated_from
// columns record provenance when the list was generated from a meal plan.
type ShoppingListModel struct {
	ID                 uuid.UUID                `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID                `gorm:"type:uuid;not null;index"`
	Name               string                   `gorm:"type:varchar(255);not null"`
	Items              []*ShoppingListItemModel `gorm:"foreignKey:ShoppingListID"`
	GeneratedFromPlan  *uuid.UUID               `gorm:"type:uuid;index;column:generated_from_plan"`
	GeneratedStartDate *time.Time               `gorm:"column:generated_start_date"`
	GeneratedEndDate   *time.Time               `gorm:"column:generated_end_date"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShoppingListModel) TableName() string {
	return "shopping_lists"
}

// ShoppingListItemModel mirrors the 'shopping_list_items' table. Items keep
// an application-assigned identity; Position preserves the list's ordering
// when it is rewritten.
type ShoppingListItemModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	ShoppingListID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position       int       `gorm:"not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Category       string    `gorm:"type:varchar(32);not null;default:'Other'"`
	Quantity       string    `gorm:"type:varchar(255);not null"`
	Checked        bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (ShoppingListItemModel) TableName() string {
	return "shopping_list_items"
}
