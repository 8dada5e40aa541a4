package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItemModel mirrors the 'inventory_items' table. The composite
// (user_id, category) index serves category filtering per owner; the
// expiration_date index serves the expiring-items window query.
type InventoryItemModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index;index:idx_inventory_user_category"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Category       string     `gorm:"type:varchar(32);not null;default:'Other';index:idx_inventory_user_category"`
	Quantity       string     `gorm:"type:varchar(100);not null"`
	ExpirationDate *time.Time `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}
