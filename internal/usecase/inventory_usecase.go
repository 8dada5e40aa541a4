package usecase

import (
	"context"
	"time"

	"smartchef/internal/domain/entity"

	"github.com/google/uuid"
)

// InventoryUsecase defines the interface for pantry operations. Every
// operation is scoped by the authenticated user's id.
type InventoryUsecase interface {
	ListItems(ctx context.Context, userID uuid.UUID) ([]*entity.InventoryItem, error)
	ListExpiringItems(ctx context.Context, userID uuid.UUID) ([]*entity.InventoryItem, error)
	GetItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.InventoryItem, error)
	CreateItem(ctx context.Context, userID uuid.UUID, input *CreateInventoryItemInput) (*entity.InventoryItem, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, input *UpdateInventoryItemInput) (*entity.InventoryItem, error)
	DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error
}

// --- Input DTOs ---

// CreateInventoryItemInput defines the data required to add a pantry item.
type CreateInventoryItemInput struct {
	Name           string          `json:"name" validate:"required"`
	Category       entity.Category `json:"category" validate:"required"`
	Quantity       string          `json:"quantity" validate:"required"`
	ExpirationDate *time.Time      `json:"expirationDate,omitempty"`
}

// UpdateInventoryItemInput defines a partial item update. Nil fields are
// left untouched.
type UpdateInventoryItemInput struct {
	Name           *string          `json:"name,omitempty"`
	Category       *entity.Category `json:"category,omitempty"`
	Quantity       *string          `json:"quantity,omitempty"`
	ExpirationDate *time.Time       `json:"expirationDate,omitempty"`
}
