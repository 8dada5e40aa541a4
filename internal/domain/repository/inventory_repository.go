package repository

import (
	"context"
	"errors"
	"time"

	"smartchef/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInventoryItemNotFound is returned when an item does not exist under the
// requested owner scope.
var ErrInventoryItemNotFound = errors.New("inventory item not found")

// InventoryRepository defines the persistence operations for pantry items.
// Every lookup is scoped by the owning user's id; an item belonging to a
// different user is indistinguishable from a missing one.
type InventoryRepository interface {
	// FindByUser retrieves all inventory items owned by the given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InventoryItem, error)

	// FindByIDAndUser retrieves a single item under the owner scope.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.InventoryItem, error)

	// FindExpiring retrieves the user's items whose expiration date falls in
	// [from, until), ordered ascending by expiration date.
	FindExpiring(ctx context.Context, userID uuid.UUID, from, until time.Time) ([]*entity.InventoryItem, error)

	// Create persists a new inventory item.
	Create(ctx context.Context, item *entity.InventoryItem) error

	// Update modifies an existing inventory item.
	Update(ctx context.Context, item *entity.InventoryItem) error

	// Delete removes the item under the owner scope.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
