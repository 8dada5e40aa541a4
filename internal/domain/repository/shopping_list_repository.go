package repository

import (
	"context"
	"errors"

	"smartchef/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShoppingListNotFound is returned when a list does not exist under the
// requested owner scope.
var ErrShoppingListNotFound = errors.New("shopping list not found")

// ShoppingListRepository defines the persistence operations for shopping
// lists. Embedded items are rewritten wholesale on update, relying on the
// parent document's single-row atomicity.
type ShoppingListRepository interface {
	// FindByUser retrieves all lists owned by the user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error)

	// FindByIDAndUser retrieves a single list under the owner scope.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.ShoppingList, error)

	// Create persists a new list together with its items.
	Create(ctx context.Context, list *entity.ShoppingList) error

	// Update saves the list and rewrites its item list wholesale.
	Update(ctx context.Context, list *entity.ShoppingList) error

	// Delete removes the list under the owner scope.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
