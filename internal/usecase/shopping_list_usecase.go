package usecase

import (
	"context"
	"time"

	"smartchef/internal/domain/entity"

	"github.com/google/uuid"
)

// ShoppingListUsecase defines the interface for shopping list operations,
// including generation from a meal plan and QR code sharing.
type ShoppingListUsecase interface {
	ListLists(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error)
	GetList(ctx context.Context, userID, listID uuid.UUID) (*entity.ShoppingList, error)
	CreateList(ctx context.Context, userID uuid.UUID, input *CreateShoppingListInput) (*entity.ShoppingList, error)
	UpdateList(ctx context.Context, userID, listID uuid.UUID, input *UpdateShoppingListInput) (*entity.ShoppingList, error)
	DeleteList(ctx context.Context, userID, listID uuid.UUID) error
	GenerateFromMealPlan(ctx context.Context, userID uuid.UUID, input *GenerateFromMealPlanInput) (*entity.ShoppingList, error)
	AddItem(ctx context.Context, userID, listID uuid.UUID, input *ShoppingListItemInput) (*entity.ShoppingList, error)
	UpdateItem(ctx context.Context, userID, listID, itemID uuid.UUID, input *UpdateShoppingListItemInput) (*entity.ShoppingList, error)
	RemoveItem(ctx context.Context, userID, listID, itemID uuid.UUID) (*entity.ShoppingList, error)
	ClearCheckedItems(ctx context.Context, userID, listID uuid.UUID) (*entity.ShoppingList, error)
	GetListQRCode(ctx context.Context, userID, listID uuid.UUID) ([]byte, error)
	ResolveScannedList(ctx context.Context, userID uuid.UUID, input *ScanQRCodeInput) (*entity.ShoppingList, error)
}

// --- Input DTOs ---

// ShoppingListItemInput defines one line item. Quantity defaults to "1" and
// the category is classified from the name when absent.
type ShoppingListItemInput struct {
	Name     string          `json:"name" validate:"required"`
	Category entity.Category `json:"category,omitempty"`
	Quantity string          `json:"quantity,omitempty"`
	Checked  bool            `json:"checked,omitempty"`
}

// CreateShoppingListInput defines the data required to create a list.
type CreateShoppingListInput struct {
	Name  string                  `json:"name,omitempty"`
	Items []ShoppingListItemInput `json:"items,omitempty" validate:"omitempty,dive"`
}

// UpdateShoppingListInput defines a partial list update. A nil Items slice
// leaves the stored items untouched; a present one replaces them wholesale.
type UpdateShoppingListInput struct {
	Name  *string                 `json:"name,omitempty"`
	Items []ShoppingListItemInput `json:"items,omitempty" validate:"omitempty,dive"`
}

// UpdateShoppingListItemInput defines a partial update of one line item.
// Nil fields are left untouched.
type UpdateShoppingListItemInput struct {
	Name     *string          `json:"name,omitempty"`
	Category *entity.Category `json:"category,omitempty"`
	Quantity *string          `json:"quantity,omitempty"`
	Checked  *bool            `json:"checked,omitempty"`
}

// ScanQRCodeInput carries the decoded text of a scanned shopping list QR code.
type ScanQRCodeInput struct {
	Payload string `json:"payload" validate:"required"`
}

// GenerateFromMealPlanInput identifies the source plan for list generation.
// The optional dates are recorded as provenance; StartDate defaults to the
// plan's own date.
type GenerateFromMealPlanInput struct {
	MealPlanID uuid.UUID  `json:"mealPlanId" validate:"required"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
}
