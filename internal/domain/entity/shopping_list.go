package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultShoppingListName is used when a list is created without a name.
const DefaultShoppingListName = "My Shopping List"

// ShoppingListItem is one line on a shopping list. Items carry their own
// identity so they can be updated or removed individually.
type ShoppingListItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category Category  `json:"category"`
	Quantity string    `json:"quantity"`
	Checked  bool      `json:"checked"`
}

// ListProvenance records which meal plan a generated list came from.
type ListProvenance struct {
	MealPlanID uuid.UUID  `json:"mealPlanId"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
}

// ShoppingList is an ordered list of line items owned by one user,
// optionally tagged with the meal plan it was generated from.
type ShoppingList struct {
	ID            uuid.UUID          `json:"id"`
	UserID        uuid.UUID          `json:"userId"`
	Name          string             `json:"name"`
	Items         []ShoppingListItem `json:"items"`
	GeneratedFrom *ListProvenance    `json:"generatedFrom,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// FindItem returns a pointer to the item with the given identity, or nil.
func (l *ShoppingList) FindItem(itemID uuid.UUID) *ShoppingListItem {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			return &l.Items[i]
		}
	}

	return nil
}

// RemoveItem filters the item with the given identity out of the list.
// It reports whether an item was removed.
func (l *ShoppingList) RemoveItem(itemID uuid.UUID) bool {
	kept := l.Items[:0]
	removed := false
	for _, item := range l.Items {
		if item.ID == itemID {
			removed = true

			continue
		}
		kept = append(kept, item)
	}
	l.Items = kept

	return removed
}

// ClearChecked drops every checked item, keeping the relative order of the
// unchecked ones.
func (l *ShoppingList) ClearChecked() {
	kept := l.Items[:0]
	for _, item := range l.Items {
		if item.Checked {
			continue
		}
		kept = append(kept, item)
	}
	l.Items = kept
}
