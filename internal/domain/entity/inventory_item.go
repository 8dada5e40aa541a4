package entity

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is a single pantry entry owned by one user. Quantity is
// deliberately free text ("2 cups", "half a bag"); the domain never does
// arithmetic on it.
type InventoryItem struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	Name           string     `json:"name"`
	Category       Category   `json:"category"`
	Quantity       string     `json:"quantity"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
