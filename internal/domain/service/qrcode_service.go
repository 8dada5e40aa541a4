package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses share codes for shopping lists, so a
// list can be opened on another household device by scanning it.
type QRCodeService interface {
	// GenerateShoppingListQR renders a PNG QR code identifying the list.
	GenerateShoppingListQR(listID uuid.UUID) ([]byte, error)

	// ParseShoppingListQR decodes QR payload data back into a list id.
	ParseShoppingListQR(qrData string) (uuid.UUID, error)
}
