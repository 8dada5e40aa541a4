package qrcode

import (
	"encoding/json"
	"fmt"

	"smartchef/config"
	"smartchef/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code payload
type QRCodeData struct {
	ShoppingListID string `json:"shopping_list_id"`
	Type           string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	correction := "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			correction = cfg.QRCode.ErrorCorrectionLevel
		}
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch correction {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateShoppingListQR generates a QR code PNG identifying a shopping list
func (s *qrcodeService) GenerateShoppingListQR(listID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		ShoppingListID: listID.String(),
		Type:           "shopping-list",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseShoppingListQR parses QR payload data and returns the shopping list ID
func (s *qrcodeService) ParseShoppingListQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "shopping-list" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	listID, err := uuid.Parse(data.ShoppingListID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse shopping list ID: %w", err)
	}

	return listID, nil
}
