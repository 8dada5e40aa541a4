package qrcode

import (
	"bytes"
	"encoding/json"
	"testing"

	"smartchef/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47}

func TestQRCodeService_GenerateShoppingListQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})
	listID := uuid.New()

	png, err := svc.GenerateShoppingListQR(listID)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})
	listID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		ShoppingListID: listID.String(),
		Type:           "shopping-list",
	})
	require.NoError(t, err)

	parsed, err := svc.ParseShoppingListQR(string(payload))

	require.NoError(t, err)
	assert.Equal(t, listID, parsed)
}

func TestQRCodeService_ParseShoppingListQR_WrongType(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	payload, err := json.Marshal(QRCodeData{
		ShoppingListID: uuid.New().String(),
		Type:           "recipe",
	})
	require.NoError(t, err)

	parsed, err := svc.ParseShoppingListQR(string(payload))

	assert.Equal(t, uuid.Nil, parsed)
	assert.Error(t, err)
}

func TestQRCodeService_ParseShoppingListQR_InvalidJSON(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	parsed, err := svc.ParseShoppingListQR("not-json")

	assert.Equal(t, uuid.Nil, parsed)
	assert.Error(t, err)
}

func TestQRCodeService_ParseShoppingListQR_BadListID(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	payload, err := json.Marshal(QRCodeData{
		ShoppingListID: "not-a-uuid",
		Type:           "shopping-list",
	})
	require.NoError(t, err)

	parsed, err := svc.ParseShoppingListQR(string(payload))

	assert.Equal(t, uuid.Nil, parsed)
	assert.Error(t, err)
}
