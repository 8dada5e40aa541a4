package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"smartchef/internal/domain/entity"
	domainerrors "smartchef/internal/domain/errors"
	"smartchef/internal/domain/repository"
	mockRepo "smartchef/internal/mocks/repository"
	"smartchef/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inventoryServiceFixtures holds all test dependencies for inventory service tests.
type inventoryServiceFixtures struct {
	service       usecase.InventoryUsecase
	inventoryRepo *mockRepo.MockInventoryRepository
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewInventoryService(InventoryServiceParams{
		InventoryRepo: inventoryRepo,
		Logger:        logger,
	})

	return inventoryServiceFixtures{
		service:       service,
		inventoryRepo: inventoryRepo,
	}
}

func TestInventoryService_ListItems(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.InventoryItem{
		{ID: uuid.New(), UserID: userID, Name: "Milk", Category: entity.CategoryDairy, Quantity: "1L"},
		{ID: uuid.New(), UserID: userID, Name: "Rice", Category: entity.CategoryGrains, Quantity: "2kg"},
	}

	fx.inventoryRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)

	got, err := fx.service.ListItems(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestInventoryService_ListExpiringItems_WindowBounds(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	var gotFrom, gotTo time.Time
	fx.inventoryRepo.EXPECT().
		FindExpiring(ctx, userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, id uuid.UUID, from time.Time, to time.Time) {
			gotFrom = from
			gotTo = to
		}).
		Return([]*entity.InventoryItem{}, nil)

	before := time.Now()
	_, err := fx.service.ListExpiringItems(ctx, userID)
	after := time.Now()

	require.NoError(t, err)
	assert.False(t, gotFrom.Before(before))
	assert.False(t, gotFrom.After(after))
	assert.Equal(t, 3*24*time.Hour, gotTo.Sub(gotFrom))
}

func TestInventoryService_GetItem_NotFound(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.inventoryRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(nil, repository.ErrInventoryItemNotFound)

	item, err := fx.service.GetItem(ctx, userID, itemID)

	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrInventoryItemNotFound))
}

func TestInventoryService_CreateItem_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	expires := time.Now().Add(48 * time.Hour)
	input := &usecase.CreateInventoryItemInput{
		Name:           "Chicken Breast",
		Category:       entity.CategoryMeat,
		Quantity:       "500g",
		ExpirationDate: &expires,
	}

	fx.inventoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.InventoryItem")).
		Run(func(ctx context.Context, item *entity.InventoryItem) {
			item.ID = uuid.New()
		}).
		Return(nil)

	item, err := fx.service.CreateItem(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, userID, item.UserID)
	assert.Equal(t, entity.CategoryMeat, item.Category)
	assert.Equal(t, "500g", item.Quantity)
	require.NotNil(t, item.ExpirationDate)
	assert.True(t, item.ExpirationDate.Equal(expires))
}

func TestInventoryService_CreateItem_UnknownCategory(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	input := &usecase.CreateInventoryItemInput{
		Name:     "Mystery",
		Category: entity.Category("Cryogenics"),
		Quantity: "1",
	}

	item, err := fx.service.CreateItem(ctx, uuid.New(), input)

	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestInventoryService_UpdateItem_Partial(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := &entity.InventoryItem{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     "Milk",
		Category: entity.CategoryDairy,
		Quantity: "1L",
	}

	newQuantity := "2L"
	input := &usecase.UpdateInventoryItemInput{Quantity: &newQuantity}

	fx.inventoryRepo.EXPECT().FindByIDAndUser(ctx, item.ID, userID).Return(item, nil)
	fx.inventoryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.InventoryItem")).
		Run(func(ctx context.Context, updated *entity.InventoryItem) {
			assert.Equal(t, "Milk", updated.Name)
			assert.Equal(t, "2L", updated.Quantity)
			assert.Equal(t, entity.CategoryDairy, updated.Category)
		}).
		Return(nil)

	updated, err := fx.service.UpdateItem(ctx, userID, item.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "2L", updated.Quantity)
}

func TestInventoryService_UpdateItem_UnknownCategory(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := &entity.InventoryItem{ID: uuid.New(), UserID: userID, Name: "Milk", Category: entity.CategoryDairy}

	bad := entity.Category("Cryogenics")
	input := &usecase.UpdateInventoryItemInput{Category: &bad}

	fx.inventoryRepo.EXPECT().FindByIDAndUser(ctx, item.ID, userID).Return(item, nil)

	updated, err := fx.service.UpdateItem(ctx, userID, item.ID, input)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestInventoryService_DeleteItem_NotFound(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.inventoryRepo.EXPECT().
		Delete(ctx, itemID, userID).
		Return(repository.ErrInventoryItemNotFound)

	err := fx.service.DeleteItem(ctx, userID, itemID)

	assert.True(t, errors.Is(err, domainerrors.ErrInventoryItemNotFound))
}
