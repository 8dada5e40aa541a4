package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "smartchef/internal/delivery/context"
	"smartchef/internal/domain/entity"
	domainerrors "smartchef/internal/domain/errors"
	"smartchef/internal/domain/repository"
	"smartchef/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// expiringWindow is how far ahead the expiring-items view looks.
const expiringWindow = 3 * 24 * time.Hour

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	logger        *slog.Logger
}

// InventoryServiceParams holds dependencies for inventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	InventoryRepo repository.InventoryRepository
	Logger        *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		inventoryRepo: params.InventoryRepo,
		logger:        params.Logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListItems retrieves the user's full pantry.
func (srv *inventoryService) ListItems(ctx context.Context, userID uuid.UUID) ([]*entity.InventoryItem, error) {
	items, err := srv.inventoryRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory items")
	}

	return items, nil
}

// ListExpiringItems retrieves items expiring within the next three days,
// soonest first. Already-expired items are excluded.
func (srv *inventoryService) ListExpiringItems(ctx context.Context, userID uuid.UUID) ([]*entity.InventoryItem, error) {
	now := time.Now()

	items, err := srv.inventoryRepo.FindExpiring(ctx, userID, now, now.Add(expiringWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expiring items")
	}

	return items, nil
}

// GetItem retrieves a single pantry item under the owner scope.
func (srv *inventoryService) GetItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.InventoryItem, error) {
	item, err := srv.inventoryRepo.FindByIDAndUser(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return nil, domainerrors.ErrInventoryItemNotFound
		}

		return nil, errors.Wrap(err, "failed to get inventory item")
	}

	return item, nil
}

// CreateItem adds a pantry item for the user.
func (srv *inventoryService) CreateItem(ctx context.Context, userID uuid.UUID, input *usecase.CreateInventoryItemInput) (*entity.InventoryItem, error) {
	srv.log(ctx).Info("Creating inventory item", slog.String("userID", userID.String()), slog.String("name", input.Name))

	if !input.Category.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category")
	}

	item := &entity.InventoryItem{
		UserID:         userID,
		Name:           input.Name,
		Category:       input.Category,
		Quantity:       input.Quantity,
		ExpirationDate: input.ExpirationDate,
	}

	if err := srv.inventoryRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create inventory item")
	}

	return item, nil
}

// UpdateItem applies a partial update to one pantry item.
func (srv *inventoryService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, input *usecase.UpdateInventoryItemInput) (*entity.InventoryItem, error) {
	item, err := srv.inventoryRepo.FindByIDAndUser(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return nil, domainerrors.ErrInventoryItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category")
		}
		item.Category = *input.Category
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.ExpirationDate != nil {
		item.ExpirationDate = input.ExpirationDate
	}

	if err := srv.inventoryRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update inventory item")
	}

	return item, nil
}

// DeleteItem removes one pantry item under the owner scope.
func (srv *inventoryService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	srv.log(ctx).Info("Deleting inventory item", slog.String("userID", userID.String()), slog.String("itemID", itemID.String()))

	if err := srv.inventoryRepo.Delete(ctx, itemID, userID); err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return domainerrors.ErrInventoryItemNotFound
		}

		return errors.Wrap(err, "failed to delete inventory item")
	}

	return nil
}
