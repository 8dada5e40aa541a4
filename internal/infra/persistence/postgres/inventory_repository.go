package postgres

import (
	"context"
	"time"

	"smartchef/internal/domain/entity"
	domainerrors "smartchef/internal/domain/errors"
	"smartchef/internal/domain/repository"
	"smartchef/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inventoryRepository implements the repository.InventoryRepository interface using GORM.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{
		db: db,
	}
}

// FindByUser retrieves all inventory items owned by the given user.
func (repo *inventoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InventoryItem, error) {
	var itemModels []*model.InventoryItemModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find inventory items by user")
	}

	items := make([]*entity.InventoryItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toInventoryItemDomain(itemM))
	}

	return items, nil
}

// FindByIDAndUser retrieves a single item scoped by its owner. An item owned
// by a different user resolves to ErrInventoryItemNotFound.
func (repo *inventoryRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.InventoryItem, error) {
	var itemM model.InventoryItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory item by id")
	}

	return toInventoryItemDomain(&itemM), nil
}

// FindExpiring retrieves the user's items whose expiration date falls in
// [from, until), soonest first.
func (repo *inventoryRepository) FindExpiring(ctx context.Context, userID uuid.UUID, from, until time.Time) ([]*entity.InventoryItem, error) {
	var itemModels []*model.InventoryItemModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND expiration_date >= ? AND expiration_date < ?", userID, from, until).
		Order("expiration_date ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expiring inventory items")
	}

	items := make([]*entity.InventoryItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toInventoryItemDomain(itemM))
	}

	return items, nil
}

// Create persists a new inventory item.
func (repo *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	itemM := fromInventoryItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required item information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create inventory item")
	}

	// Update the entity with generated values
	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update modifies an existing inventory item.
func (repo *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	itemM := fromInventoryItemDomain(item)
	itemM.CreatedAt = item.CreatedAt

	if err := repo.db.WithContext(ctx).Save(itemM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update inventory item")
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Delete removes the item under the owner scope.
func (repo *inventoryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.InventoryItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete inventory item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInventoryItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toInventoryItemDomain converts a GORM InventoryItemModel to a domain InventoryItem entity.
func toInventoryItemDomain(data *model.InventoryItemModel) *entity.InventoryItem {
	if data == nil {
		return nil
	}

	return &entity.InventoryItem{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		Category:       entity.Category(data.Category),
		Quantity:       data.Quantity,
		ExpirationDate: data.ExpirationDate,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromInventoryItemDomain converts a domain InventoryItem entity to a GORM InventoryItemModel.
func fromInventoryItemDomain(data *entity.InventoryItem) *model.InventoryItemModel {
	if data == nil {
		return nil
	}

	return &model.InventoryItemModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		Category:       string(data.Category),
		Quantity:       data.Quantity,
		ExpirationDate: data.ExpirationDate,
	}
}
