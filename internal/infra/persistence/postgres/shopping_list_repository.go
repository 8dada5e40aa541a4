package postgres

import (
	"context"

	"smartchef/internal/domain/entity"
	domainerrors "smartchef/internal/domain/errors"
	"smartchef/internal/domain/repository"
	"smartchef/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shoppingListRepository implements the repository.ShoppingListRepository interface using GORM.
type shoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository is the constructor for shoppingListRepository.
func NewShoppingListRepository(db *gorm.DB) repository.ShoppingListRepository {
	return &shoppingListRepository{
		db: db,
	}
}

// FindByUser retrieves all lists owned by the user, newest first.
func (repo *shoppingListRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error) {
	var listModels []*model.ShoppingListModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("shopping_list_items.position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&listModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shopping lists by user")
	}

	lists := make([]*entity.ShoppingList, 0, len(listModels))
	for _, listM := range listModels {
		lists = append(lists, toShoppingListDomain(listM))
	}

	return lists, nil
}

// FindByIDAndUser retrieves a single list under the owner scope.
func (repo *shoppingListRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.ShoppingList, error) {
	var listM model.ShoppingListModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("shopping_list_items.position ASC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&listM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShoppingListNotFound
		}

		return nil, errors.Wrap(err, "failed to find shopping list by id")
	}

	return toShoppingListDomain(&listM), nil
}

// Create persists a new list together with its items.
func (repo *shoppingListRepository) Create(ctx context.Context, list *entity.ShoppingList) error {
	listM := fromShoppingListDomain(list)

	if err := repo.db.WithContext(ctx).Create(listM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or meal plan reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required list information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create shopping list")
	}

	// Update the entity with generated values
	list.ID = listM.ID
	list.CreatedAt = listM.CreatedAt
	list.UpdatedAt = listM.UpdatedAt

	return nil
}

// Update saves the list and rewrites its item list wholesale. The delete and
// re-insert run inside one transaction so readers never observe a partial
// item list.
func (repo *shoppingListRepository) Update(ctx context.Context, list *entity.ShoppingList) error {
	listM := fromShoppingListDomain(list)
	listM.CreatedAt = list.CreatedAt

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shopping_list_id = ?", list.ID).Delete(&model.ShoppingListItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear list items")
		}

		if err := tx.Save(listM).Error; err != nil {
			return errors.Wrap(err, "failed to save shopping list")
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update shopping list")
	}

	list.UpdatedAt = listM.UpdatedAt

	return nil
}

// Delete removes the list under the owner scope together with its items.
func (repo *shoppingListRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.ShoppingListModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete shopping list")
		}

		if result.RowsAffected == 0 {
			return repository.ErrShoppingListNotFound
		}

		if err := tx.Where("shopping_list_id = ?", id).Delete(&model.ShoppingListItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete list items")
		}

		return nil
	})
}

// --- Mapper Functions ---

// toShoppingListDomain converts a GORM ShoppingListModel to a domain ShoppingList entity.
func toShoppingListDomain(data *model.ShoppingListModel) *entity.ShoppingList {
	if data == nil {
		return nil
	}

	items := make([]entity.ShoppingListItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.ShoppingListItem{
			ID:       itemM.ID,
			Name:     itemM.Name,
			Category: entity.Category(itemM.Category),
			Quantity: itemM.Quantity,
			Checked:  itemM.Checked,
		})
	}

	var generatedFrom *entity.ListProvenance
	if data.GeneratedFromPlan != nil {
		generatedFrom = &entity.ListProvenance{
			MealPlanID: *data.GeneratedFromPlan,
			StartDate:  data.GeneratedStartDate,
			EndDate:    data.GeneratedEndDate,
		}
	}

	return &entity.ShoppingList{
		ID:            data.ID,
		UserID:        data.UserID,
		Name:          data.Name,
		Items:         items,
		GeneratedFrom: generatedFrom,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromShoppingListDomain converts a domain ShoppingList entity to a GORM ShoppingListModel.
func fromShoppingListDomain(data *entity.ShoppingList) *model.ShoppingListModel {
	if data == nil {
		return nil
	}

	items := make([]*model.ShoppingListItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		items = append(items, &model.ShoppingListItemModel{
			ID:             item.ID,
			ShoppingListID: data.ID,
			Position:       i,
			Name:           item.Name,
			Category:       string(item.Category),
			Quantity:       item.Quantity,
			Checked:        item.Checked,
		})
	}

	listM := &model.ShoppingListModel{
		ID:     data.ID,
		UserID: data.UserID,
		Name:   data.Name,
		Items:  items,
	}
	if data.GeneratedFrom != nil {
		planID := data.GeneratedFrom.MealPlanID
		listM.GeneratedFromPlan = &planID
		listM.GeneratedStartDate = data.GeneratedFrom.StartDate
		listM.GeneratedEndDate = data.GeneratedFrom.EndDate
	}

	return listM
}
