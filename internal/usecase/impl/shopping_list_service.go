package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "smartchef/internal/delivery/context"
	"smartchef/internal/domain/entity"
	domainerrors "smartchef/internal/domain/errors"
	"smartchef/internal/domain/repository"
	"smartchef/internal/domain/service"
	"smartchef/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shoppingListService implements the ShoppingListUsecase interface.
type shoppingListService struct {
	shoppingListRepo repository.ShoppingListRepository
	mealPlanRepo     repository.MealPlanRepository
	qrCodeService    service.QRCodeService
	logger           *slog.Logger
}

// ShoppingListServiceParams holds dependencies for shoppingListService, injected by Fx.
type ShoppingListServiceParams struct {
	fx.In

	ShoppingListRepo repository.ShoppingListRepository
	MealPlanRepo     repository.MealPlanRepository
	QRCodeService    service.QRCodeService
	Logger           *slog.Logger
}

// NewShoppingListService is the constructor for shoppingListService.
func NewShoppingListService(params ShoppingListServiceParams) usecase.ShoppingListUsecase {
	return &shoppingListService{
		shoppingListRepo: params.ShoppingListRepo,
		mealPlanRepo:     params.MealPlanRepo,
		qrCodeService:    params.QRCodeService,
		logger:           params.Logger,
	}
}

func (srv *shoppingListService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListLists retrieves the user's shopping lists, newest first.
func (srv *shoppingListService) ListLists(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error) {
	lists, err := srv.shoppingListRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shopping lists")
	}

	return lists, nil
}

// GetList retrieves a single list under the owner scope.
func (srv *shoppingListService) GetList(ctx context.Context, userID, listID uuid.UUID) (*entity.ShoppingList, error) {
	return srv.findList(ctx, userID, listID)
}

// CreateList creates a list for the user. An empty name falls back to the
// default, matching the behavior of a bare POST with no body.
func (srv *shoppingListService) CreateList(ctx context.Context, userID uuid.UUID, input *usecase.CreateShoppingListInput) (*entity.ShoppingList, error) {
	srv.log(ctx).Info("Creating shopping list", slog.String("userID", userID.String()))

	name := input.Name
	if name == "" {
		name = entity.DefaultShoppingListName
	}

	list := &entity.ShoppingList{
		UserID: userID,
		Name:   name,
		Items:  buildListItems(input.Items),
	}

	if err := srv.shoppingListRepo.Create(ctx, list); err != nil {
		return nil, errors.Wrap(err, "failed to create shopping list")
	}

	return list, nil
}

// UpdateList applies a partial update. A present Items slice replaces the
// stored items wholesale; nil leaves them untouched.
func (srv *shoppingListService) UpdateList(ctx context.Context, userID, listID uuid.UUID, input *usecase.UpdateShoppingListInput) (*entity.ShoppingList, error) {
	list, err := srv.findList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		list.Name = *input.Name
	}
	if input.Items != nil {
		list.Items = buildListItems(input.Items)
	}

	if err := srv.shoppingListRepo.Update(ctx, list); err != nil {
		return nil, errors.Wrap(err, "failed to update shopping list")
	}

	return list, nil
}

// DeleteList removes a list under the owner scope.
func (srv *shoppingListService) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	srv.log(ctx).Info("Deleting shopping list", slog.String("userID", userID.String()), slog.String("listID", listID.String()))

	if err := srv.shoppingListRepo.Delete(ctx, listID, userID); err != nil {
		if errors.Is(err, repository.ErrShoppingListNotFound) {
			return domainerrors.ErrShoppingListNotFound
		}

		return errors.Wrap(err, "failed to delete shopping list")
	}

	return nil
}

// GenerateFromMealPlan builds a new list from the ingredients of every
// recipe referenced by the plan's meals. Ingredients sharing a name are
// collapsed into one line, with the quantity annotated per extra occurrence.
func (srv *shoppingListService) GenerateFromMealPlan(ctx context.Context, userID uuid.UUID, input *usecase.GenerateFromMealPlanInput) (*entity.ShoppingList, error) {
	srv.log(ctx).Info("Generating shopping list from meal plan",
		slog.String("userID", userID.String()),
		slog.String("mealPlanID", input.MealPlanID.String()))

	plan, err := srv.mealPlanRepo.FindByIDAndUser(ctx, input.MealPlanID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMealPlanNotFound) {
			return nil, domainerrors.ErrMealPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal plan")
	}

	items := make([]entity.ShoppingListItem, 0)
	for _, meal := range plan.Meals {
		if meal.Recipe == nil {
			continue
		}
		for _, ingredient := range meal.Recipe.Ingredients {
			name, quantity := splitIngredient(ingredient)

			if existing := findItemByName(items, name); existing != nil {
				existing.Quantity += " (multiple recipes)"

				continue
			}

			items = append(items, entity.ShoppingListItem{
				ID:       uuid.New(),
				Name:     name,
				Category: classifyIngredient(name),
				Quantity: quantity,
			})
		}
	}

	startDate := input.StartDate
	if startDate == nil {
		planDate := plan.Date
		startDate = &planDate
	}

	list := &entity.ShoppingList{
		UserID: userID,
		Name:   "Shopping List for " + plan.Date.Format("1/2/2006"),
		Items:  items,
		GeneratedFrom: &entity.ListProvenance{
			MealPlanID: plan.ID,
			StartDate:  startDate,
			EndDate:    input.EndDate,
		},
	}

	if err := srv.shoppingListRepo.Create(ctx, list); err != nil {
		return nil, errors.Wrap(err, "failed to create generated shopping list")
	}

	return list, nil
}

// AddItem appends one line item to a list.
func (srv *shoppingListService) AddItem(ctx context.Context, userID, listID uuid.UUID, input *usecase.ShoppingListItemInput) (*entity.ShoppingList, error) {
	list, err := srv.findList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	list.Items = append(list.Items, newListItem(input))

	if err := srv.shoppingListRepo.Update(ctx, list); err != nil {
		return nil, errors.Wrap(err, "failed to add list item")
	}

	return list, nil
}

// UpdateItem applies a partial update to one line item.
func (srv *shoppingListService) UpdateItem(ctx context.Context, userID, listID, itemID uuid.UUID, input *usecase.UpdateShoppingListItemInput) (*entity.ShoppingList, error) {
	list, err := srv.findList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	item := list.FindItem(itemID)
	if item == nil {
		return nil, domainerrors.ErrShoppingListItemNotFound
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
	if input.Checked != nil {
		item.Checked = *input.Checked
	}

	if err := srv.shoppingListRepo.Update(ctx, list); err != nil {
		return nil, errors.Wrap(err, "failed to update list item")
	}

	return list, nil
}

// RemoveItem deletes one line item from a list.
func (srv *shoppingListService) RemoveItem(ctx context.Context, userID, listID, itemID uuid.UUID) (*entity.ShoppingList, error) {
	list, err := srv.findList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	if !list.RemoveItem(itemID) {
		return nil, domainerrors.ErrShoppingListItemNotFound
	}

	if err := srv.shoppingListRepo.Update(ctx, list); err != nil {
		return nil, errors.Wrap(err, "failed to remove list item")
	}

	return list, nil
}

// ClearCheckedItems drops every checked item from a list.
func (srv *shoppingListService) ClearCheckedItems(ctx context.Context, userID, listID uuid.UUID) (*entity.ShoppingList, error) {
	list, err := srv.findList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	list.ClearChecked()

	if err := srv.shoppingListRepo.Update(ctx, list); err != nil {
		return nil, errors.Wrap(err, "failed to clear checked items")
	}

	return list, nil
}

// GetListQRCode renders a QR code identifying a list the user owns, so it
// can be opened on another household device.
func (srv *shoppingListService) GetListQRCode(ctx context.Context, userID, listID uuid.UUID) ([]byte, error) {
	list, err := srv.findList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateShoppingListQR(list.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate list QR code")
	}

	return png, nil
}

// ResolveScannedList decodes a scanned QR payload back into the list it
// identifies. The list must belong to the scanning user; a payload pointing
// at someone else's list resolves the same as a missing one.
func (srv *shoppingListService) ResolveScannedList(ctx context.Context, userID uuid.UUID, input *usecase.ScanQRCodeInput) (*entity.ShoppingList, error) {
	listID, err := srv.qrCodeService.ParseShoppingListQR(input.Payload)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unrecognized QR code payload")
	}

	srv.log(ctx).Info("Resolving scanned shopping list",
		slog.String("userID", userID.String()),
		slog.String("listID", listID.String()))

	return srv.findList(ctx, userID, listID)
}

// --- helpers ---

func (srv *shoppingListService) findList(ctx context.Context, userID, listID uuid.UUID) (*entity.ShoppingList, error) {
	list, err := srv.shoppingListRepo.FindByIDAndUser(ctx, listID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrShoppingListNotFound) {
			return nil, domainerrors.ErrShoppingListNotFound
		}

		return nil, errors.Wrap(err, "failed to find shopping list")
	}

	return list, nil
}

// newListItem builds a line item from its input, stamping a fresh identity
// and filling category and quantity defaults.
func newListItem(input *usecase.ShoppingListItemInput) entity.ShoppingListItem {
	category := input.Category
	if category == "" || !category.Valid() {
		category = classifyIngredient(input.Name)
	}

	quantity := input.Quantity
	if quantity == "" {
		quantity = "1"
	}

	return entity.ShoppingListItem{
		ID:       uuid.New(),
		Name:     input.Name,
		Category: category,
		Quantity: quantity,
		Checked:  input.Checked,
	}
}

func buildListItems(inputs []usecase.ShoppingListItemInput) []entity.ShoppingListItem {
	items := make([]entity.ShoppingListItem, 0, len(inputs))
	for i := range inputs {
		items = append(items, newListItem(&inputs[i]))
	}

	return items
}

// findItemByName matches case-insensitively on the exact item name.
func findItemByName(items []entity.ShoppingListItem, name string) *entity.ShoppingListItem {
	for i := range items {
		if strings.EqualFold(items[i].Name, name) {
			return &items[i]
		}
	}

	return nil
}
