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
	mockSvc "smartchef/internal/mocks/service"
	"smartchef/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shoppingListServiceFixtures holds all test dependencies for shopping list service tests.
type shoppingListServiceFixtures struct {
	service          usecase.ShoppingListUsecase
	shoppingListRepo *mockRepo.MockShoppingListRepository
	mealPlanRepo     *mockRepo.MockMealPlanRepository
	qrCodeService    *mockSvc.MockQRCodeService
}

func createTestShoppingListService(t *testing.T) shoppingListServiceFixtures {
	shoppingListRepo := mockRepo.NewMockShoppingListRepository(t)
	mealPlanRepo := mockRepo.NewMockMealPlanRepository(t)
	qrCodeService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewShoppingListService(ShoppingListServiceParams{
		ShoppingListRepo: shoppingListRepo,
		MealPlanRepo:     mealPlanRepo,
		QRCodeService:    qrCodeService,
		Logger:           logger,
	})

	return shoppingListServiceFixtures{
		service:          service,
		shoppingListRepo: shoppingListRepo,
		mealPlanRepo:     mealPlanRepo,
		qrCodeService:    qrCodeService,
	}
}

func TestShoppingListService_CreateList_DefaultName(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.shoppingListRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ShoppingList")).
		Run(func(ctx context.Context, list *entity.ShoppingList) {
			list.ID = uuid.New()
		}).
		Return(nil)

	list, err := fx.service.CreateList(ctx, userID, &usecase.CreateShoppingListInput{})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultShoppingListName, list.Name)
	assert.Empty(t, list.Items)
}

func TestShoppingListService_CreateList_WithItems(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	input := &usecase.CreateShoppingListInput{
		Name: "Weekend Run",
		Items: []usecase.ShoppingListItemInput{
			{Name: "Milk"},
			{Name: "Paper Towels", Category: entity.CategoryOther, Quantity: "2"},
		},
	}

	fx.shoppingListRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ShoppingList")).
		Return(nil)

	list, err := fx.service.CreateList(ctx, uuid.New(), input)

	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, entity.CategoryDairy, list.Items[0].Category)
	assert.Equal(t, "1", list.Items[0].Quantity)
	assert.Equal(t, entity.CategoryOther, list.Items[1].Category)
	assert.Equal(t, "2", list.Items[1].Quantity)
	assert.NotEqual(t, uuid.Nil, list.Items[0].ID)
}

func TestShoppingListService_UpdateList_NilItemsKeepsExisting(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	userID := uuid.New()
	list := &entity.ShoppingList{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Old Name",
		Items:  []entity.ShoppingListItem{{ID: uuid.New(), Name: "Milk"}},
	}

	newName := "New Name"

	fx.shoppingListRepo.EXPECT().FindByIDAndUser(ctx, list.ID, userID).Return(list, nil)
	fx.shoppingListRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ShoppingList")).
		Return(nil)

	got, err := fx.service.UpdateList(ctx, userID, list.ID, &usecase.UpdateShoppingListInput{
		Name: &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Len(t, got.Items, 1)
}

func TestShoppingListService_GenerateFromMealPlan(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	userID := uuid.New()
	planDate := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	recipeID := uuid.New()

	plan := &entity.MealPlan{
		ID:     uuid.New(),
		UserID: userID,
		Day:    "Wednesday",
		Date:   planDate,
		Meals: []entity.Meal{
			{
				ID:   uuid.New(),
				Type: entity.MealTypeLunch,
				Recipe: &entity.Recipe{
					ID:          recipeID,
					Title:       "Chicken Rice",
					Ingredients: []string{"Chicken, 500g", "Rice, 2 cups"},
				},
			},
			{
				ID:   uuid.New(),
				Type: entity.MealTypeDinner,
				Recipe: &entity.Recipe{
					ID:          uuid.New(),
					Title:       "Chicken Soup",
					Ingredients: []string{"chicken, 1 whole", "Carrot"},
				},
			},
			{ID: uuid.New(), Type: entity.MealTypeSnack}, // no recipe attached
		},
	}

	fx.mealPlanRepo.EXPECT().FindByIDAndUser(ctx, plan.ID, userID).Return(plan, nil)

	var created *entity.ShoppingList
	fx.shoppingListRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ShoppingList")).
		Run(func(ctx context.Context, list *entity.ShoppingList) {
			created = list
		}).
		Return(nil)

	list, err := fx.service.GenerateFromMealPlan(ctx, userID, &usecase.GenerateFromMealPlanInput{
		MealPlanID: plan.ID,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Shopping List for 3/5/2025", list.Name)

	require.Len(t, list.Items, 3)

	chicken := list.Items[0]
	assert.Equal(t, "Chicken", chicken.Name)
	assert.Equal(t, entity.CategoryMeat, chicken.Category)
	assert.Equal(t, "500g (multiple recipes)", chicken.Quantity)

	rice := list.Items[1]
	assert.Equal(t, "Rice", rice.Name)
	assert.Equal(t, entity.CategoryGrains, rice.Category)
	assert.Equal(t, "2 cups", rice.Quantity)

	carrot := list.Items[2]
	assert.Equal(t, "Carrot", carrot.Name)
	assert.Equal(t, entity.CategoryProduce, carrot.Category)
	assert.Equal(t, "1", carrot.Quantity)

	require.NotNil(t, list.GeneratedFrom)
	assert.Equal(t, plan.ID, list.GeneratedFrom.MealPlanID)
	require.NotNil(t, list.GeneratedFrom.StartDate)
	assert.True(t, list.GeneratedFrom.StartDate.Equal(planDate))
	assert.Nil(t, list.GeneratedFrom.EndDate)
}

func TestShoppingListService_GenerateFromMealPlan_ExplicitDates(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	userID := uuid.New()
	plan := &entity.MealPlan{
		ID:     uuid.New(),
		UserID: userID,
		Date:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	fx.mealPlanRepo.EXPECT().FindByIDAndUser(ctx, plan.ID, userID).Return(plan, nil)
	fx.shoppingListRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ShoppingList")).
		Return(nil)

	list, err := fx.service.GenerateFromMealPlan(ctx, userID, &usecase.GenerateFromMealPlanInput{
		MealPlanID: plan.ID,
		StartDate:  &start,
		EndDate:    &end,
	})

	require.NoError(t, err)
	require.NotNil(t, list.GeneratedFrom)
	assert.True(t, list.GeneratedFrom.StartDate.Equal(start))
	assert.True(t, list.GeneratedFrom.EndDate.Equal(end))
}

func TestShoppingListService_GenerateFromMealPlan_PlanNotFound(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()

	fx.mealPlanRepo.EXPECT().
		FindByIDAndUser(ctx, planID, userID).
		Return(nil, repository.ErrMealPlanNotFound)

	list, err := fx.service.GenerateFromMealPlan(ctx, userID, &usecase.GenerateFromMealPlanInput{
		MealPlanID: planID,
	})

	assert.Nil(t, list)
	assert.True(t, errors.Is(err, domainerrors.ErrMealPlanNotFound))
}

func TestShoppingListService_AddItem(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	userID := uuid.New()
	list := &entity.ShoppingList{ID: uuid.New(), UserID: userID, Name: "Groceries"}

	fx.shoppingListRepo.EXPECT().FindByIDAndUser(ctx, list.ID, userID).Return(list, nil)
	fx.shoppingListRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ShoppingList")).
		Return(nil)

	got, err := fx.service.AddItem(ctx, userID, list.ID, &usecase.ShoppingListItemInput{
		Name: "Frozen Peas",
	})

	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, entity.CategoryFrozen, got.Items[0].Category)
	assert.Equal(t, "1", got.Items[0].Quantity)
}

func TestShoppingListService_UpdateItem_NotFound(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	userID := uuid.New()
	list := &entity.ShoppingList{
		ID:     uuid.New(),
		UserID: userID,
		Items:  []entity.ShoppingListItem{{ID: uuid.New(), Name: "Milk"}},
	}

	fx.shoppingListRepo.EXPECT().FindByIDAndUser(ctx, list.ID, userID).Return(list, nil)

	checked := true
	got, err := fx.service.UpdateItem(ctx, userID, list.ID, uuid.New(), &usecase.UpdateShoppingListItemInput{
		Checked: &checked,
	})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrShoppingListItemNotFound))
}

func TestShoppingListService_ClearCheckedItems(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	userID := uuid.New()
	list := &entity.ShoppingList{
		ID:     uuid.New(),
		UserID: userID,
		Items: []entity.ShoppingListItem{
			{ID: uuid.New(), Name: "Milk", Checked: true},
			{ID: uuid.New(), Name: "Rice", Checked: false},
			{ID: uuid.New(), Name: "Eggs", Checked: true},
		},
	}

	fx.shoppingListRepo.EXPECT().FindByIDAndUser(ctx, list.ID, userID).Return(list, nil)
	fx.shoppingListRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ShoppingList")).
		Return(nil)

	got, err := fx.service.ClearCheckedItems(ctx, userID, list.ID)

	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Rice", got.Items[0].Name)
}

func TestShoppingListService_GetListQRCode(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	userID := uuid.New()
	list := &entity.ShoppingList{ID: uuid.New(), UserID: userID, Name: "Groceries"}

	fx.shoppingListRepo.EXPECT().FindByIDAndUser(ctx, list.ID, userID).Return(list, nil)
	fx.qrCodeService.EXPECT().GenerateShoppingListQR(list.ID).Return([]byte("png-bytes"), nil)

	png, err := fx.service.GetListQRCode(ctx, userID, list.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestShoppingListService_GetListQRCode_ListNotFound(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	userID := uuid.New()
	listID := uuid.New()

	fx.shoppingListRepo.EXPECT().
		FindByIDAndUser(ctx, listID, userID).
		Return(nil, repository.ErrShoppingListNotFound)

	png, err := fx.service.GetListQRCode(ctx, userID, listID)

	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrShoppingListNotFound))
}

func TestShoppingListService_ResolveScannedList(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	userID := uuid.New()
	list := &entity.ShoppingList{ID: uuid.New(), UserID: userID, Name: "Groceries"}

	fx.qrCodeService.EXPECT().ParseShoppingListQR("scanned-payload").Return(list.ID, nil)
	fx.shoppingListRepo.EXPECT().FindByIDAndUser(ctx, list.ID, userID).Return(list, nil)

	got, err := fx.service.ResolveScannedList(ctx, userID, &usecase.ScanQRCodeInput{Payload: "scanned-payload"})

	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestShoppingListService_ResolveScannedList_BadPayload(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.qrCodeService.EXPECT().
		ParseShoppingListQR("not-a-list-code").
		Return(uuid.Nil, errors.New("unexpected payload type"))

	got, err := fx.service.ResolveScannedList(ctx, userID, &usecase.ScanQRCodeInput{Payload: "not-a-list-code"})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestShoppingListService_ResolveScannedList_NotOwned(t *testing.T) {
	fx := createTestShoppingListService(t)

	ctx := context.Background()
	userID := uuid.New()
	listID := uuid.New()

	fx.qrCodeService.EXPECT().ParseShoppingListQR("scanned-payload").Return(listID, nil)
	fx.shoppingListRepo.EXPECT().
		FindByIDAndUser(ctx, listID, userID).
		Return(nil, repository.ErrShoppingListNotFound)

	got, err := fx.service.ResolveScannedList(ctx, userID, &usecase.ScanQRCodeInput{Payload: "scanned-payload"})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrShoppingListNotFound))
}
