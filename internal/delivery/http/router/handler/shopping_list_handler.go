package handler

import (
	"log/slog"
	"net/http"

	"smartchef/internal/delivery/http/middleware"
	"smartchef/internal/delivery/http/response"
	"smartchef/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ShoppingListHandler holds dependencies for shopping-list-related handlers.
type ShoppingListHandler struct {
	uc     usecase.ShoppingListUsecase
	logger *slog.Logger
}

// NewShoppingListHandler is the constructor for ShoppingListHandler, injected by Fx.
func NewShoppingListHandler(uc usecase.ShoppingListUsecase, logger *slog.Logger) *ShoppingListHandler {
	return &ShoppingListHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListLists returns the user's shopping lists, newest first.
func (h *ShoppingListHandler) ListLists(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	lists, err := h.uc.ListLists(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lists, "Shopping lists retrieved successfully")
}

// GetList returns a single shopping list.
func (h *ShoppingListHandler) GetList(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid list id")
	}

	list, err := h.uc.GetList(c.Request().Context(), userID, listID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, "Shopping list retrieved successfully")
}

// CreateList creates a shopping list.
func (h *ShoppingListHandler) CreateList(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.CreateShoppingListInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list input")
	}
	if input == nil {
		input = &usecase.CreateShoppingListInput{}
	}

	list, err := h.uc.CreateList(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, list, "Shopping list created successfully")
}

// UpdateList applies a partial update to a shopping list.
func (h *ShoppingListHandler) UpdateList(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid list id")
	}

	var input *usecase.UpdateShoppingListInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list input")
	}

	list, err := h.uc.UpdateList(c.Request().Context(), userID, listID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, "Shopping list updated successfully")
}

// DeleteList removes a shopping list.
func (h *ShoppingListHandler) DeleteList(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid list id")
	}

	if err := h.uc.DeleteList(c.Request().Context(), userID, listID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Shopping list removed"}, "Shopping list deleted successfully")
}

// GenerateFromMealPlan builds a new list from a meal plan's recipes.
func (h *ShoppingListHandler) GenerateFromMealPlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.GenerateFromMealPlanInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid generation input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "A meal plan id is required")
	}

	list, err := h.uc.GenerateFromMealPlan(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, list, "Shopping list generated successfully")
}

// AddItem appends one line item to a list.
func (h *ShoppingListHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid list id")
	}

	var input *usecase.ShoppingListItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Item name is required")
	}

	list, err := h.uc.AddItem(c.Request().Context(), userID, listID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, "Item added successfully")
}

// UpdateItem applies a partial update to one line item.
func (h *ShoppingListHandler) UpdateItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid list id")
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item id")
	}

	var input *usecase.UpdateShoppingListItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	list, err := h.uc.UpdateItem(c.Request().Context(), userID, listID, itemID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, "Item updated successfully")
}

// RemoveItem deletes one line item from a list.
func (h *ShoppingListHandler) RemoveItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid list id")
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item id")
	}

	list, err := h.uc.RemoveItem(c.Request().Context(), userID, listID, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, "Item removed successfully")
}

// ClearCheckedItems drops every checked item from a list.
func (h *ShoppingListHandler) ClearCheckedItems(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid list id")
	}

	list, err := h.uc.ClearCheckedItems(c.Request().Context(), userID, listID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, "Checked items cleared successfully")
}

// ScanQRCode resolves a scanned QR payload back into the shopping list it
// identifies.
func (h *ShoppingListHandler) ScanQRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.ScanQRCodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "A QR code payload is required")
	}

	list, err := h.uc.ResolveScannedList(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, "Shopping list resolved successfully")
}

// GetListQRCode renders a PNG QR code identifying the list.
func (h *ShoppingListHandler) GetListQRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid list id")
	}

	png, err := h.uc.GetListQRCode(c.Request().Context(), userID, listID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
