package handler

import (
	"log/slog"
	"net/http"
	"time"

	"smartchef/internal/delivery/http/middleware"
	"smartchef/internal/delivery/http/response"
	"smartchef/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MealPlanHandler holds dependencies for meal-plan-related handlers.
type MealPlanHandler struct {
	uc     usecase.MealPlanUsecase
	logger *slog.Logger
}

// NewMealPlanHandler is the constructor for MealPlanHandler, injected by Fx.
func NewMealPlanHandler(uc usecase.MealPlanUsecase, logger *slog.Logger) *MealPlanHandler {
	return &MealPlanHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPlans returns the user's plans, earliest date first.
func (h *MealPlanHandler) ListPlans(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	plans, err := h.uc.ListPlans(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plans, "Meal plans retrieved successfully")
}

// GetPlanByDate returns the plan for the calendar day named in the path.
func (h *MealPlanHandler) GetPlanByDate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	date, err := parseDateParam(c.Param("date"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid date, expected YYYY-MM-DD")
	}

	plan, err := h.uc.GetPlanByDate(c.Request().Context(), userID, date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan, "Meal plan retrieved successfully")
}

// CreatePlan creates the plan for a day, replacing an existing one.
func (h *MealPlanHandler) CreatePlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.CreateMealPlanInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal plan input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Day and date are required")
	}

	plan, err := h.uc.CreatePlan(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, plan, "Meal plan created successfully")
}

// AddMeal appends a meal to an existing plan.
func (h *MealPlanHandler) AddMeal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, err := uuid.Parse(c.Param("mealPlanId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal plan id")
	}

	var input *usecase.MealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Meal type is required")
	}

	plan, err := h.uc.AddMeal(c.Request().Context(), userID, planID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan, "Meal added successfully")
}

// UpdateMeal applies a partial update to one meal within a plan.
func (h *MealPlanHandler) UpdateMeal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, err := uuid.Parse(c.Param("mealPlanId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal plan id")
	}
	mealID, err := uuid.Parse(c.Param("mealId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal id")
	}

	var input *usecase.UpdateMealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if input == nil {
		input = &usecase.UpdateMealInput{}
	}

	plan, err := h.uc.UpdateMeal(c.Request().Context(), userID, planID, mealID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan, "Meal updated successfully")
}

// RemoveMeal deletes one meal from a plan.
func (h *MealPlanHandler) RemoveMeal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, err := uuid.Parse(c.Param("mealPlanId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal plan id")
	}
	mealID, err := uuid.Parse(c.Param("mealId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal id")
	}

	plan, err := h.uc.RemoveMeal(c.Request().Context(), userID, planID, mealID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan, "Meal removed successfully")
}

// DeletePlan removes a whole plan.
func (h *MealPlanHandler) DeletePlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, err := uuid.Parse(c.Param("mealPlanId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal plan id")
	}

	if err := h.uc.DeletePlan(c.Request().Context(), userID, planID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Meal plan removed"}, "Meal plan deleted successfully")
}

// parseDateParam accepts a plain calendar date or a full RFC 3339 timestamp.
func parseDateParam(raw string) (time.Time, error) {
	if date, err := time.Parse("2006-01-02", raw); err == nil {
		return date, nil
	}

	return time.Parse(time.RFC3339, raw)
}
