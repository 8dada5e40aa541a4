package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"smartchef/internal/delivery/http/middleware"
	"smartchef/internal/delivery/http/response"
	"smartchef/internal/domain/entity"
	"smartchef/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for recipe-related handlers.
type RecipeHandler struct {
	uc           usecase.RecipeUsecase
	suggestionUC usecase.SuggestionUsecase
	logger       *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, suggestionUC usecase.SuggestionUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:           uc,
		suggestionUC: suggestionUC,
		logger:       logger,
	}
}

// ListRecipes returns the recipes visible to the user, filtered by query
// parameters.
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filter, err := parseRecipeFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	recipes, err := h.uc.ListRecipes(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipes, "Recipes retrieved successfully")
}

// SuggestRecipes ranks visible recipes by how much of each ingredient list
// the user's pantry covers.
func (h *RecipeHandler) SuggestRecipes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	suggestions, err := h.suggestionUC.SuggestRecipes(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suggestions, "Suggestions retrieved successfully")
}

// GetRecipe returns a single recipe the user may read.
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe id")
	}

	recipe, err := h.uc.GetRecipe(c.Request().Context(), userID, recipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe retrieved successfully")
}

// CreateRecipe creates a recipe owned by the user.
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.CreateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Title, ingredients and instructions are required")
	}

	recipe, err := h.uc.CreateRecipe(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, recipe, "Recipe created successfully")
}

// UpdateRecipe applies a partial update to a recipe the user owns.
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe id")
	}

	var input *usecase.UpdateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}

	recipe, err := h.uc.UpdateRecipe(c.Request().Context(), userID, recipeID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe updated successfully")
}

// DeleteRecipe removes a recipe the user owns.
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe id")
	}

	if err := h.uc.DeleteRecipe(c.Request().Context(), userID, recipeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Recipe removed"}, "Recipe deleted successfully")
}

// parseRecipeFilter builds the list filter from query parameters. Tags come
// comma-separated; the boolean flags accept "true"/"false".
func parseRecipeFilter(c echo.Context) (*usecase.RecipeListFilter, error) {
	filter := &usecase.RecipeListFilter{
		Search:     c.QueryParam("search"),
		Difficulty: entity.Difficulty(c.QueryParam("difficulty")),
	}

	if raw := c.QueryParam("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}

	var err error
	if filter.IncludeUserRecipes, err = parseBoolParam(c, "includeUserRecipes"); err != nil {
		return nil, err
	}
	if filter.IncludeSystemRecipes, err = parseBoolParam(c, "includeSystemRecipes"); err != nil {
		return nil, err
	}
	if filter.MaxPrepTime, err = parseIntParam(c, "maxPrepTime"); err != nil {
		return nil, err
	}
	if filter.MaxCookTime, err = parseIntParam(c, "maxCookTime"); err != nil {
		return nil, err
	}

	return filter, nil
}

func parseBoolParam(c echo.Context, param string) (*bool, error) {
	raw := c.QueryParam(param)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.Errorf("invalid value for query parameter %s", param)
	}

	return &value, nil
}

func parseIntParam(c echo.Context, param string) (*int, error) {
	raw := c.QueryParam(param)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return nil, errors.Errorf("invalid value for query parameter %s", param)
	}

	return &value, nil
}
