// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"smartchef/internal/delivery/http/middleware"
	"smartchef/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	InventoryHandler    *handler.InventoryHandler
	RecipeHandler       *handler.RecipeHandler
	MealPlanHandler     *handler.MealPlanHandler
	ShoppingListHandler *handler.ShoppingListHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	inventoryHandler    *handler.InventoryHandler
	recipeHandler       *handler.RecipeHandler
	mealPlanHandler     *handler.MealPlanHandler
	shoppingListHandler *handler.ShoppingListHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		inventoryHandler:    params.InventoryHandler,
		recipeHandler:       params.RecipeHandler,
		mealPlanHandler:     params.MealPlanHandler,
		shoppingListHandler: params.ShoppingListHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Health check endpoint
	api.GET("/health", handler.HealthCheck)

	// User routes; register and login are public, profile requires auth
	userGroup := api.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("/profile", r.userHandler.GetProfile, r.authMiddleware.Authenticate)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile, r.authMiddleware.Authenticate)
	}

	// Inventory routes
	inventoryGroup := api.Group("/inventory")
	inventoryGroup.Use(r.authMiddleware.Authenticate)
	{
		inventoryGroup.GET("", r.inventoryHandler.ListItems)
		inventoryGroup.GET("/expiring", r.inventoryHandler.ListExpiringItems)
		inventoryGroup.GET("/:id", r.inventoryHandler.GetItem)
		inventoryGroup.POST("", r.inventoryHandler.CreateItem)
		inventoryGroup.PUT("/:id", r.inventoryHandler.UpdateItem)
		inventoryGroup.DELETE("/:id", r.inventoryHandler.DeleteItem)
	}

	// Recipe routes
	recipeGroup := api.Group("/recipes")
	recipeGroup.Use(r.authMiddleware.Authenticate)
	{
		recipeGroup.GET("", r.recipeHandler.ListRecipes)
		recipeGroup.GET("/suggestions", r.recipeHandler.SuggestRecipes)
		recipeGroup.GET("/:id", r.recipeHandler.GetRecipe)
		recipeGroup.POST("", r.recipeHandler.CreateRecipe)
		recipeGroup.PUT("/:id", r.recipeHandler.UpdateRecipe)
		recipeGroup.DELETE("/:id", r.recipeHandler.DeleteRecipe)
	}

	// Meal plan routes
	mealPlanGroup := api.Group("/meal-plans")
	mealPlanGroup.Use(r.authMiddleware.Authenticate)
	{
		mealPlanGroup.GET("", r.mealPlanHandler.ListPlans)
		mealPlanGroup.GET("/date/:date", r.mealPlanHandler.GetPlanByDate)
		mealPlanGroup.POST("", r.mealPlanHandler.CreatePlan)
		mealPlanGroup.POST("/:mealPlanId/meals", r.mealPlanHandler.AddMeal)
		mealPlanGroup.PUT("/:mealPlanId/meals/:mealId", r.mealPlanHandler.UpdateMeal)
		mealPlanGroup.DELETE("/:mealPlanId/meals/:mealId", r.mealPlanHandler.RemoveMeal)
		mealPlanGroup.DELETE("/:mealPlanId", r.mealPlanHandler.DeletePlan)
	}

	// Shopping list routes
	shoppingGroup := api.Group("/shopping-lists")
	shoppingGroup.Use(r.authMiddleware.Authenticate)
	{
		shoppingGroup.GET("", r.shoppingListHandler.ListLists)
		shoppingGroup.GET("/:id", r.shoppingListHandler.GetList)
		shoppingGroup.POST("", r.shoppingListHandler.CreateList)
		shoppingGroup.PUT("/:id", r.shoppingListHandler.UpdateList)
		shoppingGroup.DELETE("/:id", r.shoppingListHandler.DeleteList)
		shoppingGroup.POST("/generate-from-meal-plan", r.shoppingListHandler.GenerateFromMealPlan)
		shoppingGroup.POST("/:id/items", r.shoppingListHandler.AddItem)
		shoppingGroup.PUT("/:id/items/:itemId", r.shoppingListHandler.UpdateItem)
		shoppingGroup.DELETE("/:id/items/:itemId", r.shoppingListHandler.RemoveItem)
		shoppingGroup.PUT("/:id/clear-checked", r.shoppingListHandler.ClearCheckedItems)
		shoppingGroup.GET("/:id/qrcode", r.shoppingListHandler.GetListQRCode)
		shoppingGroup.POST("/scan", r.shoppingListHandler.ScanQRCode)
	}
}
