package main

import (
	"context"
	"log/slog"
	"os"

	"smartchef/config"
	"smartchef/internal/delivery"
	"smartchef/internal/delivery/http"
	"smartchef/internal/delivery/http/middleware"
	"smartchef/internal/delivery/http/router/handler"
	"smartchef/internal/infra/auth"
	logs "smartchef/internal/infra/log"
	"smartchef/internal/infra/persistence/postgres"
	"smartchef/internal/infra/qrcode"
	"smartchef/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewInventoryRepository,
			postgres.NewRecipeRepository,
			postgres.NewMealPlanRepository,
			postgres.NewShoppingListRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewInventoryService,
			impl.NewRecipeService,
			impl.NewSuggestionService,
			impl.NewMealPlanService,
			impl.NewShoppingListService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewInventoryHandler,
			handler.NewRecipeHandler,
			handler.NewMealPlanHandler,
			handler.NewShoppingListHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
