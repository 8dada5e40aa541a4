package impl

import (
	"context"
	"log/slog"

	deliverycontext "smartchef/internal/delivery/context"
	"smartchef/internal/domain/entity"
	domainerrors "smartchef/internal/domain/errors"
	"smartchef/internal/domain/repository"
	"smartchef/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	recipeRepo repository.RecipeRepository
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for recipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo repository.RecipeRepository
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		recipeRepo: params.RecipeRepo,
		logger:     params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRecipes retrieves recipes visible to the user, filtered and newest
// first. Both visibility flags default to on.
func (srv *recipeService) ListRecipes(ctx context.Context, userID uuid.UUID, filter *usecase.RecipeListFilter) ([]*entity.Recipe, error) {
	if filter == nil {
		filter = &usecase.RecipeListFilter{}
	}
	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown difficulty")
	}

	repoFilter := repository.RecipeFilter{
		IncludeUserRecipes:   true,
		IncludeSystemRecipes: true,
		Search:               filter.Search,
		Tags:                 filter.Tags,
		Difficulty:           filter.Difficulty,
		MaxPrepTime:          filter.MaxPrepTime,
		MaxCookTime:          filter.MaxCookTime,
	}
	if filter.IncludeUserRecipes != nil {
		repoFilter.IncludeUserRecipes = *filter.IncludeUserRecipes
	}
	if filter.IncludeSystemRecipes != nil {
		repoFilter.IncludeSystemRecipes = *filter.IncludeSystemRecipes
	}

	recipes, err := srv.recipeRepo.List(ctx, userID, repoFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// GetRecipe retrieves a single recipe the user may read.
func (srv *recipeService) GetRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	if !recipe.VisibleTo(userID) {
		return nil, domainerrors.ErrRecipeAccessDenied
	}

	return recipe, nil
}

// CreateRecipe creates a user-owned recipe. The rating is fixed at creation;
// there is no separate rating endpoint.
func (srv *recipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	srv.log(ctx).Info("Creating recipe", slog.String("userID", userID.String()), slog.String("title", input.Title))

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = entity.DifficultyMedium
	}
	if !difficulty.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown difficulty")
	}

	recipe := entity.NewUserRecipe(userID)
	recipe.Title = input.Title
	recipe.Image = input.Image
	recipe.PrepTime = input.PrepTime
	recipe.CookTime = input.CookTime
	recipe.Servings = input.Servings
	recipe.Difficulty = difficulty
	recipe.Ingredients = input.Ingredients
	recipe.Instructions = input.Instructions
	recipe.Tags = input.Tags
	recipe.Rating = input.Rating

	if err := srv.recipeRepo.Create(ctx, &recipe); err != nil {
		return nil, errors.Wrap(err, "failed to create recipe")
	}

	return &recipe, nil
}

// UpdateRecipe applies a partial update to a recipe the user owns. System
// recipes are owned by nobody, so they always fail the ownership check.
func (srv *recipeService) UpdateRecipe(ctx context.Context, userID, recipeID uuid.UUID, input *usecase.UpdateRecipeInput) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	if !recipe.OwnedBy(userID) {
		return nil, domainerrors.ErrRecipeNotOwned
	}

	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.Image != nil {
		recipe.Image = *input.Image
	}
	if input.PrepTime != nil {
		recipe.PrepTime = *input.PrepTime
	}
	if input.CookTime != nil {
		recipe.CookTime = *input.CookTime
	}
	if input.Servings != nil {
		recipe.Servings = *input.Servings
	}
	if input.Difficulty != nil {
		if !input.Difficulty.Valid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown difficulty")
		}
		recipe.Difficulty = *input.Difficulty
	}
	if input.Ingredients != nil {
		recipe.Ingredients = input.Ingredients
	}
	if input.Instructions != nil {
		recipe.Instructions = input.Instructions
	}
	if input.Tags != nil {
		recipe.Tags = input.Tags
	}

	if err := srv.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, errors.Wrap(err, "failed to update recipe")
	}

	return recipe, nil
}

// DeleteRecipe removes a recipe the user owns.
func (srv *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	srv.log(ctx).Info("Deleting recipe", slog.String("userID", userID.String()), slog.String("recipeID", recipeID.String()))

	recipe, err := srv.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return domainerrors.ErrRecipeNotFound
		}

		return errors.Wrap(err, "failed to find recipe")
	}

	if !recipe.OwnedBy(userID) {
		return domainerrors.ErrRecipeNotOwned
	}

	if err := srv.recipeRepo.Delete(ctx, recipeID); err != nil {
		return errors.Wrap(err, "failed to delete recipe")
	}

	return nil
}
