package postgres

import (
	"context"

	"smartchef/internal/domain/entity"
	domainerrors "smartchef/internal/domain/errors"
	"smartchef/internal/domain/repository"
	"smartchef/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

// FindByID retrieves a recipe regardless of visibility. Capability checks
// belong to the caller.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// List retrieves recipes matching the filter for the given user, newest first.
// Visibility is an OR of the two include flags; with both off the result is
// always empty.
func (repo *recipeRepository) List(ctx context.Context, userID uuid.UUID, filter repository.RecipeFilter) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	query := repo.db.WithContext(ctx)

	switch {
	case filter.IncludeUserRecipes && filter.IncludeSystemRecipes:
		query = query.Where("owner_id = ? OR is_system_recipe = ?", userID, true)
	case filter.IncludeUserRecipes:
		query = query.Where("owner_id = ?", userID)
	case filter.IncludeSystemRecipes:
		query = query.Where("is_system_recipe = ?", true)
	default:
		return []*entity.Recipe{}, nil
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR array_to_string(tags, ' ') ILIKE ? OR array_to_string(ingredients, ' ') ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	if len(filter.Tags) > 0 {
		// Overlap operator matches recipes carrying any of the given tags.
		query = query.Where("tags && ?", pq.StringArray(filter.Tags))
	}

	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", string(filter.Difficulty))
	}

	if filter.MaxPrepTime != nil {
		query = query.Where("prep_time <= ?", *filter.MaxPrepTime)
	}

	if filter.MaxCookTime != nil {
		query = query.Where("cook_time <= ?", *filter.MaxCookTime)
	}

	if err := query.Order("created_at DESC").Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// FindVisible retrieves every recipe visible to the user, newest first.
func (repo *recipeRepository) FindVisible(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? OR is_system_recipe = ?", userID, true).
		Order("created_at DESC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visible recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// Create persists a new recipe.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required recipe information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	// Update the entity with generated values
	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// Update modifies an existing recipe.
func (repo *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)
	recipeM.CreatedAt = recipe.CreatedAt

	if err := repo.db.WithContext(ctx).Save(recipeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required recipe information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update recipe")
	}

	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// Delete removes a recipe by id.
func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RecipeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete recipe")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:             data.ID,
		Title:          data.Title,
		Image:          data.Image,
		PrepTime:       data.PrepTime,
		CookTime:       data.CookTime,
		Servings:       data.Servings,
		Difficulty:     entity.Difficulty(data.Difficulty),
		Ingredients:    []string(data.Ingredients),
		Instructions:   []string(data.Instructions),
		Tags:           []string(data.Tags),
		Rating:         data.Rating,
		OwnerID:        data.OwnerID,
		IsSystemRecipe: data.IsSystemRecipe,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:             data.ID,
		Title:          data.Title,
		Image:          data.Image,
		PrepTime:       data.PrepTime,
		CookTime:       data.CookTime,
		Servings:       data.Servings,
		Difficulty:     string(data.Difficulty),
		Ingredients:    pq.StringArray(data.Ingredients),
		Instructions:   pq.StringArray(data.Instructions),
		Tags:           pq.StringArray(data.Tags),
		Rating:         data.Rating,
		OwnerID:        data.OwnerID,
		IsSystemRecipe: data.IsSystemRecipe,
	}
}
