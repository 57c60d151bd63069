package gorm

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nileplate/v1/internal/domain/catalog"
	"github.com/nileplate/v1/internal/ports/outbound"
)

// RecipeRepository implements outbound.RecipeRepository using GORM
type RecipeRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecipeRepository creates a new GORM-based recipe repository
func NewRecipeRepository(db *gorm.DB, logger *zap.Logger) outbound.RecipeRepository {
	return &RecipeRepository{
		db:     db,
		logger: logger.Named("recipe-repository"),
	}
}

// FindByUser returns all recipes authored by a user with items preloaded
func (r *RecipeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]catalog.UserRecipe, error) {
	var models []UserRecipeModel
	if err := r.db.WithContext(ctx).
		Preload("Items.Ingredient").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load user recipes: %w", err)
	}

	recipes := make([]catalog.UserRecipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, ModelToUserRecipe(&models[i]))
	}
	return recipes, nil
}
