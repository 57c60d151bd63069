package gorm

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nileplate/v1/internal/domain/catalog"
	"github.com/nileplate/v1/internal/ports/outbound"
)

// CatalogRepository implements outbound.CatalogRepository using GORM
type CatalogRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCatalogRepository creates a new GORM-based catalog repository
func NewCatalogRepository(db *gorm.DB, logger *zap.Logger) outbound.CatalogRepository {
	return &CatalogRepository{
		db:     db,
		logger: logger.Named("catalog-repository"),
	}
}

// ActiveMeals returns all active standardized market meals
func (r *CatalogRepository) ActiveMeals(ctx context.Context) ([]catalog.CatalogMeal, error) {
	var models []CatalogMealModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog meals: %w", err)
	}

	meals := make([]catalog.CatalogMeal, 0, len(models))
	for i := range models {
		meals = append(meals, ModelToCatalogMeal(&models[i]))
	}
	return meals, nil
}

// CompositeMeals returns all composite meals with recipe lines and their
// ingredients preloaded
func (r *CatalogRepository) CompositeMeals(ctx context.Context) ([]*catalog.CompositeMeal, error) {
	var models []CompositeMealModel
	if err := r.db.WithContext(ctx).
		Preload("Lines.Ingredient").
		Order("name_en").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load composite meals: %w", err)
	}

	meals := make([]*catalog.CompositeMeal, 0, len(models))
	for i := range models {
		meals = append(meals, ModelToCompositeMeal(&models[i]))
	}
	return meals, nil
}

// FindCompositeByKey returns one composite meal by its stable key, nil when
// absent
func (r *CatalogRepository) FindCompositeByKey(ctx context.Context, key string) (*catalog.CompositeMeal, error) {
	var model CompositeMealModel
	err := r.db.WithContext(ctx).
		Preload("Lines.Ingredient").
		Where("key = ?", key).
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find composite meal %q: %w", key, err)
	}
	return ModelToCompositeMeal(&model), nil
}
