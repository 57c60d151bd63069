package gorm

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nileplate/v1/internal/domain/user"
	"github.com/nileplate/v1/internal/ports/outbound"
)

// UserRepository implements outbound.UserRepository using GORM
type UserRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserRepository creates a new GORM-based user repository
func NewUserRepository(db *gorm.DB, logger *zap.Logger) outbound.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger.Named("user-repository"),
	}
}

// FindProfile returns the planning profile for a user, nil when absent
func (r *UserRepository) FindProfile(ctx context.Context, userID uuid.UUID) (*user.PlanningProfile, error) {
	var model PlanningProfileModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find planning profile: %w", err)
	}
	return ModelToProfile(&model), nil
}

// SaveStrategyIndex persists the strategy rotation position for a user
func (r *UserRepository) SaveStrategyIndex(ctx context.Context, userID uuid.UUID, index int) error {
	result := r.db.WithContext(ctx).
		Model(&PlanningProfileModel{}).
		Where("user_id = ?", userID).
		Update("last_strategy_index", index)
	if result.Error != nil {
		return fmt.Errorf("failed to save strategy index: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
