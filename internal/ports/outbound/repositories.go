// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nileplate/v1/internal/domain/catalog"
	"github.com/nileplate/v1/internal/domain/user"
)

// CatalogRepository provides read access to the meal catalog. The planner
// loads everything up front and works in memory; no query-shaped access is
// needed beyond these bulk reads.
type CatalogRepository interface {
	// ActiveMeals returns all standardized market meals
	ActiveMeals(ctx context.Context) ([]catalog.CatalogMeal, error)

	// CompositeMeals returns all ingredient-composed meals with their
	// recipe lines preloaded
	CompositeMeals(ctx context.Context) ([]*catalog.CompositeMeal, error)

	// FindCompositeByKey returns one composite meal by its stable key
	FindCompositeByKey(ctx context.Context, key string) (*catalog.CompositeMeal, error)
}

// UserRepository provides the planning view of user profiles. The strategy
// rotation index is the only field the planner writes back.
type UserRepository interface {
	FindProfile(ctx context.Context, userID uuid.UUID) (*user.PlanningProfile, error)
	SaveStrategyIndex(ctx context.Context, userID uuid.UUID, index int) error
}

// RecipeRepository provides read access to user-authored recipes
type RecipeRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]catalog.UserRecipe, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
