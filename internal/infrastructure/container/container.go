// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appplanner "github.com/nileplate/v1/internal/application/planner"
	"github.com/nileplate/v1/internal/infrastructure/cache"
	"github.com/nileplate/v1/internal/infrastructure/config"
	"github.com/nileplate/v1/internal/infrastructure/http/server"
	"github.com/nileplate/v1/internal/infrastructure/monitoring"
	gormrepo "github.com/nileplate/v1/internal/infrastructure/persistence/gorm"
	"github.com/nileplate/v1/internal/ports/inbound"
	"github.com/nileplate/v1/internal/ports/outbound"
	"github.com/nileplate/v1/pkg/healthcheck"
	"github.com/nileplate/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the GORM database connection
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		return gormrepo.NewDatabase(cfg, log)
	},
)

// CacheModule provides the cache adapter. Redis when enabled, in-memory
// otherwise.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Enabled {
			return cache.NewRedisCache(cfg, log)
		}
		log.Info("Redis disabled, using in-memory cache")
		return cache.NewMemoryCache(), nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormrepo.NewCatalogRepository,
	gormrepo.NewUserRepository,
	gormrepo.NewRecipeRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		catalogRepo outbound.CatalogRepository,
		userRepo outbound.UserRepository,
		recipeRepo outbound.RecipeRepository,
		cacheRepo outbound.CacheRepository,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.PlannerService {
		return appplanner.NewService(catalogRepo, userRepo, recipeRepo, cacheRepo, log, appplanner.Options{
			Trials:             cfg.Planner.Trials,
			DefaultDailyBudget: cfg.Planner.DefaultDailyBudget,
			PlanCacheTTL:       cfg.Planner.PlanCacheTTL,
		})
	},
)

// HTTPModule provides the HTTP server, metrics, and health checks
var HTTPModule = fx.Provide(
	monitoring.NewMetricsCollector,
	func(cfg *config.Config, log *zap.Logger, db *gorm.DB, cacheRepo outbound.CacheRepository) *healthcheck.HealthCheck {
		hc := healthcheck.New(cfg.App.Version, log)
		hc.Register("database", healthcheck.NewDatabaseChecker(db))
		hc.Register("cache", healthcheck.NewCacheChecker(cacheRepo))
		return hc
	},
	server.NewServer,
)

// LifecycleModule wires startup and shutdown hooks
var LifecycleModule = fx.Invoke(
	func(lc fx.Lifecycle, srv *server.Server, log *zap.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := srv.Start(); err != nil {
						log.Error("HTTP server stopped unexpectedly", zap.Error(err))
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				stopCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
				defer cancel()
				return srv.Stop(stopCtx)
			},
		})
	},
)
