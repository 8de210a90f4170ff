//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/dealora/dealora-core/internal/app/deliveries"
	"github.com/dealora/dealora-core/internal/app/middlewares"
	"github.com/dealora/dealora-core/internal/app/services"
	"github.com/dealora/dealora-core/internal/infrastructures"
	"github.com/google/wire"
)

// Infrastructure providers
var infrastructureSet = wire.NewSet(
	infrastructures.NewDatabase,
	infrastructures.NewRedisClient,
	infrastructures.NewValidator,
	wire.Value("dealora"),
	wire.Bind(new(middlewares.RateLimiter), new(*middlewares.RedisRateLimiter)),
	middlewares.NewRedisRateLimiter,
)

// Service providers
var serviceSet = wire.NewSet(
	services.NewCatalogCache,
	services.NewStoreService,
	services.NewCouponService,
	services.NewCatalogService,
	services.NewCategoryService,
	services.NewBlogService,
	services.NewEventService,
	services.NewSeoService,
	services.NewSettingsService,
)

// Middleware providers
var middlewareSet = wire.NewSet(
	middlewares.NewAdminMiddleware,
	middlewares.NewRateLimitMiddleware,
)

// Handler providers
var handlerSet = wire.NewSet(
	deliveries.NewHealthHandler,
	deliveries.NewCatalogHandler,
	deliveries.NewCouponHandler,
	deliveries.NewStoreHandler,
	deliveries.NewCategoryHandler,
	deliveries.NewBlogHandler,
	deliveries.NewEventHandler,
	deliveries.NewSeoHandler,
	deliveries.NewSettingsHandler,
	wire.Struct(new(Application), "*"),
)

// InitializeApplication initializes the application with all its dependencies
func InitializeApplication() (*Application, error) {
	wire.Build(
		infrastructureSet,
		serviceSet,
		middlewareSet,
		handlerSet,
	)
	return &Application{}, nil
}
