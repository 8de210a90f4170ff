package injector

import (
	"github.com/dealora/dealora-core/internal/app/deliveries"
	"github.com/dealora/dealora-core/internal/app/middlewares"
	"github.com/gofiber/fiber/v2"
)

// Application is the wired container of every handler and middleware.
type Application struct {
	HealthHandler       *deliveries.HealthHandler
	CatalogHandler      *deliveries.CatalogHandler
	CouponHandler       *deliveries.CouponHandler
	StoreHandler        *deliveries.StoreHandler
	CategoryHandler     *deliveries.CategoryHandler
	BlogHandler         *deliveries.BlogHandler
	EventHandler        *deliveries.EventHandler
	SeoHandler          *deliveries.SeoHandler
	SettingsHandler     *deliveries.SettingsHandler
	RateLimitMiddleware *middlewares.RateLimitMiddleware
}

// RegisterRoutes registers all application routes using a Fiber router
func (app *Application) RegisterRoutes(router fiber.Router) {
	// Public traffic is rate limited per IP
	router.Use(app.RateLimitMiddleware.LimitByIP(middlewares.PublicAPILimit))

	app.HealthHandler.RegisterRoutes(router)
	app.CatalogHandler.RegisterRoutes(router)
	app.CouponHandler.RegisterRoutes(router)
	app.StoreHandler.RegisterRoutes(router)
	app.CategoryHandler.RegisterRoutes(router)
	app.BlogHandler.RegisterRoutes(router)
	app.EventHandler.RegisterRoutes(router)
	app.SeoHandler.RegisterRoutes(router)
	app.SettingsHandler.RegisterRoutes(router)
}
