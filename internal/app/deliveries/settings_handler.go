package deliveries

import (
	"github.com/dealora/dealora-core/internal/app/middlewares"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/app/pkg"
	"github.com/dealora/dealora-core/internal/app/services"
	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	settingsService     *services.SettingsService
	adminMiddleware     *middlewares.AdminMiddleware
	rateLimitMiddleware *middlewares.RateLimitMiddleware
}

func NewSettingsHandler(settingsService *services.SettingsService, adminMiddleware *middlewares.AdminMiddleware, rateLimitMiddleware *middlewares.RateLimitMiddleware) *SettingsHandler {
	return &SettingsHandler{
		settingsService:     settingsService,
		adminMiddleware:     adminMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (h *SettingsHandler) RegisterRoutes(router fiber.Router) {
	settingsGroup := router.Group("/settings")

	settingsGroup.Get("/", h.GetSettings)
	settingsGroup.Put("/", h.rateLimitMiddleware.LimitByIP(middlewares.AdminAPILimit), h.adminMiddleware.RequireAdmin, h.UpdateSettings)
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, settings)
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req models.SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	settings, err := h.settingsService.UpdateSettings(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, settings)
}
