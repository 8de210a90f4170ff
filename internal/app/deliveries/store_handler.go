package deliveries

import (
	"github.com/dealora/dealora-core/internal/app/middlewares"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/app/pkg"
	"github.com/dealora/dealora-core/internal/app/services"
	"github.com/gofiber/fiber/v2"
)

type StoreHandler struct {
	storeService        *services.StoreService
	adminMiddleware     *middlewares.AdminMiddleware
	rateLimitMiddleware *middlewares.RateLimitMiddleware
}

func NewStoreHandler(storeService *services.StoreService, adminMiddleware *middlewares.AdminMiddleware, rateLimitMiddleware *middlewares.RateLimitMiddleware) *StoreHandler {
	return &StoreHandler{
		storeService:        storeService,
		adminMiddleware:     adminMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (h *StoreHandler) RegisterRoutes(router fiber.Router) {
	storeGroup := router.Group("/stores")
	adminLimit := h.rateLimitMiddleware.LimitByIP(middlewares.AdminAPILimit)

	// Public endpoints
	storeGroup.Get("/", h.GetStores)
	storeGroup.Get("/slug/:slug", h.GetStoreBySlug)
	storeGroup.Get("/:id", h.GetStore)

	// Admin endpoints
	storeGroup.Post("/", adminLimit, h.adminMiddleware.RequireAdmin, h.CreateStore)
	storeGroup.Put("/:id", adminLimit, h.adminMiddleware.RequireAdmin, h.UpdateStore)
	storeGroup.Delete("/:id", adminLimit, h.adminMiddleware.RequireAdmin, h.DeleteStore)
}

func (h *StoreHandler) CreateStore(c *fiber.Ctx) error {
	var req models.StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	store, err := h.storeService.CreateStore(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, store)
}

func (h *StoreHandler) GetStores(c *fiber.Ctx) error {
	stores, err := h.storeService.GetStores()
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, stores)
}

func (h *StoreHandler) GetStore(c *fiber.Ctx) error {
	id := c.Params("id")

	store, err := h.storeService.GetStore(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, store)
}

func (h *StoreHandler) GetStoreBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	store, err := h.storeService.GetStoreBySlug(slug)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, store)
}

func (h *StoreHandler) UpdateStore(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	store, err := h.storeService.UpdateStore(id, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, store)
}

func (h *StoreHandler) DeleteStore(c *fiber.Ctx) error {
	id := c.Params("id")

	store, err := h.storeService.DeleteStore(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, store)
}
