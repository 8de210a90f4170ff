package deliveries

import (
	"github.com/dealora/dealora-core/internal/app/middlewares"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/app/pkg"
	"github.com/dealora/dealora-core/internal/app/services"
	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categoryService     *services.CategoryService
	adminMiddleware     *middlewares.AdminMiddleware
	rateLimitMiddleware *middlewares.RateLimitMiddleware
}

func NewCategoryHandler(categoryService *services.CategoryService, adminMiddleware *middlewares.AdminMiddleware, rateLimitMiddleware *middlewares.RateLimitMiddleware) *CategoryHandler {
	return &CategoryHandler{
		categoryService:     categoryService,
		adminMiddleware:     adminMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryGroup := router.Group("/categories")
	adminLimit := h.rateLimitMiddleware.LimitByIP(middlewares.AdminAPILimit)

	// Public endpoints
	categoryGroup.Get("/", h.GetCategories)
	categoryGroup.Get("/:id", h.GetCategory)

	// Admin endpoints
	categoryGroup.Post("/", adminLimit, h.adminMiddleware.RequireAdmin, h.CreateCategory)
	categoryGroup.Put("/:id", adminLimit, h.adminMiddleware.RequireAdmin, h.UpdateCategory)
	categoryGroup.Delete("/:id", adminLimit, h.adminMiddleware.RequireAdmin, h.DeleteCategory)
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req models.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, category)
}

func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, categories)
}

func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, category)
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	category, err := h.categoryService.UpdateCategory(id, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, category)
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	category, err := h.categoryService.DeleteCategory(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, category)
}
