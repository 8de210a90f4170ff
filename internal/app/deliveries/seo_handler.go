package deliveries

import (
	"github.com/dealora/dealora-core/internal/app/middlewares"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/app/pkg"
	"github.com/dealora/dealora-core/internal/app/services"
	"github.com/gofiber/fiber/v2"
)

type SeoHandler struct {
	seoService          *services.SeoService
	adminMiddleware     *middlewares.AdminMiddleware
	rateLimitMiddleware *middlewares.RateLimitMiddleware
}

func NewSeoHandler(seoService *services.SeoService, adminMiddleware *middlewares.AdminMiddleware, rateLimitMiddleware *middlewares.RateLimitMiddleware) *SeoHandler {
	return &SeoHandler{
		seoService:          seoService,
		adminMiddleware:     adminMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (h *SeoHandler) RegisterRoutes(router fiber.Router) {
	seoGroup := router.Group("/seo")
	adminLimit := h.rateLimitMiddleware.LimitByIP(middlewares.AdminAPILimit)

	// Public endpoint: rendered meta tags for a page
	seoGroup.Get("/render/:pageType", h.RenderSeo)

	// Admin endpoints
	seoGroup.Get("/", adminLimit, h.adminMiddleware.RequireAdmin, h.GetTemplates)
	seoGroup.Get("/:pageType", adminLimit, h.adminMiddleware.RequireAdmin, h.GetTemplate)
	seoGroup.Post("/", adminLimit, h.adminMiddleware.RequireAdmin, h.CreateTemplate)
	seoGroup.Put("/:pageType", adminLimit, h.adminMiddleware.RequireAdmin, h.UpdateTemplate)
	seoGroup.Delete("/:pageType", adminLimit, h.adminMiddleware.RequireAdmin, h.DeleteTemplate)
}

func (h *SeoHandler) CreateTemplate(c *fiber.Ctx) error {
	var req models.SeoTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	template, err := h.seoService.CreateTemplate(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, template)
}

func (h *SeoHandler) GetTemplates(c *fiber.Ctx) error {
	templates, err := h.seoService.GetTemplates()
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, templates)
}

func (h *SeoHandler) GetTemplate(c *fiber.Ctx) error {
	pageType := c.Params("pageType")

	template, err := h.seoService.GetTemplate(pageType)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, template)
}

// RenderSeo substitutes the template placeholders with the request's
// query parameters, e.g. /seo/render/store?storeName=Acme.
func (h *SeoHandler) RenderSeo(c *fiber.Ctx) error {
	pageType := c.Params("pageType")

	values := make(map[string]string)
	for key, vals := range c.Queries() {
		values[key] = vals
	}

	rendered, err := h.seoService.Render(pageType, values)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, rendered)
}

func (h *SeoHandler) UpdateTemplate(c *fiber.Ctx) error {
	pageType := c.Params("pageType")

	var req models.SeoTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	template, err := h.seoService.UpdateTemplate(pageType, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, template)
}

func (h *SeoHandler) DeleteTemplate(c *fiber.Ctx) error {
	pageType := c.Params("pageType")

	template, err := h.seoService.DeleteTemplate(pageType)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, template)
}
