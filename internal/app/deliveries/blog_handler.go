package deliveries

import (
	"github.com/dealora/dealora-core/internal/app/middlewares"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/app/pkg"
	"github.com/dealora/dealora-core/internal/app/services"
	"github.com/gofiber/fiber/v2"
)

type BlogHandler struct {
	blogService         *services.BlogService
	adminMiddleware     *middlewares.AdminMiddleware
	rateLimitMiddleware *middlewares.RateLimitMiddleware
}

func NewBlogHandler(blogService *services.BlogService, adminMiddleware *middlewares.AdminMiddleware, rateLimitMiddleware *middlewares.RateLimitMiddleware) *BlogHandler {
	return &BlogHandler{
		blogService:         blogService,
		adminMiddleware:     adminMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (h *BlogHandler) RegisterRoutes(router fiber.Router) {
	blogGroup := router.Group("/blogs")
	adminLimit := h.rateLimitMiddleware.LimitByIP(middlewares.AdminAPILimit)

	// Public endpoints: published posts only
	blogGroup.Get("/", h.GetPublishedPosts)
	blogGroup.Get("/slug/:slug", h.GetPostBySlug)

	// Admin endpoints
	blogGroup.Get("/all", adminLimit, h.adminMiddleware.RequireAdmin, h.GetAllPosts)
	blogGroup.Post("/", adminLimit, h.adminMiddleware.RequireAdmin, h.CreatePost)
	blogGroup.Put("/:id", adminLimit, h.adminMiddleware.RequireAdmin, h.UpdatePost)
	blogGroup.Delete("/:id", adminLimit, h.adminMiddleware.RequireAdmin, h.DeletePost)
}

func (h *BlogHandler) CreatePost(c *fiber.Ctx) error {
	var req models.BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	post, err := h.blogService.CreatePost(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, post)
}

func (h *BlogHandler) GetPublishedPosts(c *fiber.Ctx) error {
	posts, err := h.blogService.GetPosts(true)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, posts)
}

func (h *BlogHandler) GetAllPosts(c *fiber.Ctx) error {
	posts, err := h.blogService.GetPosts(false)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, posts)
}

func (h *BlogHandler) GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	post, err := h.blogService.GetPostBySlug(slug)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, post)
}

func (h *BlogHandler) UpdatePost(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	post, err := h.blogService.UpdatePost(id, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, post)
}

func (h *BlogHandler) DeletePost(c *fiber.Ctx) error {
	id := c.Params("id")

	post, err := h.blogService.DeletePost(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, post)
}
