package deliveries

import (
	"github.com/dealora/dealora-core/internal/app/middlewares"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/app/pkg"
	"github.com/dealora/dealora-core/internal/app/services"
	"github.com/gofiber/fiber/v2"
)

type EventHandler struct {
	eventService        *services.EventService
	adminMiddleware     *middlewares.AdminMiddleware
	rateLimitMiddleware *middlewares.RateLimitMiddleware
}

func NewEventHandler(eventService *services.EventService, adminMiddleware *middlewares.AdminMiddleware, rateLimitMiddleware *middlewares.RateLimitMiddleware) *EventHandler {
	return &EventHandler{
		eventService:        eventService,
		adminMiddleware:     adminMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (h *EventHandler) RegisterRoutes(router fiber.Router) {
	eventGroup := router.Group("/events")
	adminLimit := h.rateLimitMiddleware.LimitByIP(middlewares.AdminAPILimit)

	// Public endpoints
	eventGroup.Get("/", h.GetEvents)
	eventGroup.Get("/:id", h.GetEvent)

	// Admin endpoints
	eventGroup.Post("/", adminLimit, h.adminMiddleware.RequireAdmin, h.CreateEvent)
	eventGroup.Put("/:id", adminLimit, h.adminMiddleware.RequireAdmin, h.UpdateEvent)
	eventGroup.Delete("/:id", adminLimit, h.adminMiddleware.RequireAdmin, h.DeleteEvent)
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	event, err := h.eventService.CreateEvent(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, event)
}

func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	events, err := h.eventService.GetEvents()
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, events)
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	event, err := h.eventService.GetEvent(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, event)
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	event, err := h.eventService.UpdateEvent(id, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, event)
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	event, err := h.eventService.DeleteEvent(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, event)
}
