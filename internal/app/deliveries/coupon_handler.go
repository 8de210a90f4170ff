package deliveries

import (
	"github.com/dealora/dealora-core/internal/app/middlewares"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/app/pkg"
	"github.com/dealora/dealora-core/internal/app/services"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CouponHandler struct {
	couponService       *services.CouponService
	adminMiddleware     *middlewares.AdminMiddleware
	rateLimitMiddleware *middlewares.RateLimitMiddleware
}

func NewCouponHandler(couponService *services.CouponService, adminMiddleware *middlewares.AdminMiddleware, rateLimitMiddleware *middlewares.RateLimitMiddleware) *CouponHandler {
	return &CouponHandler{
		couponService:       couponService,
		adminMiddleware:     adminMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (h *CouponHandler) RegisterRoutes(router fiber.Router) {
	couponGroup := router.Group("/coupons")
	adminLimit := h.rateLimitMiddleware.LimitByIP(middlewares.AdminAPILimit)

	// Public endpoints
	couponGroup.Get("/", h.GetCoupons)
	couponGroup.Get("/top", h.GetTopCoupons)
	couponGroup.Get("/:id", h.GetCoupon)

	// Redemptions get a stricter window than the rest of the public API
	couponGroup.Post("/:id/use", h.rateLimitMiddleware.LimitByIP(middlewares.RedemptionLimit), h.UseCoupon)

	// Admin endpoints
	couponGroup.Post("/", adminLimit, h.adminMiddleware.RequireAdmin, h.CreateCoupon)
	couponGroup.Put("/:id", adminLimit, h.adminMiddleware.RequireAdmin, h.UpdateCoupon)
	couponGroup.Delete("/:id", adminLimit, h.adminMiddleware.RequireAdmin, h.DeleteCoupon)
}

func (h *CouponHandler) CreateCoupon(c *fiber.Ctx) error {
	var req models.CouponRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	coupon, err := h.couponService.CreateCoupon(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, coupon)
}

func (h *CouponHandler) GetCoupons(c *fiber.Ctx) error {
	coupons, err := h.couponService.GetCoupons()
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, coupons)
}

func (h *CouponHandler) GetTopCoupons(c *fiber.Ctx) error {
	couponType := models.CouponType(c.Query("type", string(models.CouponTypeCoupon)))

	coupons, err := h.couponService.GetTopCoupons(couponType)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, coupons)
}

func (h *CouponHandler) GetCoupon(c *fiber.Ctx) error {
	id := c.Params("id")

	coupon, err := h.couponService.GetCoupon(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, coupon)
}

// UseCoupon is hit when a visitor reveals a code or clicks through to
// the merchant. The redirect must not hang on bookkeeping, so a failed
// counter update is logged and the response still carries the code and
// URL.
func (h *CouponHandler) UseCoupon(c *fiber.Ctx) error {
	id := c.Params("id")

	coupon, err := h.couponService.GetCoupon(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	if err := h.couponService.RecordUse(id); err != nil {
		logrus.Warnf("failed to record use for coupon %s: %v", id, err)
	}

	return pkg.SuccessResponse(c, models.RecordUseResponse{
		CouponCode: coupon.CouponCode,
		CouponURL:  coupon.CouponURL,
	})
}

func (h *CouponHandler) UpdateCoupon(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.CouponRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	coupon, err := h.couponService.UpdateCoupon(id, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, coupon)
}

func (h *CouponHandler) DeleteCoupon(c *fiber.Ctx) error {
	id := c.Params("id")

	coupon, err := h.couponService.DeleteCoupon(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, coupon)
}
