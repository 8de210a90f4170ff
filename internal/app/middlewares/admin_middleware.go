package middlewares

import (
	"os"

	"github.com/dealora/dealora-core/internal/app/errors"
	"github.com/dealora/dealora-core/internal/app/pkg"
	"github.com/dealora/dealora-core/pkg/adminkey"
	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware guards the back-office routes with a single
// config-sourced key.
type AdminMiddleware struct {
	key string
}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{
		key: os.Getenv("ADMIN_API_KEY"),
	}
}

func (m *AdminMiddleware) RequireAdmin(c *fiber.Ctx) error {
	if !adminkey.Verify(c.Get("X-Admin-Key"), m.key) {
		return pkg.ErrorResponse(c, errors.NewUnauthorizedError("Invalid admin key"))
	}
	return c.Next()
}
