package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAdminApp(t *testing.T, key string) *fiber.App {
	t.Helper()
	t.Setenv("ADMIN_API_KEY", key)

	app := fiber.New()
	middleware := NewAdminMiddleware()
	app.Post("/admin", middleware.RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireAdminAcceptsValidKey(t *testing.T) {
	app := setupAdminApp(t, "dealora_testkey")

	req := httptest.NewRequest(fiber.MethodPost, "/admin", nil)
	req.Header.Set("X-Admin-Key", "dealora_testkey")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAdminRejectsWrongKey(t *testing.T) {
	app := setupAdminApp(t, "dealora_testkey")

	req := httptest.NewRequest(fiber.MethodPost, "/admin", nil)
	req.Header.Set("X-Admin-Key", "dealora_wrong")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminRejectsMissingHeader(t *testing.T) {
	app := setupAdminApp(t, "dealora_testkey")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminRejectsWhenUnconfigured(t *testing.T) {
	app := setupAdminApp(t, "")

	req := httptest.NewRequest(fiber.MethodPost, "/admin", nil)
	req.Header.Set("X-Admin-Key", "")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
