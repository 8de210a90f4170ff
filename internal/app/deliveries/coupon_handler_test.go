package deliveries

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dealora/dealora-core/internal/app/middlewares"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/app/services"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dealora/dealora-core/internal/infrastructures"
)

type handlerFixture struct {
	app   *fiber.App
	db    *gorm.DB
	store *models.Store
}

func setupHandlerApp(t *testing.T) *handlerFixture {
	t.Helper()
	t.Setenv("ADMIN_API_KEY", "dealora_testkey")

	dsn := fmt.Sprintf("file:handlers_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Coupon{}, &models.Store{}, &models.Category{}))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := services.NewCatalogCache(client)

	validator := infrastructures.NewValidator()
	storeService := services.NewStoreService(db, validator, cache)
	couponService := services.NewCouponService(db, validator, storeService, cache)
	catalogService := services.NewCatalogService(db, storeService, cache)
	adminMiddleware := middlewares.NewAdminMiddleware()
	rateLimitMiddleware := middlewares.NewRateLimitMiddleware(middlewares.NewRedisRateLimiter(client, "dealora"))

	app := fiber.New()
	api := app.Group("/api")
	NewCouponHandler(couponService, adminMiddleware, rateLimitMiddleware).RegisterRoutes(api)
	NewCatalogHandler(catalogService).RegisterRoutes(api)

	store, err := storeService.CreateStore(&models.StoreRequest{
		Name:            "Best Buy",
		StoreNetworkURL: ptr("https://affiliate.example.com/bestbuy"),
	})
	require.NoError(t, err)

	return &handlerFixture{app: app, db: db, store: store}
}

func ptr[T any](v T) *T {
	return &v
}

func (f *handlerFixture) seedCoupon(t *testing.T, title string, couponType models.CouponType, code string) *models.Coupon {
	t.Helper()
	expiration := time.Now().Add(30 * 24 * time.Hour)
	coupon := &models.Coupon{
		ID:             uuid.New(),
		Title:          title,
		CouponType:     couponType,
		Status:         models.CouponStatusActive,
		CouponCode:     code,
		ExpirationDate: &expiration,
		CouponURL:      ptr("https://affiliate.example.com/bestbuy"),
		StoreID:        f.store.ID,
		Discount:       "10% Off",
	}
	require.NoError(t, f.db.Create(coupon).Error)
	return coupon
}

func TestGetCatalogEndpoint(t *testing.T) {
	fixture := setupHandlerApp(t)
	fixture.seedCoupon(t, "10% Off Laptops", models.CouponTypeCoupon, "SAVE10")
	fixture.seedCoupon(t, "Free Shipping Deal", models.CouponTypeDeal, models.NoCode)

	resp, err := fixture.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/catalog?tab=promo", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.WebResponse[models.Pagination[[]models.CatalogItem]]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)

	require.Equal(t, 1, body.Data.TotalItems)
	require.Len(t, body.Data.Items, 1)
	item := body.Data.Items[0]
	assert.Equal(t, "10% Off Laptops", item.Title)
	require.NotNil(t, item.Store)
	assert.Equal(t, "Best Buy", item.Store.Name)
}

func TestGetCatalogEndpointIgnoresMalformedParams(t *testing.T) {
	fixture := setupHandlerApp(t)
	fixture.seedCoupon(t, "10% Off Laptops", models.CouponTypeCoupon, "SAVE10")

	resp, err := fixture.app.Test(httptest.NewRequest(fiber.MethodGet,
		"/api/catalog?tab=bogus&sortBy=bogus&page=abc&perPage=7&verified=notabool", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.WebResponse[models.Pagination[[]models.CatalogItem]]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Data.TotalItems)
	assert.Equal(t, 1, body.Data.Page)
	assert.Equal(t, 10, body.Data.Limit)
}

func TestUseCouponEndpoint(t *testing.T) {
	fixture := setupHandlerApp(t)
	coupon := fixture.seedCoupon(t, "10% Off Laptops", models.CouponTypeCoupon, "SAVE10")

	url := fmt.Sprintf("/api/coupons/%s/use", coupon.ID)
	resp, err := fixture.app.Test(httptest.NewRequest(fiber.MethodPost, url, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.WebResponse[models.RecordUseResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "SAVE10", body.Data.CouponCode)
	require.NotNil(t, body.Data.CouponURL)
	assert.Equal(t, "https://affiliate.example.com/bestbuy", *body.Data.CouponURL)

	var stored models.Coupon
	require.NoError(t, fixture.db.First(&stored, "id = ?", coupon.ID).Error)
	assert.EqualValues(t, 1, stored.Uses)
}

func TestUseCouponEndpointUnknownID(t *testing.T) {
	fixture := setupHandlerApp(t)

	url := fmt.Sprintf("/api/coupons/%s/use", uuid.New())
	resp, err := fixture.app.Test(httptest.NewRequest(fiber.MethodPost, url, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateCouponRequiresAdminKey(t *testing.T) {
	fixture := setupHandlerApp(t)

	resp, err := fixture.app.Test(httptest.NewRequest(fiber.MethodPost, "/api/coupons/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUseCouponEndpointHasRedemptionLimit(t *testing.T) {
	fixture := setupHandlerApp(t)
	coupon := fixture.seedCoupon(t, "10% Off Laptops", models.CouponTypeCoupon, "SAVE10")
	url := fmt.Sprintf("/api/coupons/%s/use", coupon.ID)

	resp, err := fixture.app.Test(httptest.NewRequest(fiber.MethodPost, url, nil))
	require.NoError(t, err)
	assert.Equal(t, "20", resp.Header.Get("X-RateLimit-Limit"))

	var limited bool
	for i := 0; i < 30; i++ {
		resp, err := fixture.app.Test(httptest.NewRequest(fiber.MethodPost, url, nil))
		require.NoError(t, err)
		if resp.StatusCode == fiber.StatusTooManyRequests {
			limited = true
			break
		}
		time.Sleep(time.Millisecond)
	}
	assert.True(t, limited, "redemption endpoint never rate limited")
}

func TestAdminRoutesHaveAdminLimit(t *testing.T) {
	fixture := setupHandlerApp(t)

	req := httptest.NewRequest(fiber.MethodDelete, fmt.Sprintf("/api/coupons/%s", uuid.New()), nil)
	req.Header.Set("X-Admin-Key", "dealora_testkey")

	resp, err := fixture.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "120", resp.Header.Get("X-RateLimit-Limit"))
}
