package services

import (
	"sync"
	"testing"
	"time"

	goerrors "errors"

	"github.com/dealora/dealora-core/internal/app/errors"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/infrastructures"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCouponService(t *testing.T) (*CouponService, *StoreService) {
	t.Helper()
	db := setupTestDB(t, "coupons")
	validator := infrastructures.NewValidator()
	cache := setupTestCache(t)
	storeService := NewStoreService(db, validator, cache)
	return NewCouponService(db, validator, storeService, cache), storeService
}

func validCouponRequest(storeID string) *models.CouponRequest {
	expiration := time.Now().Add(30 * 24 * time.Hour)
	return &models.CouponRequest{
		Title:          "20% Off Everything",
		CouponType:     models.CouponTypeCoupon,
		Status:         models.CouponStatusActive,
		CouponCode:     "SAVE20",
		ExpirationDate: &expiration,
		StoreID:        storeID,
	}
}

func asAppError(t *testing.T, err error) *errors.AppError {
	t.Helper()
	var appErr *errors.AppError
	require.True(t, goerrors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr
}

func TestCreateCoupon_RequiresCodeForCouponType(t *testing.T) {
	service, _ := setupCouponService(t)

	req := validCouponRequest(uuid.NewString())
	req.CouponCode = ""

	_, err := service.CreateCoupon(req)
	require.Error(t, err)
	appErr := asAppError(t, err)
	assert.Contains(t, appErr.Fields, "couponCode")
}

func TestCreateCoupon_WhitespaceCodeFailsForCouponType(t *testing.T) {
	service, _ := setupCouponService(t)

	req := validCouponRequest(uuid.NewString())
	req.CouponCode = "   "

	_, err := service.CreateCoupon(req)
	require.Error(t, err)
	appErr := asAppError(t, err)
	assert.Contains(t, appErr.Fields, "couponCode")
}

func TestCreateCoupon_DealAlwaysStoresSentinelCode(t *testing.T) {
	service, _ := setupCouponService(t)

	// Empty code is fine for a deal
	req := validCouponRequest(uuid.NewString())
	req.CouponType = models.CouponTypeDeal
	req.CouponCode = ""

	coupon, err := service.CreateCoupon(req)
	require.NoError(t, err)
	assert.Equal(t, models.NoCode, coupon.CouponCode)

	// A submitted code is discarded for a deal
	req = validCouponRequest(uuid.NewString())
	req.CouponType = models.CouponTypeDeal
	req.CouponCode = "SHOULD-NOT-SURVIVE"

	coupon, err = service.CreateCoupon(req)
	require.NoError(t, err)
	assert.Equal(t, models.NoCode, coupon.CouponCode)
}

func TestCreateCoupon_Defaults(t *testing.T) {
	service, _ := setupCouponService(t)

	coupon, err := service.CreateCoupon(validCouponRequest(uuid.NewString()))
	require.NoError(t, err)

	assert.False(t, coupon.IsTopOne)
	assert.False(t, coupon.Verified)
	assert.EqualValues(t, 0, coupon.Uses)
	assert.NotEqual(t, uuid.Nil, coupon.ID)
}

func TestCreateCoupon_DerivesDiscountFromTitle(t *testing.T) {
	service, _ := setupCouponService(t)

	req := validCouponRequest(uuid.NewString())
	req.Title = "Save 30% on shoes"

	coupon, err := service.CreateCoupon(req)
	require.NoError(t, err)
	assert.Equal(t, "30%", coupon.Discount)

	// An explicit label wins over derivation
	label := "Half price"
	req = validCouponRequest(uuid.NewString())
	req.Title = "Save 30% on shoes"
	req.Discount = &label

	coupon, err = service.CreateCoupon(req)
	require.NoError(t, err)
	assert.Equal(t, "Half price", coupon.Discount)
}

func TestCreateCoupon_DerivesURLFromStore(t *testing.T) {
	service, storeService := setupCouponService(t)

	networkURL := "https://network.example.com/acme"
	store, err := storeService.CreateStore(&models.StoreRequest{
		Name:            "Acme",
		StoreNetworkURL: &networkURL,
	})
	require.NoError(t, err)

	coupon, err := service.CreateCoupon(validCouponRequest(store.ID.String()))
	require.NoError(t, err)
	require.NotNil(t, coupon.CouponURL)
	assert.Equal(t, networkURL, *coupon.CouponURL)
}

func TestGetCoupons_NewestFirst(t *testing.T) {
	service, _ := setupCouponService(t)

	older, err := service.CreateCoupon(validCouponRequest(uuid.NewString()))
	require.NoError(t, err)
	newer, err := service.CreateCoupon(validCouponRequest(uuid.NewString()))
	require.NoError(t, err)

	base := time.Now()
	require.NoError(t, service.db.Model(older).UpdateColumn("created_at", base.Add(-time.Hour)).Error)
	require.NoError(t, service.db.Model(newer).UpdateColumn("created_at", base).Error)

	coupons, err := service.GetCoupons()
	require.NoError(t, err)
	require.Len(t, coupons, 2)
	assert.Equal(t, newer.ID, coupons[0].ID)
	assert.Equal(t, older.ID, coupons[1].ID)
}

func TestGetTopCoupons_DisjointByType(t *testing.T) {
	service, _ := setupCouponService(t)
	top := true

	topCoupon := validCouponRequest(uuid.NewString())
	topCoupon.IsTopOne = &top
	created, err := service.CreateCoupon(topCoupon)
	require.NoError(t, err)

	topDeal := validCouponRequest(uuid.NewString())
	topDeal.CouponType = models.CouponTypeDeal
	topDeal.IsTopOne = &top
	_, err = service.CreateCoupon(topDeal)
	require.NoError(t, err)

	// Not featured, should never show up
	_, err = service.CreateCoupon(validCouponRequest(uuid.NewString()))
	require.NoError(t, err)

	coupons, err := service.GetTopCoupons(models.CouponTypeCoupon)
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, created.ID, coupons[0].ID)

	deals, err := service.GetTopCoupons(models.CouponTypeDeal)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, models.CouponTypeDeal, deals[0].CouponType)
}

func TestUpdateCoupon_ReplacesRecordAndKeepsUses(t *testing.T) {
	service, _ := setupCouponService(t)

	coupon, err := service.CreateCoupon(validCouponRequest(uuid.NewString()))
	require.NoError(t, err)

	require.NoError(t, service.RecordUse(coupon.ID.String()))
	require.NoError(t, service.RecordUse(coupon.ID.String()))

	req := validCouponRequest(coupon.StoreID.String())
	req.Title = "Now 25% Off"
	updated, err := service.UpdateCoupon(coupon.ID.String(), req)
	require.NoError(t, err)

	assert.Equal(t, coupon.ID, updated.ID)
	assert.Equal(t, "Now 25% Off", updated.Title)
	assert.EqualValues(t, 2, updated.Uses)
}

func TestUpdateCoupon_NotFound(t *testing.T) {
	service, _ := setupCouponService(t)

	_, err := service.UpdateCoupon(uuid.NewString(), validCouponRequest(uuid.NewString()))
	require.Error(t, err)
	assert.Equal(t, 404, asAppError(t, err).StatusCode)
}

func TestDeleteCoupon_HardDelete(t *testing.T) {
	service, _ := setupCouponService(t)

	coupon, err := service.CreateCoupon(validCouponRequest(uuid.NewString()))
	require.NoError(t, err)

	deleted, err := service.DeleteCoupon(coupon.ID.String())
	require.NoError(t, err)
	assert.Equal(t, coupon.ID, deleted.ID)

	_, err = service.GetCoupon(coupon.ID.String())
	require.Error(t, err)
	assert.Equal(t, 404, asAppError(t, err).StatusCode)
}

func TestRecordUse_CountsEveryCall(t *testing.T) {
	service, _ := setupCouponService(t)

	coupon, err := service.CreateCoupon(validCouponRequest(uuid.NewString()))
	require.NoError(t, err)

	const n = 7
	for i := 0; i < n; i++ {
		require.NoError(t, service.RecordUse(coupon.ID.String()))
	}

	stored, err := service.GetCoupon(coupon.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, n, stored.Uses)
}

func TestRecordUse_ConcurrentCallsAllCount(t *testing.T) {
	service, _ := setupCouponService(t)

	coupon, err := service.CreateCoupon(validCouponRequest(uuid.NewString()))
	require.NoError(t, err)

	const n = 20
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- service.RecordUse(coupon.ID.String())
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := service.GetCoupon(coupon.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, n, stored.Uses)
}

func TestRecordUse_NotFound(t *testing.T) {
	service, _ := setupCouponService(t)

	err := service.RecordUse(uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, 404, asAppError(t, err).StatusCode)
}
