package services

import (
	"context"
	"strings"

	"github.com/dealora/dealora-core/internal/app/errors"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/app/pkg"
	"github.com/dealora/dealora-core/internal/infrastructures"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CouponService is the sole writer of coupon state.
type CouponService struct {
	db           *gorm.DB
	validator    *infrastructures.Validator
	storeService *StoreService
	cache        *CatalogCache
}

func NewCouponService(db *gorm.DB, validator *infrastructures.Validator, storeService *StoreService, cache *CatalogCache) *CouponService {
	return &CouponService{
		db:           db,
		validator:    validator,
		storeService: storeService,
		cache:        cache,
	}
}

func (s *CouponService) CreateCoupon(req *models.CouponRequest) (*models.Coupon, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	coupon := &models.Coupon{
		ID: uuid.New(),
	}
	if err := s.applyRequest(coupon, req); err != nil {
		return nil, err
	}

	if err := s.db.Create(coupon).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create coupon")
	}

	s.cache.Invalidate(context.Background())
	return coupon, nil
}

func (s *CouponService) GetCoupons() ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := s.db.Order("created_at DESC").Find(&coupons).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get coupons")
	}
	return coupons, nil
}

func (s *CouponService) GetCoupon(couponId string) (*models.Coupon, error) {
	couponUUID, err := uuid.Parse(couponId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid coupon ID format")
	}

	var coupon models.Coupon
	err = s.db.Where("id = ?", couponUUID).First(&coupon).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Coupon not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get coupon")
	}

	return &coupon, nil
}

// GetTopCoupons returns the featured subset for one type. Top coupons
// and top deals are disjoint: the flag only means something combined
// with the type.
func (s *CouponService) GetTopCoupons(couponType models.CouponType) ([]models.Coupon, error) {
	if couponType != models.CouponTypeCoupon && couponType != models.CouponTypeDeal {
		return nil, errors.NewBadRequestError("Invalid coupon type")
	}

	var coupons []models.Coupon
	err := s.db.
		Where("coupon_type = ? AND is_top_one = ?", couponType, true).
		Order("created_at DESC").
		Find(&coupons).Error
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get top coupons")
	}
	return coupons, nil
}

// UpdateCoupon replaces the editable fields wholesale, re-running the
// same sanitation as create. ID, creation time and the uses counter
// survive the replace.
func (s *CouponService) UpdateCoupon(couponId string, req *models.CouponRequest) (*models.Coupon, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	coupon, err := s.GetCoupon(couponId)
	if err != nil {
		return nil, err
	}

	if err := s.applyRequest(coupon, req); err != nil {
		return nil, err
	}

	if err := s.db.Save(coupon).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update coupon")
	}

	s.cache.Invalidate(context.Background())
	return coupon, nil
}

// DeleteCoupon hard-deletes and returns the removed record. There is no
// tombstone: a deleted coupon is gone.
func (s *CouponService) DeleteCoupon(couponId string) (*models.Coupon, error) {
	coupon, err := s.GetCoupon(couponId)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(coupon).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to delete coupon")
	}

	s.cache.Invalidate(context.Background())
	return coupon, nil
}

// RecordUse increments the uses counter by one. The add happens inside
// the database so concurrent redemptions are never lost to a
// read-modify-write race.
func (s *CouponService) RecordUse(couponId string) error {
	couponUUID, err := uuid.Parse(couponId)
	if err != nil {
		return errors.NewBadRequestError("Invalid coupon ID format")
	}

	result := s.db.Model(&models.Coupon{}).
		Where("id = ?", couponUUID).
		UpdateColumn("uses", gorm.Expr("uses + ?", 1))
	if result.Error != nil {
		return errors.NewInternalServerError(result.Error, "Failed to record coupon use")
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Coupon not found")
	}

	return nil
}

func (s *CouponService) applyRequest(coupon *models.Coupon, req *models.CouponRequest) error {
	storeUUID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return errors.NewValidationError(map[string]string{"storeId": "Must be a valid ID"})
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return errors.NewValidationError(map[string]string{"title": "This field is required"})
	}

	code := strings.TrimSpace(req.CouponCode)
	switch req.CouponType {
	case models.CouponTypeCoupon:
		if code == "" {
			return errors.NewValidationError(map[string]string{"couponCode": "A redemption code is required for coupons"})
		}
	case models.CouponTypeDeal:
		// Deals never carry a code, whatever the form submitted.
		code = models.NoCode
	}

	coupon.Title = title
	coupon.Description = req.Description
	coupon.CouponType = req.CouponType
	coupon.Status = req.Status
	coupon.CouponCode = code
	coupon.ExpirationDate = req.ExpirationDate
	coupon.StoreID = storeUUID
	coupon.StoreName = req.StoreName

	coupon.Discount = ""
	if req.Discount != nil {
		coupon.Discount = strings.TrimSpace(*req.Discount)
	}
	if coupon.Discount == "" {
		coupon.Discount = pkg.DiscountFromTitle(title)
	}

	coupon.CouponURL = req.CouponURL
	if coupon.CouponURL == nil {
		// Fall back to the owning store's redirect URL. A dangling
		// store reference just leaves the URL unset.
		if stores, err := s.storeService.GetStoresByIDs([]uuid.UUID{storeUUID}); err == nil {
			if store, ok := stores[storeUUID]; ok {
				coupon.CouponURL = store.AffiliateURL()
			}
		}
	}

	coupon.IsTopOne = false
	if req.IsTopOne != nil {
		coupon.IsTopOne = *req.IsTopOne
	}
	coupon.Verified = false
	if req.Verified != nil {
		coupon.Verified = *req.Verified
	}

	return nil
}
