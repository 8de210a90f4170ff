package models

import (
	"time"

	"github.com/google/uuid"
)

type CouponType string

const (
	CouponTypeCoupon CouponType = "coupon"
	CouponTypeDeal   CouponType = "deal"
)

type CouponStatus string

const (
	CouponStatusActive  CouponStatus = "active"
	CouponStatusExpired CouponStatus = "expired"
)

// NoCode is the code stored for deals, which carry no redemption code.
const NoCode = "NO_CODE"

type Coupon struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"_id"`
	Title          string       `json:"title"`
	Description    *string      `json:"description,omitempty"`
	CouponType     CouponType   `gorm:"index" json:"couponType"`
	Status         CouponStatus `json:"status"`
	CouponCode     string       `json:"couponCode"`
	ExpirationDate *time.Time   `json:"expirationDate,omitempty"`
	CouponURL      *string      `json:"couponUrl,omitempty"`
	StoreID        uuid.UUID    `gorm:"type:uuid;index" json:"storeId"`
	StoreName      *string      `json:"storeName,omitempty"`
	IsTopOne       bool         `json:"isTopOne"`
	Discount       string       `json:"discount"`
	Uses           int64        `json:"uses"`
	Verified       bool         `json:"verified"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

// CouponRequest is the payload for both create and update: an update
// replaces the whole record, so the two share one contract.
type CouponRequest struct {
	Title          string       `json:"title" validate:"required,max=255"`
	Description    *string      `json:"description,omitempty" validate:"omitempty,max=10000"`
	CouponType     CouponType   `json:"couponType" validate:"required,oneof=coupon deal"`
	Status         CouponStatus `json:"status" validate:"required,oneof=active expired"`
	CouponCode     string       `json:"couponCode" validate:"required_if=CouponType coupon,max=100"`
	ExpirationDate *time.Time   `json:"expirationDate" validate:"required"`
	CouponURL      *string      `json:"couponUrl,omitempty" validate:"omitempty,url"`
	StoreID        string       `json:"storeId" validate:"required,uuid"`
	StoreName      *string      `json:"storeName,omitempty" validate:"omitempty,max=255"`
	IsTopOne       *bool        `json:"isTopOne,omitempty"`
	Discount       *string      `json:"discount,omitempty" validate:"omitempty,max=100"`
	Verified       *bool        `json:"verified,omitempty"`
}

// CatalogItem is a coupon joined with its store's public projection.
// Store is nil when the referenced store was deleted; the coupon itself
// is always kept.
type CatalogItem struct {
	Coupon
	Store *StoreProjection `json:"store"`
	// StoreDisplayName carries the resolved name so clients never
	// re-derive it; see DisplayStoreName.
	StoreDisplayName string `json:"storeDisplayName"`
}

// DisplayStoreName resolves the name shown next to a coupon: the live
// store name wins, the denormalized override is a fallback, and a coupon
// orphaned by a store deletion renders as "Unknown Store".
func (i *CatalogItem) DisplayStoreName() string {
	if i.Store != nil && i.Store.Name != "" {
		return i.Store.Name
	}
	if i.StoreName != nil && *i.StoreName != "" {
		return *i.StoreName
	}
	return "Unknown Store"
}

type RecordUseResponse struct {
	CouponCode string  `json:"couponCode"`
	CouponURL  *string `json:"couponUrl,omitempty"`
}
