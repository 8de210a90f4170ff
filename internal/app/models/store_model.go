package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Store struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"_id"`
	Name            string         `json:"name"`
	Slug            string         `gorm:"uniqueIndex" json:"slug"`
	Image           string         `json:"image"`
	Description     *string        `json:"description,omitempty"`
	Categories      datatypes.JSON `json:"categories"`
	Network         *string        `json:"network,omitempty"`
	StoreNetworkURL *string        `json:"storeNetworkUrl,omitempty"`
	DirectURL       *string        `json:"directUrl,omitempty"`
	IsPopular       bool           `json:"isPopular"`
	IsActive        bool           `json:"isActive"`
	Seo             datatypes.JSON `json:"seo,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// CategoryIDs decodes the stored category id set. A store with a
// malformed or empty column is treated as belonging to no category.
func (s *Store) CategoryIDs() []string {
	if len(s.Categories) == 0 {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(s.Categories, &ids); err != nil {
		return nil
	}
	return ids
}

// AffiliateURL returns the URL coupons redirect to: the network URL when
// the store belongs to an affiliate network, the direct URL otherwise.
func (s *Store) AffiliateURL() *string {
	if s.StoreNetworkURL != nil && *s.StoreNetworkURL != "" {
		return s.StoreNetworkURL
	}
	if s.DirectURL != nil && *s.DirectURL != "" {
		return s.DirectURL
	}
	return nil
}

// StoreProjection is the read-only slice of store fields attached to
// catalog items.
type StoreProjection struct {
	ID         uuid.UUID         `json:"_id"`
	Name       string            `json:"name"`
	Image      string            `json:"image"`
	Slug       string            `json:"slug"`
	Categories []string          `json:"categories"`
	StoreURL   *string           `json:"storeUrl,omitempty"`
	Seo        map[string]string `json:"seo,omitempty"`
}

type StoreRequest struct {
	Name            string            `json:"name" validate:"required,max=255"`
	Slug            *string           `json:"slug,omitempty" validate:"omitempty,max=255"`
	Image           string            `json:"image" validate:"omitempty,max=1000"`
	Description     *string           `json:"description,omitempty" validate:"omitempty,max=10000"`
	Categories      []string          `json:"categories,omitempty" validate:"omitempty,dive,uuid"`
	Network         *string           `json:"network,omitempty" validate:"omitempty,max=255"`
	StoreNetworkURL *string           `json:"storeNetworkUrl,omitempty" validate:"omitempty,url"`
	DirectURL       *string           `json:"directUrl,omitempty" validate:"omitempty,url"`
	IsPopular       *bool             `json:"isPopular,omitempty"`
	IsActive        *bool             `json:"isActive,omitempty"`
	Seo             map[string]string `json:"seo,omitempty"`
}
