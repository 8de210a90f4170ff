package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Settings is a single-row table of site-wide configuration.
type Settings struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"_id"`
	SiteName    string         `json:"siteName"`
	LogoURL     *string        `json:"logoUrl,omitempty"`
	FooterText  *string        `json:"footerText,omitempty"`
	SocialLinks datatypes.JSON `json:"socialLinks,omitempty"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

type SettingsRequest struct {
	SiteName    string            `json:"siteName" validate:"required,max=255"`
	LogoURL     *string           `json:"logoUrl,omitempty" validate:"omitempty,url"`
	FooterText  *string           `json:"footerText,omitempty" validate:"omitempty,max=2000"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
}
