package models

import (
	"time"

	"github.com/google/uuid"
)

type BlogPost struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Title     string    `json:"title"`
	Slug      string    `gorm:"uniqueIndex" json:"slug"`
	Content   string    `json:"content"`
	Image     *string   `json:"image,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type BlogPostRequest struct {
	Title     string  `json:"title" validate:"required,max=255"`
	Slug      *string `json:"slug,omitempty" validate:"omitempty,max=255"`
	Content   string  `json:"content" validate:"required"`
	Image     *string `json:"image,omitempty" validate:"omitempty,max=1000"`
	Published *bool   `json:"published,omitempty"`
}
