package models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"_id"`
	Title       string     `json:"title"`
	Slug        string     `gorm:"uniqueIndex" json:"slug"`
	Description *string    `json:"description,omitempty"`
	Image       *string    `json:"image,omitempty"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

type EventRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Slug        *string    `json:"slug,omitempty" validate:"omitempty,max=255"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=10000"`
	Image       *string    `json:"image,omitempty" validate:"omitempty,max=1000"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
}
