package models

import (
	"time"

	"github.com/google/uuid"
)

// SeoTemplate holds title/description/keywords patterns for one page
// type (e.g. "store", "category"). Patterns may contain {{name}}
// placeholders substituted at render time.
type SeoTemplate struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	PageType            string    `gorm:"uniqueIndex" json:"pageType"`
	TitleTemplate       string    `json:"titleTemplate"`
	DescriptionTemplate string    `json:"descriptionTemplate"`
	KeywordsTemplate    string    `json:"keywordsTemplate"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type SeoTemplateRequest struct {
	PageType            string `json:"pageType" validate:"required,max=100"`
	TitleTemplate       string `json:"titleTemplate" validate:"required,max=500"`
	DescriptionTemplate string `json:"descriptionTemplate" validate:"omitempty,max=2000"`
	KeywordsTemplate    string `json:"keywordsTemplate" validate:"omitempty,max=1000"`
}

type RenderedSeo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}
