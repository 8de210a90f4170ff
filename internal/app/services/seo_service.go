package services

import (
	"regexp"
	"strings"

	"github.com/dealora/dealora-core/internal/app/errors"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/infrastructures"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// RenderTemplate substitutes every {{name}} placeholder with its value.
// Placeholders without a value collapse to an empty string.
func RenderTemplate(template string, values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		return values[name]
	})
}

type SeoService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewSeoService(db *gorm.DB, validator *infrastructures.Validator) *SeoService {
	return &SeoService{
		db:        db,
		validator: validator,
	}
}

func (s *SeoService) CreateTemplate(req *models.SeoTemplateRequest) (*models.SeoTemplate, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	pageType := strings.TrimSpace(req.PageType)

	var existing models.SeoTemplate
	err := s.db.Where("page_type = ?", pageType).First(&existing).Error
	if err == nil {
		return nil, errors.NewBadRequestError("A template for this page type already exists")
	}

	template := &models.SeoTemplate{
		ID:                  uuid.New(),
		PageType:            pageType,
		TitleTemplate:       req.TitleTemplate,
		DescriptionTemplate: req.DescriptionTemplate,
		KeywordsTemplate:    req.KeywordsTemplate,
	}

	if err := s.db.Create(template).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create seo template")
	}

	return template, nil
}

func (s *SeoService) GetTemplates() ([]models.SeoTemplate, error) {
	var templates []models.SeoTemplate
	if err := s.db.Order("page_type ASC").Find(&templates).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get seo templates")
	}
	return templates, nil
}

func (s *SeoService) GetTemplate(pageType string) (*models.SeoTemplate, error) {
	var template models.SeoTemplate
	err := s.db.Where("page_type = ?", pageType).First(&template).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Seo template not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get seo template")
	}
	return &template, nil
}

func (s *SeoService) UpdateTemplate(pageType string, req *models.SeoTemplateRequest) (*models.SeoTemplate, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	template, err := s.GetTemplate(pageType)
	if err != nil {
		return nil, err
	}

	template.PageType = strings.TrimSpace(req.PageType)
	template.TitleTemplate = req.TitleTemplate
	template.DescriptionTemplate = req.DescriptionTemplate
	template.KeywordsTemplate = req.KeywordsTemplate

	if err := s.db.Save(template).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update seo template")
	}

	return template, nil
}

func (s *SeoService) DeleteTemplate(pageType string) (*models.SeoTemplate, error) {
	template, err := s.GetTemplate(pageType)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(template).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to delete seo template")
	}

	return template, nil
}

// Render resolves the template for a page type against the given
// placeholder values.
func (s *SeoService) Render(pageType string, values map[string]string) (*models.RenderedSeo, error) {
	template, err := s.GetTemplate(pageType)
	if err != nil {
		return nil, err
	}

	return &models.RenderedSeo{
		Title:       RenderTemplate(template.TitleTemplate, values),
		Description: RenderTemplate(template.DescriptionTemplate, values),
		Keywords:    RenderTemplate(template.KeywordsTemplate, values),
	}, nil
}
