package services

import (
	"encoding/json"
	"strings"

	"github.com/dealora/dealora-core/internal/app/errors"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/infrastructures"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SettingsService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewSettingsService(db *gorm.DB, validator *infrastructures.Validator) *SettingsService {
	return &SettingsService{
		db:        db,
		validator: validator,
	}
}

// GetSettings returns the singleton settings row, seeding defaults on
// first access.
func (s *SettingsService) GetSettings() (*models.Settings, error) {
	var settings models.Settings
	err := s.db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, errors.NewInternalServerError(err, "Failed to get settings")
	}

	settings = models.Settings{
		ID:       uuid.New(),
		SiteName: "Dealora",
	}
	if err := s.db.Create(&settings).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to seed settings")
	}
	return &settings, nil
}

func (s *SettingsService) UpdateSettings(req *models.SettingsRequest) (*models.Settings, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	settings.SiteName = strings.TrimSpace(req.SiteName)
	settings.LogoURL = req.LogoURL
	settings.FooterText = req.FooterText

	if req.SocialLinks != nil {
		links, err := json.Marshal(req.SocialLinks)
		if err != nil {
			return nil, errors.NewInternalServerError(err, "Failed to encode social links")
		}
		settings.SocialLinks = datatypes.JSON(links)
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update settings")
	}

	return settings, nil
}
