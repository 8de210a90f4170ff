package services

import (
	"strings"

	"github.com/dealora/dealora-core/internal/app/errors"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/app/pkg"
	"github.com/dealora/dealora-core/internal/infrastructures"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewEventService(db *gorm.DB, validator *infrastructures.Validator) *EventService {
	return &EventService{
		db:        db,
		validator: validator,
	}
}

func (s *EventService) CreateEvent(req *models.EventRequest) (*models.Event, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if req.StartsAt != nil && req.EndsAt != nil && req.EndsAt.Before(*req.StartsAt) {
		return nil, errors.NewValidationError(map[string]string{"endsAt": "Must not be before the start"})
	}

	event := &models.Event{
		ID: uuid.New(),
	}
	applyEventRequest(event, req)

	var existing models.Event
	err := s.db.Where("slug = ?", event.Slug).First(&existing).Error
	if err == nil {
		return nil, errors.NewBadRequestError("Event slug already exists")
	}

	if err := s.db.Create(event).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create event")
	}

	return event, nil
}

func (s *EventService) GetEvents() ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get events")
	}
	return events, nil
}

func (s *EventService) GetEvent(eventId string) (*models.Event, error) {
	eventUUID, err := uuid.Parse(eventId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid event ID format")
	}

	var event models.Event
	err = s.db.Where("id = ?", eventUUID).First(&event).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Event not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get event")
	}

	return &event, nil
}

func (s *EventService) UpdateEvent(eventId string, req *models.EventRequest) (*models.Event, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if req.StartsAt != nil && req.EndsAt != nil && req.EndsAt.Before(*req.StartsAt) {
		return nil, errors.NewValidationError(map[string]string{"endsAt": "Must not be before the start"})
	}

	event, err := s.GetEvent(eventId)
	if err != nil {
		return nil, err
	}

	applyEventRequest(event, req)

	if err := s.db.Save(event).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update event")
	}

	return event, nil
}

func (s *EventService) DeleteEvent(eventId string) (*models.Event, error) {
	event, err := s.GetEvent(eventId)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(event).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to delete event")
	}

	return event, nil
}

func applyEventRequest(event *models.Event, req *models.EventRequest) {
	event.Title = strings.TrimSpace(req.Title)
	event.Description = req.Description
	event.Image = req.Image
	event.StartsAt = req.StartsAt
	event.EndsAt = req.EndsAt
	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		event.Slug = pkg.Slugify(*req.Slug)
	} else {
		event.Slug = pkg.Slugify(event.Title)
	}
}
