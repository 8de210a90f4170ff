package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dealora/dealora-core/internal/app/errors"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/app/pkg"
	"github.com/dealora/dealora-core/internal/infrastructures"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StoreService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
	cache     *CatalogCache
}

func NewStoreService(db *gorm.DB, validator *infrastructures.Validator, cache *CatalogCache) *StoreService {
	return &StoreService{
		db:        db,
		validator: validator,
		cache:     cache,
	}
}

func (s *StoreService) CreateStore(req *models.StoreRequest) (*models.Store, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	store := &models.Store{
		ID:       uuid.New(),
		IsActive: true,
	}
	if err := s.applyRequest(store, req); err != nil {
		return nil, err
	}

	var existing models.Store
	err := s.db.Where("slug = ?", store.Slug).First(&existing).Error
	if err == nil {
		return nil, errors.NewBadRequestError("Store slug already exists")
	}

	if err := s.db.Create(store).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create store")
	}

	s.cache.Invalidate(context.Background())
	return store, nil
}

func (s *StoreService) GetStores() ([]models.Store, error) {
	var stores []models.Store
	if err := s.db.Order("created_at DESC").Find(&stores).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get stores")
	}
	return stores, nil
}

func (s *StoreService) GetStore(storeId string) (*models.Store, error) {
	storeUUID, err := uuid.Parse(storeId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid store ID format")
	}

	var store models.Store
	err = s.db.Where("id = ?", storeUUID).First(&store).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Store not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get store")
	}

	return &store, nil
}

func (s *StoreService) GetStoreBySlug(slug string) (*models.Store, error) {
	var store models.Store
	err := s.db.Where("slug = ?", slug).First(&store).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Store not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get store")
	}
	return &store, nil
}

// GetStoresByIDs fetches the given stores in one query. Missing ids are
// simply absent from the result; the caller decides what that means.
func (s *StoreService) GetStoresByIDs(ids []uuid.UUID) (map[uuid.UUID]models.Store, error) {
	result := make(map[uuid.UUID]models.Store, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var stores []models.Store
	if err := s.db.Where("id IN ?", ids).Find(&stores).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get stores")
	}

	for _, store := range stores {
		result[store.ID] = store
	}
	return result, nil
}

func (s *StoreService) UpdateStore(storeId string, req *models.StoreRequest) (*models.Store, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	store, err := s.GetStore(storeId)
	if err != nil {
		return nil, err
	}

	if err := s.applyRequest(store, req); err != nil {
		return nil, err
	}

	var existing models.Store
	err = s.db.Where("slug = ? AND id != ?", store.Slug, store.ID).First(&existing).Error
	if err == nil {
		return nil, errors.NewBadRequestError("Store slug already exists")
	}

	if err := s.db.Save(store).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update store")
	}

	s.cache.Invalidate(context.Background())
	return store, nil
}

// DeleteStore removes the store outright. Coupons referencing it are
// left in place and resolve to a nil store in the catalog.
func (s *StoreService) DeleteStore(storeId string) (*models.Store, error) {
	store, err := s.GetStore(storeId)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(store).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to delete store")
	}

	s.cache.Invalidate(context.Background())
	return store, nil
}

// Projection builds the read-only view of a store attached to catalog
// items.
func (s *StoreService) Projection(store *models.Store) *models.StoreProjection {
	projection := &models.StoreProjection{
		ID:         store.ID,
		Name:       store.Name,
		Image:      store.Image,
		Slug:       store.Slug,
		Categories: store.CategoryIDs(),
		StoreURL:   store.AffiliateURL(),
	}
	if len(store.Seo) > 0 {
		var seo map[string]string
		if err := json.Unmarshal(store.Seo, &seo); err == nil {
			projection.Seo = seo
		}
	}
	return projection
}

func (s *StoreService) applyRequest(store *models.Store, req *models.StoreRequest) error {
	store.Name = strings.TrimSpace(req.Name)
	store.Image = strings.TrimSpace(req.Image)
	store.Description = req.Description
	store.Network = req.Network
	store.StoreNetworkURL = req.StoreNetworkURL
	store.DirectURL = req.DirectURL

	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		store.Slug = pkg.Slugify(*req.Slug)
	} else {
		store.Slug = pkg.Slugify(store.Name)
	}
	if store.Slug == "" {
		return errors.NewValidationError(map[string]string{"slug": "Could not derive a slug from the store name"})
	}

	if req.IsPopular != nil {
		store.IsPopular = *req.IsPopular
	}
	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}

	categories, err := json.Marshal(req.Categories)
	if err != nil {
		return errors.NewInternalServerError(err, "Failed to encode categories")
	}
	store.Categories = datatypes.JSON(categories)

	if req.Seo != nil {
		seo, err := json.Marshal(req.Seo)
		if err != nil {
			return errors.NewInternalServerError(err, "Failed to encode seo fields")
		}
		store.Seo = datatypes.JSON(seo)
	}

	return nil
}
