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

type CategoryService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewCategoryService(db *gorm.DB, validator *infrastructures.Validator) *CategoryService {
	return &CategoryService{
		db:        db,
		validator: validator,
	}
}

func (s *CategoryService) CreateCategory(req *models.CategoryRequest) (*models.Category, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	category := &models.Category{
		ID: uuid.New(),
	}
	applyCategoryRequest(category, req)

	var existing models.Category
	err := s.db.Where("slug = ?", category.Slug).First(&existing).Error
	if err == nil {
		return nil, errors.NewBadRequestError("Category slug already exists")
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create category")
	}

	return category, nil
}

func (s *CategoryService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get categories")
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(categoryId string) (*models.Category, error) {
	categoryUUID, err := uuid.Parse(categoryId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid category ID format")
	}

	var category models.Category
	err = s.db.Where("id = ?", categoryUUID).First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Category not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get category")
	}

	return &category, nil
}

func (s *CategoryService) UpdateCategory(categoryId string, req *models.CategoryRequest) (*models.Category, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	category, err := s.GetCategory(categoryId)
	if err != nil {
		return nil, err
	}

	applyCategoryRequest(category, req)

	if err := s.db.Save(category).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update category")
	}

	return category, nil
}

// DeleteCategory does not cascade: stores keep the dangling id in their
// category set and simply stop matching that filter dimension.
func (s *CategoryService) DeleteCategory(categoryId string) (*models.Category, error) {
	category, err := s.GetCategory(categoryId)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(category).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to delete category")
	}

	return category, nil
}

func applyCategoryRequest(category *models.Category, req *models.CategoryRequest) {
	category.Name = strings.TrimSpace(req.Name)
	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		category.Slug = pkg.Slugify(*req.Slug)
	} else {
		category.Slug = pkg.Slugify(category.Name)
	}
}
