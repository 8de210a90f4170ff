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

type BlogService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewBlogService(db *gorm.DB, validator *infrastructures.Validator) *BlogService {
	return &BlogService{
		db:        db,
		validator: validator,
	}
}

func (s *BlogService) CreatePost(req *models.BlogPostRequest) (*models.BlogPost, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	post := &models.BlogPost{
		ID: uuid.New(),
	}
	applyBlogRequest(post, req)

	var existing models.BlogPost
	err := s.db.Where("slug = ?", post.Slug).First(&existing).Error
	if err == nil {
		return nil, errors.NewBadRequestError("Blog post slug already exists")
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create blog post")
	}

	return post, nil
}

// GetPosts lists posts newest-first. publishedOnly hides drafts for the
// public side; the admin list passes false.
func (s *BlogService) GetPosts(publishedOnly bool) ([]models.BlogPost, error) {
	query := s.db.Order("created_at DESC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var posts []models.BlogPost
	if err := query.Find(&posts).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get blog posts")
	}
	return posts, nil
}

func (s *BlogService) GetPost(postId string) (*models.BlogPost, error) {
	postUUID, err := uuid.Parse(postId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid blog post ID format")
	}

	var post models.BlogPost
	err = s.db.Where("id = ?", postUUID).First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Blog post not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get blog post")
	}

	return &post, nil
}

func (s *BlogService) GetPostBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.db.Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Blog post not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get blog post")
	}
	return &post, nil
}

func (s *BlogService) UpdatePost(postId string, req *models.BlogPostRequest) (*models.BlogPost, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	post, err := s.GetPost(postId)
	if err != nil {
		return nil, err
	}

	applyBlogRequest(post, req)

	var existing models.BlogPost
	err = s.db.Where("slug = ? AND id != ?", post.Slug, post.ID).First(&existing).Error
	if err == nil {
		return nil, errors.NewBadRequestError("Blog post slug already exists")
	}

	if err := s.db.Save(post).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update blog post")
	}

	return post, nil
}

func (s *BlogService) DeletePost(postId string) (*models.BlogPost, error) {
	post, err := s.GetPost(postId)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(post).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to delete blog post")
	}

	return post, nil
}

func applyBlogRequest(post *models.BlogPost, req *models.BlogPostRequest) {
	post.Title = strings.TrimSpace(req.Title)
	post.Content = req.Content
	post.Image = req.Image
	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		post.Slug = pkg.Slugify(*req.Slug)
	} else {
		post.Slug = pkg.Slugify(post.Title)
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
}
