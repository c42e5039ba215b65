package services

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/almamun2b/portfolio-api/pkg/internal/apperror"
	"github.com/almamun2b/portfolio-api/pkg/internal/models"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// categorySlug derives the slug straight from the display name. Unlike post
// slugs there is no punctuation stripping here; names are plain words.
func categorySlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func (s *CategoryService) New(name string) (models.Category, error) {
	var category models.Category
	if len(strings.TrimSpace(name)) == 0 {
		return category, apperror.Validation("name is required")
	}

	generated := categorySlug(name)

	var holder models.Category
	if err := s.db.
		Where("name = ? OR slug = ?", name, generated).
		First(&holder).Error; err == nil {
		return category, apperror.Conflict("category already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return category, err
	}

	category = models.Category{Name: name, Slug: generated}
	if err := s.db.Create(&category).Error; err != nil {
		return category, err
	}

	return category, nil
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("name ASC").Find(&categories).Error

	return categories, err
}

// Get resolves a numeric id or a slug.
func (s *CategoryService) Get(idOrSlug string) (models.Category, error) {
	tx := s.db
	if id, err := strconv.Atoi(idOrSlug); err == nil {
		tx = tx.Where("id = ?", id)
	} else {
		tx = tx.Where("slug = ?", idOrSlug)
	}

	var category models.Category
	if err := tx.First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return category, apperror.NotFound("category")
		}
		return category, err
	}

	return category, nil
}

func (s *CategoryService) Edit(id uint, name string) (models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return category, apperror.NotFound("category")
		}
		return category, err
	}

	if len(strings.TrimSpace(name)) == 0 {
		return category, apperror.Validation("name is required")
	}

	generated := categorySlug(name)

	var holder models.Category
	if err := s.db.
		Where("(name = ? OR slug = ?) AND id <> ?", name, generated, category.ID).
		First(&holder).Error; err == nil {
		return category, apperror.Conflict("category already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return category, err
	}

	category.Name = name
	category.Slug = generated

	if err := s.db.Save(&category).Error; err != nil {
		return category, err
	}

	return category, nil
}

func (s *CategoryService) Delete(id uint) error {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("category")
		}
		return err
	}

	return s.db.Delete(&category).Error
}
