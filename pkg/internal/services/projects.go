package services

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/almamun2b/portfolio-api/pkg/internal/apperror"
	"github.com/almamun2b/portfolio-api/pkg/internal/models"
	"github.com/almamun2b/portfolio-api/pkg/internal/services/queries"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectPatch struct {
	Title        *string
	Description  *string
	Content      *string
	Image        *string
	LiveURL      *string
	RepoURL      *string
	Type         *string
	Technologies []string
}

func resolveTechnologies(tx *gorm.DB, names []string) ([]models.Technology, error) {
	technologies := make([]models.Technology, 0, len(names))
	for _, name := range names {
		var technology models.Technology
		if err := tx.Where(models.Technology{Name: name}).First(&technology).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return technologies, err
			}
			technology = models.Technology{Name: name}
			if err := tx.Create(&technology).Error; err != nil {
				return technologies, err
			}
		}
		technologies = append(technologies, technology)
	}
	return technologies, nil
}

func (s *ProjectService) New(item models.Project, technologyNames []string) (models.Project, error) {
	generated, err := ensureSlug(s.db, &models.Project{}, item.Title, 0)
	if err != nil {
		return item, err
	}
	item.Slug = generated

	err = s.db.Transaction(func(tx *gorm.DB) error {
		technologies, err := resolveTechnologies(tx, technologyNames)
		if err != nil {
			return err
		}
		item.Technologies = technologies

		return tx.Create(&item).Error
	})
	if err != nil {
		return item, err
	}

	return s.GetByID(item.ID)
}

func (s *ProjectService) List(filter queries.ProjectFilter) ([]models.Project, queries.PageMeta, error) {
	filter.Pagination = filter.Pagination.Normalize()

	var total int64
	if err := filter.Apply(s.db).Count(&total).Error; err != nil {
		return nil, queries.PageMeta{}, err
	}

	var items []models.Project
	if err := filter.Apply(s.db).
		Preload("Technologies").
		Order(filter.OrderClause()).
		Offset(filter.Pagination.Skip()).
		Limit(filter.Pagination.Limit).
		Find(&items).Error; err != nil {
		return nil, queries.PageMeta{}, err
	}

	return items, filter.Pagination.Meta(total), nil
}

func (s *ProjectService) GetByID(id uint) (models.Project, error) {
	var item models.Project
	if err := s.db.Preload("Technologies").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, apperror.NotFound("project")
		}
		return item, err
	}
	return item, nil
}

// Get resolves a numeric id or a slug. Project reads never touch a counter.
func (s *ProjectService) Get(idOrSlug string) (models.Project, error) {
	if id, err := strconv.Atoi(idOrSlug); err == nil {
		return s.GetByID(uint(id))
	}

	var item models.Project
	if err := s.db.Preload("Technologies").
		Where("slug = ?", idOrSlug).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, apperror.NotFound("project")
		}
		return item, err
	}
	return item, nil
}

func (s *ProjectService) Edit(id uint, patch ProjectPatch) (models.Project, error) {
	var item models.Project
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, apperror.NotFound("project")
		}
		return item, err
	}

	if patch.Title != nil {
		generated, err := ensureSlug(s.db, &models.Project{}, *patch.Title, item.ID)
		if err != nil {
			return item, err
		}
		item.Title = *patch.Title
		item.Slug = generated
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Content != nil {
		item.Content = *patch.Content
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}
	if patch.LiveURL != nil {
		item.LiveURL = *patch.LiveURL
	}
	if patch.RepoURL != nil {
		item.RepoURL = *patch.RepoURL
	}
	if patch.Type != nil {
		item.Type = *patch.Type
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if patch.Technologies != nil {
			technologies, err := resolveTechnologies(tx, patch.Technologies)
			if err != nil {
				return err
			}
			if err := tx.Model(&item).Association("Technologies").Replace(&technologies); err != nil {
				return err
			}
		}

		return tx.Save(&item).Error
	})
	if err != nil {
		return item, err
	}

	return s.GetByID(item.ID)
}

func (s *ProjectService) Delete(id uint) error {
	var item models.Project
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("project")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&item).Association("Technologies").Clear(); err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}
