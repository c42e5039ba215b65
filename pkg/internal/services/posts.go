package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/almamun2b/portfolio-api/pkg/internal/apperror"
	localCache "github.com/almamun2b/portfolio-api/pkg/internal/cache"
	"github.com/almamun2b/portfolio-api/pkg/internal/models"
	"github.com/almamun2b/portfolio-api/pkg/internal/services/queries"
	"github.com/almamun2b/portfolio-api/pkg/internal/slug"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// PostPatch carries a partial update; nil fields are left untouched.
type PostPatch struct {
	Title       *string
	Description *string
	Content     *string
	Image       *string
	IsFeatured  *bool
	CategoryID  *uint
	Tags        []string
}

func preloadPostGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Tags").
		Preload("Category").
		Preload("Author")
}

// ensureSlug derives a slug from the title and breaks a collision once by
// suffixing the current Unix millisecond clock. The suffixed slug is not
// re-checked; the unique index backstops the remaining race.
func ensureSlug(tx *gorm.DB, model any, title string, selfID uint) (string, error) {
	out := slug.Generate(title)
	if len(out) == 0 {
		return "", apperror.Validation("title is required")
	}

	probe := tx.Model(model).Select("id").Where("slug = ?", out)
	if selfID > 0 {
		probe = probe.Where("id <> ?", selfID)
	}

	var holder struct{ ID uint }
	if err := probe.First(&holder).Error; err == nil {
		out = fmt.Sprintf("%s-%d", out, time.Now().UnixMilli())
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	return out, nil
}

func resolveTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		if err := tx.Where(models.Tag{Name: name}).First(&tag).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return tags, err
			}
			tag = models.Tag{Name: name}
			if err := tx.Create(&tag).Error; err != nil {
				return tags, err
			}
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (s *PostService) New(item models.Post, tagNames []string) (models.Post, error) {
	generated, err := ensureSlug(s.db, &models.Post{}, item.Title, 0)
	if err != nil {
		return item, err
	}
	item.Slug = generated
	item.Language = DetectLanguage(item.Content)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if item.IsFeatured {
			// Clear the flag everywhere else inside the same transaction, so
			// no reader ever sees two featured posts.
			if err := tx.Model(&models.Post{}).
				Where("is_featured = ?", true).
				Update("is_featured", false).Error; err != nil {
				return err
			}
		}

		tags, err := resolveTags(tx, tagNames)
		if err != nil {
			return err
		}
		item.Tags = tags

		return tx.Create(&item).Error
	})
	if err != nil {
		return item, err
	}

	s.flushListingCache(context.Background())
	log.Debug().Uint("id", item.ID).Str("slug", item.Slug).Msg("Created a post.")

	return s.GetByID(item.ID)
}

func (s *PostService) List(filter queries.PostFilter) ([]models.Post, queries.PageMeta, error) {
	filter.Pagination = filter.Pagination.Normalize()

	var total int64
	if err := filter.Apply(s.db).Count(&total).Error; err != nil {
		return nil, queries.PageMeta{}, err
	}

	var items []models.Post
	if err := preloadPostGeneral(filter.Apply(s.db)).
		Order(filter.OrderClause()).
		Offset(filter.Pagination.Skip()).
		Limit(filter.Pagination.Limit).
		Find(&items).Error; err != nil {
		return nil, queries.PageMeta{}, err
	}

	return items, filter.Pagination.Meta(total), nil
}

func (s *PostService) GetByID(id uint) (models.Post, error) {
	var item models.Post
	if err := preloadPostGeneral(s.db).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, apperror.NotFound("post")
		}
		return item, err
	}
	return item, nil
}

// Get resolves the identifier as a numeric id when it parses as one,
// otherwise as a slug. Only the slug path bumps the view counter; the
// numeric path reads without counting, matching the observed behavior.
func (s *PostService) Get(idOrSlug string) (models.Post, error) {
	if id, err := strconv.Atoi(idOrSlug); err == nil {
		return s.GetByID(uint(id))
	}

	var item models.Post
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).
			Where("slug = ?", idOrSlug).
			Update("views", gorm.Expr("views + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound("post")
		}

		return preloadPostGeneral(tx).Where("slug = ?", idOrSlug).First(&item).Error
	})

	return item, err
}

func (s *PostService) Edit(id uint, patch PostPatch) (models.Post, error) {
	var item models.Post
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, apperror.NotFound("post")
		}
		return item, err
	}

	if patch.Title != nil {
		generated, err := ensureSlug(s.db, &models.Post{}, *patch.Title, item.ID)
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
		item.Language = DetectLanguage(item.Content)
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}
	if patch.CategoryID != nil {
		item.CategoryID = patch.CategoryID
	}
	if patch.IsFeatured != nil {
		item.IsFeatured = *patch.IsFeatured
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if patch.IsFeatured != nil && *patch.IsFeatured {
			if err := tx.Model(&models.Post{}).
				Where("is_featured = ? AND id <> ?", true, item.ID).
				Update("is_featured", false).Error; err != nil {
				return err
			}
		}

		if patch.Tags != nil {
			tags, err := resolveTags(tx, patch.Tags)
			if err != nil {
				return err
			}
			if err := tx.Model(&item).Association("Tags").Replace(&tags); err != nil {
				return err
			}
		}

		return tx.Save(&item).Error
	})
	if err != nil {
		return item, err
	}

	s.flushListingCache(context.Background())

	return s.GetByID(item.ID)
}

func (s *PostService) Delete(id uint) error {
	var item models.Post
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("post")
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&item).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		return err
	}

	s.flushListingCache(context.Background())
	return nil
}

// GetStats computes the aggregate snapshot in one transaction so every figure
// describes the same committed state.
func (s *PostService) GetStats() (models.PostStats, error) {
	var stats models.PostStats

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var agg struct {
			TotalPosts   int64
			TotalViews   int64
			AverageViews float64
			MaxViews     int64
			MinViews     int64
		}
		if err := tx.Model(&models.Post{}).
			Select("COUNT(id) AS total_posts, COALESCE(SUM(views), 0) AS total_views, COALESCE(AVG(views), 0) AS average_views, COALESCE(MAX(views), 0) AS max_views, COALESCE(MIN(views), 0) AS min_views").
			Scan(&agg).Error; err != nil {
			return err
		}
		stats.TotalPosts = agg.TotalPosts
		stats.TotalViews = agg.TotalViews
		stats.AverageViews = agg.AverageViews
		stats.MaxViews = agg.MaxViews
		stats.MinViews = agg.MinViews

		if err := tx.Model(&models.Post{}).
			Where("is_featured = ?", true).
			Count(&stats.FeaturedCount).Error; err != nil {
			return err
		}

		var top models.Post
		if err := tx.Where("is_featured = ?", true).
			Order("views DESC").
			First(&top).Error; err == nil {
			stats.TopFeaturedPost = &top
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Trailing window, not rounded to day boundaries.
		lastWeek := time.Now().AddDate(0, 0, -7)
		return tx.Model(&models.Post{}).
			Where("created_at >= ?", lastWeek).
			Count(&stats.LastWeekPostCount).Error
	})

	return stats, err
}

const popularPostsCacheKey = "posts-popular"

// ListPopular returns the four most viewed posts. The result is cached for a
// few minutes and dropped whenever a post mutates.
func (s *PostService) ListPopular(ctx context.Context) ([]models.Post, error) {
	var m *marshaler.Marshaler
	if localCache.S != nil {
		m = marshaler.New(cache.New[any](localCache.S))
		if raw, err := m.Get(ctx, popularPostsCacheKey, new([]models.Post)); err == nil {
			return *(raw.(*[]models.Post)), nil
		}
	}

	var items []models.Post
	if err := preloadPostGeneral(s.db).
		Order("views DESC").
		Limit(4).
		Find(&items).Error; err != nil {
		return nil, err
	}

	if m != nil {
		_ = m.Set(
			ctx,
			popularPostsCacheKey,
			items,
			store.WithExpiration(5*time.Minute),
			store.WithTags([]string{"posts"}),
		)
	}

	return items, nil
}

func (s *PostService) ListFeatured() ([]models.Post, error) {
	var items []models.Post
	if err := preloadPostGeneral(s.db).
		Where("is_featured = ?", true).
		Order("updated_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListTagNames returns the tag catalog, alphabetically.
func (s *PostService) ListTagNames() ([]string, error) {
	var names []string
	if err := s.db.Model(&models.Tag{}).
		Order("name ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (s *PostService) flushListingCache(ctx context.Context) {
	if localCache.S == nil {
		return
	}
	m := marshaler.New(cache.New[any](localCache.S))
	if err := m.Invalidate(ctx, store.WithInvalidateTags([]string{"posts"})); err != nil {
		log.Warn().Err(err).Msg("An error occurred when flushing post listing cache...")
	}
}
