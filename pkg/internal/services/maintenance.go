package services

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/almamun2b/portfolio-api/pkg/internal/models"
)

// DoAutoDatabaseCleanup drops tags and technologies no longer referenced by
// any row. Scheduled hourly from main.
func DoAutoDatabaseCleanup(source *gorm.DB) {
	log.Debug().Msg("Now embarking auto database cleanup...")

	var count int64
	if res := source.
		Where("id NOT IN (SELECT tag_id FROM post_tags)").
		Delete(new(models.Tag)); res.Error == nil {
		count += res.RowsAffected
	}
	if res := source.
		Where("id NOT IN (SELECT technology_id FROM project_technologies)").
		Delete(new(models.Technology)); res.Error == nil {
		count += res.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Auto database cleanup finished.")
}
