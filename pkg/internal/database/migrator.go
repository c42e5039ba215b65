package database

import (
	"github.com/almamun2b/portfolio-api/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.User{},
	&models.Category{},
	&models.Tag{},
	&models.Post{},
	&models.Technology{},
	&models.Project{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(AutoMaintainRange...); err != nil {
		return err
	}

	return nil
}
