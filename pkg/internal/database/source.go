package database

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// NewSource opens the relational data source. The returned handle is
// constructed once in main and handed to each service explicitly; nothing in
// this codebase reaches for a process-wide connection.
func NewSource(dsn string) (*gorm.DB, error) {
	dialector := postgres.Open(dsn)

	source, err := gorm.Open(dialector, &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
		Logger: logger.New(&log.Logger, logger.Config{
			SlowThreshold:             time.Second,
			IgnoreRecordNotFoundError: true,
			LogLevel:                  logger.Warn,
		}),
	})
	if err != nil {
		return nil, err
	}

	return source, nil
}
