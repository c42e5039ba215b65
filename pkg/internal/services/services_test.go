package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/almamun2b/portfolio-api/pkg/internal/database"
	"github.com/almamun2b/portfolio-api/pkg/internal/models"
	"github.com/almamun2b/portfolio-api/pkg/internal/services"
)

// newTestSource opens a fresh in-memory database per test. The connection pool
// is pinned to one connection so every session sees the same memory database.
func newTestSource(t *testing.T) *gorm.DB {
	t.Helper()

	source, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := source.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(source))

	return source
}

func newTestAuthor(t *testing.T, source *gorm.DB) models.User {
	t.Helper()

	users := services.NewUserService(source, 4)
	author, err := users.New(models.User{
		Name:  "Test Author",
		Email: "author@example.com",
	}, "secret-pass")
	require.NoError(t, err)

	return author
}
