package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/almamun2b/portfolio-api/pkg/internal/database"
	"github.com/almamun2b/portfolio-api/pkg/internal/http"
	"github.com/almamun2b/portfolio-api/pkg/internal/http/api"
	"github.com/almamun2b/portfolio-api/pkg/internal/services"
)

func newTestServer(t *testing.T) *http.Server {
	t.Helper()

	source, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := source.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(source))

	return http.NewServer(api.NewControllers(
		services.NewUserService(source, 4),
		services.NewAuthService(source, "test-secret"),
		services.NewCategoryService(source),
		services.NewPostService(source),
		services.NewProjectService(source),
	))
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestStatusMapping(t *testing.T) {
	server := newTestServer(t)
	app := server.App()

	// Validation failure comes back as 400.
	req := httptest.NewRequest("POST", "/api/v1/categories", strings.NewReader(`{"name": ""}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode)

	// Missing resources come back as 404.
	res, err = app.Test(httptest.NewRequest("GET", "/api/v1/posts/no-such-slug", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode)

	// Duplicates come back as 409.
	req = httptest.NewRequest("POST", "/api/v1/categories", strings.NewReader(`{"name": "DevOps"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, res.StatusCode)

	req = httptest.NewRequest("POST", "/api/v1/categories", strings.NewReader(`{"name": "DevOps"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 409, res.StatusCode)
}

func TestEnvelopeShape(t *testing.T) {
	server := newTestServer(t)
	app := server.App()

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/categories", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	var out envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, "Categories retrieved successfully", out.Message)
}

func TestListMetaShape(t *testing.T) {
	server := newTestServer(t)
	app := server.App()

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/posts?page=1&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	var out struct {
		Success bool `json:"success"`
		Data    struct {
			Items []json.RawMessage `json:"items"`
			Meta  struct {
				Page       int   `json:"page"`
				Limit      int   `json:"limit"`
				Total      int64 `json:"total"`
				TotalPages int64 `json:"totalPages"`
			} `json:"meta"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, 1, out.Data.Meta.Page)
	assert.Equal(t, 5, out.Data.Meta.Limit)
	assert.Empty(t, out.Data.Items)
}
