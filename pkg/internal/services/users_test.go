package services_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/almamun2b/portfolio-api/pkg/internal/apperror"
	"github.com/almamun2b/portfolio-api/pkg/internal/models"
	"github.com/almamun2b/portfolio-api/pkg/internal/services"
)

func TestUserCreate(t *testing.T) {
	source := newTestSource(t)
	users := services.NewUserService(source, 4)

	item, err := users.New(models.User{
		Name:  "Mun",
		Email: "mun@example.com",
		SocialLinks: datatypes.JSONMap{
			"github": "https://github.com/mun",
		},
	}, "plain-password")
	require.NoError(t, err)

	assert.NotEqual(t, "plain-password", item.Password)
	assert.NotEmpty(t, item.Password)

	_, err = users.New(models.User{Name: "No Email"}, "pass")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = users.New(models.User{Name: "Dup", Email: "mun@example.com"}, "pass")
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestUserEdit(t *testing.T) {
	source := newTestSource(t)
	users := services.NewUserService(source, 4)

	created, err := users.New(models.User{Name: "Before", Email: "edit@example.com"}, "first-pass")
	require.NoError(t, err)

	updated, err := users.Edit(created.ID, services.UserPatch{
		Name:     lo.ToPtr("After"),
		Role:     lo.ToPtr(models.RoleAdmin),
		Password: lo.ToPtr("second-pass"),
	})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.NotEqual(t, created.Password, updated.Password)

	_, err = users.Edit(999, services.UserPatch{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUserDelete(t *testing.T) {
	source := newTestSource(t)
	users := services.NewUserService(source, 4)

	created, err := users.New(models.User{Name: "Gone", Email: "gone@example.com"}, "pass")
	require.NoError(t, err)

	require.NoError(t, users.Delete(created.ID))
	assert.ErrorIs(t, users.Delete(created.ID), apperror.ErrNotFound)
}

func TestSeedSuperAdmin(t *testing.T) {
	source := newTestSource(t)
	users := services.NewUserService(source, 4)

	// Unconfigured credentials are a no-op, not an error.
	require.NoError(t, users.SeedSuperAdmin("", ""))
	items, err := users.List()
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, users.SeedSuperAdmin("root@example.com", "root-pass"))
	require.NoError(t, users.SeedSuperAdmin("root@example.com", "root-pass"))

	items, err = users.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.RoleSuperAdmin, items[0].Role)
	assert.True(t, items[0].IsVerified)
}
