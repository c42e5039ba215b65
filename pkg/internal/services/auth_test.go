package services_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almamun2b/portfolio-api/pkg/internal/apperror"
	"github.com/almamun2b/portfolio-api/pkg/internal/models"
	"github.com/almamun2b/portfolio-api/pkg/internal/services"
)

const testSecret = "test-secret"

func TestAuthLogin(t *testing.T) {
	source := newTestSource(t)
	users := services.NewUserService(source, 4)
	auth := services.NewAuthService(source, testSecret)

	created, err := users.New(models.User{Name: "Login", Email: "login@example.com"}, "right-pass")
	require.NoError(t, err)

	user, pair, err := auth.Login("login@example.com", "right-pass")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	token, err := jwt.Parse(pair.AccessToken, func(token *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "1", claims["sub"])
	assert.Equal(t, models.RoleUser, claims["role"])
}

func TestAuthLoginFailures(t *testing.T) {
	source := newTestSource(t)
	users := services.NewUserService(source, 4)
	auth := services.NewAuthService(source, testSecret)

	_, err := users.New(models.User{Name: "Login", Email: "login@example.com"}, "right-pass")
	require.NoError(t, err)

	_, _, err = auth.Login("", "")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, _, err = auth.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, _, err = auth.Login("login@example.com", "wrong-pass")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestAuthWithGoogle(t *testing.T) {
	source := newTestSource(t)
	auth := services.NewAuthService(source, testSecret)

	_, err := auth.AuthWithGoogle(models.User{Name: "No Email"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	first, err := auth.AuthWithGoogle(models.User{Name: "Ext", Email: "ext@example.com"})
	require.NoError(t, err)
	assert.True(t, first.IsVerified)

	// The second round finds the same account instead of creating another.
	second, err := auth.AuthWithGoogle(models.User{Name: "Ext Again", Email: "ext@example.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
