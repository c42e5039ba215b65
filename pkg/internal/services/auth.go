package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/almamun2b/portfolio-api/pkg/internal/apperror"
	"github.com/almamun2b/portfolio-api/pkg/internal/models"
)

const tokenIssuer = "portfolio-api"

const (
	accessTokenLifespan  = 15 * time.Minute
	refreshTokenLifespan = 7 * 24 * time.Hour
)

type AuthService struct {
	db     *gorm.DB
	secret []byte
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{db: db, secret: []byte(secret)}
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (s *AuthService) issueToken(user models.User, lifespan time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  strconv.Itoa(int(user.ID)),
		"role": user.Role,
		"iss":  tokenIssuer,
		"iat":  jwt.NewNumericDate(now),
		"exp":  jwt.NewNumericDate(now.Add(lifespan)),
	})

	return token.SignedString(s.secret)
}

// Login verifies credentials and hands back the user record (password never
// leaves the service) together with a fresh token pair.
func (s *AuthService) Login(email, password string) (models.User, TokenPair, error) {
	var pair TokenPair
	var user models.User

	if len(strings.TrimSpace(email)) == 0 || len(password) == 0 {
		return user, pair, apperror.Validation("email and password are required")
	}

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, pair, apperror.NotFound("user")
		}
		return user, pair, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return user, pair, apperror.Validation("password is incorrect")
	}

	var err error
	if pair.AccessToken, err = s.issueToken(user, accessTokenLifespan); err != nil {
		return user, pair, err
	}
	if pair.RefreshToken, err = s.issueToken(user, refreshTokenLifespan); err != nil {
		return user, pair, err
	}

	return user, pair, nil
}

// AuthWithGoogle finds the user carrying the external identity's email, or
// creates a verified account on first sight.
func (s *AuthService) AuthWithGoogle(item models.User) (models.User, error) {
	if len(strings.TrimSpace(item.Email)) == 0 {
		return item, apperror.Validation("email is required")
	}

	var user models.User
	if err := s.db.Where("email = ?", item.Email).First(&user).Error; err == nil {
		return user, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, err
	}

	item.IsVerified = true
	if err := s.db.Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}
