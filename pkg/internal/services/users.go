package services

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/almamun2b/portfolio-api/pkg/internal/apperror"
	"github.com/almamun2b/portfolio-api/pkg/internal/models"
)

type UserService struct {
	db         *gorm.DB
	bcryptCost int
}

func NewUserService(db *gorm.DB, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{db: db, bcryptCost: bcryptCost}
}

type UserPatch struct {
	Name        *string
	Phone       *string
	Picture     *string
	Role        *string
	Status      *string
	IsVerified  *bool
	Password    *string
	SocialLinks datatypes.JSONMap
}

func (s *UserService) New(item models.User, password string) (models.User, error) {
	if len(strings.TrimSpace(item.Email)) == 0 || len(password) == 0 {
		return item, apperror.Validation("email and password are required")
	}

	var holder models.User
	if err := s.db.Where("email = ?", item.Email).First(&holder).Error; err == nil {
		return item, apperror.Conflict("user already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return item, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return item, err
	}
	item.Password = string(hashed)

	if err := s.db.Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at DESC").Find(&users).Error

	return users, err
}

func (s *UserService) Get(id uint) (models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, apperror.NotFound("user")
		}
		return user, err
	}
	return user, nil
}

func (s *UserService) Edit(id uint, patch UserPatch) (models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return user, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Picture != nil {
		user.Picture = *patch.Picture
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}
	if patch.IsVerified != nil {
		user.IsVerified = *patch.IsVerified
	}
	if patch.SocialLinks != nil {
		user.SocialLinks = patch.SocialLinks
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), s.bcryptCost)
		if err != nil {
			return user, err
		}
		user.Password = string(hashed)
	}

	if err := s.db.Save(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (s *UserService) Delete(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}

	return s.db.Delete(&user).Error
}

// SeedSuperAdmin makes sure the configured super admin account exists.
// Safe to run on every boot.
func (s *UserService) SeedSuperAdmin(email, password string) error {
	if len(email) == 0 || len(password) == 0 {
		log.Warn().Msg("Super admin seed skipped, credentials are not configured.")
		return nil
	}

	var holder models.User
	if err := s.db.Where("email = ?", email).First(&holder).Error; err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:       "Super Admin",
		Email:      email,
		Password:   string(hashed),
		Role:       models.RoleSuperAdmin,
		Status:     models.UserStatusActive,
		IsVerified: true,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("Seeded the super admin account.")
	return nil
}
