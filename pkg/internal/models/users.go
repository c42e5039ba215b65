package models

import "gorm.io/datatypes"

const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

const (
	UserStatusActive  = "ACTIVE"
	UserStatusBlocked = "BLOCKED"
)

type User struct {
	BaseModel

	Name       string `json:"name"`
	Email      string `json:"email" gorm:"uniqueIndex" validate:"email"`
	Password   string `json:"-"`
	Phone      string `json:"phone"`
	Picture    string `json:"picture"`
	Role       string `json:"role" gorm:"default:USER"`
	Status     string `json:"status" gorm:"default:ACTIVE"`
	IsVerified bool   `json:"is_verified"`

	SocialLinks datatypes.JSONMap `json:"social_links"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
}
