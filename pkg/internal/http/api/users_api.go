package api

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"github.com/almamun2b/portfolio-api/pkg/internal/apperror"
	"github.com/almamun2b/portfolio-api/pkg/internal/http/exts"
	"github.com/almamun2b/portfolio-api/pkg/internal/models"
	"github.com/almamun2b/portfolio-api/pkg/internal/services"
)

func (ct *Controllers) createUser(c *fiber.Ctx) error {
	var data struct {
		Name        string            `json:"name" validate:"required"`
		Email       string            `json:"email" validate:"required,email"`
		Password    string            `json:"password" validate:"required,min=6"`
		Phone       string            `json:"phone"`
		Picture     string            `json:"picture"`
		SocialLinks datatypes.JSONMap `json:"socialLinks"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := ct.users.New(models.User{
		Name:        data.Name,
		Email:       data.Email,
		Phone:       data.Phone,
		Picture:     data.Picture,
		SocialLinks: data.SocialLinks,
	}, data.Password)
	if err != nil {
		return err
	}

	return exts.Created(c, "User created successfully", item)
}

func (ct *Controllers) listUsers(c *fiber.Ctx) error {
	items, err := ct.users.List()
	if err != nil {
		return err
	}

	return exts.Ok(c, "Users retrieved successfully", items)
}

func (ct *Controllers) getUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return apperror.Validation("user id must be numeric")
	}

	item, err := ct.users.Get(uint(id))
	if err != nil {
		return err
	}

	return exts.Ok(c, "User retrieved successfully", item)
}

func (ct *Controllers) editUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return apperror.Validation("user id must be numeric")
	}

	var data struct {
		Name        *string           `json:"name"`
		Phone       *string           `json:"phone"`
		Picture     *string           `json:"picture"`
		Role        *string           `json:"role" validate:"omitempty,oneof=USER ADMIN SUPER_ADMIN"`
		Status      *string           `json:"status" validate:"omitempty,oneof=ACTIVE BLOCKED"`
		IsVerified  *bool             `json:"isVerified"`
		Password    *string           `json:"password" validate:"omitempty,min=6"`
		SocialLinks datatypes.JSONMap `json:"socialLinks"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := ct.users.Edit(uint(id), services.UserPatch{
		Name:        data.Name,
		Phone:       data.Phone,
		Picture:     data.Picture,
		Role:        data.Role,
		Status:      data.Status,
		IsVerified:  data.IsVerified,
		Password:    data.Password,
		SocialLinks: data.SocialLinks,
	})
	if err != nil {
		return err
	}

	return exts.Ok(c, "User updated successfully", item)
}

func (ct *Controllers) deleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return apperror.Validation("user id must be numeric")
	}

	if err := ct.users.Delete(uint(id)); err != nil {
		return err
	}

	return exts.Ok(c, "User deleted successfully", nil)
}
