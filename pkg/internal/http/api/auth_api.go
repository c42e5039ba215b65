package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almamun2b/portfolio-api/pkg/internal/http/exts"
	"github.com/almamun2b/portfolio-api/pkg/internal/models"
)

func (ct *Controllers) login(c *fiber.Ctx) error {
	var data struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, pair, err := ct.auth.Login(data.Email, data.Password)
	if err != nil {
		return err
	}

	return exts.Ok(c, "Logged in successfully", fiber.Map{
		"user":   user,
		"tokens": pair,
	})
}

func (ct *Controllers) authWithGoogle(c *fiber.Ctx) error {
	var data struct {
		Name    string `json:"name"`
		Email   string `json:"email" validate:"required,email"`
		Picture string `json:"picture"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := ct.auth.AuthWithGoogle(models.User{
		Name:    data.Name,
		Email:   data.Email,
		Picture: data.Picture,
	})
	if err != nil {
		return err
	}

	return exts.Ok(c, "Authenticated successfully", user)
}
