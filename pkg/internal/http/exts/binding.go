package exts

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/almamun2b/portfolio-api/pkg/internal/apperror"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

// BindAndValidate parses the request body into out and runs the declared
// validate tags. Both failure modes surface as validation errors.
func BindAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperror.Validation("unable to parse request body")
	}
	if err := validation.Struct(out); err != nil {
		return apperror.Validation(err.Error())
	}

	return nil
}
