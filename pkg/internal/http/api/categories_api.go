package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almamun2b/portfolio-api/pkg/internal/apperror"
	"github.com/almamun2b/portfolio-api/pkg/internal/http/exts"
)

func (ct *Controllers) createCategory(c *fiber.Ctx) error {
	var data struct {
		Name string `json:"name" validate:"required,max=256"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := ct.categories.New(data.Name)
	if err != nil {
		return err
	}

	return exts.Created(c, "Category created successfully", item)
}

func (ct *Controllers) listCategories(c *fiber.Ctx) error {
	items, err := ct.categories.List()
	if err != nil {
		return err
	}

	return exts.Ok(c, "Categories retrieved successfully", items)
}

func (ct *Controllers) getCategory(c *fiber.Ctx) error {
	item, err := ct.categories.Get(c.Params("categoryId"))
	if err != nil {
		return err
	}

	return exts.Ok(c, "Category retrieved successfully", item)
}

func (ct *Controllers) editCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("categoryId")
	if err != nil {
		return apperror.Validation("category id must be numeric")
	}

	var data struct {
		Name string `json:"name" validate:"required,max=256"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := ct.categories.Edit(uint(id), data.Name)
	if err != nil {
		return err
	}

	return exts.Ok(c, "Category updated successfully", item)
}

func (ct *Controllers) deleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("categoryId")
	if err != nil {
		return apperror.Validation("category id must be numeric")
	}

	if err := ct.categories.Delete(uint(id)); err != nil {
		return err
	}

	return exts.Ok(c, "Category deleted successfully", nil)
}
