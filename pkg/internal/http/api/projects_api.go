package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almamun2b/portfolio-api/pkg/internal/apperror"
	"github.com/almamun2b/portfolio-api/pkg/internal/http/exts"
	"github.com/almamun2b/portfolio-api/pkg/internal/models"
	"github.com/almamun2b/portfolio-api/pkg/internal/services"
	"github.com/almamun2b/portfolio-api/pkg/internal/services/queries"
)

func (ct *Controllers) createProject(c *fiber.Ctx) error {
	var data struct {
		Title        string   `json:"title" validate:"required,max=1024"`
		Description  string   `json:"description"`
		Content      string   `json:"content"`
		Image        string   `json:"image"`
		LiveURL      string   `json:"liveUrl"`
		RepoURL      string   `json:"repoUrl"`
		Type         string   `json:"type" validate:"required,oneof=Frontend Backend Fullstack"`
		Technologies []string `json:"technologies"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := ct.projects.New(models.Project{
		Title:       data.Title,
		Description: data.Description,
		Content:     data.Content,
		Image:       data.Image,
		LiveURL:     data.LiveURL,
		RepoURL:     data.RepoURL,
		Type:        data.Type,
	}, data.Technologies)
	if err != nil {
		return err
	}

	return exts.Created(c, "Project created successfully", item)
}

func (ct *Controllers) listProjects(c *fiber.Ctx) error {
	filter := queries.ProjectFilter{
		Search:       c.Query("search"),
		Type:         c.Query("type"),
		Technologies: splitQueryList(c.Query("technologies")),
		Sort: queries.Sort{
			Field: c.Query("sortBy"),
			Order: queries.SortOrder(c.Query("sortOrder")),
		},
		Pagination: queries.Pagination{
			Page:  c.QueryInt("page"),
			Limit: c.QueryInt("limit"),
		},
	}

	items, meta, err := ct.projects.List(filter)
	if err != nil {
		return err
	}

	return exts.Ok(c, "Projects retrieved successfully", fiber.Map{
		"items": items,
		"meta":  meta,
	})
}

func (ct *Controllers) getProject(c *fiber.Ctx) error {
	item, err := ct.projects.Get(c.Params("projectId"))
	if err != nil {
		return err
	}

	return exts.Ok(c, "Project retrieved successfully", item)
}

func (ct *Controllers) editProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("projectId")
	if err != nil {
		return apperror.Validation("project id must be numeric")
	}

	var data struct {
		Title        *string  `json:"title" validate:"omitempty,max=1024"`
		Description  *string  `json:"description"`
		Content      *string  `json:"content"`
		Image        *string  `json:"image"`
		LiveURL      *string  `json:"liveUrl"`
		RepoURL      *string  `json:"repoUrl"`
		Type         *string  `json:"type" validate:"omitempty,oneof=Frontend Backend Fullstack"`
		Technologies []string `json:"technologies"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := ct.projects.Edit(uint(id), services.ProjectPatch{
		Title:        data.Title,
		Description:  data.Description,
		Content:      data.Content,
		Image:        data.Image,
		LiveURL:      data.LiveURL,
		RepoURL:      data.RepoURL,
		Type:         data.Type,
		Technologies: data.Technologies,
	})
	if err != nil {
		return err
	}

	return exts.Ok(c, "Project updated successfully", item)
}

func (ct *Controllers) deleteProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("projectId")
	if err != nil {
		return apperror.Validation("project id must be numeric")
	}

	if err := ct.projects.Delete(uint(id)); err != nil {
		return err
	}

	return exts.Ok(c, "Project deleted successfully", nil)
}
