package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/almamun2b/portfolio-api/pkg/internal/apperror"
	"github.com/almamun2b/portfolio-api/pkg/internal/http/exts"
	"github.com/almamun2b/portfolio-api/pkg/internal/models"
	"github.com/almamun2b/portfolio-api/pkg/internal/services"
	"github.com/almamun2b/portfolio-api/pkg/internal/services/queries"
)

// splitQueryList turns a comma separated query value into a clean slice.
// Entries are trimmed so "go, web" matches the exact tag names.
func splitQueryList(raw string) []string {
	if len(raw) == 0 {
		return nil
	}
	return lo.FilterMap(strings.Split(raw, ","), func(item string, index int) (string, bool) {
		item = strings.TrimSpace(item)
		return item, len(item) > 0
	})
}

func (ct *Controllers) createPost(c *fiber.Ctx) error {
	var data struct {
		Title       string   `json:"title" validate:"required,max=1024"`
		Description string   `json:"description"`
		Content     string   `json:"content"`
		Image       string   `json:"image"`
		IsFeatured  bool     `json:"isFeatured"`
		Tags        []string `json:"tags"`
		CategoryID  *uint    `json:"categoryId"`
		AuthorID    uint     `json:"authorId" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := ct.posts.New(models.Post{
		Title:       data.Title,
		Description: data.Description,
		Content:     data.Content,
		Image:       data.Image,
		IsFeatured:  data.IsFeatured,
		CategoryID:  data.CategoryID,
		AuthorID:    data.AuthorID,
	}, data.Tags)
	if err != nil {
		return err
	}

	return exts.Created(c, "Post created successfully", item)
}

func (ct *Controllers) listPosts(c *fiber.Ctx) error {
	filter := queries.PostFilter{
		Search:   c.Query("search"),
		Tags:     splitQueryList(c.Query("tags")),
		Category: c.Query("category"),
		Sort: queries.Sort{
			Field: c.Query("sortBy"),
			Order: queries.SortOrder(c.Query("sortOrder")),
		},
		Pagination: queries.Pagination{
			Page:  c.QueryInt("page"),
			Limit: c.QueryInt("limit"),
		},
	}

	if len(c.Query("isFeatured")) > 0 {
		filter.Featured = lo.ToPtr(c.QueryBool("isFeatured"))
	}

	items, meta, err := ct.posts.List(filter)
	if err != nil {
		return err
	}

	return exts.Ok(c, "Posts retrieved successfully", fiber.Map{
		"items": items,
		"meta":  meta,
	})
}

func (ct *Controllers) getPostStats(c *fiber.Ctx) error {
	stats, err := ct.posts.GetStats()
	if err != nil {
		return err
	}

	return exts.Ok(c, "Post stats retrieved successfully", stats)
}

func (ct *Controllers) listPopularPosts(c *fiber.Ctx) error {
	items, err := ct.posts.ListPopular(c.UserContext())
	if err != nil {
		return err
	}

	return exts.Ok(c, "Popular posts retrieved successfully", items)
}

func (ct *Controllers) listFeaturedPosts(c *fiber.Ctx) error {
	items, err := ct.posts.ListFeatured()
	if err != nil {
		return err
	}

	return exts.Ok(c, "Featured posts retrieved successfully", items)
}

func (ct *Controllers) listPostTags(c *fiber.Ctx) error {
	names, err := ct.posts.ListTagNames()
	if err != nil {
		return err
	}

	return exts.Ok(c, "Tags retrieved successfully", names)
}

func (ct *Controllers) getPost(c *fiber.Ctx) error {
	item, err := ct.posts.Get(c.Params("postId"))
	if err != nil {
		return err
	}

	return exts.Ok(c, "Post retrieved successfully", item)
}

func (ct *Controllers) editPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return apperror.Validation("post id must be numeric")
	}

	var data struct {
		Title       *string  `json:"title" validate:"omitempty,max=1024"`
		Description *string  `json:"description"`
		Content     *string  `json:"content"`
		Image       *string  `json:"image"`
		IsFeatured  *bool    `json:"isFeatured"`
		CategoryID  *uint    `json:"categoryId"`
		Tags        []string `json:"tags"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := ct.posts.Edit(uint(id), services.PostPatch{
		Title:       data.Title,
		Description: data.Description,
		Content:     data.Content,
		Image:       data.Image,
		IsFeatured:  data.IsFeatured,
		CategoryID:  data.CategoryID,
		Tags:        data.Tags,
	})
	if err != nil {
		return err
	}

	return exts.Ok(c, "Post updated successfully", item)
}

func (ct *Controllers) deletePost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return apperror.Validation("post id must be numeric")
	}

	if err := ct.posts.Delete(uint(id)); err != nil {
		return err
	}

	return exts.Ok(c, "Post deleted successfully", nil)
}
