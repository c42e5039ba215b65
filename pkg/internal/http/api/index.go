package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almamun2b/portfolio-api/pkg/internal/services"
)

type Controllers struct {
	users      *services.UserService
	auth       *services.AuthService
	categories *services.CategoryService
	posts      *services.PostService
	projects   *services.ProjectService
}

func NewControllers(
	users *services.UserService,
	auth *services.AuthService,
	categories *services.CategoryService,
	posts *services.PostService,
	projects *services.ProjectService,
) *Controllers {
	return &Controllers{
		users:      users,
		auth:       auth,
		categories: categories,
		posts:      posts,
		projects:   projects,
	}
}

func (ct *Controllers) MapControllers(app *fiber.App, baseURL string) {
	root := app.Group(baseURL)

	user := root.Group("/users")
	{
		user.Post("/", ct.createUser)
		user.Get("/", ct.listUsers)
		user.Get("/:userId", ct.getUser)
		user.Patch("/:userId", ct.editUser)
		user.Delete("/:userId", ct.deleteUser)
	}

	auth := root.Group("/auth")
	{
		auth.Post("/login", ct.login)
		auth.Post("/google", ct.authWithGoogle)
	}

	category := root.Group("/categories")
	{
		category.Post("/", ct.createCategory)
		category.Get("/", ct.listCategories)
		category.Get("/:categoryId", ct.getCategory)
		category.Patch("/:categoryId", ct.editCategory)
		category.Delete("/:categoryId", ct.deleteCategory)
	}

	post := root.Group("/posts")
	{
		post.Post("/", ct.createPost)
		post.Get("/", ct.listPosts)
		post.Get("/stats", ct.getPostStats)
		post.Get("/popular", ct.listPopularPosts)
		post.Get("/featured", ct.listFeaturedPosts)
		post.Get("/tags", ct.listPostTags)
		post.Get("/:postId", ct.getPost)
		post.Patch("/:postId", ct.editPost)
		post.Delete("/:postId", ct.deletePost)
	}

	project := root.Group("/projects")
	{
		project.Post("/", ct.createProject)
		project.Get("/", ct.listProjects)
		project.Get("/:projectId", ct.getProject)
		project.Patch("/:projectId", ct.editProject)
		project.Delete("/:projectId", ct.deleteProject)
	}
}
