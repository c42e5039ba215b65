package models

const (
	ProjectTypeFrontend  = "Frontend"
	ProjectTypeBackend   = "Backend"
	ProjectTypeFullstack = "Fullstack"
)

// ProjectTypes is the closed set of accepted project types.
var ProjectTypes = []string{ProjectTypeFrontend, ProjectTypeBackend, ProjectTypeFullstack}

type Technology struct {
	BaseModel

	Name     string    `json:"name" gorm:"uniqueIndex" validate:"required"`
	Projects []Project `json:"projects,omitempty" gorm:"many2many:project_technologies"`
}

type Project struct {
	BaseModel

	Title       string `json:"title" validate:"required,max=1024"`
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	LiveURL     string `json:"live_url"`
	RepoURL     string `json:"repo_url"`
	Type        string `json:"type" validate:"required,oneof=Frontend Backend Fullstack"`

	Technologies []Technology `json:"technologies" gorm:"many2many:project_technologies"`
}
