package queries

import (
	"strings"

	"github.com/almamun2b/portfolio-api/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

var ProjectSortColumns = map[string]string{
	"createdAt": "projects.created_at",
	"updatedAt": "projects.updated_at",
	"title":     "projects.title",
	"type":      "projects.type",
}

// ProjectFilter describes one project listing request.
type ProjectFilter struct {
	Search string
	Type   string

	// Technologies matches projects carrying every one of the given names,
	// unlike the any-of post tag filter.
	Technologies []string

	Sort       Sort
	Pagination Pagination
}

func (f ProjectFilter) Apply(db *gorm.DB) *gorm.DB {
	tx := db.Model(&models.Project{})

	if probe := strings.TrimSpace(f.Search); len(probe) > 0 {
		like := "%" + strings.ToLower(probe) + "%"
		cond := db.Where("LOWER(projects.title) LIKE ?", like).
			Or("LOWER(projects.description) LIKE ?", like).
			Or("LOWER(projects.content) LIKE ?", like).
			Or(
				"EXISTS (SELECT 1 FROM project_technologies pt JOIN technologies t ON t.id = pt.technology_id WHERE pt.project_id = projects.id AND LOWER(t.name) LIKE ?)",
				like,
			)

		if matches := matchingProjectTypes(probe); len(matches) > 0 {
			cond = cond.Or("projects.type IN ?", matches)
		}

		tx = tx.Where(cond)
	}

	if len(f.Type) > 0 {
		tx = tx.Where("projects.type = ?", f.Type)
	}

	if len(f.Technologies) > 0 {
		tx = tx.Where(
			"(SELECT COUNT(DISTINCT t.id) FROM project_technologies pt JOIN technologies t ON t.id = pt.technology_id WHERE pt.project_id = projects.id AND t.name IN ?) = ?",
			f.Technologies, len(f.Technologies),
		)
	}

	return tx
}

func (f ProjectFilter) OrderClause() string {
	return f.Sort.Clause(ProjectSortColumns, "projects.created_at")
}

func matchingProjectTypes(probe string) []string {
	probe = strings.ToLower(probe)
	return lo.Filter(models.ProjectTypes, func(item string, index int) bool {
		return strings.Contains(strings.ToLower(item), probe)
	})
}
