package queries

import (
	"strconv"
	"strings"

	"github.com/almamun2b/portfolio-api/pkg/internal/models"
	"gorm.io/gorm"
)

// PostSortColumns is the allow-list of sortable post fields, keyed by the
// query-parameter spelling.
var PostSortColumns = map[string]string{
	"createdAt":  "posts.created_at",
	"updatedAt":  "posts.updated_at",
	"title":      "posts.title",
	"views":      "posts.views",
	"isFeatured": "posts.is_featured",
}

// PostFilter describes one post listing request. Every present predicate is
// ANDed; a zero filter matches everything.
type PostFilter struct {
	Search   string
	Featured *bool

	// Tags matches posts carrying at least one of the given tags. The project
	// listing deliberately uses all-of semantics instead; the two policies are
	// kept apart on purpose.
	Tags []string

	// Category takes a numeric id or a string matched against the category's
	// slug or display name.
	Category string

	Sort       Sort
	Pagination Pagination
}

func (f PostFilter) Apply(db *gorm.DB) *gorm.DB {
	tx := db.Model(&models.Post{})

	if probe := strings.TrimSpace(f.Search); len(probe) > 0 {
		like := "%" + strings.ToLower(probe) + "%"
		tx = tx.Where(
			db.Where("LOWER(posts.title) LIKE ?", like).
				Or("LOWER(posts.description) LIKE ?", like).
				Or("LOWER(posts.content) LIKE ?", like),
		)
	}

	if f.Featured != nil {
		tx = tx.Where("posts.is_featured = ?", *f.Featured)
	}

	if len(f.Tags) > 0 {
		tx = tx.Where(
			"EXISTS (SELECT 1 FROM post_tags pt JOIN tags t ON t.id = pt.tag_id WHERE pt.post_id = posts.id AND t.name IN ?)",
			f.Tags,
		)
	}

	if category := strings.TrimSpace(f.Category); len(category) > 0 {
		if id, err := strconv.Atoi(category); err == nil {
			tx = tx.Where("posts.category_id = ?", id)
		} else {
			tx = tx.Where(
				"posts.category_id IN (SELECT id FROM categories WHERE slug = ? OR name = ?)",
				category, category,
			)
		}
	}

	return tx
}

func (f PostFilter) OrderClause() string {
	return f.Sort.Clause(PostSortColumns, "posts.created_at")
}
