package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/almamun2b/portfolio-api/pkg/internal/services/queries"
)

func TestSortClause(t *testing.T) {
	cases := []struct {
		name string
		sort queries.Sort
		want string
	}{
		{"allow-listed field", queries.Sort{Field: "views", Order: queries.SortAsc}, "posts.views asc"},
		{"default order is desc", queries.Sort{Field: "title"}, "posts.title desc"},
		{"garbage order falls back to desc", queries.Sort{Field: "title", Order: "sideways"}, "posts.title desc"},
		{"unknown field falls back", queries.Sort{Field: "dropTable", Order: queries.SortAsc}, "posts.created_at asc"},
		{"empty sort", queries.Sort{}, "posts.created_at desc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.sort.Clause(queries.PostSortColumns, "posts.created_at"))
		})
	}
}

func TestProjectOrderClause(t *testing.T) {
	f := queries.ProjectFilter{Sort: queries.Sort{Field: "type", Order: queries.SortAsc}}
	assert.Equal(t, "projects.type asc", f.OrderClause())

	assert.Equal(t, "projects.created_at desc", queries.ProjectFilter{}.OrderClause())
}
