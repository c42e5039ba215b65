package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/almamun2b/portfolio-api/pkg/internal/services/queries"
)

func TestPaginationNormalize(t *testing.T) {
	cases := []struct {
		name      string
		in        queries.Pagination
		wantPage  int
		wantLimit int
	}{
		{"zero value gets defaults", queries.Pagination{}, 1, 10},
		{"negative page clamped", queries.Pagination{Page: -3, Limit: 5}, 1, 5},
		{"limit over cap clamped", queries.Pagination{Page: 2, Limit: 5000}, 2, 100},
		{"valid input untouched", queries.Pagination{Page: 4, Limit: 25}, 4, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := tc.in.Normalize()
			assert.Equal(t, tc.wantPage, out.Page)
			assert.Equal(t, tc.wantLimit, out.Limit)
		})
	}
}

func TestPaginationSkip(t *testing.T) {
	p := queries.Pagination{Page: 3, Limit: 10}.Normalize()
	assert.Equal(t, 20, p.Skip())

	first := queries.Pagination{}.Normalize()
	assert.Equal(t, 0, first.Skip())
}

func TestPaginationMeta(t *testing.T) {
	p := queries.Pagination{Page: 2, Limit: 10}.Normalize()
	meta := p.Meta(23)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.EqualValues(t, 23, meta.Total)
	assert.EqualValues(t, 3, meta.TotalPages)

	assert.EqualValues(t, 0, p.Meta(0).TotalPages)
	assert.EqualValues(t, 1, p.Meta(10).TotalPages)
}
