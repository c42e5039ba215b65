package queries

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type Sort struct {
	Field string    `json:"sortBy"`
	Order SortOrder `json:"sortOrder"`
}

// Clause renders an ORDER BY fragment. The field must resolve through the
// entity's column allow-list; anything else silently falls back, so no
// caller-supplied string ever reaches the statement.
func (s Sort) Clause(columns map[string]string, fallback string) string {
	column, ok := columns[s.Field]
	if !ok {
		column = fallback
	}

	order := SortDesc
	if s.Order == SortAsc {
		order = SortAsc
	}

	return column + " " + string(order)
}
