package catalog

import (
	"strings"

	"catalogkeeper/internal/models"
)

// Filter derives the visible subset of records for a free-text query and a
// category filter. A record matches the query if it is empty or a
// case-insensitive substring of the name or description; it matches the
// category if the filter is empty or equal. The result is a new slice in
// the original order; records is never modified.
func Filter(records []models.Product, query, category string) []models.Product {
	query = strings.ToLower(query)

	out := make([]models.Product, 0, len(records))
	for _, r := range records {
		if category != "" && r.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Name), query) &&
			!strings.Contains(strings.ToLower(r.Description), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}
