package designlist

import (
	"strings"

	"tracklist/internal/domain"
)

// ApplyFilter returns the catalogue indices whose names contain query,
// ignoring case. Indices keep catalogue order. An empty query matches
// every entry.
func ApplyFilter(catalogue []domain.DesignRef, query string) []int {
	indices := make([]int, 0, len(catalogue))
	if query == "" {
		for i := range catalogue {
			indices = append(indices, i)
		}
		return indices
	}

	needle := strings.ToUpper(query)
	for i, ref := range catalogue {
		if strings.Contains(strings.ToUpper(ref.Name), needle) {
			indices = append(indices, i)
		}
	}
	return indices
}
