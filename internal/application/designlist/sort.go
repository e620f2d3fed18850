package designlist

import (
	"cmp"
	"slices"

	"tracklist/internal/domain"
)

// LoadFunc loads the design behind a catalogue entry.
type LoadFunc func(ref domain.DesignRef) (*domain.Design, error)

type keyed struct {
	value domain.SortValue
	index int
}

// SortCatalogue orders catalogue by key. Each entry is loaded exactly once;
// entries that fail to load are left out of sorted and returned in failed.
//
// The direction follows the list window's convention: ascending=false puts
// the smallest value first and ascending=true the largest.
func SortCatalogue(catalogue []domain.DesignRef, key domain.SortKey, ascending bool, load LoadFunc) (sorted, failed []domain.DesignRef) {
	pairs := make([]keyed, 0, len(catalogue))
	for i, ref := range catalogue {
		design, err := load(ref)
		if err != nil || design == nil {
			failed = append(failed, ref)
			continue
		}
		pairs = append(pairs, keyed{value: domain.ExtractSortValue(design, key), index: i})
	}

	slices.SortFunc(pairs, func(a, b keyed) int {
		c := a.value.Compare(b.value)
		if c == 0 {
			ra, rb := catalogue[a.index], catalogue[b.index]
			c = cmp.Or(cmp.Compare(ra.Name, rb.Name), cmp.Compare(ra.Path, rb.Path), cmp.Compare(a.index, b.index))
		}
		if ascending {
			return -c
		}
		return c
	})

	sorted = make([]domain.DesignRef, len(pairs))
	for i, p := range pairs {
		sorted[i] = catalogue[p.index]
	}
	return sorted, failed
}
