package designlist

import (
	"errors"
	"fmt"

	"tracklist/internal/domain"
)

var errBrokenDesign = errors.New("broken design")

// fakeRepo serves designs from memory and records every load.
type fakeRepo struct {
	refs    []domain.DesignRef
	designs map[string]*domain.Design
	listErr error

	loads []string
	draws []domain.PreviewOptions

	// onLoad runs before each load, with the path being loaded.
	onLoad func(path string)
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{designs: map[string]*domain.Design{}}
}

// add registers a design. A nil design makes loads of path fail.
func (r *fakeRepo) add(name string, d *domain.Design) domain.DesignRef {
	ref := domain.DesignRef{Name: name, Path: fmt.Sprintf("/designs/%s.td.yaml", name)}
	r.refs = append(r.refs, ref)
	r.designs[ref.Path] = d
	return ref
}

func (r *fakeRepo) ListDesigns(sel domain.RideSelection) ([]domain.DesignRef, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]domain.DesignRef(nil), r.refs...), nil
}

func (r *fakeRepo) LoadDesign(path string) (*domain.Design, error) {
	if r.onLoad != nil {
		r.onLoad(path)
	}
	r.loads = append(r.loads, path)
	d, ok := r.designs[path]
	if !ok || d == nil {
		return nil, errBrokenDesign
	}
	return d, nil
}

func (r *fakeRepo) DrawPreview(d *domain.Design, opts domain.PreviewOptions, pixels []byte) error {
	r.draws = append(r.draws, opts)
	for i := range pixels {
		pixels[i] = byte(len(d.Name))
	}
	return nil
}

func (r *fakeRepo) loadCount(path string) int {
	n := 0
	for _, p := range r.loads {
		if p == path {
			n++
		}
	}
	return n
}

type fakeToggle struct {
	value  bool
	writes int
}

func (t *fakeToggle) BuildWithoutScenery() bool { return t.value }

func (t *fakeToggle) SetBuildWithoutScenery(v bool) {
	t.value = v
	t.writes++
}

func coaster(name string, excitement uint8) *domain.Design {
	return &domain.Design{Name: name, RideType: 52, Excitement: excitement, SpaceRequiredX: 4, SpaceRequiredY: 4}
}

func names(refs []domain.DesignRef) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Name
	}
	return out
}
