package sqlite

import (
	"github.com/sirupsen/logrus"

	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

// DesignStore is the full set of design file operations the indexed
// repository wraps.
type DesignStore interface {
	ports.DesignRepository
	ports.PreviewRenderer
	ports.DesignManager
}

var (
	_ ports.DesignRepository = (*IndexedRepository)(nil)
	_ ports.PreviewRenderer  = (*IndexedRepository)(nil)
	_ ports.DesignManager    = (*IndexedRepository)(nil)
)

// IndexedRepository answers ListDesigns from the index and delegates
// everything else to the underlying store, keeping the index in step with
// renames and deletes.
type IndexedRepository struct {
	store DesignStore
	index ports.DesignIndex
	log   logrus.FieldLogger
}

// NewIndexedRepository wraps store with index
func NewIndexedRepository(store DesignStore, index ports.DesignIndex, log logrus.FieldLogger) *IndexedRepository {
	return &IndexedRepository{store: store, index: index, log: log}
}

// ListDesigns lists from the index. If the index query fails the store is
// scanned instead.
func (r *IndexedRepository) ListDesigns(sel domain.RideSelection) ([]domain.DesignRef, error) {
	entries, err := r.index.ListEntries(sel)
	if err != nil {
		r.log.WithError(err).Warn("index query failed, scanning design directories")
		return r.store.ListDesigns(sel)
	}

	refs := make([]domain.DesignRef, 0, len(entries))
	for _, e := range entries {
		refs = append(refs, e.Ref())
	}
	domain.SortRefs(refs)
	return refs, nil
}

func (r *IndexedRepository) LoadDesign(path string) (*domain.Design, error) {
	return r.store.LoadDesign(path)
}

func (r *IndexedRepository) DrawPreview(d *domain.Design, opts domain.PreviewOptions, pixels []byte) error {
	return r.store.DrawPreview(d, opts, pixels)
}

// Rename renames the file, then moves its index entry
func (r *IndexedRepository) Rename(path, newName string) (domain.DesignRef, error) {
	ref, err := r.store.Rename(path, newName)
	if err != nil {
		return ref, err
	}

	r.updateIndex(func(tx ports.IndexTx) error {
		return tx.RenameEntry(path, ref.Path, ref.Name)
	})
	return ref, nil
}

// Delete removes the file, then its index entry
func (r *IndexedRepository) Delete(path string) error {
	if err := r.store.Delete(path); err != nil {
		return err
	}
	r.updateIndex(func(tx ports.IndexTx) error {
		return tx.DeleteEntry(path)
	})
	return nil
}

// updateIndex applies fn in a transaction. Failures only leave the index
// stale until the next sync, so they are logged rather than returned.
func (r *IndexedRepository) updateIndex(fn func(ports.IndexTx) error) {
	tx, err := r.index.BeginTx()
	if err != nil {
		r.log.WithError(err).Warn("failed to update index")
		return
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		r.log.WithError(err).Warn("failed to update index")
		return
	}
	if err := tx.Commit(); err != nil {
		r.log.WithError(err).Warn("failed to update index")
	}
}
