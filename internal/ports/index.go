package ports

import "tracklist/internal/domain"

// DesignIndex provides cached access to design file headers.
// Lookups by ride selection are answered from the database instead of
// opening every file.
type DesignIndex interface {
	// Lifecycle
	Open(dbPath string, dirs []string) error
	Close() error

	// Sync operations
	NeedsFullRebuild() bool
	SyncIncremental() (*domain.SyncStats, error)
	SyncFull() (*domain.SyncStats, error)

	// Queries
	GetEntry(path string) (*domain.IndexEntry, error)
	ListEntries(sel domain.RideSelection) ([]domain.IndexEntry, error)

	// Batch updates (for rename/delete operations)
	BeginTx() (IndexTx, error)
}

// IndexTx represents a transaction for atomic cache updates
type IndexTx interface {
	UpsertEntry(entry *domain.IndexEntry) error
	DeleteEntry(path string) error
	RenameEntry(oldPath, newPath, newName string) error

	Commit() error
	Rollback() error
}
