package domain

import "time"

// IndexEntry is a cached design file header
type IndexEntry struct {
	Path     string   // Absolute path of the design file (primary key)
	Name     string   // File stem
	RideType RideType // Header ride type
	Vehicle  string   // Header vehicle entry name
	Mtime    int64    // Unix timestamp for incremental sync
	Checksum string   // sha256 of the file contents
}

// Ref returns the catalogue reference for the entry
func (e IndexEntry) Ref() DesignRef {
	return DesignRef{Name: e.Name, Path: e.Path}
}

// SyncStats holds statistics from a sync operation
type SyncStats struct {
	EntriesAdded   int
	EntriesUpdated int
	EntriesDeleted int
	FilesScanned   int
	Duration       time.Duration
}
