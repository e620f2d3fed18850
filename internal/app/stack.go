// Package app wires the design storage used by the tracklist binaries.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"tracklist/internal/adapters/filesystem"
	"tracklist/internal/adapters/sqlite"
	"tracklist/internal/adapters/watcher"
	"tracklist/internal/application/commands"
	"tracklist/internal/config"
	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

// Stack is the design storage built from a Config: the design directories,
// optionally fronted by the SQLite index.
type Stack struct {
	Files  *filesystem.Repository
	Index  *sqlite.Index // nil when the index is disabled
	Repo   sqlite.DesignStore
	Rides  domain.RideTypeTable
	Format domain.MeasurementFormat

	log logrus.FieldLogger
}

// Open builds the stack. When the index is enabled it is opened and brought
// up to date before Open returns; a failing sync is logged and the stale
// index is still used.
func Open(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*Stack, error) {
	files, err := filesystem.NewRepository(cfg.Designs.Dirs, cfg.Designs.Patterns, log)
	if err != nil {
		return nil, err
	}

	s := &Stack{
		Files:  files,
		Repo:   files,
		Rides:  cfg.RideTypeTable(),
		Format: cfg.MeasurementFormat(),
		log:    log,
	}
	if !cfg.Index.Enabled {
		return s, nil
	}

	idx := sqlite.NewIndex(files, log)
	if err := idx.Open(cfg.Index.Path, files.Dirs()); err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	s.Index = idx
	s.Repo = sqlite.NewIndexedRepository(files, idx, log)

	if _, err := s.Sync(ctx, false); err != nil {
		log.WithError(err).Warn("initial index sync failed")
	}
	return s, nil
}

// DesignIndex returns the index as a port, or nil when it is disabled.
func (s *Stack) DesignIndex() ports.DesignIndex {
	if s.Index == nil {
		return nil
	}
	return s.Index
}

// Sync brings the index up to date. Without an index it returns ErrNoIndex.
func (s *Stack) Sync(ctx context.Context, full bool) (*commands.SyncResult, error) {
	if s.Index == nil {
		return nil, ErrNoIndex
	}
	result, err := commands.NewSyncIndexCommand(s.Index, full).Execute(ctx)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"full":     result.Full,
		"scanned":  result.Stats.FilesScanned,
		"added":    result.Stats.EntriesAdded,
		"updated":  result.Stats.EntriesUpdated,
		"deleted":  result.Stats.EntriesDeleted,
		"duration": result.Stats.Duration,
	}).Debug("index synced")
	return result, nil
}

// Watch blocks until ctx is cancelled, calling cb with each batch of changed
// design files.
func (s *Stack) Watch(ctx context.Context, cb func(paths []string)) error {
	return watcher.Watch(ctx, s.Files.Dirs(), s.Files.Match, s.log, cb)
}

// Close releases the index database.
func (s *Stack) Close() error {
	if s.Index == nil {
		return nil
	}
	return s.Index.Close()
}

// ErrNoIndex is returned by Sync when the index is disabled.
var ErrNoIndex = errors.New("design index is disabled")
