package commands

import (
	"context"
	"fmt"

	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

// SyncResult contains the result of an index sync
type SyncResult struct {
	Full  bool
	Stats *domain.SyncStats
}

// SyncIndexCommand brings the design index up to date. A full rebuild is
// done when requested or when the index needs one.
type SyncIndexCommand struct {
	index ports.DesignIndex
	Full  bool
}

// NewSyncIndexCommand creates a new SyncIndexCommand
func NewSyncIndexCommand(index ports.DesignIndex, full bool) *SyncIndexCommand {
	return &SyncIndexCommand{index: index, Full: full}
}

// Execute runs the sync command
func (c *SyncIndexCommand) Execute(ctx context.Context) (*SyncResult, error) {
	full := c.Full || c.index.NeedsFullRebuild()

	var (
		stats *domain.SyncStats
		err   error
	)
	if full {
		stats, err = c.index.SyncFull()
	} else {
		stats, err = c.index.SyncIncremental()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to sync index: %w", err)
	}
	return &SyncResult{Full: full, Stats: stats}, nil
}
