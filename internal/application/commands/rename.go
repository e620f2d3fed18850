package commands

import (
	"context"
	"fmt"
	"strings"

	"tracklist/internal/application"
	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	OriginalPath string
	Ref          domain.DesignRef
	Message      string
}

// RenameDesignCommand renames a design file
type RenameDesignCommand struct {
	manager ports.DesignManager
	Path    string
	NewName string
}

// NewRenameDesignCommand creates a new RenameDesignCommand
func NewRenameDesignCommand(manager ports.DesignManager, path, newName string) *RenameDesignCommand {
	return &RenameDesignCommand{
		manager: manager,
		Path:    path,
		NewName: newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameDesignCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	return application.ValidateDesignName("newName", strings.TrimSpace(c.NewName))
}

// Execute runs the rename command
func (c *RenameDesignCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ref, err := c.manager.Rename(c.Path, strings.TrimSpace(c.NewName))
	if err != nil {
		return nil, fmt.Errorf("failed to rename: %w", err)
	}

	return &RenameResult{
		OriginalPath: c.Path,
		Ref:          ref,
		Message:      fmt.Sprintf("Renamed to %s", ref.Name),
	}, nil
}
