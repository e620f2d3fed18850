package commands

import (
	"context"
	"fmt"

	"tracklist/internal/application"
	"tracklist/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedPath string
	Message     string
}

// DeleteDesignCommand deletes a design file
type DeleteDesignCommand struct {
	manager ports.DesignManager
	Path    string
}

// NewDeleteDesignCommand creates a new DeleteDesignCommand
func NewDeleteDesignCommand(manager ports.DesignManager, path string) *DeleteDesignCommand {
	return &DeleteDesignCommand{
		manager: manager,
		Path:    path,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteDesignCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the delete command
func (c *DeleteDesignCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.manager.Delete(c.Path); err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", c.Path, err)
	}

	return &DeleteResult{
		DeletedPath: c.Path,
		Message:     fmt.Sprintf("Deleted %s", c.Path),
	}, nil
}
