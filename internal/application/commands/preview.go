package commands

import (
	"context"
	"fmt"

	"tracklist/internal/application"
	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

// PreviewResult holds a rendered preview buffer (all rotations)
type PreviewResult struct {
	Design   *domain.Design
	Rotation int
	Pixels   []byte
}

// PreviewCommand renders a design's preview outside the list window
type PreviewCommand struct {
	repo     ports.DesignRepository
	renderer ports.PreviewRenderer

	Path     string
	Rotation int
	Scenery  bool
}

// NewPreviewCommand creates a new PreviewCommand
func NewPreviewCommand(repo ports.DesignRepository, renderer ports.PreviewRenderer, path string) *PreviewCommand {
	return &PreviewCommand{repo: repo, renderer: renderer, Path: path, Scenery: true}
}

// Validate checks the path and rotation
func (c *PreviewCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	if c.Rotation < 0 || c.Rotation >= domain.PreviewRotations {
		return &application.ValidationError{
			Field:   "rotation",
			Message: fmt.Sprintf("rotation must be between 0 and %d", domain.PreviewRotations-1),
		}
	}
	if c.renderer == nil {
		return fmt.Errorf("%w: no preview renderer", application.ErrInvalidOperation)
	}
	return nil
}

// Execute runs the preview command
func (c *PreviewCommand) Execute(ctx context.Context) (*PreviewResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	d, err := loadDesign(c.repo, c.Path)
	if err != nil {
		return nil, err
	}

	pixels := make([]byte, domain.PreviewSize)
	if err := c.renderer.DrawPreview(d, domain.PreviewOptions{Scenery: c.Scenery}, pixels); err != nil {
		return nil, fmt.Errorf("failed to draw preview: %w", err)
	}
	return &PreviewResult{Design: d, Rotation: c.Rotation, Pixels: pixels}, nil
}
