package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tracklist/internal/application"
	"tracklist/internal/application/designlist"
	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

// DesignDetails is a design with its formatted statistics
type DesignDetails struct {
	Ref      domain.DesignRef
	Design   *domain.Design
	RideName string
	Stats    []domain.StatLine
	Warnings []string
}

// ShowDesignCommand loads one design and formats its statistics block
type ShowDesignCommand struct {
	repo   ports.DesignRepository
	rides  domain.RideTypeTable
	format domain.MeasurementFormat

	Path string
}

// NewShowDesignCommand creates a new ShowDesignCommand
func NewShowDesignCommand(repo ports.DesignRepository, rides domain.RideTypeTable, format domain.MeasurementFormat, path string) *ShowDesignCommand {
	return &ShowDesignCommand{repo: repo, rides: rides, format: format, Path: path}
}

// Validate checks that a path was given
func (c *ShowDesignCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the show command
func (c *ShowDesignCommand) Execute(ctx context.Context) (*DesignDetails, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	d, err := loadDesign(c.repo, c.Path)
	if err != nil {
		return nil, err
	}

	info := c.rides.Lookup(d.RideType)
	return &DesignDetails{
		Ref:      domain.DesignRef{Name: d.Name, Path: c.Path},
		Design:   d,
		RideName: info.Name,
		Stats:    domain.FormatStats(d, info, c.format),
		Warnings: designlist.DesignWarnings(d, false, false),
	}, nil
}

// loadDesign loads path, mapping a missing file to ErrNotFound and any
// other failure to a LoadError.
func loadDesign(repo ports.DesignRepository, path string) (*domain.Design, error) {
	d, err := repo.LoadDesign(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", application.ErrNotFound, path)
	}
	if err != nil {
		return nil, &application.LoadError{Path: path, Err: err}
	}
	return d, nil
}

// SortKeysCommand lists the sort keys offered for a ride type
type SortKeysCommand struct {
	rides domain.RideTypeTable

	RideType domain.RideType
}

// NewSortKeysCommand creates a new SortKeysCommand
func NewSortKeysCommand(rides domain.RideTypeTable, rideType domain.RideType) *SortKeysCommand {
	return &SortKeysCommand{rides: rides, RideType: rideType}
}

// Execute runs the sort keys command
func (c *SortKeysCommand) Execute(ctx context.Context) ([]domain.SortKey, error) {
	return c.rides.SortKeys(c.RideType), nil
}
