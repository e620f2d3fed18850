package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"tracklist/internal/application"
	"tracklist/internal/application/designlist"
	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

// DesignSummary is one row of a design listing
type DesignSummary struct {
	Name string
	Path string
	Cost int32 // Only set when costs were requested
}

// ListResult contains the designs of a ride selection in list order
type ListResult struct {
	Selection domain.RideSelection
	RideName  string
	SortKey   domain.SortKey
	Ascending bool
	Designs   []DesignSummary
	TotalCost int32 // Saturating sum of Designs' costs
}

// ListDesignsCommand lists designs the way the list window shows them:
// filtered by name and ordered by a sort key.
type ListDesignsCommand struct {
	repo  ports.DesignRepository
	rides domain.RideTypeTable
	log   logrus.FieldLogger

	Selection   domain.RideSelection
	Filter      string
	SortKey     string // Empty keeps name order
	Ascending   bool
	IncludeCost bool
}

// NewListDesignsCommand creates a new ListDesignsCommand
func NewListDesignsCommand(repo ports.DesignRepository, rides domain.RideTypeTable, log logrus.FieldLogger, sel domain.RideSelection) *ListDesignsCommand {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &ListDesignsCommand{repo: repo, rides: rides, log: log, Selection: sel}
}

// Validate checks that the sort key exists and is offered for the ride type
func (c *ListDesignsCommand) Validate() error {
	if c.SortKey == "" {
		return nil
	}
	key, err := domain.ParseSortKey(c.SortKey)
	if err != nil {
		return &application.ValidationError{Field: "sortKey", Message: err.Error()}
	}
	return application.ValidateSortKey(c.rides, c.Selection.Type, key)
}

// Execute runs the list command
func (c *ListDesignsCommand) Execute(ctx context.Context) (*ListResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ctl := designlist.New(c.repo, &sceneryShown{},
		designlist.WithManagerMode(true),
		designlist.WithRideTypes(c.rides),
		designlist.WithLogger(c.log),
	)
	if err := ctl.Open(c.Selection); err != nil {
		return nil, fmt.Errorf("failed to list designs: %w", err)
	}
	defer ctl.Close()

	if c.SortKey != "" || c.Ascending {
		key := domain.SortName
		if c.SortKey != "" {
			key, _ = domain.ParseSortKey(c.SortKey)
		}
		if err := ctl.SetSort(key, c.Ascending); err != nil {
			return nil, err
		}
	}
	ctl.SetFilter(c.Filter)

	result := &ListResult{
		Selection: ctl.Selection(),
		RideName:  ctl.RideName(),
		SortKey:   ctl.SortKey(),
		Ascending: ctl.Ascending(),
	}
	for _, row := range ctl.Rows() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s := DesignSummary{Name: row.Ref.Name, Path: row.Ref.Path}
		if c.IncludeCost {
			d, err := c.repo.LoadDesign(row.Ref.Path)
			if err != nil {
				c.log.WithError(err).WithField("path", row.Ref.Path).Warn("failed to load design for cost")
			} else {
				s.Cost = d.Cost
				result.TotalCost = domain.AddClamp(result.TotalCost, d.Cost)
			}
		}
		result.Designs = append(result.Designs, s)
	}
	return result, nil
}

// sceneryShown is a toggle private to one command run, so listing never
// touches the process-wide scenery setting.
type sceneryShown struct {
	off bool
}

func (s *sceneryShown) BuildWithoutScenery() bool      { return s.off }
func (s *sceneryShown) SetBuildWithoutScenery(on bool) { s.off = on }
