// Package designlist implements the track design list: the catalogue of
// designs for a ride selection, its text filter, sort order, highlighted
// row and the single cached preview.
//
// A Controller is driven by a UI shell and is not safe for concurrent use.
package designlist

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"tracklist/internal/application"
	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

const (
	noSelection = -1
	unloaded    = -1

	// Rotation shown when the list is opened.
	defaultRotation = 2
)

// Controller owns the state of one design list window.
type Controller struct {
	repo      ports.DesignRepository
	renderer  ports.PreviewRenderer
	scenery   ports.SceneryToggle
	rides     domain.RideTypeTable
	format    domain.MeasurementFormat
	manager   bool
	noScenery bool
	log       logrus.FieldLogger

	selection   domain.RideSelection
	catalogue   []domain.DesignRef
	filter      string
	filtered    []int
	sortKey     domain.SortKey
	ascending   bool
	highlighted int

	cacheIndex    int
	cached        *domain.Design
	pixels        []byte
	pixelsScenery bool
	rotation      int
}

// Option configures a Controller.
type Option func(*Controller)

// WithManagerMode makes selection manage designs instead of placing them.
// Manager mode has no synthetic "build custom design" row.
func WithManagerMode(manager bool) Option {
	return func(c *Controller) { c.manager = manager }
}

// WithoutScenery makes Open start with "build without scenery" on instead
// of resetting it to off.
func WithoutScenery(on bool) Option {
	return func(c *Controller) { c.noScenery = on }
}

// WithRideTypes replaces the default ride type table.
func WithRideTypes(table domain.RideTypeTable) Option {
	return func(c *Controller) { c.rides = table }
}

// WithRenderer sets the preview renderer. By default the repository is
// used when it implements ports.PreviewRenderer.
func WithRenderer(r ports.PreviewRenderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithMeasurementFormat selects the units used by Stats.
func WithMeasurementFormat(f domain.MeasurementFormat) Option {
	return func(c *Controller) { c.format = f }
}

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = log }
}

// New creates a closed Controller. Call Open to bind a ride selection.
func New(repo ports.DesignRepository, scenery ports.SceneryToggle, opts ...Option) *Controller {
	c := &Controller{
		repo:        repo,
		scenery:     scenery,
		rides:       domain.DefaultRideTypes(),
		highlighted: noSelection,
		cacheIndex:  unloaded,
		rotation:    defaultRotation,
	}
	if r, ok := repo.(ports.PreviewRenderer); ok {
		c.renderer = r
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		c.log = discard
	}
	return c
}

// Open binds the controller to a ride selection and resets the window
// defaults: empty filter, name sort, scenery shown unless WithoutScenery
// was given, first design highlighted.
func (c *Controller) Open(sel domain.RideSelection) error {
	c.filter = ""
	c.sortKey = domain.SortName
	c.ascending = false
	c.rotation = defaultRotation
	c.pixels = make([]byte, domain.PreviewSize)
	c.scenery.SetBuildWithoutScenery(c.noScenery)

	if err := c.Load(sel); err != nil {
		return err
	}

	c.highlighted = 0
	if len(c.catalogue) != 0 && !c.manager {
		c.highlighted = 1
	}
	c.clampHighlight()
	return nil
}

// Close releases the catalogue and the cached preview.
func (c *Controller) Close() {
	c.catalogue = nil
	c.filtered = nil
	c.pixels = nil
	c.highlighted = noSelection
	c.invalidatePreview()
}

// Load replaces the catalogue with the designs for sel. A selection with no
// designs gives an empty catalogue. The filter text is kept and re-applied.
func (c *Controller) Load(sel domain.RideSelection) error {
	c.selection = c.rides.Normalize(sel)
	c.catalogue = nil
	c.invalidatePreview()

	refs, err := c.repo.ListDesigns(c.selection)
	if err != nil {
		c.refilter()
		return fmt.Errorf("failed to list designs: %w", err)
	}
	c.catalogue = refs
	c.refilter()

	c.log.WithFields(logrus.Fields{
		"ride_type": c.selection.Type,
		"vehicle":   c.selection.Vehicle,
		"count":     len(refs),
	}).Debug("design list loaded")
	return nil
}

// Reload re-reads the catalogue for the current selection and moves the
// highlight back to the first row.
func (c *Controller) Reload() error {
	err := c.Load(c.selection)
	c.highlighted = 0
	c.clampHighlight()
	return err
}

// SetFilter changes the filter text. Setting the current text again is a no-op.
func (c *Controller) SetFilter(text string) {
	if text == c.filter {
		return
	}
	c.filter = text
	c.refilter()
}

// ClearFilter removes the filter while keeping the highlighted design
// highlighted at its unfiltered position.
func (c *Controller) ClearFilter() {
	if c.manager {
		if c.highlighted >= 0 && c.highlighted < len(c.filtered) {
			c.highlighted = c.filtered[c.highlighted]
		} else {
			c.highlighted = noSelection
		}
	} else if c.highlighted > 0 {
		if c.highlighted-1 < len(c.filtered) {
			c.highlighted = c.filtered[c.highlighted-1] + 1
		} else {
			c.highlighted = noSelection
		}
	}

	c.filter = ""
	c.refilter()
}

// SelectSortKey sorts by the key at position i of SortKeys. Positions
// outside the list, including -1 for a dismissed dropdown, are ignored.
func (c *Controller) SelectSortKey(i int) {
	keys := c.SortKeys()
	if i < 0 || i >= len(keys) {
		return
	}
	c.sortKey = keys[i]
	c.sort()
}

// SetSortKey sorts by key. It fails with application.ErrSortKeyNotOffered
// when the current ride type does not offer key.
func (c *Controller) SetSortKey(key domain.SortKey) error {
	return c.SetSort(key, c.ascending)
}

// SetSort sets the key and direction together and sorts once.
func (c *Controller) SetSort(key domain.SortKey, ascending bool) error {
	if err := application.ValidateSortKey(c.rides, c.selection.Type, key); err != nil {
		return err
	}
	c.sortKey = key
	c.ascending = ascending
	c.sort()
	return nil
}

// ToggleSortDirection flips the sort direction and re-sorts.
func (c *Controller) ToggleSortDirection() {
	c.ascending = !c.ascending
	c.sort()
}

func (c *Controller) sort() {
	sorted, failed := SortCatalogue(c.catalogue, c.sortKey, c.ascending, func(ref domain.DesignRef) (*domain.Design, error) {
		return c.repo.LoadDesign(ref.Path)
	})
	for _, ref := range failed {
		c.log.WithField("path", ref.Path).Warn("design dropped from sort: failed to load")
	}

	c.catalogue = sorted
	c.invalidatePreview()
	c.refilter()

	c.log.WithFields(logrus.Fields{
		"key":       c.sortKey.String(),
		"ascending": c.ascending,
		"count":     len(sorted),
		"dropped":   len(failed),
	}).Debug("design list sorted")
}

func (c *Controller) refilter() {
	c.filtered = ApplyFilter(c.catalogue, c.filter)
	c.clampHighlight()
}

func (c *Controller) clampHighlight() {
	if c.highlighted < 0 || c.highlighted >= c.RowCount() {
		c.highlighted = noSelection
	}
}
