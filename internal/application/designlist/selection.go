package designlist

import (
	"github.com/sirupsen/logrus"

	"tracklist/internal/application"
	"tracklist/internal/domain"
)

// ActionKind is what selecting a row asks the UI shell to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionBuildCustom
	ActionPlace
	ActionManage
)

func (k ActionKind) String() string {
	switch k {
	case ActionBuildCustom:
		return "build-custom"
	case ActionPlace:
		return "place"
	case ActionManage:
		return "manage"
	default:
		return "none"
	}
}

// Action is the result of selecting a row.
type Action struct {
	Kind      ActionKind
	Selection domain.RideSelection
	Ref       domain.DesignRef
	Design    *domain.Design

	// AlternativeVehicle is set when the design will be built with a
	// different vehicle because its own is unavailable.
	AlternativeVehicle bool
}

// Preview is the cached design for the highlighted row.
type Preview struct {
	Ref      domain.DesignRef
	Design   *domain.Design
	Rotation int
	Pixels   []byte // One rotation, domain.PreviewImageSize palette indices
	Stats    []domain.StatLine
	Warnings []string
}

// Highlight moves the highlight to row. Moving to a row backed by another
// design drops the cached preview; the new one is loaded on the next Preview.
func (c *Controller) Highlight(row int) {
	if row < 0 || row >= c.RowCount() || row == c.highlighted {
		return
	}
	c.highlighted = row
	if idx, ok := c.catalogueIndex(row); !ok || idx != c.cacheIndex {
		c.invalidatePreview()
	}
}

// Select activates row. Row 0 outside manager mode starts a custom design
// without touching the catalogue. Rows out of range give ActionNone. A design
// that cannot be loaded gives ActionNone and an *application.LoadError.
func (c *Controller) Select(row int) (Action, error) {
	if !c.manager && row == 0 {
		return Action{Kind: ActionBuildCustom, Selection: c.selection}, nil
	}

	idx, ok := c.catalogueIndex(row)
	if !ok {
		return Action{}, nil
	}
	c.Highlight(row)

	if err := c.ensureLoaded(idx); err != nil {
		return Action{}, err
	}

	design := c.cached
	if design.Has(domain.FlagSceneryUnavailable) {
		c.scenery.SetBuildWithoutScenery(true)
	}

	action := Action{
		Ref:       c.catalogue[idx],
		Design:    design,
		Selection: c.selection,
	}
	if c.manager {
		action.Kind = ActionManage
	} else {
		action.Kind = ActionPlace
		action.AlternativeVehicle = design.Has(domain.FlagVehicleUnavailable)
	}

	c.log.WithFields(logrus.Fields{
		"path":   action.Ref.Path,
		"action": action.Kind.String(),
	}).Info("design selected")
	return action, nil
}

// ToggleScenery flips the global "build without scenery" switch and drops
// the cached preview, which depends on it.
func (c *Controller) ToggleScenery() {
	c.scenery.SetBuildWithoutScenery(!c.scenery.BuildWithoutScenery())
	c.invalidatePreview()
}

// Rotate turns the preview a quarter turn.
func (c *Controller) Rotate() {
	c.rotation = (c.rotation + 1) % domain.PreviewRotations
}

// Preview returns the preview for the highlighted row, loading it if needed.
// It returns nil when no design row is highlighted, and nil plus the load
// error when the design cannot be loaded.
func (c *Controller) Preview() (*Preview, error) {
	idx, ok := c.catalogueIndex(c.highlighted)
	if !ok {
		return nil, nil
	}
	if err := c.ensureLoaded(idx); err != nil {
		return nil, err
	}

	withScenery := !c.scenery.BuildWithoutScenery()
	if withScenery != c.pixelsScenery {
		c.draw(withScenery)
	}

	var pixels []byte
	if len(c.pixels) == domain.PreviewSize {
		off := c.rotation * domain.PreviewImageSize
		pixels = c.pixels[off : off+domain.PreviewImageSize]
	}

	return &Preview{
		Ref:      c.catalogue[idx],
		Design:   c.cached,
		Rotation: c.rotation,
		Pixels:   pixels,
		Stats:    c.Stats(),
		Warnings: c.Warnings(),
	}, nil
}

// CachedIndex returns the catalogue index of the cached design, or -1.
func (c *Controller) CachedIndex() int {
	return c.cacheIndex
}

func (c *Controller) ensureLoaded(idx int) error {
	if c.cached != nil && c.cacheIndex == idx {
		return nil
	}
	c.invalidatePreview()

	ref := c.catalogue[idx]
	design, err := c.repo.LoadDesign(ref.Path)
	if err != nil {
		c.log.WithError(err).WithField("path", ref.Path).Warn("failed to load design")
		return &application.LoadError{Path: ref.Path, Err: err}
	}

	c.cached = design
	c.cacheIndex = idx
	c.draw(!c.scenery.BuildWithoutScenery())
	return nil
}

func (c *Controller) draw(withScenery bool) {
	c.pixelsScenery = withScenery
	if c.renderer == nil || c.cached == nil {
		return
	}
	if len(c.pixels) != domain.PreviewSize {
		c.pixels = make([]byte, domain.PreviewSize)
	}
	if err := c.renderer.DrawPreview(c.cached, domain.PreviewOptions{Scenery: withScenery}, c.pixels); err != nil {
		c.log.WithError(err).WithField("path", c.catalogue[c.cacheIndex].Path).Warn("failed to draw preview")
		clear(c.pixels)
	}
}

func (c *Controller) invalidatePreview() {
	c.cached = nil
	c.cacheIndex = unloaded
}

// catalogueIndex maps an absolute row to a catalogue index. The synthetic
// row and rows out of range report false.
func (c *Controller) catalogueIndex(row int) (int, bool) {
	if !c.manager {
		row--
	}
	if row < 0 || row >= len(c.filtered) {
		return 0, false
	}
	return c.filtered[row], true
}
