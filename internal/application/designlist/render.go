package designlist

import (
	"tracklist/internal/domain"
)

// Display strings used by the list window.
const (
	BuildCustomLabel       = "Build a custom design"
	NoDesignsMessage       = "No track designs of this type"
	VehicleUnavailableText = "Vehicle design unavailable"
	SceneryUnavailableText = "Design includes scenery which is unavailable"
	AlternativeVehicleText = "This design will be built with an alternative vehicle type"
	SortArrowDown          = "▼"
	SortArrowUp            = "▲"
)

// Row is one painted list row.
type Row struct {
	Text        string
	Highlighted bool
	Custom      bool             // The synthetic "build custom design" row
	Ref         domain.DesignRef // Zero for the custom row
}

// RowCount returns the number of list rows, including the custom row.
func (c *Controller) RowCount() int {
	n := len(c.filtered)
	if !c.manager {
		n++
	}
	return n
}

// RowText returns the text shown for row, or "" when row is out of range.
func (c *Controller) RowText(row int) string {
	if !c.manager && row == 0 {
		return BuildCustomLabel
	}
	idx, ok := c.catalogueIndex(row)
	if !ok {
		return ""
	}
	return c.catalogue[idx].Name
}

// IsHighlighted reports whether row is the highlighted row.
func (c *Controller) IsHighlighted(row int) bool {
	return row >= 0 && row == c.highlighted
}

// Rows returns every list row in display order.
func (c *Controller) Rows() []Row {
	rows := make([]Row, 0, c.RowCount())
	for row := 0; row < c.RowCount(); row++ {
		r := Row{Text: c.RowText(row), Highlighted: c.IsHighlighted(row)}
		if idx, ok := c.catalogueIndex(row); ok {
			r.Ref = c.catalogue[idx]
		} else {
			r.Custom = true
		}
		rows = append(rows, r)
	}
	return rows
}

// Highlighted returns the highlighted row, or -1.
func (c *Controller) Highlighted() int {
	return c.highlighted
}

// HighlightedRef returns the design behind the highlighted row.
func (c *Controller) HighlightedRef() (domain.DesignRef, bool) {
	idx, ok := c.catalogueIndex(c.highlighted)
	if !ok {
		return domain.DesignRef{}, false
	}
	return c.catalogue[idx], true
}

// Empty reports whether the window should show NoDesignsMessage instead
// of rows. Outside manager mode the custom row is always present.
func (c *Controller) Empty() bool {
	return c.manager && len(c.catalogue) == 0
}

// Manager reports whether the controller runs in manager mode.
func (c *Controller) Manager() bool {
	return c.manager
}

// Title returns the window title.
func (c *Controller) Title() string {
	if c.manager {
		return "Track Designs"
	}
	return "Select Design"
}

// RideName returns the display name of the bound ride type.
func (c *Controller) RideName() string {
	return c.rides.Lookup(c.selection.Type).Name
}

// Selection returns the bound ride selection.
func (c *Controller) Selection() domain.RideSelection {
	return c.selection
}

// Filter returns the filter text.
func (c *Controller) Filter() string {
	return c.filter
}

// Catalogue returns a copy of the catalogue in its current order.
func (c *Controller) Catalogue() []domain.DesignRef {
	return append([]domain.DesignRef(nil), c.catalogue...)
}

// FilteredIndices returns a copy of the filtered catalogue indices.
func (c *Controller) FilteredIndices() []int {
	return append([]int(nil), c.filtered...)
}

// SortKeys returns the sort keys offered for the bound ride type, in
// dropdown order.
func (c *Controller) SortKeys() []domain.SortKey {
	return c.rides.SortKeys(c.selection.Type)
}

// SortKey returns the current sort key.
func (c *Controller) SortKey() domain.SortKey {
	return c.sortKey
}

// SortKeyIndex returns the dropdown position of the current sort key, or -1.
func (c *Controller) SortKeyIndex() int {
	for i, k := range c.SortKeys() {
		if k == c.sortKey {
			return i
		}
	}
	return -1
}

// Ascending returns the sort direction flag.
func (c *Controller) Ascending() bool {
	return c.ascending
}

// SortArrow returns the label of the direction button.
func (c *Controller) SortArrow() string {
	if c.ascending {
		return SortArrowDown
	}
	return SortArrowUp
}

// Rotation returns the preview rotation, 0 to 3.
func (c *Controller) Rotation() int {
	return c.rotation
}

// BuildWithoutScenery returns the global scenery switch.
func (c *Controller) BuildWithoutScenery() bool {
	return c.scenery.BuildWithoutScenery()
}

// Stats returns the statistics block of the cached preview, or nil.
func (c *Controller) Stats() []domain.StatLine {
	if c.cached == nil {
		return nil
	}
	return domain.FormatStats(c.cached, c.rides.Lookup(c.cached.RideType), c.format)
}

// Warnings returns the advisory lines for the cached preview.
func (c *Controller) Warnings() []string {
	if c.cached == nil {
		return nil
	}
	return DesignWarnings(c.cached, c.manager, c.scenery.BuildWithoutScenery())
}

// DesignWarnings returns the advisory lines shown under a design's preview.
// The vehicle warning is not shown in manager mode, and the scenery warning
// is not shown once scenery is switched off.
func DesignWarnings(d *domain.Design, manager, withoutScenery bool) []string {
	var warnings []string
	if d.Has(domain.FlagVehicleUnavailable) && !manager {
		warnings = append(warnings, VehicleUnavailableText)
	}
	if d.Has(domain.FlagSceneryUnavailable) && !withoutScenery {
		warnings = append(warnings, SceneryUnavailableText)
	}
	return warnings
}
