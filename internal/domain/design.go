package domain

import (
	"slices"
	"strings"
)

// DesignRef identifies a design file without loading it.
type DesignRef struct {
	Name string // Display name (file stem)
	Path string // Full path to the design file
}

// SortRefs orders refs by name, treating digit runs as numbers.
func SortRefs(refs []DesignRef) {
	slices.SortStableFunc(refs, func(a, b DesignRef) int {
		if c := StrLogicalCompare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
}

// DesignFlags are capability flags stored alongside a design.
type DesignFlags uint8

const (
	FlagVehicleUnavailable DesignFlags = 1 << iota
	FlagSceneryUnavailable
)

// Bit masks applied to packed design fields.
const (
	DropsMask      = 0x3F // high bits of the drops byte carry auxiliary flags
	HolesMask      = 0x1F
	InversionsMask = 0x1F

	// SpaceNotApplicable marks designs that have no footprint (e.g. mazes with no bounds).
	SpaceNotApplicable = 0xFF
)

// TrackPoint is one node of a design's layout, in tile units.
type TrackPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

// Design is the parsed content of a design file.
type Design struct {
	Name     string
	RideType RideType
	Vehicle  string

	// Ratings are stored as tenths (65 = 6.50 once multiplied by 10 for display).
	Excitement uint8
	Intensity  uint8
	Nausea     uint8

	MaxSpeed             int8
	AverageSpeed         int8
	RideLength           uint16
	MaxPositiveVerticalG uint8
	MaxNegativeVerticalG int8
	MaxLateralG          uint8
	TotalAirTime         uint8
	Drops                uint8
	HighestDropHeight    uint8
	Inversions           uint8
	Holes                uint8
	SpaceRequiredX       uint8
	SpaceRequiredY       uint8
	Cost                 int32

	Flags   DesignFlags
	Layout  []TrackPoint
	Scenery []TrackPoint
}

// Has reports whether all of the given flags are set.
func (d *Design) Has(f DesignFlags) bool {
	return d.Flags&f == f
}

// DropCount returns the number of drops with the auxiliary bits masked off.
func (d *Design) DropCount() uint8 {
	return d.Drops & DropsMask
}

// HoleCount returns the number of minigolf holes.
func (d *Design) HoleCount() uint8 {
	return d.Holes & HolesMask
}

// InversionCount returns the number of inversions.
func (d *Design) InversionCount() uint8 {
	return d.Inversions & InversionsMask
}

// SpaceArea returns the footprint area in tiles. Both sides are widened
// before multiplying so 255x255 does not wrap.
func (d *Design) SpaceArea() uint32 {
	return uint32(d.SpaceRequiredX) * uint32(d.SpaceRequiredY)
}

// Preview buffer geometry. A preview holds one image per quarter turn.
const (
	PreviewWidth     = 370
	PreviewHeight    = 217
	PreviewImageSize = PreviewWidth * PreviewHeight
	PreviewRotations = 4
	PreviewSize      = PreviewRotations * PreviewImageSize
)

// PreviewOptions controls how a design is rasterised into a preview buffer.
type PreviewOptions struct {
	Scenery bool // Draw the design's scenery items
}
