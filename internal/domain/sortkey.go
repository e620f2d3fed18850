package domain

import (
	"cmp"
	"fmt"
	"strings"
)

// SortKey names a statistic the catalogue can be ordered by.
type SortKey int

const (
	SortName SortKey = iota
	SortExcitement
	SortIntensity
	SortNausea
	SortMaxSpeed
	SortAverageSpeed
	SortHoles
	SortRideLength
	SortMaxPositiveVerticalG
	SortMaxNegativeVerticalG
	SortMaxLateralG
	SortTotalAirTime
	SortDrops
	SortHighestDropHeight
	SortSpaceRequired
	SortCost
)

type sortKeyName struct {
	slug  string
	label string
}

var sortKeyNames = map[SortKey]sortKeyName{
	SortName:                 {"name", "Name"},
	SortExcitement:           {"excitement", "Excitement"},
	SortIntensity:            {"intensity", "Intensity"},
	SortNausea:               {"nausea", "Nausea"},
	SortMaxSpeed:             {"max-speed", "Max. speed"},
	SortAverageSpeed:         {"average-speed", "Avg. speed"},
	SortHoles:                {"holes", "Holes"},
	SortRideLength:           {"ride-length", "Ride length"},
	SortMaxPositiveVerticalG: {"max-positive-vertical-g", "Max. +ve vert. G"},
	SortMaxNegativeVerticalG: {"max-negative-vertical-g", "Max. -ve vert. G"},
	SortMaxLateralG:          {"max-lateral-g", "Max. lateral G"},
	SortTotalAirTime:         {"air-time", "Air time"},
	SortDrops:                {"drops", "Drops"},
	SortHighestDropHeight:    {"drop-height", "Highest drop"},
	SortSpaceRequired:        {"space", "Space required"},
	SortCost:                 {"cost", "Cost"},
}

// String returns the slug used on the command line and in the API.
func (k SortKey) String() string {
	if n, ok := sortKeyNames[k]; ok {
		return n.slug
	}
	return fmt.Sprintf("sortkey(%d)", int(k))
}

// Label returns the human readable dropdown label.
func (k SortKey) Label() string {
	if n, ok := sortKeyNames[k]; ok {
		return n.label
	}
	return k.String()
}

// ParseSortKey converts a slug back to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range sortKeyNames {
		if n.slug == s {
			return k, nil
		}
	}
	return SortName, fmt.Errorf("unknown sort key: %q", s)
}

var categorySortKeys = map[SortCategory][]SortKey{
	CategoryShop:     {SortName, SortSpaceRequired},
	CategoryMiniGolf: {SortName, SortSpaceRequired, SortHoles},
	CategoryRollerCoaster: {
		SortName, SortExcitement, SortIntensity, SortNausea,
		SortMaxSpeed, SortAverageSpeed, SortRideLength,
		SortMaxPositiveVerticalG, SortMaxNegativeVerticalG, SortMaxLateralG,
		SortTotalAirTime, SortDrops, SortHighestDropHeight, SortSpaceRequired,
	},
	CategoryWater: {
		SortName, SortExcitement, SortIntensity, SortNausea,
		SortMaxSpeed, SortAverageSpeed, SortRideLength,
		SortDrops, SortHighestDropHeight, SortSpaceRequired,
	},
	CategoryTracked: {
		SortName, SortExcitement, SortIntensity, SortNausea,
		SortMaxSpeed, SortAverageSpeed, SortRideLength, SortSpaceRequired,
	},
	CategoryFlat: {SortName, SortExcitement, SortIntensity, SortNausea, SortSpaceRequired},
	CategoryDefault: {
		SortName, SortExcitement, SortIntensity, SortNausea,
		SortMaxSpeed, SortAverageSpeed, SortHoles, SortRideLength,
		SortMaxPositiveVerticalG, SortMaxNegativeVerticalG, SortMaxLateralG,
		SortTotalAirTime, SortDrops, SortHighestDropHeight, SortSpaceRequired, SortCost,
	},
}

// CategorySortKeys returns the ordered sort keys offered for a category.
// The returned slice is a copy.
func CategorySortKeys(c SortCategory) []SortKey {
	keys, ok := categorySortKeys[c]
	if !ok {
		keys = categorySortKeys[CategoryDefault]
	}
	return append([]SortKey(nil), keys...)
}

// SortValue is the comparable value extracted from a design for one key.
// Name keys fill Text, every other key fills Number.
type SortValue struct {
	Text   string
	Number int64
}

// Compare orders two values extracted for the same key.
func (v SortValue) Compare(o SortValue) int {
	if c := strings.Compare(v.Text, o.Text); c != 0 {
		return c
	}
	return cmp.Compare(v.Number, o.Number)
}

// ExtractSortValue returns the value a design is ordered by for key.
func ExtractSortValue(d *Design, key SortKey) SortValue {
	switch key {
	case SortName:
		return SortValue{Text: d.Name}
	case SortExcitement:
		return SortValue{Number: int64(d.Excitement)}
	case SortIntensity:
		return SortValue{Number: int64(d.Intensity)}
	case SortNausea:
		return SortValue{Number: int64(d.Nausea)}
	case SortMaxSpeed:
		return SortValue{Number: int64(d.MaxSpeed)}
	case SortAverageSpeed:
		return SortValue{Number: int64(d.AverageSpeed)}
	case SortHoles:
		return SortValue{Number: int64(d.Holes)}
	case SortRideLength:
		return SortValue{Number: int64(d.RideLength)}
	case SortMaxPositiveVerticalG:
		return SortValue{Number: int64(d.MaxPositiveVerticalG)}
	case SortMaxNegativeVerticalG:
		return SortValue{Number: int64(d.MaxNegativeVerticalG)}
	case SortMaxLateralG:
		return SortValue{Number: int64(d.MaxLateralG)}
	case SortTotalAirTime:
		return SortValue{Number: int64(d.TotalAirTime)}
	case SortDrops:
		return SortValue{Number: int64(d.DropCount())}
	case SortHighestDropHeight:
		return SortValue{Number: int64(d.HighestDropHeight)}
	case SortSpaceRequired:
		return SortValue{Number: int64(d.SpaceArea())}
	case SortCost:
		return SortValue{Number: int64(d.Cost)}
	default:
		return SortValue{Text: d.Name}
	}
}
