package domain

import (
	"fmt"
	"strconv"
)

// MeasurementFormat selects the unit system used for display.
type MeasurementFormat int

const (
	Metric MeasurementFormat = iota
	Imperial
)

// ParseMeasurementFormat accepts "metric" or "imperial".
func ParseMeasurementFormat(s string) (MeasurementFormat, error) {
	switch s {
	case "", "metric":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	default:
		return Metric, fmt.Errorf("unknown measurement format: %q", s)
	}
}

// StatLine is one labelled row of a design's statistics block.
type StatLine struct {
	Label string
	Value string
}

// FormatStats builds the statistics block shown next to a design preview.
// Which rows appear depends on the ride type's capabilities.
func FormatStats(d *Design, info RideTypeInfo, format MeasurementFormat) []StatLine {
	lines := []StatLine{
		{"Excitement rating", fixed2(int64(d.Excitement) * 10)},
		{"Intensity rating", fixed2(int64(d.Intensity) * 10)},
		{"Nausea rating", fixed2(int64(d.Nausea) * 10)},
	}

	if info.Has(RideHasTrack) {
		if d.RideType != RideTypeMaze {
			if d.RideType == RideTypeMiniGolf {
				lines = append(lines, StatLine{"Holes", strconv.Itoa(int(d.HoleCount()))})
			} else {
				lines = append(lines,
					StatLine{"Max. speed", formatSpeed(displaySpeed(d.MaxSpeed), format)},
					StatLine{"Average speed", formatSpeed(displaySpeed(d.AverageSpeed), format)},
				)
			}
			lines = append(lines, StatLine{"Ride length", formatLength(int32(d.RideLength), format)})
		}

		if info.Has(RideHasGForces) {
			lines = append(lines,
				StatLine{"Max. positive vertical G's", fixed2(int64(d.MaxPositiveVerticalG)*32) + "g"},
				StatLine{"Max. negative vertical G's", fixed2(int64(d.MaxNegativeVerticalG)*32) + "g"},
				StatLine{"Max. lateral G's", fixed2(int64(d.MaxLateralG)*32) + "g"},
			)
			if d.TotalAirTime != 0 {
				lines = append(lines, StatLine{"Total 'air' time", fixed2(int64(d.TotalAirTime)*25) + " secs"})
			}
		}

		if info.Has(RideHasDrops) {
			lines = append(lines,
				StatLine{"Drops", strconv.Itoa(int(d.DropCount()))},
				StatLine{"Highest drop height", formatLength(int32(d.HighestDropHeight)*3/4, format)},
			)
		}

		if d.RideType != RideTypeMiniGolf {
			if inv := d.InversionCount(); inv != 0 {
				lines = append(lines, StatLine{"Inversions", strconv.Itoa(int(inv))})
			}
		}
	}

	if d.SpaceRequiredX != SpaceNotApplicable {
		lines = append(lines, StatLine{"Space required", fmt.Sprintf("%d x %d blocks", d.SpaceRequiredX, d.SpaceRequiredY)})
	}

	if d.Cost != 0 {
		lines = append(lines, StatLine{"Cost", "around " + formatMoney(int64(d.Cost))})
	}

	return lines
}

// displaySpeed converts the stored speed to whole mph.
func displaySpeed(v int8) int32 {
	return ((int32(v) << 16) * 9) >> 18
}

func formatSpeed(mph int32, format MeasurementFormat) string {
	if format == Imperial {
		return fmt.Sprintf("%d mph", mph)
	}
	return fmt.Sprintf("%d km/h", MphToKmph(mph))
}

func formatLength(metres int32, format MeasurementFormat) string {
	if format == Imperial {
		return fmt.Sprintf("%d ft", MetresToFeet(metres))
	}
	return fmt.Sprintf("%d m", metres)
}

// fixed2 renders a value stored in hundredths with two decimals.
func fixed2(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func formatMoney(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + "$" + s
}
