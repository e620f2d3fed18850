package domain

import (
	"testing"
)

func statValue(lines []StatLine, label string) (string, bool) {
	for _, l := range lines {
		if l.Label == label {
			return l.Value, true
		}
	}
	return "", false
}

func TestFormatStats_Coaster(t *testing.T) {
	table := DefaultRideTypes()
	d := &Design{
		RideType:             52,
		Excitement:           65,
		Intensity:            70,
		Nausea:               42,
		MaxSpeed:             40,
		AverageSpeed:         20,
		RideLength:           500,
		MaxPositiveVerticalG: 100,
		MaxNegativeVerticalG: -30,
		MaxLateralG:          50,
		TotalAirTime:         8,
		Drops:                0xC5, // 5 drops plus flag bits
		HighestDropHeight:    40,
		Inversions:           0x23,
		SpaceRequiredX:       10,
		SpaceRequiredY:       12,
		Cost:                 12500,
	}

	lines := FormatStats(d, table.Lookup(d.RideType), Metric)

	tests := []struct {
		label string
		want  string
	}{
		{"Excitement rating", "6.50"},
		{"Intensity rating", "7.00"},
		{"Nausea rating", "4.20"},
		{"Max. speed", "144 km/h"},
		{"Average speed", "72 km/h"},
		{"Ride length", "500 m"},
		{"Max. positive vertical G's", "32.00g"},
		{"Max. negative vertical G's", "-9.60g"},
		{"Max. lateral G's", "16.00g"},
		{"Total 'air' time", "2.00 secs"},
		{"Drops", "5"},
		{"Highest drop height", "30 m"},
		{"Inversions", "3"},
		{"Space required", "10 x 12 blocks"},
		{"Cost", "around $12,500"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := statValue(lines, tt.label)
			if !ok {
				t.Fatalf("missing %q line", tt.label)
			}
			if got != tt.want {
				t.Errorf("%s = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestFormatStats_Imperial(t *testing.T) {
	d := &Design{RideType: 52, MaxSpeed: 40, RideLength: 100, SpaceRequiredX: SpaceNotApplicable}
	lines := FormatStats(d, DefaultRideTypes().Lookup(52), Imperial)

	if got, _ := statValue(lines, "Max. speed"); got != "90 mph" {
		t.Errorf("Max. speed = %q, want %q", got, "90 mph")
	}
	if got, _ := statValue(lines, "Ride length"); got != "328 ft" {
		t.Errorf("Ride length = %q, want %q", got, "328 ft")
	}
}

func TestFormatStats_OptionalRows(t *testing.T) {
	table := DefaultRideTypes()

	t.Run("minigolf shows holes and no speed", func(t *testing.T) {
		d := &Design{RideType: RideTypeMiniGolf, Holes: 0xE9, Inversions: 2}
		lines := FormatStats(d, table.Lookup(d.RideType), Metric)
		if got, _ := statValue(lines, "Holes"); got != "9" {
			t.Errorf("Holes = %q, want 9", got)
		}
		if _, ok := statValue(lines, "Max. speed"); ok {
			t.Error("minigolf should not show speed")
		}
		if _, ok := statValue(lines, "Inversions"); ok {
			t.Error("minigolf should not show inversions")
		}
	})

	t.Run("maze skips speed and length", func(t *testing.T) {
		d := &Design{RideType: RideTypeMaze}
		lines := FormatStats(d, table.Lookup(d.RideType), Metric)
		if _, ok := statValue(lines, "Ride length"); ok {
			t.Error("maze should not show ride length")
		}
	})

	t.Run("no air time when zero", func(t *testing.T) {
		d := &Design{RideType: 52}
		lines := FormatStats(d, table.Lookup(d.RideType), Metric)
		if _, ok := statValue(lines, "Total 'air' time"); ok {
			t.Error("air time should be hidden when zero")
		}
		if _, ok := statValue(lines, "Cost"); ok {
			t.Error("cost should be hidden when zero")
		}
	})

	t.Run("space hidden when not applicable", func(t *testing.T) {
		d := &Design{RideType: 52, SpaceRequiredX: SpaceNotApplicable, SpaceRequiredY: 4}
		lines := FormatStats(d, table.Lookup(d.RideType), Metric)
		if _, ok := statValue(lines, "Space required"); ok {
			t.Error("space should be hidden for 0xFF width")
		}
	})

	t.Run("trackless ride shows ratings only", func(t *testing.T) {
		d := &Design{RideType: 99, SpaceRequiredX: SpaceNotApplicable}
		lines := FormatStats(d, table.Lookup(d.RideType), Metric)
		if len(lines) != 3 {
			t.Errorf("got %d lines, want 3", len(lines))
		}
	})
}
