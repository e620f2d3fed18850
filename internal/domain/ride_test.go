package domain

import (
	"slices"
	"testing"
)

func TestRideTypeTable_SortKeys(t *testing.T) {
	table := DefaultRideTypes()

	tests := []struct {
		name     string
		rideType RideType
		want     SortCategory
	}{
		{"junior coaster", 4, CategoryRollerCoaster},
		{"wooden wild mouse", 9, CategoryRollerCoaster},
		{"ghost train", 50, CategoryRollerCoaster},
		{"wooden coaster", 52, CategoryRollerCoaster},
		{"steel wild mouse", 54, CategoryRollerCoaster},
		{"mini coaster", 87, CategoryRollerCoaster},
		{"mine ride", 88, CategoryRollerCoaster},
		{"monorail", 6, CategoryTracked},
		{"car ride", 11, CategoryTracked},
		{"maze", 20, CategoryTracked},
		{"mini helicopters", 61, CategoryTracked},
		{"monorail cycles", 72, CategoryTracked},
		{"log flume", 23, CategoryWater},
		{"minigolf", 67, CategoryMiniGolf},
		{"unknown", 99, CategoryDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Lookup(tt.rideType).Category; got != tt.want {
				t.Errorf("Lookup(%d).Category = %v, want %v", tt.rideType, got, tt.want)
			}
			keys := table.SortKeys(tt.rideType)
			want := CategorySortKeys(tt.want)
			if len(keys) != len(want) {
				t.Errorf("SortKeys(%d) returned %d keys, want %d", tt.rideType, len(keys), len(want))
			}
		})
	}
}

func TestRideTypeTable_Normalize(t *testing.T) {
	table := DefaultRideTypes()

	t.Run("keeps vehicle for separately listed rides", func(t *testing.T) {
		got := table.Normalize(RideSelection{Type: 15, Vehicle: "arrow1"})
		if got.Vehicle != "arrow1" {
			t.Errorf("expected vehicle to be kept, got %q", got.Vehicle)
		}
	})

	t.Run("clears vehicle otherwise", func(t *testing.T) {
		got := table.Normalize(RideSelection{Type: 52, Vehicle: "wooden"})
		if got.Vehicle != "" {
			t.Errorf("expected vehicle to be cleared, got %q", got.Vehicle)
		}
	})

	t.Run("clears vehicle for out of range types", func(t *testing.T) {
		table := table.Clone()
		table[0x90] = RideTypeInfo{Flags: RideListVehiclesSeparately}
		got := table.Normalize(RideSelection{Type: 0x90, Vehicle: "x"})
		if got.Vehicle != "" {
			t.Errorf("expected vehicle to be cleared, got %q", got.Vehicle)
		}
	})
}

func TestParseSortCategory(t *testing.T) {
	for _, name := range CategoryNames() {
		c, err := ParseSortCategory(name)
		if err != nil {
			t.Fatalf("ParseSortCategory(%q): %v", name, err)
		}
		if c.String() != name {
			t.Errorf("round trip %q -> %q", name, c.String())
		}
	}
	if _, err := ParseSortCategory("carousel"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestRideTypeTable_Types(t *testing.T) {
	table := RideTypeTable{67: {}, 0: {}, 52: {}}
	if got := table.Types(); !slices.Equal(got, []RideType{0, 52, 67}) {
		t.Errorf("Types() = %v, want [0 52 67]", got)
	}
	if got := (RideTypeTable{}).Types(); len(got) != 0 {
		t.Errorf("Types() of empty table = %v", got)
	}
}
