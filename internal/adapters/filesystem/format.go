package filesystem

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tracklist/internal/domain"
)

// Design file suffixes, longest first.
var designSuffixes = []string{".td.yaml.gz", ".td.yml.gz", ".td.yaml", ".td.yml"}

// DefaultPatterns match design files by base name.
var DefaultPatterns = []string{"*.td.yaml", "*.td.yml", "*.td.yaml.gz", "*.td.yml.gz"}

const (
	flagVehicleUnavailable = "vehicle_unavailable"
	flagSceneryUnavailable = "scenery_unavailable"
)

// header is the part of a design file needed to list it.
type header struct {
	RideType int    `yaml:"ride_type"`
	Vehicle  string `yaml:"vehicle"`
}

type fileRatings struct {
	Excitement int `yaml:"excitement"`
	Intensity  int `yaml:"intensity"`
	Nausea     int `yaml:"nausea"`
}

type fileStats struct {
	MaxSpeed             int `yaml:"max_speed"`
	AverageSpeed         int `yaml:"average_speed"`
	RideLength           int `yaml:"ride_length"`
	MaxPositiveVerticalG int `yaml:"max_positive_vertical_g"`
	MaxNegativeVerticalG int `yaml:"max_negative_vertical_g"`
	MaxLateralG          int `yaml:"max_lateral_g"`
	TotalAirTime         int `yaml:"total_air_time"`
	Drops                int `yaml:"drops"`
	HighestDropHeight    int `yaml:"highest_drop_height"`
	Inversions           int `yaml:"inversions"`
	Holes                int `yaml:"holes"`
}

type fileSpace struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// fileDesign is the on-disk layout of a design file.
type fileDesign struct {
	RideType int                 `yaml:"ride_type"`
	Vehicle  string              `yaml:"vehicle"`
	Ratings  fileRatings         `yaml:"ratings"`
	Stats    fileStats           `yaml:"stats"`
	Space    *fileSpace          `yaml:"space_required,omitempty"`
	Cost     int64               `yaml:"cost,omitempty"`
	Flags    []string            `yaml:"flags,omitempty"`
	Layout   []domain.TrackPoint `yaml:"layout,omitempty"`
	Scenery  []domain.TrackPoint `yaml:"scenery,omitempty"`
}

// DesignName returns the display name for a design file: its base name
// without the design suffix.
func DesignName(path string) string {
	base := filepath.Base(path)
	lower := strings.ToLower(base)
	for _, suffix := range designSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return base[:len(base)-len(suffix)]
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// designSuffix returns the suffix DesignName strips from path.
func designSuffix(path string) string {
	base := filepath.Base(path)
	return base[len(DesignName(path)):]
}

func readDesignFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return data, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func writeDesignFile(path string, data []byte) error {
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	return os.WriteFile(path, data, 0644)
}

func parseHeader(data []byte) (header, error) {
	var h header
	if err := yaml.Unmarshal(data, &h); err != nil {
		return h, fmt.Errorf("invalid design header: %w", err)
	}
	if h.RideType < 0 || h.RideType > math.MaxUint8 {
		return h, fmt.Errorf("ride_type out of range: %d", h.RideType)
	}
	return h, nil
}

// decodeDesign parses a design file. Out of range values are errors rather
// than being truncated.
func decodeDesign(name string, data []byte) (*domain.Design, error) {
	var f fileDesign
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid design: %w", err)
	}

	r := rangeChecker{}
	d := &domain.Design{
		Name:                 name,
		RideType:             domain.RideType(r.u8("ride_type", f.RideType)),
		Vehicle:              f.Vehicle,
		Excitement:           r.u8("ratings.excitement", f.Ratings.Excitement),
		Intensity:            r.u8("ratings.intensity", f.Ratings.Intensity),
		Nausea:               r.u8("ratings.nausea", f.Ratings.Nausea),
		MaxSpeed:             r.i8("stats.max_speed", f.Stats.MaxSpeed),
		AverageSpeed:         r.i8("stats.average_speed", f.Stats.AverageSpeed),
		RideLength:           r.u16("stats.ride_length", f.Stats.RideLength),
		MaxPositiveVerticalG: r.u8("stats.max_positive_vertical_g", f.Stats.MaxPositiveVerticalG),
		MaxNegativeVerticalG: r.i8("stats.max_negative_vertical_g", f.Stats.MaxNegativeVerticalG),
		MaxLateralG:          r.u8("stats.max_lateral_g", f.Stats.MaxLateralG),
		TotalAirTime:         r.u8("stats.total_air_time", f.Stats.TotalAirTime),
		Drops:                r.u8("stats.drops", f.Stats.Drops),
		HighestDropHeight:    r.u8("stats.highest_drop_height", f.Stats.HighestDropHeight),
		Inversions:           r.u8("stats.inversions", f.Stats.Inversions),
		Holes:                r.u8("stats.holes", f.Stats.Holes),
		SpaceRequiredX:       domain.SpaceNotApplicable,
		Layout:               f.Layout,
		Scenery:              f.Scenery,
	}
	if f.Space != nil {
		d.SpaceRequiredX = r.u8("space_required.x", f.Space.X)
		d.SpaceRequiredY = r.u8("space_required.y", f.Space.Y)
	}
	if f.Cost < math.MinInt32 || f.Cost > math.MaxInt32 {
		r.fail("cost", f.Cost)
	}
	d.Cost = int32(f.Cost)

	for _, flag := range f.Flags {
		switch flag {
		case flagVehicleUnavailable:
			d.Flags |= domain.FlagVehicleUnavailable
		case flagSceneryUnavailable:
			d.Flags |= domain.FlagSceneryUnavailable
		default:
			return nil, fmt.Errorf("unknown design flag: %q", flag)
		}
	}

	if r.err != nil {
		return nil, r.err
	}
	return d, nil
}

func encodeDesign(d *domain.Design) ([]byte, error) {
	f := fileDesign{
		RideType: int(d.RideType),
		Vehicle:  d.Vehicle,
		Ratings: fileRatings{
			Excitement: int(d.Excitement),
			Intensity:  int(d.Intensity),
			Nausea:     int(d.Nausea),
		},
		Stats: fileStats{
			MaxSpeed:             int(d.MaxSpeed),
			AverageSpeed:         int(d.AverageSpeed),
			RideLength:           int(d.RideLength),
			MaxPositiveVerticalG: int(d.MaxPositiveVerticalG),
			MaxNegativeVerticalG: int(d.MaxNegativeVerticalG),
			MaxLateralG:          int(d.MaxLateralG),
			TotalAirTime:         int(d.TotalAirTime),
			Drops:                int(d.Drops),
			HighestDropHeight:    int(d.HighestDropHeight),
			Inversions:           int(d.Inversions),
			Holes:                int(d.Holes),
		},
		Cost:    int64(d.Cost),
		Layout:  d.Layout,
		Scenery: d.Scenery,
	}
	if d.SpaceRequiredX != domain.SpaceNotApplicable {
		f.Space = &fileSpace{X: int(d.SpaceRequiredX), Y: int(d.SpaceRequiredY)}
	}
	if d.Has(domain.FlagVehicleUnavailable) {
		f.Flags = append(f.Flags, flagVehicleUnavailable)
	}
	if d.Has(domain.FlagSceneryUnavailable) {
		f.Flags = append(f.Flags, flagSceneryUnavailable)
	}
	return yaml.Marshal(&f)
}

// rangeChecker narrows ints and remembers the first value out of range.
type rangeChecker struct {
	err error
}

func (r *rangeChecker) fail(field string, v int64) {
	if r.err == nil {
		r.err = fmt.Errorf("%s out of range: %d", field, v)
	}
}

func (r *rangeChecker) u8(field string, v int) uint8 {
	if v < 0 || v > math.MaxUint8 {
		r.fail(field, int64(v))
	}
	return uint8(v)
}

func (r *rangeChecker) i8(field string, v int) int8 {
	if v < math.MinInt8 || v > math.MaxInt8 {
		r.fail(field, int64(v))
	}
	return int8(v)
}

func (r *rangeChecker) u16(field string, v int) uint16 {
	if v < 0 || v > math.MaxUint16 {
		r.fail(field, int64(v))
	}
	return uint16(v)
}
