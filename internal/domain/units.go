package domain

import (
	"math"
	"strings"
	"unicode"
)

func SquaredMetresToSquaredFeet(squaredMetres int32) int32 {
	// 1 m^2 = 10.7639 ft^2
	return squaredMetres * 211 / 20
}

func MetresToFeet(metres int32) int32 {
	// 1 m = 3.28084 ft
	return metres * 840 / 256
}

func MphToKmph(mph int32) int32 {
	return mph * 1648 >> 10
}

// MphToDmps converts to decimetres per second.
func MphToDmps(mph int32) int32 {
	return mph * 73243 >> 14
}

// FilenameValid reports whether name contains only characters that are
// allowed in a file name on every supported platform.
func FilenameValid(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	return !strings.ContainsAny(name, `\/:?*"<>|`) && !strings.ContainsFunc(name, unicode.IsControl)
}

type signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// AddClamp returns value+delta saturated to the range of T.
func AddClamp[T signed](value, delta T) T {
	top := T(1)
	for top<<1 > 0 {
		top <<= 1
	}
	hi := top + (top - 1)
	lo := -hi - 1

	switch {
	case delta > 0 && value > hi-delta:
		return hi
	case delta < 0 && value < lo-delta:
		return lo
	}
	return value + delta
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b uint8, t float32) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(int(a) + int(float32(int(b)-int(a))*t))
}

func FLerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// SoftLight blends b over a using the soft light formula.
func SoftLight(a, b uint8) uint8 {
	fa := float64(a) / 255
	fb := float64(b) / 255
	var fr float64
	if fb < 0.5 {
		fr = 2*fa*fb + fa*fa*(1-2*fb)
	} else {
		fr = 2*fa*(1-fb) + math.Sqrt(fa)*(2*fb-1)
	}
	return uint8(math.Max(0, math.Min(1, fr)) * 255)
}

// StrLogicalCompare compares strings case-insensitively, treating runs of
// digits as numbers so "Coaster 2" sorts before "Coaster 10".
func StrLogicalCompare(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		ca, cb := ra[i], rb[j]
		if unicode.IsDigit(ca) && unicode.IsDigit(cb) {
			si := i
			for i < len(ra) && unicode.IsDigit(ra[i]) {
				i++
			}
			sj := j
			for j < len(rb) && unicode.IsDigit(rb[j]) {
				j++
			}
			na := strings.TrimLeft(string(ra[si:i]), "0")
			nb := strings.TrimLeft(string(rb[sj:j]), "0")
			if len(na) != len(nb) {
				if len(na) < len(nb) {
					return -1
				}
				return 1
			}
			if c := strings.Compare(na, nb); c != 0 {
				return c
			}
			continue
		}
		la, lb := unicode.ToLower(ca), unicode.ToLower(cb)
		if la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case len(ra)-i < len(rb)-j:
		return -1
	case len(ra)-i > len(rb)-j:
		return 1
	}
	return 0
}
