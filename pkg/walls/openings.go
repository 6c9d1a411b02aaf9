package walls

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ChicagoDave/houseplanner/pkg/plan"
)

// Opening sizes in feet.
const (
	EntryDoorWidth     = 3.0
	EntryDoorHeight    = 6.67
	EntryDoorPosition  = 0.4
	InteriorDoorWidth  = 2.67
	InteriorDoorHeight = 6.67
	SliderPosition     = 0.55
	DoorExclusionBand  = 0.08 // windows keep this far (normalized) from the entry door
	OpeningClearance   = 0.5  // minimum solid wall between openings
	VaultedCeiling     = 17.0
	MinCeilingHeight   = 7.0
	MaxCeilingHeight   = 30.0
	MaxWindowsPerWall  = 24
)

// WindowSpec is the glazing size for a style.
type WindowSpec struct {
	Width      float64
	Height     float64
	SillHeight float64
}

// WindowSpecFor returns window dimensions for a style. Modern styles get
// large glazing; everything else gets 3 x 4 ft windows on a 3 ft sill.
func WindowSpecFor(style plan.Style) WindowSpec {
	switch {
	case style == plan.StyleModern:
		return WindowSpec{Width: 6, Height: 7, SillHeight: 0.5}
	case style.LargeGlazing():
		return WindowSpec{Width: 5, Height: 6, SillHeight: 1}
	default:
		return WindowSpec{Width: 3, Height: 4, SillHeight: 3}
	}
}

// SliderWidth returns the rear slider width for a style.
func SliderWidth(style plan.Style) float64 {
	if style.LargeGlazing() {
		return 12
	}
	return 6
}

// openingSet accumulates openings on one wall and rejects any that would
// leave the wall or overlap an opening already placed.
type openingSet struct {
	length   float64
	openings []WallOpening
}

func newOpeningSet(length float64) *openingSet {
	return &openingSet{length: length, openings: []WallOpening{}}
}

// add places o if it fits. It reports whether the opening was accepted.
func (s *openingSet) add(o WallOpening) bool {
	if s.length <= 0 || o.Position < 0 || o.Position > 1 {
		return false
	}
	lo, hi := s.span(o)
	if lo < 0 || hi > s.length {
		return false
	}
	for _, other := range s.openings {
		olo, ohi := s.span(other)
		if lo < ohi+OpeningClearance && olo < hi+OpeningClearance {
			return false
		}
	}
	s.openings = append(s.openings, o)
	return true
}

// span returns the opening's extent along the wall in feet.
func (s *openingSet) span(o WallOpening) (float64, float64) {
	center := o.Position * s.length
	return center - o.Width/2, center + o.Width/2
}

// evenPositions returns n evenly spaced interior fractions of a wall.
func evenPositions(n int) []float64 {
	pos := make([]float64, n)
	for i := range pos {
		pos[i] = float64(i+1) / float64(n+1)
	}
	return pos
}

// windowCount returns the number of windows for a wall of the given length,
// one per spacing feet, between two and MaxWindowsPerWall.
func windowCount(length, spacing float64) int {
	n := math.Floor(length / spacing)
	if !(n < MaxWindowsPerWall) {
		return MaxWindowsPerWall
	}
	return max(2, int(n))
}

var ceilingNumber = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// ParseCeilingHeight reads a room's ceiling height. "vaulted" and "cathedral"
// map to 17 ft; otherwise the first number in the string is used if it is a
// plausible height. ok is false when fallback was returned for a non-empty
// string that could not be read.
func ParseCeilingHeight(s string, fallback float64) (height float64, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return fallback, true
	}
	if strings.Contains(s, "vaulted") || strings.Contains(s, "cathedral") {
		return VaultedCeiling, true
	}
	m := ceilingNumber.FindString(s)
	if m == "" {
		return fallback, false
	}
	h, err := strconv.ParseFloat(m, 64)
	if err != nil || h < MinCeilingHeight || h > MaxCeilingHeight {
		return fallback, false
	}
	return h, true
}
