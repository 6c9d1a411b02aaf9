package layout

import (
	"math"

	"github.com/ChicagoDave/houseplanner/pkg/geo"
)

// Footprint is the rectangular outline of one story, anchored at the origin.
type Footprint struct {
	Width float64 `json:"width"` // X extent in feet
	Depth float64 `json:"depth"` // Z extent in feet
}

// ComputeFootprint derives the per-story footprint from total square footage
// using a fixed 1.5:1 width to depth ratio.
func ComputeFootprint(totalSqFt float64, stories int) Footprint {
	if stories < 1 {
		stories = 1
	}
	perStory := totalSqFt / float64(stories)
	depth := math.Sqrt(perStory / FootprintAspect)
	return Footprint{
		Width: perStory / depth,
		Depth: depth,
	}
}

// Area returns the footprint area in square feet.
func (f Footprint) Area() float64 {
	return f.Width * f.Depth
}

// Rect returns the footprint as a rectangle.
func (f Footprint) Rect() geo.Rectangle {
	return geo.Rectangle{W: f.Width, D: f.Depth}
}

// Polygon returns the footprint outline.
func (f Footprint) Polygon() geo.Polygon {
	return f.Rect().Polygon()
}
