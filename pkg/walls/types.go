package walls

import (
	"github.com/ChicagoDave/houseplanner/pkg/geo"
	"github.com/ChicagoDave/houseplanner/pkg/layout"
)

// OpeningType distinguishes doors from windows.
type OpeningType string

const (
	OpeningDoor   OpeningType = "door"
	OpeningWindow OpeningType = "window"
)

// WallOpening is a cut-out in a wall. Position is normalized along the wall
// from Start (0) to End (1) and locates the opening's center. Sizes are feet.
type WallOpening struct {
	Type       OpeningType `json:"type"`
	Position   float64     `json:"position"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	SillHeight float64     `json:"sill_height"`
}

// Role determines a wall's thickness.
type Role string

const (
	RoleExterior   Role = "exterior"
	RoleInterior   Role = "interior"
	RoleFoundation Role = "foundation"
)

// Thickness returns the wall thickness in feet for the role.
func (r Role) Thickness() float64 {
	switch r {
	case RoleExterior:
		return layout.ExteriorWallThickness
	case RoleFoundation:
		return layout.FoundationWallThickness
	default:
		return layout.InteriorWallThickness
	}
}

// WallSegment is a straight wall on one story. Start and End are centerline
// points in plan; Elevation is the base of the wall.
type WallSegment struct {
	ID         string        `json:"id"`
	Start      geo.Point2D   `json:"start"`
	End        geo.Point2D   `json:"end"`
	Elevation  float64       `json:"elevation"`
	Height     float64       `json:"height"`
	Thickness  float64       `json:"thickness"`
	IsExterior bool          `json:"is_exterior"`
	Floor      int           `json:"floor"`
	Openings   []WallOpening `json:"openings"`
}

// Length returns the wall length in feet.
func (w WallSegment) Length() float64 {
	return w.Start.Distance(w.End)
}

// Top returns the elevation of the top of the wall.
func (w WallSegment) Top() float64 {
	return w.Elevation + w.Height
}

func newWall(id string, role Role, floor int, elevation, height float64, start, end geo.Point2D) WallSegment {
	return WallSegment{
		ID:         id,
		Start:      start,
		End:        end,
		Elevation:  elevation,
		Height:     height,
		Thickness:  role.Thickness(),
		IsExterior: role == RoleExterior,
		Floor:      floor,
		Openings:   []WallOpening{},
	}
}
