package model

import (
	"github.com/ChicagoDave/houseplanner/pkg/geo"
	"github.com/ChicagoDave/houseplanner/pkg/layout"
	"github.com/ChicagoDave/houseplanner/pkg/plan"
	"github.com/ChicagoDave/houseplanner/pkg/roof"
	"github.com/ChicagoDave/houseplanner/pkg/site"
	"github.com/ChicagoDave/houseplanner/pkg/walls"
)

// Foundation placement in feet.
const (
	FoundationElevation = -1.5
	FoundationPadding   = 0.25
	FoundationID        = "foundation"
)

// FloorSlab is a horizontal slab. Elevation is the top surface; the slab
// extends Thickness below it.
type FloorSlab struct {
	ID           string      `json:"id"`
	Polygon      geo.Polygon `json:"polygon"`
	Elevation    float64     `json:"elevation"`
	Thickness    float64     `json:"thickness"`
	Floor        int         `json:"floor"` // -1 for the foundation
	IsFoundation bool        `json:"is_foundation"`
}

// BoundingBox encloses every vertex of a model.
type BoundingBox struct {
	Width  float64  `json:"width"`
	Depth  float64  `json:"depth"`
	Height float64  `json:"height"`
	Min    geo.Vec3 `json:"min"`
	Max    geo.Vec3 `json:"max"`
}

// Metadata records the normalized inputs a model was built from.
type Metadata struct {
	Style              plan.Style       `json:"style"`
	Stories            int              `json:"stories"`
	TotalSquareFootage float64          `json:"total_square_footage"`
	RoofType           plan.RoofType    `json:"roof_type"`
	Pitch              float64          `json:"pitch"`
	Overhang           float64          `json:"overhang"`
	Footprint          layout.Footprint `json:"footprint"`
	GarageBay          bool             `json:"garage_bay"`
}

// BuildingModel is the complete generated building. It is never modified
// after Generate returns; a changed plan produces a new model.
type BuildingModel struct {
	Walls        []walls.WallSegment  `json:"walls"`
	Floors       []FloorSlab          `json:"floors"`
	RoofPlanes   []roof.Plane         `json:"roof_planes"`
	SiteElements []site.Element       `json:"site_elements"`
	Rooms        []layout.StoryLayout `json:"rooms"`
	BoundingBox  BoundingBox          `json:"bounding_box"`
	Metadata     Metadata             `json:"metadata"`
}

// ExteriorWalls returns the exterior walls of one floor.
func (m *BuildingModel) ExteriorWalls(floor int) []walls.WallSegment {
	var out []walls.WallSegment
	for _, w := range m.Walls {
		if w.IsExterior && w.Floor == floor {
			out = append(out, w)
		}
	}
	return out
}

// Foundation returns the foundation slab.
func (m *BuildingModel) Foundation() (FloorSlab, bool) {
	for _, f := range m.Floors {
		if f.IsFoundation {
			return f, true
		}
	}
	return FloorSlab{}, false
}
