package model

import (
	"math"

	"github.com/ChicagoDave/houseplanner/pkg/walls"
)

// Stats is a quantity takeoff for a model.
type Stats struct {
	ExteriorWalls  int     `json:"exterior_walls"`
	InteriorWalls  int     `json:"interior_walls"`
	Doors          int     `json:"doors"`
	Windows        int     `json:"windows"`
	RoofPlanes     int     `json:"roof_planes"`
	SiteElements   int     `json:"site_elements"`
	PlacedRooms    int     `json:"placed_rooms"`
	GrossFloorArea float64 `json:"gross_floor_area"` // sq ft, foundation excluded
	GlazingArea    float64 `json:"glazing_area"`     // sq ft of windows
	WallArea       float64 `json:"wall_area"`        // sq ft of exterior wall, openings removed
	RoofArea       float64 `json:"roof_area"`        // sloped sq ft
	RidgeElevation float64 `json:"ridge_elevation"`
}

// Stats summarizes the model's element counts and areas.
func (m *BuildingModel) Stats() Stats {
	var s Stats
	for _, w := range m.Walls {
		if w.IsExterior {
			s.ExteriorWalls++
			s.WallArea += w.Length() * w.Height
		} else {
			s.InteriorWalls++
		}
		for _, o := range w.Openings {
			area := o.Width * o.Height
			switch o.Type {
			case walls.OpeningDoor:
				s.Doors++
			case walls.OpeningWindow:
				s.Windows++
				if w.IsExterior {
					s.GlazingArea += area
				}
			}
			if w.IsExterior {
				s.WallArea -= area
			}
		}
	}

	for _, f := range m.Floors {
		if !f.IsFoundation {
			s.GrossFloorArea += f.Polygon.Area()
		}
	}

	s.RoofPlanes = len(m.RoofPlanes)
	s.RidgeElevation = math.Inf(-1)
	for _, p := range m.RoofPlanes {
		s.RoofArea += p.Area()
		for _, v := range p.Vertices {
			s.RidgeElevation = math.Max(s.RidgeElevation, v.Y)
		}
	}
	if len(m.RoofPlanes) == 0 {
		s.RidgeElevation = 0
	}

	s.SiteElements = len(m.SiteElements)
	for _, l := range m.Rooms {
		s.PlacedRooms += len(l.Rooms)
	}
	return s
}
