package scene2d

import (
	"math"
	"time"

	"github.com/ChicagoDave/houseplanner/pkg/geo"
	"github.com/ChicagoDave/houseplanner/pkg/layout"
	"github.com/ChicagoDave/houseplanner/pkg/model"
	"github.com/ChicagoDave/houseplanner/pkg/roof"
	"github.com/ChicagoDave/houseplanner/pkg/walls"
)

// ridgeTolerance is how close two roof vertices' heights must be to the peak
// for the edge between them to count as a ridge.
const ridgeTolerance = 1e-6

// Assemble2D projects a building model onto the ground plane. Walls,
// openings and rooms are grouped by story; site elements, the foundation and
// the roof outline are drawn once.
func Assemble2D(m *model.BuildingModel) *Scene2D {
	s := &Scene2D{
		Metadata: assembleMetadata(m),
		Site:     assembleSite(m),
		Floors:   assembleFloors(m),
	}
	if slab, ok := m.Foundation(); ok {
		s.Foundation = polygonToCoords(slab.Polygon)
	}
	s.RoofOutline, s.Ridges = assembleRoof(m.RoofPlanes)
	return s
}

func assembleMetadata(m *model.BuildingModel) Metadata {
	return Metadata{
		Style:       string(m.Metadata.Style),
		Stories:     m.Metadata.Stories,
		Width:       m.Metadata.Footprint.Width,
		Depth:       m.Metadata.Footprint.Depth,
		Extent:      [2]float64{m.BoundingBox.Min.X, m.BoundingBox.Min.Z},
		ExtentMax:   [2]float64{m.BoundingBox.Max.X, m.BoundingBox.Max.Z},
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func assembleSite(m *model.BuildingModel) []Site2D {
	result := make([]Site2D, 0, len(m.SiteElements))
	for _, e := range m.SiteElements {
		result = append(result, Site2D{
			ID:      e.ID,
			Type:    string(e.Type),
			Polygon: polygonToCoords(e.Polygon),
		})
	}
	return result
}

func assembleFloors(m *model.BuildingModel) []Floor2D {
	var floors []Floor2D
	index := make(map[int]int)
	for _, slab := range m.Floors {
		if slab.IsFoundation {
			continue
		}
		index[slab.Floor] = len(floors)
		floors = append(floors, Floor2D{
			Index:     slab.Floor,
			Elevation: slab.Elevation,
			Outline:   polygonToCoords(slab.Polygon),
			Walls:     []Wall2D{},
			Openings:  []Opening2D{},
			Rooms:     []Room2D{},
		})
	}

	for _, w := range m.Walls {
		i, ok := index[w.Floor]
		if !ok {
			continue
		}
		f := &floors[i]
		f.Walls = append(f.Walls, Wall2D{
			ID:        w.ID,
			Start:     pointToCoords(w.Start),
			End:       pointToCoords(w.End),
			Thickness: w.Thickness,
			Exterior:  w.IsExterior,
		})
		for _, o := range w.Openings {
			f.Openings = append(f.Openings, assembleOpening(w, o))
		}
	}

	for _, sl := range m.Rooms {
		i, ok := index[sl.Story]
		if !ok {
			continue
		}
		for _, r := range sl.Rooms {
			floors[i].Rooms = append(floors[i].Rooms, assembleRoom(r))
		}
	}
	return floors
}

// assembleOpening returns the gap an opening cuts along its wall centerline.
func assembleOpening(w walls.WallSegment, o walls.WallOpening) Opening2D {
	half := 0.0
	if l := w.Length(); l > 0 {
		half = o.Width / 2 / l
	}
	return Opening2D{
		WallID: w.ID,
		Type:   string(o.Type),
		Start:  pointToCoords(w.Start.Lerp(w.End, o.Position-half)),
		End:    pointToCoords(w.Start.Lerp(w.End, o.Position+half)),
		Width:  o.Width,
	}
}

func assembleRoom(r layout.PlacedRoom) Room2D {
	rect := r.Rect()
	return Room2D{
		Name:     r.Room.Name,
		Category: string(r.Category),
		Polygon:  polygonToCoords(rect.Polygon()),
		Label:    [2]float64{r.X + r.W/2, r.Z + r.D/2},
		AreaSqFt: r.W * r.D,
	}
}

// assembleRoof returns the plan outline of the roof and its ridge lines.
func assembleRoof(planes []roof.Plane) ([][2]float64, []Line2D) {
	if len(planes) == 0 {
		return nil, nil
	}
	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	peak := math.Inf(-1)
	for _, p := range planes {
		for _, v := range p.Vertices {
			minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
			minZ, maxZ = math.Min(minZ, v.Z), math.Max(maxZ, v.Z)
			peak = math.Max(peak, v.Y)
		}
	}
	outline := polygonToCoords(geo.Rect(minX, minZ, maxX-minX, maxZ-minZ))

	var ridges []Line2D
	seen := make(map[Line2D]bool)
	for _, p := range planes {
		n := len(p.Vertices)
		if n < 3 || isLevel(p, peak) {
			continue
		}
		for i := range p.Vertices {
			a, b := p.Vertices[i], p.Vertices[(i+1)%n]
			if math.Abs(a.Y-peak) > ridgeTolerance || math.Abs(b.Y-peak) > ridgeTolerance {
				continue
			}
			if a.X == b.X && a.Z == b.Z {
				continue
			}
			line := Line2D{Start: pointToCoords(a.Plan()), End: pointToCoords(b.Plan())}
			rev := Line2D{Start: line.End, End: line.Start}
			if seen[line] || seen[rev] {
				continue
			}
			seen[line] = true
			ridges = append(ridges, line)
		}
	}
	return outline, ridges
}

// isLevel reports whether every vertex of p sits at the peak, as on a flat
// roof or a mansard cap.
func isLevel(p roof.Plane, peak float64) bool {
	for _, v := range p.Vertices {
		if math.Abs(v.Y-peak) > ridgeTolerance {
			return false
		}
	}
	return true
}

func polygonToCoords(poly geo.Polygon) [][2]float64 {
	coords := make([][2]float64, len(poly.Vertices))
	for i, v := range poly.Vertices {
		coords[i] = pointToCoords(v)
	}
	return coords
}

func pointToCoords(p geo.Point2D) [2]float64 {
	return [2]float64{p.X, p.Z}
}
