package walls

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/houseplanner/pkg/geo"
	"github.com/ChicagoDave/houseplanner/pkg/layout"
	"github.com/ChicagoDave/houseplanner/pkg/plan"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

// Elevation names the four exterior walls.
type Elevation string

const (
	ElevationFront Elevation = "front" // south, z = depth
	ElevationBack  Elevation = "back"  // north, z = 0
	ElevationLeft  Elevation = "left"  // west, x = 0
	ElevationRight Elevation = "right" // east, x = width
)

// Story is everything the wall generator needs for one floor.
type Story struct {
	Footprint layout.Footprint
	Index     int     // 0-based floor index
	Height    float64 // default wall height
	Style     plan.Style
	Rooms     []layout.PlacedRoom
}

// Generate builds the exterior and interior walls of one story.
func Generate(s Story) (exterior, interior []WallSegment, report *validation.Report) {
	report = validation.NewReport()
	if s.Height <= 0 {
		s.Height = layout.StoryHeight
	}
	exterior = Exterior(s)
	interior = Interior(s, report)
	report.AddInfo(validation.Result{
		Level:   validation.LevelGeometry,
		Message: fmt.Sprintf("story %d: %d exterior and %d interior walls", s.Index, len(exterior), len(interior)),
	})
	return exterior, interior, report
}

// Exterior returns the four perimeter walls of a story, in the order front,
// back, left, right. The ground floor front carries the entry door and the
// ground floor back carries a slider.
func Exterior(s Story) []WallSegment {
	w, d := s.Footprint.Width, s.Footprint.Depth
	base := float64(s.Index) * layout.FloorToFloor
	ground := s.Index == 0
	win := WindowSpecFor(s.Style)

	edges := []struct {
		elev       Elevation
		start, end geo.Point2D
		spacing    float64
	}{
		{ElevationFront, geo.Pt(0, d), geo.Pt(w, d), 12},
		{ElevationBack, geo.Pt(0, 0), geo.Pt(w, 0), 10},
		{ElevationLeft, geo.Pt(0, 0), geo.Pt(0, d), 12},
		{ElevationRight, geo.Pt(w, 0), geo.Pt(w, d), 12},
	}

	walls := make([]WallSegment, 0, len(edges))
	for _, e := range edges {
		wall := newWall(fmt.Sprintf("f%d-ext-%s", s.Index, e.elev), RoleExterior, s.Index, base, s.Height, e.start, e.end)
		set := newOpeningSet(wall.Length())

		doorPos := math.NaN()
		if ground {
			switch e.elev {
			case ElevationFront:
				doorPos = EntryDoorPosition
				set.add(WallOpening{
					Type:     OpeningDoor,
					Position: EntryDoorPosition,
					Width:    EntryDoorWidth,
					Height:   EntryDoorHeight,
				})
			case ElevationBack:
				set.add(WallOpening{
					Type:     OpeningDoor,
					Position: SliderPosition,
					Width:    SliderWidth(s.Style),
					Height:   math.Min(s.Height-1, 8),
				})
			}
		}

		for _, pos := range evenPositions(windowCount(wall.Length(), e.spacing)) {
			if math.Abs(pos-doorPos) < DoorExclusionBand {
				continue
			}
			set.add(WallOpening{
				Type:       OpeningWindow,
				Position:   pos,
				Width:      win.Width,
				Height:     win.Height,
				SillHeight: win.SillHeight,
			})
		}

		wall.Openings = set.openings
		walls = append(walls, wall)
	}
	return walls
}

// Interior returns partition walls derived from the packed rooms. Each room
// gets a wall along its right edge and, unless it backs onto the front
// elevation, one along its bottom edge. Walls sit centered in the gap the
// packer leaves between rooms and each carries one door at mid-length.
func Interior(s Story, report *validation.Report) []WallSegment {
	base := float64(s.Index) * layout.FloorToFloor
	frontLimit := s.Footprint.Depth - layout.ExteriorWallThickness/2 - layout.InteriorWallThickness
	offset := layout.InteriorWallThickness / 2

	walls := make([]WallSegment, 0, 2*len(s.Rooms))
	for _, r := range s.Rooms {
		height, ok := ParseCeilingHeight(r.Room.CeilingHeight, s.Height)
		if !ok && report != nil {
			report.AddWarning(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     fmt.Sprintf("room %q: unreadable ceiling height, using %.1f ft", r.Room.Name, s.Height),
				PlanPath:    fmt.Sprintf("rooms[%d].ceiling_height", r.Index),
				ActualValue: r.Room.CeilingHeight,
				Expected:    fmt.Sprintf("%.0f-%.0f ft, vaulted or cathedral", MinCeilingHeight, MaxCeilingHeight),
			})
		}

		right := newWall(
			fmt.Sprintf("f%d-int-%02d-right", s.Index, r.Index), RoleInterior, s.Index, base, height,
			geo.Pt(r.X+r.W+offset, r.Z), geo.Pt(r.X+r.W+offset, r.Z+r.D),
		)
		right.Openings = interiorDoor(right)
		walls = append(walls, right)

		if r.Z+r.D >= frontLimit {
			continue
		}
		bottom := newWall(
			fmt.Sprintf("f%d-int-%02d-bottom", s.Index, r.Index), RoleInterior, s.Index, base, height,
			geo.Pt(r.X, r.Z+r.D+offset), geo.Pt(r.X+r.W, r.Z+r.D+offset),
		)
		bottom.Openings = interiorDoor(bottom)
		walls = append(walls, bottom)
	}
	return walls
}

// interiorDoor returns the single mid-wall door of a partition, narrowed on
// walls too short for a standard door.
func interiorDoor(w WallSegment) []WallOpening {
	length := w.Length()
	width := InteriorDoorWidth
	if length < InteriorDoorWidth+OpeningClearance {
		width = 0.8 * length
	}
	return []WallOpening{{
		Type:     OpeningDoor,
		Position: 0.5,
		Width:    width,
		Height:   math.Min(InteriorDoorHeight, w.Height),
	}}
}
