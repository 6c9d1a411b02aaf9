package walls

import (
	"math"
	"testing"

	"github.com/ChicagoDave/houseplanner/pkg/geo"
	"github.com/ChicagoDave/houseplanner/pkg/layout"
	"github.com/ChicagoDave/houseplanner/pkg/plan"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func demoStory(t *testing.T, index int) Story {
	t.Helper()
	p := plan.Demo()
	fp := layout.ComputeFootprint(p.TotalSquareFootage, p.Stories)
	layouts, _ := layout.PackRooms(p.Rooms, fp, p.Stories)
	style, _ := plan.ParseStyle(p.ArchitecturalStyle)
	return Story{
		Footprint: fp,
		Index:     index,
		Height:    layout.StoryHeight,
		Style:     style,
		Rooms:     layouts[index].Rooms,
	}
}

func countOpenings(w WallSegment, typ OpeningType) int {
	n := 0
	for _, o := range w.Openings {
		if o.Type == typ {
			n++
		}
	}
	return n
}

func TestExteriorAlwaysFourWalls(t *testing.T) {
	for _, style := range plan.Styles {
		for story := 0; story < 3; story++ {
			s := Story{Footprint: layout.ComputeFootprint(2400, 3), Index: story, Height: 9, Style: style}
			ext := Exterior(s)
			if len(ext) != 4 {
				t.Fatalf("%s story %d: %d exterior walls, want 4", style, story, len(ext))
			}
			for _, w := range ext {
				if !w.IsExterior || w.Thickness != layout.ExteriorWallThickness {
					t.Errorf("%s: wall %s is not a 0.5 ft exterior wall", style, w.ID)
				}
				if w.Floor != story || w.Elevation != float64(story)*layout.FloorToFloor {
					t.Errorf("%s: wall %s on floor %d at %.1f", style, w.ID, w.Floor, w.Elevation)
				}
			}
		}
	}
}

func TestExteriorGroundFloorDoorAndSlider(t *testing.T) {
	ext := Exterior(demoStory(t, 0))
	front, back := ext[0], ext[1]

	if front.ID != "f0-ext-front" || back.ID != "f0-ext-back" {
		t.Fatalf("unexpected wall order: %s, %s", front.ID, back.ID)
	}
	if countOpenings(front, OpeningDoor) != 1 {
		t.Fatalf("front wall doors = %d, want 1", countOpenings(front, OpeningDoor))
	}
	door := front.Openings[0]
	if door.Position != EntryDoorPosition || door.Width != EntryDoorWidth || door.Height != EntryDoorHeight {
		t.Errorf("entry door = %+v", door)
	}
	for _, o := range front.Openings {
		if o.Type == OpeningWindow && math.Abs(o.Position-EntryDoorPosition) < DoorExclusionBand {
			t.Errorf("window at %.2f inside the door exclusion band", o.Position)
		}
	}
	// 49 ft front: 4 candidate windows, the one at 0.4 yields to the door.
	if got := countOpenings(front, OpeningWindow); got != 3 {
		t.Errorf("front windows = %d, want 3", got)
	}

	if countOpenings(back, OpeningDoor) != 1 {
		t.Fatalf("back wall sliders = %d, want 1", countOpenings(back, OpeningDoor))
	}
	slider := back.Openings[0]
	if slider.Position != SliderPosition || slider.Width != 12 {
		t.Errorf("slider = %+v, want 12 ft at %.2f", slider, SliderPosition)
	}
	// 12 ft slider at 0.55 crowds out the windows at 0.4 and 0.6.
	if got := countOpenings(back, OpeningWindow); got != 2 {
		t.Errorf("back windows = %d, want 2", got)
	}
}

func TestExteriorUpperFloorHasNoDoors(t *testing.T) {
	for _, w := range Exterior(demoStory(t, 1)) {
		if n := countOpenings(w, OpeningDoor); n != 0 {
			t.Errorf("upper wall %s has %d doors", w.ID, n)
		}
		if n := countOpenings(w, OpeningWindow); n < 2 {
			t.Errorf("upper wall %s has %d windows, want at least 2", w.ID, n)
		}
	}
}

func TestWindowSizeByStyle(t *testing.T) {
	tests := []struct {
		style       plan.Style
		width, sill float64
		sliderWidth float64
	}{
		{plan.StyleModern, 6, 0.5, 12},
		{plan.StyleContemporary, 5, 1, 12},
		{plan.StyleModernFarmhouse, 5, 1, 12},
		{plan.StyleCraftsman, 3, 3, 6},
		{plan.StyleColonial, 3, 3, 6},
	}
	for _, tt := range tests {
		spec := WindowSpecFor(tt.style)
		if spec.Width != tt.width || spec.SillHeight != tt.sill {
			t.Errorf("%s window = %+v, want width %.1f sill %.1f", tt.style, spec, tt.width, tt.sill)
		}
		if got := SliderWidth(tt.style); got != tt.sliderWidth {
			t.Errorf("%s slider = %.0f, want %.0f", tt.style, got, tt.sliderWidth)
		}
		if spec.SillHeight+spec.Height > layout.StoryHeight {
			t.Errorf("%s window top %.1f above story height", tt.style, spec.SillHeight+spec.Height)
		}
	}
}

func TestOpeningsStayInsideWallsWithoutOverlap(t *testing.T) {
	for _, style := range plan.Styles {
		for _, sqft := range []float64{800, 1600, 3000, 6000} {
			ext := Exterior(Story{Footprint: layout.ComputeFootprint(sqft, 1), Height: 9, Style: style})
			for _, w := range ext {
				length := w.Length()
				for i, o := range w.Openings {
					if o.Position < 0 || o.Position > 1 {
						t.Errorf("%s %s: opening position %.3f outside [0,1]", style, w.ID, o.Position)
					}
					lo := o.Position*length - o.Width/2
					hi := o.Position*length + o.Width/2
					if lo < 0 || hi > length {
						t.Errorf("%s %s: opening [%.2f, %.2f] leaves %.2f ft wall", style, w.ID, lo, hi, length)
					}
					for _, p := range w.Openings[i+1:] {
						plo := p.Position*length - p.Width/2
						phi := p.Position*length + p.Width/2
						if lo < phi && plo < hi {
							t.Errorf("%s %s: openings at %.2f and %.2f overlap", style, w.ID, o.Position, p.Position)
						}
					}
				}
			}
		}
	}
}

func TestOpeningSetRejects(t *testing.T) {
	set := newOpeningSet(10)
	if !set.add(WallOpening{Position: 0.5, Width: 3}) {
		t.Fatal("first opening should fit")
	}
	if set.add(WallOpening{Position: 0.6, Width: 3}) {
		t.Error("overlapping opening accepted")
	}
	if set.add(WallOpening{Position: 0.05, Width: 3}) {
		t.Error("opening past the wall end accepted")
	}
	if set.add(WallOpening{Position: 1.2, Width: 1}) {
		t.Error("opening outside [0,1] accepted")
	}
	if !set.add(WallOpening{Position: 0.15, Width: 2}) {
		t.Error("clear opening rejected")
	}
	if len(set.openings) != 2 {
		t.Errorf("openings = %d, want 2", len(set.openings))
	}
}

func TestInteriorWalls(t *testing.T) {
	s := demoStory(t, 0)
	ext, interior, report := Generate(s)
	if len(ext) != 4 {
		t.Errorf("exterior = %d, want 4", len(ext))
	}
	if report.HasWarnings() {
		t.Errorf("unexpected warnings: %+v", report.Warnings)
	}

	rights, bottoms := 0, 0
	for _, w := range interior {
		if w.IsExterior || w.Thickness != layout.InteriorWallThickness {
			t.Errorf("interior wall %s has exterior properties", w.ID)
		}
		if len(w.Openings) != 1 || w.Openings[0].Type != OpeningDoor || w.Openings[0].Position != 0.5 {
			t.Errorf("interior wall %s openings = %+v, want one door at 0.5", w.ID, w.Openings)
		}
		switch {
		case w.Start.X == w.End.X:
			rights++
		case w.Start.Z == w.End.Z:
			bottoms++
		}
	}
	if rights != len(s.Rooms) {
		t.Errorf("right-edge walls = %d, want %d", rights, len(s.Rooms))
	}
	// Demo ground floor rows end near z = 30.6, short of the front wall.
	if bottoms != len(s.Rooms) {
		t.Errorf("bottom-edge walls = %d, want %d", bottoms, len(s.Rooms))
	}
}

func TestInteriorSkipsBottomWallAgainstFront(t *testing.T) {
	fp := layout.Footprint{Width: 30, Depth: 20}
	half := layout.ExteriorWallThickness / 2
	room := layout.PlacedRoom{Room: plan.RoomSpec{Name: "Hall"}, X: half, Z: half, W: 10, D: fp.Depth - 2*half}
	interior := Interior(Story{Footprint: fp, Height: 9, Rooms: []layout.PlacedRoom{room}}, nil)
	if len(interior) != 1 {
		t.Fatalf("interior walls = %d, want 1 (right edge only)", len(interior))
	}
}

func TestInteriorEmptyRooms(t *testing.T) {
	ext, interior, _ := Generate(Story{Footprint: layout.ComputeFootprint(1500, 1), Style: plan.StyleRanch})
	if len(ext) != 4 || len(interior) != 0 {
		t.Errorf("got %d exterior / %d interior, want 4 / 0", len(ext), len(interior))
	}
	if ext[0].Height != layout.StoryHeight {
		t.Errorf("zero height should default to %.0f, got %.1f", layout.StoryHeight, ext[0].Height)
	}
}

func TestInteriorCeilingOverrides(t *testing.T) {
	s := demoStory(t, 0)
	_, interior, _ := Generate(s)
	for _, w := range interior {
		// Great Room is rooms[0] and vaulted.
		if w.ID == "f0-int-00-right" && w.Height != VaultedCeiling {
			t.Errorf("vaulted wall height = %.1f, want %.1f", w.Height, VaultedCeiling)
		}
	}

	upper := demoStory(t, 1)
	_, interior, _ = Generate(upper)
	for _, w := range interior {
		// Primary Suite is rooms[4] with a 10 ft ceiling.
		if w.ID == "f1-int-04-right" && w.Height != 10 {
			t.Errorf("primary suite wall height = %.1f, want 10", w.Height)
		}
	}
}

func TestInteriorBadCeilingWarns(t *testing.T) {
	fp := layout.ComputeFootprint(1500, 1)
	room := layout.PlacedRoom{Room: plan.RoomSpec{Name: "Den", CeilingHeight: "tall"}, Index: 3, X: 0.25, Z: 0.25, W: 10, D: 10}
	_, interior, report := Generate(Story{Footprint: fp, Height: 9, Rooms: []layout.PlacedRoom{room}})
	if len(report.Warnings) != 1 || report.Warnings[0].PlanPath != "rooms[3].ceiling_height" {
		t.Errorf("expected ceiling warning, got %+v", report.Warnings)
	}
	if interior[0].Height != 9 {
		t.Errorf("height = %.1f, want fallback 9", interior[0].Height)
	}
}

func TestInteriorDoorNarrowsOnShortWalls(t *testing.T) {
	w := newWall("x", RoleInterior, 0, 0, 9, geo.Pt(0, 0), geo.Pt(2, 0))
	door := interiorDoor(w)[0]
	if !approxEqual(door.Width, 1.6, tolerance) {
		t.Errorf("door width on 2 ft wall = %.2f, want 1.6", door.Width)
	}
}

func TestParseCeilingHeight(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"", 9, true},
		{"vaulted", 17, true},
		{"Cathedral ceiling", 17, true},
		{"10 ft", 10, true},
		{"9'", 9, true},
		{"12.5", 12.5, true},
		{"high", 9, false},
		{"3 ft", 9, false},
		{"45", 9, false},
	}
	for _, tt := range tests {
		got, ok := ParseCeilingHeight(tt.in, 9)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseCeilingHeight(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRoleThickness(t *testing.T) {
	if RoleExterior.Thickness() != 0.5 || RoleInterior.Thickness() != 0.333 || RoleFoundation.Thickness() != 0.667 {
		t.Errorf("thickness table = %v/%v/%v", RoleExterior.Thickness(), RoleInterior.Thickness(), RoleFoundation.Thickness())
	}
}

func TestWindowCountBounds(t *testing.T) {
	tests := []struct {
		length, spacing float64
		want            int
	}{
		{0, 12, 2},
		{30, 12, 2},
		{48.99, 12, 4},
		{120, 10, 12},
		{1e6, 10, MaxWindowsPerWall},
		{math.Inf(1), 12, MaxWindowsPerWall},
	}
	for _, tt := range tests {
		if got := windowCount(tt.length, tt.spacing); got != tt.want {
			t.Errorf("windowCount(%v, %v) = %d, want %d", tt.length, tt.spacing, got, tt.want)
		}
	}
}

func TestExteriorWindowsCappedOnLongWalls(t *testing.T) {
	s := Story{Footprint: layout.Footprint{Width: 5000, Depth: 3000}, Index: 1, Height: 9, Style: plan.StyleTraditional}
	for _, w := range Exterior(s) {
		if n := countOpenings(w, OpeningWindow); n > MaxWindowsPerWall {
			t.Errorf("%s has %d windows, want at most %d", w.ID, n, MaxWindowsPerWall)
		}
	}
}
