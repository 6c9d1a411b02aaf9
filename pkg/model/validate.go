package model

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/houseplanner/pkg/geo"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
	"github.com/ChicagoDave/houseplanner/pkg/walls"
)

const boundsTolerance = 1e-6

// ValidateModel performs structural validation on a generated model.
// It checks id uniqueness, the exterior shell, openings, room placement,
// polygon shape and bounding box enclosure.
func ValidateModel(m *BuildingModel) *validation.Report {
	r := validation.NewReport()

	if m == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelGeometry,
			Message: "model is nil",
		})
		return r
	}

	validateIDs(m, r)
	validateShell(m, r)
	validateOpenings(m, r)
	validateRooms(m, r)
	validatePolygons(m, r)
	validateBoundsEnclosure(m, r)

	return r
}

func validateIDs(m *BuildingModel, r *validation.Report) {
	seen := make(map[string]string)
	check := func(kind, id string, i int) {
		path := fmt.Sprintf("%s[%d].id", kind, i)
		if id == "" {
			r.AddError(validation.Result{
				Level:    validation.LevelGeometry,
				Message:  fmt.Sprintf("%s at index %d has empty ID", kind, i),
				PlanPath: path,
				Expected: "non-empty string",
			})
			return
		}
		if prev, exists := seen[id]; exists {
			r.AddError(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     fmt.Sprintf("duplicate ID %q at %s and %s", id, prev, path),
				PlanPath:    path,
				ActualValue: id,
			})
		}
		seen[id] = path
	}

	for i, w := range m.Walls {
		check("walls", w.ID, i)
	}
	for i, f := range m.Floors {
		check("floors", f.ID, i)
	}
	for i, p := range m.RoofPlanes {
		check("roof_planes", p.ID, i)
	}
	for i, e := range m.SiteElements {
		check("site_elements", e.ID, i)
	}
}

func validateShell(m *BuildingModel, r *validation.Report) {
	for floor := 0; floor < m.Metadata.Stories; floor++ {
		if n := len(m.ExteriorWalls(floor)); n != 4 {
			r.AddError(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     fmt.Sprintf("floor %d has %d exterior walls", floor, n),
				PlanPath:    "walls",
				ActualValue: n,
				Expected:    "4",
			})
		}
	}

	for i, w := range m.Walls {
		role := walls.RoleInterior
		if w.IsExterior {
			role = walls.RoleExterior
		}
		if w.Thickness != role.Thickness() {
			r.AddError(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     fmt.Sprintf("wall %q is %.3f ft thick, %s walls are %.3f ft", w.ID, w.Thickness, role, role.Thickness()),
				PlanPath:    fmt.Sprintf("walls[%d].thickness", i),
				ActualValue: w.Thickness,
			})
		}
		if w.Length() <= 0 || w.Height <= 0 {
			r.AddWarning(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     fmt.Sprintf("wall %q has zero or negative extent (%.2f x %.2f)", w.ID, w.Length(), w.Height),
				PlanPath:    fmt.Sprintf("walls[%d]", i),
				ActualValue: fmt.Sprintf("%.2f x %.2f", w.Length(), w.Height),
				Expected:    "length and height > 0",
			})
		}
	}

	foundations := 0
	for i, f := range m.Floors {
		if f.IsFoundation {
			foundations++
			if want := walls.RoleFoundation.Thickness(); f.Thickness != want {
				r.AddError(validation.Result{
					Level:       validation.LevelGeometry,
					Message:     fmt.Sprintf("foundation slab is %.3f ft thick, foundation walls are %.3f ft", f.Thickness, want),
					PlanPath:    fmt.Sprintf("floors[%d].thickness", i),
					ActualValue: f.Thickness,
				})
			}
			if f.Elevation >= 0 {
				r.AddError(validation.Result{
					Level:       validation.LevelGeometry,
					Message:     fmt.Sprintf("foundation slab at elevation %.2f is not below grade", f.Elevation),
					PlanPath:    "floors",
					ActualValue: f.Elevation,
				})
			}
		}
	}
	if foundations != 1 {
		r.AddError(validation.Result{
			Level:       validation.LevelGeometry,
			Message:     fmt.Sprintf("model has %d foundation slabs", foundations),
			PlanPath:    "floors",
			ActualValue: foundations,
			Expected:    "1",
		})
	}
}

func validateOpenings(m *BuildingModel, r *validation.Report) {
	for i, w := range m.Walls {
		length := w.Length()
		for j, o := range w.Openings {
			path := fmt.Sprintf("walls[%d].openings[%d]", i, j)
			if o.Position < 0 || o.Position > 1 {
				r.AddError(validation.Result{
					Level:       validation.LevelGeometry,
					Message:     fmt.Sprintf("opening on wall %q at position %.3f is outside the wall", w.ID, o.Position),
					PlanPath:    path,
					ActualValue: o.Position,
					Expected:    "0-1",
				})
				continue
			}
			if o.SillHeight+o.Height > w.Height+boundsTolerance {
				r.AddWarning(validation.Result{
					Level:       validation.LevelGeometry,
					Message:     fmt.Sprintf("opening on wall %q rises above the wall top", w.ID),
					PlanPath:    path,
					ActualValue: o.SillHeight + o.Height,
				})
			}
			lo, hi := o.Position*length-o.Width/2, o.Position*length+o.Width/2
			for k := j + 1; k < len(w.Openings); k++ {
				p := w.Openings[k]
				plo, phi := p.Position*length-p.Width/2, p.Position*length+p.Width/2
				if lo < phi && plo < hi {
					r.AddError(validation.Result{
						Level:    validation.LevelGeometry,
						Message:  fmt.Sprintf("openings %d and %d on wall %q overlap", j, k, w.ID),
						PlanPath: path,
					})
				}
			}
		}
	}
}

// validateRooms checks that placed rooms stay on their story's floor slab
// and that no two rooms on a story share floor area.
func validateRooms(m *BuildingModel, r *validation.Report) {
	slabs := make(map[int]geo.Polygon)
	for _, f := range m.Floors {
		if !f.IsFoundation {
			slabs[f.Floor] = f.Polygon
		}
	}

	for _, sl := range m.Rooms {
		slab, ok := slabs[sl.Story]
		if !ok && len(sl.Rooms) > 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     fmt.Sprintf("story %d has rooms but no floor slab", sl.Story),
				PlanPath:    "rooms",
				ActualValue: sl.Story,
			})
			continue
		}
		lo, hi := slab.BoundingBox()
		for i, a := range sl.Rooms {
			path := fmt.Sprintf("rooms[%d]", a.Index)
			ra := a.Rect()
			center := geo.Pt(ra.X+ra.W/2, ra.Z+ra.D/2)
			if !slab.Contains(center) ||
				ra.X < lo.X-boundsTolerance || ra.Z < lo.Z-boundsTolerance ||
				ra.X+ra.W > hi.X+boundsTolerance || ra.Z+ra.D > hi.Z+boundsTolerance {
				r.AddError(validation.Result{
					Level:       validation.LevelGeometry,
					Message:     fmt.Sprintf("room %q extends outside the story %d floor", a.Room.Name, sl.Story),
					PlanPath:    path,
					ActualValue: fmt.Sprintf("%.2f,%.2f %.2f x %.2f", ra.X, ra.Z, ra.W, ra.D),
				})
			}
			for _, b := range sl.Rooms[i+1:] {
				if ra.Overlaps(b.Rect()) {
					r.AddError(validation.Result{
						Level:    validation.LevelGeometry,
						Message:  fmt.Sprintf("rooms %q and %q overlap on story %d", a.Room.Name, b.Room.Name, sl.Story),
						PlanPath: path,
					})
				}
			}
		}
	}
}

func validatePolygons(m *BuildingModel, r *validation.Report) {
	checkPolygon := func(id, path string, p geo.Polygon) {
		if p.IsEmpty() {
			r.AddError(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     fmt.Sprintf("%q has %d vertices", id, p.Len()),
				PlanPath:    path,
				ActualValue: p.Len(),
				Expected:    ">= 3",
			})
			return
		}
		if !p.IsSimple() {
			r.AddError(validation.Result{
				Level:    validation.LevelGeometry,
				Message:  fmt.Sprintf("%q is self-intersecting", id),
				PlanPath: path,
			})
		}
	}

	for i, f := range m.Floors {
		checkPolygon(f.ID, fmt.Sprintf("floors[%d].polygon", i), f.Polygon)
	}
	for i, e := range m.SiteElements {
		checkPolygon(e.ID, fmt.Sprintf("site_elements[%d].polygon", i), e.Polygon)
	}
	for i, p := range m.RoofPlanes {
		if n := len(p.Vertices); n < 3 || n > 4 {
			r.AddError(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     fmt.Sprintf("roof plane %q has %d vertices", p.ID, n),
				PlanPath:    fmt.Sprintf("roof_planes[%d].vertices", i),
				ActualValue: n,
				Expected:    "3 or 4",
			})
		}
	}
}

func validateBoundsEnclosure(m *BuildingModel, r *validation.Report) {
	b := m.BoundingBox
	if b.Width <= 0 || b.Depth <= 0 || b.Height <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelGeometry,
			Message:     fmt.Sprintf("bounding box has zero or negative extent (%.2f, %.2f, %.2f)", b.Width, b.Depth, b.Height),
			PlanPath:    "bounding_box",
			ActualValue: fmt.Sprintf("%.2f x %.2f x %.2f", b.Width, b.Depth, b.Height),
			Expected:    "all dimensions > 0",
		})
		return
	}

	want := computeBounds(m)
	if want.Min.X < b.Min.X-boundsTolerance || want.Min.Y < b.Min.Y-boundsTolerance || want.Min.Z < b.Min.Z-boundsTolerance ||
		want.Max.X > b.Max.X+boundsTolerance || want.Max.Y > b.Max.Y+boundsTolerance || want.Max.Z > b.Max.Z+boundsTolerance {
		r.AddError(validation.Result{
			Level:    validation.LevelGeometry,
			Message:  fmt.Sprintf("bounding box %+v does not enclose model extent %+v to %+v", b, want.Min, want.Max),
			PlanPath: "bounding_box",
		})
	}
	if math.Abs(b.Max.Y-b.Min.Y-b.Height) > boundsTolerance {
		r.AddWarning(validation.Result{
			Level:       validation.LevelGeometry,
			Message:     "bounding box height does not match its corners",
			PlanPath:    "bounding_box.height",
			ActualValue: b.Height,
		})
	}
}
