package model

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/houseplanner/pkg/geo"
	"github.com/ChicagoDave/houseplanner/pkg/layout"
	"github.com/ChicagoDave/houseplanner/pkg/plan"
	"github.com/ChicagoDave/houseplanner/pkg/roof"
	"github.com/ChicagoDave/houseplanner/pkg/site"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
	"github.com/ChicagoDave/houseplanner/pkg/walls"
)

// DefaultSquareFootage replaces a missing or non-positive square footage.
const DefaultSquareFootage = 1500.0

// Generate builds a BuildingModel from a plan. It never fails: missing or
// out-of-range input is replaced with defaults and every substitution is
// recorded as a warning in the returned report. The same plan always yields
// the same model.
func Generate(p *plan.PlanDescription) (BuildingModel, *validation.Report) {
	report := validation.NewReport()
	in := normalize(p, report)

	fp := layout.ComputeFootprint(in.sqft, in.stories)
	layouts, packReport := layout.PackRooms(in.plan.Rooms, fp, in.stories)
	report.Merge(packReport)

	m := BuildingModel{
		Walls:        []walls.WallSegment{},
		Floors:       make([]FloorSlab, 0, in.stories+1),
		SiteElements: []site.Element{},
		Rooms:        layouts,
	}

	for _, sl := range layouts {
		ext, interior, wallReport := walls.Generate(walls.Story{
			Footprint: fp,
			Index:     sl.Story,
			Height:    layout.StoryHeight,
			Style:     in.style,
			Rooms:     sl.Rooms,
		})
		report.Merge(wallReport)
		m.Walls = append(m.Walls, ext...)
		m.Walls = append(m.Walls, interior...)
		m.Floors = append(m.Floors, FloorSlab{
			ID:        fmt.Sprintf("floor-%d", sl.Story),
			Polygon:   fp.Polygon(),
			Elevation: float64(sl.Story) * layout.FloorToFloor,
			Thickness: layout.FloorSlabThickness,
			Floor:     sl.Story,
		})
	}

	features := site.FeaturesOf(in.plan)
	bay, hasBay := site.GarageBay(fp, features)
	m.Floors = append(m.Floors, foundation(fp, bay, hasBay))

	overhang := roof.Overhang(in.plan.IsRegionalWetClimate)
	m.RoofPlanes = roof.Generate(roof.Params{
		Type:       in.roofType,
		Width:      fp.Width,
		Depth:      fp.Depth,
		BaseHeight: RoofBase(in.stories),
		Pitch:      in.style.Pitch(),
		Overhang:   overhang,
	})

	elements, siteReport := site.Generate(fp, features)
	report.Merge(siteReport)
	m.SiteElements = elements

	m.BoundingBox = computeBounds(&m)
	m.Metadata = Metadata{
		Style:              in.style,
		Stories:            in.stories,
		TotalSquareFootage: in.sqft,
		RoofType:           in.roofType,
		Pitch:              in.style.Pitch(),
		Overhang:           overhang,
		Footprint:          fp,
		GarageBay:          hasBay,
	}

	msg := fmt.Sprintf("model: %d walls, %d floors, %d roof planes, %d site elements",
		len(m.Walls), len(m.Floors), len(m.RoofPlanes), len(m.SiteElements))
	report.AddInfo(validation.Result{Level: validation.LevelGeometry, Message: msg})
	return m, report
}

// RoofBase returns the eave height: the top of the highest story's walls.
func RoofBase(stories int) float64 {
	return float64(stories-1)*layout.FloorToFloor + layout.StoryHeight
}

// foundation returns the slab under the footprint, padded on every side and
// widened under the garage bay if there is one.
func foundation(fp layout.Footprint, bay geo.Rectangle, hasBay bool) FloorSlab {
	r := fp.Rect()
	if hasBay {
		r.W = bay.X + bay.W - r.X
	}
	return FloorSlab{
		ID:           FoundationID,
		Polygon:      r.Expand(FoundationPadding).Polygon(),
		Elevation:    FoundationElevation,
		Thickness:    walls.RoleFoundation.Thickness(),
		Floor:        -1,
		IsFoundation: true,
	}
}

// input is a plan with every generator parameter resolved.
type input struct {
	plan     plan.PlanDescription
	stories  int
	sqft     float64
	style    plan.Style
	roofType plan.RoofType
}

func normalize(p *plan.PlanDescription, report *validation.Report) input {
	var in input
	if p != nil {
		in.plan = *p
	} else {
		report.AddWarning(validation.Result{
			Level:   validation.LevelSchema,
			Message: "no plan given; generating a default shell",
		})
	}

	in.stories = in.plan.Stories
	switch {
	case in.stories < validation.MinStories:
		in.stories = validation.MinStories
	case in.stories > validation.MaxStories:
		in.stories = validation.MaxStories
	}
	if in.stories != in.plan.Stories {
		report.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("stories %d clamped to %d", in.plan.Stories, in.stories),
			PlanPath:    "stories",
			ActualValue: in.plan.Stories,
			Expected:    fmt.Sprintf("%d-%d", validation.MinStories, validation.MaxStories),
		})
	}

	in.sqft = in.plan.TotalSquareFootage
	if in.sqft <= 0 || math.IsNaN(in.sqft) || math.IsInf(in.sqft, 0) {
		in.sqft = DefaultSquareFootage
		report.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("total_square_footage %v replaced with %.0f", in.plan.TotalSquareFootage, DefaultSquareFootage),
			PlanPath:    "total_square_footage",
			ActualValue: in.plan.TotalSquareFootage,
			Expected:    "> 0",
		})
	}
	if in.sqft > validation.MaxTotalSquareFeet {
		in.sqft = validation.MaxTotalSquareFeet
		report.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("total_square_footage %.0f clamped to %.0f", in.plan.TotalSquareFootage, in.sqft),
			PlanPath:    "total_square_footage",
			ActualValue: in.plan.TotalSquareFootage,
			Expected:    fmt.Sprintf("<= %.0f", validation.MaxTotalSquareFeet),
		})
	}

	var ok bool
	if in.style, ok = plan.ParseStyle(in.plan.ArchitecturalStyle); !ok {
		report.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("architectural_style %q not recognized, using %s", in.plan.ArchitecturalStyle, in.style),
			PlanPath:    "architectural_style",
			ActualValue: in.plan.ArchitecturalStyle,
		})
	}
	if in.roofType, ok = plan.ParseRoofType(in.plan.RoofType); !ok {
		report.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("roof_type %q not recognized, using %s", in.plan.RoofType, in.roofType),
			PlanPath:    "roof_type",
			ActualValue: in.plan.RoofType,
		})
	}
	return in
}

// computeBounds walks every vertex in the model: wall bases and tops, slab
// tops and undersides, roof planes and site polygons at grade.
func computeBounds(m *BuildingModel) BoundingBox {
	minV := geo.V3(math.Inf(1), math.Inf(1), math.Inf(1))
	maxV := geo.V3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	add := func(v geo.Vec3) {
		minV = geo.V3(math.Min(minV.X, v.X), math.Min(minV.Y, v.Y), math.Min(minV.Z, v.Z))
		maxV = geo.V3(math.Max(maxV.X, v.X), math.Max(maxV.Y, v.Y), math.Max(maxV.Z, v.Z))
	}

	for _, w := range m.Walls {
		for _, p := range []geo.Point2D{w.Start, w.End} {
			add(p.At(w.Elevation))
			add(p.At(w.Top()))
		}
	}
	for _, f := range m.Floors {
		for _, p := range f.Polygon.Vertices {
			add(p.At(f.Elevation))
			add(p.At(f.Elevation - f.Thickness))
		}
	}
	for _, pl := range m.RoofPlanes {
		for _, v := range pl.Vertices {
			add(v)
		}
	}
	for _, e := range m.SiteElements {
		for _, p := range e.Polygon.Vertices {
			add(p.At(0))
		}
	}

	if math.IsInf(minV.X, 1) {
		return BoundingBox{}
	}
	return BoundingBox{
		Width:  maxV.X - minV.X,
		Depth:  maxV.Z - minV.Z,
		Height: maxV.Y - minV.Y,
		Min:    minV,
		Max:    maxV,
	}
}
