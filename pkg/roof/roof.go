package roof

import (
	"github.com/ChicagoDave/houseplanner/pkg/geo"
	"github.com/ChicagoDave/houseplanner/pkg/plan"
)

// Overhang distances in feet.
const (
	WetOverhang     = 3.0
	DefaultOverhang = 2.0
)

// Topology ratios.
const (
	FlatReveal       = 0.5  // flat roof sits this far above the top plate
	HipInset         = 0.25 // ridge inset from each end, fraction of width
	GambrelBreakRise = 0.6  // break height, fraction of ridge height
	GambrelBreakRun  = 0.2  // break inset from each eave, fraction of depth
	MansardBreakRise = 0.7
	MansardBreakRun  = 0.15
)

// Plane is one flat face of a roof. Vertices are 3 or 4 coplanar points.
type Plane struct {
	ID       string     `json:"id"`
	Vertices []geo.Vec3 `json:"vertices"`
	Overhang float64    `json:"overhang"`
}

// Area returns the sloped surface area of the plane.
func (p Plane) Area() float64 {
	return geo.SurfaceArea(p.Vertices)
}

// Params describes the roof to generate. BaseHeight is the elevation of the
// eaves, i.e. the top of the highest story's walls.
type Params struct {
	Type       plan.RoofType
	Width      float64
	Depth      float64
	BaseHeight float64
	Pitch      float64 // rise over run
	Overhang   float64
}

// Overhang returns the eave overhang for a climate.
func Overhang(wetClimate bool) float64 {
	if wetClimate {
		return WetOverhang
	}
	return DefaultOverhang
}

// RidgeHeight returns the rise of the ridge above the eaves.
func RidgeHeight(depth, pitch float64) float64 {
	return depth / 2 * pitch
}

// outline is the overhang-extended roof rectangle plus the derived heights
// every topology builds on.
type outline struct {
	x0, x1, z0, z1 float64
	zMid           float64
	base, ridge    float64
	width, depth   float64
	overhang       float64
}

func newOutline(p Params) outline {
	return outline{
		x0:       -p.Overhang,
		x1:       p.Width + p.Overhang,
		z0:       -p.Overhang,
		z1:       p.Depth + p.Overhang,
		zMid:     p.Depth / 2,
		base:     p.BaseHeight,
		ridge:    p.BaseHeight + RidgeHeight(p.Depth, p.Pitch),
		width:    p.Width,
		depth:    p.Depth,
		overhang: p.Overhang,
	}
}

func (o outline) plane(id string, pts ...geo.Vec3) Plane {
	return Plane{ID: id, Vertices: pts, Overhang: o.overhang}
}

// strip returns the full-width quad between two eave-parallel lines, listed
// back edge first.
func (o outline) strip(id string, zBack, yBack, zFront, yFront float64) Plane {
	return o.plane(id,
		geo.V3(o.x0, yBack, zBack),
		geo.V3(o.x1, yBack, zBack),
		geo.V3(o.x1, yFront, zFront),
		geo.V3(o.x0, yFront, zFront),
	)
}

// Generate returns the roof planes for p. Unknown roof types build a gable.
func Generate(p Params) []Plane {
	o := newOutline(p)
	switch p.Type {
	case plan.RoofHip:
		return hip(o)
	case plan.RoofFlat:
		return flat(o)
	case plan.RoofShed:
		return shed(o)
	case plan.RoofGambrel:
		return gambrel(o)
	case plan.RoofMansard:
		return mansard(o)
	default:
		return gable(o)
	}
}

func gable(o outline) []Plane {
	return []Plane{
		o.strip("roof-back", o.z0, o.base, o.zMid, o.ridge),
		o.strip("roof-front", o.zMid, o.ridge, o.z1, o.base),
	}
}

func hip(o outline) []Plane {
	inset := HipInset * o.width
	r0 := geo.V3(o.x0+inset, o.ridge, o.zMid)
	r1 := geo.V3(o.x1-inset, o.ridge, o.zMid)
	backLeft := geo.V3(o.x0, o.base, o.z0)
	backRight := geo.V3(o.x1, o.base, o.z0)
	frontLeft := geo.V3(o.x0, o.base, o.z1)
	frontRight := geo.V3(o.x1, o.base, o.z1)
	return []Plane{
		o.plane("roof-back", backLeft, backRight, r1, r0),
		o.plane("roof-front", r0, r1, frontRight, frontLeft),
		o.plane("roof-left", frontLeft, backLeft, r0),
		o.plane("roof-right", backRight, frontRight, r1),
	}
}

func flat(o outline) []Plane {
	y := o.base + FlatReveal
	return []Plane{o.strip("roof-flat", o.z0, y, o.z1, y)}
}

// shed rises from the back eave to the front eave.
func shed(o outline) []Plane {
	return []Plane{o.strip("roof-shed", o.z0, o.base, o.z1, o.ridge)}
}

func gambrel(o outline) []Plane {
	y := o.base + GambrelBreakRise*(o.ridge-o.base)
	zBack := o.z0 + GambrelBreakRun*o.depth
	zFront := o.z1 - GambrelBreakRun*o.depth
	return []Plane{
		o.strip("roof-back-lower", o.z0, o.base, zBack, y),
		o.strip("roof-back-upper", zBack, y, o.zMid, o.ridge),
		o.strip("roof-front-upper", o.zMid, o.ridge, zFront, y),
		o.strip("roof-front-lower", zFront, y, o.z1, o.base),
	}
}

func mansard(o outline) []Plane {
	y := o.base + MansardBreakRise*(o.ridge-o.base)
	zBack := o.z0 + MansardBreakRun*o.depth
	zFront := o.z1 - MansardBreakRun*o.depth
	return []Plane{
		o.strip("roof-back", o.z0, o.base, zBack, y),
		o.strip("roof-cap", zBack, y, zFront, y),
		o.strip("roof-front", zFront, y, o.z1, o.base),
	}
}
