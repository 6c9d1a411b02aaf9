package roof

import (
	"math"
	"testing"

	"github.com/ChicagoDave/houseplanner/pkg/plan"
)

const tolerance = 1e-6

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func demoParams(rt plan.RoofType) Params {
	return Params{
		Type:       rt,
		Width:      48.99,
		Depth:      32.66,
		BaseHeight: 19,
		Pitch:      plan.StyleModernFarmhouse.Pitch(),
		Overhang:   Overhang(true),
	}
}

func TestPlaneCounts(t *testing.T) {
	tests := []struct {
		rt   plan.RoofType
		want int
	}{
		{plan.RoofGable, 2},
		{plan.RoofHip, 4},
		{plan.RoofFlat, 1},
		{plan.RoofShed, 1},
		{plan.RoofGambrel, 4},
		{plan.RoofMansard, 3},
		{plan.RoofType("dome"), 2},
	}
	for _, tt := range tests {
		if got := len(Generate(demoParams(tt.rt))); got != tt.want {
			t.Errorf("%s: %d planes, want %d", tt.rt, got, tt.want)
		}
	}
}

func TestFlatRoofAnySize(t *testing.T) {
	for _, w := range []float64{10, 48.99, 300} {
		p := Params{Type: plan.RoofFlat, Width: w, Depth: w / 1.5, BaseHeight: 9, Pitch: 0.5, Overhang: 2}
		planes := Generate(p)
		if len(planes) != 1 {
			t.Fatalf("width %.0f: %d planes, want 1", w, len(planes))
		}
		for _, v := range planes[0].Vertices {
			if v.Y != 9+FlatReveal {
				t.Errorf("flat vertex at y=%.2f, want %.2f", v.Y, 9+FlatReveal)
			}
		}
	}
}

func TestGableSharesRidge(t *testing.T) {
	p := demoParams(plan.RoofGable)
	planes := Generate(p)
	ridgeY := p.BaseHeight + RidgeHeight(p.Depth, p.Pitch)

	shared := 0
	for _, a := range planes[0].Vertices {
		for _, b := range planes[1].Vertices {
			if a == b {
				shared++
				if !approxEqual(a.Z, p.Depth/2, tolerance) || !approxEqual(a.Y, ridgeY, tolerance) {
					t.Errorf("shared vertex %+v is not on the ridge line", a)
				}
			}
		}
	}
	if shared != 2 {
		t.Errorf("gable planes share %d vertices, want 2", shared)
	}
}

func TestRidgeHeight(t *testing.T) {
	if got := RidgeHeight(32.66, 7.0/12); !approxEqual(got, 16.33*7/12, tolerance) {
		t.Errorf("RidgeHeight = %f", got)
	}
	for _, rt := range []plan.RoofType{plan.RoofGable, plan.RoofHip, plan.RoofShed, plan.RoofGambrel} {
		p := demoParams(rt)
		want := p.BaseHeight + RidgeHeight(p.Depth, p.Pitch)
		if got := peak(Generate(p)); !approxEqual(got, want, tolerance) {
			t.Errorf("%s peak = %f, want %f", rt, got, want)
		}
	}
}

func TestMansardAndGambrelBreaks(t *testing.T) {
	p := demoParams(plan.RoofMansard)
	rise := RidgeHeight(p.Depth, p.Pitch)
	if got := peak(Generate(p)); !approxEqual(got, p.BaseHeight+MansardBreakRise*rise, tolerance) {
		t.Errorf("mansard cap at %f, want %f", got, p.BaseHeight+MansardBreakRise*rise)
	}

	g := Generate(demoParams(plan.RoofGambrel))
	lower := g[0]
	if !approxEqual(lower.Vertices[2].Y, p.BaseHeight+GambrelBreakRise*rise, tolerance) {
		t.Errorf("gambrel break at y=%f", lower.Vertices[2].Y)
	}
	if !approxEqual(lower.Vertices[2].Z, -p.Overhang+GambrelBreakRun*p.Depth, tolerance) {
		t.Errorf("gambrel break at z=%f", lower.Vertices[2].Z)
	}
}

func TestShedRisesToFront(t *testing.T) {
	p := demoParams(plan.RoofShed)
	v := Generate(p)[0].Vertices
	if v[0].Y != p.BaseHeight || v[0].Z != -p.Overhang {
		t.Errorf("shed back edge at %+v", v[0])
	}
	if !approxEqual(v[2].Y, p.BaseHeight+RidgeHeight(p.Depth, p.Pitch), tolerance) || v[2].Z != p.Depth+p.Overhang {
		t.Errorf("shed front edge at %+v", v[2])
	}
}

func TestOverhangExtendsEveryEdge(t *testing.T) {
	for _, wet := range []bool{true, false} {
		p := demoParams(plan.RoofHip)
		p.Overhang = Overhang(wet)
		minX, maxX, minZ, maxZ := math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
		for _, pl := range Generate(p) {
			if pl.Overhang != p.Overhang {
				t.Errorf("plane %s overhang %.1f", pl.ID, pl.Overhang)
			}
			for _, v := range pl.Vertices {
				minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
				minZ, maxZ = math.Min(minZ, v.Z), math.Max(maxZ, v.Z)
			}
		}
		o := p.Overhang
		if minX != -o || maxX != p.Width+o || minZ != -o || maxZ != p.Depth+o {
			t.Errorf("wet=%v: extent x[%.2f,%.2f] z[%.2f,%.2f]", wet, minX, maxX, minZ, maxZ)
		}
	}
	if Overhang(true) != 3 || Overhang(false) != 2 {
		t.Error("overhang table changed")
	}
}

func TestPlanesArePlanar(t *testing.T) {
	for _, rt := range plan.RoofTypes {
		for _, pl := range Generate(demoParams(rt)) {
			n := len(pl.Vertices)
			if n < 3 || n > 4 {
				t.Errorf("%s/%s: %d vertices", rt, pl.ID, n)
				continue
			}
			if pl.Area() <= 0 {
				t.Errorf("%s/%s: zero area", rt, pl.ID)
			}
			if n == 4 {
				v := pl.Vertices
				normal := v[1].Sub(v[0]).Cross(v[2].Sub(v[0]))
				d := v[3].Sub(v[0])
				if dot := normal.X*d.X + normal.Y*d.Y + normal.Z*d.Z; math.Abs(dot) > 1e-6 {
					t.Errorf("%s/%s: fourth vertex off plane (%g)", rt, pl.ID, dot)
				}
			}
		}
	}
}

func peak(planes []Plane) float64 {
	y := math.Inf(-1)
	for _, p := range planes {
		for _, v := range p.Vertices {
			y = math.Max(y, v.Y)
		}
	}
	return y
}
