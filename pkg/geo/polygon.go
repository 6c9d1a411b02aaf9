package geo

import "math"

// Polygon is a closed polygon defined by its vertices in order.
type Polygon struct {
	Vertices []Point2D `json:"vertices"`
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point2D) Polygon {
	return Polygon{Vertices: pts}
}

// Rect returns the axis-aligned rectangle with corner (x, z), width w along X
// and depth d along Z. Vertices are listed counterclockwise.
func Rect(x, z, w, d float64) Polygon {
	return NewPolygon(
		Pt(x, z),
		Pt(x+w, z),
		Pt(x+w, z+d),
		Pt(x, z+d),
	)
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Z
		area -= p.Vertices[j].X * p.Vertices[i].Z
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// BoundingBox returns the axis-aligned bounding box as (min, max).
func (p Polygon) BoundingBox() (Point2D, Point2D) {
	if len(p.Vertices) == 0 {
		return Point2D{}, Point2D{}
	}
	minP := p.Vertices[0]
	maxP := p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		minP.X = math.Min(minP.X, v.X)
		minP.Z = math.Min(minP.Z, v.Z)
		maxP.X = math.Max(maxP.X, v.X)
		maxP.Z = math.Max(maxP.Z, v.Z)
	}
	return minP, maxP
}

// Contains returns true if the point is inside the polygon using ray casting.
func (p Polygon) Contains(pt Point2D) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Z > pt.Z) != (vj.Z > pt.Z) &&
			pt.X < (vj.X-vi.X)*(pt.Z-vi.Z)/(vj.Z-vi.Z)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// IsSimple reports whether no two non-adjacent edges intersect.
func (p Polygon) IsSimple() bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := p.Vertices[i], p.Vertices[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			b1, b2 := p.Vertices[j], p.Vertices[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

func segmentsIntersect(p1, p2, q1, q2 Point2D) bool {
	d1 := orient(q1, q2, p1)
	d2 := orient(q1, q2, p2)
	d3 := orient(p1, p2, q1)
	d4 := orient(p1, p2, q2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func orient(a, b, c Point2D) float64 {
	return (b.X-a.X)*(c.Z-a.Z) - (b.Z-a.Z)*(c.X-a.X)
}

// Rectangle is an axis-aligned rectangle anchored at its minimum corner.
type Rectangle struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
	D float64 `json:"d"`
}

// Overlaps reports whether r and o share interior area. Touching edges do
// not count as overlap.
func (r Rectangle) Overlaps(o Rectangle) bool {
	const eps = 1e-9
	return r.X+eps < o.X+o.W && o.X+eps < r.X+r.W &&
		r.Z+eps < o.Z+o.D && o.Z+eps < r.Z+r.D
}

// Expand grows the rectangle by m on every side.
func (r Rectangle) Expand(m float64) Rectangle {
	return Rectangle{X: r.X - m, Z: r.Z - m, W: r.W + 2*m, D: r.D + 2*m}
}

// Polygon returns the rectangle as a counterclockwise polygon.
func (r Rectangle) Polygon() Polygon {
	return Rect(r.X, r.Z, r.W, r.D)
}
