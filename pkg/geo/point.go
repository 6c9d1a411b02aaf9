package geo

import "math"

// Point2D is a plan-view point in feet. X runs along the building width
// (west to east) and Z along its depth (back to front). Y is up in 3D.
type Point2D struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Pt is a shorthand constructor for Point2D.
func Pt(x, z float64) Point2D {
	return Point2D{X: x, Z: z}
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.X - q.X, p.Z - q.Z}
}

// Length returns the Euclidean length of the vector.
func (p Point2D) Length() float64 {
	return math.Hypot(p.X, p.Z)
}

// Distance returns the Euclidean distance from p to q.
func (p Point2D) Distance(q Point2D) float64 {
	return p.Sub(q).Length()
}

// Lerp returns the linear interpolation between p and q at t in [0,1].
func (p Point2D) Lerp(q Point2D, t float64) Point2D {
	return Point2D{
		X: p.X + (q.X-p.X)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// At lifts p into 3D at height y.
func (p Point2D) At(y float64) Vec3 {
	return Vec3{X: p.X, Y: y, Z: p.Z}
}

// Vec3 is a 3D point in feet with Y up.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// V3 is a shorthand constructor for Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Plan drops the Y component.
func (v Vec3) Plan() Point2D {
	return Point2D{X: v.X, Z: v.Z}
}

// SurfaceArea returns the area of a planar polygon given by its 3D vertices
// in order. Fewer than three vertices have zero area.
func SurfaceArea(pts []Vec3) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum Vec3
	o := pts[0]
	for i := 1; i < len(pts)-1; i++ {
		c := pts[i].Sub(o).Cross(pts[i+1].Sub(o))
		sum.X += c.X
		sum.Y += c.Y
		sum.Z += c.Z
	}
	return sum.Length() / 2
}
