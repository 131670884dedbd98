package geom

import (
	"math"

	"github.com/fogleman/fauxgl"
)

// Epsilon is the tolerance below which lengths are treated as zero.
const Epsilon = 1e-9

// Point is a location in image space.
type Point = fauxgl.Vector

// Vector is a displacement in image space.
type Vector = fauxgl.Vector

// P builds a Point.
func P(x, y, z float64) Point { return fauxgl.V(x, y, z) }

// Axis returns component d (0 = x, 1 = y, 2 = z) of v.
func Axis(v Vector, d int) float64 {
	switch d {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// SetAxis returns v with component d replaced by value.
func SetAxis(v Vector, d int, value float64) Vector {
	switch d {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}

	return v
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 { return a.Distance(b) }

// MidPoint returns the point halfway between a and b.
func MidPoint(a, b Point) Point { return a.Add(b).MulScalar(0.5) }

// Normalize returns v scaled to unit length, or the zero vector if v is
// shorter than Epsilon.
func Normalize(v Vector) Vector {
	l := v.Length()
	if l < Epsilon {
		return Vector{}
	}

	return v.DivScalar(l)
}

// Angle returns the angle between a and b in radians, in [0, π].
// Zero vectors yield 0.
func Angle(a, b Vector) float64 {
	la, lb := a.Length(), b.Length()
	if la < Epsilon || lb < Epsilon {
		return 0
	}
	c := a.Dot(b) / (la * lb)

	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// Lerp interpolates between a and b; t = 0 yields a, t = 1 yields b.
func Lerp(a, b Point, t float64) Point {
	return a.Add(b.Sub(a).MulScalar(t))
}

// Round returns the nearest integer lattice coordinates of p.
func Round(p Point) [3]int {
	return [3]int{int(math.Round(p.X)), int(math.Round(p.Y)), int(math.Round(p.Z))}
}

// Centroid returns the mean of pts; an empty slice yields the origin.
func Centroid(pts []Point) Point {
	var c Point
	if len(pts) == 0 {
		return c
	}
	for _, p := range pts {
		c = c.Add(p)
	}

	return c.DivScalar(float64(len(pts)))
}
