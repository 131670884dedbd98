package analysis

import (
	"math"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/snake"
)

// Radial is the position and orientation of one snake segment relative to a
// center: R is the distance of the segment midpoint, Theta the angle between
// the segment and the radial direction folded into [0, 90].
type Radial struct {
	R     float64
	Theta float64
}

// RTheta computes the Radial measure of segment p1-p2 about center.
func RTheta(p1, p2, center geom.Point) Radial {
	mid := geom.MidPoint(p1, p2)
	theta := geom.Angle(p1.Sub(p2), mid.Sub(center)) * 180 / math.Pi
	if theta > 90 {
		theta = 180 - theta
	}

	return Radial{R: mid.Distance(center), Theta: theta}
}

// RadialOrientation measures every consecutive segment of snakes. R is
// multiplied by pixelSize.
func RadialOrientation(snakes []*snake.Snake, center geom.Point, pixelSize float64) []Radial {
	var out []Radial
	for _, s := range snakes {
		v := s.Vertices()
		for i := 0; i+1 < len(v); i++ {
			r := RTheta(v[i], v[i+1], center)
			r.R *= pixelSize
			out = append(out, r)
		}
	}

	return out
}

// Spherical is the direction of a segment as a polar angle Theta in [0, 180)
// from +z and an azimuth Phi in (-90, 90] from +x. Direction sign is
// ignored.
type Spherical struct {
	Theta float64
	Phi   float64
}

// ThetaPhi computes the Spherical direction of v.
func ThetaPhi(v geom.Vector) Spherical {
	const eps = geom.Epsilon
	r := v.Length()
	switch {
	case math.Abs(v.X) < eps && math.Abs(v.Y) < eps:
		return Spherical{}
	case math.Abs(v.X) < eps:
		if v.Y < -eps {
			v = v.Negate()
		}
		return Spherical{Theta: math.Acos(v.Z/r) * 180 / math.Pi, Phi: 90}
	default:
		if v.X < -eps {
			v = v.Negate()
		}
		return Spherical{
			Theta: math.Acos(v.Z/r) * 180 / math.Pi,
			Phi:   math.Atan(v.Y/v.X) * 180 / math.Pi,
		}
	}
}

// SphericalOrientation measures every segment with both ends strictly
// within maxR of center.
func SphericalOrientation(snakes []*snake.Snake, center geom.Point, maxR float64) []Spherical {
	var out []Spherical
	for _, s := range snakes {
		v := s.Vertices()
		for i := 0; i+1 < len(v); i++ {
			if v[i].Distance(center) < maxR && v[i+1].Distance(center) < maxR {
				out = append(out, ThetaPhi(v[i].Sub(v[i+1])))
			}
		}
	}

	return out
}

// Curvature estimates the curvature along each snake from unit tangents
// coarse snaxels apart: |t1 - t2| / (coarse * spacing).
func Curvature(snakes []*snake.Snake, coarse int, spacing float64) ([]float64, error) {
	if coarse <= 0 {
		return nil, ErrCoarseGraining
	}
	length := float64(coarse) * spacing
	var out []float64
	for _, s := range snakes {
		v := s.Vertices()
		for i := 0; i < len(v)-2*coarse; i += coarse {
			t1 := geom.Normalize(v[i+coarse].Sub(v[i]))
			t2 := geom.Normalize(v[i+2*coarse].Sub(v[i+coarse]))
			out = append(out, t1.Sub(t2).Length()/length)
		}
	}

	return out, nil
}
