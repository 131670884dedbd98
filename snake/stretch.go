package snake

import (
	"math"

	"github.com/NoSuchProcess/SOAX/geom"
)

// TipDirection returns the outward unit tangent at the head or tail, measured
// from the snaxel delta steps inside the curve to the tip.
func (s *Snake) TipDirection(head bool, delta int) geom.Vector {
	n := len(s.vertices)
	if n < 2 {
		return geom.Vector{}
	}
	delta = max(1, min(delta, n-1))
	if head {
		return geom.Normalize(s.vertices[0].Sub(s.vertices[delta]))
	}

	return geom.Normalize(s.vertices[n-1].Sub(s.vertices[n-1-delta]))
}

// tipForce is the stretching force at one open tip: the outward tangent times
// stretch times the local contrast of the tip.
func (s *Snake) tipForce(head bool) geom.Vector {
	p := s.env.Params
	n := len(s.vertices)
	delta := max(1, min(p.Delta, n-1))
	dir := s.TipDirection(head, delta)
	if s.env.Is2D() {
		dir.Z = 0
		dir = geom.Normalize(dir)
	}
	if dir == (geom.Vector{}) {
		return geom.Vector{}
	}

	tip := s.vertices[0]
	if !head {
		tip = s.vertices[n-1]
	}
	intensity := s.env.Sampler.SampleIntensity(tip)
	if intensity < p.Background || intensity > p.Foreground {
		return geom.Vector{}
	}

	var fg float64
	for k := 0; k <= delta; k++ {
		i := k
		if !head {
			i = n - 1 - k
		}
		fg += s.env.Sampler.SampleIntensity(s.vertices[i])
	}
	fg /= float64(delta + 1)

	bg, ok := s.localBackground(tip, dir)
	if !ok || fg-bg < geom.Epsilon {
		return geom.Vector{}
	}
	c := math.Max(-1, math.Min(1, (intensity-bg)/(fg-bg)))

	return dir.MulScalar(p.Stretch * c)
}

// localBackground averages the intensity on rays perpendicular to dir around
// tip, at radii radial-near..radial-far.
func (s *Snake) localBackground(tip geom.Point, dir geom.Vector) (float64, bool) {
	samples := s.backgroundSamples(tip, dir)
	if len(samples) == 0 {
		return 0, false
	}

	return mean(samples), true
}

// backgroundSamples collects the intensities on rays perpendicular to dir
// around p. Planar images use the two sides of p; stacks use nsector rays.
// Samples outside the image are skipped.
func (s *Snake) backgroundSamples(p geom.Point, dir geom.Vector) []float64 {
	prm := s.env.Params
	var rays []geom.Vector
	if s.env.Is2D() {
		nrm := geom.Normalize(geom.P(-dir.Y, dir.X, 0))
		rays = []geom.Vector{nrm, nrm.Negate()}
	} else {
		u, w := perpendicularBasis(dir)
		rays = make([]geom.Vector, prm.NSector)
		for k := range rays {
			th := 2 * math.Pi * float64(k) / float64(prm.NSector)
			rays[k] = u.MulScalar(math.Cos(th)).Add(w.MulScalar(math.Sin(th)))
		}
	}

	var out []float64
	for r := prm.RadialNear; r <= prm.RadialFar; r++ {
		for _, ray := range rays {
			q := p.Add(ray.MulScalar(float64(r)))
			if !s.env.Sampler.IsInsideRegion(geom.Round(q)) {
				continue
			}
			out = append(out, s.env.Sampler.SampleIntensity(q))
		}
	}

	return out
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// perpendicularBasis returns two unit vectors orthogonal to d and each other.
func perpendicularBasis(d geom.Vector) (geom.Vector, geom.Vector) {
	ref := geom.P(1, 0, 0)
	if math.Abs(d.X) > 0.9 {
		ref = geom.P(0, 1, 0)
	}
	u := geom.Normalize(d.Cross(ref))
	w := geom.Normalize(d.Cross(u))

	return u, w
}
