package snake

import (
	"math"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/solver"
)

// Resample redistributes the snaxels uniformly along the curve at the
// configured spacing. Open curves keep their endpoints exactly; closed curves
// do not repeat the first snaxel at the end. A curve shorter than the minimum
// length, or one that would end up with fewer than solver.MinimumEvolvingSize
// snaxels, becomes non-viable.
func (s *Snake) Resample() {
	if len(s.vertices) < 2 {
		s.markNonViable()
		return
	}
	s.updateGeometry()
	p := s.env.Params
	if s.length < p.MinimumLength || s.length < geom.Epsilon {
		s.markNonViable()
		return
	}

	nseg := int(math.Floor(s.length/p.Spacing + 1e-6))
	if nseg < 1 {
		nseg = 1
	}
	count := nseg + 1
	if !s.open {
		count = nseg
	}
	if count < solver.MinimumEvolvingSize {
		s.markNonViable()
		return
	}

	path := s.vertices
	if !s.open {
		path = append(append([]geom.Point(nil), s.vertices...), s.vertices[0])
	}
	cum := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		cum[i] = cum[i-1] + path[i].Distance(path[i-1])
	}

	step := s.length / float64(nseg)
	out := make([]geom.Point, count)
	j := 0
	for i := 0; i < count; i++ {
		target := float64(i) * step
		for j < len(path)-2 && cum[j+1] < target {
			j++
		}
		seg := cum[j+1] - cum[j]
		if seg < geom.Epsilon {
			out[i] = path[j]
			continue
		}
		t := math.Min(1, math.Max(0, (target-cum[j])/seg))
		out[i] = geom.Lerp(path[j], path[j+1], t)
	}
	if s.open {
		out[count-1] = s.vertices[len(s.vertices)-1]
	}
	s.vertices = out
	s.updateGeometry()
}
