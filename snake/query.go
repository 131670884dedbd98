package snake

import (
	"math"
	"sort"

	"github.com/NoSuchProcess/SOAX/geom"
)

// PassThrough reports whether the curve passes within threshold of p.
func (s *Snake) PassThrough(p geom.Point, threshold float64) bool {
	if !s.near(p, threshold) {
		return false
	}
	_, _, d, ok := geom.NearestOnPolyline(p, s.vertices, !s.open)

	return ok && d < threshold
}

// NearestVertex returns the index of the snaxel closest to p and its distance.
// An empty snake returns -1.
func (s *Snake) NearestVertex(p geom.Point) (int, float64) {
	best, bestD := -1, 0.0
	for i, v := range s.vertices {
		if d := v.Distance(p); best < 0 || d < bestD {
			best, bestD = i, d
		}
	}

	return best, bestD
}

// Intensities samples the image at every snaxel.
func (s *Snake) Intensities() []float64 {
	out := make([]float64, len(s.vertices))
	for i, v := range s.vertices {
		out[i] = s.env.Sampler.SampleIntensity(v)
	}

	return out
}

// MeanIntensity is the average of Intensities.
func (s *Snake) MeanIntensity() float64 {
	if len(s.vertices) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.Intensities() {
		sum += v
	}

	return sum / float64(len(s.vertices))
}

// LocalSNR is the contrast of snaxel i against its local background: the
// snaxel intensity minus the background mean, over the background standard
// deviation. The background is sampled perpendicular to the local tangent at
// radii near..far. ok is false when the background is undefined or flat.
func (s *Snake) LocalSNR(i int) (snr float64, ok bool) {
	n := len(s.vertices)
	if i < 0 || i >= n || n < 2 {
		return 0, false
	}
	prev, next := max(0, i-1), min(n-1, i+1)
	if !s.open {
		prev, next = (i-1+n)%n, (i+1)%n
	}
	dir := geom.Normalize(s.vertices[next].Sub(s.vertices[prev]))
	if dir == (geom.Vector{}) {
		return 0, false
	}

	bg := s.backgroundSamples(s.vertices[i], dir)
	if len(bg) < 2 {
		return 0, false
	}
	m := mean(bg)
	var ss float64
	for _, v := range bg {
		ss += (v - m) * (v - m)
	}
	std := math.Sqrt(ss / float64(len(bg)-1))
	if std < geom.Epsilon {
		return 0, false
	}

	return (s.env.Sampler.SampleIntensity(s.vertices[i]) - m) / std, true
}

// IsShorter orders snakes by arc length.
func IsShorter(a, b *Snake) bool { return a.length < b.length }

// SortShortestFirst sorts snakes by increasing length, keeping the relative
// order of equal lengths.
func SortShortestFirst(snakes []*Snake) {
	sort.SliceStable(snakes, func(i, j int) bool { return IsShorter(snakes[i], snakes[j]) })
}

// TotalPoints returns the number of snaxels over all snakes.
func TotalPoints(snakes []*Snake) int {
	var n int
	for _, s := range snakes {
		n += s.Len()
	}

	return n
}
