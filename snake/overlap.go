package snake

import "github.com/NoSuchProcess/SOAX/geom"

// handleOverlap resolves contact with converged snakes.
//
//   - every snaxel overlapping: the snake is retired without subsnakes
//   - overlapping head or tail run: the run is cut off and the tip is
//     hooked onto the nearest point of the converged curve
//   - overlapping interior run: the non-overlapping runs become subsnakes
//     and the snake is retired
func (s *Snake) handleOverlap(converged []*Snake) {
	if len(converged) == 0 {
		return
	}
	thr := s.env.Params.OverlapThreshold
	n := len(s.vertices)
	over := make([]bool, n)
	hook := make([]geom.Point, n)
	count := 0
	for i, p := range s.vertices {
		if q, ok := overlapPoint(p, converged, s, thr); ok {
			over[i], hook[i] = true, q
			count++
		}
	}
	if count == 0 {
		return
	}
	if count == n {
		s.markNonViable()
		return
	}

	if !s.open {
		s.split(over, 0, n-1, nil, nil)
		return
	}

	lo, hi := 0, n-1
	var head, tail *geom.Point
	if over[0] {
		for over[lo] {
			lo++
		}
		h := hook[lo-1]
		head = &h
	}
	if over[n-1] {
		for over[hi] {
			hi--
		}
		t := hook[hi+1]
		tail = &t
	}
	for i := lo; i <= hi; i++ {
		if over[i] {
			s.split(over, lo, hi, head, tail)
			return
		}
	}

	pts := make([]geom.Point, 0, hi-lo+3)
	if head != nil {
		pts = append(pts, *head)
		s.headHooked = true
	}
	pts = append(pts, s.vertices[lo:hi+1]...)
	if tail != nil {
		pts = append(pts, *tail)
		s.tailHooked = true
	}
	s.vertices = pts
	s.Resample()
}

// overlapPoint returns the closest point of the first converged snake lying
// within thr of p.
func overlapPoint(p geom.Point, converged []*Snake, self *Snake, thr float64) (geom.Point, bool) {
	for _, c := range converged {
		if c == self || !c.viable || !c.near(p, thr) {
			continue
		}
		q, _, d, ok := geom.NearestOnPolyline(p, c.vertices, !c.open)
		if ok && d < thr {
			return q, true
		}
	}

	return geom.Point{}, false
}

// split turns the non-overlapping runs of vertices[lo..hi] into subsnakes and
// retires the snake. Closed snakes are rotated so no run wraps around.
// head and tail, when set, are prepended to the first and appended to the
// last run.
func (s *Snake) split(over []bool, lo, hi int, head, tail *geom.Point) {
	n := len(s.vertices)
	idx := make([]int, 0, hi-lo+1)
	if s.open {
		for i := lo; i <= hi; i++ {
			idx = append(idx, i)
		}
	} else {
		start := 0
		for !over[start] {
			start++
		}
		for k := 0; k < n; k++ {
			idx = append(idx, (start+k)%n)
		}
	}

	var runs [][]geom.Point
	var cur []geom.Point
	for _, i := range idx {
		if over[i] {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, s.vertices[i])
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	if len(runs) > 0 && head != nil && !over[lo] {
		runs[0] = append([]geom.Point{*head}, runs[0]...)
	}
	if len(runs) > 0 && tail != nil && !over[hi] {
		runs[len(runs)-1] = append(runs[len(runs)-1], *tail)
	}

	s.subsnakes = s.subsnakes[:0]
	for _, r := range runs {
		sub := New(s.env, r, true, true)
		if sub.Resample(); sub.viable {
			s.subsnakes = append(s.subsnakes, sub)
		}
	}
	s.markNonViable()
}
