package geom

// PolylineLength returns the length of the polyline through pts. When closed
// is set the segment from the last point back to the first is included.
func PolylineLength(pts []Point, closed bool) float64 {
	var l float64
	for i := 1; i < len(pts); i++ {
		l += pts[i].Distance(pts[i-1])
	}
	if closed && len(pts) > 2 {
		l += pts[len(pts)-1].Distance(pts[0])
	}

	return l
}

// ProjectOnSegment returns the point of segment [a, b] closest to p and the
// segment parameter t in [0, 1].
func ProjectOnSegment(p, a, b Point) (Point, float64) {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 < Epsilon*Epsilon {
		return a, 0
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return a.Add(ab.MulScalar(t)), t
}

// SegmentDistance returns the distance from p to segment [a, b].
func SegmentDistance(p, a, b Point) float64 {
	q, _ := ProjectOnSegment(p, a, b)

	return p.Distance(q)
}

// NearestOnPolyline returns the point of the polyline closest to p, the index
// of the segment start it lies on, and the distance. A single-point polyline
// returns that point with segment index 0. An empty polyline returns ok=false.
func NearestOnPolyline(p Point, pts []Point, closed bool) (q Point, seg int, dist float64, ok bool) {
	switch len(pts) {
	case 0:
		return Point{}, 0, 0, false
	case 1:
		return pts[0], 0, p.Distance(pts[0]), true
	}
	dist = -1
	n := len(pts) - 1
	if closed && len(pts) > 2 {
		n = len(pts)
	}
	for i := 0; i < n; i++ {
		c, _ := ProjectOnSegment(p, pts[i], pts[(i+1)%len(pts)])
		if d := p.Distance(c); dist < 0 || d < dist {
			q, seg, dist = c, i, d
		}
	}

	return q, seg, dist, true
}
