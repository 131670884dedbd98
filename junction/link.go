package junction

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/snake"
)

// LinkSegments concatenates segments along paired tips into new snakes.
// Every segment ends up in exactly one result. A chain that leads back to a
// segment already in it becomes a closed snake. Results are resampled;
// callers drop the ones that turn non-viable.
func (m *Manager) LinkSegments() ([]*snake.Snake, error) {
	if !m.configured {
		return nil, ErrNotConfigured
	}
	work := arraystack.New()
	for i := len(m.segments) - 1; i >= 0; i-- {
		work.Push(i)
	}

	var out []*snake.Snake
	for !work.Empty() {
		v, _ := work.Pop()
		i := v.(int)
		if !m.alive[i] {
			continue
		}
		pts, open := m.chain(i)
		s := snake.New(m.segments[i].Env(), pts, open, false)
		s.Resample()
		out = append(out, s)
	}

	return out, nil
}

// chain collects the points reachable from segment i, walking first from its
// head and then from its tail.
func (m *Manager) chain(i int) ([]geom.Point, bool) {
	seg := m.segments[i]
	m.alive[i] = false
	pts := append([]geom.Point(nil), seg.Vertices()...)
	if !seg.Open() {
		return pts, false
	}

	visited := hashset.New(i)
	open := true
	for _, fromHead := range []bool{true, false} {
		h := tailHandle(i)
		if fromHead {
			h = headHandle(i)
		}
		for n := m.tips[h].neighbor; n != noTip; n = m.tips[other(n)].neighbor {
			s := m.tips[n].Segment
			if visited.Contains(s) {
				open = false
				break
			}
			visited.Add(s)
			m.alive[s] = false
			pts = join(pts, m.segments[s].Vertices(), m.tips[n].Head, fromHead)
		}
	}
	if !open && len(pts) > 1 && pts[0].Distance(pts[len(pts)-1]) < geom.Epsilon {
		pts = pts[:len(pts)-1]
	}

	return pts, open
}

// join attaches seg to the head or tail side of pts. The entry tip of seg
// (its head when isHead) must meet pts, so seg is reversed as needed. A
// joint point present in both is kept once.
func join(pts, seg []geom.Point, isHead, fromHead bool) []geom.Point {
	p := append([]geom.Point(nil), seg...)
	if isHead == fromHead {
		for a, b := 0, len(p)-1; a < b; a, b = a+1, b-1 {
			p[a], p[b] = p[b], p[a]
		}
	}
	if fromHead {
		if len(p) > 0 && len(pts) > 0 && p[len(p)-1].Distance(pts[0]) < geom.Epsilon {
			p = p[:len(p)-1]
		}

		return append(p, pts...)
	}
	if len(p) > 0 && len(pts) > 0 && p[0].Distance(pts[len(pts)-1]) < geom.Epsilon {
		p = p[1:]
	}

	return append(pts, p...)
}
