package junction

import (
	"math"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/snake"
)

// Initialize replaces the segment set and builds one head and one tail tip per
// segment. Tips of closed segments are kept in the arena but never grouped.
func (m *Manager) Initialize(segments []*snake.Snake) {
	m.Reset()
	m.segments = append([]*snake.Snake(nil), segments...)
	m.alive = make([]bool, len(segments))
	m.tips = make([]Tip, 2*len(segments))
	for i, s := range m.segments {
		m.alive[i] = true
		valid := s.Open() && s.Len() >= 2
		m.tips[headHandle(i)] = m.newTip(i, true, valid)
		m.tips[tailHandle(i)] = m.newTip(i, false, valid)
	}
	m.sets = newDSU(len(m.tips))
}

func (m *Manager) newTip(seg int, head, valid bool) Tip {
	t := Tip{Segment: seg, Head: head, neighbor: noTip, valid: valid}
	s := m.segments[seg]
	if s.Len() == 0 {
		return t
	}
	t.Pos = s.Tail()
	if head {
		t.Pos = s.Head()
	}
	t.Dir = s.TipDirection(head, m.params.GroupingDelta)

	return t
}

// Segments returns the segments passed to Initialize.
func (m *Manager) Segments() []*snake.Snake { return m.segments }

// Tips returns the tip arena.
func (m *Manager) Tips() []Tip { return m.tips }

// deviation is the angle between a's direction and the reverse of b's: zero
// when b continues a in a straight line, π when they fold back.
func deviation(a, b Tip) float64 {
	return geom.Angle(a.Dir, b.Dir.Negate())
}

// Union merges tips that are closer than the grouping distance and do not
// fold back onto each other.
func (m *Manager) Union() {
	dist := m.params.GroupingDistanceThreshold
	for a := range m.tips {
		if !m.tips[a].valid {
			continue
		}
		for b := a + 1; b < len(m.tips); b++ {
			tb := m.tips[b]
			if !tb.valid || m.tips[a].Pos.Distance(tb.Pos) >= dist {
				continue
			}
			if deviation(m.tips[a], tb) < m.params.DirectionThreshold {
				m.sets.union(a, b)
			}
		}
	}
}

// clusters returns the tip sets with at least two members, each in handle
// order, ordered by their smallest handle.
func (m *Manager) clusters() [][]int {
	index := make(map[int]int)
	var out [][]int
	for h, t := range m.tips {
		if !t.valid {
			continue
		}
		r := m.sets.find(h)
		k, ok := index[r]
		if !ok {
			k = len(out)
			index[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], h)
	}
	kept := out[:0]
	for _, c := range out {
		if len(c) > 1 {
			kept = append(kept, c)
		}
	}

	return kept
}

// Configure pairs tips within each cluster and places the junctions.
//
// Tips are visited in handle order; each unpaired tip picks among the
// unpaired tips of other segments whose deviation is below the direction
// threshold. Candidates within one spacing of the nearest one count as tied
// and the straightest continuation wins. Every tip of the cluster is then
// moved onto the centroid of the cluster's cached tip positions.
//
// Both tips of one segment never pair with each other, so a segment whose
// ends share a cluster stays open; only chains of two or more segments can
// close into a loop.
func (m *Manager) Configure() {
	m.junctions = m.junctions[:0]
	for _, c := range m.clusters() {
		for _, a := range c {
			if m.tips[a].neighbor != noTip {
				continue
			}
			if b := m.pick(a, c); b != noTip {
				m.tips[a].neighbor = b
				m.tips[b].neighbor = a
			}
		}

		pts := make([]geom.Point, len(c))
		for i, h := range c {
			pts[i] = m.tips[h].Pos
		}
		j := geom.Centroid(pts)
		for _, h := range c {
			t := m.tips[h]
			s := m.segments[t.Segment]
			if t.Head {
				s.SetVertex(0, j)
			} else {
				s.SetVertex(s.Len()-1, j)
			}
		}
		m.junctions = append(m.junctions, Junction{Point: j, Degree: len(c)})
	}
	m.configured = true
}

func (m *Manager) pick(a int, cluster []int) int {
	ta := m.tips[a]
	type cand struct {
		h      int
		d, dev float64
	}
	var cs []cand
	minD := math.Inf(1)
	for _, b := range cluster {
		tb := m.tips[b]
		if b == a || tb.neighbor != noTip || tb.Segment == ta.Segment {
			continue
		}
		dev := deviation(ta, tb)
		if dev >= m.params.DirectionThreshold {
			continue
		}
		d := ta.Pos.Distance(tb.Pos)
		cs = append(cs, cand{h: b, d: d, dev: dev})
		minD = math.Min(minD, d)
	}

	best, bestDev := noTip, math.Inf(1)
	for _, c := range cs {
		if c.d <= minD+m.params.Spacing && c.dev < bestDev {
			best, bestDev = c.h, c.dev
		}
	}

	return best
}

// Junctions returns the current junctions.
func (m *Manager) Junctions() []Junction { return m.junctions }

// JunctionPoints returns the positions of the current junctions.
func (m *Manager) JunctionPoints() []geom.Point {
	out := make([]geom.Point, len(m.junctions))
	for i, j := range m.junctions {
		out[i] = j.Point
	}

	return out
}

// SetJunctionPoints replaces the junctions; the degree of each is unknown (0).
func (m *Manager) SetJunctionPoints(pts []geom.Point) {
	m.junctions = make([]Junction, len(pts))
	for i, p := range pts {
		m.junctions[i] = Junction{Point: p}
	}
}

// UpdateJunctions keeps the junctions that at least two snakes pass through
// within the grouping distance.
func (m *Manager) UpdateJunctions(snakes []*snake.Snake) {
	thr := m.params.GroupingDistanceThreshold
	kept := m.junctions[:0]
	for _, j := range m.junctions {
		n := 0
		for _, s := range snakes {
			if s.PassThrough(j.Point, thr) {
				n++
			}
		}
		if n > 1 {
			kept = append(kept, j)
		}
	}
	m.junctions = kept
}

// Reset forgets segments, tips and junctions.
func (m *Manager) Reset() {
	m.segments = nil
	m.alive = nil
	m.tips = nil
	m.sets = nil
	m.junctions = nil
	m.configured = false
}
