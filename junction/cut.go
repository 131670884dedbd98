package junction

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/snake"
)

// CutAtTJunctions splits every snake at the snaxels touched by a tip of
// another open snake. A snake is cut at vertex k when such a tip lies within
// the grouping distance of k and the pieces on both sides are longer than the
// grouping distance. Adjacent pieces share the cut vertex. Snakes without
// cuts are returned unchanged.
func (m *Manager) CutAtTJunctions(snakes []*snake.Snake) []*snake.Snake {
	thr := m.params.GroupingDistanceThreshold
	var out []*snake.Snake
	for i, s := range snakes {
		cuts := treeset.NewWith(utils.IntComparator)
		for j, o := range snakes {
			if j == i || !o.Open() || o.Len() < 2 {
				continue
			}
			for _, tip := range []geom.Point{o.Head(), o.Tail()} {
				if !s.PassThrough(tip, thr) {
					continue
				}
				if k, d := s.NearestVertex(tip); d < thr {
					cuts.Add(k)
				}
			}
		}
		if cuts.Empty() {
			out = append(out, s)
			continue
		}

		ks := make([]int, 0, cuts.Size())
		for _, v := range cuts.Values() {
			ks = append(ks, v.(int))
		}
		pieces := cutPolyline(s.Vertices(), ks, s.Open(), thr)
		if pieces == nil {
			out = append(out, s)
			continue
		}
		for _, p := range pieces {
			out = append(out, snake.New(s.Env(), p, true, false))
		}
	}

	return out
}

// cutPolyline splits pts at the sorted indices ks, skipping cuts that would
// leave a piece of length thr or less. A closed curve is opened at its first
// cut. Returns nil when no cut survives.
func cutPolyline(pts []geom.Point, ks []int, open bool, thr float64) [][]geom.Point {
	n := len(pts)
	path := pts
	if !open {
		c0 := ks[0]
		path = make([]geom.Point, 0, n+1)
		path = append(path, pts[c0:]...)
		path = append(path, pts[:c0+1]...)
		shifted := make([]int, 0, len(ks))
		for _, k := range ks[1:] {
			shifted = append(shifted, (k-c0+n)%n)
		}
		ks = shifted
	}

	cum := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		cum[i] = cum[i-1] + path[i].Distance(path[i-1])
	}
	end := len(path) - 1

	bounds := []int{0}
	for _, k := range ks {
		last := bounds[len(bounds)-1]
		if k <= last || k >= end {
			continue
		}
		if cum[k]-cum[last] > thr && cum[end]-cum[k] > thr {
			bounds = append(bounds, k)
		}
	}
	if open && len(bounds) == 1 {
		return nil
	}
	bounds = append(bounds, end)

	out := make([][]geom.Point, 0, len(bounds)-1)
	for b := 1; b < len(bounds); b++ {
		out = append(out, append([]geom.Point(nil), path[bounds[b-1]:bounds[b]+1]...))
	}

	return out
}
