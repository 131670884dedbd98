package network

import (
	"fmt"
	"math"
	"sort"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/snake"
)

// stop is a vertex along a filament, at arc length arc from its head.
type stop struct {
	arc float64
	id  string
}

// JunctionID names the vertex of junction j.
func JunctionID(j int) string { return fmt.Sprintf("j%d", j) }

// Build assembles the network of snakes meeting at junctions. A snake uses a
// junction when it passes within threshold of it; an open end within
// threshold (along the curve) of such a junction ends there instead of at a
// free tip.
func Build(snakes []*snake.Snake, junctions []geom.Point, threshold float64) (*Graph, error) {
	g := NewGraph()
	for j, p := range junctions {
		if err := g.AddVertex(Vertex{ID: JunctionID(j), Point: p, Kind: KindJunction}); err != nil {
			return nil, err
		}
	}

	for i, s := range snakes {
		if s.Len() < 2 {
			continue
		}
		if err := g.addFilament(i, s, junctions, threshold); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *Graph) addFilament(i int, s *snake.Snake, junctions []geom.Point, threshold float64) error {
	pts := s.Vertices()
	closed := !s.Open()
	total := s.Length()

	cum := make([]float64, len(pts))
	for k := 1; k < len(pts); k++ {
		cum[k] = cum[k-1] + pts[k].Distance(pts[k-1])
	}

	var stops []stop
	for j, p := range junctions {
		q, seg, d, ok := geom.NearestOnPolyline(p, pts, closed)
		if !ok || d >= threshold {
			continue
		}
		stops = append(stops, stop{arc: cum[seg] + pts[seg].Distance(q), id: JunctionID(j)})
	}
	sort.SliceStable(stops, func(a, b int) bool { return stops[a].arc < stops[b].arc })

	if closed {
		return g.addLoop(i, s, stops, total)
	}

	if len(stops) == 0 || stops[0].arc >= threshold {
		id := fmt.Sprintf("t%d.h", i)
		if err := g.AddVertex(Vertex{ID: id, Point: s.Head(), Kind: KindTip}); err != nil {
			return err
		}
		stops = append([]stop{{arc: 0, id: id}}, stops...)
	}
	if last := stops[len(stops)-1]; len(stops) == 1 || last.arc <= total-threshold {
		id := fmt.Sprintf("t%d.t", i)
		if err := g.AddVertex(Vertex{ID: id, Point: s.Tail(), Kind: KindTip}); err != nil {
			return err
		}
		stops = append(stops, stop{arc: total, id: id})
	}

	for k := 1; k < len(stops); k++ {
		if _, err := g.AddEdge(stops[k-1].id, stops[k].id, stops[k].arc-stops[k-1].arc, i); err != nil {
			return err
		}
	}

	return nil
}

func (g *Graph) addLoop(i int, s *snake.Snake, stops []stop, total float64) error {
	if len(stops) == 0 {
		id := fmt.Sprintf("l%d", i)
		if err := g.AddVertex(Vertex{ID: id, Point: s.Head(), Kind: KindLoop}); err != nil {
			return err
		}
		_, err := g.AddEdge(id, id, total, i)

		return err
	}
	for k := range stops {
		next := stops[(k+1)%len(stops)]
		l := math.Mod(next.arc-stops[k].arc+total, total)
		if len(stops) == 1 {
			l = total
		}
		if _, err := g.AddEdge(stops[k].id, next.id, l, i); err != nil {
			return err
		}
	}

	return nil
}
