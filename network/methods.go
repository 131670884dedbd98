package network

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddVertex inserts v. Adding an identical ID of the same kind is a no-op.
// Returns ErrEmptyVertexID or ErrDuplicateVertex.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v Vertex) error {
	if v.ID == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if old, ok := g.vertices[v.ID]; ok {
		if old.Kind != v.Kind {
			return fmt.Errorf("AddVertex(%s): %w", v.ID, ErrDuplicateVertex)
		}
		return nil
	}
	g.vertices[v.ID] = &v

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[v.ID]; !ok {
		g.adjacency[v.ID] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given ID.
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("Vertex(%s): %w", id, ErrVertexNotFound)
	}

	return *v, nil
}

// AddEdge connects two existing vertices and returns the new edge ID.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, length float64, filament int) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	g.muVert.RLock()
	_, okFrom := g.vertices[from]
	_, okTo := g.vertices[to]
	g.muVert.RUnlock()
	if !okFrom || !okTo {
		return "", fmt.Errorf("AddEdge(%s, %s): %w", from, to, ErrVertexNotFound)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Length: length, Filament: filament}
	g.link(from, to, eid)
	if from != to {
		g.link(to, from, eid)
	}

	return eid, nil
}

func (g *Graph) link(a, b, eid string) {
	if g.adjacency[a][b] == nil {
		g.adjacency[a][b] = make(map[string]struct{})
	}
	g.adjacency[a][b][eid] = struct{}{}
}

// Neighbors returns the edges incident to id, sorted by edge ID.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("Neighbors(%s): %w", id, ErrVertexNotFound)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, set := range g.adjacency[id] {
		for eid := range set {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeLess(out[i].ID, out[j].ID) })

	return out, nil
}

// Degree returns the number of edge ends at id; a self-loop counts twice.
func (g *Graph) Degree(id string) (int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range edges {
		n++
		if e.From == e.To {
			n++
		}
	}

	return n, nil
}

// Vertices returns all vertices sorted by ID.
// Complexity: O(V log V).
func (g *Graph) Vertices() []Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeLess(out[i].ID, out[j].ID) })

	return out
}

// Stats counts vertices by kind and sums edge lengths.
func (g *Graph) Stats() Stats {
	var st Stats
	g.muVert.RLock()
	for _, v := range g.vertices {
		switch v.Kind {
		case KindJunction:
			st.Junctions++
		case KindTip:
			st.Tips++
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	st.Edges = len(g.edges)
	for _, e := range g.edges {
		st.Length += e.Length
	}
	g.muEdgeAdj.RUnlock()

	return st
}

// edgeLess orders "e<n>" IDs numerically.
func edgeLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
