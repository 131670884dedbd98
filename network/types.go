package network

import (
	"errors"
	"sync"

	"github.com/NoSuchProcess/SOAX/geom"
)

// Sentinel errors for network graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex has an empty ID.
	ErrEmptyVertexID = errors.New("network: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("network: vertex not found")

	// ErrDuplicateVertex indicates a vertex ID reused for a different kind.
	ErrDuplicateVertex = errors.New("network: vertex already exists")
)

// Kind classifies network vertices.
type Kind int

const (
	// KindJunction is a confirmed meeting point of filaments.
	KindJunction Kind = iota
	// KindTip is a free filament end.
	KindTip
	// KindLoop anchors a closed filament without junctions.
	KindLoop
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindJunction:
		return "junction"
	case KindTip:
		return "tip"
	case KindLoop:
		return "loop"
	default:
		return "unknown"
	}
}

// Vertex is a node of the filament network.
type Vertex struct {
	// ID uniquely identifies this vertex within its Graph.
	ID string

	// Point is the vertex position in image coordinates.
	Point geom.Point

	// Kind tells junctions from tips.
	Kind Kind
}

// Edge is one filament piece between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From and To are the endpoint vertex IDs, in filament orientation.
	From string
	To   string

	// Length is the arc length of the piece.
	Length float64

	// Filament is the index of the snake the piece belongs to.
	Filament int
}

// Stats summarizes a Graph.
type Stats struct {
	Junctions int
	Tips      int
	Edges     int
	Length    float64 // total edge length
}

// Graph is an undirected multigraph with self-loops.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacency[a][b][edgeID] mirrors every edge in both directions.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
}
