// Package network turns extracted filaments into an undirected multigraph.
//
// Vertices are junctions (where filaments meet) and free tips (open filament
// ends away from any junction). Every filament is cut at the junctions it
// passes through; each piece becomes an edge carrying its arc length and the
// index of the filament it came from. A closed filament that meets no
// junction is represented by a self-loop on a vertex at its first snaxel.
//
// All Graph methods are safe for concurrent use: muVert guards the vertex
// catalog and muEdgeAdj guards edges and adjacency, as two separate locks.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrDuplicateVertex - vertex ID already present with a different kind.
package network
