package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a size with a non-positive extent.
	ErrEmptyGrid = errors.New("grid: every extent must be at least one voxel")
	// ErrAxis indicates an axis outside the grid's dimensionality.
	ErrAxis = errors.New("grid: axis out of range")
)

// Index addresses one voxel as (x, y, z).
type Index [3]int

// Size is the voxel extent along x, y and z. Planar images use Size[2] == 1.
type Size [3]int

// Grid is an immutable voxel lattice.
// Lateral offsets are precomputed per axis for the forward search.
type Grid struct {
	size    Size
	dim     int
	lateral [3][]Index
}
