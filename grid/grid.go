package grid

import "fmt"

// New builds a Grid for the given size.
// Returns ErrEmptyGrid if any extent is below one.
// Complexity: O(1).
func New(size Size) (*Grid, error) {
	for d, n := range size {
		if n <= 0 {
			return nil, fmt.Errorf("New(%v) axis %d: %w", size, d, ErrEmptyGrid)
		}
	}
	g := &Grid{size: size, dim: 3}
	if size[2] == 1 {
		g.dim = 2
	}
	for axis := 0; axis < g.dim; axis++ {
		g.lateral[axis] = lateralOffsets(axis, g.dim)
	}

	return g, nil
}

// lateralOffsets lists the offsets perpendicular to axis, in increasing order
// of the first lateral axis and then the second.
func lateralOffsets(axis, dim int) []Index {
	if dim == 2 {
		a := (axis + 1) % 2
		out := make([]Index, 0, 3)
		for i := -1; i <= 1; i++ {
			var o Index
			o[a] = i
			out = append(out, o)
		}

		return out
	}
	a, b := (axis+1)%3, (axis+2)%3
	out := make([]Index, 0, 9)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			var o Index
			o[a], o[b] = i, j
			out = append(out, o)
		}
	}

	return out
}

// Size returns the voxel extent.
func (g *Grid) Size() Size { return g.size }

// Dim returns 2 for planar grids and 3 otherwise.
func (g *Grid) Dim() int { return g.dim }

// Len returns the number of voxels.
func (g *Grid) Len() int { return g.size[0] * g.size[1] * g.size[2] }

// InBounds reports whether idx lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(idx Index) bool {
	for d := 0; d < 3; d++ {
		if idx[d] < 0 || idx[d] >= g.size[d] {
			return false
		}
	}

	return true
}

// Offset maps idx to its row-major offset x + X*(y + Y*z).
// Callers guarantee InBounds(idx).
func (g *Grid) Offset(idx Index) int {
	return idx[0] + g.size[0]*(idx[1]+g.size[1]*idx[2])
}

// Coordinate converts a row-major offset back to an Index.
func (g *Grid) Coordinate(off int) Index {
	x := off % g.size[0]
	off /= g.size[0]

	return Index{x, off % g.size[1], off / g.size[1]}
}

// LateralOffsets returns the perpendicular offsets searched when the next voxel
// along axis is not a match (3 in 2-D, 9 in 3-D).
func (g *Grid) LateralOffsets(axis int) []Index {
	if axis < 0 || axis >= g.dim {
		return nil
	}

	return g.lateral[axis]
}

// Scan visits every voxel with axis as the outermost loop, followed by
// (axis+1) mod dim and (axis+2) mod dim. fn returning false stops the scan.
func (g *Grid) Scan(axis int, fn func(Index) bool) error {
	if axis < 0 || axis >= g.dim {
		return fmt.Errorf("Scan(%d): %w", axis, ErrAxis)
	}
	order := [3]int{axis, (axis + 1) % g.dim, 2}
	if g.dim == 3 {
		order[2] = (axis + 2) % 3
	}
	var idx Index
	for i := 0; i < g.size[order[0]]; i++ {
		idx[order[0]] = i
		for j := 0; j < g.size[order[1]]; j++ {
			idx[order[1]] = j
			for k := 0; k < g.size[order[2]]; k++ {
				idx[order[2]] = k
				if !fn(idx) {
					return nil
				}
			}
		}
	}

	return nil
}

// Lines calls fn with the first voxel of every line of voxels running along axis.
func (g *Grid) Lines(axis int, fn func(start Index)) error {
	if axis < 0 || axis >= g.dim {
		return fmt.Errorf("Lines(%d): %w", axis, ErrAxis)
	}
	var idx Index
	for z := 0; z < g.size[2]; z++ {
		for y := 0; y < g.size[1]; y++ {
			for x := 0; x < g.size[0]; x++ {
				idx = Index{x, y, z}
				if idx[axis] != 0 {
					continue
				}
				fn(idx)
			}
		}
	}

	return nil
}
