package grid

// Flags stores one boolean per voxel and axis (up to three axes).
type Flags struct {
	g    *Grid
	bits []uint8
}

// NewFlags returns an all-false flag volume over g.
func NewFlags(g *Grid) *Flags {
	return &Flags{g: g, bits: make([]uint8, g.Len())}
}

// Grid returns the underlying lattice.
func (f *Flags) Grid() *Grid { return f.g }

// Get reports the flag of idx on axis. Out-of-bounds indices read as false.
func (f *Flags) Get(idx Index, axis int) bool {
	if !f.g.InBounds(idx) {
		return false
	}

	return f.bits[f.g.Offset(idx)]&(1<<uint(axis)) != 0
}

// Set assigns the flag of idx on axis. Out-of-bounds indices are ignored.
func (f *Flags) Set(idx Index, axis int, v bool) {
	if !f.g.InBounds(idx) {
		return
	}
	off := f.g.Offset(idx)
	if v {
		f.bits[off] |= 1 << uint(axis)
	} else {
		f.bits[off] &^= 1 << uint(axis)
	}
}

// Clear resets every axis flag of idx.
func (f *Flags) Clear(idx Index) {
	if f.g.InBounds(idx) {
		f.bits[f.g.Offset(idx)] = 0
	}
}

// Count returns how many voxels carry the flag on axis.
func (f *Flags) Count(axis int) int {
	var n int
	for _, b := range f.bits {
		if b&(1<<uint(axis)) != 0 {
			n++
		}
	}

	return n
}
