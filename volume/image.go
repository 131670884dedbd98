package volume

import (
	"math"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/grid"
)

// Image is a float voxel volume. Planar images have Size()[2] == 1.
type Image struct {
	g    *grid.Grid
	data []float64
}

// NewImage allocates a zero image.
func NewImage(size grid.Size) (*Image, error) {
	g, err := grid.New(size)
	if err != nil {
		return nil, err
	}

	return &Image{g: g, data: make([]float64, g.Len())}, nil
}

// Grid returns the image lattice.
func (m *Image) Grid() *grid.Grid { return m.g }

// GridSize returns the voxel extent.
func (m *Image) GridSize() grid.Size { return m.g.Size() }

// Is2D reports whether the image is planar.
func (m *Image) Is2D() bool { return m.g.Dim() == 2 }

// IsInsideRegion reports whether idx lies within the image.
func (m *Image) IsInsideRegion(idx grid.Index) bool { return m.g.InBounds(idx) }

// At returns the voxel value at idx; out-of-bounds reads return 0.
func (m *Image) At(idx grid.Index) float64 {
	if !m.g.InBounds(idx) {
		return 0
	}

	return m.data[m.g.Offset(idx)]
}

// Set assigns the voxel value at idx; out-of-bounds writes are ignored.
func (m *Image) Set(idx grid.Index, v float64) {
	if m.g.InBounds(idx) {
		m.data[m.g.Offset(idx)] = v
	}
}

// Range returns the minimum and maximum voxel values.
func (m *Image) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range m.data {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}

// Clone returns a deep copy.
func (m *Image) Clone() *Image {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Image{g: m.g, data: data}
}

// SampleIntensity interpolates linearly between the surrounding voxels.
// Points outside the image are clamped to the border.
func (m *Image) SampleIntensity(p geom.Point) float64 {
	return interpolate(m.g, m.data, p)
}

// interpolate performs trilinear interpolation over data laid out on g.
func interpolate(g *grid.Grid, data []float64, p geom.Point) float64 {
	size := g.Size()
	var base grid.Index
	var frac [3]float64
	for d := 0; d < 3; d++ {
		c := geom.Axis(p, d)
		c = math.Max(0, math.Min(float64(size[d]-1), c))
		f := math.Floor(c)
		base[d] = int(f)
		frac[d] = c - f
		if base[d] >= size[d]-1 {
			base[d] = size[d] - 1
			frac[d] = 0
		}
	}

	var sum float64
	for corner := 0; corner < 8; corner++ {
		w := 1.0
		idx := base
		for d := 0; d < 3; d++ {
			if corner&(1<<uint(d)) != 0 {
				if frac[d] == 0 {
					w = 0
					break
				}
				idx[d]++
				w *= frac[d]
			} else {
				w *= 1 - frac[d]
			}
		}
		if w == 0 {
			continue
		}
		sum += w * data[g.Offset(idx)]
	}

	return sum
}
