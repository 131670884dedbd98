package volume

import (
	"math"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/grid"
)

// minSmoothing is the sigma below which no pre-smoothing is applied.
const minSmoothing = 0.01

// Gradient is a per-voxel gradient field of an intensity-scaled image.
type Gradient struct {
	g       *grid.Grid
	comp    [3][]float64
	scaling float64
}

// ComputeGradient derives the gradient of img scaled by scaling. A zero
// scaling selects 1/max intensity. Stacks (3-D) are smoothed with a Gaussian
// of the given sigma first; planar images are differentiated directly.
func ComputeGradient(img *Image, sigma, scaling float64) (*Gradient, error) {
	if img == nil || len(img.data) == 0 {
		return nil, ErrEmptyImage
	}
	if scaling == 0 {
		scaling = 1
		if _, hi := img.Range(); hi > 0 {
			scaling = 1 / hi
		}
	}

	g := img.g
	work := make([]float64, len(img.data))
	for i, v := range img.data {
		work[i] = v * scaling
	}
	if g.Dim() == 3 && sigma >= minSmoothing {
		kernel := gaussianKernel(sigma)
		for axis := 0; axis < 3; axis++ {
			work = convolveAxis(g, work, kernel, axis)
		}
	}

	out := &Gradient{g: g, scaling: scaling}
	size := g.Size()
	for axis := 0; axis < 3; axis++ {
		out.comp[axis] = make([]float64, len(work))
		if axis >= g.Dim() || size[axis] < 2 {
			continue
		}
		for off := range work {
			idx := g.Coordinate(off)
			lo, hi := idx, idx
			if idx[axis] > 0 {
				lo[axis]--
			}
			if idx[axis] < size[axis]-1 {
				hi[axis]++
			}
			out.comp[axis][off] = (work[g.Offset(hi)] - work[g.Offset(lo)]) / float64(hi[axis]-lo[axis])
		}
	}

	return out, nil
}

// Scaling returns the intensity scaling the gradient was computed with.
func (gr *Gradient) Scaling() float64 { return gr.scaling }

// SampleGradient interpolates the gradient vector at p.
func (gr *Gradient) SampleGradient(p geom.Point) geom.Vector {
	return geom.P(
		interpolate(gr.g, gr.comp[0], p),
		interpolate(gr.g, gr.comp[1], p),
		interpolate(gr.g, gr.comp[2], p),
	)
}

// SampleGradientComponent returns the gradient component at a voxel; indices
// outside the grid read as zero.
func (gr *Gradient) SampleGradientComponent(idx grid.Index, axis int) float64 {
	if axis < 0 || axis > 2 || !gr.g.InBounds(idx) {
		return 0
	}

	return gr.comp[axis][gr.g.Offset(idx)]
}

// gaussianKernel returns a normalized kernel of radius ceil(3 sigma).
func gaussianKernel(sigma float64) []float64 {
	r := int(math.Ceil(3 * sigma))
	k := make([]float64, 2*r+1)
	var sum float64
	for i := -r; i <= r; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		k[i+r] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}

	return k
}

// convolveAxis convolves data along one axis, clamping at the borders.
func convolveAxis(g *grid.Grid, data, kernel []float64, axis int) []float64 {
	size := g.Size()
	r := len(kernel) / 2
	out := make([]float64, len(data))
	for off := range data {
		idx := g.Coordinate(off)
		var sum float64
		for k := -r; k <= r; k++ {
			n := idx
			n[axis] = min(max(idx[axis]+k, 0), size[axis]-1)
			sum += kernel[k+r] * data[g.Offset(n)]
		}
		out[off] = sum
	}

	return out
}
