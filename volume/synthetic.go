package volume

import (
	"math"
	"math/rand"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/grid"
)

// DefaultSeed seeds the noise generator when SynthOptions.Seed is zero.
const DefaultSeed = 2003

// SynthOptions controls synthetic image rendering.
type SynthOptions struct {
	Foreground float64 // peak amplitude added on a curve centerline
	Background float64 // base level
	Sigma      float64 // width of the point spread function
	Noise      float64 // standard deviation of additive Gaussian noise
	Seed       int64
}

// Synthesize renders curves into an image: each curve adds a Gaussian
// profile of its distance to the voxel, on top of a constant background, and
// optional seeded Gaussian noise is added last. Values are clamped at zero.
// Crossing curves add up, so crossings are brighter than either curve.
func Synthesize(size grid.Size, curves [][]geom.Point, opts SynthOptions) (*Image, error) {
	img, err := NewImage(size)
	if err != nil {
		return nil, err
	}
	for i := range img.data {
		img.data[i] = opts.Background
	}
	sigma := opts.Sigma
	if sigma <= 0 {
		sigma = 1
	}
	reach := 4 * sigma
	planar := size[2] == 1

	for _, c := range curves {
		if len(c) == 0 {
			continue
		}
		lo, hi := bounds(c)
		var from, to grid.Index
		for d := 0; d < 3; d++ {
			from[d] = max(0, int(math.Floor(geom.Axis(lo, d)-reach)))
			to[d] = min(size[d]-1, int(math.Ceil(geom.Axis(hi, d)+reach)))
		}
		if planar {
			from[2], to[2] = 0, 0
		}
		for z := from[2]; z <= to[2]; z++ {
			for y := from[1]; y <= to[1]; y++ {
				for x := from[0]; x <= to[0]; x++ {
					p := geom.P(float64(x), float64(y), float64(z))
					_, _, d, _ := geom.NearestOnPolyline(p, c, false)
					if d > reach {
						continue
					}
					idx := grid.Index{x, y, z}
					img.data[img.g.Offset(idx)] += opts.Foreground * math.Exp(-d*d/(2*sigma*sigma))
				}
			}
		}
	}

	if opts.Noise > 0 {
		seed := opts.Seed
		if seed == 0 {
			seed = DefaultSeed
		}
		rng := rand.New(rand.NewSource(seed))
		for i := range img.data {
			img.data[i] += rng.NormFloat64() * opts.Noise
		}
	}
	for i, v := range img.data {
		if v < 0 {
			img.data[i] = 0
		}
	}

	return img, nil
}

func bounds(pts []geom.Point) (lo, hi geom.Point) {
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}

	return lo, hi
}
