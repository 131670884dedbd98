package analysis

import (
	"math"
	"sort"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/grid"
	"github.com/NoSuchProcess/SOAX/snake"
	"github.com/NoSuchProcess/SOAX/volume"
)

// Shell is one unit-thick radial shell about a center.
type Shell struct {
	Radius         int     // outer radius in pixels
	RadiusScaled   float64 // Radius times the pixel size
	Density        float64 // snaxels per shell area 4*pi*r^2
	SnakeIntensity float64 // mean intensity at snaxels in the shell
	VoxelIntensity float64 // mean intensity of voxels in the shell
}

// RadialProfile bins snaxels and voxels by their integer distance to center
// for radii below maxRadius.
func RadialProfile(snakes []*snake.Snake, img *volume.Image, center geom.Point, maxRadius int, pixelSize float64) []Shell {
	if maxRadius <= 0 {
		return nil
	}
	snaxels := make([]int, maxRadius)
	snakeSum := make([]float64, maxRadius)
	voxels := make([]int, maxRadius)
	voxelSum := make([]float64, maxRadius)

	for _, s := range snakes {
		for _, v := range s.Vertices() {
			if r := int(center.Distance(v)); r < maxRadius {
				snaxels[r]++
				snakeSum[r] += img.SampleIntensity(v)
			}
		}
	}
	eachVoxel(img, func(idx grid.Index, p geom.Point, value float64) {
		if r := int(center.Distance(p)); r < maxRadius {
			voxels[r]++
			voxelSum[r] += value
		}
	})

	out := make([]Shell, maxRadius)
	for i := range out {
		r := float64(i+1) * pixelSize
		sh := Shell{Radius: i + 1, RadiusScaled: r, Density: float64(snaxels[i]) / (4 * math.Pi * r * r)}
		if snaxels[i] > 0 {
			sh.SnakeIntensity = snakeSum[i] / float64(snaxels[i])
		}
		if voxels[i] > 0 {
			sh.VoxelIntensity = voxelSum[i] / float64(voxels[i])
		}
		out[i] = sh
	}

	return out
}

// PointFractions splits radius into binning equal bins and returns the
// percentage of all snaxels falling in each. The last bin also takes every
// snaxel beyond radius.
func PointFractions(snakes []*snake.Snake, center geom.Point, radius float64, binning int) ([]float64, error) {
	if binning <= 0 || radius <= 0 {
		return nil, ErrBinning
	}
	total := snake.TotalPoints(snakes)
	if total == 0 {
		return nil, ErrNoSnakes
	}
	upper := make([]float64, binning)
	step := radius / float64(binning)
	for i := range upper {
		upper[i] = step * float64(i+1)
	}
	upper[binning-1] = math.Inf(1)

	counts := make([]int, binning)
	for _, s := range snakes {
		for _, v := range s.Vertices() {
			d := center.Distance(v)
			// first bin whose upper bound exceeds d
			k := sort.Search(binning, func(i int) bool { return upper[i] > d })
			counts[k]++
		}
	}

	out := make([]float64, binning)
	for i, c := range counts {
		out[i] = float64(c) / float64(total) * 100
	}

	return out, nil
}

// DropletMeanIntensity averages the voxels strictly within radius of center.
func DropletMeanIntensity(img *volume.Image, center geom.Point, radius float64) float64 {
	var vals []float64
	eachVoxel(img, func(_ grid.Index, p geom.Point, value float64) {
		if p.Distance(center) < radius {
			vals = append(vals, value)
		}
	})

	return mean(vals)
}

func eachVoxel(img *volume.Image, fn func(grid.Index, geom.Point, float64)) {
	g := img.Grid()
	for off := 0; off < g.Len(); off++ {
		idx := g.Coordinate(off)
		fn(idx, geom.P(float64(idx[0]), float64(idx[1]), float64(idx[2])), img.At(idx))
	}
}
