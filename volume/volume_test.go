package volume_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/grid"
	"github.com/NoSuchProcess/SOAX/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ramp returns a planar image with value = x.
func ramp(t *testing.T, w, h int) *volume.Image {
	t.Helper()
	img, err := volume.NewImage(grid.Size{w, h, 1})
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(grid.Index{x, y, 0}, float64(x))
		}
	}

	return img
}

func TestImage_SampleIntensity(t *testing.T) {
	img := ramp(t, 5, 4)
	assert.True(t, img.Is2D())
	assert.InDelta(t, 2.5, img.SampleIntensity(geom.P(2.5, 1.2, 0)), 1e-12)
	assert.InDelta(t, 4, img.SampleIntensity(geom.P(10, 1, 0)), 1e-12, "clamped to border")
	assert.InDelta(t, 0, img.SampleIntensity(geom.P(-3, -3, 0)), 1e-12)
	assert.InDelta(t, 4, img.SampleIntensity(geom.P(4, 3, 0)), 1e-12, "last voxel")

	lo, hi := img.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 4.0, hi)
	assert.Zero(t, img.At(grid.Index{9, 0, 0}))
	assert.False(t, img.IsInsideRegion(grid.Index{5, 0, 0}))
}

func TestImage_TrilinearStack(t *testing.T) {
	img, err := volume.NewImage(grid.Size{2, 2, 2})
	require.NoError(t, err)
	img.Set(grid.Index{0, 0, 1}, 8)
	assert.False(t, img.Is2D())
	assert.InDelta(t, 1, img.SampleIntensity(geom.P(0.5, 0.5, 0.5)), 1e-12)
}

func TestComputeGradient(t *testing.T) {
	img := ramp(t, 6, 3)
	g, err := volume.ComputeGradient(img, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, g.Scaling(), 1e-12)
	for x := 0; x < 6; x++ {
		assert.InDelta(t, 0.2, g.SampleGradientComponent(grid.Index{x, 1, 0}, 0), 1e-12)
		assert.Zero(t, g.SampleGradientComponent(grid.Index{x, 1, 0}, 1))
		assert.Zero(t, g.SampleGradientComponent(grid.Index{x, 1, 0}, 2))
	}
	v := g.SampleGradient(geom.P(2.3, 0.7, 0))
	assert.InDelta(t, 0.2, v.X, 1e-12)
	assert.Zero(t, g.SampleGradientComponent(grid.Index{-1, 0, 0}, 0))

	_, err = volume.ComputeGradient(nil, 1, 1)
	require.ErrorIs(t, err, volume.ErrEmptyImage)
}

func TestComputeGradient_SmoothedStack(t *testing.T) {
	img, err := volume.NewImage(grid.Size{9, 9, 9})
	require.NoError(t, err)
	img.Set(grid.Index{4, 4, 4}, 1)
	g, err := volume.ComputeGradient(img, 1, 1)
	require.NoError(t, err)
	// Smoothed blob: gradient points toward the centre on every axis.
	assert.Greater(t, g.SampleGradientComponent(grid.Index{3, 4, 4}, 0), 0.0)
	assert.Less(t, g.SampleGradientComponent(grid.Index{5, 4, 4}, 0), 0.0)
	assert.Greater(t, g.SampleGradientComponent(grid.Index{4, 4, 3}, 2), 0.0)
}

func TestField(t *testing.T) {
	img := ramp(t, 4, 4)
	f, err := volume.NewField(img, 1, 1)
	require.NoError(t, err)
	var s volume.Sampler = f
	assert.Equal(t, grid.Size{4, 4, 1}, s.GridSize())
	assert.InDelta(t, 1.5, s.SampleIntensity(geom.P(1.5, 0, 0)), 1e-12)
	assert.InDelta(t, 1, s.SampleGradient(geom.P(1, 1, 0)).X, 1e-12)
	assert.True(t, f.Is2D())

	other, err := volume.NewImage(grid.Size{3, 3, 1})
	require.NoError(t, err)
	_, err = volume.NewFieldFrom(other, f.Gradient())
	require.ErrorIs(t, err, volume.ErrSizeMismatch)
}

func TestSynthesize(t *testing.T) {
	curve := []geom.Point{geom.P(2, 10, 0), geom.P(18, 10, 0)}
	img, err := volume.Synthesize(grid.Size{21, 21, 1}, [][]geom.Point{curve},
		volume.SynthOptions{Foreground: 100, Background: 10, Sigma: 1.5})
	require.NoError(t, err)
	assert.InDelta(t, 110, img.At(grid.Index{10, 10, 0}), 1e-9)
	assert.Less(t, img.At(grid.Index{10, 12, 0}), img.At(grid.Index{10, 11, 0}))
	assert.InDelta(t, 10, img.At(grid.Index{10, 0, 0}), 1e-9)

	cross := []geom.Point{geom.P(10, 2, 0), geom.P(10, 18, 0)}
	both, err := volume.Synthesize(grid.Size{21, 21, 1}, [][]geom.Point{curve, cross},
		volume.SynthOptions{Foreground: 100, Background: 10, Sigma: 1.5})
	require.NoError(t, err)
	assert.InDelta(t, 210, both.At(grid.Index{10, 10, 0}), 1e-9)

	noisy1, err := volume.Synthesize(grid.Size{8, 8, 1}, nil, volume.SynthOptions{Background: 50, Noise: 5})
	require.NoError(t, err)
	noisy2, err := volume.Synthesize(grid.Size{8, 8, 1}, nil, volume.SynthOptions{Background: 50, Noise: 5, Seed: volume.DefaultSeed})
	require.NoError(t, err)
	assert.Equal(t, noisy1, noisy2)
}

func TestFromImageAndSave(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 3, 2))
	src.SetGray16(1, 1, color.Gray16{Y: 4000})
	img, err := volume.FromImage(src)
	require.NoError(t, err)
	assert.Equal(t, grid.Size{3, 2, 1}, img.GridSize())
	assert.Equal(t, 4000.0, img.At(grid.Index{1, 1, 0}))

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, volume.SaveImage(path, img, 0))
	back, err := volume.LoadImage(path, 0)
	require.NoError(t, err)
	assert.Equal(t, img.GridSize(), back.GridSize())

	stack, err := volume.LoadStack([]string{path, path}, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Size{3, 2, 2}, stack.GridSize())

	_, err = volume.LoadImage(filepath.Join(t.TempDir(), "missing.png"), 0)
	require.Error(t, err)
}
