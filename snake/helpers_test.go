package snake_test

import (
	"testing"

	"github.com/NoSuchProcess/SOAX/config"
	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/grid"
	"github.com/NoSuchProcess/SOAX/snake"
	"github.com/NoSuchProcess/SOAX/volume"
	"github.com/stretchr/testify/require"
)

// mustEnv renders curves into a planar image and wraps it with p.
func mustEnv(t *testing.T, size grid.Size, curves [][]geom.Point, p config.Parameters) *snake.Env {
	t.Helper()
	img, err := volume.Synthesize(size, curves, volume.SynthOptions{Foreground: 100, Background: 10, Sigma: 1.5})
	require.NoError(t, err)
	f, err := volume.NewField(img, p.Smoothing, p.IntensityScaling)
	require.NoError(t, err)

	return snake.NewEnv(p, f)
}

// flatEnv is an image without structure.
func flatEnv(t *testing.T, p config.Parameters) *snake.Env {
	t.Helper()
	return mustEnv(t, grid.Size{41, 41, 1}, nil, p)
}

func hline(y, x0, x1, step float64) []geom.Point {
	var pts []geom.Point
	for x := x0; x <= x1+1e-9; x += step {
		pts = append(pts, geom.P(x, y, 0))
	}

	return pts
}

func vline(x, y0, y1, step float64) []geom.Point {
	var pts []geom.Point
	for y := y0; y <= y1+1e-9; y += step {
		pts = append(pts, geom.P(x, y, 0))
	}

	return pts
}

// converged builds an evolved-looking snake without running evolution.
func converged(env *snake.Env, pts []geom.Point) *snake.Snake {
	s := snake.New(env, pts, true, false)
	s.Resample()

	return s
}
