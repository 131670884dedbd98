package snake_test

import (
	"math"
	"testing"

	"github.com/NoSuchProcess/SOAX/config"
	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/grid"
	"github.com/NoSuchProcess/SOAX/snake"
	"github.com/NoSuchProcess/SOAX/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Viability(t *testing.T) {
	env := flatEnv(t, config.Default())
	s := snake.New(env, []geom.Point{geom.P(1, 1, 0)}, true, true)
	assert.False(t, s.Viable())
	assert.Equal(t, snake.StateNonViable, s.State())

	s = snake.New(env, hline(5, 0, 3, 1), true, true)
	assert.True(t, s.Viable())
	assert.True(t, s.InitialState())
	assert.Equal(t, snake.StateInitial, s.State())
	assert.InDelta(t, 3, s.Length(), 1e-12)
}

func TestResample_OpenKeepsEndpoints(t *testing.T) {
	env := flatEnv(t, config.Default())
	pts := []geom.Point{geom.P(2, 5, 0), geom.P(3.3, 5, 0), geom.P(9, 5, 0), geom.P(22.5, 5, 0)}
	s := snake.New(env, pts, true, true)
	s.Resample()

	require.True(t, s.Viable())
	require.Equal(t, 21, s.Len())
	assert.Equal(t, pts[0], s.Head())
	assert.Equal(t, pts[3], s.Tail())
	for i := 1; i < s.Len(); i++ {
		assert.InDelta(t, 20.5/20, s.Vertex(i).Distance(s.Vertex(i-1)), 1e-9)
	}
}

func TestResample_Idempotent(t *testing.T) {
	env := flatEnv(t, config.Default())
	s := snake.New(env, []geom.Point{geom.P(1, 1, 0), geom.P(4, 5, 0), geom.P(10, 13, 0)}, true, true)
	s.Resample()
	require.True(t, s.Viable())
	first := append([]geom.Point(nil), s.Vertices()...)

	s.Resample()
	require.Len(t, s.Vertices(), len(first))
	for i, p := range first {
		assert.InDelta(t, 0, p.Distance(s.Vertex(i)), 1e-9)
	}
}

func TestResample_NonViable(t *testing.T) {
	p := config.Default()
	env := flatEnv(t, p)
	short := snake.New(env, hline(3, 0, 5, 1), true, true)
	short.Resample()
	assert.False(t, short.Viable(), "below minimum length")

	p.MinimumLength = 0
	env = flatEnv(t, p)
	few := snake.New(env, hline(3, 0, 3, 1), true, true)
	few.Resample()
	assert.False(t, few.Viable(), "fewer than five snaxels")
}

func TestResample_Closed(t *testing.T) {
	env := flatEnv(t, config.Default())
	square := []geom.Point{geom.P(5, 5, 0), geom.P(15, 5, 0), geom.P(15, 15, 0), geom.P(5, 15, 0)}
	s := snake.New(env, square, false, false)
	s.Resample()
	require.True(t, s.Viable())
	assert.Equal(t, 40, s.Len())
	assert.InDelta(t, 40, s.Length(), 1e-9)
	assert.NotEqual(t, s.Head(), s.Tail())
	assert.InDelta(t, 1, s.Tail().Distance(s.Head()), 1e-9)
}

func TestReverseAndClone(t *testing.T) {
	env := flatEnv(t, config.Default())
	s := snake.New(env, hline(5, 0, 4, 1), true, true)
	c := s.Clone()
	s.Reverse()
	assert.Equal(t, geom.P(4, 5, 0), s.Head())
	assert.Equal(t, geom.P(0, 5, 0), c.Head())
}

func TestEvolve_MovesOntoRidge(t *testing.T) {
	p := config.Default()
	p.Stretch = 0
	p.Weight = 0.5
	p.MaxIterations = 2000
	env := mustEnv(t, grid.Size{41, 41, 1}, [][]geom.Point{{geom.P(5, 20, 0), geom.P(35, 20, 0)}}, p)

	s := snake.New(env, hline(21, 10, 30, 1), true, true)
	s.Resample()
	require.True(t, s.Viable())

	bank := solver.NewBank(env.Coefficients())
	s.Evolve(bank, nil, math.MaxInt)

	require.True(t, s.Viable())
	assert.True(t, s.Converged())
	assert.Equal(t, snake.StateConverged, s.State())
	assert.False(t, s.InitialState())
	assert.Less(t, s.Iterations(), p.MaxIterations)
	for _, v := range s.Vertices() {
		assert.InDelta(t, 20, v.Y, 0.2)
	}
}

func TestEvolve_TipsStretchAlongRidge(t *testing.T) {
	p := config.Default()
	p.MaxIterations = 300
	p.Weight = 0.5
	env := mustEnv(t, grid.Size{61, 41, 1}, [][]geom.Point{{geom.P(5, 20, 0), geom.P(55, 20, 0)}}, p)

	s := snake.New(env, hline(20, 25, 37, 1), true, true)
	s.Resample()
	before := s.Length()
	s.Evolve(solver.NewBank(env.Coefficients()), nil, math.MaxInt)

	require.True(t, s.Viable())
	assert.Greater(t, s.Length(), before+5)
	assert.Less(t, s.Head().X, 25.0)
	assert.Greater(t, s.Tail().X, 37.0)
}

func TestEvolve_SplitsOnInteriorOverlap(t *testing.T) {
	p := config.Default()
	p.Stretch = 0
	env := flatEnv(t, p)
	c := converged(env, vline(20, 5, 35, 1))

	s := snake.New(env, hline(20, 5, 35, 1), true, true)
	s.Resample()
	s.Evolve(solver.NewBank(env.Coefficients()), []*snake.Snake{c}, 1)

	assert.False(t, s.Viable())
	subs := s.Subsnakes()
	require.Len(t, subs, 2)
	for _, sub := range subs {
		assert.True(t, sub.Open())
		assert.True(t, sub.InitialState())
		for _, v := range sub.Vertices() {
			assert.GreaterOrEqual(t, math.Abs(v.X-20), 1.0)
		}
	}
	assert.Less(t, subs[0].Tail().X, 20.0)
	assert.Greater(t, subs[1].Head().X, 20.0)
}

func TestEvolve_FullOverlapDropsSnake(t *testing.T) {
	p := config.Default()
	env := flatEnv(t, p)
	c := converged(env, hline(10, 5, 35, 1))
	s := snake.New(env, hline(10.3, 8, 30, 1), true, true)
	s.Resample()
	s.Evolve(solver.NewBank(env.Coefficients()), []*snake.Snake{c}, 5)

	assert.False(t, s.Viable())
	assert.Empty(t, s.Subsnakes())
	assert.Equal(t, snake.StateNonViable, s.State())
}

func TestEvolve_HooksHeadOnConvergedSnake(t *testing.T) {
	p := config.Default()
	p.Stretch = 0
	env := flatEnv(t, p)
	c := converged(env, vline(20, 0, 40, 1))

	s := snake.New(env, hline(10, 20.5, 38.5, 1), true, true)
	s.Resample()
	s.Evolve(solver.NewBank(env.Coefficients()), []*snake.Snake{c}, 3)

	require.True(t, s.Viable())
	assert.True(t, s.HeadHooked())
	assert.False(t, s.TailHooked())
	assert.InDelta(t, 0, s.Head().Distance(geom.P(20, 10, 0)), 1e-9)
}

func TestEvolveWithTipFixed(t *testing.T) {
	p := config.Default()
	env := mustEnv(t, grid.Size{41, 41, 1}, [][]geom.Point{{geom.P(5, 20, 0), geom.P(35, 20, 0)}}, p)
	pts := []geom.Point{geom.P(8, 20, 0), geom.P(20, 23, 0), geom.P(32, 20, 0)}
	s := snake.New(env, pts, true, false)
	s.Resample()
	s.EvolveWithTipFixed(solver.NewBank(env.Coefficients()), 100)

	require.True(t, s.Viable())
	assert.Equal(t, pts[0], s.Head())
	assert.Equal(t, pts[2], s.Tail())
	assert.Equal(t, 100, s.Iterations())
	_, d := s.NearestVertex(geom.P(20, 23, 0))
	assert.Greater(t, d, 0.25, "interior relaxed toward the ridge")
}

func TestQueries(t *testing.T) {
	env := flatEnv(t, config.Default())
	s := snake.New(env, hline(10, 0, 20, 1), true, false)
	assert.True(t, s.PassThrough(geom.P(7.5, 11, 0), 2))
	assert.False(t, s.PassThrough(geom.P(7.5, 13, 0), 2))

	i, d := s.NearestVertex(geom.P(7.2, 10, 0))
	assert.Equal(t, 7, i)
	assert.InDelta(t, 0.2, d, 1e-9)

	assert.Equal(t, geom.P(-1, 0, 0), s.TipDirection(true, 4))
	assert.Equal(t, geom.P(1, 0, 0), s.TipDirection(false, 100))

	long := snake.New(env, hline(1, 0, 30, 1), true, false)
	mid := snake.New(env, hline(2, 0, 15, 1), true, false)
	list := []*snake.Snake{long, s, mid}
	snake.SortShortestFirst(list)
	assert.Equal(t, []*snake.Snake{mid, s, long}, list)
	assert.Equal(t, 31+21+16, snake.TotalPoints(list))
	assert.InDelta(t, 10, s.MeanIntensity(), 1e-9)
}
