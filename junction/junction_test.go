package junction_test

import (
	"testing"

	"github.com/NoSuchProcess/SOAX/config"
	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/grid"
	"github.com/NoSuchProcess/SOAX/junction"
	"github.com/NoSuchProcess/SOAX/snake"
	"github.com/NoSuchProcess/SOAX/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatEnv(t *testing.T) *snake.Env {
	t.Helper()
	img, err := volume.Synthesize(grid.Size{64, 64, 1}, nil, volume.SynthOptions{Background: 10})
	require.NoError(t, err)
	f, err := volume.NewField(img, 1, 0)
	require.NoError(t, err)

	return snake.NewEnv(config.Default(), f)
}

// segment builds a resampled open snake along the straight line a→b.
func segment(t *testing.T, env *snake.Env, a, b geom.Point) *snake.Snake {
	t.Helper()
	s := snake.New(env, []geom.Point{a, b}, true, false)
	s.Resample()
	require.True(t, s.Viable())

	return s
}

func group(t *testing.T, m *junction.Manager, segs []*snake.Snake) []*snake.Snake {
	t.Helper()
	m.Initialize(segs)
	m.Union()
	m.Configure()
	out, err := m.LinkSegments()
	require.NoError(t, err)

	return out
}

func TestLinkSegments_NotConfigured(t *testing.T) {
	m := junction.NewManager(config.Default())
	m.Initialize(nil)
	_, err := m.LinkSegments()
	require.ErrorIs(t, err, junction.ErrNotConfigured)
}

func TestLinkSegments_ClosedChainKeepsOrientation(t *testing.T) {
	env := flatEnv(t)
	a, b, c, d := geom.P(10, 10, 0), geom.P(30, 10, 0), geom.P(30, 30, 0), geom.P(10, 30, 0)
	segs := []*snake.Snake{
		segment(t, env, a, b),
		segment(t, env, c, b), // reversed
		segment(t, env, c, d),
		segment(t, env, a, d), // reversed
	}
	m := junction.NewManager(config.Default())
	out := group(t, m, segs)

	require.Len(t, out, 1)
	s := out[0]
	require.True(t, s.Viable())
	assert.False(t, s.Open())
	assert.Equal(t, 80, s.Len())
	for i := 0; i < s.Len(); i++ {
		next := s.Vertex((i + 1) % s.Len())
		assert.InDelta(t, 1, s.Vertex(i).Distance(next), 1e-6, "gap after snaxel %d", i)
	}

	require.Len(t, m.Junctions(), 4)
	for _, j := range m.Junctions() {
		assert.Equal(t, 2, j.Degree)
	}
}

func TestCutAndRelink_PreservesPoints(t *testing.T) {
	env := flatEnv(t)
	v := segment(t, env, geom.P(20, 0, 0), geom.P(20, 40, 0))
	h := segment(t, env, geom.P(20, 20, 0), geom.P(40, 20, 0))
	before := snake.TotalPoints([]*snake.Snake{v, h})
	require.Equal(t, 62, before)

	m := junction.NewManager(config.Default())
	cut := m.CutAtTJunctions([]*snake.Snake{v, h})
	require.Len(t, cut, 3)
	assert.Equal(t, before+1, snake.TotalPoints(cut), "pieces share the cut vertex")
	assert.Equal(t, geom.P(20, 20, 0), cut[0].Tail())
	assert.Equal(t, geom.P(20, 20, 0), cut[1].Head())
	assert.Same(t, h, cut[2])

	out := group(t, m, cut)
	require.Len(t, out, 2)
	assert.Equal(t, before, snake.TotalPoints(out))
	assert.Equal(t, geom.P(20, 0, 0), out[0].Head())
	assert.Equal(t, geom.P(20, 40, 0), out[0].Tail())

	require.Len(t, m.Junctions(), 1)
	assert.Equal(t, 3, m.Junctions()[0].Degree)
	assert.InDelta(t, 0, m.Junctions()[0].Point.Distance(geom.P(20, 20, 0)), 1e-9)

	m.UpdateJunctions(out)
	assert.Len(t, m.Junctions(), 1)
}

func TestCutAtTJunctions_SkipsShortPieces(t *testing.T) {
	env := flatEnv(t)
	v := segment(t, env, geom.P(20, 0, 0), geom.P(20, 40, 0))
	h := segment(t, env, geom.P(20, 2, 0), geom.P(40, 2, 0))

	m := junction.NewManager(config.Default())
	cut := m.CutAtTJunctions([]*snake.Snake{v, h})
	require.Len(t, cut, 2)
	assert.Same(t, v, cut[0])
}

func TestUnion_RejectsFoldBack(t *testing.T) {
	env := flatEnv(t)
	a := segment(t, env, geom.P(0, 20, 0), geom.P(20, 20, 0))
	b := segment(t, env, geom.P(0, 21, 0), geom.P(20, 21, 0))

	m := junction.NewManager(config.Default())
	out := group(t, m, []*snake.Snake{a, b})
	assert.Empty(t, m.Junctions())
	assert.Len(t, out, 2)
}

func TestUpdateJunctions_DropsUnsupported(t *testing.T) {
	env := flatEnv(t)
	v := segment(t, env, geom.P(20, 0, 0), geom.P(20, 40, 0))
	h := segment(t, env, geom.P(20, 20, 0), geom.P(40, 20, 0))

	m := junction.NewManager(config.Default())
	m.SetJunctionPoints([]geom.Point{geom.P(20, 20, 0), geom.P(20, 5, 0), geom.P(0, 60, 0)})
	m.UpdateJunctions([]*snake.Snake{v, h})
	assert.Equal(t, []geom.Point{geom.P(20, 20, 0)}, m.JunctionPoints())

	m.UpdateJunctions(nil)
	assert.Empty(t, m.JunctionPoints())

	m.Reset()
	assert.Empty(t, m.Junctions())
	assert.Empty(t, m.Segments())
}

func TestConfigure_PrefersStraightContinuation(t *testing.T) {
	env := flatEnv(t)
	left := segment(t, env, geom.P(5, 30, 0), geom.P(30, 30, 0))
	up := segment(t, env, geom.P(30, 5, 0), geom.P(30, 30, 0))
	right := segment(t, env, geom.P(30, 30, 0), geom.P(55, 30, 0))
	down := segment(t, env, geom.P(30, 30, 0), geom.P(30, 55, 0))

	m := junction.NewManager(config.Default())
	out := group(t, m, []*snake.Snake{left, up, right, down})
	require.Len(t, out, 2)
	assert.InDelta(t, 30, out[0].Head().Y, 1e-9)
	assert.InDelta(t, 30, out[0].Tail().Y, 1e-9)
	assert.InDelta(t, 30, out[1].Head().X, 1e-9)
	assert.InDelta(t, 30, out[1].Tail().X, 1e-9)

	require.Len(t, m.Junctions(), 1)
	assert.Equal(t, 4, m.Junctions()[0].Degree)

	tips := m.Tips()
	require.Len(t, tips, 8)
	assert.Equal(t, 4, tips[1].Neighbor(), "left tail pairs with right head")
	assert.Equal(t, 6, tips[3].Neighbor(), "up tail pairs with down head")
	assert.Equal(t, -1, tips[0].Neighbor())
}
