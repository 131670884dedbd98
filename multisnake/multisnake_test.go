package multisnake_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/NoSuchProcess/SOAX/config"
	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/grid"
	"github.com/NoSuchProcess/SOAX/multisnake"
	"github.com/NoSuchProcess/SOAX/network"
	"github.com/NoSuchProcess/SOAX/snakefile"
	"github.com/NoSuchProcess/SOAX/store"
	"github.com/NoSuchProcess/SOAX/volume"
)

var crossCurves = [][]geom.Point{
	{geom.P(10, 40, 0), geom.P(70, 40, 0)},
	{geom.P(40, 10, 0), geom.P(40, 70, 0)},
}

func render(t *testing.T, curves [][]geom.Point) *volume.Image {
	t.Helper()
	img, err := volume.Synthesize(grid.Size{81, 81, 1}, curves, volume.SynthOptions{Foreground: 100, Background: 10, Sigma: 1.5})
	require.NoError(t, err)

	return img
}

func crossParameters() config.Parameters {
	p := config.Default()
	p.Background = 50
	p.RidgeThreshold = 0.01

	return p
}

// CrossSuite extracts the cross pattern once, stage by stage.
type CrossSuite struct {
	suite.Suite
	ms      *multisnake.Multisnake
	initial int
}

func (s *CrossSuite) SetupSuite() {
	require := s.Require()
	ms, err := multisnake.New(crossParameters(), multisnake.WithImageName("cross.png"))
	require.NoError(err)
	require.NoError(ms.SetImage(render(s.T(), crossCurves)))

	require.NoError(ms.InitializeSnakes())
	s.initial = len(ms.InitialSnakes())
	require.NoError(ms.DeformSnakes(context.Background()))
	ms.CutSnakesAtTJunctions()
	require.NoError(ms.GroupSnakes())
	s.ms = ms
}

func (s *CrossSuite) TestStages() {
	require := s.Require()
	require.Equal(2, s.initial)
	require.Empty(s.ms.InitialSnakes())

	require.Len(s.ms.ConvergedSnakes(), 2)
	for _, sn := range s.ms.ConvergedSnakes() {
		s.True(sn.Viable())
		s.True(sn.Open())
		s.Greater(sn.Length(), 50.0)
	}

	js := s.ms.JunctionDetails()
	require.Len(js, 1)
	s.Equal(4, js[0].Degree)
	s.Less(js[0].Point.Distance(geom.P(40, 40, 0)), 2.0)
}

func (s *CrossSuite) TestNetwork() {
	g, err := s.ms.Network()
	s.Require().NoError(err)
	deg, err := g.Degree(network.JunctionID(0))
	s.Require().NoError(err)
	s.Equal(4, deg)
	s.Equal(1, g.Stats().Junctions)
	s.Equal(4, g.Stats().Tips)
}

func (s *CrossSuite) TestCompareAgainstGroundTruth() {
	truth := make([]snakefile.Curve, len(crossCurves))
	for i, c := range crossCurves {
		truth[i] = snakefile.Curve{Open: true, Points: c}
	}
	require.NoError(s.T(), s.ms.SetComparingSnakes(truth))
	s.Len(s.ms.ComparingSnakes(), 2)

	c, err := s.ms.Compare()
	s.Require().NoError(err)
	s.Less(c.VertexError, 1.5)

	result, reference := s.ms.FValues(3, 2)
	s.Less(result, 0.0)
	s.Less(reference, 0.0)
}

func (s *CrossSuite) TestSaveAndLoad() {
	require := s.Require()
	var buf bytes.Buffer
	require.NoError(s.ms.Save(&buf))

	doc, err := snakefile.Read(&buf)
	require.NoError(err)
	s.Equal("cross.png", doc.Image)
	require.Len(doc.Frames, 1)

	other, err := multisnake.New(config.Default())
	require.NoError(err)
	require.NoError(other.SetImage(s.ms.Image()))
	unknown, err := other.LoadDocument(doc, 0)
	require.NoError(err)
	s.Empty(unknown)
	s.Equal(crossParameters(), other.Parameters())
	s.Equal("cross.png", other.ImageName())
	s.Len(other.ConvergedSnakes(), len(s.ms.ConvergedSnakes()))
	s.Len(other.Junctions(), 1)

	_, err = other.LoadDocument(doc, 1)
	s.ErrorIs(err, multisnake.ErrFrameIndex)
}

func TestCrossSuite(t *testing.T) {
	suite.Run(t, new(CrossSuite))
}

func TestNew_InvalidParameters(t *testing.T) {
	p := config.Default()
	p.Spacing = 0
	_, err := multisnake.New(p)
	require.ErrorIs(t, err, config.ErrInvalidParameter)

	ms, err := multisnake.New(config.Default())
	require.NoError(t, err)
	require.ErrorIs(t, ms.SetParameters(p), config.ErrInvalidParameter)
	assert.Equal(t, config.Default(), ms.Parameters())
}

func TestStagesNeedImage(t *testing.T) {
	ms, err := multisnake.New(config.Default())
	require.NoError(t, err)

	require.ErrorIs(t, ms.SetImage(nil), multisnake.ErrNoImage)
	require.ErrorIs(t, ms.InitializeSnakes(), multisnake.ErrNoImage)
	require.ErrorIs(t, ms.DeformSnakes(context.Background()), multisnake.ErrNoImage)
	require.ErrorIs(t, ms.GroupSnakes(), multisnake.ErrNoImage)
	require.ErrorIs(t, ms.Extract(context.Background()), multisnake.ErrNoImage)
	require.ErrorIs(t, ms.LoadFrame(snakefile.Frame{}), multisnake.ErrNoImage)
}

func TestSetParameters_KeepsSnakes(t *testing.T) {
	ms, err := multisnake.New(crossParameters())
	require.NoError(t, err)
	require.NoError(t, ms.SetImage(render(t, crossCurves[:1])))
	require.NoError(t, ms.InitializeSnakes())
	n := len(ms.InitialSnakes())
	require.Positive(t, n)

	p := crossParameters()
	p.Alpha, p.Smoothing = 0.05, 2
	require.NoError(t, ms.SetParameters(p))
	assert.Equal(t, p, ms.Parameters())
	assert.Equal(t, p, ms.Env().Params)
	assert.Len(t, ms.InitialSnakes(), n)
}

func TestExtract_Cancelled(t *testing.T) {
	ms, err := multisnake.New(crossParameters())
	require.NoError(t, err)
	require.NoError(t, ms.SetImage(render(t, crossCurves)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, ms.Extract(ctx), context.Canceled)
	assert.Len(t, ms.InitialSnakes(), 2, "nothing was evolved")
}

func TestDeformSnakes_Workers(t *testing.T) {
	parallel := [][]geom.Point{
		{geom.P(10, 20, 0), geom.P(70, 20, 0)},
		{geom.P(10, 60, 0), geom.P(70, 60, 0)},
	}
	ms, err := multisnake.New(crossParameters(), multisnake.WithWorkers(2))
	require.NoError(t, err)
	require.NoError(t, ms.SetImage(render(t, parallel)))
	require.NoError(t, ms.Extract(context.Background()))

	got := ms.ConvergedSnakes()
	require.Len(t, got, 2)
	ys := map[int]bool{}
	for _, s := range got {
		mid := s.Vertex(s.Len() / 2)
		ys[int(mid.Y+0.5)] = true
	}
	assert.Equal(t, map[int]bool{20: true, 60: true}, ys)
	assert.Empty(t, ms.Junctions())
}

func TestProcessSequence(t *testing.T) {
	st, err := store.Open("")
	require.NoError(t, err)
	defer st.Close()

	ms, err := multisnake.New(crossParameters(), multisnake.WithStore(st), multisnake.WithImageName("seq.tif"))
	require.NoError(t, err)

	_, err = ms.ProcessSequence(context.Background(), nil)
	require.ErrorIs(t, err, multisnake.ErrEmptySequence)

	frames := []*volume.Image{
		render(t, [][]geom.Point{{geom.P(10, 30, 0), geom.P(70, 30, 0)}}),
		render(t, [][]geom.Point{{geom.P(10, 50, 0), geom.P(70, 50, 0)}}),
	}
	out, err := ms.ProcessSequence(context.Background(), frames)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i, y := range []float64{30, 50} {
		require.Len(t, out[i].Curves, 1)
		c := out[i].Curves[0]
		assert.InDelta(t, y, c.Points[len(c.Points)/2].Y, 1)
	}

	doc, err := st.Document()
	require.NoError(t, err)
	assert.Equal(t, "seq.tif", doc.Image)
	assert.True(t, doc.Sequence)
	require.Len(t, doc.Frames, 2)
	assert.Equal(t, out[1].Curves[0].Points, doc.Frames[1].Curves[0].Points)
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { multisnake.WithWorkers(0) })
	assert.Panics(t, func() { multisnake.WithStore(nil) })
}
