package snakefile_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoSuchProcess/SOAX/config"
	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/snakefile"
)

func sampleFrame() snakefile.Frame {
	return snakefile.Frame{
		Curves: []snakefile.Curve{
			{
				Open:        true,
				Points:      []geom.Point{geom.P(10, 40, 0), geom.P(11, 40, 0), geom.P(12.5, 40.25, 0)},
				Intensities: []float64{97.25, 98, 99.5},
			},
			{
				Open:   false,
				Points: []geom.Point{geom.P(1, 1, 2), geom.P(3, 1, 2), geom.P(3, 3, 2), geom.P(1, 3, 2)},
			},
		},
		Junctions: []geom.Point{geom.P(40, 40, 0)},
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	p := config.Default()
	p.Stretch = 0.5
	doc := &snakefile.Document{
		Image:   "/data/cell 01.tif",
		Headers: snakefile.HeadersFromParameters(p),
		Frames:  []snakefile.Frame{sampleFrame()},
	}
	var buf bytes.Buffer
	require.NoError(t, snakefile.Write(&buf, doc))
	require.True(t, strings.HasPrefix(buf.String(), "image\t/data/cell 01.tif\n"))
	assert.Contains(t, buf.String(), "\n#1\n0           0              10              40               0               97.25\n")
	assert.Contains(t, buf.String(), "\n[40, 40, 0]\n")

	got, err := snakefile.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc.Image, got.Image)
	assert.False(t, got.Sequence)
	require.Len(t, got.Frames, 1)
	assert.Equal(t, doc.Frames[0], got.Frames[0])

	params, unknown, err := got.Parameters()
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, p, params)
}

func TestWriteRead_Sequence(t *testing.T) {
	f0, f1 := sampleFrame(), sampleFrame()
	f1.Junctions = nil
	f1.Curves = f1.Curves[:1]
	doc := &snakefile.Document{Image: "seq.tif", Frames: []snakefile.Frame{f0, f1}}

	var buf bytes.Buffer
	require.NoError(t, snakefile.Write(&buf, doc))
	assert.True(t, strings.HasSuffix(buf.String(), "\n$\n"))
	assert.Contains(t, buf.String(), "\n$1\n")

	got, err := snakefile.Read(&buf)
	require.NoError(t, err)
	assert.True(t, got.Sequence)
	require.Len(t, got.Frames, 2)
	assert.Equal(t, f0, got.Frames[0])
	assert.Equal(t, f1.Curves, got.Frames[1].Curves)
	assert.Empty(t, got.Frames[1].Junctions)
}

func TestRead_HeaderlessCurves(t *testing.T) {
	src := "0 0 1 2 0\n0 1 2 2 0\n1 0 5 5 1\n1 1 6 5 1\n1 2 7 5 1\n"
	doc, err := snakefile.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, doc.Frames, 1)
	cs := doc.Frames[0].Curves
	require.Len(t, cs, 2)
	assert.Len(t, cs[0].Points, 2)
	assert.Len(t, cs[1].Points, 3)
	assert.True(t, cs[1].Open)
	assert.Nil(t, cs[1].Intensities)
}

func TestRead_Errors(t *testing.T) {
	_, err := snakefile.Read(strings.NewReader("image\tx\n#1\n0 0 1 2\n"))
	require.ErrorIs(t, err, snakefile.ErrSyntax)

	_, err = snakefile.Read(strings.NewReader("[1, 2]\n"))
	require.ErrorIs(t, err, snakefile.ErrSyntax)

	_, err = snakefile.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestParameters_UnknownHeaders(t *testing.T) {
	doc, err := snakefile.Read(strings.NewReader("image\ta.tif\nstretch\t0.7\nlegacy-key\t3\n"))
	require.NoError(t, err)
	p, unknown, err := doc.Parameters()
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy-key"}, unknown)
	assert.InDelta(t, 0.7, p.Stretch, 1e-12)
	assert.Empty(t, doc.Frames)
}

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.txt")
	doc := &snakefile.Document{Image: "a.tif", Frames: []snakefile.Frame{sampleFrame()}}
	require.NoError(t, snakefile.WriteFile(path, doc))
	got, err := snakefile.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Frames, got.Frames)
}

func TestJFilament_RoundTrip(t *testing.T) {
	curves := sampleFrame().Curves[:1]
	curves[0].Intensities = nil
	var buf bytes.Buffer
	require.NoError(t, snakefile.WriteJFilament(&buf, config.Default(), curves))
	assert.True(t, strings.HasPrefix(buf.String(), "gamma\t2\n"))

	got, headers, err := snakefile.ReadJFilament(&buf)
	require.NoError(t, err)
	assert.Len(t, headers, 10)
	assert.Equal(t, "zresolution", headers[2].Key)
	assert.Equal(t, curves, got)
}

func TestWriteRead_WideValues(t *testing.T) {
	tests := []struct {
		name      string
		pt        geom.Point
		intensity float64
	}{
		{"full-precision", geom.P(40.0000000000000367, 39.99999999999999, 0), 1234.5678901234567},
		{"negative", geom.P(-0.1234567890123456, -987654.3210987654, -3.3333333333333335), -0.000123456789012345},
		{"exponent", geom.P(-1.234567890123e+06, 6.02214076e+23, 1.602176634e-19), -1.234567890123e+06},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := snakefile.Frame{Curves: []snakefile.Curve{{
				Open:        true,
				Points:      []geom.Point{tt.pt, geom.P(1, 2, 3)},
				Intensities: []float64{tt.intensity, tt.intensity},
			}}}
			doc := &snakefile.Document{Image: "wide.tif", Frames: []snakefile.Frame{frame}}

			var buf bytes.Buffer
			require.NoError(t, snakefile.Write(&buf, doc))
			got, err := snakefile.Read(&buf)
			require.NoError(t, err)
			require.Len(t, got.Frames, 1)
			assert.Equal(t, frame.Curves, got.Frames[0].Curves)
		})
	}
}
