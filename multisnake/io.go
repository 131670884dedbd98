package multisnake

import (
	"io"

	"github.com/pkg/errors"

	"github.com/NoSuchProcess/SOAX/analysis"
	"github.com/NoSuchProcess/SOAX/snake"
	"github.com/NoSuchProcess/SOAX/snakefile"
)

// Frame captures the current network.
func (m *Multisnake) Frame() snakefile.Frame {
	return snakefile.FrameFromSnakes(m.converged, m.Junctions())
}

// Document wraps the current network with the image name and parameters.
func (m *Multisnake) Document() *snakefile.Document {
	return &snakefile.Document{
		Image:   m.opts.imageName,
		Headers: snakefile.HeadersFromParameters(m.params),
		Frames:  []snakefile.Frame{m.Frame()},
	}
}

// Save writes the current network in snake file format.
func (m *Multisnake) Save(w io.Writer) error {
	return snakefile.Write(w, m.Document())
}

// SaveFile writes the current network to path.
func (m *Multisnake) SaveFile(path string) error {
	return snakefile.WriteFile(path, m.Document())
}

// SaveJFilament writes the current network in JFilament format.
func (m *Multisnake) SaveJFilament(w io.Writer) error {
	return snakefile.WriteJFilament(w, m.params, m.Frame().Curves)
}

// LoadFrame replaces the converged snakes and junctions with frame. Curves
// that are non-viable after resampling are skipped.
func (m *Multisnake) LoadFrame(f snakefile.Frame) error {
	if m.env == nil {
		return ErrNoImage
	}
	m.converged = f.Snakes(m.env)
	m.junctions.Reset()
	m.junctions.SetJunctionPoints(f.Junctions)

	return nil
}

// LoadDocument applies the parameters stored in doc, then loads frame
// index. Unknown header keys are returned.
func (m *Multisnake) LoadDocument(doc *snakefile.Document, index int) ([]string, error) {
	if index < 0 || index >= len(doc.Frames) {
		return nil, errors.Wrapf(ErrFrameIndex, "frame %d of %d", index, len(doc.Frames))
	}
	p, unknown, err := doc.Parameters()
	if err != nil {
		return nil, err
	}
	if err := m.SetParameters(p); err != nil {
		return nil, err
	}
	if doc.Image != "" {
		m.opts.imageName = doc.Image
	}

	return unknown, m.LoadFrame(doc.Frames[index])
}

// SetComparingSnakes installs reference curves (ground truth) for Compare.
func (m *Multisnake) SetComparingSnakes(curves []snakefile.Curve) error {
	if m.env == nil {
		return ErrNoImage
	}
	m.comparing = snakefile.Frame{Curves: curves}.Snakes(m.env)

	return nil
}

// ComparingSnakes returns the reference curves.
func (m *Multisnake) ComparingSnakes() []*snake.Snake { return m.comparing }

// Compare measures the converged snakes against the reference curves.
func (m *Multisnake) Compare() (analysis.Comparison, error) {
	return analysis.Compare(m.converged, m.comparing)
}

// FValues scores the local SNRs of the converged and reference snakes.
func (m *Multisnake) FValues(threshold, penalizer float64) (result, truth float64) {
	result = analysis.FValue(analysis.LocalSNRs(m.converged), threshold, penalizer, len(m.converged))
	truth = analysis.FValue(analysis.LocalSNRs(m.comparing), threshold, penalizer, len(m.comparing))

	return result, truth
}
