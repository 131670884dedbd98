package multisnake

import (
	"context"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/NoSuchProcess/SOAX/candidate"
	"github.com/NoSuchProcess/SOAX/config"
	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/junction"
	"github.com/NoSuchProcess/SOAX/network"
	"github.com/NoSuchProcess/SOAX/snake"
	"github.com/NoSuchProcess/SOAX/solver"
	"github.com/NoSuchProcess/SOAX/volume"
)

// tipFixedIterations is the re-evolution budget after relinking.
const tipFixedIterations = 100

// Multisnake drives extraction for one image at a time.
type Multisnake struct {
	params config.Parameters
	opts   options

	img   *volume.Image
	field *volume.Field
	env   *snake.Env
	bank  *solver.Bank

	initial   []*snake.Snake
	converged []*snake.Snake
	comparing []*snake.Snake
	junctions *junction.Manager
}

// New validates p and returns an orchestrator without an image.
func New(p config.Parameters, opts ...Option) (*Multisnake, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m := &Multisnake{
		params:    p,
		opts:      newOptions(opts),
		junctions: junction.NewManager(p),
	}
	m.bank = solver.NewBank(coefficients(p))

	return m, nil
}

func coefficients(p config.Parameters) solver.Coefficients {
	return solver.Coefficients{Alpha: p.Alpha, Beta: p.Beta, Gamma: p.Gamma}
}

// Parameters returns the active parameter set.
func (m *Multisnake) Parameters() config.Parameters { return m.params }

// SetParameters replaces the parameter set. Changed α, β or γ invalidate the
// cached factorizations; changed smoothing or intensity scaling recompute
// the gradient of the current image. Existing snakes are kept.
func (m *Multisnake) SetParameters(p config.Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	old := m.params
	m.params = p
	m.bank.SetCoefficients(coefficients(p))
	m.junctions = junction.NewManager(p)
	if m.img == nil {
		return nil
	}
	if p.Smoothing != old.Smoothing || p.IntensityScaling != old.IntensityScaling {
		return m.computeField()
	}
	m.env = snake.NewEnv(p, m.field)

	return nil
}

// SetImage installs img, computes its gradient and clears every container.
func (m *Multisnake) SetImage(img *volume.Image) error {
	if img == nil {
		return ErrNoImage
	}
	m.img = img
	m.Reset()

	return m.computeField()
}

func (m *Multisnake) computeField() error {
	f, err := volume.NewField(m.img, m.params.Smoothing, m.params.IntensityScaling)
	if err != nil {
		return errors.Wrap(err, "multisnake: gradient")
	}
	m.field = f
	m.env = snake.NewEnv(m.params, f)
	klog.V(1).Infof("multisnake: gradient ready for %v (scaling %g)", f.GridSize(), f.Gradient().Scaling())

	return nil
}

// Reset drops initial, converged and comparing snakes and the junctions,
// keeping the image and cached factorizations.
func (m *Multisnake) Reset() {
	m.initial = nil
	m.converged = nil
	m.comparing = nil
	m.junctions.Reset()
	m.bank.Reset(false)
}

// Image returns the current image, nil before SetImage.
func (m *Multisnake) Image() *volume.Image { return m.img }

// Env returns the snake context of the current image.
func (m *Multisnake) Env() *snake.Env { return m.env }

// ImageName is the name recorded by WithImageName.
func (m *Multisnake) ImageName() string { return m.opts.imageName }

// InitialSnakes returns the pending initial snakes, shortest first.
func (m *Multisnake) InitialSnakes() []*snake.Snake { return m.initial }

// ConvergedSnakes returns the current network.
func (m *Multisnake) ConvergedSnakes() []*snake.Snake { return m.converged }

// Junctions returns the confirmed junction points.
func (m *Multisnake) Junctions() []geom.Point { return m.junctions.JunctionPoints() }

// JunctionDetails returns the confirmed junctions with their degree.
func (m *Multisnake) JunctionDetails() []junction.Junction { return m.junctions.Junctions() }

// InitializeSnakes replaces the initial snakes with ridge candidates.
func (m *Multisnake) InitializeSnakes() error {
	if m.env == nil {
		return ErrNoImage
	}
	gen, err := candidate.NewGenerator(m.env)
	if err != nil {
		return err
	}
	snakes, err := gen.Generate()
	if err != nil {
		return err
	}
	m.initial = snakes
	klog.V(1).Infof("multisnake: %d initial snakes over %d directions", len(snakes), gen.Directions())

	return nil
}

// CutSnakesAtTJunctions replaces the converged snakes by their pieces.
func (m *Multisnake) CutSnakesAtTJunctions() {
	before := len(m.converged)
	m.converged = m.junctions.CutAtTJunctions(m.converged)
	klog.V(1).Infof("multisnake: %d snakes cut into %d segments", before, len(m.converged))
}

// GroupSnakes clusters segment tips into junctions, relinks the segments
// into filaments, re-evolves them with fixed tips and keeps the junctions
// that at least two filaments pass through.
func (m *Multisnake) GroupSnakes() error {
	if m.env == nil {
		return ErrNoImage
	}
	m.junctions.Initialize(m.converged)
	m.junctions.Union()
	m.junctions.Configure()
	linked, err := m.junctions.LinkSegments()
	if err != nil {
		return err
	}

	kept := linked[:0]
	for _, s := range linked {
		if !s.Viable() {
			continue
		}
		m.bank.Reset(false)
		s.EvolveWithTipFixed(m.bank, tipFixedIterations)
		if s.Viable() {
			kept = append(kept, s)
		}
	}
	m.converged = kept
	m.junctions.UpdateJunctions(m.converged)
	klog.V(1).Infof("multisnake: %d filaments, %d junctions", len(m.converged), len(m.junctions.Junctions()))

	return nil
}

// Extract runs initialization, evolution, cutting and grouping. ctx is
// checked between stages and between snakes.
func (m *Multisnake) Extract(ctx context.Context) error {
	if err := m.InitializeSnakes(); err != nil {
		return err
	}
	if err := m.DeformSnakes(ctx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.CutSnakesAtTJunctions()

	return m.GroupSnakes()
}

// Network builds the topology graph of the current network.
func (m *Multisnake) Network() (*network.Graph, error) {
	return network.Build(m.converged, m.Junctions(), m.params.GroupingDistanceThreshold)
}
