package snake

import (
	"github.com/NoSuchProcess/SOAX/config"
	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/solver"
	"github.com/NoSuchProcess/SOAX/volume"
)

// dampZFactor scales the z component of the external force when damp-z is set.
const dampZFactor = 0.1

// Env is the read-only context shared by all snakes of one extraction.
type Env struct {
	Params  config.Parameters
	Sampler volume.Sampler
}

// NewEnv bundles parameters and an image sampler.
func NewEnv(p config.Parameters, s volume.Sampler) *Env {
	return &Env{Params: p, Sampler: s}
}

// Is2D reports whether the image is planar.
func (e *Env) Is2D() bool { return e.Sampler.GridSize()[2] == 1 }

// Coefficients returns the stiffness weights from the parameters.
func (e *Env) Coefficients() solver.Coefficients {
	return solver.Coefficients{Alpha: e.Params.Alpha, Beta: e.Params.Beta, Gamma: e.Params.Gamma}
}

// State is the evolution state of a snake.
type State int

const (
	StateInitial State = iota
	StateEvolving
	StateConverged
	StateNonViable
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateEvolving:
		return "evolving"
	case StateConverged:
		return "converged"
	case StateNonViable:
		return "non-viable"
	}

	return "unknown"
}

// Snake is one active contour.
type Snake struct {
	env      *Env
	vertices []geom.Point
	open     bool
	initial  bool
	viable   bool
	conv     bool
	state    State
	length   float64
	lo, hi   geom.Point // bounding box of vertices
	iters    int

	headHooked bool
	tailHooked bool
	subsnakes  []*Snake
}

// New builds a snake from a copy of pts. It is viable when it has at least
// two snaxels; call Resample to enforce length and spacing.
func New(env *Env, pts []geom.Point, open, initial bool) *Snake {
	s := &Snake{
		env:      env,
		vertices: append([]geom.Point(nil), pts...),
		open:     open,
		initial:  initial,
		viable:   len(pts) >= 2,
	}
	s.updateGeometry()
	if !s.viable {
		s.state = StateNonViable
	}

	return s
}

// Env returns the shared context.
func (s *Snake) Env() *Env { return s.env }

// Vertices returns the snaxels. The slice must not be modified.
func (s *Snake) Vertices() []geom.Point { return s.vertices }

// Len returns the number of snaxels.
func (s *Snake) Len() int { return len(s.vertices) }

// Vertex returns snaxel i.
func (s *Snake) Vertex(i int) geom.Point { return s.vertices[i] }

// Head returns the first snaxel.
func (s *Snake) Head() geom.Point { return s.vertices[0] }

// Tail returns the last snaxel.
func (s *Snake) Tail() geom.Point { return s.vertices[len(s.vertices)-1] }

// Open reports whether the curve is open.
func (s *Snake) Open() bool { return s.open }

// Viable reports whether the snake may continue to exist.
func (s *Snake) Viable() bool { return s.viable }

// Converged reports whether the last Evolve stopped on the change threshold.
func (s *Snake) Converged() bool { return s.conv }

// State returns the evolution state.
func (s *Snake) State() State { return s.state }

// InitialState reports whether the snake is an unevolved candidate.
func (s *Snake) InitialState() bool { return s.initial }

// SetInitialState marks or clears the candidate flag.
func (s *Snake) SetInitialState(v bool) { s.initial = v }

// Length returns the arc length computed at the last geometry update.
func (s *Snake) Length() float64 { return s.length }

// Iterations returns the number of evolution steps taken so far.
func (s *Snake) Iterations() int { return s.iters }

// HeadHooked reports whether the head is attached to another snake.
func (s *Snake) HeadHooked() bool { return s.headHooked }

// TailHooked reports whether the tail is attached to another snake.
func (s *Snake) TailHooked() bool { return s.tailHooked }

// Subsnakes returns the pieces produced when the snake was split.
func (s *Snake) Subsnakes() []*Snake { return s.subsnakes }

// Clone returns an independent copy without subsnakes.
func (s *Snake) Clone() *Snake {
	c := *s
	c.vertices = append([]geom.Point(nil), s.vertices...)
	c.subsnakes = nil

	return &c
}

// Reverse flips the orientation in place; hook flags follow their tips.
func (s *Snake) Reverse() {
	for i, j := 0, len(s.vertices)-1; i < j; i, j = i+1, j-1 {
		s.vertices[i], s.vertices[j] = s.vertices[j], s.vertices[i]
	}
	s.headHooked, s.tailHooked = s.tailHooked, s.headHooked
}

// SetVertex moves snaxel i and refreshes length and bounds.
func (s *Snake) SetVertex(i int, p geom.Point) {
	s.vertices[i] = p
	s.updateGeometry()
}

// markNonViable retires the snake.
func (s *Snake) markNonViable() {
	s.viable = false
	s.state = StateNonViable
}

// updateGeometry recomputes the arc length and bounding box.
func (s *Snake) updateGeometry() {
	s.length = geom.PolylineLength(s.vertices, !s.open)
	if len(s.vertices) == 0 {
		s.lo, s.hi = geom.Point{}, geom.Point{}
		return
	}
	s.lo, s.hi = s.vertices[0], s.vertices[0]
	for _, p := range s.vertices[1:] {
		s.lo = s.lo.Min(p)
		s.hi = s.hi.Max(p)
	}
}

// near reports whether p lies within d of the bounding box.
func (s *Snake) near(p geom.Point, d float64) bool {
	return p.X >= s.lo.X-d && p.X <= s.hi.X+d &&
		p.Y >= s.lo.Y-d && p.Y <= s.hi.Y+d &&
		p.Z >= s.lo.Z-d && p.Z <= s.hi.Z+d
}
