package snake

import (
	"math"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/solver"
)

// Evolve deforms the snake until it converges, becomes non-viable, or has
// taken min(maxIter, max-iterations) steps. converged holds the snakes that
// already finished; overlap with them trims and hooks tips or splits the
// snake into subsnakes (see Subsnakes).
//
// Convergence is tested every check-period steps: the mean distance from the
// current snaxels to the curve as it was one period earlier must fall below
// change-threshold.
func (s *Snake) Evolve(bank *solver.Bank, converged []*Snake, maxIter int) {
	if !s.viable {
		s.markNonViable()
		return
	}
	p := s.env.Params
	limit := min(maxIter, p.MaxIterations)
	s.state = StateEvolving
	s.conv = false
	snapshot := append([]geom.Point(nil), s.vertices...)

	for iter := 0; iter < limit; iter++ {
		if s.handleOverlap(converged); !s.viable {
			return
		}
		if err := s.step(bank, false); err != nil {
			s.markNonViable()
			return
		}
		if s.Resample(); !s.viable {
			return
		}
		s.iters++
		if (iter+1)%p.CheckPeriod == 0 {
			if s.meanDistanceTo(snapshot) < p.ChangeThreshold {
				s.conv = true
				break
			}
			snapshot = append(snapshot[:0], s.vertices...)
		}
	}
	s.initial = false
	s.state = StateConverged
}

// EvolveWithTipFixed runs a fixed number of steps with both endpoints pinned
// and without overlap handling.
func (s *Snake) EvolveWithTipFixed(bank *solver.Bank, iterations int) {
	if !s.viable {
		s.markNonViable()
		return
	}
	for i := 0; i < iterations; i++ {
		if err := s.step(bank, true); err != nil {
			s.markNonViable()
			return
		}
		if s.Resample(); !s.viable {
			return
		}
		s.iters++
	}
}

// step advances the snake by one semi-implicit iteration.
func (s *Snake) step(bank *solver.Bank, fixTips bool) error {
	p := s.env.Params
	planar := s.env.Is2D()
	gamma := bank.Coefficients().Gamma
	n := len(s.vertices)

	rhs := make([]geom.Vector, n)
	for i, pt := range s.vertices {
		f := s.env.Sampler.SampleGradient(pt).MulScalar(p.Weight)
		if planar {
			f.Z = 0
		} else if p.DampZ {
			f.Z *= dampZFactor
		}
		rhs[i] = pt.MulScalar(gamma).Add(f)
	}
	if s.open && !fixTips {
		if !s.headHooked {
			rhs[0] = rhs[0].Add(s.tipForce(true))
		}
		if !s.tailHooked {
			rhs[n-1] = rhs[n-1].Add(s.tipForce(false))
		}
	}

	dims := 3
	if planar {
		dims = 2
	}
	next := append([]geom.Point(nil), s.vertices...)
	for axis := 0; axis < dims; axis++ {
		sol, err := bank.SolveSystem(rhs, axis, s.open)
		if err != nil {
			return err
		}
		for i := range next {
			next[i] = geom.SetAxis(next[i], axis, sol[i])
		}
	}
	if s.open {
		if fixTips || s.headHooked {
			next[0] = s.vertices[0]
		}
		if fixTips || s.tailHooked {
			next[n-1] = s.vertices[n-1]
		}
	}

	size := s.env.Sampler.GridSize()
	for i, pt := range next {
		for d := 0; d < 3; d++ {
			c := geom.Axis(pt, d)
			pt = geom.SetAxis(pt, d, math.Max(0, math.Min(float64(size[d]-1), c)))
		}
		next[i] = pt
	}
	s.vertices = next
	s.updateGeometry()

	return nil
}

// meanDistanceTo returns the mean distance from the snaxels to the polyline ref.
func (s *Snake) meanDistanceTo(ref []geom.Point) float64 {
	if len(s.vertices) == 0 {
		return 0
	}
	var sum float64
	for _, p := range s.vertices {
		_, _, d, _ := geom.NearestOnPolyline(p, ref, !s.open)
		sum += d
	}

	return sum / float64(len(s.vertices))
}
