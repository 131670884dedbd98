package solver

import (
	"fmt"
	"sync"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/matrix"
)

// Bank caches factorized stiffness systems keyed by (order, open/closed).
type Bank struct {
	mu     sync.Mutex
	coef   Coefficients
	open   []*system // indexed by order - MinimumEvolvingSize
	closed []*system
}

// NewBank returns an empty bank for the given coefficients.
func NewBank(c Coefficients) *Bank {
	return &Bank{coef: c}
}

// Coefficients returns the coefficients the cached systems were built with.
func (b *Bank) Coefficients() Coefficients {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.coef
}

// SetCoefficients replaces α, β, γ. Any change discards every cached factorization.
func (b *Bank) SetCoefficients(c Coefficients) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if c == b.coef {
		return
	}
	b.coef = c
	b.reset(true)
}

// Reset clears cached right-hand sides and solutions. With resetMatrix set the
// factorizations are discarded as well.
func (b *Bank) Reset(resetMatrix bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset(resetMatrix)
}

func (b *Bank) reset(resetMatrix bool) {
	if resetMatrix {
		b.open, b.closed = nil, nil
		return
	}
	for _, cache := range [][]*system{b.open, b.closed} {
		for _, s := range cache {
			if s == nil {
				continue
			}
			for d := range s.rhs {
				s.rhs[d], s.solution[d] = nil, nil
			}
		}
	}
}

// Cached reports whether a factorization for (order, open) is present.
func (b *Bank) Cached(order int, open bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	cache := b.cache(open)
	i := order - MinimumEvolvingSize

	return i >= 0 && i < len(*cache) && (*cache)[i] != nil
}

// SolveSystem solves the system of order len(vectors) for one coordinate axis,
// using component axis of every vector as the right-hand side. The
// factorization is built on first use and reused afterwards.
//
// Errors:
//   - ErrOrderTooSmall if len(vectors) < MinimumEvolvingSize.
//   - ErrAxis if axis is outside 0..2.
//   - matrix errors from factorization or substitution.
func (b *Bank) SolveSystem(vectors []geom.Vector, axis int, open bool) ([]float64, error) {
	if axis < 0 || axis > 2 {
		return nil, ErrAxis
	}
	order := len(vectors)
	if order < MinimumEvolvingSize {
		return nil, fmt.Errorf("SolveSystem(order=%d): %w", order, ErrOrderTooSmall)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := b.system(order, open)
	if err != nil {
		return nil, err
	}

	rhs := make([]float64, order)
	for i, v := range vectors {
		rhs[i] = geom.Axis(v, axis)
	}
	sol, err := s.lu.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("SolveSystem(order=%d, axis=%d): %w", order, axis, err)
	}
	s.rhs[axis] = rhs
	s.solution[axis] = sol

	out := make([]float64, order)
	copy(out, sol)

	return out, nil
}

// Solution returns entry index of the last solution computed for (order, axis, open).
func (b *Bank) Solution(order, index, axis int, open bool) (float64, error) {
	if axis < 0 || axis > 2 {
		return 0, ErrAxis
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	cache := b.cache(open)
	i := order - MinimumEvolvingSize
	if i < 0 || i >= len(*cache) || (*cache)[i] == nil || (*cache)[i].solution[axis] == nil {
		return 0, fmt.Errorf("Solution(order=%d): %w", order, ErrNoSolution)
	}
	sol := (*cache)[i].solution[axis]
	if index < 0 || index >= len(sol) {
		return 0, fmt.Errorf("Solution(order=%d, index=%d): %w", order, index, ErrIndex)
	}

	return sol[index], nil
}

func (b *Bank) cache(open bool) *[]*system {
	if open {
		return &b.open
	}

	return &b.closed
}

// system returns the cached entry for (order, open), factorizing on a miss.
func (b *Bank) system(order int, open bool) (*system, error) {
	cache := b.cache(open)
	i := order - MinimumEvolvingSize
	if i < len(*cache) && (*cache)[i] != nil {
		return (*cache)[i], nil
	}

	var (
		m   matrix.Matrix
		err error
	)
	if open {
		m, err = FillOpen(order, b.coef)
	} else {
		m, err = FillClosed(order, b.coef)
	}
	if err != nil {
		return nil, err
	}
	lu, err := matrix.Factorize(m)
	if err != nil {
		return nil, fmt.Errorf("factorize(order=%d, open=%t): %w", order, open, err)
	}

	for len(*cache) <= i {
		*cache = append(*cache, nil)
	}
	s := &system{lu: lu}
	(*cache)[i] = s

	return s, nil
}
