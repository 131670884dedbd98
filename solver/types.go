package solver

import "github.com/NoSuchProcess/SOAX/matrix"

// MinimumEvolvingSize is the smallest snake (in snaxels) the solver accepts.
const MinimumEvolvingSize = 5

// Coefficients are the internal-energy weights of a snake.
//
//	Alpha: first-order (stretching) weight.
//	Beta:  second-order (bending) weight.
//	Gamma: step-size (viscosity) weight.
type Coefficients struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// DefaultCoefficients returns α=0.01, β=0.1, γ=2.
func DefaultCoefficients() Coefficients {
	return Coefficients{Alpha: 0.01, Beta: 0.1, Gamma: 2}
}

// system is one cached entry: the factorization plus the last right-hand side
// and solution per axis.
type system struct {
	lu       *matrix.LU
	rhs      [3][]float64
	solution [3][]float64
}
