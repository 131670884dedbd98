// SPDX-License-Identifier: MIT

package matrix

// Operation tags used when wrapping sentinels.
const (
	opNewDense = "NewDense"
	opNewBand  = "NewBand"
	opFactor   = "Factorize"
	opSolve    = "LU.Solve"
	opMulVec   = "MulVec"
)

const (
	// ZeroSum is the neutral start value for dot-product accumulators.
	ZeroSum = 0.0

	// ZeroPivot is the exact pivot value treated as singular.
	ZeroPivot = 0.0
)

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the matrix.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	Set(i, j int, v float64) error
}
