// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// LU holds a Doolittle factorization A = L*U (unit lower L, upper U) stored
// compactly in a single band: the strict lower part holds L, the diagonal and
// upper part hold U. The factorization is immutable after Factorize and may be
// shared by concurrent Solve calls.
type LU struct {
	n, kl, ku int
	w         int
	lu        []float64
}

// Factorize computes the Doolittle factorization of a square matrix without pivoting.
//
// Implementation:
//   - Stage 1: ValidateNotNil and ValidateSquare. A *Band input keeps its
//     bandwidths; any other Matrix is treated as full (kl = ku = n-1).
//   - Stage 2: copy A into band storage, then for i = 0..n-1 build row i of U
//     and column i of L in place. Inner sums only run over k where both L(i,k)
//     and U(k,j) can be non-zero, so a pentadiagonal system costs O(n).
//
// Behavior highlights:
//   - Without pivoting the band of L and U equals the band of A.
//   - Fixed loop order: identical inputs give bit-identical factors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrSingular if a pivot is exactly zero.
//   - ErrNaNInf if a pivot is NaN or infinite.
//
// Complexity:
//   - Time O(n*kl*ku), Space O(n*(kl+ku+1)).
func Factorize(m Matrix) (*LU, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFactor, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opFactor, err)
	}

	n := m.Rows()
	f := &LU{n: n, kl: n - 1, ku: n - 1}
	if b, ok := m.(*Band); ok {
		f.kl, f.ku = b.kl, b.ku
	}
	f.w = f.kl + f.ku + 1
	f.lu = make([]float64, n*f.w)

	// Copy A into band storage.
	if b, ok := m.(*Band); ok {
		copy(f.lu, b.data)
	} else {
		for i := 0; i < n; i++ {
			for j := max(0, i-f.kl); j <= min(n-1, i+f.ku); j++ {
				v, err := m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opFactor, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				f.lu[f.pos(i, j)] = v
			}
		}
	}

	var i, j, k, r int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		// Row i of U.
		for j = i; j <= min(n-1, i+f.ku); j++ {
			sum = ZeroSum
			for k = max(0, i-f.kl, j-f.ku); k < i; k++ {
				sum += f.lu[f.pos(i, k)] * f.lu[f.pos(k, j)]
			}
			f.lu[f.pos(i, j)] -= sum
		}

		pivot = f.lu[f.pos(i, i)]
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opFactor, ErrSingular)
		}
		if math.IsNaN(pivot) || math.IsInf(pivot, 0) {
			return nil, matrixErrorf(opFactor, ErrNaNInf)
		}

		// Column i of L.
		for r = i + 1; r <= min(n-1, i+f.kl); r++ {
			sum = ZeroSum
			for k = max(0, r-f.kl, i-f.ku); k < i; k++ {
				sum += f.lu[f.pos(r, k)] * f.lu[f.pos(k, i)]
			}
			f.lu[f.pos(r, i)] = (f.lu[f.pos(r, i)] - sum) / pivot
		}
	}

	return f, nil
}

// pos maps (i, j) to the band offset; callers guarantee (i, j) is inside the band.
func (f *LU) pos(i, j int) int { return i*f.w + j - i + f.kl }

// Order returns n.
func (f *LU) Order() int { return f.n }

// Solve returns x with A*x = b.
func (f *LU) Solve(b []float64) ([]float64, error) {
	x := make([]float64, f.n)
	if err := f.SolveInto(x, b); err != nil {
		return nil, err
	}

	return x, nil
}

// SolveInto writes the solution of A*x = b into x. x and b may alias.
//
// Errors:
//   - ErrDimensionMismatch / ErrNilMatrix if len(x) or len(b) differs from n.
//   - ErrNaNInf if b is not finite.
//
// Complexity: O(n*(kl+ku)).
func (f *LU) SolveInto(x, b []float64) error {
	if err := ValidateVecLen(b, f.n); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(x, f.n); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return matrixErrorf(opSolve, err)
	}

	var i, k int
	var sum float64
	if &x[0] != &b[0] {
		copy(x, b)
	}
	// Forward substitution: L*y = b (unit diagonal).
	for i = 0; i < f.n; i++ {
		sum = ZeroSum
		for k = max(0, i-f.kl); k < i; k++ {
			sum += f.lu[f.pos(i, k)] * x[k]
		}
		x[i] -= sum
	}
	// Backward substitution: U*x = y.
	for i = f.n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k <= min(f.n-1, i+f.ku); k++ {
			sum += f.lu[f.pos(i, k)] * x[k]
		}
		x[i] = (x[i] - sum) / f.lu[f.pos(i, i)]
	}

	return nil
}
