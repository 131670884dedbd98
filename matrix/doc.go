// SPDX-License-Identifier: MIT

// Package matrix provides the small set of linear-algebra primitives used by the
// snake solver: a row-major Dense matrix, a Band matrix for pentadiagonal systems,
// and a reusable LU factorization that is computed once and then applied to many
// right-hand sides.
//
// The package offers:
//
//   - Dense: flat row-major storage with bounds-checked At/Set.
//   - Band:  compact storage for matrices with a fixed lower/upper bandwidth.
//   - LU:    Doolittle factorization without pivoting, restricted to the band
//     when the input is a *Band, with Solve for repeated back-substitution.
//   - Validators shared by every kernel (nil, square, vector length, finiteness).
//
// All failures are reported through the sentinel errors in errors.go and can be
// matched with errors.Is. Kernels never panic on user input.
//
// The snake stiffness matrices are symmetric positive definite whenever the
// elasticity weight gamma is positive, so factorizing them without pivoting is
// stable and fully deterministic.
package matrix
