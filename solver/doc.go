// Package solver caches the stiffness systems that drive snake evolution.
//
// Every evolution step of a snake with n snaxels solves, per coordinate axis,
//
//	A · x_t = γ · x_{t-1} + external force
//
// where A is pentadiagonal for open curves and circulant pentadiagonal for
// closed ones. A depends only on (n, open/closed, α, β, γ), so a Bank
// factorizes it once per order and topology and reuses the factorization for
// every later step of every snake of that size.
//
// Factorizations are invalidated only when the coefficients change. Reset with
// resetMatrix=false clears the cached right-hand sides and solutions but keeps
// the factorizations.
//
// A Bank serializes access with a mutex. Concurrent evolution gives each worker
// its own Bank so no contention occurs.
package solver
