// Package seed provides initialization strategies ("seeders") for the
// factorization algorithms in this module. A seeder turns an input matrix V
// and a target rank into an initial nonnegative factor pair (W, H); the
// optimizer then takes over.
//
// Strategies:
//
//   - Fixed  — hand the optimizer caller-supplied factors (deterministic,
//     useful for tests and for resuming a previous fit).
//   - Random — uniform entries in [0, max(V)); deterministic under a fixed
//     seed value.
//   - NNDSVD — Nonnegative Double Singular Value Decomposition
//     (Boutsidis & Gallopoulos, 2008): builds the leading rank singular
//     triplets of V and keeps the dominant nonnegative part of each, which
//     typically cuts the iterations the optimizer needs markedly.
//
// All seeders return dense factors regardless of V's representation and
// never mutate V.
package seed
