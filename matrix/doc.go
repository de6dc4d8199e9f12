// Package matrix provides the dense/sparse linear-algebra substrate for the
// factorization algorithms in this module.
//
// The matrix package provides:
//
//   - A small Matrix interface (Rows, Cols, At, Set, Clone, NonZero) with
//     bounds-checked, error-returning accessors.
//   - Dense: a row-major matrix backed by gonum, used for factors and all
//     intermediate products.
//   - CSR: a compressed-sparse-row matrix for large, mostly-zero inputs.
//   - Representation-agnostic kernels (Mul, Transpose, Sub, Scale, MaxScalar,
//     MulElemSum, Stack, Norm, Equal) with fast paths selected once per call,
//     never per element.
//
// Mixed-representation operands are supported: binary kernels accept any
// combination of Dense and CSR and produce Dense results (Transpose preserves
// the input representation). All loops run in fixed row-major order so results
// are deterministic for a given pair of operands.
//
// See the examples in this package and the lsnmf package for usage patterns.
package matrix
