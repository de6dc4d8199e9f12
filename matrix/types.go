// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface shared by the dense and sparse
// representations. Errors and kernels live in dedicated files (errors.go,
// ops.go, ops_elementwise.go) per the package conventions.
package matrix

// Matrix represents a two-dimensional array of float64 values, polymorphic
// over storage (Dense, CSR). Each accessor enforces bounds checking and
// returns clear errors on misuse; algorithms that need speed take concrete
// fast paths once per call instead of probing types per element.
//
// Complexity notes: all methods are O(1) except Clone (O(stored)) and
// NonZero (O(stored)), where "stored" is r*c for Dense and nnz for CSR.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange on invalid indices; Dense additionally rejects
	// NaN/Inf under the numeric policy, and CSR rejects writes outside its
	// stored structure with ErrSparseWrite.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix, preserving representation.
	// The returned Matrix is independent of the original.
	Clone() Matrix

	// NonZero calls fn for every stored entry in deterministic row-major
	// order: all entries for Dense, structural nonzeros for CSR. Entries a
	// sparse matrix does not store are implicitly zero and are not visited.
	NonZero(fn func(i, j int, v float64))
}
