// Package seed: sentinel error set, checked via errors.Is.

package seed

import "errors"

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("seed: nil matrix")

	// ErrBadRank indicates a non-positive rank.
	ErrBadRank = errors.New("seed: rank must be >= 1")

	// ErrShapeMismatch indicates Fixed factors whose shapes do not match the
	// m×rank / rank×n contract for the given V and rank.
	ErrShapeMismatch = errors.New("seed: fixed factor shape mismatch")

	// ErrRankTooLarge indicates an NNDSVD rank exceeding min(m, n): there are
	// only min(m, n) singular triplets to build columns from.
	ErrRankTooLarge = errors.New("seed: rank exceeds min(rows, cols)")

	// ErrSVDFailed indicates that the SVD factorization did not converge.
	ErrSVDFailed = errors.New("seed: SVD failed to converge")
)
