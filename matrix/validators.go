// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly via matrixErrorf.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - ValidateNonNegative runs O(stored) over the structural entries only.

package matrix

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil (compose with ValidateNotNil first).
// Returns ErrDimensionMismatch on any difference. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMultipliable ensures a·b is defined (a.Cols == b.Rows).
// Assumes both are non-nil. Returns ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateMultipliable(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateNonNegative ensures every stored entry of m is >= 0 (absent sparse
// entries are zero and trivially pass). Returns ErrNegativeValue on the first
// violation. Complexity: O(stored).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var bad bool
	m.NonZero(func(_, _ int, v float64) {
		if v < 0 {
			bad = true
		}
	})
	if bad {
		return ErrNegativeValue
	}

	return nil
}
