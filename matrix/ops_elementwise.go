// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels used by the projected-gradient machinery:
//     MaxScalar (nonnegative projection), MulElemSum (Σ a∘b, the line-search
//     decrease terms) and Equal (plateau detection across representations).
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on Dense; structural for CSR).
//   - Dense fast paths operate on the contiguous row-major buffers.
//   - Equal with a sparse operand walks rows in a merged scan so both stored
//     and absent positions are compared in O(r*c) worst case without At
//     lookups per element.

package matrix

import (
	"gonum.org/v1/gonum/floats"
)

// MaxScalar computes out[i,j] = max(a[i,j], s) into a new Dense.
// With s = 0 this is the projection onto the nonnegative orthant.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func MaxScalar(a Matrix, s float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMaxScalar, err)
	}
	out, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opMaxScalar, err)
	}
	raw := out.RawData()

	// Dense fast path: single flat pass.
	if da, ok := a.(*Dense); ok {
		src := da.RawData()
		for k, v := range src {
			if v > s {
				raw[k] = v
			} else {
				raw[k] = s
			}
		}

		return out, nil
	}

	// Sparse/generic: absent entries are zero, so pre-fill with max(0, s)
	// and overwrite stored positions.
	base := s
	if base < 0 {
		base = 0
	}
	for k := range raw {
		raw[k] = base
	}
	c := a.Cols()
	a.NonZero(func(i, j int, v float64) {
		if v > s {
			raw[i*c+j] = v
		} else {
			raw[i*c+j] = s
		}
	})

	return out, nil
}

// MulElemSum returns Σ_{i,j} a[i,j]·b[i,j] (the elementwise product summed).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(stored of the
// sparser operand) when a CSR is involved, O(r*c) dense.
func MulElemSum(a, b Matrix) (float64, error) {
	if err := validateBinary(opMulElemSum, a, b, ValidateSameShape); err != nil {
		return 0, err
	}

	// Dense fast path: flat dot product over the contiguous buffers.
	if da, aOK := a.(*Dense); aOK {
		if db, bOK := b.(*Dense); bOK {
			return floats.Dot(da.RawData(), db.RawData()), nil
		}
	}

	// A sparse operand drives the sum: absent entries contribute zero.
	drive, other := a, b
	if _, ok := b.(*CSR); ok {
		drive, other = b, a
	}
	var sum float64
	drive.NonZero(func(i, j int, v float64) {
		ov, _ := other.At(i, j) // bounds hold: shapes validated
		sum += v * ov
	})

	return sum, nil
}

// Equal reports exact elementwise equality of a and b.
//
// Representation handling (the "sparse operand goes first" rule): when one
// operand is CSR, its rows drive a merged scan against the other operand, so
// positions absent from the sparse structure are still compared against an
// implicit zero. Two CSR operands are merged row by row over both structures.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c) worst case.
func Equal(a, b Matrix) (bool, error) {
	if err := validateBinary(opEqual, a, b, ValidateSameShape); err != nil {
		return false, err
	}

	// Dense×Dense: flat comparison over the contiguous buffers.
	if da, aOK := a.(*Dense); aOK {
		if db, bOK := b.(*Dense); bOK {
			ra, rb := da.RawData(), db.RawData()
			for k := range ra {
				if ra[k] != rb[k] {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Ensure a sparse operand, if any, drives iteration.
	if _, ok := b.(*CSR); ok {
		a, b = b, a
	}
	if sa, ok := a.(*CSR); ok {
		if sb, ok := b.(*CSR); ok {
			return csrEqualCSR(sa, sb), nil
		}

		return csrEqualDense(sa, b), nil
	}

	// Generic fallback: full scan via At.
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}

// csrEqualDense merges each CSR row against a full scan of the dense row:
// stored positions compare value-to-value, gaps compare zero-to-value.
func csrEqualDense(s *CSR, d Matrix) bool {
	for i := 0; i < s.r; i++ {
		p := s.rowPtr[i]
		end := s.rowPtr[i+1]
		for j := 0; j < s.c; j++ {
			var sv float64
			if p < end && s.colIdx[p] == j {
				sv = s.values[p]
				p++
			}
			dv, _ := d.At(i, j)
			if sv != dv {
				return false
			}
		}
	}

	return true
}

// csrEqualCSR merges two sorted CSR rows; positions stored on one side only
// must hold zero on that side to stay equal.
func csrEqualCSR(a, b *CSR) bool {
	for i := 0; i < a.r; i++ {
		p, pe := a.rowPtr[i], a.rowPtr[i+1]
		q, qe := b.rowPtr[i], b.rowPtr[i+1]
		for p < pe || q < qe {
			switch {
			case q >= qe || (p < pe && a.colIdx[p] < b.colIdx[q]):
				if a.values[p] != 0 {
					return false
				}
				p++
			case p >= pe || b.colIdx[q] < a.colIdx[p]:
				if b.values[q] != 0 {
					return false
				}
				q++
			default:
				if a.values[p] != b.values[q] {
					return false
				}
				p++
				q++
			}
		}
	}

	return true
}
