// SPDX-License-Identifier: MIT
// Package matrix provides representation-agnostic kernels over any Matrix
// implementation: multiplication, transpose, subtraction, scaling, vertical
// stacking and the Frobenius norm. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Design:
//   - Fast paths are chosen ONCE per call from the concrete operand types
//     (Dense×Dense rides gonum/BLAS; a CSR operand drives an accumulation
//     loop over its stored entries). The generic At-based fallback exists for
//     third-party Matrix implementations.
//   - Binary kernels with dense results allocate exactly one output Dense.
//   - Loop orders are fixed (row-major, structural order for CSR), so results
//     are deterministic for a given operand pair.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opSub        = "Sub"
	opScale      = "Scale"
	opStack      = "Stack"
	opNorm       = "Norm"
	opMaxScalar  = "MaxScalar"
	opMulElemSum = "MulElemSum"
	opEqual      = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel via %w. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateBinary runs the canonical nil+shape sequence for binary kernels.
func validateBinary(tag string, a, b Matrix, shape func(a, b Matrix) error) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := shape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// Mul computes a·b and returns the product as a new Dense.
//
// Fast paths:
//   - Dense×Dense: gonum Mul (BLAS).
//   - CSR on either (or both) sides: accumulation over stored entries only,
//     O(nnz·k) instead of O(r·k·c).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r·k·c) dense, O(nnz-driven) sparse. Space: one r×c Dense.
func Mul(a, b Matrix) (*Dense, error) {
	if err := validateBinary(opMul, a, b, ValidateMultipliable); err != nil {
		return nil, err
	}
	r, c := a.Rows(), b.Cols()

	// Dense×Dense: delegate to gonum.
	if da, aOK := a.(*Dense); aOK {
		if db, bOK := b.(*Dense); bOK {
			out := mat.NewDense(r, c, nil)
			out.Mul(da.gonum(), db.gonum())

			return wrapDense(out), nil
		}
	}

	out, _ := NewDense(r, c) // shape already validated
	raw := out.RawData()

	switch sa := a.(type) {
	case *CSR:
		switch sb := b.(type) {
		case *CSR:
			// CSR×CSR: for each stored a[i,k], scatter a[i,k]*b[k,:].
			for i := 0; i < sa.r; i++ {
				for p := sa.rowPtr[i]; p < sa.rowPtr[i+1]; p++ {
					k, v := sa.colIdx[p], sa.values[p]
					for q := sb.rowPtr[k]; q < sb.rowPtr[k+1]; q++ {
						raw[i*c+sb.colIdx[q]] += v * sb.values[q]
					}
				}
			}
		default:
			// CSR×dense-like: stored entries of a drive the row scatter.
			sa.NonZero(func(i, k int, v float64) {
				base := i * c
				for j := 0; j < c; j++ {
					bv, _ := b.At(k, j) // bounds hold by construction
					raw[base+j] += v * bv
				}
			})
		}

		return out, nil
	}

	if sb, ok := b.(*CSR); ok {
		// dense-like×CSR: stored entries of b drive the column scatter.
		sb.NonZero(func(k, j int, v float64) {
			for i := 0; i < r; i++ {
				av, _ := a.At(i, k)
				raw[i*c+j] += av * v
			}
		})

		return out, nil
	}

	// Generic fallback via At (still deterministic i→k→j order).
	inner := a.Cols()
	for i := 0; i < r; i++ {
		for k := 0; k < inner; k++ {
			av, _ := a.At(i, k)
			if av == 0 {
				continue
			}
			for j := 0; j < c; j++ {
				bv, _ := b.At(k, j)
				raw[i*c+j] += av * bv
			}
		}
	}

	return out, nil
}

// Transpose returns aᵗ, preserving the input representation
// (Dense → Dense, CSR → CSR). Errors: ErrNilMatrix.
// Complexity: O(r*c) dense, O(nnz + r + c) sparse.
func Transpose(a Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	switch t := a.(type) {
	case *Dense:
		r, c := t.Rows(), t.Cols()
		out := mat.NewDense(c, r, nil)
		out.Copy(t.gonum().T())

		return wrapDense(out), nil
	case *CSR:
		return t.transpose(), nil
	}

	// Generic fallback.
	out, err := NewDense(a.Cols(), a.Rows())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	raw := out.RawData()
	rows := a.Rows()
	a.NonZero(func(i, j int, v float64) {
		raw[j*rows+i] = v
	})

	return out, nil
}

// Sub computes a − b elementwise into a new Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := validateBinary(opSub, a, b, ValidateSameShape); err != nil {
		return nil, err
	}

	// Dense fast path: single gonum kernel call.
	if da, aOK := a.(*Dense); aOK {
		if db, bOK := b.(*Dense); bOK {
			var out mat.Dense
			out.Sub(da.gonum(), db.gonum())

			return wrapDense(&out), nil
		}
	}

	out, _ := NewDense(a.Rows(), a.Cols())
	raw := out.RawData()
	c := a.Cols()
	a.NonZero(func(i, j int, v float64) { raw[i*c+j] += v })
	b.NonZero(func(i, j int, v float64) { raw[i*c+j] -= v })

	return out, nil
}

// Scale computes s·a into a new Dense. Errors: ErrNilMatrix.
// Complexity: O(stored).
func Scale(s float64, a Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if da, ok := a.(*Dense); ok {
		var out mat.Dense
		out.Scale(s, da.gonum())

		return wrapDense(&out), nil
	}

	out, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	raw := out.RawData()
	c := a.Cols()
	a.NonZero(func(i, j int, v float64) { raw[i*c+j] = s * v })

	return out, nil
}

// Stack vertically concatenates a on top of b into a new Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch (column counts differ).
// Complexity: O((ra+rb)*c).
func Stack(a, b Matrix) (*Dense, error) {
	shape := func(a, b Matrix) error {
		if a.Cols() != b.Cols() {
			return ErrDimensionMismatch
		}

		return nil
	}
	if err := validateBinary(opStack, a, b, shape); err != nil {
		return nil, err
	}

	var out mat.Dense
	out.Stack(asGonum(a), asGonum(b))

	return wrapDense(&out), nil
}

// Norm returns the Frobenius norm of a. Errors: ErrNilMatrix.
// Complexity: O(stored).
func Norm(a Matrix) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	switch t := a.(type) {
	case *Dense:
		return mat.Norm(t.gonum(), 2), nil
	default:
		// Sparse/generic: accumulate over stored entries only.
		var sum float64
		a.NonZero(func(_, _ int, v float64) { sum += v * v })

		return math.Sqrt(sum), nil
	}
}

// asGonum adapts any Matrix to a gonum mat.Matrix for composite kernels.
// Dense is passed through; other representations are materialized.
func asGonum(a Matrix) mat.Matrix {
	switch t := a.(type) {
	case *Dense:
		return t.gonum()
	case *CSR:
		return t.ToDense().gonum()
	}
	out, _ := NewDense(a.Rows(), a.Cols())
	raw := out.RawData()
	c := a.Cols()
	a.NonZero(func(i, j int, v float64) { raw[i*c+j] = v })

	return out.gonum()
}
