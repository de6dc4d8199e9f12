// SPDX-License-Identifier: MIT

// Package matrix - CSR (compressed sparse row) storage.
//
// Purpose:
//   - Represent large, mostly-zero inputs without materializing zeros.
//   - Keep the classic three-slice layout: values, colIdx and rowPtr, with
//     rowPtr[i]..rowPtr[i+1] delimiting the stored entries of row i and
//     column indices sorted within each row (deterministic iteration order).
//   - Absent entries are exactly zero; the structure never grows after
//     construction (Set may only update stored positions).
//
// Complexity quicksheet:
//   - NewCSRFromDense: O(r*c); At: O(log nnz(row)); NonZero: O(nnz);
//     Transpose: O(nnz + r + c); Clone: O(nnz).

package matrix

import (
	"fmt"
	"sort"
)

// csrErrorf wraps a sentinel with a uniform CSR context, preserving
// errors.Is matching via %w.
func csrErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSR.%s(%d,%d): %w", method, row, col, err)
}

// CSR is a compressed-sparse-row matrix.
type CSR struct {
	r, c   int       // dimensions
	rowPtr []int     // len r+1; rowPtr[i+1]-rowPtr[i] = stored entries of row i
	colIdx []int     // len nnz; sorted within each row
	values []float64 // len nnz; parallel to colIdx
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*CSR)(nil)

// NewCSR builds a CSR matrix from raw compressed storage (slices are copied).
// The structure is validated: rowPtr must be monotonic with rowPtr[0] == 0 and
// rowPtr[r] == len(values), colIdx entries must be in-range and strictly
// increasing within each row. Returns ErrBadSparsity on any violation.
func NewCSR(r, c int, rowPtr, colIdx []int, values []float64) (*CSR, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(rowPtr) != r+1 || rowPtr[0] != 0 || rowPtr[r] != len(values) || len(colIdx) != len(values) {
		return nil, ErrBadSparsity
	}
	for i := 0; i < r; i++ {
		if rowPtr[i+1] < rowPtr[i] {
			return nil, ErrBadSparsity
		}
		for p := rowPtr[i]; p < rowPtr[i+1]; p++ {
			if colIdx[p] < 0 || colIdx[p] >= c {
				return nil, ErrBadSparsity
			}
			if p > rowPtr[i] && colIdx[p] <= colIdx[p-1] {
				return nil, ErrBadSparsity
			}
		}
	}
	s := &CSR{
		r:      r,
		c:      c,
		rowPtr: append([]int(nil), rowPtr...),
		colIdx: append([]int(nil), colIdx...),
		values: append([]float64(nil), values...),
	}

	return s, nil
}

// NewCSRFromDense compresses any matrix into CSR form, dropping exact zeros.
// Returns ErrNilMatrix for a nil input.
func NewCSRFromDense(m Matrix) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}
	s := &CSR{r: r, c: c, rowPtr: make([]int, 1, r+1)}
	m.NonZero(func(i, j int, v float64) {
		if v == 0 {
			return
		}
		for len(s.rowPtr) <= i {
			s.rowPtr = append(s.rowPtr, len(s.values))
		}
		s.colIdx = append(s.colIdx, j)
		s.values = append(s.values, v)
	})
	for len(s.rowPtr) <= r {
		s.rowPtr = append(s.rowPtr, len(s.values))
	}

	return s, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (s *CSR) Rows() int { return s.r }

// Cols returns the number of columns. Complexity: O(1).
func (s *CSR) Cols() int { return s.c }

// NNZ returns the number of stored entries. Complexity: O(1).
func (s *CSR) NNZ() int { return len(s.values) }

// find locates the storage position of (i, j) via binary search within row i.
// Returns (pos, true) for a stored entry, (insertion point, false) otherwise.
func (s *CSR) find(i, j int) (int, bool) {
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	p := lo + sort.SearchInts(s.colIdx[lo:hi], j)
	if p < hi && s.colIdx[p] == j {
		return p, true
	}

	return p, false
}

// At retrieves the element at (i, j); absent entries read as zero.
func (s *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, csrErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	if p, ok := s.find(i, j); ok {
		return s.values[p], nil
	}

	return 0, nil
}

// Set updates a stored entry in place. Writes outside the stored structure
// return ErrSparseWrite: the sparsity pattern is fixed at construction.
func (s *CSR) Set(i, j int, v float64) error {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return csrErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	p, ok := s.find(i, j)
	if !ok {
		return csrErrorf(ctxSet, i, j, ErrSparseWrite)
	}
	s.values[p] = v

	return nil
}

// Clone returns an independent deep copy, preserving the CSR representation.
func (s *CSR) Clone() Matrix {
	return &CSR{
		r:      s.r,
		c:      s.c,
		rowPtr: append([]int(nil), s.rowPtr...),
		colIdx: append([]int(nil), s.colIdx...),
		values: append([]float64(nil), s.values...),
	}
}

// NonZero visits stored entries in row-major order.
func (s *CSR) NonZero(fn func(i, j int, v float64)) {
	for i := 0; i < s.r; i++ {
		for p := s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			fn(i, s.colIdx[p], s.values[p])
		}
	}
}

// ToDense materializes the matrix as Dense.
func (s *CSR) ToDense() *Dense {
	d, _ := NewDense(s.r, s.c) // shape validated at construction
	raw := d.RawData()
	s.NonZero(func(i, j int, v float64) {
		raw[i*s.c+j] = v
	})

	return d
}

// transpose builds the CSR transpose by counting entries per column and
// scattering; stored order stays sorted because rows are walked in order.
func (s *CSR) transpose() *CSR {
	t := &CSR{
		r:      s.c,
		c:      s.r,
		rowPtr: make([]int, s.c+1),
		colIdx: make([]int, len(s.colIdx)),
		values: make([]float64, len(s.values)),
	}
	for _, j := range s.colIdx {
		t.rowPtr[j+1]++
	}
	for j := 0; j < s.c; j++ {
		t.rowPtr[j+1] += t.rowPtr[j]
	}
	next := append([]int(nil), t.rowPtr...)
	s.NonZero(func(i, j int, v float64) {
		p := next[j]
		next[j]++
		t.colIdx[p] = i
		t.values[p] = v
	})

	return t
}
