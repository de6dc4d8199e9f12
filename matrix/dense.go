// SPDX-License-Identifier: MIT

// Package matrix - Dense storage & safe accessors.
//
// Purpose:
//   - Provide a row-major dense matrix backed by gonum's mat.Dense so hot
//     kernels (Mul, Stack, Norm) ride the BLAS paths.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking (gonum panics on misuse; we bounds-check first).
//   - Enforce a numeric policy (optional rejection of NaN/Inf on Set and
//     ingestion) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); NonZero: O(r*c).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Numeric policy defaults.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion and Set. Disable only when upstream data is already vetted.
	DefaultValidateNaNInf = true
)

// Error context tags used by denseErrorf (constants, no magic strings).
const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxNew = "NewDenseFromData"
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite
// indices, preserving errors.Is matching via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - m holds the gonum backing store (stride == Cols for all matrices this
//     package constructs, so RawData is contiguous).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default above).
type Dense struct {
	m              *mat.Dense
	validateNaNInf bool
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Returns ErrInvalidDimensions unless r > 0 and c > 0.
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{m: mat.NewDense(r, c, nil), validateNaNInf: DefaultValidateNaNInf}, nil
}

// NewDenseFromData creates an r×c matrix from row-major data (copied).
// Returns ErrInvalidDimensions on bad shape, ErrDimensionMismatch when
// len(data) != r*c, and ErrNaNInf when the numeric policy rejects an entry.
func NewDenseFromData(r, c int, data []float64) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != r*c {
		return nil, ErrDimensionMismatch
	}
	if DefaultValidateNaNInf {
		for k, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxNew, k/c, k%c, ErrNaNInf)
			}
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{m: mat.NewDense(r, c, buf), validateNaNInf: DefaultValidateNaNInf}, nil
}

// wrapDense adopts a gonum matrix produced by an internal kernel.
// Kernel outputs are trusted; the numeric policy still applies to Set.
func wrapDense(m *mat.Dense) *Dense {
	return &Dense{m: m, validateNaNInf: DefaultValidateNaNInf}
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int {
	r, _ := d.m.Dims()

	return r
}

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int {
	_, c := d.m.Dims()

	return c
}

// At retrieves the element at (i, j) with bounds checking.
func (d *Dense) At(i, j int) (float64, error) {
	r, c := d.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.m.At(i, j), nil
}

// Set assigns v at (i, j) with bounds checking and the NaN/Inf policy.
func (d *Dense) Set(i, j int, v float64) error {
	r, c := d.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if d.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	d.m.Set(i, j, v)

	return nil
}

// Clone returns an independent deep copy.
func (d *Dense) Clone() Matrix {
	var out mat.Dense
	out.CloneFrom(d.m)

	return &Dense{m: &out, validateNaNInf: d.validateNaNInf}
}

// NonZero visits every entry in row-major order (Dense stores all entries).
func (d *Dense) NonZero(fn func(i, j int, v float64)) {
	r, c := d.m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			fn(i, j, d.m.At(i, j))
		}
	}
}

// RawData exposes the contiguous row-major backing slice (offset = i*Cols+j).
// Mutations write through to the matrix; intended for flat-loop kernels and
// seeding, not for general callers.
func (d *Dense) RawData() []float64 {
	return d.m.RawMatrix().Data
}

// gonum returns the backing store for in-package kernels.
func (d *Dense) gonum() *mat.Dense { return d.m }
