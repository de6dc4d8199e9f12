// Package lsnmf: the projected-gradient metric. An entry of the gradient G
// counts toward stationarity iff it could still move the factor X inside the
// feasible (nonnegative) region: G[i,j] < 0 (descent available) or X[i,j] > 0
// (not pinned at the boundary). Extraction zeroes the inactive entries; the
// norm of the extraction measures convergence for both the subproblem solver
// and the outer driver.

package lsnmf

import (
	"math"

	"github.com/YW81/nimfa/matrix"
)

// active reports whether gradient entry g is counted for factor entry x.
func active(g, x float64) bool {
	return g < 0 || x > 0
}

// Extract returns the active-entry extraction of gradient G with respect to
// factor X: out[i,j] = G[i,j] where G[i,j] < 0 or X[i,j] > 0, else 0.
//
// Representation: a CSR gradient yields a CSR result over G's structure with
// inactive stored values zeroed (entries G does not store are zero and stay
// absent — for the X > 0 branch this requires G's pattern to cover X's, the
// compatible-sparsity contract; mixed cases fall back to dense semantics).
// A dense G yields a Dense result.
//
// Errors: ErrNilMatrix (nil G or X), matrix.ErrDimensionMismatch.
// Complexity: O(stored of G).
func Extract(g, x matrix.Matrix) (matrix.Matrix, error) {
	if g == nil || x == nil {
		return nil, ErrNilMatrix
	}
	if err := matrix.ValidateSameShape(g, x); err != nil {
		return nil, err
	}

	if sg, ok := g.(*matrix.CSR); ok {
		out := sg.Clone().(*matrix.CSR)
		out.NonZero(func(i, j int, v float64) {
			xv, _ := x.At(i, j) // bounds hold: shapes validated
			if !active(v, xv) {
				_ = out.Set(i, j, 0) // stored position, cannot fail
			}
		})

		return out, nil
	}

	out, err := matrix.NewDense(g.Rows(), g.Cols())
	if err != nil {
		return nil, err
	}
	raw := out.RawData()
	c := g.Cols()
	g.NonZero(func(i, j int, v float64) {
		xv, _ := x.At(i, j)
		if active(v, xv) {
			raw[i*c+j] = v
		}
	})

	return out, nil
}

// ProjGradNorm returns the Frobenius norm of Extract(G, X) without
// materializing the extraction: inactive entries contribute zero.
//
// Errors: as Extract. Complexity: O(stored of G).
func ProjGradNorm(g, x matrix.Matrix) (float64, error) {
	if g == nil || x == nil {
		return 0, ErrNilMatrix
	}
	if err := matrix.ValidateSameShape(g, x); err != nil {
		return 0, err
	}

	// Dense×Dense fast path over the contiguous buffers.
	if dg, gOK := g.(*matrix.Dense); gOK {
		if dx, xOK := x.(*matrix.Dense); xOK {
			rg, rx := dg.RawData(), dx.RawData()
			var sum float64
			for k, v := range rg {
				if active(v, rx[k]) {
					sum += v * v
				}
			}

			return math.Sqrt(sum), nil
		}
	}

	var sum float64
	g.NonZero(func(i, j int, v float64) {
		xv, _ := x.At(i, j)
		if active(v, xv) {
			sum += v * v
		}
	})

	return math.Sqrt(sum), nil
}
