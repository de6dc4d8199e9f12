// Package lsnmf: the fitted-factorization result handed back to callers.

package lsnmf

import (
	"github.com/YW81/nimfa/matrix"
)

// Fit is the outcome of one factorization trial (and, from Factorize, the
// outcome of the last trial of a run).
//
// Fields:
//   - W, H      — the nonnegative factors, m×rank and rank×n.
//   - Iter      — outer iterations actually performed.
//   - FinalObj  — final objective: the Frobenius norm of the stacked active
//     projected-gradient extractions of (gW, W) and (gH, H).
//   - InitGrad  — norm of the initial combined projected gradient; the run's
//     convergence threshold was MinResiduals·InitGrad.
//   - Tracker   — per-trial snapshots; non-nil only on the Fit returned by
//     Factorize when Track was set and NRun > 1.
type Fit struct {
	W        *matrix.Dense
	H        *matrix.Dense
	Iter     int
	FinalObj float64
	InitGrad float64
	Tracker  *Tracker
}

// Reconstruction returns the model estimate W·H of the input matrix.
func (f *Fit) Reconstruction() (*matrix.Dense, error) {
	return matrix.Mul(f.W, f.H)
}

// Distance returns the Frobenius residual ‖V − W·H‖ against the original
// input v (dense or sparse).
func (f *Fit) Distance(v matrix.Matrix) (float64, error) {
	p, err := f.Reconstruction()
	if err != nil {
		return 0, err
	}
	diff, err := matrix.Sub(v, p)
	if err != nil {
		return 0, err
	}

	return matrix.Norm(diff)
}
