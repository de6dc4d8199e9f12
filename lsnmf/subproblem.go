// Package lsnmf: the bound-constrained nonnegative least-squares subproblem.
// One alternating step fixes a basis matrix B and improves a factor H toward
// argmin_{H>=0} ‖C − B·H‖_F via projected gradient descent with an adaptive
// backtracking line search (Lin 2007, Algorithm 4).

package lsnmf

import (
	"github.com/YW81/nimfa/matrix"
)

// searchMode is the direction of the line-search step-size adaptation,
// fixed once per line search by the first probe.
type searchMode int

const (
	// modeShrinking: the unit-ish step overshot; multiply alpha by beta until
	// sufficient decrease holds, then accept.
	modeShrinking searchMode = iota

	// modeGrowing: the first probe already decreased; divide alpha by beta
	// while decrease keeps holding, reverting to the last accepted proposal
	// when it fails or the proposal stops changing (plateau guard).
	modeGrowing
)

// Line-search constants (Lin 2007): initial step and shrink/grow factor.
// Smaller beta adapts alpha more aggressively per probe.
const (
	initialAlpha = 1.0
	stepBeta     = 0.1
	// armijoSigma weights the linear decrease term in the sufficient-decrease
	// test; the quadratic term carries its exact 1/2 factor.
	armijoSigma = 0.99
)

// Subproblem solves one nonnegative least-squares subproblem: given the
// constant matrix cnst (the data), the fixed basis, and an initial factor
// hInit, it returns an improved nonnegative factor h, the objective gradient
// at h, and the number of projected-gradient iterations consumed.
//
// The solve stops early once the active projected-gradient norm drops below
// eps; exhausting maxIter is a soft stop (the caller reads the count to adapt
// its tolerance), never an error. hInit is cloned, not mutated.
//
// Errors: ErrNilMatrix, ErrBadInput (maxIter < 1), matrix dimension errors
// when cnst/basis/hInit shapes are inconsistent.
func Subproblem(cnst, basis matrix.Matrix, hInit *matrix.Dense, eps float64, maxIter int) (h, grad *matrix.Dense, iters int, err error) {
	if cnst == nil || basis == nil || hInit == nil {
		return nil, nil, 0, ErrNilMatrix
	}
	if maxIter < 1 {
		return nil, nil, 0, ErrBadInput
	}

	h = hInit.Clone().(*matrix.Dense)

	// Constant across iterations: BtC = Bᵗ·C and BtB = Bᵗ·B.
	bT, err := matrix.Transpose(basis)
	if err != nil {
		return nil, nil, 0, err
	}
	btc, err := matrix.Mul(bT, cnst)
	if err != nil {
		return nil, nil, 0, err
	}
	btb, err := matrix.Mul(bT, basis)
	if err != nil {
		return nil, nil, 0, err
	}
	if btc.Rows() != h.Rows() || btc.Cols() != h.Cols() {
		return nil, nil, 0, matrix.ErrDimensionMismatch
	}

	alpha := initialAlpha

	for iters = 0; iters < maxIter; iters++ {
		gh, mulErr := matrix.Mul(btb, h)
		if mulErr != nil {
			return nil, nil, iters, mulErr
		}
		grad, err = matrix.Sub(gh, btc)
		if err != nil {
			return nil, nil, iters, err
		}

		pg, pgErr := ProjGradNorm(grad, h)
		if pgErr != nil {
			return nil, nil, iters, pgErr
		}
		if pg < eps {
			break
		}

		var (
			mode  searchMode
			hPrev *matrix.Dense
		)
	search:
		for trial := 0; trial < lineSearchTrials; trial++ {
			hn, suff, lsErr := probeStep(h, grad, btb, alpha)
			if lsErr != nil {
				return nil, nil, iters, lsErr
			}

			if trial == 0 {
				// The first probe fixes the adaptation direction.
				if suff {
					mode = modeGrowing
				} else {
					mode = modeShrinking
				}
				hPrev = h
			}

			switch mode {
			case modeShrinking:
				if suff {
					h = hn
					break search
				}
				alpha *= stepBeta
			case modeGrowing:
				same, eqErr := matrix.Equal(hPrev, hn)
				if eqErr != nil {
					return nil, nil, iters, eqErr
				}
				if !suff || same {
					h = hPrev
					break search
				}
				alpha /= stepBeta
				hPrev = hn
			}
		}
	}

	return h, grad, iters, nil
}

// probeStep proposes Hn = max(H − alpha·grad, 0), forms the direction
// d = Hn − H and evaluates the sufficient-decrease test
//
//	0.99·Σ(grad∘d) + 0.5·Σ((BtB·d)∘d) < 0
//
// Strict inequality: an exactly vanishing value means the step moved nothing
// and is treated as insufficient.
func probeStep(h, grad, btb *matrix.Dense, alpha float64) (hn *matrix.Dense, sufficient bool, err error) {
	step, err := matrix.Scale(alpha, grad)
	if err != nil {
		return nil, false, err
	}
	moved, err := matrix.Sub(h, step)
	if err != nil {
		return nil, false, err
	}
	hn, err = matrix.MaxScalar(moved, 0)
	if err != nil {
		return nil, false, err
	}
	d, err := matrix.Sub(hn, h)
	if err != nil {
		return nil, false, err
	}

	gradD, err := matrix.MulElemSum(grad, d)
	if err != nil {
		return nil, false, err
	}
	qd, err := matrix.Mul(btb, d)
	if err != nil {
		return nil, false, err
	}
	dQd, err := matrix.MulElemSum(qd, d)
	if err != nil {
		return nil, false, err
	}

	return hn, armijoSigma*gradD+0.5*dQd < 0, nil
}
