// Package lsnmf: the alternating-update driver.
//
// Each trial seeds (W, H), sizes the per-factor subproblem tolerances from
// the initial projected-gradient norm, then alternates: solve the
// W-subproblem with roles transposed, solve the H-subproblem directly, and
// tighten a tolerance whenever its subproblem converged after a single
// iteration (it was too loose to make the solver work). The loop stops when
// the objective — the active projected-gradient norm of both factors — falls
// below MinResiduals times the initial gradient norm, or when MaxIter is
// exceeded.

package lsnmf

import (
	"math"

	"github.com/YW81/nimfa/matrix"
)

// Seeder produces an initial nonnegative factor pair for V and rank.
// Implementations live in the seed package (Fixed, Random, NNDSVD); any
// strategy returning m×rank and rank×n dense factors may be supplied.
type Seeder interface {
	Initialize(v matrix.Matrix, rank int) (w, h *matrix.Dense, err error)
}

// Factorize computes V ≈ W·H with W, H >= 0 by alternating nonnegative least
// squares using projected gradients. It runs Options.NRun independent trials
// and returns the Fit of the last one; when Options.Track is set and NRun > 1
// the returned Fit carries a Tracker with every trial's final factors.
//
// Validation happens before any optimization: V must be non-nil with no
// negative entries, the rank positive, the seeder non-nil, and every seeded
// pair must have the m×rank / rank×n shapes. The loop itself cannot fail.
func Factorize(v matrix.Matrix, seeder Seeder, opts Options) (*Fit, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNilMatrix
	}
	if seeder == nil {
		return nil, ErrNilSeeder
	}
	if err := matrix.ValidateNonNegative(v); err != nil {
		return nil, ErrNegativeInput
	}
	opts.normalize()

	var tracker *Tracker
	if opts.Track && opts.NRun > 1 {
		tracker = NewTracker()
	}

	var fit *Fit
	for run := 0; run < opts.NRun; run++ {
		f, err := factorizeOnce(v, seeder, &opts)
		if err != nil {
			return nil, err
		}
		if opts.Callback != nil {
			opts.Callback(f)
		}
		if tracker != nil {
			tracker.Add(f.W, f.H)
		}
		fit = f
	}
	fit.Tracker = tracker

	return fit, nil
}

// FactorizeTracked runs Factorize with tracking forced on and hands the run
// history back alongside the last Fit. The history is non-nil only for
// NRun > 1; a single run's factors already live on the Fit itself.
func FactorizeTracked(v matrix.Matrix, seeder Seeder, opts Options) (*Fit, *Tracker, error) {
	opts.Track = true
	fit, err := Factorize(v, seeder, opts)
	if err != nil {
		return nil, nil, err
	}

	return fit, fit.Tracker, nil
}

// factorizeOnce runs a single trial to a terminal state.
func factorizeOnce(v matrix.Matrix, seeder Seeder, opts *Options) (*Fit, error) {
	w, h, err := seeder.Initialize(v, opts.Rank)
	if err != nil {
		return nil, err
	}
	if err = checkSeededShapes(v, w, h, opts.Rank); err != nil {
		return nil, err
	}

	gW, gH, err := initialGradients(v, w, h)
	if err != nil {
		return nil, err
	}

	// initGrad = ‖stack(gW, gHᵗ)‖, fixed for the whole trial.
	ghT, err := matrix.Transpose(gH)
	if err != nil {
		return nil, err
	}
	stacked, err := matrix.Stack(gW, ghT)
	if err != nil {
		return nil, err
	}
	initGrad, err := matrix.Norm(stacked)
	if err != nil {
		return nil, err
	}

	epsW := math.Max(tolFloor, opts.MinResiduals) * initGrad
	epsH := epsW

	cobj, err := objective(gW, w, gH, h)
	if err != nil {
		return nil, err
	}

	iter := 0
	for satisfied(opts, cobj, iter, initGrad) {
		// W-subproblem with roles transposed: Const = Vᵗ, Basis = Hᵗ.
		vT, tErr := matrix.Transpose(v)
		if tErr != nil {
			return nil, tErr
		}
		hT, tErr := transposeDense(h)
		if tErr != nil {
			return nil, tErr
		}
		wT, tErr := transposeDense(w)
		if tErr != nil {
			return nil, tErr
		}
		wTn, gWt, inner, subErr := Subproblem(vT, hT, wT, epsW, subproblemMaxIter)
		if subErr != nil {
			return nil, subErr
		}
		if w, err = transposeDense(wTn); err != nil {
			return nil, err
		}
		if gW, err = transposeDense(gWt); err != nil {
			return nil, err
		}
		if inner == 1 {
			epsW *= toleranceShrink
		}

		// H-subproblem directly: Const = V, Basis = W.
		if h, gH, inner, err = Subproblem(v, w, h, epsH, subproblemMaxIter); err != nil {
			return nil, err
		}
		if inner == 1 {
			epsH *= toleranceShrink
		}

		// Objective refresh honors the TestConv stride; a stale value is
		// reused between strides.
		if opts.TestConv == 0 || iter%opts.TestConv == 0 {
			if cobj, err = objective(gW, w, gH, h); err != nil {
				return nil, err
			}
		}
		iter++
	}

	return &Fit{W: w, H: h, Iter: iter - 1, FinalObj: cobj, InitGrad: initGrad}, nil
}

// satisfied is the stopping predicate: keep iterating unless the hard cap is
// exceeded (MaxIter > 0 and MaxIter < iter) or, past the first iteration, the
// objective dropped below MinResiduals·initGrad.
func satisfied(opts *Options, cobj float64, iter int, initGrad float64) bool {
	if opts.MaxIter > 0 && opts.MaxIter < iter {
		return false
	}
	if iter > 0 && cobj < opts.MinResiduals*initGrad {
		return false
	}

	return true
}

// objective is the Frobenius norm of the stacked active projected-gradient
// extractions of both factors; the extractions have incompatible shapes, so
// the stack collapses in norm space to Hypot of the two extraction norms.
func objective(gW, w, gH, h *matrix.Dense) (float64, error) {
	nw, err := ProjGradNorm(gW, w)
	if err != nil {
		return 0, err
	}
	nh, err := ProjGradNorm(gH, h)
	if err != nil {
		return 0, err
	}

	return math.Hypot(nw, nh), nil
}

// initialGradients computes gW = W·(H·Hᵗ) − V·Hᵗ and gH = (Wᵗ·W)·H − Wᵗ·V.
func initialGradients(v matrix.Matrix, w, h *matrix.Dense) (gW, gH *matrix.Dense, err error) {
	hT, err := transposeDense(h)
	if err != nil {
		return nil, nil, err
	}
	hhT, err := matrix.Mul(h, hT)
	if err != nil {
		return nil, nil, err
	}
	whhT, err := matrix.Mul(w, hhT)
	if err != nil {
		return nil, nil, err
	}
	vhT, err := matrix.Mul(v, hT)
	if err != nil {
		return nil, nil, err
	}
	if gW, err = matrix.Sub(whhT, vhT); err != nil {
		return nil, nil, err
	}

	wT, err := transposeDense(w)
	if err != nil {
		return nil, nil, err
	}
	wTw, err := matrix.Mul(wT, w)
	if err != nil {
		return nil, nil, err
	}
	wTwh, err := matrix.Mul(wTw, h)
	if err != nil {
		return nil, nil, err
	}
	wTv, err := matrix.Mul(wT, v)
	if err != nil {
		return nil, nil, err
	}
	if gH, err = matrix.Sub(wTwh, wTv); err != nil {
		return nil, nil, err
	}

	return gW, gH, nil
}

// checkSeededShapes enforces the m×rank / rank×n contract on seeded factors.
func checkSeededShapes(v matrix.Matrix, w, h *matrix.Dense, rank int) error {
	if w == nil || h == nil {
		return ErrShapeMismatch
	}
	if w.Rows() != v.Rows() || w.Cols() != rank {
		return ErrShapeMismatch
	}
	if h.Rows() != rank || h.Cols() != v.Cols() {
		return ErrShapeMismatch
	}

	return nil
}

// transposeDense transposes a dense matrix, keeping the concrete type.
func transposeDense(d *matrix.Dense) (*matrix.Dense, error) {
	t, err := matrix.Transpose(d)
	if err != nil {
		return nil, err
	}

	return t.(*matrix.Dense), nil
}
