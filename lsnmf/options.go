// Package lsnmf: run configuration. Defaults live in named constants (single
// source of truth); DefaultOptions returns a ready value and Factorize
// validates at entry — no global state, no hidden defaults inside the loop.

package lsnmf

import "math"

// Defaults and fixed algorithm constants.
const (
	// DefaultMinResiduals is the relative convergence threshold applied when
	// Options.MinResiduals is unset (0).
	DefaultMinResiduals = 0.001

	// DefaultNRun is the number of independent trials when Options.NRun is
	// unset (0).
	DefaultNRun = 1

	// subproblemMaxIter caps the projected-gradient iterations of one
	// subproblem solve inside the alternating driver.
	subproblemMaxIter = 1000

	// lineSearchTrials caps the step-size probes of one line search.
	lineSearchTrials = 20

	// toleranceShrink rescales a subproblem tolerance that proved too loose
	// (the solve converged after a single iteration).
	toleranceShrink = 0.1

	// tolFloor is the lower bound applied to MinResiduals when sizing the
	// initial subproblem tolerances from the initial gradient norm.
	tolFloor = 0.001
)

// Options configures a Factorize call.
//
// Fields:
//   - Rank         — factorization rank k (required, >= 1).
//   - MaxIter      — hard cap on outer iterations; 0 means no cap, so
//     termination rests on MinResiduals alone.
//   - MinResiduals — relative convergence threshold: the run stops once the
//     projected-gradient objective drops below MinResiduals times the
//     initial gradient norm. 0 selects DefaultMinResiduals.
//   - NRun         — number of independent trials; the Fit of the last trial
//     is returned. 0 selects DefaultNRun.
//   - TestConv     — objective re-evaluation stride: 0 re-evaluates every
//     iteration, t > 0 only every t-th iteration (stale value reused
//     in between).
//   - Track        — record a (W, H) snapshot per trial; effective only when
//     NRun > 1 (single runs return their factors directly).
//   - Callback     — optional per-trial hook invoked with that trial's Fit.
//
// Example:
//
//	opts := lsnmf.DefaultOptions(12)
//	opts.MaxIter = 200
//	opts.NRun = 10
//	opts.Track = true
//	fit, err := lsnmf.Factorize(V, seed.NewRandom(7), opts)
type Options struct {
	Rank         int
	MaxIter      int
	MinResiduals float64
	NRun         int
	TestConv     int
	Track        bool
	Callback     func(*Fit)
}

// DefaultOptions returns the canonical configuration for the given rank:
// no iteration cap, DefaultMinResiduals, a single run, objective evaluated
// every iteration, no tracking.
func DefaultOptions(rank int) Options {
	return Options{
		Rank:         rank,
		MinResiduals: DefaultMinResiduals,
		NRun:         DefaultNRun,
	}
}

// normalize fills unset fields from the defaults. Called after validation.
func (o *Options) normalize() {
	if o.MinResiduals == 0 {
		o.MinResiduals = DefaultMinResiduals
	}
	if o.NRun == 0 {
		o.NRun = DefaultNRun
	}
}

// validate rejects nonsensical configurations with ErrBadInput / ErrBadRank.
func (o *Options) validate() error {
	if o.Rank < 1 {
		return ErrBadRank
	}
	if o.MaxIter < 0 || o.NRun < 0 || o.TestConv < 0 {
		return ErrBadInput
	}
	if o.MinResiduals < 0 || math.IsNaN(o.MinResiduals) || math.IsInf(o.MinResiduals, 0) {
		return ErrBadInput
	}

	return nil
}
