package lsnmf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YW81/nimfa/lsnmf"
	"github.com/YW81/nimfa/matrix"
	"github.com/YW81/nimfa/seed"
)

// scenarioV is the 3×2 reference input used across driver tests.
func scenarioV(t *testing.T) *matrix.Dense {
	t.Helper()

	return mustDense(t, 3, 2,
		1, 2,
		3, 4,
		5, 6)
}

// scenarioSeeder seeds rank 1 with all-ones W and a flat H scaled to V's
// magnitude, making every driver run deterministic.
func scenarioSeeder(t *testing.T) *seed.Fixed {
	t.Helper()
	w := mustDense(t, 3, 1, 1, 1, 1)
	h := mustDense(t, 1, 2, 3.5, 3.5)

	return seed.NewFixed(w, h)
}

// TestFactorize_Validation covers every fail-fast path before the loop.
func TestFactorize_Validation(t *testing.T) {
	v := scenarioV(t)
	sd := scenarioSeeder(t)

	_, err := lsnmf.Factorize(nil, sd, lsnmf.DefaultOptions(1))
	assert.ErrorIs(t, err, lsnmf.ErrNilMatrix, "nil V must be rejected")

	_, err = lsnmf.Factorize(v, nil, lsnmf.DefaultOptions(1))
	assert.ErrorIs(t, err, lsnmf.ErrNilSeeder, "nil seeder must be rejected")

	_, err = lsnmf.Factorize(v, sd, lsnmf.DefaultOptions(0))
	assert.ErrorIs(t, err, lsnmf.ErrBadRank, "rank 0 must be rejected")

	neg := mustDense(t, 2, 2, 1, -2, 3, 4)
	_, err = lsnmf.Factorize(neg, sd, lsnmf.DefaultOptions(1))
	assert.ErrorIs(t, err, lsnmf.ErrNegativeInput, "negative V must be rejected")

	bad := lsnmf.DefaultOptions(1)
	bad.NRun = -1
	_, err = lsnmf.Factorize(v, sd, bad)
	assert.ErrorIs(t, err, lsnmf.ErrBadInput, "negative NRun must be rejected")

	// Seeder producing wrong shapes (rank 2 requested, rank 1 factors).
	opts := lsnmf.DefaultOptions(2)
	opts.MaxIter = 5
	_, err = lsnmf.Factorize(v, seed.NewFixed(mustDense(t, 3, 1, 1, 1, 1), mustDense(t, 1, 2, 1, 1)), opts)
	assert.ErrorIs(t, err, lsnmf.ErrShapeMismatch, "mis-shaped seed must be rejected")
}

// TestFactorize_Scenario is the reference run: V 3×2, rank 1, fixed seed,
// MaxIter 50, MinResiduals 1e-4 — factors stay nonnegative, the
// reconstruction improves on the trivial zero model, and the cap holds.
func TestFactorize_Scenario(t *testing.T) {
	v := scenarioV(t)
	opts := lsnmf.DefaultOptions(1)
	opts.MaxIter = 50
	opts.MinResiduals = 1e-4

	fit, err := lsnmf.Factorize(v, scenarioSeeder(t), opts)
	require.NoError(t, err, "Factorize must succeed")

	assert.True(t, allNonNegative(fit.W), "W must be nonnegative")
	assert.True(t, allNonNegative(fit.H), "H must be nonnegative")
	assert.LessOrEqual(t, fit.Iter, 50, "hard cap must hold")

	dist, err := fit.Distance(v)
	require.NoError(t, err, "Distance must succeed")
	normV, err := matrix.Norm(v)
	require.NoError(t, err, "Norm must succeed")
	assert.Less(t, dist, normV, "reconstruction must beat the zero model")
}

// TestFactorize_IterationCap: the reported iteration count never exceeds
// MaxIter even when the tolerance is unreachable.
func TestFactorize_IterationCap(t *testing.T) {
	opts := lsnmf.DefaultOptions(1)
	opts.MaxIter = 3
	opts.MinResiduals = 1e-15 // effectively unreachable

	fit, err := lsnmf.Factorize(scenarioV(t), scenarioSeeder(t), opts)
	require.NoError(t, err, "a capped run is a reportable outcome, not an error")
	assert.LessOrEqual(t, fit.Iter, 3, "reported iterations must respect the cap")
	assert.GreaterOrEqual(t, fit.FinalObj, 0.0, "a capped run reports how far from stationarity it stopped")
}

// TestFactorize_NoCapBoundary: MaxIter == 0 disables the cap entirely — the
// loop still runs (at least one update happens) and terminates on the
// residual criterion alone.
func TestFactorize_NoCapBoundary(t *testing.T) {
	opts := lsnmf.DefaultOptions(1)
	opts.MaxIter = 0
	opts.MinResiduals = 0.5 // loose threshold: convergence is quick

	sd := scenarioSeeder(t)
	fit, err := lsnmf.Factorize(scenarioV(t), sd, opts)
	require.NoError(t, err, "uncapped run must terminate on the residual criterion")

	assert.Less(t, fit.FinalObj, 0.5*fit.InitGrad, "residual criterion must be met")

	// The factors moved: at least one update step executed.
	same, err := matrix.Equal(fit.W, sd.W)
	require.NoError(t, err, "Equal must succeed")
	assert.False(t, same, "with no cap the loop body must still execute")
}

// TestFactorize_Convergence: on a synthetic V = W*·H* with exact nonnegative
// factors, a loose-enough threshold converges well before the cap.
func TestFactorize_Convergence(t *testing.T) {
	wStar := mustDense(t, 4, 2,
		1, 0,
		0, 2,
		2, 1,
		1, 1)
	hStar := mustDense(t, 2, 3,
		1, 2, 0,
		0, 1, 2)
	v, err := matrix.Mul(wStar, hStar)
	require.NoError(t, err, "synthetic V must build")

	opts := lsnmf.DefaultOptions(2)
	opts.MaxIter = 200
	opts.MinResiduals = 1e-3

	fit, err := lsnmf.Factorize(v, seed.NewFixed(
		mustDense(t, 4, 2, 1, 1, 1, 1, 1, 1, 1, 1),
		mustDense(t, 2, 3, 1, 1, 1, 1, 1, 1),
	), opts)
	require.NoError(t, err, "Factorize must succeed")

	assert.Less(t, fit.Iter, 200, "convergence must beat the cap")
	assert.Less(t, fit.FinalObj, opts.MinResiduals*fit.InitGrad, "stopping criterion must be met")
	assert.True(t, allNonNegative(fit.W), "W must be nonnegative")
	assert.True(t, allNonNegative(fit.H), "H must be nonnegative")
}

// TestFactorize_ObjectiveDecreases: more outer iterations never leave the
// objective worse (within floating noise) — the deterministic fixed-seed
// runs make the two prefixes directly comparable.
func TestFactorize_ObjectiveDecreases(t *testing.T) {
	v := scenarioV(t)

	short := lsnmf.DefaultOptions(1)
	short.MaxIter = 1
	short.MinResiduals = 1e-15
	fitShort, err := lsnmf.Factorize(v, scenarioSeeder(t), short)
	require.NoError(t, err, "short run must succeed")

	long := lsnmf.DefaultOptions(1)
	long.MaxIter = 20
	long.MinResiduals = 1e-15
	fitLong, err := lsnmf.Factorize(v, scenarioSeeder(t), long)
	require.NoError(t, err, "long run must succeed")

	assert.Equal(t, fitShort.InitGrad, fitLong.InitGrad, "same seed, same initial gradient")
	assert.LessOrEqual(t, fitLong.FinalObj, fitShort.FinalObj+1e-9, "objective must not increase with more iterations")
}

// TestFactorize_DenseSparseEquivalence: one capped run over dense V and its
// CSR twin produces entrywise-equal factors.
func TestFactorize_DenseSparseEquivalence(t *testing.T) {
	dense := scenarioV(t)
	sparse, err := matrix.NewCSRFromDense(dense)
	require.NoError(t, err, "compression must succeed")

	opts := lsnmf.DefaultOptions(1)
	opts.MaxIter = 1
	opts.MinResiduals = 1e-15

	fitD, err := lsnmf.Factorize(dense, scenarioSeeder(t), opts)
	require.NoError(t, err, "dense run must succeed")
	fitS, err := lsnmf.Factorize(sparse, scenarioSeeder(t), opts)
	require.NoError(t, err, "sparse run must succeed")

	assert.InDeltaSlice(t, entries(t, fitD.W), entries(t, fitS.W), 1e-8, "W must agree across representations")
	assert.InDeltaSlice(t, entries(t, fitD.H), entries(t, fitS.H), 1e-8, "H must agree across representations")
	assert.Equal(t, fitD.Iter, fitS.Iter, "iteration counts must agree")
}

// TestFactorize_TestConvStride: a stride reuses the stale objective between
// refreshes; the run still terminates and reports a valid fit.
func TestFactorize_TestConvStride(t *testing.T) {
	opts := lsnmf.DefaultOptions(1)
	opts.MaxIter = 10
	opts.MinResiduals = 1e-15
	opts.TestConv = 3

	fit, err := lsnmf.Factorize(scenarioV(t), scenarioSeeder(t), opts)
	require.NoError(t, err, "strided run must succeed")
	assert.LessOrEqual(t, fit.Iter, 10, "cap must hold under striding")
	assert.Positive(t, fit.FinalObj, "objective must be reported")
}

// TestFactorize_MultiRunTracking: NRun trials with Track record one snapshot
// per trial; a single run never allocates a tracker.
func TestFactorize_MultiRunTracking(t *testing.T) {
	v := scenarioV(t)

	opts := lsnmf.DefaultOptions(1)
	opts.MaxIter = 5
	opts.NRun = 3
	opts.Track = true

	var calls int
	opts.Callback = func(f *lsnmf.Fit) {
		calls++
		assert.NotNil(t, f.W, "callback fit must carry factors")
	}

	fit, err := lsnmf.Factorize(v, seed.NewRandom(1), opts)
	require.NoError(t, err, "multi-run must succeed")
	require.NotNil(t, fit.Tracker, "tracking was requested with NRun > 1")
	assert.Equal(t, 3, fit.Tracker.Len(), "one snapshot per trial")
	assert.Equal(t, 3, calls, "callback once per trial")

	for i, snap := range fit.Tracker.Runs() {
		assert.True(t, allNonNegative(snap.W), "snapshot %d W must be nonnegative", i)
		assert.True(t, allNonNegative(snap.H), "snapshot %d H must be nonnegative", i)
	}

	single := lsnmf.DefaultOptions(1)
	single.MaxIter = 5
	single.Track = true
	fit, err = lsnmf.Factorize(v, scenarioSeeder(t), single)
	require.NoError(t, err, "single run must succeed")
	assert.Nil(t, fit.Tracker, "tracking is only meaningful when NRun > 1")
}

// TestFactorizeTracked: the convenience wrapper forces tracking and returns
// the history alongside the final fit.
func TestFactorizeTracked(t *testing.T) {
	v := scenarioV(t)

	opts := lsnmf.DefaultOptions(1)
	opts.MaxIter = 5
	opts.NRun = 2

	fit, hist, err := lsnmf.FactorizeTracked(v, seed.NewRandom(3), opts)
	require.NoError(t, err, "tracked run must succeed")
	require.NotNil(t, fit, "fit must be returned")
	require.NotNil(t, hist, "history must be returned for NRun > 1")
	assert.Equal(t, 2, hist.Len(), "one snapshot per trial")
	assert.Same(t, fit.Tracker, hist, "fit carries the same history")

	opts.NRun = 1
	_, hist, err = lsnmf.FactorizeTracked(v, scenarioSeeder(t), opts)
	require.NoError(t, err, "single tracked run must succeed")
	assert.Nil(t, hist, "single runs have no separate history")
}
