// Package lsnmf computes Nonnegative Matrix Factorizations by alternating
// nonnegative least squares using projected gradients (LSNMF).
//
// 🚀 What is LSNMF?
//
//	Given a nonnegative matrix V (m×n) and a rank k, LSNMF finds nonnegative
//	factors W (m×k) and H (k×n) with V ≈ W·H. Each outer iteration solves two
//	bound-constrained least-squares subproblems — fix W and solve for H, fix
//	H and solve for W — using the projected-gradient method of
//	Lin, C.-J. (2007) "Projected gradient methods for nonnegative matrix
//	factorization", Neural Computation 19(10):2756. It converges faster than
//	the popular multiplicative-update approach. Typical uses:
//	  • Topic modelling & document clustering
//	  • Spectral / image decomposition into additive parts
//	  • Recommender latent factors
//
// ✨ Key features:
//   - dense or sparse (CSR) input V; identical numerics either way
//   - adaptive backtracking line search with a shrink/grow step policy
//   - per-factor subproblem tolerances tightened as the run converges
//   - stopping on the active projected-gradient norm relative to the
//     initial gradient, plus an optional hard iteration cap
//   - multiple independent trials (NRun) with optional run tracking
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/YW81/nimfa/lsnmf"
//	  "github.com/YW81/nimfa/seed"
//	)
//
//	opts := lsnmf.DefaultOptions(4) // rank 4
//	opts.MaxIter = 100              // hard cap on outer iterations
//	opts.MinResiduals = 1e-5        // relative convergence threshold
//
//	fit, err := lsnmf.Factorize(V, seed.NewRandom(1), opts)
//	if err != nil {
//	  // handle ErrBadRank / ErrNegativeInput / ErrShapeMismatch
//	}
//	W, H := fit.W, fit.H
//
// Termination is always a normal, reportable outcome: a run that exhausts
// MaxIter returns its best factors with Fit.FinalObj describing how far from
// stationarity it stopped. With MaxIter == 0 no cap applies and liveness
// rests on MinResiduals — set a cap to guarantee termination.
//
// Performance:
//
//   - Each subproblem iteration costs two k×k-sized products plus one
//     projection over the factor, O(m·n·k) per outer iteration overall.
//   - No goroutines, no global state; each run owns its matrices. The
//     Tracker serializes appends, so trials may be parallelized by callers.
//
// See examples in example_test.go.
package lsnmf
