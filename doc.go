// Package nimfa is an in-memory toolkit for nonnegative matrix factorization
// — from the dense/sparse matrix substrate to seeding strategies and the
// projected-gradient optimization core.
//
// 🚀 What is nimfa?
//
//	A library that decomposes a nonnegative matrix V into nonnegative
//	factors W·H ≈ V, the workhorse of topic modelling, parts-based image
//	analysis and recommender systems:
//		• matrix: Dense (gonum-backed) and CSR representations with one set
//		  of representation-agnostic kernels
//		• lsnmf: alternating nonnegative least squares using projected
//		  gradients (Lin 2007), with adaptive tolerances and line search
//		• seed: Fixed, Random and NNDSVD initialization strategies
//
// ✨ Why choose nimfa?
//
//   - Identical numerics for dense and sparse inputs — pick the storage,
//     keep the results
//   - Deterministic – fixed loop orders, seedable initialization, no
//     global state
//   - Safe by construction – validation before optimization, sentinel
//     errors checked via errors.Is, no panics on user input
//   - Always terminates with a reportable outcome – a capped run returns
//     its best factors and how far from stationarity it stopped
//
// Everything is organized under three subpackages:
//
//	matrix/ — Matrix interface, Dense & CSR storage, linear-algebra kernels
//	lsnmf/  — subproblem solver, projected-gradient metric, alternating driver
//	seed/   — initialization strategies producing the starting (W, H)
package nimfa
