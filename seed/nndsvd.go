// Package seed: NNDSVD (Boutsidis, C., Gallopoulos, E. (2008) "SVD based
// initialization: A head start for nonnegative matrix factorization",
// Pattern Recognition 41:1350). The leading singular triplet of V is
// nonnegative by Perron–Frobenius and seeds the first column/row directly;
// each further triplet is split into its positive and negative parts and the
// dominant part (by norm product) is kept, rescaled to preserve the
// triplet's energy.

package seed

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YW81/nimfa/matrix"
)

// NNDSVD is the SVD-based deterministic seeder. The zero value is ready to
// use; sparse V is materialized densely for the decomposition.
type NNDSVD struct{}

// Initialize builds W (m×rank) and H (rank×n) from the leading rank singular
// triplets of v.
//
// Errors: ErrNilMatrix, ErrBadRank, ErrRankTooLarge (rank > min(m, n)),
// ErrSVDFailed. Complexity: dominated by the thin SVD, O(m·n·min(m, n)).
func (NNDSVD) Initialize(v matrix.Matrix, rank int) (*matrix.Dense, *matrix.Dense, error) {
	if v == nil {
		return nil, nil, ErrNilMatrix
	}
	if rank < 1 {
		return nil, nil, ErrBadRank
	}
	m, n := v.Rows(), v.Cols()
	if rank > m || rank > n {
		return nil, nil, ErrRankTooLarge
	}

	var svd mat.SVD
	if ok := svd.Factorize(denseOf(v), mat.SVDThin); !ok {
		return nil, nil, ErrSVDFailed
	}
	var u, rv mat.Dense
	svd.UTo(&u)
	svd.VTo(&rv)
	sigma := svd.Values(nil)

	w, err := matrix.NewDense(m, rank)
	if err != nil {
		return nil, nil, err
	}
	h, err := matrix.NewDense(rank, n)
	if err != nil {
		return nil, nil, err
	}

	// Leading triplet: |u₀|, |v₀| scaled by sqrt(σ₀).
	s0 := math.Sqrt(sigma[0])
	for i := 0; i < m; i++ {
		_ = w.Set(i, 0, s0*math.Abs(u.At(i, 0)))
	}
	for j := 0; j < n; j++ {
		_ = h.Set(0, j, s0*math.Abs(rv.At(j, 0)))
	}

	x := make([]float64, m)
	y := make([]float64, n)
	for k := 1; k < rank; k++ {
		mat.Col(x, k, &u)
		mat.Col(y, k, &rv)

		xp, xn := split(x)
		yp, yn := split(y)
		xpn, xnn := floats.Norm(xp, 2), floats.Norm(xn, 2)
		ypn, ynn := floats.Norm(yp, 2), floats.Norm(yn, 2)

		termP, termN := xpn*ypn, xnn*ynn
		uk, vk, sig := xp, yp, termP
		ukn, vkn := xpn, ypn
		if termN > termP {
			uk, vk, sig = xn, yn, termN
			ukn, vkn = xnn, ynn
		}
		if sig == 0 {
			continue // degenerate triplet: leave the zero column/row
		}

		lbd := math.Sqrt(sigma[k] * sig)
		for i := 0; i < m; i++ {
			_ = w.Set(i, k, lbd*uk[i]/ukn)
		}
		for j := 0; j < n; j++ {
			_ = h.Set(k, j, lbd*vk[j]/vkn)
		}
	}

	return w, h, nil
}

// split separates s into its positive part and the magnitude of its negative
// part (both nonnegative, same length as s).
func split(s []float64) (pos, neg []float64) {
	pos = make([]float64, len(s))
	neg = make([]float64, len(s))
	for k, v := range s {
		if v > 0 {
			pos[k] = v
		} else {
			neg[k] = -v
		}
	}

	return pos, neg
}

// denseOf adapts v to a gonum matrix for the decomposition.
func denseOf(v matrix.Matrix) mat.Matrix {
	if d, ok := v.(*matrix.Dense); ok {
		return mat.NewDense(d.Rows(), d.Cols(), append([]float64(nil), d.RawData()...))
	}
	out := mat.NewDense(v.Rows(), v.Cols(), nil)
	v.NonZero(func(i, j int, val float64) { out.Set(i, j, val) })

	return out
}
