package lsnmf_test

import (
	"fmt"

	"github.com/YW81/nimfa/lsnmf"
	"github.com/YW81/nimfa/matrix"
	"github.com/YW81/nimfa/seed"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFactorize
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Factor a small 3×2 matrix at rank 1 from a deterministic fixed seed.
//	  V = [[1,2],[3,4],[5,6]]
//
// Options:
//   - MaxIter = 50         (hard cap on outer iterations)
//   - MinResiduals = 1e-4  (relative projected-gradient threshold)
//
// Use case:
//
//	Dimensionality reduction into additive, interpretable parts.
func ExampleFactorize() {
	v, _ := matrix.NewDenseFromData(3, 2, []float64{1, 2, 3, 4, 5, 6})

	w0, _ := matrix.NewDenseFromData(3, 1, []float64{1, 1, 1})
	h0, _ := matrix.NewDenseFromData(1, 2, []float64{3.5, 3.5})

	opts := lsnmf.DefaultOptions(1)
	opts.MaxIter = 50
	opts.MinResiduals = 1e-4

	fit, err := lsnmf.Factorize(v, seed.NewFixed(w0, h0), opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	nonneg := true
	for _, f := range []*matrix.Dense{fit.W, fit.H} {
		f.NonZero(func(_, _ int, val float64) {
			if val < 0 {
				nonneg = false
			}
		})
	}

	dist, _ := fit.Distance(v)
	normV, _ := matrix.Norm(v)

	fmt.Printf("factors nonnegative: %t\n", nonneg)
	fmt.Printf("capped: %t\n", fit.Iter > 50)
	fmt.Printf("improved on zero model: %t\n", dist < normV)
	// Output:
	// factors nonnegative: true
	// capped: false
	// improved on zero model: true
}
