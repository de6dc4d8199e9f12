// Package seed: the Fixed and Random strategies.

package seed

import (
	"math/rand"

	"github.com/YW81/nimfa/lsnmf"
	"github.com/YW81/nimfa/matrix"
)

// Seeder is the contract consumed by the optimizers in this module.
type Seeder = lsnmf.Seeder

// Compile-time assertions for interface conformance.
var (
	_ Seeder = (*Fixed)(nil)
	_ Seeder = (*Random)(nil)
	_ Seeder = NNDSVD{}
)

// Fixed seeds the optimizer with caller-supplied factors. Initialize hands
// out clones, so repeated runs from the same Fixed value are independent.
type Fixed struct {
	W *matrix.Dense
	H *matrix.Dense
}

// NewFixed wraps the given factors as a seeder.
func NewFixed(w, h *matrix.Dense) *Fixed {
	return &Fixed{W: w, H: h}
}

// Initialize returns clones of the stored factors after checking the
// m×rank / rank×n contract against v and rank.
func (f *Fixed) Initialize(v matrix.Matrix, rank int) (*matrix.Dense, *matrix.Dense, error) {
	if v == nil || f.W == nil || f.H == nil {
		return nil, nil, ErrNilMatrix
	}
	if rank < 1 {
		return nil, nil, ErrBadRank
	}
	if f.W.Rows() != v.Rows() || f.W.Cols() != rank ||
		f.H.Rows() != rank || f.H.Cols() != v.Cols() {
		return nil, nil, ErrShapeMismatch
	}

	return f.W.Clone().(*matrix.Dense), f.H.Clone().(*matrix.Dense), nil
}

// Random seeds with uniform entries in [0, max(V)), the customary scaling
// that puts the initial reconstruction on V's magnitude. A given Seed value
// yields the same factors on every Initialize call of the same run ordinal,
// so multi-run experiments are reproducible.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random seeder deterministic under the given seed.
func NewRandom(seedVal int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seedVal))}
}

// Initialize draws W (m×rank) and H (rank×n) entrywise from [0, max(V)).
// A zero matrix V yields zero factors (max is zero); the optimizer treats
// that as an immediate stationary point.
func (r *Random) Initialize(v matrix.Matrix, rank int) (*matrix.Dense, *matrix.Dense, error) {
	if v == nil {
		return nil, nil, ErrNilMatrix
	}
	if rank < 1 {
		return nil, nil, ErrBadRank
	}

	// max over stored entries; absent sparse entries are zero.
	var vmax float64
	v.NonZero(func(_, _ int, val float64) {
		if val > vmax {
			vmax = val
		}
	})

	w, err := matrix.NewDense(v.Rows(), rank)
	if err != nil {
		return nil, nil, err
	}
	h, err := matrix.NewDense(rank, v.Cols())
	if err != nil {
		return nil, nil, err
	}
	fill(w.RawData(), r.rng, vmax)
	fill(h.RawData(), r.rng, vmax)

	return w, h, nil
}

// fill writes uniform draws scaled to [0, scale) into buf.
func fill(buf []float64, rng *rand.Rand, scale float64) {
	for k := range buf {
		buf[k] = rng.Float64() * scale
	}
}
