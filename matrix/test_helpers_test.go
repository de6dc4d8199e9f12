package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YW81/nimfa/matrix"
)

// mustDense builds a Dense from row-major data, failing the test on error.
func mustDense(t *testing.T, r, c int, data ...float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromData(r, c, data)
	require.NoError(t, err, "NewDenseFromData(%d,%d) must succeed", r, c)

	return d
}

// mustCSR compresses a Dense built from row-major data, failing on error.
func mustCSR(t *testing.T, r, c int, data ...float64) *matrix.CSR {
	t.Helper()
	s, err := matrix.NewCSRFromDense(mustDense(t, r, c, data...))
	require.NoError(t, err, "NewCSRFromDense(%d,%d) must succeed", r, c)

	return s
}

// entries reads a full matrix through At for order-independent comparison.
func entries(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err, "At(%d,%d) must succeed", i, j)
			out = append(out, v)
		}
	}

	return out
}
