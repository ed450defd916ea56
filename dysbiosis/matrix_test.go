package dysbiosis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCountMatrix(t *testing.T) {
	X, err := NewCountMatrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	r, c := X.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, []float64{6, 15}, RowSums(X))

	_, err = NewCountMatrix(nil)
	require.ErrorIs(t, err, ErrEmptyMatrix)
	_, err = NewCountMatrix([][]float64{{}})
	require.ErrorIs(t, err, ErrEmptyMatrix)
	_, err = NewCountMatrix([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
