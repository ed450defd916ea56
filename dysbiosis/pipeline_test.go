package dysbiosis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPipeline_Prepare(t *testing.T) {
	initCounts()
	p := NewPipeline(2, DefaultIterations, 0)
	p.Reporter = nil
	require.NoError(t, p.Prepare(counts3x3))
	require.True(t, p.IsPrepared)

	evalRows, evalCols := p.Eval.Dims()
	require.Equal(t, 3, evalRows)
	require.Equal(t, 3, evalCols)
	for i, s := range RowSums(p.Eval) {
		require.Equalf(t, 1.0, s, "eval row %d", i)
	}

	rarefied, err := Rarefy(counts3x3, 2, 0)
	require.NoError(t, err)
	want, err := Scale(rarefied, 2)
	require.NoError(t, err)
	require.Equal(t, want.RawMatrix().Data, p.Eval.RawMatrix().Data)

	trainRows, _ := p.Train.Dims()
	testRows, _ := p.Test.Dims()
	require.Equal(t, 25, trainRows)
	require.Equal(t, 5, testRows)
	for _, part := range []*DenseMatrix{p.Train, p.Test} {
		for i, s := range RowSums(part) {
			require.Equalf(t, 1.0, s, "row %d", i)
		}
	}
}

func TestPipeline_Scores(t *testing.T) {
	initCounts()
	p := NewPipeline(4, 2, 5)

	_, err := p.Scores(counts3x3, nil)
	require.ErrorIs(t, err, ErrNotPrepared)

	require.NoError(t, p.Prepare(counts3x3))
	scores, err := p.Scores(p.Eval, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, scores)

	_, err = p.Scores(NewDenseMatrix(1, 3, nil), nil)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestPipeline_Prepare_Errors(t *testing.T) {
	initCounts()
	tests := []struct {
		p       *Pipeline
		X       *DenseMatrix
		wantErr error
	}{
		{p: NewPipeline(0, 10, 0), X: counts3x3, wantErr: ErrInvalidDepth},
		{p: NewPipeline(2, 0, 0), X: counts3x3, wantErr: ErrInvalidIterations},
		{p: &Pipeline{Depth: 2, Iterations: 1, TestFraction: 1.5}, X: counts3x3, wantErr: ErrInvalidFraction},
		{p: NewPipeline(2, 1, 0), X: NewDenseMatrix(2, 2, []float64{1, 1, 0, 0}), wantErr: ErrDegenerateRow},
	}
	for i, tt := range tests {
		err := tt.p.Prepare(tt.X)
		require.ErrorIsf(t, err, tt.wantErr, "case %d", i)
		require.False(t, tt.p.IsPrepared)
	}
}
