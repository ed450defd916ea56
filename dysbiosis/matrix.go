package dysbiosis

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Count matrices are samples in rows and features (taxa) in columns. The
// wrappers below keep the gonum types out of the exported signatures so that
// callers vendoring a different gonum do not hit type mismatches.

// DenseVector wraps *gonum.org/v1/gonum/mat.VecDense type.
type DenseVector struct {
	*mat.VecDense
}

// NewDenseVector creates new DenseVector.
func NewDenseVector(n int, data []float64) *DenseVector {
	return &DenseVector{VecDense: mat.NewVecDense(n, data)}
}

// DenseMatrix wraps *gonum.org/v1/gonum/mat.Dense type.
type DenseMatrix struct {
	*mat.Dense
}

// NewDenseMatrix creates new DenseMatrix.
func NewDenseMatrix(r, c int, data []float64) *DenseMatrix {
	return &DenseMatrix{Dense: mat.NewDense(r, c, data)}
}

// NewCountMatrix builds a DenseMatrix from per-sample rows. All rows must have
// the same, non-zero, length.
func NewCountMatrix(rows [][]float64) (*DenseMatrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrDimensionMismatch, "row %d has %d columns, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return NewDenseMatrix(len(rows), cols, data), nil
}

// row returns a vector view of the i-th row of X.
func (X *DenseMatrix) row(i int) *DenseVector {
	return &DenseVector{X.RowView(i).(*mat.VecDense)}
}

// RowSums returns the total count of every sample.
func RowSums(X *DenseMatrix) []float64 {
	xRows, _ := X.Dims()
	sums := make([]float64, xRows)
	for i := 0; i < xRows; i++ {
		sums[i] = floats.Sum(X.RawRowView(i))
	}
	return sums
}

// validateCounts checks that X is a usable count matrix: non-empty, finite,
// non-negative, and without all-zero rows. It returns the row sums.
func validateCounts(X *DenseMatrix) ([]float64, error) {
	if X == nil || X.Dense == nil || X.IsEmpty() {
		return nil, ErrEmptyMatrix
	}
	xRows, xCols := X.Dims()
	for i := 0; i < xRows; i++ {
		for j := 0; j < xCols; j++ {
			v := X.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, errors.Wrapf(ErrInvalidCount, "sample %d, feature %d: %v", i, j, v)
			}
		}
	}
	sums := RowSums(X)
	for i, s := range sums {
		if s == 0 {
			return nil, errors.Wrapf(ErrDegenerateRow, "sample %d", i)
		}
	}
	return sums, nil
}
