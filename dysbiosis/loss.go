package dysbiosis

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LossFunction compares a sample with its reconstruction.
type LossFunction func(a, b *DenseVector) (float64, error)

// MeanSquaredError is the mean of squared differences between two vectors. It
// is the per-sample dysbiosis score of an autoencoder reconstruction.
func MeanSquaredError(a, b *DenseVector) (float64, error) {
	if a.Len() != b.Len() {
		return -1, errors.Wrapf(ErrDimensionMismatch, "mean squared error: lengths %d and %d", a.Len(), b.Len())
	}
	var sum float64
	for i := 0; i < a.Len(); i++ {
		diff := a.AtVec(i) - b.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(a.Len()), nil
}

// EuclideanDistance computes euclidean distance between two vectors.
func EuclideanDistance(a, b *DenseVector) (float64, error) {
	if a.Len() != b.Len() {
		return -1, errors.Wrapf(ErrDimensionMismatch, "euclidean distance: lengths %d and %d", a.Len(), b.Len())
	}
	return floats.Distance(mat.Col(nil, 0, a), mat.Col(nil, 0, b), 2), nil
}

// ReconstructionLoss scores every row of X against the same row of
// reconstructed, which is normally the output of a model fed with X.
func ReconstructionLoss(X, reconstructed *DenseMatrix, lossFn LossFunction) ([]float64, error) {
	if lossFn == nil {
		lossFn = MeanSquaredError
	}
	if X == nil || X.Dense == nil || reconstructed == nil || reconstructed.Dense == nil {
		return nil, errors.Wrap(ErrEmptyMatrix, "reconstruction loss")
	}
	xRows, xCols := X.Dims()
	rRows, rCols := reconstructed.Dims()
	if xRows != rRows || xCols != rCols {
		return nil, errors.Wrapf(ErrDimensionMismatch, "reconstruction loss: %dx%d vs %dx%d", xRows, xCols, rRows, rCols)
	}
	losses := make([]float64, xRows)
	for i := 0; i < xRows; i++ {
		loss, err := lossFn(X.row(i), reconstructed.row(i))
		if err != nil {
			return nil, errors.Wrapf(err, "reconstruction loss: sample %d", i)
		}
		if math.IsNaN(loss) {
			return nil, errors.Errorf("reconstruction loss: sample %d: loss is NaN", i)
		}
		losses[i] = loss
	}
	return losses, nil
}
