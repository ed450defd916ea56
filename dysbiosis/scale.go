package dysbiosis

import (
	"math"

	"github.com/pkg/errors"
)

// Scale divides every entry of X by depth, turning rarefied counts into
// relative abundances. The same depth is used for all rows.
func Scale(X *DenseMatrix, depth float64) (*DenseMatrix, error) {
	if X == nil || X.Dense == nil || X.IsEmpty() {
		return nil, errors.Wrap(ErrEmptyMatrix, "scale")
	}
	if depth == 0 || math.IsNaN(depth) || math.IsInf(depth, 0) {
		return nil, errors.Wrapf(ErrInvalidDepth, "scale: depth %v", depth)
	}
	xRows, xCols := X.Dims()
	scaled := NewDenseMatrix(xRows, xCols, nil)
	scaled.Apply(func(_, _ int, v float64) float64 { return v / depth }, X)
	return scaled, nil
}
