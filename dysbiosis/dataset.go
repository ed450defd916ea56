package dysbiosis

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultIterations is the number of rarefied copies BuildDataset stacks when
// the caller has no preference.
const DefaultIterations = 10

// BuildDataset expands X into iterations rarefied copies stacked vertically.
// Rows [k*n, (k+1)*n) hold iteration k, which is exactly
// Rarefy(X, depth, seed+k) for the n samples of X in their original order.
//
// depth must be positive and iterations must be positive. The warning for a
// depth above the smallest row sum is reported once per call.
func BuildDataset(X *DenseMatrix, depth, iterations int, seed int64, opts ...Option) (*DenseMatrix, error) {
	o := gatherOptions(opts)
	if depth <= 0 {
		return nil, errors.Wrapf(ErrInvalidDepth, "build dataset: depth %d", depth)
	}
	if iterations <= 0 {
		return nil, errors.Wrapf(ErrInvalidIterations, "build dataset: iterations %d", iterations)
	}
	sums, err := validateCounts(X)
	if err != nil {
		return nil, errors.Wrap(err, "build dataset")
	}
	if depth, err = resolveDepth(depth, sums, o.reporter); err != nil {
		return nil, errors.Wrap(err, "build dataset")
	}

	xRows, xCols := X.Dims()
	output := NewDenseMatrix(xRows*iterations, xCols, nil)

	// Each iteration owns its generator and writes a disjoint row block.
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i < iterations; i++ {
		g.Go(func() error {
			block := rarefyRows(X, sums, depth, seed+int64(i))
			for r := 0; r < xRows; r++ {
				output.SetRow(i*xRows+r, block.RawRowView(r))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "build dataset")
	}
	return output, nil
}
