package dysbiosis

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultDepth asks Rarefy to use the smallest sample total as depth.
const DefaultDepth = 0

// probabilityTolerance bounds how far a row's probability vector may drift
// from summing to one before it is renormalised.
const probabilityTolerance = 1e-9

// Rarefy subsamples every row of X to exactly depth counts. Each row's
// relative abundances are used as a categorical distribution from which depth
// features are drawn with replacement; the output row holds how often each
// feature was drawn.
//
// With depth == DefaultDepth the smallest row sum of X is used. A depth above
// the smallest row sum is allowed: a Warning diagnostic is reported and the
// rows are oversampled.
//
// The same (X, depth, seed) always gives the same result. A single generator
// is seeded from seed and consumed by the rows in order.
func Rarefy(X *DenseMatrix, depth int, seed int64, opts ...Option) (*DenseMatrix, error) {
	o := gatherOptions(opts)
	sums, err := validateCounts(X)
	if err != nil {
		return nil, errors.Wrap(err, "rarefy")
	}
	depth, err = resolveDepth(depth, sums, o.reporter)
	if err != nil {
		return nil, errors.Wrap(err, "rarefy")
	}
	return rarefyRows(X, sums, depth, seed), nil
}

// resolveDepth applies the default depth and reports a warning when depth
// exceeds the smallest row sum.
func resolveDepth(depth int, sums []float64, reporter Reporter) (int, error) {
	minRowSum := floats.Min(sums)
	switch {
	case depth < 0:
		return 0, errors.Wrapf(ErrInvalidDepth, "depth %d", depth)
	case depth == DefaultDepth:
		depth = int(math.Floor(minRowSum))
		if depth < 1 {
			return 0, errors.Wrapf(ErrInvalidDepth, "minimum row sum %g is below one", minRowSum)
		}
	case float64(depth) > minRowSum:
		reporter.Report(depthWarning(depth, minRowSum))
	}
	return depth, nil
}

// rarefyRows does the draws for already validated input.
func rarefyRows(X *DenseMatrix, sums []float64, depth int, seed int64) *DenseMatrix {
	xRows, xCols := X.Dims()
	src := newSource(seed)
	output := NewDenseMatrix(xRows, xCols, nil)

	p := make([]float64, xCols)
	for i := 0; i < xRows; i++ {
		floats.ScaleTo(p, 1/sums[i], X.RawRowView(i))
		if total := floats.Sum(p); !scalar.EqualWithinAbs(total, 1, probabilityTolerance) {
			floats.Scale(1/total, p)
		}

		categorical := distuv.NewCategorical(p, src)
		counts := output.RawRowView(i)
		for k := 0; k < depth; k++ {
			counts[int(categorical.Rand())]++
		}
	}
	return output
}

// newSource returns the generator used for one rarefaction.
func newSource(seed int64) rand.Source {
	return rand.NewPCG(uint64(seed), 0)
}
