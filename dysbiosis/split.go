package dysbiosis

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// DefaultTestFraction is the share of the expanded dataset held out for
// validation.
const DefaultTestFraction = 0.15

// TrainTestSplit shuffles the rows of X with a generator seeded from seed and
// splits them in two. The test part gets ceil(testFraction*n) rows, the train
// part the rest. Both parts must end up non-empty.
func TrainTestSplit(X *DenseMatrix, testFraction float64, seed int64) (train, test *DenseMatrix, err error) {
	if X == nil || X.Dense == nil || X.IsEmpty() {
		return nil, nil, errors.Wrap(ErrEmptyMatrix, "train/test split")
	}
	if !(testFraction > 0 && testFraction < 1) {
		return nil, nil, errors.Wrapf(ErrInvalidFraction, "train/test split: fraction %v", testFraction)
	}
	xRows, xCols := X.Dims()
	nTest := int(math.Ceil(testFraction * float64(xRows)))
	nTrain := xRows - nTest
	if nTrain < 1 || nTest < 1 {
		return nil, nil, errors.Wrapf(ErrInvalidFraction, "train/test split: fraction %v leaves an empty split of %d rows", testFraction, xRows)
	}

	perm := rand.New(newSource(seed)).Perm(xRows)
	test = NewDenseMatrix(nTest, xCols, nil)
	train = NewDenseMatrix(nTrain, xCols, nil)
	for i, idx := range perm {
		if i < nTest {
			test.SetRow(i, X.RawRowView(idx))
		} else {
			train.SetRow(i-nTest, X.RawRowView(idx))
		}
	}
	return train, test, nil
}
