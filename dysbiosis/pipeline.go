package dysbiosis

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Pipeline prepares count data for an autoencoder: a single rarefied and
// scaled copy of the samples for scoring, and an expanded, scaled training set
// split into train and test parts.
type Pipeline struct {
	Depth        int
	Iterations   int
	Seed         int64
	TestFraction float64
	Workers      int
	Reporter     Reporter

	// Eval holds one scaled rarefaction of the input, one row per sample.
	Eval *DenseMatrix
	// Train and Test partition the scaled expanded dataset.
	Train      *DenseMatrix
	Test       *DenseMatrix
	IsPrepared bool
}

// NewPipeline implements constructor for the Pipeline struct.
func NewPipeline(depth, iterations int, seed int64) *Pipeline {
	return &Pipeline{
		Depth:        depth,
		Iterations:   iterations,
		Seed:         seed,
		TestFraction: DefaultTestFraction,
		Workers:      1,
		Reporter:     KlogReporter{},
	}
}

// Prepare builds Eval, Train and Test from the raw counts X.
//
// Eval is rarefied with Seed, the expanded dataset with Seed+1 onwards, and
// the train/test shuffle uses Seed.
func (p *Pipeline) Prepare(X *DenseMatrix) error {
	if err := p.validateParameters(); err != nil {
		return errors.Wrap(err, "pipeline: failed to prepare data")
	}
	opts := []Option{WithReporter(p.Reporter), WithWorkers(p.Workers)}

	rarefied, err := Rarefy(X, p.Depth, p.Seed, opts...)
	if err != nil {
		return errors.Wrap(err, "pipeline: evaluation set")
	}
	eval, err := Scale(rarefied, float64(p.Depth))
	if err != nil {
		return errors.Wrap(err, "pipeline: evaluation set")
	}

	expanded, err := BuildDataset(X, p.Depth, p.Iterations, p.Seed+1, opts...)
	if err != nil {
		return errors.Wrap(err, "pipeline: training set")
	}
	full, err := Scale(expanded, float64(p.Depth))
	if err != nil {
		return errors.Wrap(err, "pipeline: training set")
	}
	train, test, err := TrainTestSplit(full, p.TestFraction, p.Seed)
	if err != nil {
		return errors.Wrap(err, "pipeline: training set")
	}

	p.Eval, p.Train, p.Test = eval, train, test
	p.IsPrepared = true
	if klog.V(1).Enabled() {
		xRows, xCols := X.Dims()
		trainRows, _ := train.Dims()
		testRows, _ := test.Dims()
		klog.Infof("prepared %d samples x %d features: depth=%d iterations=%d train=%d test=%d",
			xRows, xCols, p.Depth, p.Iterations, trainRows, testRows)
	}
	return nil
}

// Scores returns the per-sample loss of reconstructed against Eval. The
// reconstruction must come from a model fed with Eval.
func (p *Pipeline) Scores(reconstructed *DenseMatrix, lossFn LossFunction) ([]float64, error) {
	if !p.IsPrepared {
		return nil, ErrNotPrepared
	}
	scores, err := ReconstructionLoss(p.Eval, reconstructed, lossFn)
	if err != nil {
		return nil, errors.Wrap(err, "pipeline: scores")
	}
	return scores, nil
}

func (p *Pipeline) validateParameters() error {
	if p.Depth < 1 {
		return errors.Wrapf(ErrInvalidDepth, "depth %d", p.Depth)
	}
	if p.Iterations < 1 {
		return errors.Wrapf(ErrInvalidIterations, "iterations %d", p.Iterations)
	}
	if !(p.TestFraction > 0 && p.TestFraction < 1) {
		return errors.Wrapf(ErrInvalidFraction, "fraction %v", p.TestFraction)
	}
	return nil
}
