// dysbiosis-prepare reads a tab-separated count table, rarefies it and writes
// the scaled evaluation set and the expanded train/test sets used to fit a
// dysbiosis autoencoder.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/e-XpertSolutions/go-dysbiosis/dysbiosis"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagInput        = flag.String("input", "", "Tab-separated count table: header of feature names, sample ids in the first column.")
	flagOutput       = flag.String("output", ".", "Directory where eval.tsv, train.tsv and test.tsv are written.")
	flagDepth        = flag.Int("depth", 5000, "Number of reads every sample is rarefied to.")
	flagIterations   = flag.Int("iterations", dysbiosis.DefaultIterations, "Number of rarefied copies stacked into the training data.")
	flagSeed         = flag.Int64("seed", 0, "Seed for rarefaction and the train/test split.")
	flagTestFraction = flag.Float64("test_fraction", dysbiosis.DefaultTestFraction, "Fraction of the expanded data held out for validation.")
	flagWorkers      = flag.Int("workers", 1, "Number of rarefaction iterations run in parallel.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if *flagInput == "" {
		klog.Fatalf("-input is required")
	}
	if err := run(); err != nil {
		klog.Fatalf("%+v", err)
	}
}

func run() error {
	f, err := os.Open(*flagInput)
	if err != nil {
		return errors.Wrapf(err, "failed to open %q", *flagInput)
	}
	table, err := dysbiosis.ReadCountTable(f)
	_ = f.Close()
	if err != nil {
		return errors.Wrapf(err, "failed to read %q", *flagInput)
	}
	klog.Infof("read %d samples and %d features from %q", len(table.SampleIDs), len(table.Features), *flagInput)

	p := dysbiosis.NewPipeline(*flagDepth, *flagIterations, *flagSeed)
	p.TestFraction = *flagTestFraction
	p.Workers = *flagWorkers
	if err := p.Prepare(table.Counts); err != nil {
		return err
	}

	if err := os.MkdirAll(*flagOutput, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %q", *flagOutput)
	}
	evalHeader := append([]string{"sample"}, table.Features...)
	outputs := []struct {
		name   string
		ids    []string
		header []string
		X      *dysbiosis.DenseMatrix
	}{
		{"eval.tsv", table.SampleIDs, evalHeader, p.Eval},
		{"train.tsv", nil, table.Features, p.Train},
		{"test.tsv", nil, table.Features, p.Test},
	}
	for _, out := range outputs {
		if err := writeFile(filepath.Join(*flagOutput, out.name), out.ids, out.header, out.X); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, ids, header []string, X *dysbiosis.DenseMatrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %q", path)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "failed to close %q after writing", path)
		}
	}()
	if err = dysbiosis.WriteMatrixTSV(f, ids, header, X); err != nil {
		return errors.Wrapf(err, "failed to write %q", path)
	}
	klog.V(1).Infof("wrote %s", path)
	return nil
}
