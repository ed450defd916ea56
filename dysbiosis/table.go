package dysbiosis

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// CountTable is a count matrix together with its sample and feature names.
type CountTable struct {
	SampleIDs []string
	Features  []string
	Counts    *DenseMatrix
}

// ReadCountTable parses a tab-separated table with a header line of feature
// names. The first column holds sample identifiers, the remaining columns the
// counts of each feature.
func ReadCountTable(r io.Reader) (*CountTable, error) {
	// Cells are kept as the raw strings so unparsable counts can be reported
	// verbatim.
	df := dataframe.ReadCSV(r, dataframe.WithDelimiter('\t'), dataframe.HasHeader(true),
		dataframe.DetectTypes(false), dataframe.DefaultType(series.String), dataframe.NaNValues([]string{}))
	if df.Err != nil {
		return nil, errors.Wrapf(ErrInvalidTable, "failed to parse: %v", df.Err)
	}
	nRows, nCols := df.Dims()
	if nRows == 0 || nCols < 2 {
		return nil, errors.Wrapf(ErrInvalidTable, "need at least one sample and one feature, got %dx%d", nRows, nCols)
	}

	names := df.Names()
	table := &CountTable{
		SampleIDs: df.Col(names[0]).Records(),
		Features:  append([]string(nil), names[1:]...),
		Counts:    NewDenseMatrix(nRows, nCols-1, nil),
	}
	for j := 1; j < nCols; j++ {
		records := df.Col(names[j]).Records()
		for i, record := range records {
			v, err := strconv.ParseFloat(record, 64)
			if err != nil || math.IsNaN(v) {
				return nil, errors.Wrapf(ErrInvalidTable, "sample %q, feature %q: %q is not a number",
					table.SampleIDs[i], names[j], record)
			}
			table.Counts.Set(i, j-1, v)
		}
	}
	return table, nil
}

// WriteMatrixTSV writes X as a tab-separated table. When ids is non-nil it
// must have one entry per row and is written as the first column; header, if
// non-nil, is written first as is.
func WriteMatrixTSV(w io.Writer, ids, header []string, X *DenseMatrix) error {
	if X == nil || X.Dense == nil || X.IsEmpty() {
		return errors.Wrap(ErrEmptyMatrix, "write tsv")
	}
	xRows, xCols := X.Dims()
	if ids != nil && len(ids) != xRows {
		return errors.Wrapf(ErrDimensionMismatch, "write tsv: %d ids for %d rows", len(ids), xRows)
	}
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if header != nil {
		if err := cw.Write(header); err != nil {
			return errors.Wrap(err, "write tsv: header")
		}
	}
	record := make([]string, 0, xCols+1)
	for i := 0; i < xRows; i++ {
		record = record[:0]
		if ids != nil {
			record = append(record, ids[i])
		}
		for _, v := range X.RawRowView(i) {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "write tsv: row %d", i)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "write tsv")
}
