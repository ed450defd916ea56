package dysbiosis

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const countTableTSV = "sample\ttaxonA\ttaxonB\ttaxonC\n" +
	"s1\t1\t2\t3\n" +
	"s2\t4\t5\t6\n" +
	"s3\t7\t8\t9\n"

func TestReadCountTable(t *testing.T) {
	table, err := ReadCountTable(strings.NewReader(countTableTSV))
	require.NoError(t, err)
	require.Equal(t, []string{"s1", "s2", "s3"}, table.SampleIDs)
	require.Equal(t, []string{"taxonA", "taxonB", "taxonC"}, table.Features)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, table.Counts.RawMatrix().Data)

	rarefied, err := Rarefy(table.Counts, DefaultDepth, 0)
	require.NoError(t, err)
	requireRowSums(t, rarefied, 6)
}

func TestReadCountTable_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantToken string
	}{
		{name: "header only", input: "sample\ttaxonA\n"},
		{name: "no features", input: "sample\ns1\ns2\n"},
		{name: "non numeric count", input: "sample\ttaxonA\ns1\t1\ns2\tmany\n", wantToken: `"many"`},
		{name: "NA count", input: "sample\ttaxonA\ns1\t1\ns2\tNA\n", wantToken: `"NA"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCountTable(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrInvalidTable)
			if tt.wantToken != "" {
				require.Contains(t, err.Error(), tt.wantToken)
			}
		})
	}
}

func TestWriteMatrixTSV(t *testing.T) {
	X := NewDenseMatrix(2, 2, []float64{0.5, 0.25, 1, 0})
	var buf bytes.Buffer
	require.NoError(t, WriteMatrixTSV(&buf, []string{"s1", "s2"}, []string{"sample", "a", "b"}, X))
	require.Equal(t, "sample\ta\tb\ns1\t0.5\t0.25\ns2\t1\t0\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteMatrixTSV(&buf, nil, nil, X))
	require.Equal(t, "0.5\t0.25\n1\t0\n", buf.String())

	err := WriteMatrixTSV(&buf, []string{"only one"}, nil, X)
	require.ErrorIs(t, err, ErrDimensionMismatch)

	require.ErrorIs(t, WriteMatrixTSV(&buf, nil, nil, nil), ErrEmptyMatrix)
	require.ErrorIs(t, WriteMatrixTSV(&buf, nil, nil, &DenseMatrix{}), ErrEmptyMatrix)
}
