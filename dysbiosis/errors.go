package dysbiosis

import "github.com/pkg/errors"

// Errors returned by the package. They are wrapped with context before being
// returned, so match them with errors.Is.
var (
	// ErrEmptyMatrix is returned for nil matrices or matrices without rows or columns.
	ErrEmptyMatrix = errors.New("dysbiosis: empty matrix")

	// ErrInvalidCount is returned when a count is negative, NaN or infinite.
	ErrInvalidCount = errors.New("dysbiosis: invalid count")

	// ErrDegenerateRow is returned when a sample has a total count of zero and
	// therefore no sampling distribution.
	ErrDegenerateRow = errors.New("dysbiosis: sample has zero total count")

	// ErrInvalidDepth is returned for rarefaction or scaling depths that are
	// negative, zero where a value is required, or not finite.
	ErrInvalidDepth = errors.New("dysbiosis: invalid rarefaction depth")

	// ErrInvalidIterations is returned when the dataset expansion count is not positive.
	ErrInvalidIterations = errors.New("dysbiosis: iterations must be positive")

	// ErrDimensionMismatch is returned when two matrices or vectors must share a shape and do not.
	ErrDimensionMismatch = errors.New("dysbiosis: dimension mismatch")

	// ErrInvalidFraction is returned when a test fraction leaves either split empty.
	ErrInvalidFraction = errors.New("dysbiosis: invalid test fraction")

	// ErrNotPrepared is returned by Pipeline methods called before Prepare.
	ErrNotPrepared = errors.New("dysbiosis: pipeline is not prepared")

	// ErrInvalidTable is returned when a count table cannot be parsed.
	ErrInvalidTable = errors.New("dysbiosis: invalid count table")
)
