package confusion

import "errors"

var (
	// ErrLengthMismatch indicates that the gold, prediction (and, when given,
	// item) sequences do not share the same length. The offending call records
	// nothing; inputs are never truncated or zero-padded.
	ErrLengthMismatch = errors.New("confusion: input sequences must have equal length")

	// ErrEmptyInput indicates that a matrix was requested before any
	// observation was added. A degenerate 0×0 matrix is never returned.
	ErrEmptyInput = errors.New("confusion: no observations added")
)
