package metrics

import "errors"

var (
	// ErrNilMatrix indicates a nil *confusion.ConfusionMatrix was passed.
	ErrNilMatrix = errors.New("metrics: confusion matrix is nil")

	// ErrNoObservations indicates the matrix holds no observations yet, so
	// no statistic is defined.
	ErrNoObservations = errors.New("metrics: no observations accumulated")
)
