// Package confusion: domain types shared by the accumulator and the
// free bucketing functions. Errors live in errors.go, configuration in
// options.go, per the package conventions.
package confusion

// NullLabel is the reserved label value meaning "null": an abstained
// prediction (no prediction made) or a missing gold label. It is a documented
// sentinel, not a distinct type, so labels stay usable as plain array indices.
const NullLabel = 0

// Pair is an ordered (predicted, gold) label pair. It keys both the
// accumulator's counter and the bucketing results.
//
// For a binary problem with (1=positive, 2=negative):
//
//	Pair{1, 1} — true positives
//	Pair{1, 2} — false positives
//	Pair{2, 1} — false negatives
//	Pair{2, 2} — true negatives
type Pair struct {
	Pred int // predicted label (row axis)
	Gold int // gold label (column axis)
}
