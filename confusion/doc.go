// Package confusion builds error-analysis artifacts for classification
// outputs: (prediction, gold) bucketing and abstention-aware confusion
// matrices with incremental accumulation and pretty-printing.
//
// What:
//
//   - ErrorBuckets / BucketItems group item positions (or payloads) by
//     (predicted, gold) label pair in one linear pass.
//   - ConfusionMatrix ingests label pairs incrementally via Add, compiles
//     them into a dense count matrix (rows = predictions, columns = gold),
//     and renders counts or row-normalized rates as text.
//   - Matrix is a one-shot wrapper: New + Add + Compile, with optional
//     normalization and pretty-printing.
//
// Label convention:
//
//	Labels are non-negative integers; NullLabel (0) is reserved to mean
//	"abstained" (no prediction) or "no gold label". Trimmed matrices and
//	rendered output hide the null row/column unless WithNullPrediction /
//	WithNullGold is set at construction.
//
// Concurrency:
//
//	A ConfusionMatrix is single-threaded by contract. For parallel
//	accumulation, keep one instance per worker and combine them with Merge;
//	counts are commutative and associative, so the result is identical to
//	serial accumulation.
//
// Errors:
//
//   - ErrLengthMismatch: input sequences of differing length (Add,
//     ErrorBuckets, BucketItems, Matrix). Nothing is recorded.
//   - ErrEmptyInput: Compile/Render/Display before any observation.
//
// Complexity:
//
//   - Add, ErrorBuckets, BucketItems: O(n) over input length.
//   - Compile, Render: O(k²) for k = 1 + max label seen.
//
// See the examples in example_test.go for usage patterns.
package confusion
