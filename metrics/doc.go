// Package metrics derives abstention-aware summary statistics from an
// accumulated confusion matrix: total, coverage, accuracy, and per-class
// precision / recall / F1.
//
// Conventions:
//
//   - Labels follow the confusion package: 0 is the null label (abstained
//     prediction or missing gold), real classes start at 1.
//   - Coverage is the fraction of observations with a non-null prediction.
//   - Accuracy counts correct predictions among observations with a non-null
//     gold label; abstentions count as incorrect.
//   - Precision(l) normalizes over predictions of l with a non-null gold
//     label; Recall(l) normalizes over all gold-l observations, so
//     abstentions lower recall but never precision.
//   - Degenerate denominators yield 0, never NaN, matching the confusion
//     package's divide-by-zero policy.
//
// A Report is a snapshot: it reads the matrix once at Summarize time and is
// unaffected by later Add calls.
package metrics
