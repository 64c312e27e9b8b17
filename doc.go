// Package confmat is a small, dependency-light toolkit for error analysis
// of classification outputs: confusion matrices, error bucketing, and
// abstention-aware quality metrics.
//
// 🚀 What is confmat?
//
//	An in-memory analytical library for inspecting where a classifier goes
//	wrong. It takes two equal-length label sequences — gold and predicted —
//	and turns them into:
//	  • Error buckets: which items landed in which (pred, gold) cell
//	  • Confusion matrices: incremental counting, null-row/column trimming,
//	    count and row-rate pretty-printing
//	  • Summary metrics: coverage, accuracy, per-class precision/recall/F1
//
// Label convention: labels are non-negative ints and 0 is reserved for
// "null" — an abstained prediction or a missing gold label. All artifacts
// are abstention-aware.
//
// Everything is organized under two subpackages:
//
//	confusion/ — ConfusionMatrix accumulator, ErrorBuckets/BucketItems,
//	             Matrix one-shot, text rendering
//	metrics/   — Report with coverage, accuracy and per-class statistics
//
// Quick example:
//
//	conf := confusion.New()
//	_ = conf.Add(gold, pred)
//	mat, _ := conf.Compile(true)        // trimmed counts
//	_ = conf.Display(confusion.DefaultDisplayOptions())
//
// All operations are pure, synchronous, in-memory computations: no files,
// no network, no persisted state. For parallel accumulation keep one
// ConfusionMatrix per worker and combine with Merge.
//
//	go get github.com/katalvlaran/confmat
package confmat
