package confusion

import "fmt"

// ConfusionMatrix is an iteratively built, abstention-aware confusion matrix.
//
// Observations arrive as (gold, prediction) label pairs via Add and
// accumulate in a counter keyed by Pair; accumulation is commutative and
// associative, so the order of Add calls never affects the compiled result.
// The dense matrix is derived from the counter on demand by Compile (rows are
// predicted labels, columns are gold labels) and cached until the next Add
// or Merge.
//
// A ConfusionMatrix is not safe for concurrent use. For parallel
// accumulation, give each worker its own instance and combine them with
// Merge.
type ConfusionMatrix struct {
	counter map[Pair]int
	total   int

	nullPred bool // show the null-prediction row when trimming/rendering
	nullGold bool // show the null-gold column when trimming/rendering

	// Cached Compile result; nil when stale. Pure function of counter state
	// plus trim mode, so dropping it is always safe.
	mat     [][]int
	matTrim bool
}

// New returns an empty ConfusionMatrix. Visibility of the null row/column is
// fixed at construction via WithNullPrediction and WithNullGold; both are
// hidden by default. WithNormalize and WithPretty are ignored here (they
// configure the one-shot Matrix).
func New(opts ...Option) *ConfusionMatrix {
	o := gatherOptions(opts...)

	return &ConfusionMatrix{
		counter:  make(map[Pair]int),
		nullPred: o.nullPred,
		nullGold: o.nullGold,
	}
}

// Add records one observation per position: counter[{pred[i], gold[i]}]
// is incremented for every i. Effects accumulate across calls, and any
// cached compiled matrix is invalidated.
//
// Errors:
//   - ErrLengthMismatch — gold and pred differ in length; nothing is
//     recorded.
//
// Complexity: O(n) time.
func (c *ConfusionMatrix) Add(gold, pred []int) error {
	if len(gold) != len(pred) {
		return ErrLengthMismatch
	}

	for i := range gold {
		c.counter[Pair{Pred: pred[i], Gold: gold[i]}]++
	}
	c.total += len(gold)
	c.mat = nil

	return nil
}

// Merge sums another matrix's counter into the receiver. Because
// accumulation is commutative and associative, merging per-worker matrices
// yields exactly the counts a single serial accumulator would have produced.
// A nil or empty other is a no-op. The other matrix is not modified.
//
// Complexity: O(p) time for p distinct pairs in other.
func (c *ConfusionMatrix) Merge(other *ConfusionMatrix) {
	if other == nil || other.total == 0 {
		return
	}

	for key, n := range other.counter {
		c.counter[key] += n
	}
	c.total += other.total
	c.mat = nil
}

// Total returns the number of observations accumulated so far.
// Complexity: O(1).
func (c *ConfusionMatrix) Total() int {
	return c.total
}

// Compile derives the dense count matrix from the counter.
//
// Description:
//
//	Let k = 1 + the maximum label value appearing in any stored pair.
//	The result is a k×k matrix, zero-filled, with cell [p][y] holding the
//	count of pair (p, y): rows are predicted labels, columns gold labels.
//	With trim=true, row 0 is dropped unless WithNullPrediction was set and
//	column 0 is dropped unless WithNullGold was set; trimming never removes
//	non-null rows or columns. A trimmed matrix cannot be un-trimmed — it is
//	re-derived from the counter instead.
//
//	The result is cached until the next Add or Merge. It is owned by the
//	receiver; callers must not modify it.
//
// Errors:
//   - ErrEmptyInput — no observations added yet.
//
// Complexity: O(k²) time and space on a cache miss, O(1) on a hit.
func (c *ConfusionMatrix) Compile(trim bool) ([][]int, error) {
	if c.total == 0 {
		return nil, ErrEmptyInput
	}
	if c.mat != nil && c.matTrim == trim {
		return c.mat, nil
	}

	k := 0
	for key := range c.counter {
		k = max(k, key.Pred, key.Gold)
	}
	k++ // include label 0

	mat := make([][]int, k)
	for i := range mat {
		mat[i] = make([]int, k)
	}
	for key, n := range c.counter {
		mat[key.Pred][key.Gold] = n
	}

	if trim && !c.nullPred {
		mat = mat[1:]
	}
	if trim && !c.nullGold {
		for i := range mat {
			mat[i] = mat[i][1:]
		}
	}

	c.mat = mat
	c.matTrim = trim

	return mat, nil
}

// String returns a compact dump of the trimmed compiled matrix, or a fixed
// placeholder before any observation is added.
func (c *ConfusionMatrix) String() string {
	mat, err := c.Compile(true)
	if err != nil {
		return "confusion.ConfusionMatrix(empty)"
	}

	return fmt.Sprint(mat)
}

// Matrix is a one-shot convenience composing New + Add + Compile(trim=true).
//
// Description:
//
//	With WithNormalize, every cell is divided by the total observation
//	count; otherwise cells hold exact whole counts (as float64). With
//	WithPretty, the compiled counts are displayed to stdout with
//	DefaultDisplayOptions before returning — the display re-derives raw
//	counts internally, so WithNormalize never affects printed output, only
//	the returned matrix.
//
// Errors:
//   - ErrLengthMismatch — gold and pred differ in length.
//   - ErrEmptyInput — gold and pred are empty.
//
// Complexity: O(n + k²) time.
func Matrix(gold, pred []int, opts ...Option) ([][]float64, error) {
	o := gatherOptions(opts...)

	conf := New(opts...)
	if err := conf.Add(gold, pred); err != nil {
		return nil, err
	}

	counts, err := conf.Compile(true)
	if err != nil {
		return nil, err
	}

	scale := 1.0
	if o.normalize {
		scale = 1.0 / float64(conf.Total())
	}

	mat := make([][]float64, len(counts))
	for i, row := range counts {
		mat[i] = make([]float64, len(row))
		for j, n := range row {
			mat[i][j] = float64(n) * scale
		}
	}

	if o.pretty {
		if err = conf.Display(DefaultDisplayOptions()); err != nil {
			return nil, err
		}
	}

	return mat, nil
}
