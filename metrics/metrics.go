package metrics

import (
	"errors"

	"github.com/katalvlaran/confmat/confusion"
)

// Precision is the fraction of positive calls that were right:
// truePositives / predictedPositives. Zero denominator yields 0.
func Precision(truePositives, predictedPositives int) float64 {
	if predictedPositives == 0 {
		return 0
	}

	return float64(truePositives) / float64(predictedPositives)
}

// Recall is the fraction of actual positives that were found:
// truePositives / conditionPositives. Zero denominator yields 0.
func Recall(truePositives, conditionPositives int) float64 {
	if conditionPositives == 0 {
		return 0
	}

	return float64(truePositives) / float64(conditionPositives)
}

// F1 is the harmonic mean of precision and recall; 0 when both are 0.
func F1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}

	return 2 * precision * recall / (precision + recall)
}

// Report is an immutable snapshot of classification quality derived from an
// accumulated confusion matrix. Build one with Summarize.
type Report struct {
	counts [][]int // untrimmed k×k counts; rows = predictions, cols = gold
	total  int
}

// Summarize reads the matrix once and returns a Report. The snapshot is
// unaffected by Add calls made afterwards.
//
// Errors:
//   - ErrNilMatrix — cm is nil.
//   - ErrNoObservations — nothing accumulated yet.
//
// Complexity: O(k²) time and space.
func Summarize(cm *confusion.ConfusionMatrix) (*Report, error) {
	if cm == nil {
		return nil, ErrNilMatrix
	}

	counts, err := cm.Compile(false)
	if err != nil {
		if errors.Is(err, confusion.ErrEmptyInput) {
			return nil, ErrNoObservations
		}

		return nil, err
	}

	// Copy: Compile's result is owned by cm and invalidated by its next Add.
	snapshot := make([][]int, len(counts))
	for i, row := range counts {
		snapshot[i] = make([]int, len(row))
		copy(snapshot[i], row)
	}

	return &Report{counts: snapshot, total: cm.Total()}, nil
}

// Total returns the number of observations behind the report.
func (r *Report) Total() int {
	return r.total
}

// Classes returns the non-null labels with at least one observation (as
// prediction or gold), in ascending order.
func (r *Report) Classes() []int {
	k := len(r.counts)
	classes := make([]int, 0, k-1)
	for l := 1; l < k; l++ {
		if r.rowSum(l, 0) > 0 || r.colSum(l, 0) > 0 {
			classes = append(classes, l)
		}
	}

	return classes
}

// Coverage returns the fraction of observations with a non-null prediction.
func (r *Report) Coverage() float64 {
	return float64(r.total-r.rowSum(confusion.NullLabel, 0)) / float64(r.total)
}

// Accuracy returns correct predictions divided by observations with a
// non-null gold label; abstentions count against it. Zero such observations
// yield 0.
func (r *Report) Accuracy() float64 {
	labeled, correct := 0, 0
	for i := range r.counts {
		labeled += r.rowSum(i, 1)
		if i >= 1 {
			correct += r.counts[i][i]
		}
	}

	return Recall(correct, labeled)
}

// Precision returns per-class precision for label l: counts[l][l] over
// predictions of l with a non-null gold label. Labels outside the observed
// range yield 0.
func (r *Report) Precision(l int) float64 {
	if l < 1 || l >= len(r.counts) {
		return 0
	}

	return Precision(r.counts[l][l], r.rowSum(l, 1))
}

// Recall returns per-class recall for label l: counts[l][l] over all gold-l
// observations, abstentions included. Labels outside the observed range
// yield 0.
func (r *Report) Recall(l int) float64 {
	if l < 1 || l >= len(r.counts) {
		return 0
	}

	return Recall(r.counts[l][l], r.colSum(l, 0))
}

// F1 returns the per-class harmonic mean of Precision and Recall.
func (r *Report) F1(l int) float64 {
	return F1(r.Precision(l), r.Recall(l))
}

// rowSum sums row i over columns j >= from.
func (r *Report) rowSum(i, from int) int {
	sum := 0
	for _, n := range r.counts[i][from:] {
		sum += n
	}

	return sum
}

// colSum sums column j over rows i >= from.
func (r *Report) colSum(j, from int) int {
	sum := 0
	for i := from; i < len(r.counts); i++ {
		sum += r.counts[i][j]
	}

	return sum
}
