package confusion_test

import (
	"fmt"

	"github.com/katalvlaran/confmat/confusion"
)

// ExampleErrorBuckets groups misclassified positions for a binary problem
// with (1=positive, 2=negative): Pair{1,2} holds false positives and
// Pair{2,1} false negatives.
func ExampleErrorBuckets() {
	gold := []int{1, 1, 2, 2, 1}
	pred := []int{1, 2, 1, 2, 1}

	buckets, err := confusion.ErrorBuckets(gold, pred)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("true positives: ", buckets[confusion.Pair{Pred: 1, Gold: 1}])
	fmt.Println("false positives:", buckets[confusion.Pair{Pred: 1, Gold: 2}])
	fmt.Println("false negatives:", buckets[confusion.Pair{Pred: 2, Gold: 1}])
	fmt.Println("true negatives: ", buckets[confusion.Pair{Pred: 2, Gold: 2}])
	// Output:
	// true positives:  [0 4]
	// false positives: [2]
	// false negatives: [1]
	// true negatives:  [3]
}

// ExampleBucketItems buckets payloads instead of positions, here the raw
// documents behind each (pred, gold) cell.
func ExampleBucketItems() {
	gold := []int{1, 2, 1}
	pred := []int{2, 2, 1}
	docs := []string{"urgent invoice", "weekly digest", "meeting notes"}

	buckets, err := confusion.BucketItems(gold, pred, docs)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("missed:", buckets[confusion.Pair{Pred: 2, Gold: 1}])
	// Output:
	// missed: [urgent invoice]
}

// ExampleConfusionMatrix accumulates two batches and compiles the trimmed
// count matrix (rows = predictions, columns = gold labels).
func ExampleConfusionMatrix() {
	conf := confusion.New()
	if err := conf.Add([]int{1, 1, 2}, []int{1, 2, 2}); err != nil {
		fmt.Println("error:", err)

		return
	}
	if err := conf.Add([]int{2, 1}, []int{2, 1}); err != nil {
		fmt.Println("error:", err)

		return
	}

	mat, err := conf.Compile(true)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("total:", conf.Total())
	fmt.Println("matrix:", mat)
	// Output:
	// total: 5
	// matrix: [[2 0] [1 2]]
}

// ExampleMatrix shows the one-shot wrapper with normalization: every cell is
// divided by the total observation count.
func ExampleMatrix() {
	gold := []int{1, 1, 2, 2}
	pred := []int{1, 2, 1, 2}

	mat, err := confusion.Matrix(gold, pred, confusion.WithNormalize())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(mat)
	// Output:
	// [[0.25 0.25] [0.25 0.25]]
}
