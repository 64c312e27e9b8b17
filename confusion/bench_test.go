package confusion_test

import (
	"testing"

	"github.com/katalvlaran/confmat/confusion"
)

// syntheticLabels builds n (gold, pred) labels cycling over k classes with a
// deterministic disagreement pattern, so benchmarks are reproducible.
func syntheticLabels(n, k int) (gold, pred []int) {
	gold = make([]int, n)
	pred = make([]int, n)
	for i := 0; i < n; i++ {
		gold[i] = 1 + i%k
		pred[i] = 1 + (i+i/k)%k // drift off the diagonal periodically
	}

	return gold, pred
}

// benchmarkAdd accumulates n observations over k classes per iteration.
func benchmarkAdd(b *testing.B, n, k int) {
	gold, pred := syntheticLabels(n, k)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		conf := confusion.New()
		if err := conf.Add(gold, pred); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}

// benchmarkCompile measures matrix derivation alone on a pre-filled counter.
func benchmarkCompile(b *testing.B, n, k int) {
	gold, pred := syntheticLabels(n, k)
	conf := confusion.New()
	if err := conf.Add(gold, pred); err != nil {
		b.Fatalf("Add failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// A one-item Add (O(1)) invalidates the cache so every iteration
		// pays the full derivation cost.
		if err := conf.Add([]int{1}, []int{1}); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
		if _, err := conf.Compile(false); err != nil {
			b.Fatalf("Compile failed: %v", err)
		}
	}
}

// BenchmarkAdd_SmallBinary benchmarks accumulation of 1k binary observations.
func BenchmarkAdd_SmallBinary(b *testing.B) {
	benchmarkAdd(b, 1_000, 2)
}

// BenchmarkAdd_LargeMulticlass benchmarks 100k observations over 50 classes.
func BenchmarkAdd_LargeMulticlass(b *testing.B) {
	benchmarkAdd(b, 100_000, 50)
}

// BenchmarkCompile_Binary benchmarks compile on a 2-class counter.
func BenchmarkCompile_Binary(b *testing.B) {
	benchmarkCompile(b, 10_000, 2)
}

// BenchmarkCompile_Multiclass benchmarks compile on a 100-class counter.
func BenchmarkCompile_Multiclass(b *testing.B) {
	benchmarkCompile(b, 10_000, 100)
}

// BenchmarkErrorBuckets benchmarks one-pass bucketing of 10k observations.
func BenchmarkErrorBuckets(b *testing.B) {
	gold, pred := syntheticLabels(10_000, 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := confusion.ErrorBuckets(gold, pred); err != nil {
			b.Fatalf("ErrorBuckets failed: %v", err)
		}
	}
}
