package confusion

// ErrorBuckets groups item positions by (predicted, gold) label pair.
//
// Description:
//
//	For every position i, index i is appended to the bucket keyed by
//	Pair{pred[i], gold[i]}. Keys exist only for pairs actually observed
//	(no zero-filling, unlike a compiled matrix), and insertion order within
//	each bucket follows input order.
//
// Errors:
//   - ErrLengthMismatch — gold and pred differ in length.
//
// Complexity: O(n) time, O(n) space.
func ErrorBuckets(gold, pred []int) (map[Pair][]int, error) {
	if len(gold) != len(pred) {
		return nil, ErrLengthMismatch
	}

	buckets := make(map[Pair][]int)
	for i := range gold {
		key := Pair{Pred: pred[i], Gold: gold[i]}
		buckets[key] = append(buckets[key], i)
	}

	return buckets, nil
}

// BucketItems groups arbitrary payloads by (predicted, gold) label pair:
// items[i] lands in the bucket keyed by Pair{pred[i], gold[i]}. Use
// ErrorBuckets to bucket positions instead of payloads.
//
// Errors:
//   - ErrLengthMismatch — gold, pred and items do not share one length.
//
// Complexity: O(n) time, O(n) space.
func BucketItems[T any](gold, pred []int, items []T) (map[Pair][]T, error) {
	if len(gold) != len(pred) || len(items) != len(gold) {
		return nil, ErrLengthMismatch
	}

	buckets := make(map[Pair][]T)
	for i := range gold {
		key := Pair{Pred: pred[i], Gold: gold[i]}
		buckets[key] = append(buckets[key], items[i])
	}

	return buckets, nil
}
