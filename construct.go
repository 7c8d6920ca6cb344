package obtree

import "slices"

// FromSorted builds a tree from items already in strictly ascending key
// order. It is New followed by one AppendSorted call, which is cheaper than
// inserting the items one at a time.
func FromSorted[K, V any](less LessFunc[K], items []KV[K, V]) (Tree[K, V], error) {
	t, err := New[K, V](less)
	if err != nil {
		return Tree[K, V]{}, err
	}
	return t.AppendSorted(items...)
}

// FromSlice builds a tree from items in any order, sorting a copy by key
// first. Duplicate keys are rejected with ErrDuplicateKey; the input slice
// is not modified.
func FromSlice[K, V any](less LessFunc[K], items []KV[K, V]) (Tree[K, V], error) {
	t, err := New[K, V](less)
	if err != nil {
		return Tree[K, V]{}, err
	}
	sorted := append([]KV[K, V](nil), items...)
	slices.SortStableFunc(sorted, func(a, b KV[K, V]) int {
		switch {
		case less(a.Key, b.Key):
			return -1
		case less(b.Key, a.Key):
			return 1
		default:
			return 0
		}
	})
	for i := 1; i < len(sorted); i++ {
		if !less(sorted[i-1].Key, sorted[i].Key) {
			return Tree[K, V]{}, ErrDuplicateKey
		}
	}
	return t.AppendSorted(sorted...)
}
