package hashtable

import "iter"

// All yields every key/value pair in bucket-then-chain order.
// The table must not be mutated while the sequence is being consumed.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, chain := range t.buckets {
			for _, e := range chain {
				if !yield(e.Key, e.Value) {
					return
				}
			}
		}
	}
}

// Keys yields every key in bucket-then-chain order.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value in bucket-then-chain order.
func (t *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the table: same capacity, hasher, growth
// policy and bucket layout. Values are copied by assignment.
// Complexity: O(capacity + count)
func (t *Table[K, V]) Clone() *Table[K, V] {
	clone := &Table[K, V]{
		buckets: make([]bucket[K, V], len(t.buckets)),
		count:   t.count,
		hash:    t.hash, // shares the seed, so placement matches
		maxLoad: t.maxLoad,
		growth:  t.growth,
		resizes: t.resizes,
	}
	for i, chain := range t.buckets {
		if len(chain) > 0 {
			clone.buckets[i] = append(bucket[K, V](nil), chain...)
		}
	}

	return clone
}

// Clear releases every bucket and entry. The capacity and configuration
// are kept; Count and the resize counter drop to zero.
func (t *Table[K, V]) Clear() {
	t.buckets = make([]bucket[K, V], len(t.buckets))
	t.count = 0
	t.resizes = 0
}
