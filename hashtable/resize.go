// File: resize.go
// Role: Growth policy and rehashing.
// Determinism:
//   - Entries are migrated in bucket-then-chain order of the old array, so
//     the new layout depends only on the old layout and the hasher.

package hashtable

// nextCapacity computes, up front, the capacity the table grows to:
// capacity*growth, multiplied again by growth until the current count fits
// under maxLoad. With the defaults one doubling is always enough.
func (t *Table[K, V]) nextCapacity() int {
	c := len(t.buckets) * t.growth
	for float64(t.count)/float64(c) > t.maxLoad {
		c *= t.growth
	}

	return c
}

// resize rehashes every entry into a fresh array of capacity buckets.
//
// Implementation:
//   - Stage 1: Keep the old array, allocate the new one, reset count to 0.
//   - Stage 2: Replay every old entry through insert, which re-derives its
//     bucket under the new capacity and counts it again.
//   - Stage 3: Drop the old array.
//
// insert never checks the load factor, and capacity was sized by
// nextCapacity to hold every entry, so a resize never triggers another one.
//
// Replaying through insert relies on keys being unique in the old array:
// insert overwrites on an equal key, so duplicates would be collapsed here.
// Revisit this if duplicate keys are ever permitted.
func (t *Table[K, V]) resize(capacity int) {
	old := t.buckets
	t.buckets = make([]bucket[K, V], capacity)
	t.count = 0
	for _, chain := range old {
		for _, e := range chain {
			t.insert(e.Key, e.Value)
		}
	}
	t.resizes++
}
