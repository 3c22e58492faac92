// Package hashtable: core Table operations.
//
// This file provides construction plus the insert-or-update, lookup and
// removal primitives. Every operation locates its bucket with
// hash(key) % capacity and then scans that single chain.

package hashtable

import "slices"

// New creates an empty Table with the given number of buckets, hashing keys
// with the default hasher (xxHash for strings, hash/maphash otherwise).
// A capacity below 1 is clamped to 1.
// Complexity: O(capacity)
func New[K comparable, V any](capacity int, opts ...Option) *Table[K, V] {
	return NewWithHasher[K, V](capacity, nil, opts...)
}

// NewDefault creates an empty Table with DefaultCapacity buckets and
// default options.
func NewDefault[K comparable, V any]() *Table[K, V] {
	return New[K, V](DefaultCapacity)
}

// NewWithHasher creates an empty Table that places keys with h.
// A nil h selects the default hasher; a capacity below 1 is clamped to 1.
// Complexity: O(capacity)
func NewWithHasher[K comparable, V any](capacity int, h Hasher[K], opts ...Option) *Table[K, V] {
	// Clamp rather than reject: construction is infallible.
	if capacity < minCapacity {
		capacity = minCapacity
	}
	// Apply options over defaults
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if h == nil {
		h = defaultHasher[K]()
	}

	return &Table[K, V]{
		buckets: make([]bucket[K, V], capacity),
		hash:    h,
		maxLoad: o.MaxLoadFactor,
		growth:  o.GrowthFactor,
	}
}

// Put associates value with key.
// If key is already present its value is overwritten in place and the count
// is unchanged. Otherwise the entry is appended to the tail of its chain and,
// when the load factor now exceeds the maximum, the table grows before Put
// returns.
// Complexity: O(1) amortized.
func (t *Table[K, V]) Put(key K, value V) {
	if !t.insert(key, value) {
		return // overwrite: count and load factor unchanged
	}
	if t.LoadFactor() > t.maxLoad {
		t.resize(t.nextCapacity())
	}
}

// insert is the shared placement step of Put and resize. It overwrites an
// existing entry or appends a new one, and reports whether the entry was new.
// It never checks the load factor.
func (t *Table[K, V]) insert(key K, value V) bool {
	idx := t.index(key)
	chain := t.buckets[idx]
	if i := lookup(chain, key); i >= 0 {
		chain[i].Value = value
		return false
	}
	t.buckets[idx] = append(chain, Entry[K, V]{Key: key, Value: value})
	t.count++

	return true
}

// Get returns the value stored under key and true, or the zero V and false
// if key is absent. Get never mutates the table.
// Complexity: O(1) amortized.
func (t *Table[K, V]) Get(key K) (V, bool) {
	chain := t.buckets[t.index(key)]
	if i := lookup(chain, key); i >= 0 {
		return chain[i].Value, true
	}
	var zero V

	return zero, false
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	return lookup(t.buckets[t.index(key)], key) >= 0
}

// Remove deletes key and its value, reporting whether an entry was removed.
// Removing an absent key is a no-op that returns false.
// The relative order of the remaining entries in the chain is preserved.
// Complexity: O(1) amortized.
func (t *Table[K, V]) Remove(key K) bool {
	idx := t.index(key)
	chain := t.buckets[idx]
	i := lookup(chain, key)
	if i < 0 {
		return false
	}
	t.buckets[idx] = slices.Delete(chain, i, i+1)
	t.count--

	return true
}

// LoadFactor returns Count() / Capacity().
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.count) / float64(len(t.buckets))
}

// Count returns the number of entries in the table.
func (t *Table[K, V]) Count() int { return t.count }

// Capacity returns the number of buckets.
func (t *Table[K, V]) Capacity() int { return len(t.buckets) }

// index selects the bucket for key under the current capacity.
func (t *Table[K, V]) index(key K) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// lookup returns the position of key in chain, or -1.
func lookup[K comparable, V any](chain bucket[K, V], key K) int {
	for i := range chain {
		if chain[i].Key == key {
			return i
		}
	}

	return -1
}
