package hashtable

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher maps a key to a non-negative integer. It must be total and
// deterministic for the lifetime of a Table: equal keys always hash equal.
// The Table reduces the result modulo its current capacity.
type Hasher[K comparable] func(key K) uint64

// StringHash hashes s with xxHash64. The result is stable across processes.
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// IdentityHash returns the integer key itself, reinterpreted as uint64.
// Bucket placement becomes fully predictable: key k lands in k % capacity
// for non-negative k.
func IdentityHash[T constraints.Integer](v T) uint64 {
	return uint64(v)
}

// defaultHasher returns the Hasher used when none is supplied.
// Plain string keys go through xxHash; every other comparable key is hashed
// with hash/maphash under a seed drawn once per Table.
func defaultHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		if s, ok := any(key).(string); ok {
			return xxhash.Sum64String(s)
		}
		return maphash.Comparable(seed, key)
	}
}
