// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Entry, bucket and Table declarations, tunable options and defaults.
// Policy:
//   - Construction never fails: bad capacity is clamped, bad options are ignored.
//   - Options are applied left-to-right over DefaultOptions().

package hashtable

// Package defaults.
const (
	// DefaultCapacity is the bucket count used by NewDefault.
	DefaultCapacity = 10

	// DefaultMaxLoadFactor is the load factor a Put may not leave exceeded.
	DefaultMaxLoadFactor = 0.7

	// DefaultGrowthFactor multiplies the capacity on every resize.
	DefaultGrowthFactor = 2

	// minCapacity is the floor New clamps smaller capacities to.
	minCapacity = 1
)

// Entry is a single key/value association stored in a chain.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// bucket is one chain of entries sharing a slot index, kept in insertion order.
type bucket[K comparable, V any] []Entry[K, V]

// Table is a separate-chaining hash table mapping unique keys to values.
//
// buckets has length capacity (always ≥ 1); count is the exact number of
// entries across all buckets. Every entry lives in bucket
// hash(key) % capacity for the current capacity.
//
// A Table is not safe for concurrent use; see the package documentation.
type Table[K comparable, V any] struct {
	buckets []bucket[K, V] // len(buckets) == capacity
	count   int            // live entries

	// Configuration, fixed at construction.
	hash    Hasher[K]
	maxLoad float64
	growth  int

	resizes int // rehash rounds since construction or Clear
}

// Option configures a Table before creation.
type Option func(*Options)

// Options holds the tunable growth policy of a Table.
type Options struct {
	// MaxLoadFactor is the largest count/capacity ratio a Put may leave behind.
	// Valid range: (0, 1].
	MaxLoadFactor float64

	// GrowthFactor multiplies the capacity on each resize. Must be ≥ 2.
	GrowthFactor int
}

// DefaultOptions returns Options with MaxLoadFactor 0.7 and GrowthFactor 2.
func DefaultOptions() Options {
	return Options{
		MaxLoadFactor: DefaultMaxLoadFactor,
		GrowthFactor:  DefaultGrowthFactor,
	}
}

// WithMaxLoadFactor sets the resize threshold.
// Values outside (0, 1] are ignored and the current setting is kept.
func WithMaxLoadFactor(f float64) Option {
	return func(o *Options) {
		if f > 0 && f <= 1 {
			o.MaxLoadFactor = f
		}
	}
}

// WithGrowthFactor sets the capacity multiplier used when the table grows.
// Values below 2 are ignored and the current setting is kept.
func WithGrowthFactor(g int) Option {
	return func(o *Options) {
		if g >= 2 {
			o.GrowthFactor = g
		}
	}
}

// Stats is a read-only snapshot of a Table's shape.
type Stats struct {
	Count        int     // live entries
	Capacity     int     // bucket count
	LoadFactor   float64 // Count / Capacity
	EmptyBuckets int     // buckets holding no entry
	LongestChain int     // length of the fullest bucket
	Resizes      int     // rehash rounds since construction or Clear
}
