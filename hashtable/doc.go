// Package hashtable implements a generic associative container backed by
// separate chaining: an array of independent chains (buckets), each holding
// the entries whose hashed key maps to that slot.
//
// What:
//
//   - Table[K, V]: unique keys, insert-or-update Put, comma-ok Get,
//     no-op-tolerant Remove.
//   - Automatic growth: after any Put the load factor (count / capacity)
//     never exceeds the configured maximum (0.7 by default). A Put that
//     crosses the threshold rehashes every entry into a larger bucket array
//     before returning.
//   - Diagnostics: DebugPrint / Fprint dump every bucket in array order,
//     Stats reports chain-length metrics.
//
// Why:
//   - A small, fully observable hash table whose capacity, load factor and
//     bucket layout can be inspected and asserted on, unlike the builtin map.
//   - Pluggable hashing (Hasher[K]) so that bucket placement is reproducible
//     when needed (IdentityHash, StringHash).
//
// Key Types & Constants:
//
//   - Entry[K, V]: key/value pair stored in a chain
//   - Table[K, V]: the container
//   - Hasher[K]: func(K) uint64, reduced modulo the current capacity
//   - Option / Options: WithMaxLoadFactor, WithGrowthFactor
//   - DefaultCapacity = 10, DefaultMaxLoadFactor = 0.7, DefaultGrowthFactor = 2
//
// Complexity:
//
//   - Put, Get, Contains, Remove: O(1) amortized, O(chain length) worst case
//   - Count, Capacity, LoadFactor: O(1)
//   - resize, Clone, All, Fprint, Stats: O(capacity + count)
//
// Errors:
//
//	The container has no failure modes in ordinary use.
//	  - A capacity below 1 passed to New is clamped to 1.
//	  - Out-of-range options are ignored and the default is kept.
//	  - A missing key is reported through Get's ok result; Remove of a
//	    missing key returns false and changes nothing.
//	Only Fprint returns an error, wrapping the failure of the underlying writer.
//
// Concurrency:
//
//	A Table is not safe for concurrent use. Every method, including the
//	read-only ones, must be serialized by the caller, typically with one
//	sync.Mutex guarding the table, because a resize replaces the whole
//	bucket array in the middle of a Put.
//
// Example:
//
//	t := hashtable.New[string, int](hashtable.DefaultCapacity)
//	t.Put("a", 1)
//	t.Put("a", 2)
//	v, ok := t.Get("a") // 2, true
//	t.Remove("a")
package hashtable
