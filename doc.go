// Package lvhash is a small, observable hash-table library: a generic
// separate-chaining container whose capacity, load factor and bucket
// layout can be inspected at any time.
//
// What is in lvhash?
//
//	• hashtable/ — Table[K, V]: Put (insert-or-update), Get (comma-ok),
//	  Remove (no-op on a missing key), automatic growth at load factor 0.7,
//	  DebugPrint/Fprint bucket dumps, Stats, iterators, Clone and Clear.
//	• examples/  — a runnable word-frequency demo.
//
// Why choose lvhash?
//
//   - Predictable – pluggable Hasher[K]; IdentityHash makes placement exact
//   - Inspectable – every bucket can be dumped and measured
//   - Lenient – no error paths in ordinary use: bad capacity is clamped,
//     missing keys are reported, not raised
//
// Quick ASCII picture of a 4-bucket table:
//
//	0: ·
//	1: (1, one) → (5, five)
//	2: (2, two)
//	3: ·
//
// Tables are not safe for concurrent use; guard shared tables with a mutex.
//
//	go get github.com/katalvlaran/lvhash/hashtable
package lvhash
