// SPDX-License-Identifier: MIT
// Package hashtable_test contains shared fixtures for hashtable tests.
//
// Purpose:
//   - Keep magic numbers out of test bodies.
//   - Provide identity-hashed tables so bucket placement is predictable.
//   - Snapshot helpers for comparing full traversals.

package hashtable_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvhash/hashtable"
	"github.com/stretchr/testify/require"
)

// Common sizes used across tests.
const (
	Cap0    = 0
	Cap1    = 1
	Cap3    = 3
	Cap5    = 5
	CapNeg  = -7
	CapGrow = 20 // DefaultCapacity after one doubling

	NRandomOps = 5000
	NKeySpace  = 300
	RandomSeed = 42
)

// errBoom is returned by failWriter.
var errBoom = errors.New("boom")

// failWriter rejects every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errBoom }

// newIdentityTable builds an int-keyed table whose key k lands in k % capacity.
func newIdentityTable[V any](capacity int, opts ...hashtable.Option) *hashtable.Table[int, V] {
	return hashtable.NewWithHasher[int, V](capacity, hashtable.IdentityHash[int], opts...)
}

// snapshot collects the full traversal of t into a map.
// It fails the test if a key is yielded twice.
func snapshot[K comparable, V any](t *testing.T, tbl *hashtable.Table[K, V]) map[K]V {
	t.Helper()
	out := make(map[K]V, tbl.Count())
	for k, v := range tbl.All() {
		_, dup := out[k]
		require.False(t, dup, "key %v yielded twice", k)
		out[k] = v
	}

	return out
}

// MustLoadWithin asserts the load-factor ceiling holds.
func MustLoadWithin[K comparable, V any](t *testing.T, tbl *hashtable.Table[K, V], ceiling float64, ctx string) {
	t.Helper()
	require.LessOrEqualf(t, tbl.LoadFactor(), ceiling, "%s: load factor %v over %v (count=%d cap=%d)",
		ctx, tbl.LoadFactor(), ceiling, tbl.Count(), tbl.Capacity())
}
