package hashtable_test

import (
	"math"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/lvhash/hashtable"
	"github.com/stretchr/testify/assert"
)

// TestStringHash_Stable pins StringHash to xxHash64.
func TestStringHash_Stable(t *testing.T) {
	for _, s := range []string{"", "a", "hello, world"} {
		assert.Equal(t, xxhash.Sum64String(s), hashtable.StringHash(s), "StringHash(%q)", s)
		assert.Equal(t, hashtable.StringHash(s), hashtable.StringHash(s))
	}
	assert.NotEqual(t, hashtable.StringHash("a"), hashtable.StringHash("b"))
}

// TestIdentityHash covers signed and unsigned integer keys.
func TestIdentityHash(t *testing.T) {
	assert.Equal(t, uint64(0), hashtable.IdentityHash(0))
	assert.Equal(t, uint64(42), hashtable.IdentityHash(uint8(42)))
	assert.Equal(t, uint64(math.MaxUint64), hashtable.IdentityHash(int64(-1)))
}

// TestNegativeIdentityKeys ensures wrapped negative hashes still index in range.
func TestNegativeIdentityKeys(t *testing.T) {
	tbl := newIdentityTable[string](Cap3)
	for k := -20; k < 0; k++ {
		tbl.Put(k, "neg")
	}
	assert.Equal(t, 20, tbl.Count())
	for k := -20; k < 0; k++ {
		assert.True(t, tbl.Contains(k), "key %d", k)
	}
}

// TestNewWithHasher_NilFallsBack selects the default hasher for a nil argument.
func TestNewWithHasher_NilFallsBack(t *testing.T) {
	tbl := hashtable.NewWithHasher[string, int](Cap1, nil)
	tbl.Put("a", 1)
	v, ok := tbl.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

// TestCollidingHasher forces every key into one chain.
func TestCollidingHasher(t *testing.T) {
	constant := func(string) uint64 { return 7 }
	tbl := hashtable.NewWithHasher[string, int](hashtable.DefaultCapacity, constant)
	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	for i, k := range keys {
		tbl.Put(k, i)
	}
	s := tbl.Stats()
	assert.Equal(t, len(keys), s.LongestChain)
	assert.Equal(t, s.Capacity-1, s.EmptyBuckets)

	assert.True(t, tbl.Remove("e"))
	for i, k := range keys {
		v, ok := tbl.Get(k)
		if k == "e" {
			assert.False(t, ok)
			continue
		}
		assert.True(t, ok, k)
		assert.Equal(t, i, v, k)
	}
}
