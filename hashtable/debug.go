// File: debug.go
// Role: Human-readable dumps and shape statistics.
// Policy:
//   - Diagnostic only: nothing here mutates the table.
//   - Output order is bucket index order, then chain order.

package hashtable

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// DebugPrint writes every bucket to standard output, one line per bucket:
//
//	0: -> (k, v) -> (k, v)
//	1:
//
// Write errors are discarded; use Fprint to observe them.
func (t *Table[K, V]) DebugPrint() {
	_ = t.Fprint(os.Stdout)
}

// Fprint writes the DebugPrint dump to w.
// It returns the first write error, wrapped.
func (t *Table[K, V]) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, chain := range t.buckets {
		fmt.Fprintf(bw, "%d:", i)
		for _, e := range chain {
			fmt.Fprintf(bw, " -> (%v, %v)", e.Key, e.Value)
		}
		bw.WriteByte('\n')
	}
	// bufio keeps the first error sticky; Flush reports it.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("hashtable: write dump: %w", err)
	}

	return nil
}

// Stats returns a snapshot of the table's size and chain distribution.
// Complexity: O(capacity)
func (t *Table[K, V]) Stats() Stats {
	s := Stats{
		Count:      t.count,
		Capacity:   len(t.buckets),
		LoadFactor: t.LoadFactor(),
		Resizes:    t.resizes,
	}
	for _, chain := range t.buckets {
		switch n := len(chain); {
		case n == 0:
			s.EmptyBuckets++
		case n > s.LongestChain:
			s.LongestChain = n
		}
	}

	return s
}
