/*
Package obtree implements a persistent, order-statistic B-tree.

The tree maps strictly ordered, unique keys to arbitrary payloads and layers
two things on top of a classical B-tree: every subtree caches its own element
count, so lookup by rank (and the reverse, rank of a key) runs in O(log n)
rather than O(n); and every mutating operation returns a new tree value while
leaving prior copies untouched, sharing storage with them wherever the edit
did not touch it.

Callers needing duplicate keys, range queries, or on-disk persistence are
out of scope; compose those on top of iteration and lookup.
*/
package obtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'obtree'.
func tracer() tracing.Trace {
	return tracing.Select("obtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
