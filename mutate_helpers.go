package obtree

// cloneNode clones a node one level deep, for path-copy updates: the
// returned node owns its own keys/payloads/children slices, but children
// pointers are still shared with the original until they too are cloned.
func cloneNode[K, V any](n node[K, V]) node[K, V] {
	switch n := n.(type) {
	case *leaf[K, V]:
		return cloneLeaf(n)
	case *inner[K, V]:
		return cloneInner(n)
	default:
		panic("obtree: unknown node type")
	}
}

func cloneLeaf[K, V any](l *leaf[K, V]) *leaf[K, V] {
	return &leaf[K, V]{
		keys:     append([]K(nil), l.keys...),
		payloads: append([]V(nil), l.payloads...),
	}
}

func cloneInner[K, V any](in *inner[K, V]) *inner[K, V] {
	return &inner[K, V]{
		keys:     append([]K(nil), in.keys...),
		payloads: append([]V(nil), in.payloads...),
		children: append([]node[K, V](nil), in.children...),
		n:        in.n,
	}
}

// insertAt inserts values into a slice at idx and returns the result in a
// newly allocated slice; src itself is not modified.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	out := make([]T, 0, len(src)+len(values))
	out = append(out, src[:idx]...)
	out = append(out, values...)
	out = append(out, src[idx:]...)
	return out
}

// removeRange removes the half-open interval [from,to) from a slice.
func removeRange[T any](src []T, from, to int) []T {
	assert(from >= 0 && from <= to && to <= len(src), "removeRange bounds invalid")
	out := make([]T, 0, len(src)-(to-from))
	out = append(out, src[:from]...)
	out = append(out, src[to:]...)
	return out
}

func insertChildAt[K, V any](in *inner[K, V], idx int, child node[K, V]) {
	assert(idx >= 0 && idx <= len(in.children), "insertChildAt index out of range")
	in.children = insertAt(in.children, idx, child)
	recomputeCount(in)
}

func removeChildAt[K, V any](in *inner[K, V], idx int) {
	assert(idx >= 0 && idx < len(in.children), "removeChildAt index out of range")
	in.children = removeRange(in.children, idx, idx+1)
	recomputeCount(in)
}

func leafOverflow[K, V any](cfg config[K], l *leaf[K, V]) bool {
	return len(l.keys) > cfg.maxKeys()
}

func innerOverflow[K, V any](cfg config[K], in *inner[K, V]) bool {
	return len(in.keys) > cfg.maxKeys()
}

func leafUnderflow[K, V any](cfg config[K], l *leaf[K, V]) bool {
	return len(l.keys) < cfg.minKeys()
}

func innerUnderflow[K, V any](cfg config[K], in *inner[K, V]) bool {
	return len(in.keys) < cfg.minKeys()
}

// splitLeaf splits an overflowing leaf per the tree's split primitive: the
// median key/payload is promoted as the separator, the left half keeps
// everything before it, the right half gets everything after.
func splitLeaf[K, V any](l *leaf[K, V]) (left *leaf[K, V], sepKey K, sepPayload V, right *leaf[K, V]) {
	k := len(l.keys)
	m := k / 2
	sepKey, sepPayload = l.keys[m], l.payloads[m]
	left = makeLeaf(append([]K(nil), l.keys[:m]...), append([]V(nil), l.payloads[:m]...))
	right = makeLeaf(append([]K(nil), l.keys[m+1:]...), append([]V(nil), l.payloads[m+1:]...))
	return left, sepKey, sepPayload, right
}

// splitInner is the internal-node counterpart of splitLeaf; it also divides
// the children slice at the same seam. This is the one split primitive used
// by both ordinary insertion and the bulk-append spine walk.
func splitInner[K, V any](in *inner[K, V]) (left *inner[K, V], sepKey K, sepPayload V, right *inner[K, V]) {
	k := len(in.keys)
	m := k / 2
	sepKey, sepPayload = in.keys[m], in.payloads[m]
	left = makeInner(
		append([]K(nil), in.keys[:m]...),
		append([]V(nil), in.payloads[:m]...),
		append([]node[K, V](nil), in.children[:m+1]...),
	)
	right = makeInner(
		append([]K(nil), in.keys[m+1:]...),
		append([]V(nil), in.payloads[m+1:]...),
		append([]node[K, V](nil), in.children[m+1:]...),
	)
	return left, sepKey, sepPayload, right
}

// split dispatches to splitLeaf or splitInner depending on n's dynamic type,
// so callers that only know they have an overflowing node (the bulk-append
// spine walk) can share one call site.
func split[K, V any](n node[K, V]) (left node[K, V], sepKey K, sepPayload V, right node[K, V]) {
	switch n := n.(type) {
	case *leaf[K, V]:
		l, k, v, r := splitLeaf(n)
		return l, k, v, r
	case *inner[K, V]:
		l, k, v, r := splitInner(n)
		return l, k, v, r
	default:
		panic("obtree: unknown node type")
	}
}
