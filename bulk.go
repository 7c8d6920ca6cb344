package obtree

// AppendSorted appends items to the tree in the order given. Every key must
// be strictly greater than the tree's current maximum key and than every
// preceding key in items; violating this returns ErrOutOfOrder and leaves
// the tree unchanged.
//
// Appending m items this way costs O(m + log n) rather than the O(m log n)
// that m individual Insert calls would cost: the rightmost root-to-leaf path
// is cloned once, mutated directly for each item, and its cached counts are
// repaired in a single bottom-up pass at the end.
func (t Tree[K, V]) AppendSorted(items ...KV[K, V]) (Tree[K, V], error) {
	if len(items) == 0 {
		return t, nil
	}
	less := t.cfg.less
	if !t.IsEmpty() && !less(t.maxKey(), items[0].Key) {
		return t, ErrOutOfOrder
	}
	for i := 1; i < len(items); i++ {
		if !less(items[i-1].Key, items[i].Key) {
			return t, ErrOutOfOrder
		}
	}

	path := extractSpine[K, V](t.root)
	for _, it := range items {
		path = spineAppendOne(t.cfg, path, it.Key, it.Payload)
	}
	return t.withRoot(reassembleSpine[K, V](path)), nil
}

// extractSpine clones the rightmost root-to-leaf path and returns it as
// path[0]==root .. path[len-1]==the rightmost leaf, wiring each cloned inner
// node's last child slot to the next cloned level down. If root is nil, it
// returns a single fresh empty leaf.
func extractSpine[K, V any](root node[K, V]) []node[K, V] {
	if root == nil {
		return []node[K, V]{makeLeaf[K, V](nil, nil)}
	}
	var path []node[K, V]
	cur := root
	for {
		switch n := cur.(type) {
		case *leaf[K, V]:
			cloned := cloneLeaf(n)
			if len(path) > 0 {
				parent := path[len(path)-1].(*inner[K, V])
				parent.children[len(parent.children)-1] = cloned
			}
			path = append(path, cloned)
			return path
		case *inner[K, V]:
			cloned := cloneInner(n)
			if len(path) > 0 {
				parent := path[len(path)-1].(*inner[K, V])
				parent.children[len(parent.children)-1] = cloned
			}
			path = append(path, cloned)
			cur = n.children[len(n.children)-1]
		default:
			panic("obtree: unknown node type")
		}
	}
}

// spineAppendOne appends key/payload to the leaf at the end of path,
// splitting and bubbling the separator up the path as needed, growing path
// with a new root frame if the split reaches the top.
func spineAppendOne[K, V any](cfg config[K], path []node[K, V], key K, payload V) []node[K, V] {
	i := len(path) - 1
	leafNode := path[i].(*leaf[K, V])
	leafNode.keys = append(leafNode.keys, key)
	leafNode.payloads = append(leafNode.payloads, payload)

	for {
		if !spineOverflow[K, V](cfg, path[i]) {
			return path
		}
		left, sepKey, sepPayload, right := split[K, V](path[i])
		path[i] = right
		if i == 0 {
			tracer().Debugf("obtree: spine split reached the root, height grows by one")
			newRoot := makeInner[K, V]([]K{sepKey}, []V{sepPayload}, []node[K, V]{left, right})
			return append([]node[K, V]{newRoot}, path...)
		}
		parent := path[i-1].(*inner[K, V])
		n := len(parent.children)
		parent.children[n-1] = right
		parent.children = insertAt(parent.children, n-1, left)
		parent.keys = append(parent.keys, sepKey)
		parent.payloads = append(parent.payloads, sepPayload)
		recomputeCount(parent)
		i--
	}
}

func spineOverflow[K, V any](cfg config[K], n node[K, V]) bool {
	switch n := n.(type) {
	case *leaf[K, V]:
		return leafOverflow(cfg, n)
	case *inner[K, V]:
		return innerOverflow(cfg, n)
	default:
		panic("obtree: unknown node type")
	}
}

// reassembleSpine repairs cached counts along path, which spineAppendOne
// leaves stale on every append that didn't itself trigger a split, and
// returns the finished root.
func reassembleSpine[K, V any](path []node[K, V]) node[K, V] {
	for i := len(path) - 2; i >= 0; i-- {
		if parent, ok := path[i].(*inner[K, V]); ok {
			recomputeCount(parent)
		}
	}
	return path[0]
}
