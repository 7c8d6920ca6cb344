package obtree

// splinter carries a promoted separator and its new right sibling one level
// up the tree after a child split.
type splinter[K, V any] struct {
	key     K
	payload V
	right   node[K, V]
}

// Insert adds key with the given payload. It returns ErrKeyExists, unchanged,
// if key is already present; use Set to overwrite instead.
func (t Tree[K, V]) Insert(key K, payload V) (Tree[K, V], error) {
	if t.root == nil {
		return t.withRoot(makeLeaf([]K{key}, []V{payload})), nil
	}
	newRoot, spl, _, _, err := insertAndSplit(t.cfg, t.root, key, payload, false)
	if err != nil {
		return t, err
	}
	if spl != nil {
		tracer().Debugf("obtree: root split, height grows by one")
		newRoot = t.rootFromSplinter(newRoot, spl.key, spl.payload, spl.right)
	}
	return t.withRoot(newRoot), nil
}

// Set inserts key with the given payload, overwriting any existing payload.
// It reports the previous payload and whether key was already present.
func (t Tree[K, V]) Set(key K, payload V) (Tree[K, V], V, bool) {
	if t.root == nil {
		var zero V
		return t.withRoot(makeLeaf([]K{key}, []V{payload})), zero, false
	}
	newRoot, spl, old, existed, err := insertAndSplit(t.cfg, t.root, key, payload, true)
	assert(err == nil, "Set: replace path cannot report an error")
	if spl != nil {
		tracer().Debugf("obtree: root split, height grows by one")
		newRoot = t.rootFromSplinter(newRoot, spl.key, spl.payload, spl.right)
	}
	return t.withRoot(newRoot), old, existed
}

// insertAndSplit inserts key/payload into the subtree rooted at n, cloning
// nodes on the path down, and returns the (possibly split) replacement for n
// along with a splinter to be absorbed by the parent, if n overflowed.
//
// When replace is false and key is already present, n is returned unchanged
// alongside ErrKeyExists; callers must not use the returned node in that
// case except to discard it.
func insertAndSplit[K, V any](cfg config[K], n node[K, V], key K, payload V, replace bool) (node[K, V], *splinter[K, V], V, bool, error) {
	var zero V
	switch n := n.(type) {
	case *leaf[K, V]:
		i, match := slotOf(cfg.less, n.keys, key)
		if match {
			if !replace {
				return n, nil, zero, false, ErrKeyExists
			}
			old := n.payloads[i]
			nl := cloneLeaf(n)
			nl.payloads[i] = payload
			return nl, nil, old, true, nil
		}
		nl := cloneLeaf(n)
		nl.keys = insertAt(nl.keys, i, key)
		nl.payloads = insertAt(nl.payloads, i, payload)
		if leafOverflow(cfg, nl) {
			left, sepKey, sepPayload, right := splitLeaf(nl)
			return left, &splinter[K, V]{key: sepKey, payload: sepPayload, right: right}, zero, false, nil
		}
		return nl, nil, zero, false, nil

	case *inner[K, V]:
		i, match := slotOf(cfg.less, n.keys, key)
		if match {
			if !replace {
				return n, nil, zero, false, ErrKeyExists
			}
			old := n.payloads[i]
			nin := cloneInner(n)
			nin.payloads[i] = payload
			return nin, nil, old, true, nil
		}
		childNew, childSpl, old, existed, err := insertAndSplit(cfg, n.children[i], key, payload, replace)
		if err != nil {
			return n, nil, zero, false, err
		}
		nin := cloneInner(n)
		nin.children[i] = childNew
		if childSpl == nil {
			recomputeCount(nin)
			return nin, nil, old, existed, nil
		}
		nin.keys = insertAt(nin.keys, i, childSpl.key)
		nin.payloads = insertAt(nin.payloads, i, childSpl.payload)
		nin.children = insertAt(nin.children, i+1, childSpl.right)
		recomputeCount(nin)
		if innerOverflow(cfg, nin) {
			left, sepKey, sepPayload, right := splitInner(nin)
			return left, &splinter[K, V]{key: sepKey, payload: sepPayload, right: right}, old, existed, nil
		}
		return nin, nil, old, existed, nil

	default:
		panic("obtree: unknown node type")
	}
}
