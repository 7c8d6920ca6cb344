package obtree

// Remove deletes key, if present, and reports its former payload.
func (t Tree[K, V]) Remove(key K) (Tree[K, V], V, bool) {
	if t.root == nil {
		var zero V
		return t, zero, false
	}
	newRoot, old, found := removeAndCollapse[K, V](t.cfg, t.root, key)
	if !found {
		var zero V
		return t, zero, false
	}
	return t.withRoot(shrinkRoot[K, V](newRoot)), old, true
}

// RemoveAt deletes the key at the given positional Index and reports it
// along with its payload.
func (t Tree[K, V]) RemoveAt(idx Index) (Tree[K, V], K, V, error) {
	k, _, err := t.AtRank(idx.rank)
	if err != nil {
		var zeroK K
		var zeroV V
		return t, zeroK, zeroV, err
	}
	newT, old, found := t.Remove(k)
	assert(found, "RemoveAt: key located by rank must itself be removable")
	return newT, k, old, nil
}

// shrinkRoot collapses a decayed root, or replaces an emptied leaf root with
// a nil root, so IsEmpty and Len stay correct after the last key is removed.
func shrinkRoot[K, V any](root node[K, V]) node[K, V] {
	before, wasInner := root.(*inner[K, V])
	root = normalizeRoot[K, V](root)
	if wasInner {
		if after, ok := root.(*inner[K, V]); !ok || after != before {
			tracer().Debugf("obtree: root collapsed, height shrinks by one")
		}
	}
	if l, ok := root.(*leaf[K, V]); ok && len(l.keys) == 0 {
		var nilNode node[K, V]
		return nilNode
	}
	return root
}

// removeAndCollapse deletes key from the subtree rooted at n, cloning nodes
// on the path down and rebalancing any child left underflowing minKeys.
func removeAndCollapse[K, V any](cfg config[K], n node[K, V], key K) (node[K, V], V, bool) {
	var zero V
	switch n := n.(type) {
	case *leaf[K, V]:
		i, match := slotOf(cfg.less, n.keys, key)
		if !match {
			return n, zero, false
		}
		nl := cloneLeaf(n)
		old := nl.payloads[i]
		nl.keys = removeRange(nl.keys, i, i+1)
		nl.payloads = removeRange(nl.payloads, i, i+1)
		return nl, old, true

	case *inner[K, V]:
		i, match := slotOf(cfg.less, n.keys, key)
		if match {
			old := n.payloads[i]
			predKey, predPayload, newLeftChild := removeMax[K, V](cfg, n.children[i])
			nin := cloneInner(n)
			nin.keys[i] = predKey
			nin.payloads[i] = predPayload
			nin.children[i] = newLeftChild
			rebalanceChild(cfg, nin, i)
			return nin, old, true
		}
		childNew, old, found := removeAndCollapse[K, V](cfg, n.children[i], key)
		if !found {
			return n, zero, false
		}
		nin := cloneInner(n)
		nin.children[i] = childNew
		rebalanceChild(cfg, nin, i)
		return nin, old, true

	default:
		panic("obtree: unknown node type")
	}
}

// removeMax deletes the largest key from the subtree rooted at n, returning
// it alongside the (possibly rebalanced) replacement for n. Used to find a
// deleted internal key's predecessor.
func removeMax[K, V any](cfg config[K], n node[K, V]) (K, V, node[K, V]) {
	switch n := n.(type) {
	case *leaf[K, V]:
		nl := cloneLeaf(n)
		last := len(nl.keys) - 1
		k, v := nl.keys[last], nl.payloads[last]
		nl.keys = nl.keys[:last]
		nl.payloads = nl.payloads[:last]
		return k, v, nl
	case *inner[K, V]:
		lastIdx := len(n.children) - 1
		k, v, newChild := removeMax[K, V](cfg, n.children[lastIdx])
		nin := cloneInner(n)
		nin.children[lastIdx] = newChild
		rebalanceChild(cfg, nin, lastIdx)
		return k, v, nin
	default:
		panic("obtree: unknown node type")
	}
}

func underflowed[K, V any](cfg config[K], n node[K, V]) bool {
	switch n := n.(type) {
	case *leaf[K, V]:
		return leafUnderflow(cfg, n)
	case *inner[K, V]:
		return innerUnderflow(cfg, n)
	default:
		panic("obtree: unknown node type")
	}
}

func canLend[K, V any](cfg config[K], n node[K, V]) bool {
	switch n := n.(type) {
	case *leaf[K, V]:
		return len(n.keys) > cfg.minKeys()
	case *inner[K, V]:
		return len(n.keys) > cfg.minKeys()
	default:
		panic("obtree: unknown node type")
	}
}

// rebalanceChild restores parent.children[idx]'s occupancy invariant after a
// deletion beneath it, by borrowing a key from an adjacent sibling that can
// spare one, or merging with a sibling otherwise. parent is assumed already
// cloned and owned exclusively by the caller.
func rebalanceChild[K, V any](cfg config[K], parent *inner[K, V], idx int) {
	if !underflowed[K, V](cfg, parent.children[idx]) {
		recomputeCount(parent)
		return
	}
	if idx > 0 && canLend[K, V](cfg, parent.children[idx-1]) {
		rotateRight(cfg, parent, idx-1)
		recomputeCount(parent)
		return
	}
	if idx < len(parent.children)-1 && canLend[K, V](cfg, parent.children[idx+1]) {
		rotateLeft(cfg, parent, idx)
		recomputeCount(parent)
		return
	}
	if idx > 0 {
		mergeChildren(cfg, parent, idx-1)
	} else {
		mergeChildren(cfg, parent, idx)
	}
	recomputeCount(parent)
}

// rotateRight moves the parent's separator key at leftIdx down into
// parent.children[leftIdx+1]'s front slot, and the left sibling's last key
// up to replace it.
func rotateRight[K, V any](cfg config[K], parent *inner[K, V], leftIdx int) {
	switch sib := parent.children[leftIdx].(type) {
	case *leaf[K, V]:
		ls := cloneLeaf(sib)
		child := cloneLeaf(parent.children[leftIdx+1].(*leaf[K, V]))
		last := len(ls.keys) - 1
		borrowedKey, borrowedPayload := ls.keys[last], ls.payloads[last]
		ls.keys = ls.keys[:last]
		ls.payloads = ls.payloads[:last]
		sepKey, sepPayload := parent.keys[leftIdx], parent.payloads[leftIdx]
		child.keys = insertAt(child.keys, 0, sepKey)
		child.payloads = insertAt(child.payloads, 0, sepPayload)
		parent.keys[leftIdx], parent.payloads[leftIdx] = borrowedKey, borrowedPayload
		parent.children[leftIdx], parent.children[leftIdx+1] = ls, child
	case *inner[K, V]:
		ls := cloneInner(sib)
		child := cloneInner(parent.children[leftIdx+1].(*inner[K, V]))
		last := len(ls.keys) - 1
		borrowedKey, borrowedPayload := ls.keys[last], ls.payloads[last]
		borrowedChild := ls.children[len(ls.children)-1]
		ls.keys = ls.keys[:last]
		ls.payloads = ls.payloads[:last]
		ls.children = ls.children[:len(ls.children)-1]
		recomputeCount(ls)
		sepKey, sepPayload := parent.keys[leftIdx], parent.payloads[leftIdx]
		child.keys = insertAt(child.keys, 0, sepKey)
		child.payloads = insertAt(child.payloads, 0, sepPayload)
		child.children = insertAt(child.children, 0, borrowedChild)
		recomputeCount(child)
		parent.keys[leftIdx], parent.payloads[leftIdx] = borrowedKey, borrowedPayload
		parent.children[leftIdx], parent.children[leftIdx+1] = ls, child
	default:
		panic("obtree: unknown node type")
	}
}

// rotateLeft moves the parent's separator key at idx down into
// parent.children[idx]'s back slot, and the right sibling's first key up to
// replace it.
func rotateLeft[K, V any](cfg config[K], parent *inner[K, V], idx int) {
	switch sib := parent.children[idx+1].(type) {
	case *leaf[K, V]:
		rs := cloneLeaf(sib)
		child := cloneLeaf(parent.children[idx].(*leaf[K, V]))
		borrowedKey, borrowedPayload := rs.keys[0], rs.payloads[0]
		rs.keys = rs.keys[1:]
		rs.payloads = rs.payloads[1:]
		sepKey, sepPayload := parent.keys[idx], parent.payloads[idx]
		child.keys = append(child.keys, sepKey)
		child.payloads = append(child.payloads, sepPayload)
		parent.keys[idx], parent.payloads[idx] = borrowedKey, borrowedPayload
		parent.children[idx], parent.children[idx+1] = child, rs
	case *inner[K, V]:
		rs := cloneInner(sib)
		child := cloneInner(parent.children[idx].(*inner[K, V]))
		borrowedKey, borrowedPayload := rs.keys[0], rs.payloads[0]
		borrowedChild := rs.children[0]
		rs.keys = rs.keys[1:]
		rs.payloads = rs.payloads[1:]
		rs.children = rs.children[1:]
		recomputeCount(rs)
		sepKey, sepPayload := parent.keys[idx], parent.payloads[idx]
		child.keys = append(child.keys, sepKey)
		child.payloads = append(child.payloads, sepPayload)
		child.children = append(child.children, borrowedChild)
		recomputeCount(child)
		parent.keys[idx], parent.payloads[idx] = borrowedKey, borrowedPayload
		parent.children[idx], parent.children[idx+1] = child, rs
	default:
		panic("obtree: unknown node type")
	}
}

// mergeChildren folds parent's separator key at leftIdx and the sibling at
// leftIdx+1 into parent.children[leftIdx], then removes the now-absorbed
// separator and sibling slot.
func mergeChildren[K, V any](cfg config[K], parent *inner[K, V], leftIdx int) {
	sepKey, sepPayload := parent.keys[leftIdx], parent.payloads[leftIdx]
	switch l := parent.children[leftIdx].(type) {
	case *leaf[K, V]:
		r := parent.children[leftIdx+1].(*leaf[K, V])
		keys := append(append(append([]K(nil), l.keys...), sepKey), r.keys...)
		payloads := append(append(append([]V(nil), l.payloads...), sepPayload), r.payloads...)
		parent.children[leftIdx] = makeLeaf(keys, payloads)
	case *inner[K, V]:
		r := parent.children[leftIdx+1].(*inner[K, V])
		keys := append(append(append([]K(nil), l.keys...), sepKey), r.keys...)
		payloads := append(append(append([]V(nil), l.payloads...), sepPayload), r.payloads...)
		children := append(append([]node[K, V](nil), l.children...), r.children...)
		parent.children[leftIdx] = makeInner(keys, payloads, children)
	default:
		panic("obtree: unknown node type")
	}
	parent.keys = removeRange(parent.keys, leftIdx, leftIdx+1)
	parent.payloads = removeRange(parent.payloads, leftIdx, leftIdx+1)
	parent.children = removeRange(parent.children, leftIdx+1, leftIdx+2)
}
