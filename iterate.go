package obtree

// frame records progress through one node during in-order iteration: i is
// the index of the next key to emit (or, for a leaf, len(keys) once
// exhausted).
type frame[K, V any] struct {
	n node[K, V]
	i int
}

// Iterator walks a tree's keys in ascending order using an explicit stack,
// rather than recursion, so it can be stepped one key at a time. An Iterator
// is a snapshot: it is unaffected by later edits to the tree it was created
// from, but it cannot be rewound or restarted once exhausted.
type Iterator[K, V any] struct {
	stack []frame[K, V]
}

// Iterator returns a fresh in-order iterator positioned before the first
// key.
func (t Tree[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{}
	if t.root != nil {
		it.descendLeftmost(t.root)
	}
	return it
}

// descendLeftmost pushes n and every leftmost child below it onto the
// stack, so the next Next() call finds the smallest remaining key on top.
func (it *Iterator[K, V]) descendLeftmost(n node[K, V]) {
	for {
		it.stack = append(it.stack, frame[K, V]{n: n, i: 0})
		in, ok := n.(*inner[K, V])
		if !ok {
			return
		}
		n = in.children[0]
	}
}

// Next returns the next key/payload in ascending order, or ok==false once
// iteration is exhausted.
func (it *Iterator[K, V]) Next() (key K, payload V, ok bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		switch n := top.n.(type) {
		case *leaf[K, V]:
			if top.i == len(n.keys) {
				it.stack = it.stack[:len(it.stack)-1]
				continue
			}
			key, payload = n.keys[top.i], n.payloads[top.i]
			top.i++
			return key, payload, true
		case *inner[K, V]:
			if top.i == len(n.keys) {
				it.stack = it.stack[:len(it.stack)-1]
				continue
			}
			key, payload = n.keys[top.i], n.payloads[top.i]
			top.i++
			it.descendLeftmost(n.children[top.i])
			return key, payload, true
		default:
			panic("obtree: unknown node type")
		}
	}
	return key, payload, false
}
