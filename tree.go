package obtree

import "fmt"

// Tree is a persistent, order-statistic B-tree mapping keys of type K to
// payloads of type V.
//
// A Tree is a plain value: assigning or passing one duplicates the handle,
// not the underlying nodes. Every mutating method returns a new Tree and
// leaves its receiver untouched; nodes on the edited path are cloned, nodes
// off it are shared between the old and new trees.
//
// The zero Tree is not usable; construct one with New, NewOrdered, or
// NewOrder.
type Tree[K, V any] struct {
	cfg  config[K]
	root node[K, V]
}

// New creates an empty tree using the default fanout and the given
// comparison function.
func New[K, V any](less LessFunc[K]) (Tree[K, V], error) {
	return NewOrder[K, V](0, less)
}

// NewOrdered creates an empty tree for a key type with a natural ordering,
// using the default fanout.
func NewOrdered[K interface{ ~int | ~int64 | ~float64 | ~string }, V any]() Tree[K, V] {
	t, err := New[K, V](func(a, b K) bool { return a < b })
	assert(err == nil, "NewOrdered: default construction cannot fail")
	return t
}

// NewOrder creates an empty tree with an explicit fanout. order must be >= 3;
// order == 0 selects the default, cache-tuned fanout.
func NewOrder[K, V any](order int, less LessFunc[K]) (Tree[K, V], error) {
	cfg := config[K]{order: order, less: less}
	if err := cfg.validate(); err != nil {
		return Tree[K, V]{}, err
	}
	return Tree[K, V]{cfg: cfg.normalized()}, nil
}

// Len returns the number of keys stored in the tree.
func (t Tree[K, V]) Len() int {
	if t.root == nil {
		return 0
	}
	return t.root.count()
}

// IsEmpty reports whether the tree holds no keys.
func (t Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Order returns the tree's fixed fanout.
func (t Tree[K, V]) Order() int {
	return t.cfg.order
}

// maxKey returns the tree's largest key. It panics if the tree is empty;
// callers must check IsEmpty first.
func (t Tree[K, V]) maxKey() K {
	assert(t.root != nil, "maxKey called on empty tree")
	n := t.root
	for {
		switch cur := n.(type) {
		case *leaf[K, V]:
			return cur.keys[len(cur.keys)-1]
		case *inner[K, V]:
			n = cur.children[len(cur.children)-1]
		default:
			panic("obtree: unknown node type")
		}
	}
}

func (t Tree[K, V]) withRoot(root node[K, V]) Tree[K, V] {
	return Tree[K, V]{cfg: t.cfg, root: root}
}

func (t Tree[K, V]) rootFromSplinter(left node[K, V], sepKey K, sepPayload V, right node[K, V]) node[K, V] {
	return makeInner[K, V]([]K{sepKey}, []V{sepPayload}, []node[K, V]{left, right})
}

// normalizeRoot collapses a root that structurally decayed after deletion:
// an internal root with a single child is replaced by that child, repeated
// until the root is a leaf or has at least two children. An internal root
// with zero keys and zero children never occurs; an empty leaf root is
// represented as a nil root instead.
func normalizeRoot[K, V any](root node[K, V]) node[K, V] {
	for {
		in, ok := root.(*inner[K, V])
		if !ok {
			return root
		}
		if len(in.children) != 1 {
			return root
		}
		root = in.children[0]
	}
}

func (t Tree[K, V]) String() string {
	return fmt.Sprintf("Tree[order=%d, len=%d]", t.cfg.order, t.Len())
}
