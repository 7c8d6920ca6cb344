package obtree

// node is either a *leaf or an *inner, both holding keys of type K and
// payloads of type V. Internal nodes hold exactly len(keys)+1 children.
type node[K, V any] interface {
	isLeaf() bool
	// count returns the number of keys in this subtree, including this
	// node's own keys.
	count() int
}

type leaf[K, V any] struct {
	keys     []K
	payloads []V
}

func (l *leaf[K, V]) isLeaf() bool { return true }

// leaves never cache a count: it is always len(keys), so there is nothing to
// keep in sync.
func (l *leaf[K, V]) count() int { return len(l.keys) }

type inner[K, V any] struct {
	keys     []K
	payloads []V
	children []node[K, V]
	// n caches keys.length + sum of children counts; recomputeCount keeps it
	// exact after every mutation.
	n int
}

func (in *inner[K, V]) isLeaf() bool { return false }
func (in *inner[K, V]) count() int   { return in.n }

func makeLeaf[K, V any](keys []K, payloads []V) *leaf[K, V] {
	return &leaf[K, V]{keys: keys, payloads: payloads}
}

func makeInner[K, V any](keys []K, payloads []V, children []node[K, V]) *inner[K, V] {
	in := &inner[K, V]{keys: keys, payloads: payloads, children: children}
	recomputeCount(in)
	return in
}

// recomputeCount sums direct children's counts. Since a node has at most
// order children, this is O(order), not O(subtree size).
func recomputeCount[K, V any](in *inner[K, V]) {
	n := len(in.keys)
	for _, c := range in.children {
		n += c.count()
	}
	in.n = n
}
