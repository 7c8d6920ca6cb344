package obtree

import "fmt"

// Check validates every structural invariant a well-formed tree must
// satisfy: consistent key/child counts, occupancy within [minKeys,maxKeys]
// away from the root, ascending keys throughout, uniform leaf depth, and
// exact cached counts. Intended for tests, not for use on a hot path.
func (t Tree[K, V]) Check() error {
	if t.root == nil {
		return nil
	}
	_, _, _, err := t.checkNode(t.root, true)
	return err
}

func (t Tree[K, V]) checkNode(n node[K, V], isRoot bool) (depth int, lo, hi K, err error) {
	switch n := n.(type) {
	case *leaf[K, V]:
		if !isRoot && len(n.keys) < t.cfg.minKeys() {
			return 0, lo, hi, fmt.Errorf("%w: leaf has %d keys, fewer than minimum %d",
				ErrInvalidConfig, len(n.keys), t.cfg.minKeys())
		}
		if len(n.keys) > t.cfg.maxKeys() {
			return 0, lo, hi, fmt.Errorf("%w: leaf has %d keys, more than maximum %d",
				ErrInvalidConfig, len(n.keys), t.cfg.maxKeys())
		}
		if len(n.payloads) != len(n.keys) {
			return 0, lo, hi, fmt.Errorf("%w: leaf has %d keys but %d payloads",
				ErrInvalidConfig, len(n.keys), len(n.payloads))
		}
		if err := checkAscending(t.cfg.less, n.keys); err != nil {
			return 0, lo, hi, err
		}
		if len(n.keys) > 0 {
			lo, hi = n.keys[0], n.keys[len(n.keys)-1]
		}
		return 1, lo, hi, nil

	case *inner[K, V]:
		if !isRoot && len(n.keys) < t.cfg.minKeys() {
			return 0, lo, hi, fmt.Errorf("%w: inner node has %d keys, fewer than minimum %d",
				ErrInvalidConfig, len(n.keys), t.cfg.minKeys())
		}
		if len(n.keys) > t.cfg.maxKeys() {
			return 0, lo, hi, fmt.Errorf("%w: inner node has %d keys, more than maximum %d",
				ErrInvalidConfig, len(n.keys), t.cfg.maxKeys())
		}
		if len(n.payloads) != len(n.keys) {
			return 0, lo, hi, fmt.Errorf("%w: inner node has %d keys but %d payloads",
				ErrInvalidConfig, len(n.keys), len(n.payloads))
		}
		if len(n.children) != len(n.keys)+1 {
			return 0, lo, hi, fmt.Errorf("%w: inner node has %d keys but %d children",
				ErrInvalidConfig, len(n.keys), len(n.children))
		}
		if isRoot && len(n.children) < 2 {
			return 0, lo, hi, fmt.Errorf("%w: root inner node has fewer than two children", ErrInvalidConfig)
		}
		if err := checkAscending(t.cfg.less, n.keys); err != nil {
			return 0, lo, hi, err
		}

		var childDepth, total int
		var prevHi K
		haveLo, havePrevHi := false, false
		for i, child := range n.children {
			cDepth, cLo, cHi, err := t.checkNode(child, false)
			if err != nil {
				return 0, lo, hi, err
			}
			if i == 0 {
				childDepth = cDepth
			} else if cDepth != childDepth {
				return 0, lo, hi, fmt.Errorf("%w: non-uniform leaf depth", ErrInvalidConfig)
			}
			if child.count() > 0 {
				if havePrevHi && !t.cfg.less(prevHi, cLo) {
					return 0, lo, hi, fmt.Errorf("%w: child key range out of order", ErrInvalidConfig)
				}
				if i < len(n.keys) && !t.cfg.less(cHi, n.keys[i]) {
					return 0, lo, hi, fmt.Errorf("%w: child key exceeds its separator", ErrInvalidConfig)
				}
				if i > 0 && !t.cfg.less(n.keys[i-1], cLo) {
					return 0, lo, hi, fmt.Errorf("%w: child key precedes its separator", ErrInvalidConfig)
				}
				if !haveLo {
					lo, haveLo = cLo, true
				}
				prevHi, havePrevHi = cHi, true
			}
			total += child.count()
		}
		total += len(n.keys)
		if total != n.n {
			return 0, lo, hi, fmt.Errorf("%w: cached count %d does not match actual %d",
				ErrInvalidConfig, n.n, total)
		}
		hi = n.keys[len(n.keys)-1]
		if havePrevHi && t.cfg.less(hi, prevHi) {
			hi = prevHi
		}
		if !haveLo {
			lo = n.keys[0]
		}
		return childDepth + 1, lo, hi, nil

	default:
		return 0, lo, hi, fmt.Errorf("%w: unknown node type", ErrInvalidConfig)
	}
}

func checkAscending[K any](less LessFunc[K], keys []K) error {
	for i := 1; i < len(keys); i++ {
		if !less(keys[i-1], keys[i]) {
			return fmt.Errorf("%w: keys out of order", ErrInvalidConfig)
		}
	}
	return nil
}
