package obtree

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedProperty -count=1

func runRandomSequence(t *testing.T, seed int64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	tr, err := NewOrder[int, int](4, Less[int]())
	if err != nil {
		t.Fatalf("NewOrder failed: %v", err)
	}
	model := map[int]int{}

	modelKeys := func() []int {
		keys := make([]int, 0, len(model))
		for k := range model {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		return keys
	}

	for i := 0; i < steps; i++ {
		switch r.Intn(3) {
		case 0: // insert or set
			key := r.Intn(steps)
			payload := r.Intn(1_000_000)
			if _, existed := model[key]; existed {
				var old int
				var wasThere bool
				tr, old, wasThere = tr.Set(key, payload)
				if !wasThere {
					t.Fatalf("Set reported key %d absent, model has it", key)
				}
				if old != model[key] {
					t.Fatalf("Set returned stale payload %d for key %d, model has %d", old, key, model[key])
				}
			} else {
				var insertErr error
				tr, insertErr = tr.Insert(key, payload)
				if insertErr != nil {
					t.Fatalf("Insert(%d) failed unexpectedly: %v", key, insertErr)
				}
			}
			model[key] = payload

		case 1: // remove
			keys := modelKeys()
			if len(keys) == 0 {
				continue
			}
			key := keys[r.Intn(len(keys))]
			var removed int
			var found bool
			tr, removed, found = tr.Remove(key)
			if !found {
				t.Fatalf("Remove(%d) reported not found, model has it", key)
			}
			if removed != model[key] {
				t.Fatalf("Remove(%d) returned %d, model has %d", key, removed, model[key])
			}
			delete(model, key)

		case 2: // remove by rank
			if tr.Len() == 0 {
				continue
			}
			rank := r.Intn(tr.Len())
			keys := modelKeys()
			wantKey := keys[rank]
			var gotKey int
			var err error
			tr, gotKey, _, err = tr.RemoveAt(IndexAt(rank))
			if err != nil {
				t.Fatalf("RemoveAt(%d) failed unexpectedly: %v", rank, err)
			}
			if gotKey != wantKey {
				t.Fatalf("RemoveAt(%d) returned key %d, model expected %d", rank, gotKey, wantKey)
			}
			delete(model, wantKey)
		}

		if err := tr.Check(); err != nil {
			t.Fatalf("step %d: invariant check failed: %v", i, err)
		}
		if tr.Len() != len(model) {
			t.Fatalf("step %d: length mismatch: tree=%d model=%d", i, tr.Len(), len(model))
		}

		keys := modelKeys()
		it := tr.Iterator()
		for j, want := range keys {
			k, v, ok := it.Next()
			if !ok {
				t.Fatalf("step %d: iterator exhausted early at position %d", i, j)
			}
			if k != want {
				t.Fatalf("step %d: iterator key mismatch at %d: got %d want %d", i, j, k, want)
			}
			if v != model[want] {
				t.Fatalf("step %d: iterator payload mismatch at key %d: got %d want %d", i, k, v, model[want])
			}
			idx, found := tr.IndexOf(k)
			if !found || idx.Rank() != j {
				t.Fatalf("step %d: IndexOf(%d) mismatch: found=%v rank=%d want=%d", i, k, found, idx.Rank(), j)
			}
			atK, atV, atErr := tr.AtRank(j)
			if atErr != nil || atK != k || atV != v {
				t.Fatalf("step %d: AtRank(%d) mismatch: k=%d v=%d err=%v", i, j, atK, atV, atErr)
			}
		}
		if _, _, ok := it.Next(); ok {
			t.Fatalf("step %d: iterator produced more keys than the model has", i)
		}
	}
}

func TestRandomizedProperty(t *testing.T) {
	seeds := []int64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatInt(seed, 10), func(t *testing.T) {
			runRandomSequence(t, seed, 300)
		})
	}
}

func TestRandomizedPropertySmallOrders(t *testing.T) {
	for order := 3; order <= 6; order++ {
		order := order
		t.Run("order_"+strconv.Itoa(order), func(t *testing.T) {
			tr, err := NewOrder[int, int](order, Less[int]())
			if err != nil {
				t.Fatalf("NewOrder(%d) failed: %v", order, err)
			}
			r := rand.New(rand.NewSource(int64(order)))
			model := map[int]int{}
			for i := 0; i < 150; i++ {
				key := r.Intn(80)
				if _, existed := model[key]; !existed {
					tr, err = tr.Insert(key, key)
					if err != nil {
						t.Fatalf("Insert(%d) failed: %v", key, err)
					}
					model[key] = key
				}
				if err := tr.Check(); err != nil {
					t.Fatalf("order %d, step %d: invariant check failed: %v", order, i, err)
				}
			}
			if tr.Len() != len(model) {
				t.Fatalf("order %d: length mismatch: tree=%d model=%d", order, tr.Len(), len(model))
			}
		})
	}
}
