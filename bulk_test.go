package obtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendSortedIntoEmptyTree(t *testing.T) {
	tr := NewOrdered[int, string]()
	items := []KV[int, string]{{Key: 1, Payload: "a"}, {Key: 2, Payload: "b"}, {Key: 3, Payload: "c"}}
	tr, err := tr.AppendSorted(items...)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Len())
	require.NoError(t, tr.Check())
}

func TestAppendSortedZeroItemsIsNoOp(t *testing.T) {
	tr := buildOrdered(t, 4, 5)
	tr2, err := tr.AppendSorted()
	require.NoError(t, err)
	require.Equal(t, tr.Len(), tr2.Len())
}

func TestAppendSortedRejectsOutOfOrderAgainstExistingMax(t *testing.T) {
	tr := buildOrdered(t, 4, 10)
	before := tr
	_, err := tr.AppendSorted(KV[int, int]{Key: 5, Payload: 5})
	require.ErrorIs(t, err, ErrOutOfOrder)
	require.Equal(t, 10, before.Len())
}

func TestAppendSortedRejectsOutOfOrderWithinBatch(t *testing.T) {
	tr := NewOrdered[int, int]()
	_, err := tr.AppendSorted(
		KV[int, int]{Key: 1, Payload: 1},
		KV[int, int]{Key: 3, Payload: 3},
		KV[int, int]{Key: 2, Payload: 2},
	)
	require.ErrorIs(t, err, ErrOutOfOrder)
}

func TestAppendSortedRejectsDuplicateWithinBatch(t *testing.T) {
	tr := NewOrdered[int, int]()
	_, err := tr.AppendSorted(
		KV[int, int]{Key: 1, Payload: 1},
		KV[int, int]{Key: 1, Payload: 2},
	)
	require.ErrorIs(t, err, ErrOutOfOrder)
}

func TestAppendSortedLargeBatchProducesValidTree(t *testing.T) {
	tr, err := NewOrder[int, int](5, Less[int]())
	require.NoError(t, err)
	items := make([]KV[int, int], 0, 2000)
	for i := 0; i < 2000; i++ {
		items = append(items, KV[int, int]{Key: i, Payload: i * 2})
	}
	tr, err = tr.AppendSorted(items...)
	require.NoError(t, err)
	require.NoError(t, tr.Check())
	require.Equal(t, 2000, tr.Len())
	for i := 0; i < 2000; i += 137 {
		v, ok := tr.Get(i)
		require.True(t, ok)
		require.Equal(t, i*2, v)
	}
}

func TestAppendSortedIncrementally(t *testing.T) {
	tr, err := NewOrder[int, int](4, Less[int]())
	require.NoError(t, err)
	for i := 0; i < 300; i++ {
		tr, err = tr.AppendSorted(KV[int, int]{Key: i, Payload: i})
		require.NoErrorf(t, err, "append %d", i)
	}
	require.NoError(t, tr.Check())
	require.Equal(t, 300, tr.Len())
	it := tr.Iterator()
	prev := -1
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		require.Greater(t, k, prev)
		prev = k
	}
}
