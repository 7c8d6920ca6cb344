package obtree

import "testing"

func TestIndexAtAndRank(t *testing.T) {
	idx := IndexAt(5)
	if idx.Rank() != 5 {
		t.Fatalf("got %d want 5", idx.Rank())
	}
}

func TestIndexEqualAndLess(t *testing.T) {
	a, b := IndexAt(3), IndexAt(5)
	if a.Equal(b) {
		t.Fatalf("distinct ranks reported equal")
	}
	if !a.Less(b) {
		t.Fatalf("expected a < b")
	}
	if b.Less(a) {
		t.Fatalf("expected b not < a")
	}
	if !a.Equal(IndexAt(3)) {
		t.Fatalf("expected equal ranks")
	}
}

func TestIndexNextPrev(t *testing.T) {
	idx := IndexAt(5)
	if idx.Next().Rank() != 6 {
		t.Fatalf("got %d want 6", idx.Next().Rank())
	}
	if idx.Prev().Rank() != 4 {
		t.Fatalf("got %d want 4", idx.Prev().Rank())
	}
}

func TestIndexAdvance(t *testing.T) {
	idx := IndexAt(5)
	if idx.Advance(3).Rank() != 8 {
		t.Fatalf("got %d want 8", idx.Advance(3).Rank())
	}
	if idx.Advance(-10).Rank() != -5 {
		t.Fatalf("got %d want -5", idx.Advance(-10).Rank())
	}
}

func TestIndexAdvanceLimitedClamps(t *testing.T) {
	idx := IndexAt(5)
	if got := idx.AdvanceLimited(-100, 10).Rank(); got != 0 {
		t.Fatalf("got %d want 0", got)
	}
	if got := idx.AdvanceLimited(100, 10).Rank(); got != 10 {
		t.Fatalf("got %d want 10", got)
	}
	if got := idx.AdvanceLimited(1, 10).Rank(); got != 6 {
		t.Fatalf("got %d want 6", got)
	}
}

func TestIndexDistance(t *testing.T) {
	a, b := IndexAt(3), IndexAt(8)
	if a.Distance(b) != 5 {
		t.Fatalf("got %d want 5", a.Distance(b))
	}
	if b.Distance(a) != -5 {
		t.Fatalf("got %d want -5", b.Distance(a))
	}
}

func TestIndexInBounds(t *testing.T) {
	if !IndexAt(0).InBounds(1) {
		t.Fatalf("rank 0 should be in bounds for length 1")
	}
	if IndexAt(1).InBounds(1) {
		t.Fatalf("rank 1 should be out of bounds for length 1")
	}
	if IndexAt(-1).InBounds(5) {
		t.Fatalf("negative rank should never be in bounds")
	}
}
