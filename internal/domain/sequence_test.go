package domain

import "testing"

func TestSequenceNextIsStrictlyIncreasing(t *testing.T) {
	seq := NewSequence()

	previous := seq.Next()
	for i := 0; i < 1000; i++ {
		next := seq.Next()
		if next <= previous {
			t.Fatalf("sequence went backwards: %d after %d", next, previous)
		}
		previous = next
	}
}

func TestSequencePairIsConsecutive(t *testing.T) {
	// A frozen clock forces every candidate into the collision path.
	seq := NewSequenceAt(func() int64 { return 42 })

	first, second := seq.Pair()
	if second != first+1 {
		t.Fatalf("expected consecutive pair, got %d and %d", first, second)
	}

	third, fourth := seq.Pair()
	if third <= second {
		t.Fatalf("second pair %d must follow first pair %d", third, second)
	}
	if fourth != third+1 {
		t.Fatalf("expected consecutive pair, got %d and %d", third, fourth)
	}
}

func TestSequenceNextAfterPairDoesNotCollide(t *testing.T) {
	seq := NewSequenceAt(func() int64 { return 42 })

	_, second := seq.Pair()
	if next := seq.Next(); next <= second {
		t.Fatalf("Next() returned %d, already issued up to %d", next, second)
	}
}
