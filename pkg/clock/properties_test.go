package clock

import (
	"testing"

	"github.com/google/uuid"
)

// TestVector_Property_MergedFrontierDominatesBoth tests that after observing
// two timestamps the next advance exceeds both of them
func TestVector_Property_MergedFrontierDominatesBoth(t *testing.T) {
	p1 := uuid.New()
	p2 := uuid.New()
	shared := uuid.New()

	tsA := VectorTimestamp[uint64]{p1: 1, shared: 2}
	tsB := VectorTimestamp[uint64]{p2: 3, shared: 1}

	c := NewVector[uint64]()
	c.Observe(tsA)
	c.Observe(tsB)
	merged := c.Advance()

	if merged.Compare(tsA) != After {
		t.Errorf("expected merged %v to dominate %v", merged, tsA)
	}
	if merged.Compare(tsB) != After {
		t.Errorf("expected merged %v to dominate %v", merged, tsB)
	}
	if got := merged.Get(shared); got != 2 {
		t.Errorf("expected shared entry max(2,1)=2, got %d", got)
	}
}

// TestLamport_Property_MergedCounterDominatesBoth is the scalar analogue
func TestLamport_Property_MergedCounterDominatesBoth(t *testing.T) {
	tsA := LamportTimestamp[uint64]{Counter: 9, Process: uuid.New()}
	tsB := LamportTimestamp[uint64]{Counter: 4, Process: uuid.New()}

	c := NewLamport[uint64]()
	c.Observe(tsA)
	c.Observe(tsB)
	merged := c.Advance()

	if !tsA.Less(merged) {
		t.Errorf("expected %v < %v", tsA, merged)
	}
	if !tsB.Less(merged) {
		t.Errorf("expected %v < %v", tsB, merged)
	}
}

// TestVector_Property_CompareIsAntisymmetric tests that swapping the
// operands flips Before/After and preserves Equal/Concurrent
func TestVector_Property_CompareIsAntisymmetric(t *testing.T) {
	p1 := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	p2 := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	pairs := []struct {
		name string
		a    VectorTimestamp[uint64]
		b    VectorTimestamp[uint64]
	}{
		{"ordered", VectorTimestamp[uint64]{p1: 1}, VectorTimestamp[uint64]{p1: 2, p2: 1}},
		{"concurrent", VectorTimestamp[uint64]{p1: 2, p2: 1}, VectorTimestamp[uint64]{p1: 1, p2: 2}},
		{"equal", VectorTimestamp[uint64]{p1: 1, p2: 1}, VectorTimestamp[uint64]{p1: 1, p2: 1}},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			ab := tt.a.Compare(tt.b)
			ba := tt.b.Compare(tt.a)

			switch ab {
			case Before:
				if ba != After {
					t.Errorf("a<b but reversed gave %v", ba)
				}
			case After:
				if ba != Before {
					t.Errorf("a>b but reversed gave %v", ba)
				}
			default:
				if ba != ab {
					t.Errorf("%v is not symmetric: reversed gave %v", ab, ba)
				}
			}
		})
	}
}

// TestVector_Property_BeforeIsTransitive tests transitivity of the
// strict partial order
func TestVector_Property_BeforeIsTransitive(t *testing.T) {
	p1 := uuid.New()
	p2 := uuid.New()

	t1 := VectorTimestamp[uint64]{p1: 1}
	t2 := VectorTimestamp[uint64]{p1: 2, p2: 1}
	t3 := VectorTimestamp[uint64]{p1: 2, p2: 5}

	if !t1.Less(t2) || !t2.Less(t3) {
		t.Fatal("fixture must form a chain")
	}
	if !t1.Less(t3) {
		t.Errorf("expected transitivity: %v < %v", t1, t3)
	}
}

// TestClocks_Property_ObserveOwnTimestampIsANoop tests that feeding a
// clock its own latest timestamp changes nothing
func TestClocks_Property_ObserveOwnTimestampIsANoop(t *testing.T) {
	t.Run("lamport", func(t *testing.T) {
		c := NewLamport[uint64]()
		ts := c.Advance()
		c.Observe(ts)
		next := c.Advance()
		if next.Counter != ts.Counter+1 {
			t.Errorf("expected counter %d, got %d", ts.Counter+1, next.Counter)
		}
	})

	t.Run("vector", func(t *testing.T) {
		c := NewVector[uint64]()
		ts := c.Advance()
		c.Observe(ts)
		next := c.Advance()
		if got := next.Get(c.Process()); got != ts.Get(c.Process())+1 {
			t.Errorf("expected own entry %d, got %d", ts.Get(c.Process())+1, got)
		}
		if len(next) != 1 {
			t.Errorf("expected a single entry, got %v", next)
		}
	})
}
