package sparse_test

import (
	"testing"

	"github.com/automatalab/regexfsm/internal/sparse"
)

func TestInsertAndContains(t *testing.T) {
	s := sparse.New(8)

	if s.Contains(3) {
		t.Fatal("expected 3 to be absent before insertion")
	}
	s.Insert(3)
	if !s.Contains(3) {
		t.Error("expected 3 to be present after insertion")
	}
	if s.Contains(4) {
		t.Error("expected 4 to remain absent")
	}
}

func TestInsertIsIdempotent(t *testing.T) {
	s := sparse.New(4)
	s.Insert(1)
	s.Insert(1)
	s.Insert(1)

	values := s.Values()
	if len(values) != 1 || values[0] != 1 {
		t.Errorf("expected a single value [1], got %v", values)
	}
}

func TestValuesPreservesInsertionOrder(t *testing.T) {
	s := sparse.New(10)
	order := []uint32{5, 1, 9, 2}
	for _, v := range order {
		s.Insert(v)
	}

	values := s.Values()
	if len(values) != len(order) {
		t.Fatalf("expected %d values, got %d", len(order), len(values))
	}
	for i, v := range order {
		if values[i] != v {
			t.Errorf("position %d: expected %d, got %d", i, v, values[i])
		}
	}
}

func TestContainsOutOfRangeIsFalse(t *testing.T) {
	s := sparse.New(2)
	if s.Contains(100) {
		t.Error("expected an out-of-capacity value to report absent rather than panic")
	}
}

func TestEmptySetHasNoValues(t *testing.T) {
	s := sparse.New(5)
	if len(s.Values()) != 0 {
		t.Errorf("expected a fresh Set to be empty, got %v", s.Values())
	}
}

func TestStaleIndexDoesNotCauseFalsePositive(t *testing.T) {
	// Regression check for the classic sparse-set bug: a value's index
	// slot can hold leftover data from a different Set or an earlier
	// (never-taken) code path. Contains must cross-check member[index[v]]
	// rather than trusting index[v] alone.
	a := sparse.New(16)
	a.Insert(5)

	b := sparse.New(16)
	if b.Contains(5) {
		t.Error("a fresh Set must not appear to contain a value never inserted into it")
	}
}
