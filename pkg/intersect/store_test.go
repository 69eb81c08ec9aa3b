package intersect

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// floatStore is a Store over a plain fixed array, the shape a device-side
// list takes.
type floatStore struct {
	data [4]float64
	n    int
}

func (s *floatStore) Len() int               { return s.n }
func (s *floatStore) Cap() int               { return len(s.data) }
func (s *floatStore) Load(i int) float64     { return s.data[i] }
func (s *floatStore) Store(i int, v float64) { s.data[i] = v }
func (s *floatStore) Resize(n int)           { s.n = n }

func identity(v float64) float64 { return v }

func TestInsertSortedOnArrayStore(t *testing.T) {
	s := &floatStore{}
	for _, v := range []float64{3, -1, 2, 0} {
		InsertSorted[float64](s, v, identity)
	}

	got := s.data[:s.n]
	want := []float64{-1, 0, 2, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("InsertSorted mismatch (-want +got):\n%s", diff)
	}

	i, ok := FirstNonNegative[float64](s, identity)
	if !ok || i != 1 {
		t.Errorf("Expected first non-negative at 1, got %d (found=%v)", i, ok)
	}
}

func TestFirstNonNegativeAllNegative(t *testing.T) {
	s := &floatStore{}
	for _, v := range []float64{-3, -1, -2} {
		InsertSorted[float64](s, v, identity)
	}

	if i, ok := FirstNonNegative[float64](s, identity); ok {
		t.Errorf("Expected no non-negative entry, got index %d", i)
	}
	if i, ok := FirstNonNegative[float64](&floatStore{}, identity); ok {
		t.Errorf("Expected no entry in an empty store, got index %d", i)
	}
}
