package intersect

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type shapeSlice []geometry.Shape

func (s shapeSlice) Shapes() []geometry.Shape { return s }

func ts(l *HitList) []float64 {
	out := make([]float64, l.Len())
	for i := range out {
		out[i] = l.At(i).T
	}
	return out
}

func TestHitList_SortedForAnyInsertionOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	values := []float64{5, -3, 2, 7, 0, -0.5, 2, 11, 4.5, 4}

	for iter := 0; iter < 50; iter++ {
		shuffled := append([]float64(nil), values...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		l := NewHitList(0)
		for _, v := range shuffled {
			l.Add(Hit{T: v})
		}

		if !sort.Float64sAreSorted(ts(l)) {
			t.Fatalf("Expected sorted list for insertion order %v, got %v", shuffled, ts(l))
		}
	}
}

func TestHitList_EqualTKeepsInsertionOrder(t *testing.T) {
	a, b, c := geometry.NewSphere(), geometry.NewSphere(), geometry.NewSphere()

	l := NewHitList(10)
	l.Add(Hit{T: 1, Shape: a})
	l.Add(Hit{T: 0.5})
	l.Add(Hit{T: 1, Shape: b})
	l.Add(Hit{T: 1, Shape: c})

	got := []geometry.Shape{l.At(1).Shape, l.At(2).Shape, l.At(3).Shape}
	want := []geometry.Shape{a, b, c}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected shape %d, got %v", i+1, want[i].ID(), got[i])
		}
	}
}

func TestHitList_Hit(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
		found    bool
	}{
		{"all positive", []float64{2, 1}, 1, true},
		{"some negative", []float64{1, -1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"lowest non-negative", []float64{5, 7, -3, 2}, 2, true},
		{"zero counts", []float64{-1, 0, 3}, 0, true},
		{"empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewHitList(0)
			for _, v := range tt.values {
				l.Add(Hit{T: v})
			}
			h, ok := l.Hit()
			if ok != tt.found {
				t.Fatalf("Expected found=%v, got %v", tt.found, ok)
			}
			if ok && h.T != tt.expected {
				t.Errorf("Expected t=%v, got %v", tt.expected, h.T)
			}
		})
	}
}

func TestHitList_OverflowPanics(t *testing.T) {
	l := NewHitList(3)
	for i := 0; i < 3; i++ {
		l.Add(Hit{T: float64(i)})
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("Expected an error panic value, got %v", r)
		}
		var overflow *OverflowError
		if !errors.As(err, &overflow) {
			t.Fatalf("Expected *OverflowError, got %T", r)
		}
		if overflow.Capacity != 3 {
			t.Errorf("Expected capacity 3, got %d", overflow.Capacity)
		}
		if l.Len() != 3 {
			t.Errorf("Expected list untouched at length 3, got %d", l.Len())
		}
	}()
	l.Add(Hit{T: -1})
	t.Fatal("Expected Add to panic on a full list")
}

func TestHitList_OutOfRangePanics(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"past end", 2},
		{"negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewHitList(5)
			l.Add(Hit{T: 1})
			l.Add(Hit{T: 2})

			defer func() {
				r := recover()
				rangeErr, ok := r.(*RangeError)
				if !ok {
					t.Fatalf("Expected *RangeError, got %T (%v)", r, r)
				}
				if rangeErr.Index != tt.index || rangeErr.Len != 2 {
					t.Errorf("Expected index %d len 2, got %+v", tt.index, rangeErr)
				}
			}()
			l.At(tt.index)
			t.Fatal("Expected At to panic")
		})
	}
}

func TestHitList_ResetKeepsCapacity(t *testing.T) {
	l := NewHitList(4)
	l.Add(Hit{T: 1})
	l.Add(Hit{T: 2})
	l.Reset()

	if l.Len() != 0 {
		t.Errorf("Expected empty list, got %d", l.Len())
	}
	if l.Cap() != 4 {
		t.Errorf("Expected capacity 4, got %d", l.Cap())
	}
	if _, ok := l.Hit(); ok {
		t.Error("Expected no hit after reset")
	}
}

func TestIntersect_DefaultWorldShapes(t *testing.T) {
	outer := geometry.NewSphere()
	inner := geometry.NewSphere()
	inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
	l := Intersect(shapeSlice{outer, inner}, ray)

	want := []float64{4, 4.5, 5.5, 6}
	if diff := cmp.Diff(want, ts(l), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Intersect mismatch (-want +got):\n%s", diff)
	}
	if l.At(0).Shape != outer || l.At(1).Shape != inner {
		t.Errorf("Expected outer then inner shape, got %s then %s", l.At(0).Shape.Name(), l.At(1).Shape.Name())
	}
}

func TestIntersect_MissAndReuse(t *testing.T) {
	s := geometry.NewSphere()
	l := NewHitList(8)

	IntersectInto(shapeSlice{s}, core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)), l)
	if l.Len() != 2 {
		t.Fatalf("Expected 2 hits, got %d", l.Len())
	}

	IntersectInto(shapeSlice{s}, core.NewRay(core.Point(0, 0, -5), core.Vector(0, 1, 0)), l)
	if l.Len() != 0 {
		t.Errorf("Expected list reset and empty on a miss, got %v", ts(l))
	}
}

func TestIntersect_OverflowIsFatal(t *testing.T) {
	shapes := shapeSlice{}
	for i := 0; i < 3; i++ {
		shapes = append(shapes, geometry.NewSphere())
	}
	l := NewHitList(5)

	defer func() {
		if _, ok := recover().(*OverflowError); !ok {
			t.Fatal("Expected *OverflowError panic")
		}
	}()
	IntersectInto(shapes, core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)), l)
	t.Fatal("Expected IntersectInto to panic")
}
