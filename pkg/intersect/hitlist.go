package intersect

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// DefaultCapacity is the hit list capacity used when none is configured
const DefaultCapacity = 100

// Hit is a crossing at parameter T along a ray. Shape is borrowed from the
// scene and must not be mutated.
type Hit struct {
	T     float64
	Shape geometry.Shape
}

func hitT(h Hit) float64 { return h.T }

// HitList is a fixed-capacity list of hits kept sorted ascending by T.
// A HitList is owned by a single goroutine and reused across rays.
type HitList struct {
	hits  []Hit
	roots []float64 // scratch for LocalIntersect
}

// NewHitList allocates a hit list. capacity <= 0 selects DefaultCapacity.
func NewHitList(capacity int) *HitList {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &HitList{
		hits:  make([]Hit, 0, capacity),
		roots: make([]float64, 0, 8),
	}
}

// Add inserts a hit keeping the list sorted. Panics with *OverflowError when
// the list is full.
func (l *HitList) Add(h Hit) {
	InsertSorted[Hit](hitStore{l}, h, hitT)
}

// Len returns the number of hits
func (l *HitList) Len() int { return len(l.hits) }

// Cap returns the fixed capacity
func (l *HitList) Cap() int { return cap(l.hits) }

// At returns the i-th hit in ascending T order. Panics with *RangeError when
// i is out of range.
func (l *HitList) At(i int) Hit {
	if i < 0 || i >= len(l.hits) {
		panic(&RangeError{Index: i, Len: len(l.hits)})
	}
	return l.hits[i]
}

// Hits returns the sorted hits. The slice aliases the list and is only valid
// until the next mutation.
func (l *HitList) Hits() []Hit { return l.hits }

// Reset empties the list, keeping its storage
func (l *HitList) Reset() {
	clear(l.hits)
	l.hits = l.hits[:0]
}

// Hit returns the visible hit: the first with T >= 0
func (l *HitList) Hit() (Hit, bool) {
	i, ok := FirstNonNegative[Hit](hitStore{l}, hitT)
	if !ok {
		return Hit{}, false
	}
	return l.hits[i], true
}

// hitStore adapts a HitList to Store without widening the HitList API
type hitStore struct{ l *HitList }

func (s hitStore) Len() int           { return len(s.l.hits) }
func (s hitStore) Cap() int           { return cap(s.l.hits) }
func (s hitStore) Load(i int) Hit     { return s.l.hits[i] }
func (s hitStore) Store(i int, h Hit) { s.l.hits[i] = h }
func (s hitStore) Resize(n int)       { s.l.hits = s.l.hits[:n] }

// ShapeSource provides the shapes to intersect against
type ShapeSource interface {
	Shapes() []geometry.Shape
}

// IntersectInto resets list and fills it with every crossing of ray with the
// shapes of src. The ray is transformed into each shape's object space with
// its cached inverse. NaN roots from degenerate input are dropped.
func IntersectInto(src ShapeSource, ray core.Ray, list *HitList) {
	list.Reset()
	for _, s := range src.Shapes() {
		local := ray.Transform(s.Inverse())
		list.roots = s.LocalIntersect(local, list.roots[:0])
		for _, t := range list.roots {
			if math.IsNaN(t) {
				continue
			}
			list.Add(Hit{T: t, Shape: s})
		}
	}
}

// Intersect returns a new hit list with every crossing of ray with src
func Intersect(src ShapeSource, ray core.Ray) *HitList {
	list := NewHitList(DefaultCapacity)
	IntersectInto(src, ray, list)
	return list
}
