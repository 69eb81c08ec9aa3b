// Package intersect collects ray-shape crossings into bounded, t-sorted hit
// lists and selects the visible hit.
package intersect

import "sort"

// Store is the minimal fixed-capacity sequence the sorting and hit selection
// routines operate on. HitList implements it over Go memory; the GPU kernel
// carries the same routines over a device-resident array.
type Store[E any] interface {
	Len() int
	Cap() int
	Load(i int) E
	Store(i int, e E)
	// Resize sets the length; n never exceeds Cap
	Resize(n int)
}

// InsertSorted inserts e keeping the store ascending by key. Entries with an
// equal key keep their insertion order. A full store panics with
// *OverflowError; entries are never dropped.
func InsertSorted[E any](s Store[E], e E, key func(E) float64) {
	n := s.Len()
	if n >= s.Cap() {
		panic(&OverflowError{Capacity: s.Cap()})
	}

	// Upper bound: first index whose key is strictly greater than e's
	k := key(e)
	lo := sort.Search(n, func(i int) bool { return key(s.Load(i)) > k })

	s.Resize(n + 1)
	for i := n; i > lo; i-- {
		s.Store(i, s.Load(i-1))
	}
	s.Store(lo, e)
}

// FirstNonNegative returns the index of the first entry whose key is >= 0.
// The store must already be sorted by key.
func FirstNonNegative[E any](s Store[E], key func(E) float64) (int, bool) {
	n := s.Len()
	i := sort.Search(n, func(i int) bool { return key(s.Load(i)) >= 0 })
	if i == n {
		return 0, false
	}
	return i, true
}
