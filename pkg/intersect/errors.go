package intersect

import "fmt"

// OverflowError is the panic value raised when a hit list is full
type OverflowError struct {
	Capacity int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("intersect: hit list is full (capacity %d), increase the hit list capacity", e.Capacity)
}

// RangeError is the panic value raised on out-of-range hit list access
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("intersect: index %d out of range for hit list of length %d", e.Index, e.Len)
}
