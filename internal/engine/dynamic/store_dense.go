package dynamic

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Index is the set of key types a DenseStore can hold.
type Index interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

var _ Store[int, int] = (*DenseStore[int, int])(nil)

// DenseStore is a Store for small non-negative integer goals. Solutions live
// in a slice indexed by goal and presence is tracked in a bitset, so Contains
// never touches the solution slice.
type DenseStore[K Index, V any] struct {
	present   *bitset.BitSet
	solutions []V
}

// NewDenseStore creates an empty DenseStore sized for goals in [0, size).
// The store grows if a larger goal is added.
func NewDenseStore[K Index, V any](size int) *DenseStore[K, V] {
	if size < 0 {
		size = 0
	}
	return &DenseStore[K, V]{
		present:   bitset.New(uint(size)),
		solutions: make([]V, size),
	}
}

// Add implements Store. It panics if goal is negative or not below math.MaxInt,
// the largest slice a DenseStore can index.
func (s *DenseStore[K, V]) Add(goal K, solution V) (V, bool) {
	if goal < 0 {
		panic(fmt.Sprintf("dynamic: negative goal %d in dense store", goal))
	}
	if uint64(goal) >= math.MaxInt {
		panic(fmt.Sprintf("dynamic: goal %d too large for dense store", goal))
	}
	i := uint(goal)
	if i >= uint(len(s.solutions)) {
		grown := make([]V, max(i+1, uint(2*len(s.solutions))))
		copy(grown, s.solutions)
		s.solutions = grown
	}

	var previous V
	replaced := s.present.Test(i)
	if replaced {
		previous = s.solutions[i]
	}
	s.solutions[i] = solution
	s.present.Set(i)
	return previous, replaced
}

// Get implements Store.
func (s *DenseStore[K, V]) Get(goal K) (V, bool) {
	if !s.Contains(goal) {
		var zero V
		return zero, false
	}
	return s.solutions[uint(goal)], true
}

// Contains implements Store.
func (s *DenseStore[K, V]) Contains(goal K) bool {
	return goal >= 0 && s.present.Test(uint(goal))
}

// Len returns the number of solved goals.
func (s *DenseStore[K, V]) Len() int {
	return int(s.present.Count()) //nolint:gosec // count is bounded by the slice length
}
