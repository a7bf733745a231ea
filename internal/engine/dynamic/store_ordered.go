package dynamic

import (
	"cmp"

	"github.com/google/btree"
)

// orderedDegree is the B-tree node degree used by OrderedStore.
const orderedDegree = 16

var _ Store[int, int] = (*OrderedStore[int, int])(nil)

type orderedEntry[K comparable, V any] struct {
	goal     K
	solution V
}

// OrderedStore is a Store backed by a B-tree ordered by goal.
type OrderedStore[K comparable, V any] struct {
	tree *btree.BTreeG[orderedEntry[K, V]]
}

// NewOrderedStore creates an empty OrderedStore using less to order goals.
// less must be a strict weak ordering consistent with goal equality.
func NewOrderedStore[K comparable, V any](less func(a, b K) bool) *OrderedStore[K, V] {
	return &OrderedStore[K, V]{
		tree: btree.NewG[orderedEntry[K, V]](orderedDegree, func(a, b orderedEntry[K, V]) bool {
			return less(a.goal, b.goal)
		}),
	}
}

// NewOrderedStoreOf creates an empty OrderedStore for naturally ordered goals.
func NewOrderedStoreOf[K cmp.Ordered, V any]() *OrderedStore[K, V] {
	return NewOrderedStore[K, V](cmp.Less[K])
}

// Add implements Store.
func (s *OrderedStore[K, V]) Add(goal K, solution V) (V, bool) {
	previous, ok := s.tree.ReplaceOrInsert(orderedEntry[K, V]{goal: goal, solution: solution})
	return previous.solution, ok
}

// Get implements Store.
func (s *OrderedStore[K, V]) Get(goal K) (V, bool) {
	entry, ok := s.tree.Get(orderedEntry[K, V]{goal: goal})
	return entry.solution, ok
}

// Contains implements Store.
func (s *OrderedStore[K, V]) Contains(goal K) bool {
	return s.tree.Has(orderedEntry[K, V]{goal: goal})
}

// Len returns the number of solved goals.
func (s *OrderedStore[K, V]) Len() int {
	return s.tree.Len()
}

// Ascend calls fn for every solved goal in ascending order until fn returns false.
func (s *OrderedStore[K, V]) Ascend(fn func(goal K, solution V) bool) {
	s.tree.Ascend(func(entry orderedEntry[K, V]) bool {
		return fn(entry.goal, entry.solution)
	})
}
