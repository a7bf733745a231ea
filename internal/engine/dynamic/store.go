package dynamic

// Store records solved goals for an execution.
//
// The executor only ever adds goals it has just solved, so in a correct run
// Add never replaces an existing entry. Implementations that allow overwrites
// report the previous value so the caller can surface it as a diagnostic.
type Store[K comparable, V any] interface {
	// Add records the solution for goal. It returns the previous solution and
	// true if the goal was already present.
	Add(goal K, solution V) (V, bool)

	// Get returns the known solution for goal, if any.
	Get(goal K) (V, bool)

	// Contains reports whether goal has a known solution.
	Contains(goal K) bool
}

var _ Store[string, int] = (*HashStore[string, int])(nil)

// HashStore is a Store backed by a Go map.
type HashStore[K comparable, V any] struct {
	solutions map[K]V
}

// NewHashStore creates an empty HashStore.
func NewHashStore[K comparable, V any]() *HashStore[K, V] {
	return &HashStore[K, V]{solutions: make(map[K]V)}
}

// Add implements Store.
func (s *HashStore[K, V]) Add(goal K, solution V) (V, bool) {
	previous, ok := s.solutions[goal]
	s.solutions[goal] = solution
	return previous, ok
}

// Get implements Store.
func (s *HashStore[K, V]) Get(goal K) (V, bool) {
	solution, ok := s.solutions[goal]
	return solution, ok
}

// Contains implements Store.
func (s *HashStore[K, V]) Contains(goal K) bool {
	_, ok := s.solutions[goal]
	return ok
}

// Len returns the number of solved goals.
func (s *HashStore[K, V]) Len() int {
	return len(s.solutions)
}
