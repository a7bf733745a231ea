// Package dynamic solves recursively defined problems without recursion.
//
// A Task describes how to solve one goal in terms of other goals. Instead of
// calling itself, it asks Subtasks for the solution of each sub-goal; when a
// solution is not known yet, Subtasks returns a *DependencyError and the task
// returns it. Execute then solves the requested goal first and replays the
// original task from the beginning, which now finds its dependency in the
// store. The resolution chain lives on an explicit stack, so arbitrarily deep
// problems never grow the goroutine stack, and every goal is solved at most
// once.
//
// Because a task is replayed once per missing dependency, it must be cheap to
// re-enter up to the point where it asks for sub-goals. Tasks that need several
// sub-goals should call Subtasks.Precheck with all of them before doing any real
// work.
package dynamic

import (
	"iter"
	"slices"
)

// Task solves a single goal, requesting the solutions of other goals through sub.
//
// Solve returns the goal's solution, the *DependencyError returned by sub for a
// goal that is not solved yet, or any other error to abort the whole execution.
type Task[K comparable, V any] interface {
	Solve(goal K, sub Subtasks[K, V]) (V, error)
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc[K comparable, V any] func(goal K, sub Subtasks[K, V]) (V, error)

// Solve implements Task.
func (f TaskFunc[K, V]) Solve(goal K, sub Subtasks[K, V]) (V, error) {
	return f(goal, sub)
}

// StatefulTask is a Task with scratch state that survives replays of the same goal.
// The executor allocates a zero S the first time a goal is attempted and discards it
// once the goal is solved.
type StatefulTask[K comparable, V, S any] interface {
	Solve(goal K, sub Subtasks[K, V], state *S) (V, error)
}

// Subtasks gives a task access to the solutions of other goals.
type Subtasks[K comparable, V any] interface {
	// Solve returns the known solution for goal, or a *DependencyError for it.
	Solve(goal K) (V, error)

	// Precheck returns a *DependencyError for the first goal without a known
	// solution, or nil if all of them are solved.
	Precheck(goals ...K) error

	// PrecheckSeq is Precheck over a sequence.
	PrecheckSeq(goals iter.Seq[K]) error
}

type subtasker[K comparable, V any] struct {
	store Store[K, V]
}

func (s *subtasker[K, V]) Solve(goal K) (V, error) {
	solution, ok := s.store.Get(goal)
	if !ok {
		return solution, &DependencyError[K]{Goal: goal}
	}
	return solution, nil
}

func (s *subtasker[K, V]) Precheck(goals ...K) error {
	return s.PrecheckSeq(slices.Values(goals))
}

func (s *subtasker[K, V]) PrecheckSeq(goals iter.Seq[K]) error {
	for goal := range goals {
		if !s.store.Contains(goal) {
			return &DependencyError[K]{Goal: goal}
		}
	}
	return nil
}

// Execute solves goal with task, memoizing every solved goal in store.
//
// The store may be empty or pre-seeded. The initial goal is always attempted,
// even if store already holds a solution for it; its solution is recorded in the
// store before it is returned.
//
// Execute returns a *TaskError if the task fails, or a *CircularDependencyError if
// a goal is requested while it is still waiting on its own dependencies.
func Execute[K comparable, V any](goal K, task Task[K, V], store Store[K, V], opts ...Option[K]) (V, error) {
	return execute(goal, task.Solve, store, opts)
}

// ExecuteStateful is Execute for tasks that keep scratch state between replays.
func ExecuteStateful[K comparable, V, S any](
	goal K,
	task StatefulTask[K, V, S],
	store Store[K, V],
	opts ...Option[K],
) (V, error) {
	states := make(map[K]*S)
	attempt := func(current K, sub Subtasks[K, V]) (V, error) {
		state, ok := states[current]
		if !ok {
			state = new(S)
			states[current] = state
		}
		solution, err := task.Solve(current, sub, state)
		if err == nil {
			delete(states, current)
		}
		return solution, err
	}
	return execute(goal, attempt, store, opts)
}

// SolveAll solves goal with task using a fresh HashStore.
func SolveAll[K comparable, V any](goal K, task Task[K, V], opts ...Option[K]) (V, error) {
	return Execute(goal, task, NewHashStore[K, V](), opts...)
}

func execute[K comparable, V any](
	goal K,
	attempt func(K, Subtasks[K, V]) (V, error),
	store Store[K, V],
	opts []Option[K],
) (V, error) {
	o := newOptions(opts)
	sub := &subtasker[K, V]{store: store}
	stack := newDependencyStack[K]()
	current := goal

	for {
		o.observer.Attempt(current)

		solution, err := attempt(current, sub)
		if err == nil {
			o.observer.Resolve(current, stack.len())
			if _, replaced := store.Add(current, solution); replaced {
				o.observer.Overwrite(current)
			}

			parent, ok := stack.pop()
			if !ok {
				return solution, nil
			}
			current = parent
			continue
		}

		var zero V
		dependency, ok := DependencyOf[K](err)
		if !ok {
			return zero, &TaskError[K]{Goal: current, Err: err}
		}

		stack.push(current)
		if stack.contains(dependency) {
			return zero, &CircularDependencyError[K]{
				Goal:  dependency,
				Chain: stack.chainFrom(dependency),
			}
		}

		o.observer.Descend(current, dependency)
		current = dependency
	}
}

// dependencyStack holds the goals waiting on a dependency, innermost last.
// The position index makes the cycle check constant time.
type dependencyStack[K comparable] struct {
	goals    []K
	position map[K]int
}

func newDependencyStack[K comparable]() *dependencyStack[K] {
	return &dependencyStack[K]{position: make(map[K]int)}
}

func (s *dependencyStack[K]) len() int {
	return len(s.goals)
}

func (s *dependencyStack[K]) push(goal K) {
	s.position[goal] = len(s.goals)
	s.goals = append(s.goals, goal)
}

func (s *dependencyStack[K]) pop() (K, bool) {
	var zero K
	if len(s.goals) == 0 {
		return zero, false
	}
	goal := s.goals[len(s.goals)-1]
	s.goals = s.goals[:len(s.goals)-1]
	delete(s.position, goal)
	return goal, true
}

func (s *dependencyStack[K]) contains(goal K) bool {
	_, ok := s.position[goal]
	return ok
}

// chainFrom returns the stacked goals from goal to the top, followed by goal again.
func (s *dependencyStack[K]) chainFrom(goal K) []K {
	start, ok := s.position[goal]
	if !ok {
		return nil
	}
	chain := make([]K, 0, len(s.goals)-start+1)
	chain = append(chain, s.goals[start:]...)
	return append(chain, goal)
}
