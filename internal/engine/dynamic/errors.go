package dynamic

import (
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrCircularDependency is matched by errors reporting a goal that depends on itself,
	// directly or transitively.
	ErrCircularDependency = zerr.New("circular dependency")

	// ErrTaskFailed is matched by errors reporting that a task could not solve a goal.
	ErrTaskFailed = zerr.New("solver encountered an error")
)

// DependencyError is the interrupt a task returns when it needs the solution of a goal
// that has not been solved yet. Subtasks produces it; tasks pass it through unchanged
// (or wrapped) and the executor solves Goal before replaying the task.
type DependencyError[K comparable] struct {
	Goal K
}

func (e *DependencyError[K]) Error() string {
	return fmt.Sprintf("goal %v has no known solution yet", e.Goal)
}

// DependencyOf reports the goal requested by err, if err is a dependency interrupt.
func DependencyOf[K comparable](err error) (K, bool) {
	var dep *DependencyError[K]
	if errors.As(err, &dep) {
		return dep.Goal, true
	}
	var zero K
	return zero, false
}

// CircularDependencyError reports a goal that was requested while it was still
// waiting on its own dependencies.
type CircularDependencyError[K comparable] struct {
	// Goal is the goal that was requested a second time.
	Goal K
	// Chain is the resolution path from Goal back to itself.
	Chain []K
}

func (e *CircularDependencyError[K]) Error() string {
	if len(e.Chain) == 0 {
		return fmt.Sprintf("goal %v has a circular dependency on itself", e.Goal)
	}
	return fmt.Sprintf("goal %v has a circular dependency on itself: %s", e.Goal, e.Cycle())
}

// Cycle renders Chain as "a -> b -> a".
func (e *CircularDependencyError[K]) Cycle() string {
	parts := make([]string, len(e.Chain))
	for i, goal := range e.Chain {
		parts[i] = fmt.Sprint(goal)
	}
	return strings.Join(parts, " -> ")
}

// Is matches ErrCircularDependency.
func (e *CircularDependencyError[K]) Is(target error) bool {
	return target == ErrCircularDependency
}

// TaskError wraps an error a task returned for Goal.
type TaskError[K comparable] struct {
	Goal K
	Err  error
}

func (e *TaskError[K]) Error() string {
	return fmt.Sprintf("solver encountered an error on goal %v: %v", e.Goal, e.Err)
}

// Unwrap returns the task's error.
func (e *TaskError[K]) Unwrap() error {
	return e.Err
}

// Is matches ErrTaskFailed.
func (e *TaskError[K]) Is(target error) bool {
	return target == ErrTaskFailed
}
