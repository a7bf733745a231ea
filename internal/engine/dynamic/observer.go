package dynamic

// Observer is notified of executor events. Calls are synchronous and never
// concurrent within a single execution.
type Observer[K comparable] interface {
	// Attempt is called before every invocation of the task.
	Attempt(goal K)
	// Descend is called when parent is suspended to solve dependency first.
	Descend(parent, dependency K)
	// Resolve is called when goal is solved. depth is the number of goals
	// waiting on it, directly or transitively.
	Resolve(goal K, depth int)
	// Overwrite is called when recording goal replaced an existing solution.
	Overwrite(goal K)
}

// Probe receives executor events without the goal keys, for collectors that
// count work across executions with different key types.
type Probe interface {
	Attempt()
	Descend()
	Resolve(depth int)
	Overwrite()
}

// Option configures an execution.
type Option[K comparable] func(*options[K])

type options[K comparable] struct {
	observer Observer[K]
}

func newOptions[K comparable](opts []Option[K]) *options[K] {
	o := &options[K]{}
	for _, opt := range opts {
		opt(o)
	}
	if o.observer == nil {
		o.observer = noopObserver[K]{}
	}
	return o
}

// WithObserver adds an observer to the execution. Observers added by repeated
// options are all notified, in order.
func WithObserver[K comparable](observer Observer[K]) Option[K] {
	return func(o *options[K]) {
		switch existing := o.observer.(type) {
		case nil:
			o.observer = observer
		case observers[K]:
			o.observer = append(existing, observer)
		default:
			o.observer = observers[K]{existing, observer}
		}
	}
}

// WithProbe reports the execution's events to probe.
func WithProbe[K comparable](probe Probe) Option[K] {
	return WithObserver[K](probeObserver[K]{probe: probe})
}

type noopObserver[K comparable] struct{}

func (noopObserver[K]) Attempt(K)      {}
func (noopObserver[K]) Descend(K, K)   {}
func (noopObserver[K]) Resolve(K, int) {}
func (noopObserver[K]) Overwrite(K)    {}

type observers[K comparable] []Observer[K]

func (obs observers[K]) Attempt(goal K) {
	for _, o := range obs {
		o.Attempt(goal)
	}
}

func (obs observers[K]) Descend(parent, dependency K) {
	for _, o := range obs {
		o.Descend(parent, dependency)
	}
}

func (obs observers[K]) Resolve(goal K, depth int) {
	for _, o := range obs {
		o.Resolve(goal, depth)
	}
}

func (obs observers[K]) Overwrite(goal K) {
	for _, o := range obs {
		o.Overwrite(goal)
	}
}

type probeObserver[K comparable] struct {
	probe Probe
}

func (p probeObserver[K]) Attempt(K)              { p.probe.Attempt() }
func (p probeObserver[K]) Descend(K, K)           { p.probe.Descend() }
func (p probeObserver[K]) Resolve(_ K, depth int) { p.probe.Resolve(depth) }
func (p probeObserver[K]) Overwrite(K)            { p.probe.Overwrite() }
