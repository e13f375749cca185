package internal

import "slices"

type Effect struct {
	id   uint64
	name string

	fn func()

	// every set this effect was subscribed to during its last run, in subscription order
	deps []*DepSet

	scheduler Scheduler
	stopped   bool

	// effects registered while this one was running, stopped before it re-runs
	children []*Effect

	runtime *Runtime
}

func (r *Runtime) NewEffect(fn func(), opts ...EffectOption) *Effect {
	r.effectIDs++
	e := &Effect{
		id:      r.effectIDs,
		fn:      fn,
		runtime: r,
	}

	for _, opt := range opts {
		opt(e)
	}

	if parent := r.tracker.Active(); parent != nil {
		parent.children = append(parent.children, e)
	}

	r.logger.Debug("effect registered", "effect", e.id, "name", e.name, "scheduled", e.scheduler != nil)

	e.Run()

	return e
}

// Run re-executes the effect, replacing its subscriptions with the ones read during this run.
func (e *Effect) Run() {
	if e.stopped {
		return
	}

	e.disposeChildren()
	e.cleanup()
	e.runtime.metrics.effectRun()

	defer func() {
		// stopped mid-run, drop the effects this run registered
		if e.stopped {
			e.disposeChildren()
		}
	}()

	e.runtime.tracker.RunWithEffect(e, e.fn)
}

// Stop unsubscribes the effect and prevents any further runs.
func (e *Effect) Stop() {
	if e.stopped {
		return
	}

	e.stopped = true
	e.disposeChildren()
	e.cleanup()
}

func (e *Effect) disposeChildren() {
	children := e.children
	e.children = nil

	for _, child := range children {
		child.Stop()
	}
}

func (e *Effect) subscribe(dep *DepSet) {
	if e.stopped {
		return
	}

	if dep.Add(e) {
		e.deps = append(e.deps, dep)
	}
}

func (e *Effect) cleanup() {
	for _, dep := range e.deps {
		dep.Remove(e)
	}

	clear(e.deps)
	e.deps = e.deps[:0]
}

// dispatch runs the effect inline or hands it to its scheduler.
func (e *Effect) dispatch() {
	if e.stopped {
		return
	}

	if e.scheduler != nil {
		e.scheduler.Schedule(e)
		return
	}

	e.Run()
}

func (e *Effect) ID() uint64 {
	return e.id
}

func (e *Effect) Name() string {
	return e.name
}

func (e *Effect) Stopped() bool {
	return e.stopped
}

func (e *Effect) Scheduler() Scheduler {
	return e.scheduler
}

// Deps returns the subscriber sets the effect currently belongs to.
func (e *Effect) Deps() []*DepSet {
	return slices.Clone(e.deps)
}

type EffectOption func(*Effect)

func WithScheduler(s Scheduler) EffectOption {
	return func(e *Effect) {
		e.scheduler = s
	}
}

func WithName(name string) EffectOption {
	return func(e *Effect) {
		e.name = name
	}
}
