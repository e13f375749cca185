package internal

import "fmt"

// Microtasks is a host able to run a callback once the current synchronous work unwinds.
type Microtasks interface {
	ScheduleMicrotask(fn func()) error
}

// MicrotaskQueue is an in-process microtask host, drained explicitly by its owner.
type MicrotaskQueue struct {
	tasks []func()
}

func NewMicrotaskQueue() *MicrotaskQueue {
	return &MicrotaskQueue{
		tasks: make([]func(), 0),
	}
}

func (q *MicrotaskQueue) ScheduleMicrotask(fn func()) error {
	q.tasks = append(q.tasks, fn)
	return nil
}

// Drain runs queued tasks until none are left, including tasks queued while draining.
func (q *MicrotaskQueue) Drain() {
	for len(q.tasks) > 0 {
		q.next()
	}
}

// Tick runs only the tasks queued before the call.
func (q *MicrotaskQueue) Tick() {
	for n := len(q.tasks); n > 0 && len(q.tasks) > 0; n-- {
		q.next()
	}
}

func (q *MicrotaskQueue) Len() int {
	return len(q.tasks)
}

func (q *MicrotaskQueue) next() {
	fn := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]

	fn()
}

// JobQueue is a Scheduler that collects effects and runs each of them once per flush.
type JobQueue struct {
	runtime *Runtime
	host    Microtasks

	pending   []*Effect
	queued    map[*Effect]struct{}
	scheduled bool

	// error handlers, when empty panics from flushed effects propagate
	catchers []func(error)
}

type QueueOption func(*JobQueue)

func WithErrorHandler(fn func(error)) QueueOption {
	return func(q *JobQueue) {
		q.OnError(fn)
	}
}

func (r *Runtime) NewJobQueue(host Microtasks, opts ...QueueOption) *JobQueue {
	q := &JobQueue{
		runtime: r,
		host:    host,
		pending: make([]*Effect, 0),
		queued:  make(map[*Effect]struct{}),
	}

	for _, opt := range opts {
		opt(q)
	}

	return q
}

func (q *JobQueue) Schedule(e *Effect) {
	if e.stopped {
		return
	}

	if _, ok := q.queued[e]; !ok {
		q.queued[e] = struct{}{}
		q.pending = append(q.pending, e)
		q.runtime.metrics.enqueued()
	}

	if q.scheduled {
		return
	}
	q.scheduled = true

	if err := q.host.ScheduleMicrotask(q.Flush); err != nil {
		q.scheduled = false

		err = fmt.Errorf("%w: %w", ErrHostRejected, err)
		q.runtime.logger.Warn("microtask host rejected flush", "pending", len(q.pending), "error", err)
		q.report(err)
	}
}

// Flush runs every effect queued before the call.
// Effects queued while flushing wait for the next flush.
func (q *JobQueue) Flush() {
	jobs := q.pending
	q.pending = make([]*Effect, 0, len(jobs))
	clear(q.queued)
	q.scheduled = false

	if len(jobs) == 0 {
		return
	}

	q.runtime.metrics.flushed(len(jobs))
	q.runtime.logger.Debug("flushing job queue", "jobs", len(jobs))

	next := 0
	defer func() {
		// a job panicked, keep the rest for a later flush
		if next < len(jobs) {
			for _, e := range jobs[next+1:] {
				q.Schedule(e)
			}
		}
	}()

	for next = 0; next < len(jobs); next++ {
		q.run(jobs[next])
	}
}

func (q *JobQueue) run(e *Effect) {
	if len(q.catchers) == 0 {
		e.Run()
		return
	}

	defer func() {
		if v := recover(); v != nil {
			q.runtime.logger.Error("effect panicked during flush", "effect", e.id, "name", e.name, "panic", v)
			q.report(&EffectPanicError{EffectID: e.id, EffectName: e.name, Value: v})
		}
	}()

	e.Run()
}

func (q *JobQueue) OnError(fn func(error)) {
	q.catchers = append(q.catchers, fn)
}

func (q *JobQueue) report(err error) {
	for _, catcher := range q.catchers {
		catcher(err)
	}
}

// Len returns the number of effects waiting for the next flush.
func (q *JobQueue) Len() int {
	return len(q.pending)
}

// Scheduled reports whether a flush has been handed to the host and not run yet.
func (q *JobQueue) Scheduled() bool {
	return q.scheduled
}
