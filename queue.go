package reactive

import "github.com/AnatoleLucet/reactive/internal"

// Microtasks runs callbacks once the current synchronous work unwinds.
// *MicrotaskQueue and *eventloop.Loop both implement it.
type Microtasks = internal.Microtasks

// MicrotaskQueue is a Microtasks host drained by its owner with Drain or Tick.
type MicrotaskQueue = internal.MicrotaskQueue

// JobQueue is a Scheduler batching effect re-runs into one flush per microtask boundary.
// Each queued effect runs once per flush, however many times it was triggered.
type JobQueue = internal.JobQueue

type QueueOption = internal.QueueOption

func NewMicrotaskQueue() *MicrotaskQueue {
	return internal.NewMicrotaskQueue()
}

// WithErrorHandler recovers panics from flushed effects and reports them to fn
// as *EffectPanicError, instead of letting them escape the flush.
func WithErrorHandler(fn func(error)) QueueOption {
	return internal.WithErrorHandler(fn)
}

// NewJobQueue creates a job queue on the current goroutine's engine.
func NewJobQueue(host Microtasks, opts ...QueueOption) *JobQueue {
	return Default().NewJobQueue(host, opts...)
}

func (e *Engine) NewJobQueue(host Microtasks, opts ...QueueOption) *JobQueue {
	return e.runtime.NewJobQueue(host, opts...)
}
