package reactive

import (
	eventloop "github.com/joeycumines/go-eventloop"
)

var _ Microtasks = (*eventloop.Loop)(nil)

// NewLoopQueue creates a job queue flushed as a microtask of loop.
//
// The engine must be driven from the loop goroutine (e.g. writes submitted with loop.Submit),
// since flushes run there.
func (e *Engine) NewLoopQueue(loop *eventloop.Loop, opts ...QueueOption) *JobQueue {
	return e.NewJobQueue(loop, opts...)
}

// NewLoopQueue creates a job queue on the calling goroutine's engine, flushed as a microtask of loop.
// Call it from a loop task so the engine is the loop goroutine's one.
func NewLoopQueue(loop *eventloop.Loop, opts ...QueueOption) *JobQueue {
	return Default().NewLoopQueue(loop, opts...)
}
