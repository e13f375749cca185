// Package reactive tracks which effects read which properties of reactive objects,
// and re-runs those effects when the properties are written.
//
// Effects run inline on write by default. Installing a JobQueue as their scheduler
// batches the re-runs so each effect runs once per microtask boundary of the queue's host.
package reactive

import "github.com/AnatoleLucet/reactive/internal"

// Effect is a computation re-run whenever a reactive property it read changes.
type Effect = internal.Effect

// Scheduler receives triggered effects instead of letting them run inline.
type Scheduler = internal.Scheduler

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc = internal.SchedulerFunc

type EffectOption = internal.EffectOption

// Inline runs triggered effects immediately. It is the behavior of effects without a scheduler.
var Inline Scheduler = internal.Inline

// WithScheduler routes the effect's re-runs through s. Its first run is always inline.
func WithScheduler(s Scheduler) EffectOption {
	return internal.WithScheduler(s)
}

// WithName labels the effect in logs and errors.
func WithName(name string) EffectOption {
	return internal.WithName(name)
}

// NewEffect registers fn on the current goroutine's engine and runs it once.
func NewEffect(fn func(), opts ...EffectOption) *Effect {
	return Default().NewEffect(fn, opts...)
}

// Batch defers notifications until fn returns, running each affected effect once.
func Batch(fn func()) {
	Default().Batch(fn)
}

// Untrack runs the given function without tracking any reactive dependencies.
func Untrack[T any](fn func() T) T {
	var result T
	Default().Untrack(func() { result = fn() })
	return result
}

// ActiveEffect returns the effect currently running on this goroutine, if any.
func ActiveEffect() *Effect {
	return Default().ActiveEffect()
}
