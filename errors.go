package reactive

import "github.com/AnatoleLucet/reactive/internal"

var (
	// ErrMaxDepth is raised (as a panic) when effects nest deeper than the engine allows,
	// typically because effects keep re-triggering each other inline.
	ErrMaxDepth = internal.ErrMaxDepth

	// ErrHostRejected is reported when a job queue's host refuses to schedule a flush.
	ErrHostRejected = internal.ErrHostRejected
)

type EffectPanicError = internal.EffectPanicError
