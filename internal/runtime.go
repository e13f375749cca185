package internal

import (
	"log/slog"
)

const DefaultMaxDepth = 100

// Runtime is an isolated reactive universe: its dependency store, effect stack and batch state.
type Runtime struct {
	store   *Store
	tracker *Tracker
	batcher *Batcher

	metrics *Metrics
	logger  *slog.Logger

	maxDepth  int
	effectIDs uint64
}

type RuntimeOption func(*Runtime)

func WithLogger(logger *slog.Logger) RuntimeOption {
	return func(r *Runtime) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func WithMetrics(config MetricsConfig) RuntimeOption {
	return func(r *Runtime) {
		r.metrics = NewMetrics(config)
	}
}

// WithMaxDepth bounds the effect stack, 0 disables the limit.
func WithMaxDepth(depth int) RuntimeOption {
	return func(r *Runtime) {
		r.maxDepth = max(depth, 0)
	}
}

func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		store:    NewStore(),
		batcher:  NewBatcher(),
		logger:   slog.New(slog.DiscardHandler),
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.tracker = NewTracker(r.maxDepth)

	return r
}

// Track subscribes the active effect to (target, key).
func (r *Runtime) Track(target *Target, key any) {
	if !r.tracker.ShouldTrack() {
		return
	}

	r.tracker.Active().subscribe(r.store.DepSet(target, key))
}

// Trigger notifies every effect subscribed to (target, key), except the one currently running.
func (r *Runtime) Trigger(target *Target, key any) {
	dep := r.store.Lookup(target, key)
	if dep == nil {
		return
	}

	effects := dep.Snapshot(r.tracker.Active())
	if len(effects) == 0 {
		return
	}

	r.metrics.trigger()
	r.logger.Debug("property written", "target", target.ID(), "kind", target.Kind(), "key", key, "effects", len(effects))

	if r.batcher.IsBatching() {
		r.batcher.Enqueue(effects...)
		return
	}

	for _, e := range effects {
		e.dispatch()
	}
}

func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

func (r *Runtime) ActiveEffect() *Effect {
	return r.tracker.Active()
}

func (r *Runtime) Depth() int {
	return r.tracker.Depth()
}

func (r *Runtime) IsBatching() bool {
	return r.batcher.IsBatching()
}

func (r *Runtime) Store() *Store {
	return r.store
}
