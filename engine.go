package reactive

import (
	"log/slog"

	"github.com/AnatoleLucet/reactive/internal"
)

// Engine owns a dependency store, an effect stack and batch state.
// Objects, cells and effects created on different engines never see each other.
type Engine struct {
	runtime *internal.Runtime
}

type Option = internal.RuntimeOption

type MetricsConfig = internal.MetricsConfig

// WithLogger sets the logger used for debug and error reporting. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return internal.WithLogger(logger)
}

// WithMetrics registers the engine's Prometheus collectors.
func WithMetrics(config MetricsConfig) Option {
	return internal.WithMetrics(config)
}

// WithMaxDepth bounds how deep effects may nest or re-enter before panicking with ErrMaxDepth.
// 0 disables the limit.
func WithMaxDepth(depth int) Option {
	return internal.WithMaxDepth(depth)
}

func NewEngine(opts ...Option) *Engine {
	return &Engine{internal.NewRuntime(opts...)}
}

// Default returns the engine of the calling goroutine.
func Default() *Engine {
	return &Engine{internal.GetRuntime()}
}

// Release drops the calling goroutine's default engine.
func Release() {
	internal.ReleaseRuntime()
}

func (e *Engine) NewEffect(fn func(), opts ...EffectOption) *Effect {
	return e.runtime.NewEffect(fn, opts...)
}

func (e *Engine) Batch(fn func()) {
	e.runtime.NewBatch(fn)
}

func (e *Engine) Untrack(fn func()) {
	e.runtime.Untrack(fn)
}

func (e *Engine) ActiveEffect() *Effect {
	return e.runtime.ActiveEffect()
}

// Targets returns how many reactive objects the engine currently holds dependencies for.
func (e *Engine) Targets() int {
	return e.runtime.Store().Len()
}
