package internal

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsConfig configures the Prometheus collectors of a runtime.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "reactive").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	// Use them to tell apart runtimes sharing a registry.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	//
	// Runtimes configured with the same registry, namespace, subsystem and labels share their collectors.
	Registry prometheus.Registerer
}

// Metrics is nil-safe: a nil *Metrics records nothing.
type Metrics struct {
	effectRuns  prometheus.Counter
	triggers    prometheus.Counter
	flushes     prometheus.Counter
	flushedJobs prometheus.Counter
	pendingJobs prometheus.Gauge
}

func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "reactive"
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}

	opts := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		}
	}

	reg := config.Registry
	return &Metrics{
		effectRuns:  register(reg, prometheus.NewCounter(opts("effect_runs_total", "Total number of effect executions"))),
		triggers:    register(reg, prometheus.NewCounter(opts("triggers_total", "Total number of writes that notified at least one effect"))),
		flushes:     register(reg, prometheus.NewCounter(opts("flushes_total", "Total number of job queue flushes"))),
		flushedJobs: register(reg, prometheus.NewCounter(opts("flushed_jobs_total", "Total number of effects taken from job queues by flushes"))),
		pendingJobs: register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pending_jobs",
			Help:        "Number of effects waiting in job queues",
			ConstLabels: config.ConstLabels,
		})),
	}
}

// register adds c to reg, or returns the identical collector a previous runtime already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var alreadyErr prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyErr) {
			if existing, ok := alreadyErr.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}

	return c
}

func (m *Metrics) effectRun() {
	if m != nil {
		m.effectRuns.Inc()
	}
}

func (m *Metrics) trigger() {
	if m != nil {
		m.triggers.Inc()
	}
}

func (m *Metrics) enqueued() {
	if m != nil {
		m.pendingJobs.Inc()
	}
}

func (m *Metrics) flushed(jobs int) {
	if m != nil {
		m.flushes.Inc()
		m.flushedJobs.Add(float64(jobs))
		m.pendingJobs.Sub(float64(jobs))
	}
}
