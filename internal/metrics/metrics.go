// Package metrics exposes chain build and walk counters as Prometheus metrics.
package metrics

import (
	"fmt"
	"io"

	"github.com/aretw0/markov/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "markov"

// Collector records lifecycle events of one program run.
type Collector struct {
	registry    *prometheus.Registry
	states      prometheus.Counter
	transitions prometheus.Counter
	walks       *prometheus.CounterVec
	walkLength  prometheus.Histogram
	teardowns   prometheus.Counter
}

// New creates a collector with its own registry.
// The chain label distinguishes the client program (e.g. "snakes", "tweets").
func New(chainName string) *Collector {
	labels := prometheus.Labels{"chain": chainName}
	c := &Collector{
		registry: prometheus.NewRegistry(),
		states: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "states_added_total",
			Help:        "Number of distinct states registered",
			ConstLabels: labels,
		}),
		transitions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "transitions_observed_total",
			Help:        "Number of transition observations recorded",
			ConstLabels: labels,
		}),
		walks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "walks_total",
			Help:        "Number of finished walks by stop reason",
			ConstLabels: labels,
		}, []string{"reason"}),
		walkLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "walk_length_states",
			Help:        "Number of states emitted per walk",
			ConstLabels: labels,
			Buckets:     prometheus.LinearBuckets(5, 5, 12),
		}),
		teardowns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "teardowns_total",
			Help:        "Number of chains destroyed by a build failure",
			ConstLabels: labels,
		}),
	}
	c.registry.MustRegister(c.states, c.transitions, c.walks, c.walkLength, c.teardowns)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Hooks returns lifecycle hooks feeding the collector.
// Extra hooks, such as debug logging, are chained after the metrics.
func (c *Collector) Hooks(next ...domain.LifecycleHooks) domain.LifecycleHooks {
	h := domain.LifecycleHooks{
		OnStateAdded: func(*domain.BuildEvent) { c.states.Inc() },
		OnTransition: func(*domain.BuildEvent) { c.transitions.Inc() },
		OnWalkEnd: func(e *domain.WalkEvent) {
			c.walks.WithLabelValues(reasonLabel(e.Reason)).Inc()
			c.walkLength.Observe(float64(e.Step))
		},
		OnTeardown: func(*domain.BuildEvent) { c.teardowns.Inc() },
	}
	for _, n := range next {
		h = Chain(h, n)
	}
	return h
}

func reasonLabel(r domain.StopReason) string {
	if r == domain.StopNone {
		return "aborted"
	}
	return string(r)
}

// WriteText dumps every metric in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}

// Chain combines two hook sets so that both are invoked, first a then b.
func Chain(a, b domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateAdded: both(a.OnStateAdded, b.OnStateAdded),
		OnTransition: both(a.OnTransition, b.OnTransition),
		OnWalkStart:  both(a.OnWalkStart, b.OnWalkStart),
		OnWalkStep:   both(a.OnWalkStep, b.OnWalkStep),
		OnWalkEnd:    both(a.OnWalkEnd, b.OnWalkEnd),
		OnTeardown:   both(a.OnTeardown, b.OnTeardown),
	}
}

func both[E any](a, b func(E)) func(E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e E) {
		a(e)
		b(e)
	}
}
