// Package obsmetrics exposes actor dispatch activity as Prometheus
// metrics, implementing actor.DispatchObserver without pkg/actor needing
// to know prometheus/client_golang exists.
package obsmetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics registers dispatch counters and latency histograms under a
// configurable namespace and satisfies actor.DispatchObserver.
type Metrics struct {
	dispatchTotal   *prometheus.CounterVec
	dispatchErrors  *prometheus.CounterVec
	dispatchLatency *prometheus.HistogramVec
}

// New creates and registers the metric collectors against reg under
// namespace. reg is supplied by the caller — a fresh *prometheus.Registry
// for tests, prometheus.DefaultRegisterer in production — so repeated test
// runs never collide on global registration.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actor_dispatch_total",
			Help:      "Number of message dispatches handled, by actor and message type.",
		}, []string{"actor_type", "message_type"}),
		dispatchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actor_dispatch_errors_total",
			Help:      "Number of message dispatches that returned an error, by actor and message type.",
		}, []string{"actor_type", "message_type"}),
		dispatchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "actor_dispatch_duration_seconds",
			Help:      "Dispatch round-trip latency from enqueue to reply, by actor and message type.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"actor_type", "message_type"}),
	}
	reg.MustRegister(m.dispatchTotal, m.dispatchErrors, m.dispatchLatency)
	return m
}

// ObserveDispatch implements actor.DispatchObserver.
func (m *Metrics) ObserveDispatch(_ context.Context, actorType, messageType string, dur time.Duration, err error) {
	m.dispatchTotal.WithLabelValues(actorType, messageType).Inc()
	m.dispatchLatency.WithLabelValues(actorType, messageType).Observe(dur.Seconds())
	if err != nil {
		m.dispatchErrors.WithLabelValues(actorType, messageType).Inc()
	}
}
