// Package metrics defines the prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "haleway"

// Metrics holds every collector the server updates.
type Metrics struct {
	registry *prometheus.Registry

	// RPCRequests counts finished RPCs by procedure and Connect code.
	RPCRequests *prometheus.CounterVec

	// RPCDuration observes RPC latency by procedure.
	RPCDuration *prometheus.HistogramVec

	// ItemsAdded counts checklist items created, by list kind and source
	// (manual, bulk, outfit, template).
	ItemsAdded *prometheus.CounterVec

	// ItemsToggled counts done-flag flips by list kind and resulting state.
	ItemsToggled *prometheus.CounterVec

	// ChecklistsCreated counts new checklists by kind and origin (blank, template).
	ChecklistsCreated *prometheus.CounterVec
}

// New creates a Metrics with its own registry, including the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RPCRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Finished RPCs by procedure and code.",
		}, []string{"procedure", "code"}),
		RPCDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		ItemsAdded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checklist_items_added_total",
			Help:      "Checklist items created, by list kind and source.",
		}, []string{"kind", "source"}),
		ItemsToggled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checklist_items_toggled_total",
			Help:      "Done-flag flips, by list kind and resulting state.",
		}, []string{"kind", "done"}),
		ChecklistsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checklists_created_total",
			Help:      "Checklists created, by kind and origin.",
		}, []string{"kind", "origin"}),
	}
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
