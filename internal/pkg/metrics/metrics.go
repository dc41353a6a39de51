package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// SelectionMetrics counts basket operations and session state anomalies.
type SelectionMetrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	listSize   *prometheus.HistogramVec
}

func NewSelectionMetrics() *SelectionMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "badgerbuds",
		Name:      "selection_operations_total",
		Help:      "Save, unselect and adopt calls by outcome.",
	}, []string{"operation", "outcome"})

	listSize := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "badgerbuds",
		Name:      "listed_cats",
		Help:      "Number of cats returned per list request.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
	}, []string{"list"})

	registry.MustRegister(operations, listSize)

	return &SelectionMetrics{
		registry:   registry,
		operations: operations,
		listSize:   listSize,
	}
}

func (m *SelectionMetrics) ObserveOperation(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

func (m *SelectionMetrics) ObserveList(list string, size int) {
	m.listSize.WithLabelValues(list).Observe(float64(size))
}

func (m *SelectionMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *SelectionMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
