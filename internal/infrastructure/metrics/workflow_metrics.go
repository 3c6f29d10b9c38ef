// Package metrics exposes workflow counters in the Prometheus format.
package metrics

import (
	"net/http"
	"strconv"

	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "workflow"

// WorkflowMetrics is safe for concurrent use. A zero value, as returned when metrics are
// disabled, records nothing.
type WorkflowMetrics struct {
	transitions    *prometheus.CounterVec
	cascades       *prometheus.CounterVec
	stockMovements *prometheus.CounterVec
	retryAttempts  *prometheus.CounterVec

	registry *prometheus.Registry
}

var _ interfaces.IWorkflowMetrics = (*WorkflowMetrics)(nil)

func NewWorkflowMetrics(enabled bool) *WorkflowMetrics {
	if !enabled {
		return &WorkflowMetrics{}
	}

	registry := prometheus.NewRegistry()
	m := &WorkflowMetrics{
		registry: registry,
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transitions_total",
				Help:      "Status transitions applied, by entity kind",
			},
			[]string{"kind", "from", "to"},
		),
		cascades: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cascades_total",
				Help:      "Service order cascades by triggering event and outcome",
			},
			[]string{"event", "outcome"},
		),
		stockMovements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stock_movements_total",
				Help:      "Stock movements by type and whether the guard accepted them",
			},
			[]string{"type", "applied"},
		),
		retryAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "retry_attempts_failed_total",
				Help:      "Failed attempts seen by the retry policy",
			},
			[]string{"operation", "retryable"},
		),
	}

	registry.MustRegister(
		m.transitions,
		m.cascades,
		m.stockMovements,
		m.retryAttempts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *WorkflowMetrics) ObserveTransition(kind entities.EntityKind, from, to string) {
	if m.transitions == nil {
		return
	}
	m.transitions.WithLabelValues(string(kind), from, to).Inc()
}

func (m *WorkflowMetrics) ObserveCascade(eventType, outcome string) {
	if m.cascades == nil {
		return
	}
	m.cascades.WithLabelValues(eventType, outcome).Inc()
}

func (m *WorkflowMetrics) ObserveStockMovement(movementType entities.MovementType, applied bool) {
	if m.stockMovements == nil {
		return
	}
	m.stockMovements.WithLabelValues(string(movementType), strconv.FormatBool(applied)).Inc()
}

func (m *WorkflowMetrics) ObserveRetryAttempt(operation string, retryable bool) {
	if m.retryAttempts == nil {
		return
	}
	m.retryAttempts.WithLabelValues(operation, strconv.FormatBool(retryable)).Inc()
}

// Gatherer is nil when metrics are disabled.
func (m *WorkflowMetrics) Gatherer() prometheus.Gatherer {
	if m.registry == nil {
		return nil
	}
	return m.registry
}

// Handler serves the metrics endpoint.
func (m *WorkflowMetrics) Handler() http.Handler {
	if m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
