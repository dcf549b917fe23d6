// Package metrics provides observability for the request workflow.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the request-workflow collectors. A nil *Metrics is valid and
// records nothing, so tests and minimal deployments can skip registration.
type Metrics struct {
	// Requests created, by type
	RequestsCreated *prometheus.CounterVec

	// Requests resolved, by type and outcome (approved/rejected)
	RequestsResolved *prometheus.CounterVec

	// Approval latency including the handler's registry work
	ApprovalLatency prometheus.Histogram
}

// New creates a Metrics instance with all workflow metrics registered on the
// default registry.
func New() *Metrics {
	return &Metrics{
		RequestsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hokhau_requests_created_total",
			Help: "Total change requests created, by request type",
		}, []string{"type"}),

		RequestsResolved: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hokhau_requests_resolved_total",
			Help: "Total change requests resolved, by request type and outcome",
		}, []string{"type", "outcome"}),

		ApprovalLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hokhau_request_approval_duration_seconds",
			Help:    "Duration of request approval including registry mutations",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementCreated records a created request.
func (m *Metrics) IncrementCreated(requestType string) {
	if m != nil {
		m.RequestsCreated.WithLabelValues(requestType).Inc()
	}
}

// IncrementResolved records a resolved request.
func (m *Metrics) IncrementResolved(requestType, outcome string) {
	if m != nil {
		m.RequestsResolved.WithLabelValues(requestType, outcome).Inc()
	}
}

// ObserveApprovalLatency records the duration of a successful approval.
func (m *Metrics) ObserveApprovalLatency(d time.Duration) {
	if m != nil {
		m.ApprovalLatency.Observe(d.Seconds())
	}
}
