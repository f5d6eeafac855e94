// Package metrics holds the Prometheus collectors of the registration service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeOK       = "ok"
	OutcomeFailed   = "failed"
)

// Metrics holds Prometheus collectors for registration sessions.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	SessionsStarted       prometheus.Counter
	ActiveSessions        prometheus.Gauge
	EventsTotal           *prometheus.CounterVec
	ClassificationsTotal  *prometheus.CounterVec
	ClassificationLatency prometheus.Histogram
	SubmissionsTotal      *prometheus.CounterVec
	SubmissionLatency     prometheus.Histogram
}

// New registers the collectors with reg and returns them.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SessionsStarted: f.NewCounter(prometheus.CounterOpts{
			Name: "parcel_intake_sessions_started_total",
			Help: "Total number of registration sessions started",
		}),
		ActiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "parcel_intake_active_sessions",
			Help: "Current number of live registration sessions",
		}),
		EventsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "parcel_intake_events_total",
			Help: "Total number of workflow events, labeled by event kind and outcome",
		}, []string{"event", "outcome"}),
		ClassificationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "parcel_intake_classifications_total",
			Help: "Total number of label classifications, labeled by confidence",
		}, []string{"confidence"}),
		ClassificationLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "parcel_intake_classification_latency_seconds",
			Help:    "Latency of label classification in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
		SubmissionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "parcel_intake_submissions_total",
			Help: "Total number of submission hand-offs, labeled by outcome",
		}, []string{"outcome"}),
		SubmissionLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "parcel_intake_submission_latency_seconds",
			Help:    "Latency of submission hand-offs in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.SessionsStarted.Inc()
	m.ActiveSessions.Inc()
}

func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.ActiveSessions.Dec()
}

func (m *Metrics) Event(event string, accepted bool) {
	if m == nil {
		return
	}
	outcome := OutcomeAccepted
	if !accepted {
		outcome = OutcomeRejected
	}
	m.EventsTotal.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) Classification(confidence string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.ClassificationsTotal.WithLabelValues(confidence).Inc()
	m.ClassificationLatency.Observe(durationSeconds)
}

func (m *Metrics) Submission(ok bool, durationSeconds float64) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if !ok {
		outcome = OutcomeFailed
	}
	m.SubmissionsTotal.WithLabelValues(outcome).Inc()
	m.SubmissionLatency.Observe(durationSeconds)
}
