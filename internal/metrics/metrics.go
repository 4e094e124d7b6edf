package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics provides observability for report building and submission.
type Metrics struct {
	// Requests built, by category
	ReportsBuilt *prometheus.CounterVec

	// Reportable events that were not submitted, by category and reason
	ReportsSuppressed *prometheus.CounterVec

	// Submission outcomes by category and status ("sent", "failed", "dry-run")
	Submissions *prometheus.CounterVec

	// Duration of one outbound submission
	SubmissionLatency prometheus.Histogram
}

// New creates a Metrics instance registered with reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		ReportsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cec_reports_built_total",
			Help: "Total outbound report requests built by category",
		}, []string{"category"}),

		ReportsSuppressed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cec_reports_suppressed_total",
			Help: "Total reportable events not submitted by category and reason",
		}, []string{"category", "reason"}), // reason: "duplicate", "unchanged"

		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cec_submissions_total",
			Help: "Total submission attempts by category and status",
		}, []string{"category", "status"}),

		SubmissionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cec_submission_duration_seconds",
			Help:    "Duration of outbound form submissions",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
	reg.MustRegister(m.ReportsBuilt, m.ReportsSuppressed, m.Submissions, m.SubmissionLatency)
	return m
}

// IncrementBuilt records a built request.
func (m *Metrics) IncrementBuilt(category string) {
	if m != nil {
		m.ReportsBuilt.WithLabelValues(category).Inc()
	}
}

// IncrementSuppressed records a reportable event that was not submitted.
func (m *Metrics) IncrementSuppressed(category, reason string) {
	if m != nil {
		m.ReportsSuppressed.WithLabelValues(category, reason).Inc()
	}
}

// IncrementSubmission records a submission outcome.
func (m *Metrics) IncrementSubmission(category, status string) {
	if m != nil {
		m.Submissions.WithLabelValues(category, status).Inc()
	}
}

// ObserveSubmission records the duration of one submission.
func (m *Metrics) ObserveSubmission(d time.Duration) {
	if m != nil {
		m.SubmissionLatency.Observe(d.Seconds())
	}
}
