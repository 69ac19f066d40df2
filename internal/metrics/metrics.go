// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mindflex"

type Metrics struct {
	registry *prometheus.Registry

	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	DBConnPoolStats  *prometheus.GaugeVec

	QuestionsPosted  prometheus.Counter
	TakeAttempts     *prometheus.CounterVec
	AnswersSubmitted prometheus.Counter
	ReviewsRecorded  prometheus.Counter
	BalanceCredited  prometheus.Counter
	Withdrawals      *prometheus.CounterVec
	UploadFailures   *prometheus.CounterVec
}

// NewMetrics registers every collector on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),
		DBConnPoolStats: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_connection_pool",
				Help:      "Database connection pool statistics",
			},
			[]string{"stat"},
		),
		QuestionsPosted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_posted_total",
			Help:      "Questions posted by the admin",
		}),
		TakeAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "question_take_attempts_total",
			Help:      "Take attempts by outcome",
		}, []string{"outcome"}),
		AnswersSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_submitted_total",
			Help:      "Answers submitted by tutors",
		}),
		ReviewsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_recorded_total",
			Help:      "Reviews recorded with their question archived",
		}),
		BalanceCredited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "balance_credited_usd_total",
			Help:      "Sum of admin credits in USD",
		}),
		Withdrawals: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawals_total",
			Help:      "Withdrawal requests by status change",
		}, []string{"status"}),
		UploadFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_failures_total",
			Help:      "Aborted multi-file uploads by bucket",
		}, []string{"bucket"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{DisableCompression: true})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordDBPoolStats copies the pool counters of db into the gauge.
func (m *Metrics) RecordDBPoolStats(db *sql.DB) {
	s := db.Stats()
	m.DBConnPoolStats.WithLabelValues("open").Set(float64(s.OpenConnections))
	m.DBConnPoolStats.WithLabelValues("in_use").Set(float64(s.InUse))
	m.DBConnPoolStats.WithLabelValues("idle").Set(float64(s.Idle))
	m.DBConnPoolStats.WithLabelValues("wait_count").Set(float64(s.WaitCount))
	m.DBConnPoolStats.WithLabelValues("wait_duration_ms").Set(float64(s.WaitDuration.Milliseconds()))
}
