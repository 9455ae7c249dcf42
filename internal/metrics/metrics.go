package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus collectors for the API.
type Metrics struct {
	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	QuestionsCreated prometheus.Counter
	QuestionsDeleted prometheus.Counter
	QuizQuestions    *prometheus.CounterVec
	DBConnPoolStats  *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Number of HTTP requests currently being served",
			},
		),
		QuestionsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "questions_created_total",
				Help:      "Questions inserted through the API",
			},
		),
		QuestionsDeleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "questions_deleted_total",
				Help:      "Questions removed through the API",
			},
		),
		QuizQuestions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quiz_questions_served_total",
				Help:      "Quiz draws by outcome",
			},
			[]string{"outcome"}, // served or exhausted
		),
		DBConnPoolStats: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_connection_pool",
				Help:      "Database connection pool statistics",
			},
			[]string{"stat"},
		),
	}
	reg.MustRegister(
		m.RequestCounter,
		m.RequestDuration,
		m.RequestsInFlight,
		m.QuestionsCreated,
		m.QuestionsDeleted,
		m.QuizQuestions,
		m.DBConnPoolStats,
	)
	return m
}

// The recorders below are nil-safe so callers can run without metrics.

func (m *Metrics) QuestionCreated() {
	if m == nil {
		return
	}
	m.QuestionsCreated.Inc()
}

func (m *Metrics) QuestionDeleted() {
	if m == nil {
		return
	}
	m.QuestionsDeleted.Inc()
}

// QuizDraw records one quiz selection; served is false when nothing was eligible.
func (m *Metrics) QuizDraw(served bool) {
	if m == nil {
		return
	}
	outcome := "served"
	if !served {
		outcome = "exhausted"
	}
	m.QuizQuestions.WithLabelValues(outcome).Inc()
}

// RecordPoolStats copies a pgxpool snapshot into the pool gauge.
func (m *Metrics) RecordPoolStats(stat *pgxpool.Stat) {
	if m == nil || stat == nil {
		return
	}
	m.DBConnPoolStats.WithLabelValues("total").Set(float64(stat.TotalConns()))
	m.DBConnPoolStats.WithLabelValues("acquired").Set(float64(stat.AcquiredConns()))
	m.DBConnPoolStats.WithLabelValues("idle").Set(float64(stat.IdleConns()))
	m.DBConnPoolStats.WithLabelValues("max").Set(float64(stat.MaxConns()))
	m.DBConnPoolStats.WithLabelValues("empty_acquire_count").Set(float64(stat.EmptyAcquireCount()))
	m.DBConnPoolStats.WithLabelValues("acquire_duration_ms").Set(float64(stat.AcquireDuration().Milliseconds()))
}
