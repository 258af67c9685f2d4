package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	classificationsTotal  *prometheus.CounterVec
	scoreRequestsTotal    *prometheus.CounterVec
	scoreDistribution     prometheus.Histogram
	scoringDuration       prometheus.Histogram
	classificationTime    prometheus.Histogram
	insightRequestsTotal  prometheus.Counter
	incentiveLookupsTotal *prometheus.CounterVec
	userLookupsTotal      *prometheus.CounterVec
	generatedUsersTotal   prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		classificationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "classifications_total",
				Help: "Total number of transaction classifications by method",
			},
			[]string{"method", "category"},
		),
		scoreRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "score_requests_total",
				Help: "Total number of score computations by status band",
			},
			[]string{"status"},
		),
		scoreDistribution: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "score_distribution",
				Help:    "Distribution of computed sustainability scores",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		scoringDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "scoring_duration_milliseconds",
				Help:    "Score computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		classificationTime: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "classification_duration_milliseconds",
				Help:    "Classification duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		insightRequestsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "insight_requests_total",
				Help: "Total number of insight bundles generated",
			},
		),
		incentiveLookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "incentive_lookups_total",
				Help: "Total number of incentive lookups by tier",
			},
			[]string{"tier"},
		),
		userLookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_lookups_total",
				Help: "Total number of demo user lookups",
			},
			[]string{"status"},
		),
		generatedUsersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "generated_users_total",
				Help: "Number of demo users held in memory",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "classification":
		m.classificationsTotal.WithLabelValues(tags["method"], tags["category"]).Inc()
	case "score_request":
		if status := tags["status"]; status != "" {
			m.scoreRequestsTotal.WithLabelValues(status).Inc()
		}
	case "insight_request":
		m.insightRequestsTotal.Inc()
	case "incentive_lookup":
		if tier := tags["tier"]; tier != "" {
			m.incentiveLookupsTotal.WithLabelValues(tier).Inc()
		}
	case "user_lookup":
		if status := tags["status"]; status != "" {
			m.userLookupsTotal.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "scoring":
		m.scoringDuration.Observe(float64(duration.Milliseconds()))
	case "classification":
		m.classificationTime.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "score":
		m.scoreDistribution.Observe(value)
	case "generated_users":
		m.generatedUsersTotal.Set(value)
	}
}
