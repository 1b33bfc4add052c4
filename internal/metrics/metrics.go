// Package metrics declares the service-level Prometheus collectors shared by
// the recommendation, enrichment and feedback paths.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationsTotal counts recommendation requests by source and outcome.
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hediye_recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"source", "outcome"},
	)

	// RecommendationDuration tracks end-to-end latency of AI recommendations,
	// enrichment included.
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hediye_recommendation_duration_seconds",
			Help:    "Duration of AI recommendation requests in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
	)

	// LookupFailuresTotal counts enrichment lookups that fell back to unknown.
	LookupFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hediye_enrichment_lookup_failures_total",
			Help: "Total number of failed image or price lookups",
		},
		[]string{"kind"},
	)

	// FeedbackTotal counts feedback submissions by outcome.
	FeedbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hediye_feedback_total",
			Help: "Total number of feedback submissions",
		},
		[]string{"outcome"},
	)

	// BreakerState mirrors the AI circuit breaker (0 closed, 1 half-open, 2 open).
	BreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hediye_ai_breaker_state",
			Help: "State of the AI provider circuit breaker",
		},
	)
)

// ObserveRecommendation records the outcome and latency of one AI request.
func ObserveRecommendation(outcome string, started time.Time) {
	RecommendationsTotal.WithLabelValues("ai", outcome).Inc()
	RecommendationDuration.Observe(time.Since(started).Seconds())
}
