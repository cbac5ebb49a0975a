package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathway_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathway_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathway_recommendations_total",
			Help: "Recommendations produced, by source (model or fallback)",
		},
		[]string{"source"},
	)

	RecommendationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathway_recommendation_fallbacks_total",
			Help: "Times the keyword scorer replaced the model, by reason",
		},
		[]string{"reason"},
	)

	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathway_catalog_requests_total",
			Help: "School catalog requests to Airtable, by outcome",
		},
		[]string{"outcome"},
	)

	CatalogRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pathway_catalog_request_duration_seconds",
			Help:    "Duration of school catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
