package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LookupRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mrn_lookup_requests_total",
			Help: "Total number of MRN lookup requests by action and response status",
		},
		[]string{"action", "status"},
	)

	LookupSubjects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mrn_lookup_subjects_total",
			Help: "Total number of MRNs resolved by validity",
		},
		[]string{"valid"},
	)

	DownstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mrn_lookup_downstream_duration_seconds",
			Help:    "Duration of batched demographics calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	TokenUnavailable = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mrn_lookup_token_unavailable_total",
			Help: "Total number of lookups degraded because no usable token was available",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
)
