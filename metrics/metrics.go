// Package metrics holds the Prometheus collectors of the chemistry graph backend.
// Collectors are registered on the default registry through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values.
const (
	StatusOK       = "ok"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

var (
	// QueriesTotal counts manager operations by name and outcome.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neochem_queries_total",
			Help: "Total number of graph operations executed",
		},
		[]string{"operation", "status"},
	)

	// QueryDuration measures manager operations end to end, decoding included.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "neochem_query_duration_seconds",
			Help:    "Duration of graph operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"operation"},
	)

	// ParsingFailures counts results the codec rejected.
	ParsingFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neochem_parsing_failures_total",
			Help: "Total number of query results that could not be decoded",
		},
		[]string{"operation"},
	)
)
