// Package metrics exposes Prometheus counters for the visitor pipeline
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	VisitorsLogged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visitor_beacons_total",
			Help: "Visitor beacons persisted, by device type",
		},
		[]string{"device"},
	)

	VisitorLogFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "visitor_beacon_failures_total",
			Help: "Visitor beacons that could not be persisted",
		},
	)

	GeoLookupMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "visitor_geo_lookup_misses_total",
			Help: "Geo lookups that fell back to Unknown",
		},
	)

	StatsQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "visitor_stats_query_duration_seconds",
			Help:    "Time spent listing visitor records",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
	)
)
