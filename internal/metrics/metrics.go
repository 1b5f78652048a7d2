// Package metrics registers the prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// YearQueries counts year-query requests by outcome.
	YearQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "railatlas",
		Name:      "year_queries_total",
		Help:      "Year query requests served, labelled by outcome.",
	}, []string{"outcome"})

	// ResolveDuration observes how long a full-network resolution takes.
	ResolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "railatlas",
		Name:      "resolve_duration_seconds",
		Help:      "Duration of a full station+segment resolution pass.",
		Buckets:   prometheus.DefBuckets,
	})

	// LoadedEntities reports the loaded dataset size by entity kind.
	LoadedEntities = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "railatlas",
		Name:      "loaded_entities",
		Help:      "Entities resident in the current dataset snapshot.",
	}, []string{"kind"})
)

// RecordDatasetSize publishes the loaded collection sizes.
func RecordDatasetSize(stations, segments, events int) {
	LoadedEntities.WithLabelValues("station").Set(float64(stations))
	LoadedEntities.WithLabelValues("segment").Set(float64(segments))
	LoadedEntities.WithLabelValues("event").Set(float64(events))
}
