package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BioFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "easy_bioclim_fetches_total",
			Help: "Total per-point bioclim variable fetches",
		},
		[]string{"status"},
	)

	BioFetchLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "easy_bioclim_fetch_latency_seconds",
			Help:    "Bioclim sampler call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	TablesBuiltTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "easy_bioclim_tables_built_total",
			Help: "Total result tables assembled",
		},
	)
)
