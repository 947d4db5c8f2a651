// Package metrics defines the Prometheus instrumentation for the analysis
// pipeline and the HTTP surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis pipeline metrics
var (
	// AnalysesTotal tracks completed analyses by status and quality band
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_analyses_total",
			Help: "Total sentiment analyses by status and quality",
		},
		[]string{"status", "quality"},
	)

	// AnalysisDuration tracks end-to-end analysis latency in seconds
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiment_analysis_duration_seconds",
			Help:    "End-to-end analysis duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	// BatchSize tracks the number of texts per batch request
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiment_batch_size",
			Help:    "Number of texts per batch analysis",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)
)

// Tree search metrics
var (
	// TreeNodesVisited tracks nodes visited per traversal
	TreeNodesVisited = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tree_search_nodes_visited",
			Help:    "Nodes visited per decision-tree traversal",
			Buckets: []float64{1, 2, 3, 5, 8, 10},
		},
	)

	// CacheHits tracks memoization cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tree_search_cache_hits_total",
			Help: "Total memoization cache hits",
		},
	)

	// CacheMisses tracks memoization cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tree_search_cache_misses_total",
			Help: "Total memoization cache misses",
		},
	)

	// CacheEvictions tracks FIFO evictions from the memoization cache
	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tree_search_cache_evictions_total",
			Help: "Total memoization cache evictions",
		},
	)

	// CacheSize tracks the current number of memoized traversals
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tree_search_cache_size",
			Help: "Current number of memoized traversal results",
		},
	)
)
