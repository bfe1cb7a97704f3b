package metrics

import (
	"time"

	"github.com/dgallion1/elementnamer/internal/segment"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// decompositionsTotal counts decomposed words by outcome.
	// Labels: "found", "none"
	decompositionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "elementnamer_decompositions_total",
		Help: "Words decomposed by outcome",
	}, []string{"result"})

	pathsPerWord = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "elementnamer_paths_per_word",
		Help:    "Complete decompositions found per word",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})

	treeNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "elementnamer_tree_nodes",
		Help:    "Match nodes built per word",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	decomposeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "elementnamer_decompose_duration_seconds",
		Help:    "Time to build, walk and resolve one word",
		Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
	})
)

// Observe records one decomposition.
func Observe(res segment.Result, elapsed time.Duration) {
	outcome := "none"
	if res.Found() {
		outcome = "found"
	}
	decompositionsTotal.WithLabelValues(outcome).Inc()
	pathsPerWord.Observe(float64(len(res.Decompositions)))
	treeNodes.Observe(float64(res.TreeNodes))
	decomposeDuration.Observe(elapsed.Seconds())
}
