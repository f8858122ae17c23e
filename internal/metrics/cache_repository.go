package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache_repository",
		Name:      "operations_total",
		Help:      "Count of cache repository operations.",
	}, []string{"operation", "backend", "status"})
	cacheRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "cache_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of cache repository operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "backend", "status"})
)

// CacheRepository tracks metrics for cache repository operations.
type CacheRepository struct {
	backend string
}

// NewCacheRepository creates a CacheRepository metrics collector.
func NewCacheRepository(backend string) *CacheRepository {
	return &CacheRepository{backend: orUnknown(backend)}
}

// Observe records duration and status of a repository operation.
func (m CacheRepository) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	cacheRepositoryRequestsTotal.WithLabelValues(operation, m.backend, status).Inc()
	cacheRepositoryRequestDuration.WithLabelValues(operation, m.backend, status).Observe(time.Since(started).Seconds())
}
