package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scanTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "scans_total",
		Help:      "Count of participant event scans.",
	}, []string{"status"})

	scanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "scan_duration_seconds",
		Help:      "Duration of participant event scans.",
		Buckets:   []float64{.1, .5, 1, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"status"})

	scanNewAddresses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "discovered_addresses_total",
		Help:      "Count of newly discovered participant addresses.",
	})

	scanSkippedWindows = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "skipped_windows_total",
		Help:      "Count of block windows abandoned after retries.",
	})

	fetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "fetches_total",
		Help:      "Count of hashrate fetch runs.",
	}, []string{"status"})

	fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of hashrate fetch runs.",
		Buckets:   []float64{.1, .5, 1, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"status"})

	fetchAddresses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "fetched_addresses_total",
		Help:      "Count of per-address hashrate reads by outcome.",
	}, []string{"status"})

	batchSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "batch_size",
		Help:      "Current adaptive batch size.",
	})

	batchDelay = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "batch_delay_seconds",
		Help:      "Current adaptive inter-batch delay.",
	})

	batchSuccessRate = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "batch_success_ratio",
		Help:      "Share of addresses read successfully per batch.",
		Buckets:   []float64{.1, .3, .5, .7, .8, .9, .95, 1},
	})

	refreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "refreshes_total",
		Help:      "Count of refresh cycles by published source.",
	}, []string{"source", "status"})

	refreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of refresh cycles.",
		Buckets:   []float64{.1, .5, 1, 5, 10, 30, 60, 120, 300, 600, 1200},
	}, []string{"source", "status"})

	snapshotMiners = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "snapshot_miners",
		Help:      "Number of miners in the published snapshot.",
	}, []string{"source"})
)

// Refresher tracks metrics for the leaderboard refresh pipeline.
type Refresher struct{}

// NewRefresher constructs a Refresher collector.
func NewRefresher() *Refresher {
	return &Refresher{}
}

// ObserveScan records an event scan.
func (m Refresher) ObserveScan(err error, newAddresses, skippedWindows int, started time.Time) {
	status := statusLabel(err)
	scanTotal.WithLabelValues(status).Inc()
	scanDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	scanNewAddresses.Add(float64(newAddresses))
	scanSkippedWindows.Add(float64(skippedWindows))
}

// ObserveFetch records a full hashrate fetch.
func (m Refresher) ObserveFetch(err error, addresses, failed int, started time.Time) {
	status := statusLabel(err)
	fetchTotal.WithLabelValues(status).Inc()
	fetchDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	fetchAddresses.WithLabelValues("success").Add(float64(addresses - failed))
	fetchAddresses.WithLabelValues("error").Add(float64(failed))
}

// ObserveBatch records the tuner state after a batch.
func (m Refresher) ObserveBatch(size int, delay time.Duration, successRate float64) {
	batchSize.Set(float64(size))
	batchDelay.Set(delay.Seconds())
	batchSuccessRate.Observe(successRate)
}

// ObserveRefresh records a finished refresh cycle and the snapshot it published.
func (m Refresher) ObserveRefresh(source string, miners int, err error, started time.Time) {
	source = orUnknown(source)
	status := statusLabel(err)
	refreshTotal.WithLabelValues(source, status).Inc()
	refreshDuration.WithLabelValues(source, status).Observe(time.Since(started).Seconds())
	snapshotMiners.Reset()
	snapshotMiners.WithLabelValues(source).Set(float64(miners))
}
