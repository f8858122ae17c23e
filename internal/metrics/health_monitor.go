package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	healthProbeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "health_monitor",
		Name:      "probes_total",
		Help:      "Count of RPC liveness probes.",
	}, []string{"network", "status"})

	healthProbeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "health_monitor",
		Name:      "probe_duration_seconds",
		Help:      "Duration of RPC liveness probes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	healthCounter = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "health_monitor",
		Name:      "health",
		Help:      "Current connection health counter (0-5).",
	}, []string{"network"})

	healthConnected = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "health_monitor",
		Name:      "connected",
		Help:      "1 when the RPC connection is considered up.",
	}, []string{"network"})
)

// HealthMonitor tracks probe outcomes and the connection state.
type HealthMonitor struct {
	network string
}

// NewHealthMonitor constructs a HealthMonitor collector.
func NewHealthMonitor(network string) *HealthMonitor {
	return &HealthMonitor{network: orUnknown(network)}
}

// ObserveProbe records a probe outcome and duration.
func (m HealthMonitor) ObserveProbe(err error, started time.Time) {
	status := statusLabel(err)
	healthProbeTotal.WithLabelValues(m.network, status).Inc()
	healthProbeDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveHealth publishes the connection state after a probe.
func (m HealthMonitor) ObserveHealth(connected bool, health int) {
	healthCounter.WithLabelValues(m.network).Set(float64(health))
	v := 0.0
	if connected {
		v = 1
	}
	healthConnected.WithLabelValues(m.network).Set(v)
}
