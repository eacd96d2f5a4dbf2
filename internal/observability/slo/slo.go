// Package slo tracks the API's service level objectives. The HTTP
// metrics middleware feeds every finished request into the tracker,
// which keeps availability, error-rate, and tail-latency gauges current
// so alerting can compare them against the targets.
package slo

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Targets the service is held to.
const (
	// AvailabilityTarget is the target uptime ratio (99.9%).
	AvailabilityTarget = 0.999

	// LatencyP95Target is the p95 latency target in seconds.
	LatencyP95Target = 0.200

	// LatencyP99Target is the p99 latency target in seconds.
	LatencyP99Target = 0.500

	// ErrorRateTarget is the maximum acceptable 5xx ratio.
	ErrorRateTarget = 0.001
)

// latencyWindow bounds how many recent samples feed the percentile
// gauges.
const latencyWindow = 4096

var (
	availability = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_availability_ratio",
		Help: "Current availability ratio (0-1), target: 0.999",
	})
	latencyP95 = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_latency_p95_seconds",
		Help: "Current p95 latency in seconds, target: 0.200",
	})
	latencyP99 = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_latency_p99_seconds",
		Help: "Current p99 latency in seconds, target: 0.500",
	})
	errorRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_error_rate_ratio",
		Help: "Current error rate ratio (0-1), target: 0.001",
	})
)

// Tracker accumulates request outcomes and refreshes the SLO gauges.
type Tracker struct {
	mu        sync.Mutex
	total     int64
	errors    int64
	latencies []float64 // ring buffer of recent durations in seconds
	next      int
	filled    bool
}

var defaultTracker = &Tracker{latencies: make([]float64, latencyWindow)}

// Record feeds one finished request into the default tracker.
func Record(statusCode int, duration time.Duration) {
	defaultTracker.Record(statusCode, duration)
}

// Record registers a request outcome and updates the gauges.
func (t *Tracker) Record(statusCode int, duration time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total++
	if statusCode >= 500 {
		t.errors++
	}

	t.latencies[t.next] = duration.Seconds()
	t.next++
	if t.next == len(t.latencies) {
		t.next = 0
		t.filled = true
	}

	ratio := float64(t.total-t.errors) / float64(t.total)
	availability.Set(ratio)
	errorRate.Set(float64(t.errors) / float64(t.total))

	p95, p99 := t.percentilesLocked()
	latencyP95.Set(p95)
	latencyP99.Set(p99)
}

// percentilesLocked computes p95/p99 over the sample window. Callers
// hold t.mu.
func (t *Tracker) percentilesLocked() (p95, p99 float64) {
	n := t.next
	if t.filled {
		n = len(t.latencies)
	}
	if n == 0 {
		return 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, t.latencies[:n])
	sort.Float64s(sorted)

	idx := func(q float64) int {
		i := int(q * float64(n))
		if i >= n {
			i = n - 1
		}
		return i
	}
	return sorted[idx(0.95)], sorted[idx(0.99)]
}

// snapshot returns the counters for tests.
func (t *Tracker) snapshot() (total, errors int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total, t.errors
}
