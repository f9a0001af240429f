package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/keepalive-go/core/keepalive"
	"github.com/codewandler/keepalive-go/core/metrics"
)

// anonymous labels components without a logical name.
const anonymous = "<anonymous>"

// keepAliveMetrics implements keepalive.Metrics using Prometheus.
type keepAliveMetrics struct {
	hits           *prometheus.CounterVec
	misses         *prometheus.CounterVec
	bypasses       *prometheus.CounterVec
	evictions      *prometheus.CounterVec
	entries        *prometheus.GaugeVec
	commitDuration prometheus.Histogram
}

// NewKeepAliveMetrics creates a Prometheus implementation of
// keepalive.Metrics and registers its collectors with reg.
func NewKeepAliveMetrics(reg prometheus.Registerer) keepalive.Metrics {
	m := &keepAliveMetrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keepalive_cache_hits_total",
			Help: "Total number of renders served from the instance cache",
		}, []string{"component"}),

		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keepalive_cache_misses_total",
			Help: "Total number of renders staged for caching",
		}, []string{"component"}),

		bypasses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keepalive_bypass_total",
			Help: "Total number of renders rejected by include/exclude filters",
		}, []string{"component"}),

		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keepalive_evictions_total",
			Help: "Total number of evicted cache entries",
		}, []string{"reason", "destroyed"}),

		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "keepalive_cache_entries",
			Help: "Current number of cached instances",
		}, []string{"container"}),

		commitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "keepalive_commit_duration_seconds",
			Help:    "Time spent committing a rendered instance to the cache",
			Buckets: commitBuckets,
		}),
	}

	reg.MustRegister(
		m.hits,
		m.misses,
		m.bypasses,
		m.evictions,
		m.entries,
		m.commitDuration,
	)

	return m
}

func componentLabel(name string) string {
	if name == "" {
		return anonymous
	}
	return name
}

func (m *keepAliveMetrics) CacheHit(name string) {
	m.hits.WithLabelValues(componentLabel(name)).Inc()
}

func (m *keepAliveMetrics) CacheMiss(name string) {
	m.misses.WithLabelValues(componentLabel(name)).Inc()
}

func (m *keepAliveMetrics) Bypass(name string) {
	m.bypasses.WithLabelValues(componentLabel(name)).Inc()
}

func (m *keepAliveMetrics) Evicted(reason string, destroyed bool) {
	m.evictions.WithLabelValues(reason, boolToStr(destroyed)).Inc()
}

func (m *keepAliveMetrics) Entries(container string, n int) {
	m.entries.WithLabelValues(container).Set(float64(n))
}

func (m *keepAliveMetrics) CommitDuration() metrics.Timer {
	return newTimer(m.commitDuration)
}

var _ keepalive.Metrics = (*keepAliveMetrics)(nil)
