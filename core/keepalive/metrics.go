package keepalive

import "github.com/codewandler/keepalive-go/core/metrics"

// Metrics is the instrumentation port of a container. name is the logical
// component name, "" for anonymous components. Implementations are called
// from the render pipeline and must not block.
type Metrics interface {
	CacheHit(name string)
	CacheMiss(name string)
	Bypass(name string)
	Evicted(reason string, destroyed bool)
	Entries(container string, n int)
	CommitDuration() metrics.Timer
}

type nopMetrics struct{}

func (nopMetrics) CacheHit(string)               {}
func (nopMetrics) CacheMiss(string)              {}
func (nopMetrics) Bypass(string)                 {}
func (nopMetrics) Evicted(string, bool)          {}
func (nopMetrics) Entries(string, int)           {}
func (nopMetrics) CommitDuration() metrics.Timer { return metrics.NopTimer() }

// NopMetrics returns a Metrics implementation that records nothing.
func NopMetrics() Metrics { return nopMetrics{} }
