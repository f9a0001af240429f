// Package prometheus provides the Prometheus implementation of the
// keep-alive container metrics port.
package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/keepalive-go/core/metrics"
)

// timer wraps a Prometheus observer to implement metrics.Timer.
type timer struct {
	h     prometheus.Observer
	start time.Time
}

func newTimer(h prometheus.Observer) metrics.Timer {
	return &timer{h: h, start: time.Now()}
}

func (t *timer) ObserveDuration() {
	t.h.Observe(time.Since(t.start).Seconds())
}

// Commits only touch in-memory state, so buckets start at one microsecond.
var commitBuckets = prometheus.ExponentialBuckets(1e-6, 4, 10)

func boolToStr(b bool) string { return strconv.FormatBool(b) }
