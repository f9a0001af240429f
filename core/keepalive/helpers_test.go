package keepalive

import (
	"io"
	"log/slog"
	"testing"

	"github.com/codewandler/keepalive-go/core/metrics"
)

type fooView struct{}

func (fooView) ComponentName() string { return "Foo" }

type barView struct{}

func (barView) ComponentName() string { return "Bar" }

type anonView struct{}

// page is one component type rendered under many names.
type page struct{ name string }

func (p page) ComponentName() string { return p.name }

type customID struct{ id string }

func (c customID) ComponentID() string { return c.id }

type instance struct {
	id        int
	destroyed int
}

func (i *instance) Destroy() { i.destroyed++ }

// host stands in for the patcher: it materializes every fresh component
// node it is handed and commits afterwards.
type host struct {
	t     *testing.T
	c     *Container
	built int
}

func newHost(t *testing.T, cfg Config) *host {
	t.Helper()
	if cfg.Log == nil {
		cfg.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &host{t: t, c: New(cfg)}
}

func (h *host) materialize(out []*Node) {
	for _, n := range out {
		if n.IsComponent() && n.Instance == nil {
			h.built++
			n.Instance = &instance{id: h.built}
		}
	}
}

// render runs one full pass for a single-node slot.
func (h *host) render(n *Node) *Node {
	h.t.Helper()
	out := h.c.Render([]*Node{n})
	h.materialize(out)
	h.c.Updated()
	return out[0]
}

func inst(t *testing.T, n *Node) *instance {
	t.Helper()
	i, ok := n.Instance.(*instance)
	if !ok {
		t.Fatalf("node has no instance: %+v", n)
	}
	return i
}

type recordingMetrics struct {
	hits, misses, bypasses map[string]int
	evicted                map[string]int
	destroyed              int
	entries                int
	commits                int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		hits:     map[string]int{},
		misses:   map[string]int{},
		bypasses: map[string]int{},
		evicted:  map[string]int{},
	}
}

func (m *recordingMetrics) CacheHit(name string)  { m.hits[name]++ }
func (m *recordingMetrics) CacheMiss(name string) { m.misses[name]++ }
func (m *recordingMetrics) Bypass(name string)    { m.bypasses[name]++ }
func (m *recordingMetrics) Evicted(reason string, destroyed bool) {
	m.evicted[reason]++
	if destroyed {
		m.destroyed++
	}
}
func (m *recordingMetrics) Entries(_ string, n int) { m.entries = n }
func (m *recordingMetrics) CommitDuration() metrics.Timer {
	m.commits++
	return metrics.NopTimer()
}

func keyed(typ any, key string) *Node { return &Node{Type: typ, Key: key} }

func tagged(typ any, tag string) *Node { return &Node{Type: typ, Tag: tag} }
