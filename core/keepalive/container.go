package keepalive

import (
	"fmt"
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/codewandler/keepalive-go/core/cache"
	"github.com/codewandler/keepalive-go/core/match"
)

// staged is a node rendered on a cache miss, waiting for the host to
// materialize it.
type staged struct {
	key  string
	node *Node
}

// Container caches instances of its single child subtree.
type Container struct {
	id       string
	log      *slog.Logger
	metrics  Metrics
	store    *cache.Store
	handOver func(key string, inst cache.Instance)

	include any
	exclude any

	pending *staged
	current *Node // node returned by the last render
	stale   bool

	stops     []func()
	unmounted bool
}

// New creates a container with an empty cache and subscribes to cfg.Watcher.
func New(cfg Config) *Container {
	if cfg.ID == "" {
		cfg.ID = fmt.Sprintf("keepalive-%s", gonanoid.Must(6))
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = NopMetrics()
	}

	c := &Container{
		id:       cfg.ID,
		log:      cfg.Log.With(slog.String("container", cfg.ID)),
		metrics:  cfg.Metrics,
		handOver: cfg.OnHandOver,
		include:  filter(cfg.Include),
		exclude:  filter(cfg.Exclude),
	}
	c.store = cache.New(cache.Options{
		Max:     ParseMax(cfg.Max),
		OnEvict: c.onEvict,
	})

	if w := cfg.Watcher; w != nil {
		c.stops = append(c.stops,
			w.Watch(PropInclude, c.SetInclude),
			w.Watch(PropExclude, c.SetExclude),
			w.Watch(PropMax, c.SetMax),
		)
	}

	return c
}

func (c *Container) ID() string { return c.id }

// Render decides what to display for slot. The returned slice is slot
// itself; when caching applies its only node is marked KeepAlive and, on a
// hit, carries the cached instance.
//
// Slots with zero or several nodes, or whose node is not a component, are
// passed through untouched.
func (c *Container) Render(slot []*Node) []*Node {
	if c.unmounted || len(slot) != 1 || !slot[0].IsComponent() {
		c.current = nil
		return slot
	}

	node := slot[0]
	name := node.Name()
	if !c.eligible(name) {
		c.metrics.Bypass(name)
		c.current = node
		return slot
	}

	key := ResolveKey(node)
	if e, ok := c.store.Get(key); ok {
		node.Instance = e.Instance
		node.KeptAlive = true
		c.store.Touch(key)
		c.metrics.CacheHit(name)
		c.log.Debug("cache hit", slog.String("key", key), slog.String("name", name))
	} else {
		if c.pending != nil {
			c.log.Debug("staged node superseded", slog.String("key", c.pending.key))
		}
		c.pending = &staged{key: key, node: node}
		c.metrics.CacheMiss(name)
		c.log.Debug("cache miss, staged", slog.String("key", key), slog.String("name", name))
	}

	node.KeepAlive = true
	c.current = node
	return slot
}

// filter maps every absent filter value to nil.
func filter(v any) any {
	if match.Absent(v) {
		return nil
	}
	return v
}

func (c *Container) eligible(name string) bool {
	if c.include != nil && (name == "" || !match.Matches(c.include, name)) {
		return false
	}
	if c.exclude != nil && name != "" && match.Matches(c.exclude, name) {
		return false
	}
	return true
}

// Mounted commits the node staged by the first render.
func (c *Container) Mounted() { c.commit() }

// Updated commits the node staged by the latest render.
func (c *Container) Updated() { c.commit() }

func (c *Container) commit() {
	p := c.pending
	if p == nil {
		return
	}
	c.pending = nil

	if p.node.Instance == nil {
		c.log.Debug("staged node was not materialized", slog.String("key", p.key))
		return
	}

	defer c.metrics.CommitDuration().ObserveDuration()
	c.store.Insert(p.key, cache.Entry{
		Name:     p.node.Name(),
		Tag:      p.node.Tag,
		Instance: p.node.Instance,
	}, c.guard())
	c.metrics.Entries(c.id, c.store.Len())
	c.log.Debug("cached", slog.String("key", p.key), slog.Int("entries", c.store.Len()))
}

// guard protects entries sharing the displayed node's tag. An untagged node
// cannot be matched structurally and protects nothing.
func (c *Container) guard() cache.Guard {
	if c.current == nil || c.current.Tag == "" {
		return cache.NoGuard
	}
	return cache.GuardTag(c.current.Tag)
}

// Unmount destroys every cached instance and stops watching properties.
// Later renders pass through. Calling it again is a no-op.
func (c *Container) Unmount() {
	if c.unmounted {
		return
	}
	c.unmounted = true
	for _, stop := range c.stops {
		stop()
	}
	c.stops = nil

	n := c.store.DestroyAll()
	c.pending = nil
	c.current = nil
	c.metrics.Entries(c.id, 0)
	c.log.Debug("unmounted", slog.Int("destroyed", n))
}

// SetInclude replaces the include filter and evicts every named entry that
// no longer matches it. An absent filter (see match.Absent) clears it and
// evicts nothing.
func (c *Container) SetInclude(v any) {
	v = filter(v)
	c.include = v
	if v == nil {
		return
	}
	c.sweep(PropInclude, func(name string) bool { return match.Matches(v, name) })
}

// SetExclude replaces the exclude filter and evicts every named entry that
// matches it. An absent filter clears it and evicts nothing.
func (c *Container) SetExclude(v any) {
	v = filter(v)
	c.exclude = v
	if v == nil {
		return
	}
	c.sweep(PropExclude, func(name string) bool { return !match.Matches(v, name) })
}

// SetMax changes the cache bound, see ParseMax. Shrinking takes effect on
// the next commit.
func (c *Container) SetMax(v any) {
	c.store.SetMax(ParseMax(v))
}

func (c *Container) sweep(prop string, keep func(name string) bool) {
	if c.unmounted {
		return
	}
	n := c.store.Sweep(keep, c.guard())
	c.stale = true
	c.metrics.Entries(c.id, c.store.Len())
	c.log.Info("filter changed", slog.String("prop", prop), slog.Int("evicted", n))
}

// TakeStale reports whether a sweep ran since the last call and resets the
// flag. Hosts must re-derive the child slot instead of reusing a memoized
// one when it returns true.
func (c *Container) TakeStale() bool {
	s := c.stale
	c.stale = false
	return s
}

// Len returns the number of cached instances.
func (c *Container) Len() int { return c.store.Len() }

// Keys returns the cached keys, least recently used first.
func (c *Container) Keys() []string { return c.store.Keys() }

// Cached returns the instance cached under key.
func (c *Container) Cached(key string) (cache.Instance, bool) {
	e, ok := c.store.Get(key)
	return e.Instance, ok
}

func (c *Container) onEvict(key string, e cache.Entry, reason cache.EvictReason, destroyed bool) {
	c.metrics.Evicted(string(reason), destroyed)
	c.log.Debug("evicted",
		slog.String("key", key),
		slog.String("name", e.Name),
		slog.String("reason", string(reason)),
		slog.Bool("destroyed", destroyed),
	)
	if !destroyed && e.Instance != nil && c.handOver != nil {
		c.handOver(key, e.Instance)
	}
}
