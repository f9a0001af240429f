package cache

// Instance is a live, materialized subtree. Destroy tears it down
// synchronously; the store calls it at most once per entry. Instances are
// compared by identity, so implementations should be pointer types.
type Instance interface {
	Destroy()
}

// Entry is one cached subtree. Name is the logical component name used for
// filter matching, Tag the structural element type. Either may be empty,
// which means absent.
type Entry struct {
	Name     string
	Tag      string
	Instance Instance
}

// EvictReason tells why an entry left the store.
type EvictReason string

const (
	ReasonCapacity EvictReason = "capacity"
	ReasonFilter   EvictReason = "filter"
	ReasonTeardown EvictReason = "teardown"
	ReasonExplicit EvictReason = "explicit"
	ReasonReplaced EvictReason = "replaced"
)

// EvictFunc observes evictions. destroyed is false when the reuse guard
// kept the instance alive.
type EvictFunc func(key string, e Entry, reason EvictReason, destroyed bool)

// Guard carries the tag of the currently displayed node, if any.
type Guard struct {
	tag string
	ok  bool
}

// NoGuard destroys every evicted instance.
var NoGuard = Guard{}

// GuardTag protects instances whose entry tag equals tag.
func GuardTag(tag string) Guard { return Guard{tag: tag, ok: true} }

// Protects reports whether an entry with the given tag must survive eviction.
func (g Guard) Protects(tag string) bool { return g.ok && g.tag == tag }
