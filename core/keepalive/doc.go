// Package keepalive implements a keep-alive container: it sits between a
// host's render pipeline and a single child subtree and reuses previously
// materialized instances of that subtree instead of rebuilding them.
//
// The container never creates, patches or mounts anything. The host
// renders a slot, hands it to [Container.Render], materializes whatever
// comes back (binding [Node.Instance] on fresh nodes) and then calls
// [Container.Mounted] or [Container.Updated]. Only then is a freshly
// rendered instance committed to the cache.
//
// # Render Cycle
//
//	out := c.Render(slot)   // hit: out[0].Instance is the cached instance
//	patch(out)              // host materializes fresh nodes
//	c.Updated()             // commit the staged node, if any
//
// Nodes returned with KeepAlive set are owned by the cache: the host must
// not destroy their instances when they leave the tree. An instance the
// cache drops while it shares the displayed node's tag is not destroyed but
// passed to [Config.OnHandOver], after which the host owns it again.
//
// # Filters
//
// Include and Exclude accept every pattern form understood by
// [match.Matches]. A component without a name is never cached while an
// include filter is configured, and is never excluded. Changing a filter
// sweeps the cache, see [Container.SetInclude].
//
// Max bounds the number of cached instances; the least recently used one is
// evicted first.
//
// A Container is not safe for concurrent use. Render and commit calls must
// come from one render pipeline, in order.
package keepalive
