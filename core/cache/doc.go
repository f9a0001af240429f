// Package cache provides the instance store behind a keep-alive container:
// a keyed map of materialized subtree instances plus a recency order used
// for least-recently-used eviction.
//
// The store is owned by exactly one container and is not safe for
// concurrent use. It never creates instances; it only holds them and
// destroys them when they leave the store.
//
//	s := cache.New(cache.Options{Max: 10})
//	s.Insert("k", cache.Entry{Name: "Foo", Tag: "div", Instance: inst}, cache.NoGuard)
//	if e, ok := s.Get("k"); ok {
//	    s.Touch("k")
//	    // reuse e.Instance
//	}
//
// # Reuse Guard
//
// Every eviction takes a [Guard] naming the tag of the node the container
// currently displays. An evicted entry carrying that tag is about to be
// reused in place, so its instance is handed back instead of destroyed.
// [NoGuard] always destroys.
package cache
