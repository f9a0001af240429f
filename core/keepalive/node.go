package keepalive

import (
	"github.com/codewandler/keepalive-go/core/cache"
	"github.com/codewandler/keepalive-go/internal/reflector"
)

// Node is one render request for a child subtree.
type Node struct {
	// Type is the component the node renders. nil for plain elements,
	// which are never cached.
	Type any
	// Key is an explicit identity key. Empty means none.
	Key string
	// Tag is the structural element type the component is registered under.
	Tag string

	// Instance is the live subtree. The host sets it when it materializes
	// the node; the container sets it on a cache hit.
	Instance cache.Instance

	// KeepAlive marks the node as cache managed: its instance is destroyed
	// by the cache, never by the host.
	KeepAlive bool
	// KeptAlive is set when the instance was served from the cache.
	KeptAlive bool
}

// Named is implemented by components that carry a logical name used for
// include/exclude filtering.
type Named interface {
	ComponentName() string
}

// Identified is implemented by components that provide their own
// constructor identity. Components without it are identified by their Go
// type plus their name, so func-typed or anonymous components sharing a
// type should implement it.
type Identified interface {
	ComponentID() string
}

// IsComponent reports whether n renders a component.
func (n *Node) IsComponent() bool {
	return n != nil && n.Type != nil
}

// Name returns the logical component name, or "" when the component has
// none.
func (n *Node) Name() string {
	if named, ok := n.Type.(Named); ok {
		return named.ComponentName()
	}
	return ""
}

// ComponentID returns the constructor identity of a component. Without
// Identified it is the Go type name, suffixed with "#name" for Named
// components so that values of one type with different names never share
// an identity.
func ComponentID(component any) string {
	if id, ok := component.(Identified); ok {
		return id.ComponentID()
	}
	typeName := reflector.TypeInfoOf(component).Name
	if named, ok := component.(Named); ok {
		if name := named.ComponentName(); name != "" {
			return typeName + "#" + name
		}
	}
	return typeName
}
