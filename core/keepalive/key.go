package keepalive

// ResolveKey returns the cache key for n. An explicit key wins; otherwise
// the key is the component identity, suffixed with "::tag" when the node
// has a tag, so one component registered under two tags yields two keys.
func ResolveKey(n *Node) string {
	if n.Key != "" {
		return n.Key
	}
	id := ComponentID(n.Type)
	if n.Tag != "" {
		return id + "::" + n.Tag
	}
	return id
}
