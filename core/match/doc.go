// Package match decides whether a component name satisfies an include or
// exclude filter.
//
// A filter is an untyped value so hosts can pass whatever their
// configuration produced:
//
//   - nil: never matches
//   - string: comma separated literal names, "Foo,Bar"
//   - []string, *ds.Set[string], map[string]struct{}: literal names
//   - *regexp.Regexp: unanchored regular expression
//   - glob.Glob: a compiled github.com/gobwas/glob pattern
//   - []any: matches when any element matches
//
// Any other value never matches; it is not reported as misconfiguration.
// Use [Parse] to build a filter from configuration text.
package match
