package match

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"github.com/codewandler/keepalive-go/core/ds"
)

// Matches reports whether name satisfies pattern. It has no side effects.
func Matches(pattern any, name string) bool {
	switch p := pattern.(type) {
	case nil:
		return false
	case string:
		return inList(p, name)
	case []string:
		for _, v := range p {
			if v == name {
				return true
			}
		}
		return false
	case *ds.Set[string]:
		return p != nil && p.Contains(name)
	case map[string]struct{}:
		_, ok := p[name]
		return ok
	case *regexp.Regexp:
		return p != nil && p.MatchString(name)
	case glob.Glob:
		return p.Match(name)
	case []any:
		for _, v := range p {
			if Matches(v, name) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Absent reports whether pattern configures no filter at all: nil, the
// empty string, or a nil value of one of the supported types. Empty but
// non-nil collections are filters that match nothing.
func Absent(pattern any) bool {
	switch p := pattern.(type) {
	case nil:
		return true
	case string:
		return p == ""
	case []string:
		return p == nil
	case *ds.Set[string]:
		return p == nil
	case map[string]struct{}:
		return p == nil
	case *regexp.Regexp:
		return p == nil
	case []any:
		return p == nil
	default:
		return false
	}
}

// inList walks the comma separated list without allocating.
func inList(list, name string) bool {
	for {
		i := strings.IndexByte(list, ',')
		if i < 0 {
			return list == name
		}
		if list[:i] == name {
			return true
		}
		list = list[i+1:]
	}
}
