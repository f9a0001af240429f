package match

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

const (
	regexpPrefix = "re:"
	globPrefix   = "glob:"
)

var ErrInvalidPattern = errors.New("invalid pattern")

// Parse builds a filter from configuration text.
//
//	""            -> nil (no filter)
//	"re:^Foo"     -> *regexp.Regexp
//	"glob:*View"  -> glob.Glob
//	"Foo,Bar"     -> "Foo,Bar" (literal list)
func Parse(text string) (any, error) {
	switch {
	case text == "":
		return nil, nil
	case strings.HasPrefix(text, regexpPrefix):
		re, err := regexp.Compile(strings.TrimPrefix(text, regexpPrefix))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, text, err)
		}
		return re, nil
	case strings.HasPrefix(text, globPrefix):
		g, err := glob.Compile(strings.TrimPrefix(text, globPrefix))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, text, err)
		}
		return g, nil
	default:
		return text, nil
	}
}
