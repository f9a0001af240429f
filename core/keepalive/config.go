package keepalive

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/codewandler/keepalive-go/core/cache"
)

// Property names reported to a Watcher.
const (
	PropInclude = "include"
	PropExclude = "exclude"
	PropMax     = "max"
)

type Config struct {
	// ID names the container in logs and metrics. Defaults to
	// "keepalive-<random>".
	ID string
	// Include and Exclude are filters as understood by match.Matches.
	// nil, "" and nil values of the supported types disable the filter.
	Include any
	Exclude any
	// Max bounds the number of cached instances, see ParseMax.
	Max any
	// Watcher, when set, delivers changes of include, exclude and max.
	Watcher Watcher
	// OnHandOver receives instances that left the cache without being
	// destroyed because they share the displayed node's tag. The host owns
	// them from then on and must destroy them once it stops displaying
	// them.
	OnHandOver func(key string, inst cache.Instance)
	Log        *slog.Logger
	Metrics    Metrics
}

// ParseMax converts a configured max value to a bound. Integers are used
// as is, floats are truncated and strings yield their leading integer.
// Anything else, and any value below 1, yields 0 which means no limit.
func ParseMax(v any) int {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		n = clampUint(uint64(x))
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		n = clampUint(x)
	case float32:
		n = truncFloat(float64(x))
	case float64:
		n = truncFloat(x)
	case string:
		n = parseIntString(x)
	default:
		return 0
	}
	if n <= 0 {
		return 0
	}
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

func clampUint(u uint64) int64 {
	if u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}

func truncFloat(f float64) int64 {
	if math.IsNaN(f) || f < 1 {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(f)
}

// parseIntString reads the leading decimal integer of s after optional
// whitespace and sign, ignoring whatever follows: "3px" is 3, "2.5" is 2
// and "1e3" is 1.
func parseIntString(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		if s[0] == '-' {
			return 0
		}
		return math.MaxInt64
	}
	return n
}
