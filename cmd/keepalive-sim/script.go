package main

import (
	"fmt"
	"strings"

	"github.com/codewandler/keepalive-go/core/keepalive"
)

// view is a scripted component. Its name doubles as its identity.
type view struct{ name string }

func (v view) ComponentName() string { return v.name }
func (v view) ComponentID() string   { return "view:" + v.name }

// step is one render pass of the script.
type step struct {
	name string
	tag  string
	key  string
}

func (s step) node() *keepalive.Node {
	return &keepalive.Node{Type: view{name: s.name}, Tag: s.tag, Key: s.key}
}

func (s step) String() string {
	out := s.name
	if s.tag != "" {
		out += "@" + s.tag
	}
	if s.key != "" {
		out = s.key + "=" + out
	}
	return out
}

// parseScript reads a comma separated list of steps, each written as
// [key=]Name[@tag].
func parseScript(text string) ([]step, error) {
	var steps []step
	for _, raw := range strings.Split(text, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		var s step
		if k, rest, ok := strings.Cut(raw, "="); ok {
			s.key, raw = k, rest
		}
		s.name, s.tag, _ = strings.Cut(raw, "@")
		if s.name == "" {
			return nil, fmt.Errorf("step %q: missing component name", raw)
		}
		steps = append(steps, s)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty script")
	}
	return steps, nil
}
