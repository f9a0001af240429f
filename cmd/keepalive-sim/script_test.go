package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codewandler/keepalive-go/core/keepalive"
)

func TestParseScript(t *testing.T) {
	steps, err := parseScript("Home, Users@list ,,k1=Profile@card")
	require.NoError(t, err)
	require.Equal(t, []step{
		{name: "Home"},
		{name: "Users", tag: "list"},
		{name: "Profile", tag: "card", key: "k1"},
	}, steps)
	require.Equal(t, "k1=Profile@card", steps[2].String())
}

func TestParseScript_Errors(t *testing.T) {
	_, err := parseScript(" , ")
	require.Error(t, err)

	_, err = parseScript("Home,@tag")
	require.Error(t, err)
}

func TestStep_Node(t *testing.T) {
	n := step{name: "Home", tag: "main"}.node()
	require.Equal(t, "Home", n.Name())
	require.Equal(t, "view:Home::main", keepalive.ResolveKey(n))
}

func TestPatcher_WithContainer(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := keepalive.New(keepalive.Config{Max: 2, Log: log})
	p := &patcher{log: log}

	steps, err := parseScript("Home,Users,Home,Settings,Users")
	require.NoError(t, err)
	for _, s := range steps {
		p.patch(c.Render([]*keepalive.Node{s.node()}))
		c.Updated()
	}

	// Home, Users, Settings built; Home reused; Users evicted by Settings then rebuilt
	require.Equal(t, 4, p.built)
	require.Equal(t, 1, p.reused)
	require.Equal(t, 0, p.destroyed)
	require.Equal(t, []string{"view:Settings", "view:Users"}, c.Keys())
}

func TestPatcher_AdoptsHandedOverInstance(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := &patcher{log: log}
	c := keepalive.New(keepalive.Config{OnHandOver: p.adopt, Log: log})

	for _, s := range []step{{name: "Users"}, {name: "Home", tag: "main"}} {
		p.patch(c.Render([]*keepalive.Node{s.node()}))
		c.Updated()
	}
	home := p.current.Instance.(*instance)

	// Home is displayed and shares the guarded tag, so it survives the sweep
	c.SetExclude("Home,Users")
	require.Equal(t, 0, c.Len())
	require.Same(t, home, p.adopted)
	require.False(t, home.destroyed)

	p.patch(c.Render([]*keepalive.Node{step{name: "Settings"}.node()}))
	c.Updated()
	require.True(t, home.destroyed)
	require.Equal(t, 1, p.destroyed)
}

func TestPatcher_DestroysUncachedNodes(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := keepalive.New(keepalive.Config{Exclude: "Home", Log: log})
	p := &patcher{log: log}

	for _, s := range []step{{name: "Home"}, {name: "Users"}} {
		p.patch(c.Render([]*keepalive.Node{s.node()}))
		c.Updated()
	}

	require.Equal(t, 2, p.built)
	require.Equal(t, 1, p.destroyed)
	require.Equal(t, []string{"view:Users"}, c.Keys())
}
