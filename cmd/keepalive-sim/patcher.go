package main

import (
	"log/slog"

	"github.com/codewandler/keepalive-go/core/cache"
	"github.com/codewandler/keepalive-go/core/keepalive"
)

// instance is a materialized view.
type instance struct {
	id        int
	name      string
	log       *slog.Logger
	destroyed bool
}

func (i *instance) Destroy() {
	if i.destroyed {
		i.log.Error("instance destroyed twice", slog.Int("id", i.id))
		return
	}
	i.destroyed = true
	i.log.Info("destroyed", slog.String("view", i.name), slog.Int("id", i.id))
}

// patcher plays the renderer around the container: it materializes fresh
// nodes and tears down the previous one unless the cache owns it.
type patcher struct {
	log       *slog.Logger
	current   *keepalive.Node
	adopted   cache.Instance // displayed instance the cache handed back
	built     int
	reused    int
	destroyed int
}

// adopt takes ownership of an instance the container let go without
// destroying it. Anything not on screen is torn down right away.
func (p *patcher) adopt(key string, inst cache.Instance) {
	if p.current != nil && p.current.Instance == inst {
		p.log.Debug("adopted displayed instance", slog.String("key", key))
		p.adopted = inst
		return
	}
	inst.Destroy()
	p.destroyed++
}

func (p *patcher) patch(out []*keepalive.Node) {
	next := out[0]
	if next.Instance == nil {
		p.built++
		next.Instance = &instance{id: p.built, name: next.Name(), log: p.log}
		p.log.Info("constructed", slog.String("view", next.Name()), slog.Int("id", p.built))
	} else if next.KeptAlive {
		p.reused++
	}

	if prev := p.current; prev != nil && prev.Instance != next.Instance {
		if !prev.KeepAlive || prev.Instance == p.adopted {
			prev.Instance.Destroy()
			p.destroyed++
		}
		p.adopted = nil
	}
	p.current = next
}
