package cache

import (
	"github.com/codewandler/keepalive-go/core/ds"
)

type Options struct {
	// Max bounds the number of live entries. <= 0 means no limit.
	Max int
	// OnEvict is called after an entry has been removed.
	OnEvict EvictFunc
}

// Store maps cache keys to entries and keeps the keys in recency order,
// oldest first. entries and order always hold the same key set.
type Store struct {
	entries map[string]*Entry
	order   *ds.StringSet
	max     int
	onEvict EvictFunc
}

func New(opts Options) *Store {
	return &Store{
		entries: make(map[string]*Entry),
		order:   ds.NewStringSet(),
		max:     opts.Max,
		onEvict: opts.OnEvict,
	}
}

// Get looks up key without touching the recency order.
func (s *Store) Get(key string) (Entry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Touch marks key as most recently used. No-op if absent.
func (s *Store) Touch(key string) {
	if _, ok := s.entries[key]; !ok {
		return
	}
	s.order.Touch(key)
}

// Insert stores e under key as the most recently used entry. When this
// breaches Max the single oldest entry is evicted, guarded by g.
//
// Replacing a present key destroys the previous instance unless it is the
// same instance.
func (s *Store) Insert(key string, e Entry, g Guard) {
	if old, ok := s.entries[key]; ok && old.Instance != e.Instance {
		prev := *old
		// the slot is overwritten before the old instance is torn down
		*old = e
		s.order.Touch(key)
		s.release(key, prev, ReasonReplaced, NoGuard)
	} else {
		s.entries[key] = &e
		s.order.Touch(key)
	}

	if s.max > 0 && s.order.Len() > s.max {
		if oldest, ok := s.order.Front(); ok {
			s.evict(oldest, g, ReasonCapacity)
		}
	}
}

// Evict removes key. Its instance is destroyed unless g protects the
// entry's tag, in which case the caller owns the live instance. Evicting an
// absent key is a no-op and reports false.
func (s *Store) Evict(key string, g Guard) (Entry, bool) {
	return s.evict(key, g, ReasonExplicit)
}

// Sweep evicts every named entry for which keep returns false. Entries
// without a name are never swept. It returns the number of evicted entries.
func (s *Store) Sweep(keep func(name string) bool, g Guard) int {
	n := 0
	for _, key := range s.order.Values() {
		e := s.entries[key]
		if e.Name == "" || keep(e.Name) {
			continue
		}
		s.evict(key, g, ReasonFilter)
		n++
	}
	return n
}

// DestroyAll evicts and destroys every entry regardless of tags.
func (s *Store) DestroyAll() int {
	keys := s.order.Values()
	for _, key := range keys {
		s.evict(key, NoGuard, ReasonTeardown)
	}
	return len(keys)
}

func (s *Store) evict(key string, g Guard, reason EvictReason) (Entry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return Entry{}, false
	}
	// drop the slot first so a re-entrant eviction can never see it again
	delete(s.entries, key)
	s.order.Remove(key)
	s.release(key, *e, reason, g)
	return *e, true
}

func (s *Store) release(key string, e Entry, reason EvictReason, g Guard) {
	destroyed := false
	if e.Instance != nil && !g.Protects(e.Tag) {
		e.Instance.Destroy()
		destroyed = true
	}
	if s.onEvict != nil {
		s.onEvict(key, e, reason, destroyed)
	}
}

// SetMax changes the live entry bound. A lower bound takes effect on the
// next Insert.
func (s *Store) SetMax(n int) { s.max = n }

func (s *Store) Max() int { return s.max }

func (s *Store) Len() int { return len(s.entries) }

// Keys returns the live keys, least recently used first.
func (s *Store) Keys() []string { return s.order.Values() }
