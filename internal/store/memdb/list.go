package memdb

import (
	"context"
	"slices"
	"sync"
)

// List holds an ordered collection that is replaced as a whole on every write.
type List[V any] struct {
	items []V
	mu    sync.RWMutex
}

func NewList[V any]() *List[V] {
	return &List[V]{}
}

// Replace discards the current items and stores a copy of the given ones.
func (l *List[V]) Replace(_ context.Context, items []V) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = slices.Clone(items)
}

// Items returns a copy of the stored items.
func (l *List[V]) Items(_ context.Context) []V {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.items)
}

// Grouped holds one replace-on-write list per owner key, e.g. transactions per channel.
type Grouped[K comparable, V any] struct {
	groups map[K][]V
	mu     sync.RWMutex
}

func NewGrouped[K comparable, V any](opts ...Option) *Grouped[K, V] {
	cfg := newConfig(opts)
	return &Grouped[K, V]{
		groups: make(map[K][]V, cfg.memSize),
	}
}

// Replace stores a copy of items as the full list for key.
func (g *Grouped[K, V]) Replace(_ context.Context, key K, items []V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.groups[key] = slices.Clone(items)
}

// Items returns a copy of the list stored for key.
func (g *Grouped[K, V]) Items(_ context.Context, key K) ([]V, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	items, ok := g.groups[key]
	return slices.Clone(items), ok
}
