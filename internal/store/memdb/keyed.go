package memdb

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/hedisam/aeexplorer/internal/store"
)

// Keyed is a concurrent collection of records indexed by a record specific key.
type Keyed[K comparable, V any] struct {
	records *xsync.MapOf[K, V]
}

func NewKeyed[K comparable, V any](opts ...Option) *Keyed[K, V] {
	cfg := newConfig(opts)
	return &Keyed[K, V]{
		records: xsync.NewMapOf[K, V](xsync.WithPresize(cfg.memSize)),
	}
}

// Merge inserts the record unless the key is already present, in which case the
// existing record is kept. It reports whether the record was inserted.
func (k *Keyed[K, V]) Merge(_ context.Context, key K, record V) bool {
	_, loaded := k.records.LoadOrStore(key, record)
	return !loaded
}

// Upsert inserts the record, overwriting any record stored under the same key.
func (k *Keyed[K, V]) Upsert(_ context.Context, key K, record V) {
	k.records.Store(key, record)
}

// Get returns the record stored under key or store.ErrNotFound.
func (k *Keyed[K, V]) Get(_ context.Context, key K) (V, error) {
	record, ok := k.records.Load(key)
	if !ok {
		var zero V
		return zero, store.ErrNotFound
	}
	return record, nil
}

// Len returns the number of stored records.
func (k *Keyed[K, V]) Len() int {
	return k.records.Size()
}

// All returns a snapshot of the collection.
func (k *Keyed[K, V]) All(_ context.Context) map[K]V {
	out := make(map[K]V, k.records.Size())
	k.records.Range(func(key K, record V) bool {
		out[key] = record
		return true
	})
	return out
}
