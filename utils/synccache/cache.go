package synccache

import (
	"time"

	"github.com/zijiren233/gencontainer/rwmap"
)

// SyncCache is a concurrency safe map with per-entry expiration, trimmed
// by a background ticker. Used for single-use oauth2 states.
type SyncCache[K comparable, V any] struct {
	cache  rwmap.RWMap[K, *Entry[V]]
	ticker *time.Ticker
}

func NewSyncCache[K comparable, V any](trimTime time.Duration) *SyncCache[K, V] {
	sc := &SyncCache[K, V]{
		ticker: time.NewTicker(trimTime),
	}
	go func() {
		for range sc.ticker.C {
			sc.trim()
		}
	}()
	return sc
}

func (sc *SyncCache[K, V]) trim() {
	sc.cache.Range(func(key K, value *Entry[V]) bool {
		if value.IsExpired() {
			sc.cache.LoadAndDelete(key)
		}
		return true
	})
}

func (sc *SyncCache[K, V]) Store(key K, value V, expire time.Duration) {
	sc.cache.Store(key, NewEntry(value, expire))
}

func (sc *SyncCache[K, V]) Load(key K) (value *Entry[V], loaded bool) {
	e, ok := sc.cache.Load(key)
	if ok && !e.IsExpired() {
		return e, ok
	}
	return
}

func (sc *SyncCache[K, V]) LoadAndDelete(key K) (value *Entry[V], loaded bool) {
	e, loaded := sc.cache.LoadAndDelete(key)
	if loaded && !e.IsExpired() {
		return e, loaded
	}
	return nil, false
}

func (sc *SyncCache[K, V]) Delete(key K) {
	sc.cache.Delete(key)
}

func (sc *SyncCache[K, V]) Clear() {
	sc.cache.Clear()
}

func (sc *SyncCache[K, V]) Releases() {
	sc.ticker.Stop()
	sc.cache.Clear()
}
