// SPDX-License-Identifier: MIT

// Package loader implements request-scoped batch loaders (spec §4.11):
// a small per-request memo that coalesces repeated load(k) calls
// against the same key within one GraphQL request, so a resolver fan-out
// like "25 members, each with their own scorecard" never degrades into
// 25 individual lookups.
package loader

import "sync"

// BatchFunc resolves every key in keys to its value in one pass. A key
// absent from the returned map is treated as not found.
type BatchFunc[K comparable, V any] func(keys []K) map[K]V

// Loader memoizes Load/LoadMany calls against a single BatchFunc for
// the lifetime of one request. It is not safe to reuse across requests
// and must not be shared between concurrently running requests.
type Loader[K comparable, V any] struct {
	batch BatchFunc[K, V]

	mu     sync.Mutex
	cached map[K]V
	missed map[K]bool
}

// New builds a Loader backed by batch. Callers typically construct one
// fresh Loader per loader kind per incoming GraphQL request.
func New[K comparable, V any](batch BatchFunc[K, V]) *Loader[K, V] {
	return &Loader[K, V]{
		batch:  batch,
		cached: make(map[K]V),
		missed: make(map[K]bool),
	}
}

// Load resolves a single key, using the cached value from a prior
// Load/LoadMany call within this request if present.
func (l *Loader[K, V]) Load(key K) (V, bool) {
	l.mu.Lock()
	if v, ok := l.cached[key]; ok {
		l.mu.Unlock()
		return v, true
	}
	if l.missed[key] {
		l.mu.Unlock()
		var zero V
		return zero, false
	}
	l.mu.Unlock()

	values := l.LoadMany([]K{key})
	v, ok := values[key]
	return v, ok
}

// LoadMany resolves every key not already cached in one call to batch,
// then returns the full requested set (from cache plus the fresh
// batch), coalescing repeated keys within this call.
func (l *Loader[K, V]) LoadMany(keys []K) map[K]V {
	l.mu.Lock()
	var toFetch []K
	seen := make(map[K]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		if _, ok := l.cached[k]; ok {
			continue
		}
		if l.missed[k] {
			continue
		}
		toFetch = append(toFetch, k)
	}
	l.mu.Unlock()

	if len(toFetch) > 0 {
		fresh := l.batch(toFetch)
		l.mu.Lock()
		for _, k := range toFetch {
			if v, ok := fresh[k]; ok {
				l.cached[k] = v
			} else {
				l.missed[k] = true
			}
		}
		l.mu.Unlock()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[K]V, len(keys))
	for k := range seen {
		if v, ok := l.cached[k]; ok {
			out[k] = v
		}
	}
	return out
}
