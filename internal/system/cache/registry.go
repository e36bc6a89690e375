/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gddickinson/tea-explorer-sub000/internal/system/log"
)

const registryLoggerComponentName = "CacheRegistry"

// ErrTypeMismatch is returned when a cache name is already bound to a store
// of a different value type.
var ErrTypeMismatch = errors.New("cache: store exists with a different value type")

// StoreHandle is the type-erased view of a store held by the registry.
type StoreHandle interface {
	Name() string
	Size() int
	Stats() Stats
	Clear()
	ResetStats()
}

// Registry manages the lifecycle of named cache stores. A name maps to at
// most one store for the lifetime of the registry; stores are created on
// first request and live until the process exits.
//
// The registry is a constructed object, wired into whatever layer needs it,
// rather than ambient global state.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]StoreHandle
}

// NewRegistry creates an empty cache registry.
func NewRegistry() *Registry {
	return &Registry{
		stores: make(map[string]StoreHandle),
	}
}

// GetOrCreate returns the store registered under name, creating it with the
// given TTL and capacity on first request. The parameters are fixed at first
// creation; later calls for the same name with different values are silently
// ignored. Concurrent first-time callers receive the same store.
//
// The value type is part of the store's identity: requesting an existing
// name with a different type parameter returns ErrTypeMismatch.
func GetOrCreate[T any](r *Registry, name string, ttl time.Duration, maxSize int) (*Store[T], error) {
	r.mu.RLock()
	if handle, exists := r.stores[name]; exists {
		r.mu.RUnlock()
		return assertStoreType[T](name, handle)
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if handle, exists := r.stores[name]; exists {
		return assertStoreType[T](name, handle)
	}

	store := newStore[T](name, ttl, maxSize)
	r.stores[name] = store

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, registryLoggerComponentName))
	logger.Debug("Created cache store", log.String(log.LoggerKeyCacheName, name),
		log.Duration("ttl", store.TTL()), log.Int("maxSize", store.MaxSize()))

	return store, nil
}

// assertStoreType narrows the type-erased handle back to its typed form.
func assertStoreType[T any](name string, handle StoreHandle) (*Store[T], error) {
	store, ok := handle.(*Store[T])
	if !ok {
		return nil, fmt.Errorf("%w: cache %q holds %T", ErrTypeMismatch, name, handle)
	}
	return store, nil
}

// Lookup returns the type-erased handle for name, for read-only callers
// that must not create stores as a side effect.
func (r *Registry) Lookup(name string) (StoreHandle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handle, exists := r.stores[name]
	return handle, exists
}

// Clear empties the named store. Unknown names are ignored.
func (r *Registry) Clear(name string) {
	r.mu.RLock()
	handle, exists := r.stores[name]
	r.mu.RUnlock()

	if exists {
		handle.Clear()
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, registryLoggerComponentName)).
			Debug("Cleared cache store", log.String(log.LoggerKeyCacheName, name))
	}
}

// ClearAll empties every registered store.
func (r *Registry) ClearAll() {
	for _, handle := range r.handles() {
		handle.Clear()
	}
	log.GetLogger().With(log.String(log.LoggerKeyComponentName, registryLoggerComponentName)).
		Debug("Cleared all cache stores")
}

// Names returns the registered store names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.stores))
	for name := range r.stores {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// StatsSnapshot returns a point-in-time view of every store's size and
// counters. Each store is read under its own lock; counters may advance
// between two stores' reads, which is acceptable for observability.
func (r *Registry) StatsSnapshot() map[string]StoreStats {
	snapshot := make(map[string]StoreStats)
	for _, handle := range r.handles() {
		snapshot[handle.Name()] = StoreStats{
			Size:  handle.Size(),
			Stats: handle.Stats(),
		}
	}
	return snapshot
}

// LogStats emits one line per store with its size and hit rate.
func (r *Registry) LogStats(logger *log.Logger) {
	for name, stats := range r.StatsSnapshot() {
		logger.Info("Cache store stats",
			log.String(log.LoggerKeyCacheName, name),
			log.Int("size", stats.Size),
			log.Int64("hits", stats.Stats.Hits),
			log.Int64("misses", stats.Stats.Misses),
			log.Int64("evictions", stats.Stats.Evictions),
			log.Float64("hitRate", stats.Stats.HitRate()))
	}
}

// handles returns a stable copy of the registered handles without holding
// the registry lock across per-store operations.
func (r *Registry) handles() []StoreHandle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handles := make([]StoreHandle, 0, len(r.stores))
	for _, handle := range r.stores {
		handles = append(handles, handle)
	}
	return handles
}
