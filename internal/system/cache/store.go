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

// Package cache provides a named, bounded, expiring in-memory cache with
// a process-wide registry and memoizing wrappers for expensive reads.
package cache

import (
	"sync"
	"time"

	"github.com/gddickinson/tea-explorer-sub000/internal/system/log"
)

// Store is a thread-safe key-value cache with TTL expiry and a capacity
// bound. Expired entries are removed lazily on Get; when an insert would
// exceed the capacity, the oldest-inserted entry is evicted. Eviction is
// by insertion age, not recency of use.
type Store[T any] struct {
	name    string
	ttl     time.Duration
	maxSize int

	mu      sync.Mutex
	entries map[Key]entry[T]
	seq     uint64
	stats   Stats

	// now is replaceable in tests to simulate the passage of time.
	now func() time.Time
}

// newStore creates a store with the given TTL and capacity. Non-positive
// values fall back to the package defaults.
func newStore[T any](name string, ttl time.Duration, maxSize int) *Store[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Store[T]{
		name:    name,
		ttl:     ttl,
		maxSize: maxSize,
		entries: make(map[Key]entry[T]),
		now:     time.Now,
	}
}

// Name returns the name of the store.
func (s *Store[T]) Name() string {
	return s.name
}

// TTL returns the store's entry time-to-live.
func (s *Store[T]) TTL() time.Duration {
	return s.ttl
}

// MaxSize returns the store's capacity bound.
func (s *Store[T]) MaxSize() int {
	return s.maxSize
}

// Get retrieves a value from the store. An entry older than the TTL is
// removed, counted as one eviction and one miss, and never returned. A hit
// does not refresh the entry's timestamp.
func (s *Store[T]) Get(key Key) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		s.stats.Misses++
		var zero T
		return zero, false
	}

	if s.now().Sub(e.createdAt) > s.ttl {
		delete(s.entries, key)
		s.stats.Evictions++
		s.stats.Misses++
		var zero T
		return zero, false
	}

	s.stats.Hits++
	return e.value, true
}

// Set inserts or replaces the entry for key. When the key is new and the
// store is at capacity, the oldest-inserted entry is evicted first.
func (s *Store[T]) Set(key Key, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.maxSize {
		s.evictOldest()
	}

	s.seq++
	s.entries[key] = entry[T]{
		value:     value,
		createdAt: s.now(),
		seq:       s.seq,
	}
}

// evictOldest removes the entry with the smallest creation timestamp.
// Equal timestamps are resolved by insertion order. Caller holds the lock.
func (s *Store[T]) evictOldest() {
	var (
		oldestKey Key
		oldest    entry[T]
		found     bool
	)
	for k, e := range s.entries {
		if !found || e.createdAt.Before(oldest.createdAt) ||
			(e.createdAt.Equal(oldest.createdAt) && e.seq < oldest.seq) {
			oldestKey = k
			oldest = e
			found = true
		}
	}
	if found {
		delete(s.entries, oldestKey)
		s.stats.Evictions++

		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheStore"),
			log.String(log.LoggerKeyCacheName, s.name))
		logger.Debug("Cache entry evicted", log.String("key", oldestKey.ToString()))
	}
}

// Clear removes all entries. Counters are left untouched so historical
// hit-rate context survives manual clears.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[Key]entry[T])
}

// Size returns the current number of entries.
func (s *Store[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Stats returns a copy of the store's access counters.
func (s *Store[T]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// ResetStats zeroes the store's access counters.
func (s *Store[T]) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = Stats{}
}
