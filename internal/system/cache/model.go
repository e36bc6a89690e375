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

import "time"

// Key represents a key for the cache.
type Key string

// ToString returns the string representation of the Key.
func (k Key) ToString() string {
	return string(k)
}

// entry represents a single cache entry. The creation timestamp is fixed at
// insert time; a later Set for the same key replaces the whole entry.
type entry[T any] struct {
	value     T
	createdAt time.Time
	seq       uint64
}

// Stats holds the access counters of a single cache store.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

// Accesses returns the total number of lookups recorded.
func (s Stats) Accesses() int64 {
	return s.Hits + s.Misses
}

// HitRate returns the fraction of lookups satisfied from the cache,
// or 0 when no lookups have been recorded yet.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// StoreStats is a point-in-time view of one store's size and counters.
type StoreStats struct {
	Size  int
	Stats Stats
}
