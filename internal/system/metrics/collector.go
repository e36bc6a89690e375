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

// Package metrics records wall-clock duration samples per named operation
// and exposes aggregate statistics and rankings for diagnostics.
package metrics

import (
	"sort"
	"sync"
	"time"
)

// OperationMetrics holds the running aggregates for one named operation.
type OperationMetrics struct {
	Name  string
	Count int64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Last  time.Duration
}

// Avg returns the mean duration per call, or 0 when nothing was recorded.
func (m OperationMetrics) Avg() time.Duration {
	if m.Count == 0 {
		return 0
	}
	return m.Total / time.Duration(m.Count)
}

// Collector aggregates duration samples per operation name. It is safe for
// concurrent use and has no dependency on the cache subsystem. Recording
// never fails: when disabled it is a no-op.
type Collector struct {
	mu      sync.RWMutex
	ops     map[string]*OperationMetrics
	enabled bool
}

// NewCollector creates an enabled collector.
func NewCollector() *Collector {
	return &Collector{
		ops:     make(map[string]*OperationMetrics),
		enabled: true,
	}
}

// Record folds one duration sample into the named operation's aggregates.
// A no-op while the collector is disabled.
func (c *Collector) Record(operation string, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return
	}

	m, exists := c.ops[operation]
	if !exists {
		m = &OperationMetrics{Name: operation, Min: d, Max: d}
		c.ops[operation] = m
	}

	m.Count++
	m.Total += d
	m.Last = d
	if d < m.Min {
		m.Min = d
	}
	if d > m.Max {
		m.Max = d
	}
}

// StatsFor returns a copy of the named operation's aggregates.
func (c *Collector) StatsFor(operation string) (OperationMetrics, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, exists := c.ops[operation]
	if !exists {
		return OperationMetrics{}, false
	}
	return *m, true
}

// AllStats returns a copy of every operation's aggregates.
func (c *Collector) AllStats() map[string]OperationMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make(map[string]OperationMetrics, len(c.ops))
	for name, m := range c.ops {
		all[name] = *m
	}
	return all
}

// Slowest returns up to n operations ordered by average duration, highest
// first.
func (c *Collector) Slowest(n int) []OperationMetrics {
	return c.ranked(n, func(a, b OperationMetrics) bool {
		if a.Avg() != b.Avg() {
			return a.Avg() > b.Avg()
		}
		return a.Name < b.Name
	})
}

// MostCalled returns up to n operations ordered by call count, highest
// first.
func (c *Collector) MostCalled(n int) []OperationMetrics {
	return c.ranked(n, func(a, b OperationMetrics) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})
}

// ranked snapshots all operations and returns the top n under less.
func (c *Collector) ranked(n int, less func(a, b OperationMetrics) bool) []OperationMetrics {
	c.mu.RLock()
	ops := make([]OperationMetrics, 0, len(c.ops))
	for _, m := range c.ops {
		ops = append(ops, *m)
	}
	c.mu.RUnlock()

	sort.Slice(ops, func(i, j int) bool { return less(ops[i], ops[j]) })
	if n > 0 && len(ops) > n {
		ops = ops[:n]
	}
	return ops
}

// Reset clears all recorded operations. The enabled flag is unaffected.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = make(map[string]*OperationMetrics)
}

// Enable turns recording on.
func (c *Collector) Enable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = true
}

// Disable turns recording off without clearing existing data.
func (c *Collector) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = false
}

// IsEnabled reports whether new samples are being recorded.
func (c *Collector) IsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}
