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

// Package diagnostics bridges the cache and metrics subsystems to
// Prometheus for scraping. The bridge reads the same snapshots the
// reporting paths use; it holds no locks across subsystems.
package diagnostics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gddickinson/tea-explorer-sub000/internal/system/cache"
	"github.com/gddickinson/tea-explorer-sub000/internal/system/metrics"
)

const namespace = "tea_explorer"

// Exporter implements prometheus.Collector over the cache registry and the
// metrics collector. Register it with a prometheus.Registry to expose both
// subsystems on a scrape endpoint.
type Exporter struct {
	caches    *cache.Registry
	collector *metrics.Collector

	cacheSize      *prometheus.Desc
	cacheHits      *prometheus.Desc
	cacheMisses    *prometheus.Desc
	cacheEvictions *prometheus.Desc
	cacheHitRate   *prometheus.Desc

	opCalls        *prometheus.Desc
	opTotalSeconds *prometheus.Desc
	opAvgSeconds   *prometheus.Desc
	opMinSeconds   *prometheus.Desc
	opMaxSeconds   *prometheus.Desc
	opLastSeconds  *prometheus.Desc
}

// NewExporter creates an exporter over the given registry and collector.
// Either may be nil, in which case its metrics are omitted.
func NewExporter(caches *cache.Registry, collector *metrics.Collector) *Exporter {
	cacheLabels := []string{"cache"}
	opLabels := []string{"operation"}

	return &Exporter{
		caches:    caches,
		collector: collector,

		cacheSize: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "entries"),
			"Current number of entries in the cache store", cacheLabels, nil),
		cacheHits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "hits_total"),
			"Total cache lookups served from the store", cacheLabels, nil),
		cacheMisses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "misses_total"),
			"Total cache lookups that missed", cacheLabels, nil),
		cacheEvictions: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "evictions_total"),
			"Total entries evicted by TTL expiry or capacity overflow", cacheLabels, nil),
		cacheHitRate: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "hit_rate"),
			"Fraction of lookups served from the store", cacheLabels, nil),

		opCalls: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "operation", "calls_total"),
			"Total recorded calls of the operation", opLabels, nil),
		opTotalSeconds: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "operation", "duration_seconds_total"),
			"Total recorded wall-clock time of the operation", opLabels, nil),
		opAvgSeconds: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "operation", "duration_seconds_avg"),
			"Average wall-clock time per call of the operation", opLabels, nil),
		opMinSeconds: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "operation", "duration_seconds_min"),
			"Smallest recorded wall-clock time of the operation", opLabels, nil),
		opMaxSeconds: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "operation", "duration_seconds_max"),
			"Largest recorded wall-clock time of the operation", opLabels, nil),
		opLastSeconds: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "operation", "duration_seconds_last"),
			"Most recently recorded wall-clock time of the operation", opLabels, nil),
	}
}

// Describe implements prometheus.Collector.
func (e *Exporter) Describe(ch chan<- *prometheus.Desc) {
	ch <- e.cacheSize
	ch <- e.cacheHits
	ch <- e.cacheMisses
	ch <- e.cacheEvictions
	ch <- e.cacheHitRate
	ch <- e.opCalls
	ch <- e.opTotalSeconds
	ch <- e.opAvgSeconds
	ch <- e.opMinSeconds
	ch <- e.opMaxSeconds
	ch <- e.opLastSeconds
}

// Collect implements prometheus.Collector.
func (e *Exporter) Collect(ch chan<- prometheus.Metric) {
	if e.caches != nil {
		for name, stats := range e.caches.StatsSnapshot() {
			ch <- prometheus.MustNewConstMetric(e.cacheSize, prometheus.GaugeValue,
				float64(stats.Size), name)
			ch <- prometheus.MustNewConstMetric(e.cacheHits, prometheus.CounterValue,
				float64(stats.Stats.Hits), name)
			ch <- prometheus.MustNewConstMetric(e.cacheMisses, prometheus.CounterValue,
				float64(stats.Stats.Misses), name)
			ch <- prometheus.MustNewConstMetric(e.cacheEvictions, prometheus.CounterValue,
				float64(stats.Stats.Evictions), name)
			ch <- prometheus.MustNewConstMetric(e.cacheHitRate, prometheus.GaugeValue,
				stats.Stats.HitRate(), name)
		}
	}

	if e.collector != nil {
		for name, m := range e.collector.AllStats() {
			ch <- prometheus.MustNewConstMetric(e.opCalls, prometheus.CounterValue,
				float64(m.Count), name)
			ch <- prometheus.MustNewConstMetric(e.opTotalSeconds, prometheus.CounterValue,
				m.Total.Seconds(), name)
			ch <- prometheus.MustNewConstMetric(e.opAvgSeconds, prometheus.GaugeValue,
				m.Avg().Seconds(), name)
			ch <- prometheus.MustNewConstMetric(e.opMinSeconds, prometheus.GaugeValue,
				m.Min.Seconds(), name)
			ch <- prometheus.MustNewConstMetric(e.opMaxSeconds, prometheus.GaugeValue,
				m.Max.Seconds(), name)
			ch <- prometheus.MustNewConstMetric(e.opLastSeconds, prometheus.GaugeValue,
				m.Last.Seconds(), name)
		}
	}
}
