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

// Command explorer wires the tea catalog's read service to its caching and
// performance-instrumentation layers and emits a diagnostics report.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/gddickinson/tea-explorer-sub000/internal/system/cache"
	"github.com/gddickinson/tea-explorer-sub000/internal/system/config"
	"github.com/gddickinson/tea-explorer-sub000/internal/system/database"
	"github.com/gddickinson/tea-explorer-sub000/internal/system/log"
	"github.com/gddickinson/tea-explorer-sub000/internal/system/metrics"
	"github.com/gddickinson/tea-explorer-sub000/internal/tea"
)

func main() {
	logger := log.GetLogger()

	configPath := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", log.String("path", *configPath), log.Error(err))
	}

	home, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to resolve working directory", log.Error(err))
	}
	if err := config.InitializeExplorerRuntime(filepath.Clean(home), cfg); err != nil {
		logger.Fatal("Failed to initialize runtime configuration", log.Error(err))
	}

	collector := metrics.NewCollector()
	if cfg.Performance.MonitoringDisabled {
		collector.Disable()
	}
	caches := cache.NewRegistry()

	client, err := database.NewClientFromDataSource(cfg.Database.Tea)
	if err != nil {
		logger.Fatal("Failed to open tea database", log.Error(err))
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			logger.Error("Failed to close tea database", log.Error(closeErr))
		}
	}()

	service, err := tea.NewServiceFromConfig(tea.NewRepository(client), caches, collector, cfg.Cache)
	if err != nil {
		logger.Fatal("Failed to wire tea service", log.Error(err))
	}

	warmCatalog(logger, collector, service)

	if cfg.Performance.ReportOnShutdown {
		collector.PrintReport()
		caches.LogStats(logger)
	}
}

// warmCatalog primes the read caches and demonstrates the instrumented
// read paths: the second round of reads is served from cache.
func warmCatalog(logger *log.Logger, collector *metrics.Collector, service *tea.Service) {
	timer := metrics.StartTimer(collector, "explorer.warm_catalog", true)
	defer timer.Stop()

	for round := 1; round <= 2; round++ {
		categories, err := service.GetCategories()
		if err != nil {
			logger.Error("Failed to load categories", log.Error(err))
			return
		}

		countries, err := service.GetCountries()
		if err != nil {
			logger.Error("Failed to load countries", log.Error(err))
			return
		}

		count, err := service.GetTeaCount()
		if err != nil {
			logger.Error("Failed to count teas", log.Error(err))
			return
		}

		logger.Info("Catalog warmed",
			log.Int("round", round),
			log.Int("categories", len(categories)),
			log.Int("countries", len(countries)),
			log.Int("teas", count))
	}
}
