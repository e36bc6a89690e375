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

// Package config provides structures and functions for loading and managing
// application configurations.
package config

import (
	"os"
	"path/filepath"

	"github.com/gddickinson/tea-explorer-sub000/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// DataSource holds the database connection details.
type DataSource struct {
	Type     string `yaml:"type"`
	Path     string `yaml:"path"`
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	Options  string `yaml:"options"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Tea DataSource `yaml:"tea"`
}

// CacheProperty holds the configuration for an individual named cache.
type CacheProperty struct {
	Name       string `yaml:"name"`
	TTLSeconds int    `yaml:"ttl_seconds"`
	MaxSize    int    `yaml:"max_size"`
}

// CacheConfig holds the cache configuration details.
type CacheConfig struct {
	Disabled   bool            `yaml:"disabled"`
	Properties []CacheProperty `yaml:"properties"`
}

// PerformanceConfig holds the performance monitoring configuration details.
type PerformanceConfig struct {
	MonitoringDisabled bool `yaml:"monitoring_disabled"`
	ReportOnShutdown   bool `yaml:"report_on_shutdown"`
}

// Config holds the complete configuration details of the application.
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Cache       CacheConfig       `yaml:"cache"`
	Performance PerformanceConfig `yaml:"performance"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CachePropertyFor returns the property for the named cache, or a zero
// property when none is configured.
func (c CacheConfig) CachePropertyFor(cacheName string) CacheProperty {
	for _, property := range c.Properties {
		if property.Name == cacheName {
			return property
		}
	}
	return CacheProperty{}
}
