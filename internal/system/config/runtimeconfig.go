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

package config

import "sync"

// ExplorerRuntime holds the runtime configuration for the application.
type ExplorerRuntime struct {
	ExplorerHome string `yaml:"explorer_home"`
	Config       Config `yaml:"config"`
}

var (
	runtimeConfig *ExplorerRuntime
	once          sync.Once
)

// InitializeExplorerRuntime initializes the ExplorerRuntime configuration.
func InitializeExplorerRuntime(explorerHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &ExplorerRuntime{
			ExplorerHome: explorerHome,
			Config:       *config,
		}
	})

	return nil
}

// GetExplorerRuntime returns the ExplorerRuntime configuration.
func GetExplorerRuntime() *ExplorerRuntime {
	if runtimeConfig == nil {
		panic("ExplorerRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetExplorerRuntime resets the ExplorerRuntime.
// This should only be used in tests to reset the singleton state.
func ResetExplorerRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
