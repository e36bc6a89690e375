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

const (
	// DefaultTTL is the TTL applied when a non-positive TTL is requested.
	DefaultTTL = 5 * time.Minute
	// DefaultMaxSize is the capacity applied when a non-positive size is requested.
	DefaultMaxSize = 128
)

// Preset TTL tiers for the memoizing wrappers. The permanent tier is good
// for the session rather than truly infinite.
const (
	TTLShort     = 60 * time.Second
	TTLMedium    = 5 * time.Minute
	TTLLong      = time.Hour
	TTLPermanent = 24 * time.Hour
)
