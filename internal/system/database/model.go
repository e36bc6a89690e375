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

// Package database provides database connection management and a thin
// client for executing queries.
package database

// Query is a named SQL query with per-driver variants. The identifier is
// used for logging only.
type Query struct {
	ID       string
	SQLite   string
	Postgres string
}

// GetQuery returns the query text for the given database type, falling
// back to the SQLite variant when no specific one is defined.
func (q Query) GetQuery(dbType string) string {
	if dbType == DataSourceTypePostgres && q.Postgres != "" {
		return q.Postgres
	}
	return q.SQLite
}

// GetID returns the query identifier.
func (q Query) GetID() string {
	return q.ID
}
