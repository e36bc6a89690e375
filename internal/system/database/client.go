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

package database

import (
	"database/sql"
	"strings"

	"github.com/gddickinson/tea-explorer-sub000/internal/system/log"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// ClientInterface defines the interface for database operations.
type ClientInterface interface {
	// Query executes a sql query that returns rows, typically a SELECT,
	// and returns the result as a slice of maps keyed by column name.
	Query(query Query, args ...interface{}) ([]map[string]interface{}, error)
	// Execute executes a sql query without returning data in any rows,
	// and returns the number of rows affected.
	Execute(query Query, args ...interface{}) (int64, error)
	// Close closes the database connection.
	Close() error
}

// Client is the implementation of ClientInterface.
type Client struct {
	db     *sql.DB
	dbType string
}

// NewClient creates a new database client over the provided connection.
func NewClient(db *sql.DB, dbType string) ClientInterface {
	return &Client{
		db:     db,
		dbType: dbType,
	}
}

// Query executes a sql query that returns rows and returns the result as a
// slice of maps keyed by lowercased column name.
func (client *Client) Query(query Query, args ...interface{}) ([]map[string]interface{}, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBClient"))
	logger.Debug("Executing query", log.String("queryID", query.GetID()))

	sqlQuery := query.GetQuery(client.dbType)
	rows, err := client.db.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			logger.Error("Error closing rows", log.Error(closeErr))
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []map[string]interface{}
	for rows.Next() {
		row := make([]interface{}, len(columns))
		rowPointers := make([]interface{}, len(columns))
		for i := range row {
			rowPointers[i] = &row[i]
		}

		if err := rows.Scan(rowPointers...); err != nil {
			return nil, err
		}

		result := map[string]interface{}{}
		for i, col := range columns {
			// Normalize column names to lowercase for consistency.
			result[strings.ToLower(col)] = row[i]
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Execute executes a sql query without returning rows and returns the
// number of rows affected.
func (client *Client) Execute(query Query, args ...interface{}) (int64, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBClient"))
	logger.Debug("Executing query", log.String("queryID", query.GetID()))

	sqlQuery := query.GetQuery(client.dbType)
	res, err := client.db.Exec(sqlQuery, args...)
	if err != nil {
		return 0, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}

// Close closes the database connection.
func (client *Client) Close() error {
	return client.db.Close()
}
