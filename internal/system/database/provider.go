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
	"fmt"

	"github.com/gddickinson/tea-explorer-sub000/internal/system/config"
)

const (
	// DataSourceTypePostgres identifies a PostgreSQL data source.
	DataSourceTypePostgres = "postgres"
	// DataSourceTypeSQLite identifies a SQLite data source.
	DataSourceTypeSQLite = "sqlite"
)

// NewClientFromDataSource opens a database connection for the given data
// source and returns a client over it. The caller owns the client and must
// close it.
func NewClientFromDataSource(dataSource config.DataSource) (ClientInterface, error) {
	driverName, dsn, err := resolveDSN(dataSource)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database: %w (close error: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Enable foreign key constraints for SQLite databases.
	if dataSource.Type == DataSourceTypeSQLite {
		if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				return nil, fmt.Errorf("failed to enable foreign key constraints: %w (close error: %w)",
					err, closeErr)
			}
			return nil, fmt.Errorf("failed to enable foreign key constraints: %w", err)
		}
	}

	return NewClient(db, dataSource.Type), nil
}

// resolveDSN builds the driver name and DSN for the data source.
func resolveDSN(dataSource config.DataSource) (string, string, error) {
	switch dataSource.Type {
	case DataSourceTypePostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
			dataSource.Name, dataSource.SSLMode)
		return DataSourceTypePostgres, dsn, nil
	case DataSourceTypeSQLite:
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		return DataSourceTypeSQLite, dataSource.Path + options, nil
	default:
		return "", "", fmt.Errorf("unsupported data source type: %s", dataSource.Type)
	}
}
