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

package tea

import (
	"fmt"

	"github.com/gddickinson/tea-explorer-sub000/internal/system/database"
)

// ReadStore defines the read operations over the tea catalog.
type ReadStore interface {
	FindAll() ([]Tea, error)
	FindByID(id int64) (*Tea, error)
	FindByName(name string) (*Tea, error)
	FindByCategory(category string) ([]Tea, error)
	Search(term string) ([]Tea, error)
	Categories() ([]string, error)
	Countries() ([]string, error)
	Count() (int, error)
}

// Repository is the database-backed implementation of ReadStore.
type Repository struct {
	client database.ClientInterface
}

// NewRepository creates a repository over the given database client.
func NewRepository(client database.ClientInterface) *Repository {
	return &Repository{client: client}
}

// FindAll returns every tea in the catalog ordered by name.
func (r *Repository) FindAll() ([]Tea, error) {
	rows, err := r.client.Query(queryFindAllTeas)
	if err != nil {
		return nil, fmt.Errorf("failed to list teas: %w", err)
	}
	return buildTeas(rows)
}

// FindByID returns the tea with the given identifier, or nil when absent.
func (r *Repository) FindByID(id int64) (*Tea, error) {
	rows, err := r.client.Query(queryFindTeaByID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tea %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	tea := buildTea(rows[0])
	return &tea, nil
}

// FindByName returns the tea with the given exact name, or nil when absent.
func (r *Repository) FindByName(name string) (*Tea, error) {
	rows, err := r.client.Query(queryFindTeaByName, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get tea %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	tea := buildTea(rows[0])
	return &tea, nil
}

// FindByCategory returns all teas of the given category ordered by name.
func (r *Repository) FindByCategory(category string) ([]Tea, error) {
	rows, err := r.client.Query(queryFindTeasByCategory, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list teas of category %q: %w", category, err)
	}
	return buildTeas(rows)
}

// Search returns teas whose name, category, origin or flavor profile
// matches the term.
func (r *Repository) Search(term string) ([]Tea, error) {
	pattern := "%" + term + "%"
	rows, err := r.client.Query(querySearchTeas, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search teas for %q: %w", term, err)
	}
	return buildTeas(rows)
}

// Categories returns the distinct tea categories in the catalog.
func (r *Repository) Categories() ([]string, error) {
	rows, err := r.client.Query(queryDistinctCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return buildStrings(rows, "category"), nil
}

// Countries returns the distinct origin countries in the catalog.
func (r *Repository) Countries() ([]string, error) {
	rows, err := r.client.Query(queryDistinctCountries)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return buildStrings(rows, "origin"), nil
}

// Count returns the number of teas in the catalog.
func (r *Repository) Count() (int, error) {
	rows, err := r.client.Query(queryCountTeas)
	if err != nil {
		return 0, fmt.Errorf("failed to count teas: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return int(columnInt64(rows[0], "count")), nil
}

// buildTeas converts result rows into tea models.
func buildTeas(rows []map[string]interface{}) ([]Tea, error) {
	teas := make([]Tea, 0, len(rows))
	for _, row := range rows {
		teas = append(teas, buildTea(row))
	}
	return teas, nil
}

// buildTea converts a single result row into a tea model.
func buildTea(row map[string]interface{}) Tea {
	return Tea{
		ID:            columnInt64(row, "tea_id"),
		Name:          columnString(row, "name"),
		Category:      columnString(row, "category"),
		Origin:        columnString(row, "origin"),
		Processing:    columnString(row, "processing"),
		FlavorProfile: columnString(row, "flavor_profile"),
		BrewTempC:     int(columnInt64(row, "brew_temp_c")),
		SteepTime:     columnString(row, "steep_time"),
		CaffeineLevel: columnString(row, "caffeine_level"),
		PriceRange:    columnString(row, "price_range"),
	}
}

// buildStrings collects one column of every row, skipping NULLs.
func buildStrings(rows []map[string]interface{}, column string) []string {
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		if v := columnString(row, column); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// columnString reads a column as a string, tolerating NULL and []byte.
func columnString(row map[string]interface{}, column string) string {
	switch v := row[column].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// columnInt64 reads a column as an int64, tolerating NULL and the numeric
// types the drivers produce.
func columnInt64(row map[string]interface{}, column string) int64 {
	switch v := row[column].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
