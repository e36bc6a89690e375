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

import "github.com/gddickinson/tea-explorer-sub000/internal/system/database"

const teaColumns = "tea_id, name, category, origin, processing, flavor_profile, " +
	"brew_temp_c, steep_time, caffeine_level, price_range"

var (
	// queryFindAllTeas retrieves all teas ordered by name.
	queryFindAllTeas = database.Query{
		ID:     "TEA-001",
		SQLite: "SELECT " + teaColumns + " FROM teas ORDER BY name",
	}

	// queryFindTeaByID retrieves a tea by its identifier.
	queryFindTeaByID = database.Query{
		ID:       "TEA-002",
		SQLite:   "SELECT " + teaColumns + " FROM teas WHERE tea_id = ?",
		Postgres: "SELECT " + teaColumns + " FROM teas WHERE tea_id = $1",
	}

	// queryFindTeaByName retrieves a tea by its exact name.
	queryFindTeaByName = database.Query{
		ID:       "TEA-003",
		SQLite:   "SELECT " + teaColumns + " FROM teas WHERE name = ?",
		Postgres: "SELECT " + teaColumns + " FROM teas WHERE name = $1",
	}

	// queryFindTeasByCategory retrieves all teas of a category.
	queryFindTeasByCategory = database.Query{
		ID:       "TEA-004",
		SQLite:   "SELECT " + teaColumns + " FROM teas WHERE category = ? ORDER BY name",
		Postgres: "SELECT " + teaColumns + " FROM teas WHERE category = $1 ORDER BY name",
	}

	// querySearchTeas searches teas by name, category, origin or flavor.
	querySearchTeas = database.Query{
		ID: "TEA-005",
		SQLite: "SELECT " + teaColumns + " FROM teas WHERE name LIKE ? OR category LIKE ? " +
			"OR origin LIKE ? OR flavor_profile LIKE ? ORDER BY name",
		Postgres: "SELECT " + teaColumns + " FROM teas WHERE name ILIKE $1 OR category ILIKE $2 " +
			"OR origin ILIKE $3 OR flavor_profile ILIKE $4 ORDER BY name",
	}

	// queryDistinctCategories retrieves the distinct tea categories.
	queryDistinctCategories = database.Query{
		ID:     "TEA-006",
		SQLite: "SELECT DISTINCT category FROM teas WHERE category IS NOT NULL ORDER BY category",
	}

	// queryDistinctCountries retrieves the distinct origin countries.
	queryDistinctCountries = database.Query{
		ID:     "TEA-007",
		SQLite: "SELECT DISTINCT origin FROM teas WHERE origin IS NOT NULL AND origin != '' ORDER BY origin",
	}

	// queryCountTeas counts the catalog entries.
	queryCountTeas = database.Query{
		ID:     "TEA-008",
		SQLite: "SELECT COUNT(*) AS count FROM teas",
	}
)
