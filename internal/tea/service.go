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
	"time"

	"github.com/gddickinson/tea-explorer-sub000/internal/system/cache"
	"github.com/gddickinson/tea-explorer-sub000/internal/system/config"
	"github.com/gddickinson/tea-explorer-sub000/internal/system/log"
	"github.com/gddickinson/tea-explorer-sub000/internal/system/metrics"
)

// Cache store names used by the read service.
const (
	CacheNameCategories = "tea:categories"
	CacheNameCountries  = "tea:countries"
	CacheNameCount      = "tea:count"
	CacheNameByName     = "tea:by_name"
	CacheNameByCategory = "tea:by_category"
)

// Service exposes the catalog's read paths with memoization in front of
// the repository and latency tracking around it. Distinct-value and count
// reads rarely change, so they sit behind the longer cache tiers; lookups
// use the short tier.
type Service struct {
	repo   ReadStore
	caches *cache.Registry

	allTeas    func() ([]Tea, error)
	byName     func(string) (*Tea, error)
	byCategory func(string) ([]Tea, error)
	search     func(string) ([]Tea, error)
	categories func() ([]string, error)
	countries  func() ([]string, error)
	count      func() (int, error)
}

// NewService wires the repository's reads through the memoizing and
// tracking wrappers backed by the given registry and collector.
func NewService(repo ReadStore, caches *cache.Registry, collector *metrics.Collector) *Service {
	return newService(repo, caches, collector, true)
}

// NewServiceFromConfig pre-creates the service's cache stores from the
// configured per-cache overrides before wiring the wrappers. Store
// parameters are fixed at first creation, so the overrides must be
// installed ahead of the memoizing wrappers; a disabled cache section
// yields a service that always reads through to the repository.
func NewServiceFromConfig(repo ReadStore, caches *cache.Registry, collector *metrics.Collector,
	cacheCfg config.CacheConfig) (*Service, error) {
	if cacheCfg.Disabled {
		return newService(repo, caches, collector, false), nil
	}
	if err := applyCacheProperties(caches, cacheCfg); err != nil {
		return nil, err
	}
	return newService(repo, caches, collector, true), nil
}

func newService(repo ReadStore, caches *cache.Registry, collector *metrics.Collector, memoize bool) *Service {
	s := &Service{
		repo:   repo,
		caches: caches,
	}

	s.allTeas = metrics.TrackMethod(collector, s, "GetAllTeas", repo.FindAll)
	s.search = metrics.TrackMethod1(collector, s, "SearchTeas", repo.Search)

	byName := metrics.TrackMethod1(collector, s, "GetTeaByName", repo.FindByName)
	byCategory := metrics.TrackMethod1(collector, s, "GetTeasByCategory", repo.FindByCategory)
	categories := metrics.TrackMethod(collector, s, "GetCategories", repo.Categories)
	countries := metrics.TrackMethod(collector, s, "GetCountries", repo.Countries)
	count := metrics.TrackMethod(collector, s, "GetTeaCount", repo.Count)

	if !memoize {
		s.byName = byName
		s.byCategory = byCategory
		s.categories = categories
		s.countries = countries
		s.count = count
		return s
	}

	s.byName = cache.MemoizeShort1(caches, CacheNameByName, byName)
	s.byCategory = cache.MemoizeShort1(caches, CacheNameByCategory, byCategory)
	s.categories = cache.MemoizeMedium(caches, CacheNameCategories, categories)
	s.countries = cache.MemoizeMedium(caches, CacheNameCountries, countries)
	s.count = cache.MemoizePermanent(caches, CacheNameCount, count)

	return s
}

// applyCacheProperties creates the service's stores with the configured
// TTL and capacity so the memoizing wrappers adopt them. Properties for
// cache names the service does not own are ignored.
func applyCacheProperties(caches *cache.Registry, cacheCfg config.CacheConfig) error {
	creators := map[string]func(ttl time.Duration, maxSize int) error{
		CacheNameCategories: func(ttl time.Duration, maxSize int) error {
			_, err := cache.GetOrCreate[[]string](caches, CacheNameCategories, ttl, maxSize)
			return err
		},
		CacheNameCountries: func(ttl time.Duration, maxSize int) error {
			_, err := cache.GetOrCreate[[]string](caches, CacheNameCountries, ttl, maxSize)
			return err
		},
		CacheNameCount: func(ttl time.Duration, maxSize int) error {
			_, err := cache.GetOrCreate[int](caches, CacheNameCount, ttl, maxSize)
			return err
		},
		CacheNameByName: func(ttl time.Duration, maxSize int) error {
			_, err := cache.GetOrCreate[*Tea](caches, CacheNameByName, ttl, maxSize)
			return err
		},
		CacheNameByCategory: func(ttl time.Duration, maxSize int) error {
			_, err := cache.GetOrCreate[[]Tea](caches, CacheNameByCategory, ttl, maxSize)
			return err
		},
	}

	for _, property := range cacheCfg.Properties {
		create, owned := creators[property.Name]
		if !owned {
			continue
		}
		if err := create(time.Duration(property.TTLSeconds)*time.Second, property.MaxSize); err != nil {
			return err
		}
	}
	return nil
}

// GetAllTeas returns every tea in the catalog.
func (s *Service) GetAllTeas() ([]Tea, error) {
	return s.allTeas()
}

// GetTeaByName returns the named tea, or nil when absent.
func (s *Service) GetTeaByName(name string) (*Tea, error) {
	return s.byName(name)
}

// GetTeasByCategory returns all teas of the given category.
func (s *Service) GetTeasByCategory(category string) ([]Tea, error) {
	return s.byCategory(category)
}

// SearchTeas returns teas matching the term.
func (s *Service) SearchTeas(term string) ([]Tea, error) {
	return s.search(term)
}

// GetCategories returns the distinct tea categories.
func (s *Service) GetCategories() ([]string, error) {
	return s.categories()
}

// GetCountries returns the distinct origin countries.
func (s *Service) GetCountries() ([]string, error) {
	return s.countries()
}

// GetTeaCount returns the number of teas in the catalog.
func (s *Service) GetTeaCount() (int, error) {
	return s.count()
}

// InvalidateAll clears the service's cache stores, for use after catalog
// mutations.
func (s *Service) InvalidateAll() {
	for _, name := range []string{
		CacheNameCategories,
		CacheNameCountries,
		CacheNameCount,
		CacheNameByName,
		CacheNameByCategory,
	} {
		s.caches.Clear(name)
	}

	log.GetLogger().With(log.String(log.LoggerKeyComponentName, "TeaService")).
		Debug("Invalidated tea caches")
}
