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

import (
	"reflect"
	"runtime"
	"time"
)

// Config describes the cache backing a memoized operation.
type Config struct {
	// Name of the backing store. Empty derives the wrapped function's
	// qualified name.
	Name string
	// TTL of cached results. Non-positive falls back to DefaultTTL.
	TTL time.Duration
	// MaxSize of the backing store. Non-positive falls back to DefaultMaxSize.
	MaxSize int
}

// Memoize wraps a deterministic, side-effect-free operation so its result
// is served from the named cache store within the TTL window. On a miss the
// operation runs outside the store's lock, so two concurrent misses for the
// same key may both compute and the last Set wins: recomputation is
// at-least-once, never exactly-once, which is acceptable because the
// operation is required to be pure.
//
// An error from the operation propagates unchanged and is never cached.
func Memoize[R any](reg *Registry, cfg Config, fn func() (R, error)) func() (R, error) {
	cfg = cfg.withDefaultName(fn)
	return func() (R, error) {
		return memoizedCall(reg, cfg, Key("()"), fn)
	}
}

// Memoize1 is Memoize for a single-argument operation. The cache key is
// derived from the argument; a value that cannot be encoded surfaces an
// ErrKeyDerivation-wrapped error at call time, without invoking the
// operation or caching anything.
func Memoize1[A, R any](reg *Registry, cfg Config, fn func(A) (R, error)) func(A) (R, error) {
	cfg = cfg.withDefaultName(fn)
	return func(a A) (R, error) {
		key, err := DeriveKey(a)
		if err != nil {
			var zero R
			return zero, err
		}
		return memoizedCall(reg, cfg, key, func() (R, error) { return fn(a) })
	}
}

// Memoize2 is Memoize for a two-argument operation.
func Memoize2[A, B, R any](reg *Registry, cfg Config, fn func(A, B) (R, error)) func(A, B) (R, error) {
	cfg = cfg.withDefaultName(fn)
	return func(a A, b B) (R, error) {
		key, err := DeriveKey(a, b)
		if err != nil {
			var zero R
			return zero, err
		}
		return memoizedCall(reg, cfg, key, func() (R, error) { return fn(a, b) })
	}
}

// memoizedCall consults the backing store and computes on a miss.
func memoizedCall[R any](reg *Registry, cfg Config, key Key, compute func() (R, error)) (R, error) {
	store, err := GetOrCreate[R](reg, cfg.Name, cfg.TTL, cfg.MaxSize)
	if err != nil {
		var zero R
		return zero, err
	}

	if value, ok := store.Get(key); ok {
		return value, nil
	}

	value, err := compute()
	if err != nil {
		var zero R
		return zero, err
	}

	store.Set(key, value)
	return value, nil
}

// MemoizeShort caches results for one minute.
func MemoizeShort[R any](reg *Registry, name string, fn func() (R, error)) func() (R, error) {
	return Memoize(reg, Config{Name: name, TTL: TTLShort}, fn)
}

// MemoizeMedium caches results for five minutes.
func MemoizeMedium[R any](reg *Registry, name string, fn func() (R, error)) func() (R, error) {
	return Memoize(reg, Config{Name: name, TTL: TTLMedium}, fn)
}

// MemoizeLong caches results for one hour.
func MemoizeLong[R any](reg *Registry, name string, fn func() (R, error)) func() (R, error) {
	return Memoize(reg, Config{Name: name, TTL: TTLLong}, fn)
}

// MemoizePermanent caches results for 24 hours.
func MemoizePermanent[R any](reg *Registry, name string, fn func() (R, error)) func() (R, error) {
	return Memoize(reg, Config{Name: name, TTL: TTLPermanent}, fn)
}

// MemoizeShort1 caches single-argument results for one minute.
func MemoizeShort1[A, R any](reg *Registry, name string, fn func(A) (R, error)) func(A) (R, error) {
	return Memoize1(reg, Config{Name: name, TTL: TTLShort}, fn)
}

// MemoizeMedium1 caches single-argument results for five minutes.
func MemoizeMedium1[A, R any](reg *Registry, name string, fn func(A) (R, error)) func(A) (R, error) {
	return Memoize1(reg, Config{Name: name, TTL: TTLMedium}, fn)
}

// MemoizeLong1 caches single-argument results for one hour.
func MemoizeLong1[A, R any](reg *Registry, name string, fn func(A) (R, error)) func(A) (R, error) {
	return Memoize1(reg, Config{Name: name, TTL: TTLLong}, fn)
}

// MemoizePermanent1 caches single-argument results for 24 hours.
func MemoizePermanent1[A, R any](reg *Registry, name string, fn func(A) (R, error)) func(A) (R, error) {
	return Memoize1(reg, Config{Name: name, TTL: TTLPermanent}, fn)
}

// withDefaultName fills an empty cache name from the wrapped function's
// qualified name.
func (c Config) withDefaultName(fn any) Config {
	if c.Name == "" {
		c.Name = functionName(fn)
	}
	return c
}

// functionName resolves a function's package-qualified name.
func functionName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	if f := runtime.FuncForPC(pc); f != nil {
		return f.Name()
	}
	return "anonymous"
}
