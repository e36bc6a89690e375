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

package metrics

import (
	"reflect"
	"runtime"
	"strings"
	"time"
)

// Track wraps an operation so every call records its wall-clock duration
// under name. The duration is recorded on every exit path, including error
// returns and panic unwinds; the result and error pass through unchanged.
// An empty name derives the function's qualified name.
func Track[R any](c *Collector, name string, fn func() (R, error)) func() (R, error) {
	if name == "" {
		name = FuncName(fn)
	}
	return func() (R, error) {
		start := time.Now()
		defer func() {
			c.Record(name, time.Since(start))
		}()
		return fn()
	}
}

// Track1 is Track for a single-argument operation.
func Track1[A, R any](c *Collector, name string, fn func(A) (R, error)) func(A) (R, error) {
	if name == "" {
		name = FuncName(fn)
	}
	return func(a A) (R, error) {
		start := time.Now()
		defer func() {
			c.Record(name, time.Since(start))
		}()
		return fn(a)
	}
}

// Track2 is Track for a two-argument operation.
func Track2[A, B, R any](c *Collector, name string, fn func(A, B) (R, error)) func(A, B) (R, error) {
	if name == "" {
		name = FuncName(fn)
	}
	return func(a A, b B) (R, error) {
		start := time.Now()
		defer func() {
			c.Record(name, time.Since(start))
		}()
		return fn(a, b)
	}
}

// TrackMethod wraps an operation bound to an owner, recording under the
// owner's type name joined with the operation name so identically-named
// operations on different types aggregate separately.
func TrackMethod[R any](c *Collector, owner any, operation string, fn func() (R, error)) func() (R, error) {
	return Track(c, MethodName(owner, operation), fn)
}

// TrackMethod1 is TrackMethod for a single-argument operation.
func TrackMethod1[A, R any](c *Collector, owner any, operation string, fn func(A) (R, error)) func(A) (R, error) {
	return Track1(c, MethodName(owner, operation), fn)
}

// FuncName resolves a function's package-qualified name, without the
// "-fm" suffix the runtime appends to method values.
func FuncName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "anonymous"
	}
	return strings.TrimSuffix(f.Name(), "-fm")
}

// MethodName joins the owner's type name with the operation name.
func MethodName(owner any, operation string) string {
	t := reflect.TypeOf(owner)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return operation
	}
	return t.Name() + "." + operation
}
