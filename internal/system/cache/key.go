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
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ErrKeyDerivation is returned when a call's arguments cannot be turned
// into a stable, comparable cache key.
var ErrKeyDerivation = errors.New("cache: cannot derive cache key")

// maxKeyDepth bounds recursion through nested values so that cyclic
// structures surface an error instead of hanging.
const maxKeyDepth = 32

// Arg is a named argument for key derivation. Named arguments are encoded
// sorted by name, so two calls with the same effective arguments produce
// the same key regardless of order.
type Arg struct {
	Name  string
	Value any
}

// DeriveKey builds a canonical cache key from the ordered positional
// arguments of a call. Each value is encoded with a kind tag, so
// differently-shaped calls that would stringify identically do not collide.
func DeriveKey(args ...any) (Key, error) {
	return DeriveKeyNamed(args, nil)
}

// DeriveKeyNamed builds a canonical cache key from positional arguments
// followed by named arguments sorted by name.
func DeriveKeyNamed(args []any, named []Arg) (Key, error) {
	var b strings.Builder

	b.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := encodeKeyValue(&b, reflect.ValueOf(arg), 0); err != nil {
			return "", err
		}
	}
	b.WriteByte(')')

	if len(named) > 0 {
		sorted := make([]Arg, len(named))
		copy(sorted, named)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

		b.WriteByte('{')
		for i, arg := range sorted {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%s=", arg.Name)
			if err := encodeKeyValue(&b, reflect.ValueOf(arg.Value), 0); err != nil {
				return "", err
			}
		}
		b.WriteByte('}')
	}

	return Key(b.String()), nil
}

// encodeKeyValue writes a canonical, kind-tagged encoding of v.
func encodeKeyValue(b *strings.Builder, v reflect.Value, depth int) error {
	if depth > maxKeyDepth {
		return fmt.Errorf("%w: value nesting exceeds %d levels", ErrKeyDerivation, maxKeyDepth)
	}
	if !v.IsValid() {
		b.WriteString("nil")
		return nil
	}

	switch v.Kind() {
	case reflect.Bool:
		fmt.Fprintf(b, "b:%t", v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		fmt.Fprintf(b, "i:%d", v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		fmt.Fprintf(b, "u:%d", v.Uint())
	case reflect.Float32, reflect.Float64:
		fmt.Fprintf(b, "f:%g", v.Float())
	case reflect.Complex64, reflect.Complex128:
		fmt.Fprintf(b, "c:%v", v.Complex())
	case reflect.String:
		fmt.Fprintf(b, "s:%q", v.String())
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			b.WriteString("nil")
			return nil
		}
		return encodeKeyValue(b, v.Elem(), depth+1)
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			b.WriteString("nil")
			return nil
		}
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := encodeKeyValue(b, v.Index(i), depth+1); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case reflect.Map:
		if v.IsNil() {
			b.WriteString("nil")
			return nil
		}
		return encodeKeyMap(b, v, depth)
	case reflect.Struct:
		fmt.Fprintf(b, "t:%s{", v.Type().String())
		for i := 0; i < v.NumField(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%s:", v.Type().Field(i).Name)
			if err := encodeKeyValue(b, v.Field(i), depth+1); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	default:
		// Func, Chan and UnsafePointer have no stable comparable encoding.
		return fmt.Errorf("%w: unsupported argument kind %s", ErrKeyDerivation, v.Kind())
	}

	return nil
}

// encodeKeyMap writes a map with entries ordered by their encoded keys so
// the encoding is independent of Go's map iteration order.
func encodeKeyMap(b *strings.Builder, v reflect.Value, depth int) error {
	type mapEntry struct {
		key   string
		value reflect.Value
	}

	entries := make([]mapEntry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		var kb strings.Builder
		if err := encodeKeyValue(&kb, iter.Key(), depth+1); err != nil {
			return err
		}
		entries = append(entries, mapEntry{key: kb.String(), value: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	b.WriteString("m[")
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.key)
		b.WriteString("=>")
		if err := encodeKeyValue(b, e.value, depth+1); err != nil {
			return err
		}
	}
	b.WriteByte(']')
	return nil
}
