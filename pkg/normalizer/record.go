// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package normalizer

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// Record is one raw engine record.
type Record map[string]any

// Records converts decoded command output into Records.
func Records(items []map[string]any) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		out = append(out, Record(item))
	}
	return out
}

// Shape classifies the dynamic type of a field value.
type Shape int

const (
	// ShapeAbsent is a missing or null field.
	ShapeAbsent Shape = iota
	// ShapeScalar is a string, number or boolean.
	ShapeScalar
	// ShapeSequence is a JSON array.
	ShapeSequence
	// ShapeMapping is a JSON object.
	ShapeMapping
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeSequence:
		return "sequence"
	case ShapeMapping:
		return "mapping"
	default:
		return "absent"
	}
}

// ShapeOf classifies v.
func ShapeOf(v any) Shape {
	switch v.(type) {
	case nil:
		return ShapeAbsent
	case []any, []string, []map[string]any:
		return ShapeSequence
	case map[string]any, map[string]string, Record:
		return ShapeMapping
	default:
		return ShapeScalar
	}
}

// Value returns the first present, non-null value among keys.
func (r Record) Value(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String returns the first scalar value among keys as a string, or "".
func (r Record) String(keys ...string) string {
	v, ok := r.Value(keys...)
	if !ok || ShapeOf(v) != ShapeScalar {
		return ""
	}
	s, _ := toString(v)
	return s
}

// StringOr returns String(key), or def when key is absent.
func (r Record) StringOr(key, def string) string {
	if _, ok := r.Value(key); !ok {
		return def
	}
	return r.String(key)
}

// Int returns the first truthy value among keys as a non-negative integer.
// Values that cannot be coerced count as 0 and the next key is tried.
func (r Record) Int(keys ...string) int64 {
	for _, k := range keys {
		if n := toInt64(r[k]); n > 0 {
			return n
		}
	}
	return 0
}

// Bool returns the value of key as a boolean, or false.
func (r Record) Bool(key string) bool {
	v, ok := r.Value(key)
	if !ok {
		return false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}

// Mapping returns the value of key when it is a JSON object.
func (r Record) Mapping(key string) Record {
	return Record(mapping(r[key]))
}

// Strings flattens the value of key into a string slice: an absent value
// is empty, a scalar is one element, a sequence keeps its scalar items and
// a mapping contributes its values ordered by key.
func (r Record) Strings(key string) []string {
	out := []string{}
	v, ok := r.Value(key)
	if !ok {
		return out
	}

	switch ShapeOf(v) {
	case ShapeScalar:
		if s, ok := toString(v); ok {
			out = append(out, s)
		}
	case ShapeSequence:
		for _, item := range items(v) {
			if s, ok := toString(item); ok {
				out = append(out, s)
			}
		}
	case ShapeMapping:
		m := mapping(v)
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if s, ok := toString(m[k]); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// items returns the elements of a sequence value.
func items(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out
	case []map[string]any:
		out := make([]any, len(x))
		for i, m := range x {
			out[i] = m
		}
		return out
	default:
		return nil
	}
}

// mapping returns the entries of a mapping value.
func mapping(v any) map[string]any {
	switch x := v.(type) {
	case map[string]any:
		return x
	case Record:
		return x
	case map[string]string:
		out := make(map[string]any, len(x))
		for k, s := range x {
			out[k] = s
		}
		return out
	default:
		return nil
	}
}

// toString coerces a scalar to a string.
func toString(v any) (string, bool) {
	if ShapeOf(v) != ShapeScalar {
		return "", false
	}
	if n, ok := v.(json.Number); ok {
		return n.String(), true
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return s, true
}

// toInt64 coerces v to a non-negative integer, returning 0 on failure.
func toInt64(v any) int64 {
	var n int64
	switch x := v.(type) {
	case nil:
		return 0
	case json.Number:
		if i, err := x.Int64(); err == nil {
			n = i
		} else if f, err := x.Float64(); err == nil {
			n = int64(f)
		}
	case string:
		i, err := cast.ToInt64E(strings.TrimSpace(x))
		if err != nil {
			f, ferr := cast.ToFloat64E(strings.TrimSpace(x))
			if ferr != nil {
				return 0
			}
			i = int64(f)
		}
		n = i
	default:
		i, err := cast.ToInt64E(v)
		if err != nil {
			return 0
		}
		n = i
	}
	if n < 0 {
		return 0
	}
	return n
}

// shortID strips a digest algorithm prefix and keeps at most 12 characters.
func shortID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	id = strings.TrimPrefix(id, "sha256:")
	if len(id) > 12 {
		id = id[:12]
	}
	return id
}
