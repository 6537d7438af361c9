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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeOf(t *testing.T) {
	tests := []struct {
		in   any
		want Shape
	}{
		{nil, ShapeAbsent},
		{"x", ShapeScalar},
		{json.Number("1"), ShapeScalar},
		{true, ShapeScalar},
		{[]any{"a"}, ShapeSequence},
		{[]string{"a"}, ShapeSequence},
		{map[string]any{"a": 1}, ShapeMapping},
		{map[string]string{"a": "b"}, ShapeMapping},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ShapeOf(tt.in))
		})
	}
}

func TestRecordStrings(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"absent", nil, []string{}},
		{"single string", "com.example=1", []string{"com.example=1"}},
		{"sequence", []any{"a=1", "b=2", map[string]any{"x": 1}}, []string{"a=1", "b=2"}},
		{"mapping sorted by key", map[string]any{"z": "last", "a": "first"}, []string{"first", "last"}},
		{"number", json.Number("3"), []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{"Labels": tt.in}
			assert.Equal(t, tt.want, r.Strings("Labels"))
		})
	}
}

func TestRecordInt(t *testing.T) {
	r := Record{
		"number":   json.Number("8"),
		"float":    json.Number("2.5"),
		"string":   "16",
		"human":    "N/A",
		"negative": -3,
		"zero":     0,
		"bool":     true,
	}

	assert.EqualValues(t, 8, r.Int("number"))
	assert.EqualValues(t, 2, r.Int("float"))
	assert.EqualValues(t, 16, r.Int("string"))
	assert.EqualValues(t, 0, r.Int("human"))
	assert.EqualValues(t, 0, r.Int("negative"))
	assert.EqualValues(t, 0, r.Int("missing"))
	assert.EqualValues(t, 1, r.Int("bool"))
	assert.EqualValues(t, 8, r.Int("zero", "number"), "falls through falsy values")
}

func TestRecordStringOr(t *testing.T) {
	r := Record{"present": "", "null": nil, "map": map[string]any{}}

	assert.Equal(t, "", r.StringOr("present", "def"))
	assert.Equal(t, "def", r.StringOr("null", "def"))
	assert.Equal(t, "def", r.StringOr("missing", "def"))
	assert.Equal(t, "", r.String("map"))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0123456789ab", shortID("sha256:0123456789ABCDEF"))
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "", shortID(""))
}
