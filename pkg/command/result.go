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

package command

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/infrawatch/infrawatch/pkg/errors"
)

// Result is the outcome of a single command invocation.
type Result struct {
	// Succeeded is true when the command exited with status 0.
	Succeeded bool

	// Object holds the payload when stdout was a single JSON object.
	Object map[string]any

	// Records holds the payload when stdout was a JSON array or JSON lines.
	Records []map[string]any

	// Raw holds trimmed stdout when it was not JSON.
	Raw string

	// Err is set when Succeeded is false.
	Err error
}

// ErrorMessage returns the human readable failure message, or an empty
// string for a successful result.
func (r *Result) ErrorMessage() string {
	if r == nil || r.Err == nil {
		return ""
	}
	if se, ok := errors.As(r.Err); ok {
		return se.Message
	}
	return r.Err.Error()
}

// List returns the payload as a list of records. A single JSON object is a
// one-record list, which is what a list command prints for exactly one item.
func (r *Result) List() []map[string]any {
	if r == nil || !r.Succeeded {
		return nil
	}
	if r.Records != nil {
		return r.Records
	}
	if r.Object != nil {
		return []map[string]any{r.Object}
	}
	return []map[string]any{}
}

// Failed builds an unsuccessful Result.
func Failed(err error) *Result {
	return &Result{Err: err}
}

// Decode interprets command stdout. A JSON object becomes Object, a JSON
// array becomes Records (non-object elements dropped), and otherwise every
// non-empty line that decodes as a JSON object becomes a record. When no
// line decodes the trimmed text is returned as Raw.
func Decode(stdout []byte) *Result {
	trimmed := bytes.TrimSpace(stdout)
	res := &Result{Succeeded: true}

	if v, err := unmarshal(trimmed); err == nil {
		switch doc := v.(type) {
		case map[string]any:
			res.Object = doc
			return res
		case []any:
			res.Records = make([]map[string]any, 0, len(doc))
			for _, item := range doc {
				if m, ok := item.(map[string]any); ok {
					res.Records = append(res.Records, m)
				}
			}
			return res
		}
	}

	var records []map[string]any
	for _, line := range bytes.Split(trimmed, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		v, err := unmarshal(line)
		if err != nil {
			continue
		}
		if m, ok := v.(map[string]any); ok {
			records = append(records, m)
		}
	}
	if len(records) > 0 {
		res.Records = records
		return res
	}

	res.Raw = strings.TrimSpace(string(trimmed))
	return res
}

// unmarshal decodes exactly one JSON document, keeping numbers as json.Number.
func unmarshal(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeDecodeFailure, "empty document")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New(errors.ErrCodeDecodeFailure, "trailing data after JSON document")
	}
	return v, nil
}
