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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ConfigMapURIScheme prefixes outputs that target a Kubernetes ConfigMap.
const ConfigMapURIScheme = "cm://"

const rootKey = "value"

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// Extension is the file extension used when the format is stored by name.
func (f Format) Extension() string {
	if f == FormatTable {
		return "txt"
	}
	return string(f)
}

// SupportedFormats lists the accepted --format values.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}

// FormatFromPath infers a format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt":
		return FormatTable
	default:
		return FormatJSON
	}
}

func normalizeFormat(f Format) Format {
	if f.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", slog.String("format", string(f)))
		return FormatJSON
	}
	return f
}

// Writer encodes documents onto an io.Writer.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter returns a Writer for output, or stdout when output is nil.
// Unknown formats fall back to JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return &Writer{format: normalizeFormat(format), output: output}
}

// NewStdoutWriter returns a Writer for stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout resolves an output string to a Serializer: stdout when
// empty, a ConfigMapWriter for cm://namespace/name and a file otherwise.
// Callers release file handles with Close.
func NewFileWriterOrStdout(format Format, output string) (Serializer, error) {
	target := strings.TrimSpace(output)
	if target == "" {
		return NewStdoutWriter(format), nil
	}

	if strings.HasPrefix(target, ConfigMapURIScheme) {
		namespace, name, err := parseConfigMapURI(target)
		if err != nil {
			return nil, err
		}
		if format == "" {
			format = FormatJSON
		}
		return NewConfigMapWriter(namespace, name, format), nil
	}

	if format == "" {
		format = FormatFromPath(target)
	}
	file, err := os.Create(target)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", target, err)
	}
	w := NewWriter(format, file)
	w.closer = file
	return w, nil
}

// Close closes the underlying file, if any. Later calls are no-ops.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}

// Serialize writes v in the configured format.
func (w *Writer) Serialize(_ context.Context, v any) error {
	content, err := Encode(w.format, v)
	if err != nil {
		return err
	}
	if _, err := w.output.Write(content); err != nil {
		return fmt.Errorf("failed to write %s output: %w", w.format, err)
	}
	return nil
}

// Encode renders v in format f.
func Encode(f Format, v any) ([]byte, error) {
	switch f {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to serialize to JSON: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to serialize to YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to serialize to YAML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTable:
		return encodeTable(v)
	default:
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
}

func encodeTable(v any) ([]byte, error) {
	flat := make(map[string]any)
	flatten(flat, reflect.ValueOf(v), "")
	if len(flat) == 0 {
		return []byte("<empty>\n"), nil
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%v\n", k, flat[k])
	}
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush table: %w", err)
	}
	return buf.Bytes(), nil
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

func flatten(out map[string]any, val reflect.Value, prefix string) {
	if !val.IsValid() {
		return
	}

	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			if prefix != "" {
				out[prefix] = nil
			}
			return
		}
		val = val.Elem()
	}

	// Structs with a textual form (states, timestamps) are leaves.
	if val.Kind() == reflect.Struct && val.Type().Implements(stringerType) {
		out[keyOrRoot(prefix)] = val.Interface().(fmt.Stringer).String()
		return
	}

	//nolint:exhaustive // remaining kinds are leaves
	switch val.Kind() {
	case reflect.Struct:
		typ := val.Type()
		for i := range val.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			name, inline, skip := fieldName(field)
			if skip {
				continue
			}
			key := joinKey(prefix, name)
			if inline {
				key = prefix
			}
			flatten(out, val.Field(i), key)
		}
	case reflect.Map:
		if val.Len() == 0 && prefix != "" {
			out[prefix] = "{}"
			return
		}
		for _, mk := range val.MapKeys() {
			flatten(out, val.MapIndex(mk), joinKey(prefix, fmt.Sprint(mk.Interface())))
		}
	case reflect.Slice, reflect.Array:
		if val.Len() == 0 && prefix != "" {
			out[prefix] = "[]"
			return
		}
		for i := range val.Len() {
			flatten(out, val.Index(i), joinKey(prefix, fmt.Sprintf("[%d]", i)))
		}
	default:
		out[keyOrRoot(prefix)] = val.Interface()
	}
}

// fieldName returns the json name of a struct field, whether its members
// belong to the parent level, and whether it is excluded from output.
func fieldName(f reflect.StructField) (name string, inline, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name, _, _ = strings.Cut(tag, ",")
	if f.Anonymous && name == "" {
		return "", true, false
	}
	if strings.Contains(f.Tag.Get("yaml"), ",inline") {
		return "", true, false
	}
	if name == "" {
		name = f.Name
	}
	return name, false, false
}

func keyOrRoot(prefix string) string {
	if prefix == "" {
		return rootKey
	}
	return prefix
}

func joinKey(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	if suffix == "" {
		return prefix
	}
	return prefix + "." + suffix
}
