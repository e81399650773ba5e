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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	// FormatText writes the human-readable form of documents implementing
	// TextWriter, and a table for everything else.
	FormatText Format = "text"
	// FormatJSON writes indented JSON.
	FormatJSON Format = "json"
	// FormatYAML writes YAML.
	FormatYAML Format = "yaml"
	// FormatTable writes a two-column FIELD/VALUE table of flattened keys.
	FormatTable Format = "table"
)

// valueKey names the single row of a table built from a scalar.
const valueKey = "value"

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats lists the supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// Writer encodes documents in one format to one destination.
// Close must be called to release file handles when using NewFileWriterOrStdout.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter creates a Writer on output, or on stdout when output is nil.
// Unknown formats fall back to JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &Writer{format: format, output: output}
}

// NewStdoutWriter creates a Writer on stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a Writer on the file at path, truncating
// it. An empty path or a file that cannot be created falls back to stdout.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewStdoutWriter(format)
	}

	f, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create output file", "error", err, "path", path)
		return NewStdoutWriter(format)
	}

	w := NewWriter(format, f)
	w.closer = f
	return w
}

// Close releases the output file, if any. Safe to call more than once.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	c := w.closer
	w.closer = nil
	return c.Close()
}

// Serialize writes v in the configured format. ctx is accepted to satisfy
// Serializer; local writes do not block on it.
func (w *Writer) Serialize(_ context.Context, v any) error {
	switch w.format {
	case FormatText:
		return w.writeText(v)
	case FormatJSON:
		return w.writeJSON(v)
	case FormatYAML:
		return w.writeYAML(v)
	case FormatTable:
		return w.writeTable(v)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) writeText(v any) error {
	tw, ok := v.(TextWriter)
	if !ok {
		return w.writeTable(v)
	}
	if err := tw.WriteText(w.output); err != nil {
		return fmt.Errorf("failed to serialize to text: %w", err)
	}
	return nil
}

func (w *Writer) writeJSON(v any) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func (w *Writer) writeYAML(v any) error {
	enc := yaml.NewEncoder(w.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return enc.Close()
}

func (w *Writer) writeTable(v any) error {
	rows := make(map[string]any)
	flatten(rows, reflect.ValueOf(v), "")
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w.output, "<empty>")
		return err
	}

	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%v\n", k, rows[k])
	}
	return tw.Flush()
}

// flatten writes one row per leaf of v. Struct keys follow the json tag
// of each field; embedded structs without a tag name are inlined and
// fields tagged "-" are skipped.
func flatten(rows map[string]any, v reflect.Value, prefix string) {
	if !v.IsValid() {
		return
	}

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			if prefix != "" {
				rows[prefix] = nil
			}
			return
		}
		v = v.Elem()
	}

	// identifiers such as uuid.UUID print as one value
	if (v.Kind() == reflect.Array || v.Kind() == reflect.Struct) && v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			rows[keyOrValue(prefix)] = s.String()
			return
		}
	}

	//nolint:exhaustive // remaining kinds are leaves
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() && !f.Anonymous {
				continue
			}
			name, skip := fieldName(f)
			if skip {
				continue
			}
			if name == "" {
				flatten(rows, v.Field(i), prefix)
				continue
			}
			flatten(rows, v.Field(i), joinKey(prefix, name))
		}
	case reflect.Map:
		for _, k := range v.MapKeys() {
			flatten(rows, v.MapIndex(k), joinKey(prefix, fmt.Sprint(k.Interface())))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			flatten(rows, v.Index(i), joinKey(prefix, fmt.Sprintf("[%d]", i)))
		}
	default:
		rows[keyOrValue(prefix)] = v.Interface()
	}
}

// fieldName returns the table key for f. An empty name means the field
// is an embedded struct to inline.
func fieldName(f reflect.StructField) (name string, skip bool) {
	tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch {
	case tag == "-":
		return "", true
	case tag != "":
		return tag, false
	case f.Anonymous && indirectKind(f.Type) == reflect.Struct:
		return "", false
	case !f.IsExported():
		return "", true
	default:
		return f.Name, false
	}
}

func indirectKind(t reflect.Type) reflect.Kind {
	if t.Kind() == reflect.Pointer {
		return t.Elem().Kind()
	}
	return t.Kind()
}

func keyOrValue(prefix string) string {
	if prefix == "" {
		return valueKey
	}
	return prefix
}

func joinKey(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	return prefix + "." + suffix
}
