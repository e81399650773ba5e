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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testSlip struct {
	ID      uuid.UUID `json:"id" yaml:"id"`
	Cuisine string    `json:"cuisine" yaml:"cuisine"`
	Lines   []string  `json:"lines" yaml:"lines"`
}

func (s testSlip) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, "=== "+s.Cuisine+" ===\n"+strings.Join(s.Lines, "\n")+"\n")
	return err
}

type failingSlip struct{}

func (failingSlip) WriteText(io.Writer) error { return errors.New("boom") }

type testMenu struct {
	Cuisine    string
	Appetizer  string
	MainCourse string
}

var testID = uuid.MustParse("5f2b8c1e-3d4a-4b6c-9e8f-0a1b2c3d4e5f")

func newSlip() testSlip {
	return testSlip{ID: testID, Cuisine: "italian", Lines: []string{"pasta", "pizza"}}
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	require.NoError(t, writer.Serialize(context.Background(), newSlip()))

	var result testSlip
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, newSlip(), result)
	assert.Contains(t, buf.String(), "\n  \"cuisine\"")
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	require.NoError(t, writer.Serialize(context.Background(), newSlip()))

	assert.Contains(t, buf.String(), "id: "+testID.String())

	var result testSlip
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "italian", result.Cuisine)
	assert.Equal(t, []string{"pasta", "pizza"}, result.Lines)
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := []testMenu{
		{Cuisine: "italian", Appetizer: "Pasta", MainCourse: "Pizza"},
		{Cuisine: "chinese", Appetizer: "Dimsum", MainCourse: "Noodles"},
	}

	require.NoError(t, writer.Serialize(context.Background(), data))

	output := buf.String()
	assert.Contains(t, output, "FIELD")
	assert.Contains(t, output, "VALUE")
	assert.Contains(t, output, "[0].Cuisine")
	assert.Contains(t, output, "[1].MainCourse")
}

func TestWriter_SerializeTable_Stringer(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	require.NoError(t, writer.Serialize(context.Background(), newSlip()))

	output := buf.String()
	assert.Contains(t, output, testID.String())
	assert.NotContains(t, output, "ID.[0]")
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	require.NoError(t, writer.Serialize(context.Background(), []testMenu{}))
	assert.Contains(t, buf.String(), "<empty>")
}

func TestWriter_SerializeTable_Maps(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := map[string]any{
		"metadata": map[string]string{"version": "v1.0.0"},
		"kind":     "Ticket",
	}
	require.NoError(t, writer.Serialize(context.Background(), data))

	output := buf.String()
	assert.Contains(t, output, "metadata.version")
	assert.Contains(t, output, "v1.0.0")
}

func TestWriter_SerializeText(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatText, &buf)

	require.NoError(t, writer.Serialize(context.Background(), newSlip()))

	want := "=== italian ===\npasta\npizza\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_SerializeText_FallsBackToTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatText, &buf)

	require.NoError(t, writer.Serialize(context.Background(), testMenu{Cuisine: "mexican"}))
	assert.Contains(t, buf.String(), "FIELD")
}

func TestWriter_SerializeText_Error(t *testing.T) {
	writer := NewWriter(FormatText, &bytes.Buffer{})

	err := writer.Serialize(context.Background(), failingSlip{})
	assert.ErrorContains(t, err, "boom")
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("invalid"), &buf)

	require.NotNil(t, writer)

	// Should default to JSON format
	require.NoError(t, writer.Serialize(context.Background(), testMenu{Cuisine: "italian"}))

	var result testMenu
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatText, false},
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("invalid"), true},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsUnknown())
		})
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	require.Len(t, formats, 4)
	for _, f := range formats {
		assert.False(t, Format(f).IsUnknown(), f)
	}
}

func TestWriter_Close(t *testing.T) {
	writer := NewStdoutWriter(FormatJSON)
	assert.NoError(t, writer.Close())
	assert.NoError(t, writer.Close())
}

func TestNewFileWriterOrStdout_EmptyPath(t *testing.T) {
	for _, path := range []string{"", "  ", "\t", "\n"} {
		writer := NewFileWriterOrStdout(FormatJSON, path)
		require.NotNil(t, writer)
		assert.Nil(t, writer.closer, "path %q", path)
	}
}

func TestNewFileWriterOrStdout_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.yaml")

	writer := NewFileWriterOrStdout(FormatYAML, path)
	require.NoError(t, writer.Serialize(context.Background(), newSlip()))
	require.NoError(t, writer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "cuisine: italian")
}

func TestNewFileWriterOrStdout_InvalidPath(t *testing.T) {
	writer := NewFileWriterOrStdout(FormatJSON, "/nonexistent/path/file.json")

	// Should fall back to stdout
	require.NotNil(t, writer)
	assert.NoError(t, writer.Close())
}

type testHeader struct {
	Kind     string            `json:"kind"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type testTicket struct {
	testHeader `json:",inline"`

	Cuisine string `json:"cuisine"`
	Secret  string `json:"-"`
	Lines   []string
}

func TestWriter_SerializeTable_JSONKeys(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testTicket{
		testHeader: testHeader{Kind: "Ticket", Metadata: map[string]string{"version": "v1"}},
		Cuisine:    "mexican",
		Secret:     "salsa recipe",
		Lines:      []string{"burrito"},
	}
	require.NoError(t, writer.Serialize(context.Background(), data))

	output := buf.String()
	for _, want := range []string{"kind", "metadata.version", "cuisine", "Lines.[0]"} {
		assert.Contains(t, output, want)
	}
	for _, unwanted := range []string{"testHeader", "salsa recipe"} {
		assert.NotContains(t, output, unwanted)
	}
}
