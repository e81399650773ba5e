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

package menu

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourses_ServingOrder(t *testing.T) {
	assert.Equal(t, []Course{CourseAppetizer, CourseMainCourse, CourseDessert}, Courses())
}

func TestBuiltinCuisines_ServingOrder(t *testing.T) {
	assert.Equal(t, []Cuisine{CuisineItalian, CuisineChinese, CuisineMexican}, BuiltinCuisines())
}

func TestCuisine_Title(t *testing.T) {
	tests := []struct {
		cuisine Cuisine
		want    string
	}{
		{CuisineItalian, "Italian"},
		{CuisineChinese, "Chinese"},
		{CuisineMexican, "Mexican"},
		{Cuisine("south-indian"), "South Indian"},
	}

	for _, tt := range tests {
		t.Run(tt.cuisine.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cuisine.Title())
		})
	}
}

func TestParseCuisine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Cuisine
		wantErr bool
	}{
		{name: "lower case", input: "italian", want: CuisineItalian},
		{name: "mixed case", input: "Mexican", want: CuisineMexican},
		{name: "surrounding whitespace", input: "  chinese\n", want: CuisineChinese},
		{name: "unregistered is still parsed", input: "thai", want: Cuisine("thai")},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "inner space", input: "new york", wantErr: true},
		{name: "list", input: "italian,chinese", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCuisine(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLineWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewLineWriter(&buf)

	w.WriteLine("first")
	w.WriteLine("second")

	assert.Equal(t, "first\nsecond\n", buf.String())
}

func TestNewLineWriter_ConcurrentLinesStayWhole(t *testing.T) {
	var buf bytes.Buffer
	w := NewLineWriter(&buf)

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.WriteLine("Preparing something tasty..")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, writers)
	for _, l := range lines {
		assert.Equal(t, "Preparing something tasty..", l)
	}
}

func TestLineWriterFunc(t *testing.T) {
	var got []string
	w := LineWriterFunc(func(line string) { got = append(got, line) })

	w.WriteLine("a")
	w.WriteLine("b")

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestWriterOrStdout(t *testing.T) {
	assert.Same(t, Stdout(), WriterOrStdout(nil))

	custom := NewLineWriter(&bytes.Buffer{})
	assert.Same(t, custom, WriterOrStdout(custom))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard.WriteLine("ignored") })
}
