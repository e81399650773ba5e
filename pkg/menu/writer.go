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
	"fmt"
	"io"
	"os"
	"sync"
)

// LineWriter receives one human-readable line per preparation step.
type LineWriter interface {
	WriteLine(line string)
}

// LineWriterFunc adapts a function to the LineWriter interface.
type LineWriterFunc func(line string)

// WriteLine calls f(line).
func (f LineWriterFunc) WriteLine(line string) {
	f(line)
}

// Discard is a LineWriter that drops every line.
var Discard LineWriter = LineWriterFunc(func(string) {})

// ioLineWriter writes lines to an io.Writer, one write per line.
type ioLineWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLineWriter returns a LineWriter that writes each line, newline
// terminated, to w. It is safe for concurrent use.
// If w is nil, os.Stdout is used.
func NewLineWriter(w io.Writer) LineWriter {
	if w == nil {
		w = os.Stdout
	}
	return &ioLineWriter{w: w}
}

func (lw *ioLineWriter) WriteLine(line string) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	// Write errors have nowhere to go: Prepare cannot fail.
	_, _ = fmt.Fprintln(lw.w, line)
}

var (
	stdoutOnce sync.Once
	stdout     LineWriter
)

// Stdout returns the shared LineWriter for standard output.
func Stdout() LineWriter {
	stdoutOnce.Do(func() {
		stdout = NewLineWriter(os.Stdout)
	})
	return stdout
}

// WriterOrStdout returns w, or Stdout() when w is nil.
func WriterOrStdout(w LineWriter) LineWriter {
	if w == nil {
		return Stdout()
	}
	return w
}
