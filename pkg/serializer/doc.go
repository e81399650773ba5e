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

// Package serializer writes and reads bistro documents in multiple formats.
//
// # Formats
//
//   - text: the order slip, for values implementing TextWriter; anything
//     else falls back to table
//   - json: indented encoding/json output
//   - yaml: gopkg.in/yaml.v3 output
//   - table: FIELD/VALUE rows keyed by JSON field names (write only)
//
// Readers accept json and yaml and reject fields the target type does
// not declare.
//
// # Usage - Encoding
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, tickets); err != nil {
//	    return err
//	}
//
// # Usage - Decoding
//
// Order files list the cuisines of a batch:
//
//	r, err := serializer.NewFileReader(serializer.FormatFromPath(path), path)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	var req OrderFile
//	err = r.Deserialize(&req)
//
// # HTTP
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// RespondJSON buffers the encoding before writing headers so encoding
// errors never produce partial responses.
package serializer
