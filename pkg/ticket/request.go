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

package ticket

import (
	"fmt"
	"io"
	"strings"

	"github.com/NVIDIA/bistro/pkg/errors"
	"github.com/NVIDIA/bistro/pkg/header"
	"github.com/NVIDIA/bistro/pkg/menu"
	"github.com/NVIDIA/bistro/pkg/serializer"
)

// Request lists the cuisines of a batch order, as read from an order
// file or an HTTP request body.
type Request struct {
	header.Header `json:",inline" yaml:",inline"`

	Cuisines []string `json:"cuisines" yaml:"cuisines"`
}

// ReadRequest decodes a Request from r in the given format.
func ReadRequest(format serializer.Format, r io.Reader) (*Request, error) {
	rd, err := serializer.NewReader(format, r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "unsupported order format", err)
	}

	var req Request
	if err := rd.Deserialize(&req); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid order", err)
	}
	return &req, nil
}

// ReadRequestFile loads a Request from a json or yaml order file.
func ReadRequestFile(path string) (*Request, error) {
	req, err := serializer.FromFile[Request](path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid order file", err)
	}
	return req, nil
}

// ParseCuisines normalizes names into cuisines. Each entry may itself be
// a comma-separated list; empty entries are skipped.
func ParseCuisines(names ...string) ([]menu.Cuisine, error) {
	var out []menu.Cuisine
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			c, err := menu.ParseCuisine(part)
			if err != nil {
				return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
					fmt.Sprintf("invalid cuisine %q", part), err,
					map[string]any{"cuisine": part})
			}
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "at least one cuisine is required")
	}
	return out, nil
}
