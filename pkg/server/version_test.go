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

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{"", DefaultAPIVersion},
		{"application/json", DefaultAPIVersion},
		{"application/vnd.nvidia.bistro.v1+json", "v1"},
		{"application/vnd.nvidia.bistro.v1", "v1"},
		{"application/vnd.nvidia.bistro.v2+json", DefaultAPIVersion},
		{"application/vnd.nvidia.bistro.vBAD+json", DefaultAPIVersion},
		{"text/html, application/vnd.nvidia.bistro.v1+json;q=0.9", "v1"},
		{"application/vnd.example.v1+json", DefaultAPIVersion},
		{";;;", DefaultAPIVersion},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept", tt.accept)
			assert.Equal(t, tt.want, negotiateAPIVersion(req))
		})
	}
}

func TestIsValidAPIVersion(t *testing.T) {
	assert.True(t, isValidAPIVersion("v1"))
	for _, v := range []string{"", "v2", "1", "V1"} {
		assert.False(t, isValidAPIVersion(v), v)
	}
}
