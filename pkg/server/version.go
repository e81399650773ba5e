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
	"mime"
	"net/http"
	"slices"
	"strings"
)

const (
	// DefaultAPIVersion is served when the client does not ask for a
	// supported version.
	DefaultAPIVersion = "v1"

	vendorMediaTypePrefix = "application/vnd.nvidia.bistro."
)

var supportedAPIVersions = []string{"v1"}

// negotiateAPIVersion picks the API version from vendor media types in the
// Accept header, e.g. "application/vnd.nvidia.bistro.v1+json". The first
// supported version wins; anything else falls back to DefaultAPIVersion.
func negotiateAPIVersion(r *http.Request) string {
	for _, mediaRange := range strings.Split(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(mediaRange))
		if err != nil {
			continue
		}
		v, ok := strings.CutPrefix(mt, vendorMediaTypePrefix)
		if !ok {
			continue
		}
		v, _, _ = strings.Cut(v, "+")
		if isValidAPIVersion(v) {
			return v
		}
	}
	return DefaultAPIVersion
}

func isValidAPIVersion(version string) bool {
	return slices.Contains(supportedAPIVersions, version)
}

// SetAPIVersionHeader reports the served API version in X-API-Version.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
