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
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NVIDIA/bistro/pkg/errors"
	"github.com/NVIDIA/bistro/pkg/serializer"
)

var probeRoutes = []string{"/health", "/ready", "/metrics"}

// IndexResponse is the body of the root route.
type IndexResponse struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	Ready     bool      `json:"ready"`
	Timestamp time.Time `json:"timestamp"`
	Routes    []string  `json:"routes"`
}

// newMux routes the probes directly and every API handler through wrap.
func (s *Server) newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	for pattern, h := range s.config.Handlers {
		mux.Handle(pattern, s.wrap(h))
	}
	return mux
}

// routes lists every served pattern, sorted.
func (s *Server) routes() []string {
	out := slices.Clone(probeRoutes)
	for pattern := range s.config.Handlers {
		out = append(out, pattern)
	}
	slices.Sort(out)
	return out
}

// handleIndex serves "/" and answers 404 for any path no other route
// claims.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, errors.ErrCodeNotFound,
			"Route not found", false, map[string]any{"path": r.URL.Path})
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, IndexResponse{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.ready.Load(),
		Timestamp: time.Now().UTC(),
		Routes:    s.routes(),
	})
}
