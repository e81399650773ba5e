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
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew_Defaults(t *testing.T) {
	s := New()

	assert.Equal(t, "server", s.config.Name)
	assert.Equal(t, "undefined", s.config.Version)
	assert.Equal(t, ":8080", s.httpServer.Addr)
	assert.Contains(t, s.config.Handlers, "/")
	assert.False(t, s.ready.Load())
	assert.NotNil(t, s.httpServer.ErrorLog)
}

func TestOptions(t *testing.T) {
	h := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

	s := New(
		WithName("bistrod"),
		WithVersion("v1.2.3"),
		WithHandler(map[string]http.HandlerFunc{"/v1/orders": h}),
		WithHandler(map[string]http.HandlerFunc{"/v1/cuisines": h}),
	)

	assert.Equal(t, "bistrod", s.config.Name)
	assert.Equal(t, "v1.2.3", s.config.Version)
	assert.Len(t, s.config.Handlers, 3)
	assert.Equal(t, http.StatusNoContent, get(t, s, "/v1/orders").Code)
}

func TestWithConfig(t *testing.T) {
	cfg := &Config{Name: "custom", Port: 9999, RateLimit: 5, RateLimitBurst: 5}
	s := New(WithConfig(cfg), WithConfig(nil))

	assert.Same(t, cfg, s.config)
	assert.Equal(t, ":9999", s.httpServer.Addr)
}

func TestHealth(t *testing.T) {
	w := get(t, New(), "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, StatusHealthy, resp.Status)

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	w = httptest.NewRecorder()
	New().Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))
}

func TestReady(t *testing.T) {
	failing := fmt.Errorf("no kitchens registered")

	tests := []struct {
		name       string
		serving    bool
		check      func() error
		wantStatus int
		wantReason string
	}{
		{"not serving", false, nil, http.StatusServiceUnavailable, "server is not serving"},
		{"serving", true, nil, http.StatusOK, ""},
		{"serving with passing check", true, func() error { return nil }, http.StatusOK, ""},
		{"serving with failing check", true, func() error { return failing }, http.StatusServiceUnavailable, "kitchens: no kitchens registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(WithReadinessCheck("kitchens", tt.check))
			s.ready.Store(tt.serving)

			w := get(t, s, "/ready")
			require.Equal(t, tt.wantStatus, w.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantReason, resp.Reason)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New()
	get(t, s, "/")

	w := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bistro_http_requests_total")
}

func TestIndex(t *testing.T) {
	s := New(WithName("bistrod"), WithVersion("v9"),
		WithHandler(map[string]http.HandlerFunc{"/v1/orders": func(http.ResponseWriter, *http.Request) {}}))

	w := get(t, s, "/")
	require.Equal(t, http.StatusOK, w.Code)

	var resp IndexResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bistrod", resp.Name)
	assert.Equal(t, "v9", resp.Version)
	assert.Equal(t, []string{"/", "/health", "/metrics", "/ready", "/v1/orders"}, resp.Routes)
	assert.NotEmpty(t, w.Header().Get(headerRequestID))
}

func TestIndex_Errors(t *testing.T) {
	s := New()

	w := get(t, s, "/v1/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"path":"/v1/unknown"`)

	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCustomRootKept(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/": func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) },
	}))

	assert.Equal(t, http.StatusTeapot, get(t, s, "/").Code)
}

func TestPanicThroughServer(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/boom": func(http.ResponseWriter, *http.Request) { panic("boom") },
	}))

	w := get(t, s, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServe_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	cfg := NewConfig()
	cfg.ShutdownTimeout = 2 * time.Second
	s := New(WithConfig(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	url := fmt.Sprintf("http://%s/ready", ln.Addr())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.False(t, s.ready.Load())
}

func TestStart_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	s := New(WithConfig(&Config{Address: "127.0.0.1", Port: port, RateLimit: 1, RateLimitBurst: 1}))

	err = s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
