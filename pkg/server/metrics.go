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
	"log"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NVIDIA/bistro/pkg/logging"
)

// unmatchedRoute labels requests that reached no registered pattern.
const unmatchedRoute = "unmatched"

var (
	requestCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bistro_http_requests_total",
		Help: "HTTP requests served, by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bistro_http_request_duration_seconds",
		Help:    "Time spent serving HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	requestsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bistro_http_requests_in_flight",
		Help: "HTTP requests currently being served.",
	})

	rateLimitRejects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bistro_rate_limit_rejects_total",
		Help: "Requests answered with 429 by the token bucket.",
	})

	panicRecoveries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bistro_panic_recoveries_total",
		Help: "Handler panics converted into 500 responses.",
	})
)

// instrument records request count, latency and in-flight requests,
// labelled by the matched route pattern.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestsActive.Inc()
		defer requestsActive.Dec()

		start := time.Now()
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		requestCount.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		requestLatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// slogErrorLog routes http.Server internal errors through slog.
func slogErrorLog() *log.Logger {
	return logging.NewLogLogger(slog.LevelWarn, false)
}
