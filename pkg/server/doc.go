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

// Package server provides the HTTP server shared by bistro services.
//
// The server wraps net/http with the pieces every service needs:
//
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Request ID tracking via the X-Request-Id header
//   - API version negotiation via the Accept header
//   - Panic recovery
//   - Prometheus metrics at /metrics
//   - Health and readiness probes
//   - Graceful shutdown on SIGINT and SIGTERM
//
// # Usage
//
//	s := server.New(
//	    server.WithName("bistrod"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/orders": handleOrders,
//	    }),
//	    server.WithReadinessCheck("kitchens", checkKitchens),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Handlers registered with WithHandler run behind the middleware chain;
// /health, /ready and /metrics do not. /ready answers 503 until the
// listener is up and while any readiness check returns an error.
//
// Tests drive the server on their own listener with Serve and stop it by
// cancelling the context.
//
// # Configuration
//
// Defaults come from pkg/defaults and may be overridden by environment:
//
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget (default 30)
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. The latter
// maps a pkg/errors code to an HTTP status:
//
//	INVALID_REQUEST      400
//	NOT_FOUND            404
//	METHOD_NOT_ALLOWED   405
//	ALREADY_EXISTS       409
//	RATE_LIMIT_EXCEEDED  429
//	INTERNAL             500
//	SERVICE_UNAVAILABLE  503
//	TIMEOUT              504
//
// Every error body carries the request ID and whether the request may be
// retried:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "no kitchen registered for cuisine \"french\"",
//	  "details": {"cuisine": "french"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
package server
