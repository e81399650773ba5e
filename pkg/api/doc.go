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

// Package api serves the bistro HTTP API.
//
// # Usage
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/bistro/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Setting up the order and menu handlers
//   - Delegating server lifecycle management to pkg/server
//
// # Endpoints
//
// GET /v1/cuisines
//
// Lists every registered cuisine with its dishes (a MenuList document).
//
// GET|POST /v1/orders?cuisine=italian[,chinese...]
//
// Places one order per requested cuisine and returns a Ticket, or a
// TicketList when more than one cuisine is requested. POST requests may
// instead carry the cuisines in a JSON or YAML body:
//
//	{"cuisines": ["italian", "mexican"]}
//
// Errors:
//   - 400 when no cuisine is given or a name is malformed
//   - 404 when a cuisine is not registered
//   - 405 for any other method
//
// Every placed order increments bistro_orders_total{cuisine}.
//
// System endpoints /health, /ready and /metrics are provided by pkg/server.
package api
