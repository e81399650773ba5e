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

package defaults

import "time"

// Ordering.
const (
	// OrderHandlerTimeout bounds one /v1/orders request, batch included.
	OrderHandlerTimeout = 10 * time.Second

	// OrderBatchTimeout bounds `bistro order` as a whole.
	OrderBatchTimeout = 30 * time.Second

	// MaxConcurrentOrders is the errgroup limit used by PlaceAll.
	MaxConcurrentOrders = 4

	// MaxBatchCuisines rejects batches naming more cuisines than this.
	MaxBatchCuisines = 16
)

// HTTP server. OrderHandlerTimeout must stay below ServerWriteTimeout so
// handlers can still write their error response.
const (
	ServerReadTimeout       = 10 * time.Second
	ServerReadHeaderTimeout = 5 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second
	ServerShutdownTimeout   = 30 * time.Second
)

// Token bucket applied to every non-probe request.
const (
	ServerRateLimit      = 100 // requests per second
	ServerRateLimitBurst = 200
)
