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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	placeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bistro_ticket_place_duration_seconds",
			Help:    "Time taken to prepare one order",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"cuisine"}, // registered cuisines only
	)

	placeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bistro_ticket_place_total",
			Help: "Total number of order placement attempts",
		},
		[]string{"status"}, // success or error
	)

	batchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bistro_ticket_batch_size",
			Help:    "Number of cuisines requested per batch",
			Buckets: []float64{1, 2, 4, 8, 16},
		},
	)
)
