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

// Package ticket places orders and records what the kitchen prepared.
//
// A Ticket is the document form of one order: the cuisine, a unique ID and
// the lines each dish wrote while being prepared. Tickets carry the common
// document header so they serialize like every other bistro document.
//
// # Single Order
//
//	reg := registry.NewFromGlobal()
//	t, err := ticket.Place(ctx, reg, menu.CuisineItalian)
//
// # Batches
//
// PlaceAll prepares several orders concurrently, each with its own
// Recorder, and returns the tickets in the order they were requested:
//
//	list, err := ticket.PlaceAll(ctx, reg, []menu.Cuisine{"italian", "chinese"})
//
// Concurrency is bounded by defaults.MaxConcurrentOrders and a batch may
// request at most defaults.MaxBatchCuisines cuisines.
//
// # Text Output
//
// Ticket and List implement WriteText, rendering the classic order slip:
//
//	=== Italian Restaurant Order ===
//	Preparing classic Italian Pasta with tomato sauce..
//	Preparing authentic Italian Pizza with mozzarella..
//	Preparing traditional Italian Tiramisu with mascarpone..
package ticket
