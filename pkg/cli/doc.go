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

// Package cli implements the bistro command-line interface.
//
// # Commands
//
// order - Place orders:
//
//	bistro order [--cuisine NAME[,NAME...]] [--file FILE] [--output FILE] [--format text|json|yaml|table]
//
// Places one order per cuisine and prints a ticket for each. Every ticket
// carries the lines printed by the kitchen while preparing its appetizer,
// main course and dessert. Cuisines come from --cuisine, from the
// BISTRO_CUISINE environment variable, or from an order file:
//
//	cuisines:
//	  - italian
//	  - mexican
//
// With no cuisine at all, every registered cuisine is ordered once.
//
// cuisines - List kitchens:
//
//	bistro cuisines [--output FILE] [--format text|json|yaml|table]
//
// Lists every registered cuisine with the names of its three dishes.
// Dishes are created to read their names but never prepared.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// Text (default):
//   - The kitchen output, one block per order
//
// JSON and YAML:
//   - Ticket documents with kind, apiVersion and metadata
//
// Table:
//   - Flattened key/value view
//
// # Environment Variables
//
//	LOG_LEVEL       Set logging verbosity (debug, info, warn, error)
//	BISTRO_CUISINE  Default for --cuisine
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unknown cuisine)
//	2  Context canceled or timeout
package cli
