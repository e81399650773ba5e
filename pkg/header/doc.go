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

// Package header provides the common header carried by bistro documents.
//
// Tickets and menu listings embed a Header so their JSON and YAML forms
// share the same shape:
//
//	{
//	  "kind": "Ticket",
//	  "apiVersion": "bistro.nvidia.com/v1",
//	  "metadata": {
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
//
// Documents stamp their embedded header with Init:
//
//	var t ticket.Ticket
//	t.Init(header.KindTicket, version)
package header
