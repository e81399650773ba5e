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

package header

import (
	"time"
)

// APIVersionV1 is the current document API version.
const APIVersionV1 = "bistro.nvidia.com/v1"

// Kind names the type of a bistro document.
type Kind string

const (
	KindTicket     Kind = "Ticket"
	KindTicketList Kind = "TicketList"
	KindMenuList   Kind = "MenuList"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the document kinds above.
func (k Kind) IsValid() bool {
	switch k {
	case KindTicket, KindTicketList, KindMenuList:
		return true
	}
	return false
}

// Header is embedded at the top of every document the CLI and API emit.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init stamps h as a v1 document of the given kind. Existing metadata is
// replaced by a UTC creation timestamp and, when non-empty, the version
// of the binary that produced it.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersionV1
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
}
