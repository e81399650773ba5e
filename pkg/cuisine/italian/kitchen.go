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

package italian

import (
	"github.com/NVIDIA/bistro/pkg/kitchen"
	"github.com/NVIDIA/bistro/pkg/menu"
	"github.com/NVIDIA/bistro/pkg/registry"
)

func init() {
	// Register the Italian kitchen so binaries can order it by name.
	registry.MustRegister(menu.CuisineItalian, func(out menu.LineWriter) kitchen.Factory {
		return New(out)
	})
}

var _ kitchen.Factory = (*Kitchen)(nil)

// Kitchen creates Italian dishes.
type Kitchen struct {
	out menu.LineWriter
}

// New creates an Italian Kitchen whose dishes write to out.
// A nil out writes to standard output.
func New(out menu.LineWriter) *Kitchen {
	return &Kitchen{out: menu.WriterOrStdout(out)}
}

// CreateAppetizer returns Pasta.
func (k *Kitchen) CreateAppetizer() menu.Appetizer {
	return Pasta{Out: k.out}
}

// CreateMainCourse returns Pizza.
func (k *Kitchen) CreateMainCourse() menu.MainCourse {
	return Pizza{Out: k.out}
}

// CreateDessert returns Tiramisu.
func (k *Kitchen) CreateDessert() menu.Dessert {
	return Tiramisu{Out: k.out}
}
