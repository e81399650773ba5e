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

// Package registry maps cuisines to the constructors of their kitchens.
//
// Cuisine packages self-register during package initialization, and
// binaries look kitchens up by name at runtime without importing any
// concrete cuisine themselves.
//
// # Registration
//
//	package italian
//
//	func init() {
//	    registry.MustRegister(menu.CuisineItalian, func(out menu.LineWriter) kitchen.Factory {
//	        return New(out)
//	    })
//	}
//
// Names must already be canonical (what menu.ParseCuisine returns), so
// "thai" registers while "Thai" and "thai food" are rejected. MustRegister
// panics on invalid or duplicate registration so clashes surface at
// startup. Importing github.com/NVIDIA/bistro/pkg/cuisine registers every
// built-in cuisine.
//
// # Lookup
//
//	reg := registry.NewFromGlobal()
//	f, err := reg.Build(menu.CuisineItalian, menu.Stdout())
//	if err != nil {
//	    // errors.HasCode(err, errors.ErrCodeNotFound) for unknown cuisines
//	}
//
// # Testing
//
// Create isolated registries instead of touching the global table:
//
//	reg := registry.New()
//	_ = reg.Register("thai", newThaiKitchen)
//
// # Thread Safety
//
// Both the global table and Registry instances are guarded by a
// sync.RWMutex; lookups may run concurrently with each other.
package registry
