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

// Package order places three-course orders against a single kitchen.
//
// A Service is bound to one kitchen.Factory at construction and never
// switches. Every order it places is served from that factory, so the
// appetizer, main course and dessert always come from the same cuisine.
//
//	f, err := registry.NewFromGlobal().Build(menu.CuisineItalian, nil)
//	if err != nil {
//	    return err
//	}
//	svc, err := order.New(f)
//	if err != nil {
//	    return err
//	}
//	svc.PlaceOrder()
//
// The package knows nothing about concrete cuisines or the registry; any
// kitchen.Factory works, including ones defined by callers.
package order
