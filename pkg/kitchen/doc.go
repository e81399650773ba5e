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

// Package kitchen declares the factory every cuisine implements.
//
// A Factory creates one dish per course. Every dish returned by a single
// Factory belongs to the same cuisine; callers holding a Factory never need
// to know which cuisine that is. Code that prepares orders depends on this
// package only, never on a concrete cuisine package.
//
//	var f kitchen.Factory = italian.New(menu.Stdout())
//	f.CreateAppetizer().Prepare()
//
// Describe inspects the dishes of a Factory and reports them as a Menu. It
// also verifies that the three dishes agree on their cuisine.
package kitchen
