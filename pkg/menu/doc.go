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

// Package menu defines the dish capabilities every cuisine must supply and
// the output channel dishes report preparation steps to.
//
// # Courses and Cuisines
//
// A Course is one of a fixed set of dish roles:
//
//	menu.CourseAppetizer, menu.CourseMainCourse, menu.CourseDessert
//
// Adding a course requires a new creation method on kitchen.Factory and an
// implementation in every cuisine, so the set is closed. A Cuisine is an open
// string type; new cuisines are added without touching existing code.
//
// # Capabilities
//
// Each course has its own single-method interface:
//
//	type Appetizer interface  { Prepare() }
//	type MainCourse interface { Prepare() }
//	type Dessert interface    { Prepare() }
//
// Prepare has no inputs, no return value and cannot fail. Its only effect is
// one line written to a LineWriter.
//
// Built-in dishes also implement Dish, which reports the dish name, cuisine
// and course. Order code never relies on Dish; it exists for listings and
// consistency checks.
//
// # Output
//
// LineWriter is the single "write line" capability dishes depend on:
//
//	out := menu.NewLineWriter(os.Stdout)
//	out.WriteLine("Preparing classic Italian Pasta with tomato sauce..")
//
// A nil LineWriter is never stored by dishes; WriterOrStdout resolves it to
// standard output.
package menu
