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
	"github.com/NVIDIA/bistro/pkg/menu"
)

// Preparation lines written by the Italian dishes.
const (
	PastaLine    = "Preparing classic Italian Pasta with tomato sauce.."
	PizzaLine    = "Preparing authentic Italian Pizza with mozzarella.."
	TiramisuLine = "Preparing traditional Italian Tiramisu with mascarpone.."
)

// Pasta is the Italian appetizer.
type Pasta struct {
	// Out receives the preparation line. Nil means standard output.
	Out menu.LineWriter
}

// Prepare writes the preparation line for Pasta.
func (d Pasta) Prepare() { menu.WriterOrStdout(d.Out).WriteLine(PastaLine) }

// Name returns "Pasta".
func (Pasta) Name() string { return "Pasta" }

// Cuisine returns menu.CuisineItalian.
func (Pasta) Cuisine() menu.Cuisine { return menu.CuisineItalian }

// Course returns menu.CourseAppetizer.
func (Pasta) Course() menu.Course { return menu.CourseAppetizer }

// Pizza is the Italian main course.
type Pizza struct {
	// Out receives the preparation line. Nil means standard output.
	Out menu.LineWriter
}

// Prepare writes the preparation line for Pizza.
func (d Pizza) Prepare() { menu.WriterOrStdout(d.Out).WriteLine(PizzaLine) }

// Name returns "Pizza".
func (Pizza) Name() string { return "Pizza" }

// Cuisine returns menu.CuisineItalian.
func (Pizza) Cuisine() menu.Cuisine { return menu.CuisineItalian }

// Course returns menu.CourseMainCourse.
func (Pizza) Course() menu.Course { return menu.CourseMainCourse }

// Tiramisu is the Italian dessert.
type Tiramisu struct {
	// Out receives the preparation line. Nil means standard output.
	Out menu.LineWriter
}

// Prepare writes the preparation line for Tiramisu.
func (d Tiramisu) Prepare() { menu.WriterOrStdout(d.Out).WriteLine(TiramisuLine) }

// Name returns "Tiramisu".
func (Tiramisu) Name() string { return "Tiramisu" }

// Cuisine returns menu.CuisineItalian.
func (Tiramisu) Cuisine() menu.Cuisine { return menu.CuisineItalian }

// Course returns menu.CourseDessert.
func (Tiramisu) Course() menu.Course { return menu.CourseDessert }
