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

package mexican

import (
	"github.com/NVIDIA/bistro/pkg/menu"
)

// Preparation lines written by the Mexican dishes.
const (
	BurritoLine = "Preparing Mexican Burrito with beans and cheese..."
	TacosLine   = "Preparing spicy Mexican Tacos with salsa.."
	ChurrosLine = "Making Mexican Churros with cinnamon..."
)

// Burrito is the Mexican appetizer.
type Burrito struct {
	// Out receives the preparation line. Nil means standard output.
	Out menu.LineWriter
}

// Prepare writes the preparation line for Burrito.
func (d Burrito) Prepare() { menu.WriterOrStdout(d.Out).WriteLine(BurritoLine) }

// Name returns "Burrito".
func (Burrito) Name() string { return "Burrito" }

// Cuisine returns menu.CuisineMexican.
func (Burrito) Cuisine() menu.Cuisine { return menu.CuisineMexican }

// Course returns menu.CourseAppetizer.
func (Burrito) Course() menu.Course { return menu.CourseAppetizer }

// Tacos is the Mexican main course.
type Tacos struct {
	// Out receives the preparation line. Nil means standard output.
	Out menu.LineWriter
}

// Prepare writes the preparation line for Tacos.
func (d Tacos) Prepare() { menu.WriterOrStdout(d.Out).WriteLine(TacosLine) }

// Name returns "Tacos".
func (Tacos) Name() string { return "Tacos" }

// Cuisine returns menu.CuisineMexican.
func (Tacos) Cuisine() menu.Cuisine { return menu.CuisineMexican }

// Course returns menu.CourseMainCourse.
func (Tacos) Course() menu.Course { return menu.CourseMainCourse }

// Churros is the Mexican dessert.
type Churros struct {
	// Out receives the preparation line. Nil means standard output.
	Out menu.LineWriter
}

// Prepare writes the preparation line for Churros.
func (d Churros) Prepare() { menu.WriterOrStdout(d.Out).WriteLine(ChurrosLine) }

// Name returns "Churros".
func (Churros) Name() string { return "Churros" }

// Cuisine returns menu.CuisineMexican.
func (Churros) Cuisine() menu.Cuisine { return menu.CuisineMexican }

// Course returns menu.CourseDessert.
func (Churros) Course() menu.Course { return menu.CourseDessert }
