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

package chinese

import (
	"github.com/NVIDIA/bistro/pkg/menu"
)

// Preparation lines written by the Chinese dishes.
const (
	DimsumLine     = "Steaming Chinese Dimsum with pork (Harrraammmm) ..."
	NoodlesLine    = "Preparing delicious Chinese Noodles with soy sauce.."
	SpringRollLine = "Frying Chinese Spring Rolls.."
)

// Dimsum is the Chinese appetizer.
type Dimsum struct {
	// Out receives the preparation line. Nil means standard output.
	Out menu.LineWriter
}

// Prepare writes the preparation line for Dimsum.
func (d Dimsum) Prepare() { menu.WriterOrStdout(d.Out).WriteLine(DimsumLine) }

// Name returns "Dimsum".
func (Dimsum) Name() string { return "Dimsum" }

// Cuisine returns menu.CuisineChinese.
func (Dimsum) Cuisine() menu.Cuisine { return menu.CuisineChinese }

// Course returns menu.CourseAppetizer.
func (Dimsum) Course() menu.Course { return menu.CourseAppetizer }

// Noodles is the Chinese main course.
type Noodles struct {
	// Out receives the preparation line. Nil means standard output.
	Out menu.LineWriter
}

// Prepare writes the preparation line for Noodles.
func (d Noodles) Prepare() { menu.WriterOrStdout(d.Out).WriteLine(NoodlesLine) }

// Name returns "Noodles".
func (Noodles) Name() string { return "Noodles" }

// Cuisine returns menu.CuisineChinese.
func (Noodles) Cuisine() menu.Cuisine { return menu.CuisineChinese }

// Course returns menu.CourseMainCourse.
func (Noodles) Course() menu.Course { return menu.CourseMainCourse }

// SpringRoll is the Chinese dessert.
type SpringRoll struct {
	// Out receives the preparation line. Nil means standard output.
	Out menu.LineWriter
}

// Prepare writes the preparation line for SpringRoll.
func (d SpringRoll) Prepare() { menu.WriterOrStdout(d.Out).WriteLine(SpringRollLine) }

// Name returns "SpringRoll".
func (SpringRoll) Name() string { return "SpringRoll" }

// Cuisine returns menu.CuisineChinese.
func (SpringRoll) Cuisine() menu.Cuisine { return menu.CuisineChinese }

// Course returns menu.CourseDessert.
func (SpringRoll) Course() menu.Course { return menu.CourseDessert }
