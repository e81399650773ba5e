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

package menu

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Course identifies the role a dish plays in a meal.
type Course string

// Supported courses, in serving order.
const (
	CourseAppetizer  Course = "appetizer"
	CourseMainCourse Course = "main-course"
	CourseDessert    Course = "dessert"
)

// String returns the string representation of the course.
func (c Course) String() string {
	return string(c)
}

// Courses returns all courses in the order they are served.
func Courses() []Course {
	return []Course{
		CourseAppetizer,
		CourseMainCourse,
		CourseDessert,
	}
}

// Cuisine identifies a family of dishes that belong together.
type Cuisine string

// Built-in cuisines.
const (
	CuisineItalian Cuisine = "italian"
	CuisineChinese Cuisine = "chinese"
	CuisineMexican Cuisine = "mexican"
)

// BuiltinCuisines returns the cuisines shipped with bistro in the order
// the house serves them.
func BuiltinCuisines() []Cuisine {
	return []Cuisine{CuisineItalian, CuisineChinese, CuisineMexican}
}

// String returns the string representation of the cuisine.
func (c Cuisine) String() string {
	return string(c)
}

// Title returns the display name of the cuisine, e.g. "Italian".
func (c Cuisine) Title() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "-", " "))
}

// ParseCuisine normalizes s into a Cuisine.
// Names are case-insensitive and surrounding whitespace is ignored.
func ParseCuisine(s string) (Cuisine, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return "", fmt.Errorf("cuisine name is empty")
	}
	if strings.ContainsAny(name, " \t\n,") {
		return "", fmt.Errorf("invalid cuisine name %q", s)
	}
	return Cuisine(name), nil
}

// Appetizer is a dish served first.
type Appetizer interface {
	Prepare()
}

// MainCourse is the principal dish of a meal.
type MainCourse interface {
	Prepare()
}

// Dessert is a dish served last.
type Dessert interface {
	Prepare()
}

// Dish is implemented by dishes that can describe themselves.
type Dish interface {
	Name() string
	Cuisine() Cuisine
	Course() Course
}
