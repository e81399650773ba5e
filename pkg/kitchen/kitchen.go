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

package kitchen

import (
	"fmt"

	"github.com/NVIDIA/bistro/pkg/errors"
	"github.com/NVIDIA/bistro/pkg/menu"
)

// Factory creates one dish for each course of a single cuisine.
type Factory interface {
	CreateAppetizer() menu.Appetizer
	CreateMainCourse() menu.MainCourse
	CreateDessert() menu.Dessert
}

// Constructor builds a Factory whose dishes report to out.
// Cuisine packages register a Constructor with the registry.
type Constructor func(out menu.LineWriter) Factory

// Menu lists the dish names a Factory serves.
type Menu struct {
	Cuisine    menu.Cuisine `json:"cuisine" yaml:"cuisine"`
	Title      string       `json:"title" yaml:"title"`
	Appetizer  string       `json:"appetizer" yaml:"appetizer"`
	MainCourse string       `json:"mainCourse" yaml:"mainCourse"`
	Dessert    string       `json:"dessert" yaml:"dessert"`
}

// Describe creates one dish per course from f, without preparing them, and
// returns their names. It fails when a dish does not implement menu.Dish,
// reports the wrong course, or when the dishes come from different cuisines.
func Describe(f Factory) (*Menu, error) {
	if f == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "kitchen factory is nil")
	}

	create := map[menu.Course]func() any{
		menu.CourseAppetizer:  func() any { return f.CreateAppetizer() },
		menu.CourseMainCourse: func() any { return f.CreateMainCourse() },
		menu.CourseDessert:    func() any { return f.CreateDessert() },
	}

	m := &Menu{}
	for _, course := range menu.Courses() {
		made := create[course]()
		dish, ok := made.(menu.Dish)
		if !ok {
			return nil, errors.NewWithContext(errors.ErrCodeInternal,
				fmt.Sprintf("%s %T does not describe itself", course, made),
				map[string]any{"course": course.String()})
		}
		if dish.Course() != course {
			return nil, errors.NewWithContext(errors.ErrCodeInternal,
				fmt.Sprintf("%s reports course %s, want %s", dish.Name(), dish.Course(), course),
				map[string]any{"course": course.String()})
		}

		if m.Cuisine == "" {
			m.Cuisine = dish.Cuisine()
		} else if dish.Cuisine() != m.Cuisine {
			return nil, errors.NewWithContext(errors.ErrCodeInternal,
				fmt.Sprintf("mixed cuisines: %s is %s, expected %s", dish.Name(), dish.Cuisine(), m.Cuisine),
				map[string]any{"course": course.String(), "cuisine": dish.Cuisine().String()})
		}

		switch course {
		case menu.CourseAppetizer:
			m.Appetizer = dish.Name()
		case menu.CourseMainCourse:
			m.MainCourse = dish.Name()
		case menu.CourseDessert:
			m.Dessert = dish.Name()
		}
	}

	m.Title = m.Cuisine.Title()
	return m, nil
}
