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

package kitchen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/bistro/pkg/errors"
	"github.com/NVIDIA/bistro/pkg/kitchen"
	"github.com/NVIDIA/bistro/pkg/menu"
)

type fakeDish struct {
	name    string
	cuisine menu.Cuisine
	course  menu.Course
}

func (d fakeDish) Prepare()              {}
func (d fakeDish) Name() string          { return d.name }
func (d fakeDish) Cuisine() menu.Cuisine { return d.cuisine }
func (d fakeDish) Course() menu.Course   { return d.course }

type anonymousDish struct{}

func (anonymousDish) Prepare() {}

type fakeFactory struct {
	appetizer  menu.Appetizer
	mainCourse menu.MainCourse
	dessert    menu.Dessert
}

func (f *fakeFactory) CreateAppetizer() menu.Appetizer   { return f.appetizer }
func (f *fakeFactory) CreateMainCourse() menu.MainCourse { return f.mainCourse }
func (f *fakeFactory) CreateDessert() menu.Dessert       { return f.dessert }

func thaiFactory() *fakeFactory {
	return &fakeFactory{
		appetizer:  fakeDish{"Satay", "thai", menu.CourseAppetizer},
		mainCourse: fakeDish{"Pad Thai", "thai", menu.CourseMainCourse},
		dessert:    fakeDish{"Mango Sticky Rice", "thai", menu.CourseDessert},
	}
}

func TestDescribe(t *testing.T) {
	m, err := kitchen.Describe(thaiFactory())
	require.NoError(t, err)

	assert.Equal(t, &kitchen.Menu{
		Cuisine:    "thai",
		Title:      "Thai",
		Appetizer:  "Satay",
		MainCourse: "Pad Thai",
		Dessert:    "Mango Sticky Rice",
	}, m)
}

func TestDescribe_Errors(t *testing.T) {
	tests := []struct {
		name     string
		factory  kitchen.Factory
		wantCode errors.ErrorCode
		wantMsg  string
	}{
		{
			name:     "nil factory",
			factory:  nil,
			wantCode: errors.ErrCodeInvalidRequest,
			wantMsg:  "nil",
		},
		{
			name: "mixed cuisines",
			factory: func() kitchen.Factory {
				f := thaiFactory()
				f.dessert = fakeDish{"Tiramisu", menu.CuisineItalian, menu.CourseDessert}
				return f
			}(),
			wantCode: errors.ErrCodeInternal,
			wantMsg:  "mixed cuisines",
		},
		{
			name: "dish without description",
			factory: func() kitchen.Factory {
				f := thaiFactory()
				f.mainCourse = anonymousDish{}
				return f
			}(),
			wantCode: errors.ErrCodeInternal,
			wantMsg:  "does not describe itself",
		},
		{
			name: "dish in the wrong course",
			factory: func() kitchen.Factory {
				f := thaiFactory()
				f.appetizer = fakeDish{"Mango Sticky Rice", "thai", menu.CourseDessert}
				return f
			}(),
			wantCode: errors.ErrCodeInternal,
			wantMsg:  "reports course dessert",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := kitchen.Describe(tt.factory)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.HasCode(err, tt.wantCode), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
