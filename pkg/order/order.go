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

package order

import (
	"log/slog"
	"reflect"

	"github.com/NVIDIA/bistro/pkg/errors"
	"github.com/NVIDIA/bistro/pkg/kitchen"
	"github.com/NVIDIA/bistro/pkg/menu"
)

// ErrNoFactory is returned by New when no kitchen is supplied.
var ErrNoFactory = errors.New(errors.ErrCodeInvalidRequest, "order service requires a kitchen factory")

// Service places orders using a single kitchen.Factory.
type Service struct {
	factory kitchen.Factory
	logger  *slog.Logger
}

// Option is a functional option for configuring Service instances.
type Option func(*Service)

// WithLogger sets the logger used for per-course debug records.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service bound to f.
// Returns ErrNoFactory when f is nil, including a nil pointer held in the
// interface.
func New(f kitchen.Factory, opts ...Option) (*Service, error) {
	if isNil(f) {
		return nil, ErrNoFactory
	}

	s := &Service{
		factory: f,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// PlaceOrder creates and prepares an appetizer, a main course and a
// dessert, in that order.
func (s *Service) PlaceOrder() {
	s.logger.Debug("preparing", "course", menu.CourseAppetizer)
	s.factory.CreateAppetizer().Prepare()

	s.logger.Debug("preparing", "course", menu.CourseMainCourse)
	s.factory.CreateMainCourse().Prepare()

	s.logger.Debug("preparing", "course", menu.CourseDessert)
	s.factory.CreateDessert().Prepare()
}

func isNil(f kitchen.Factory) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
