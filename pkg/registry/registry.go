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

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/NVIDIA/bistro/pkg/errors"
	"github.com/NVIDIA/bistro/pkg/kitchen"
	"github.com/NVIDIA/bistro/pkg/menu"
)

// Global table of kitchen constructors, filled from init() functions.
var (
	globalConstructors = make(map[menu.Cuisine]kitchen.Constructor)
	globalMu           sync.RWMutex
)

// Register registers a kitchen constructor globally.
// Returns an error if the cuisine is already registered.
func Register(cuisine menu.Cuisine, ctor kitchen.Constructor) error {
	if err := validate(cuisine, ctor); err != nil {
		return err
	}

	globalMu.Lock()
	defer globalMu.Unlock()

	if _, exists := globalConstructors[cuisine]; exists {
		return alreadyRegistered(cuisine)
	}

	globalConstructors[cuisine] = ctor
	return nil
}

// MustRegister is a convenience function that panics on registration error.
func MustRegister(cuisine menu.Cuisine, ctor kitchen.Constructor) {
	if err := Register(cuisine, ctor); err != nil {
		panic(err)
	}
}

// GlobalCuisines returns all globally registered cuisines, sorted by name.
func GlobalCuisines() []menu.Cuisine {
	globalMu.RLock()
	defer globalMu.RUnlock()

	return sortedKeys(globalConstructors)
}

// NewFromGlobal creates a Registry populated with every globally
// registered constructor.
func NewFromGlobal() *Registry {
	globalMu.RLock()
	defer globalMu.RUnlock()

	reg := New()
	for c, ctor := range globalConstructors {
		reg.constructors[c] = ctor
	}
	return reg
}

// Registry holds kitchen constructors keyed by cuisine.
type Registry struct {
	constructors map[menu.Cuisine]kitchen.Constructor
	mu           sync.RWMutex
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		constructors: make(map[menu.Cuisine]kitchen.Constructor),
	}
}

// Register adds a constructor for cuisine.
// Returns an error if the cuisine is already present.
func (r *Registry) Register(cuisine menu.Cuisine, ctor kitchen.Constructor) error {
	if err := validate(cuisine, ctor); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[cuisine]; exists {
		return alreadyRegistered(cuisine)
	}
	r.constructors[cuisine] = ctor
	return nil
}

// Get retrieves the constructor registered for cuisine.
func (r *Registry) Get(cuisine menu.Cuisine) (kitchen.Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.constructors[cuisine]
	return ctor, ok
}

// Has reports whether cuisine is registered.
func (r *Registry) Has(cuisine menu.Cuisine) bool {
	_, ok := r.Get(cuisine)
	return ok
}

// Build constructs the kitchen for cuisine with its dishes reporting to out.
// A nil out sends dish output to stdout.
func (r *Registry) Build(cuisine menu.Cuisine, out menu.LineWriter) (kitchen.Factory, error) {
	ctor, ok := r.Get(cuisine)
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("no kitchen registered for cuisine %q", cuisine),
			map[string]any{
				"cuisine":   cuisine.String(),
				"supported": r.List(),
			})
	}

	f := ctor(menu.WriterOrStdout(out))
	if f == nil {
		return nil, errors.NewWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("kitchen constructor for %q returned nil", cuisine),
			map[string]any{"cuisine": cuisine.String()})
	}
	return f, nil
}

// List returns all registered cuisines, sorted by name.
func (r *Registry) List() []menu.Cuisine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.constructors)
}

// Count returns the number of registered cuisines.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.constructors)
}

// IsEmpty returns true if no cuisines are registered.
func (r *Registry) IsEmpty() bool {
	return r.Count() == 0
}

// validate accepts only names that menu.ParseCuisine returns unchanged,
// since every order request is normalized that way before lookup.
func validate(cuisine menu.Cuisine, ctor kitchen.Constructor) error {
	parsed, err := menu.ParseCuisine(cuisine.String())
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid cuisine name", err)
	}
	if parsed != cuisine {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("cuisine %q is not in canonical form, register it as %q", cuisine, parsed),
			map[string]any{"cuisine": cuisine.String(), "canonical": parsed.String()})
	}
	if ctor == nil {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("nil kitchen constructor for cuisine %s", cuisine))
	}
	return nil
}

func alreadyRegistered(cuisine menu.Cuisine) error {
	return errors.NewWithContext(errors.ErrCodeAlreadyExists,
		fmt.Sprintf("cuisine %s already registered", cuisine),
		map[string]any{"cuisine": cuisine.String()})
}

func sortedKeys(m map[menu.Cuisine]kitchen.Constructor) []menu.Cuisine {
	out := make([]menu.Cuisine, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
