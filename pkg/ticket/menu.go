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

package ticket

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/NVIDIA/bistro/pkg/header"
	"github.com/NVIDIA/bistro/pkg/kitchen"
	"github.com/NVIDIA/bistro/pkg/menu"
	"github.com/NVIDIA/bistro/pkg/registry"
)

// MenuList describes every cuisine a registry can serve.
type MenuList struct {
	header.Header `json:",inline" yaml:",inline"`

	Menus []*kitchen.Menu `json:"menus" yaml:"menus"`
}

// Menus describes every cuisine in reg, sorted by name. Building a menu
// creates dishes but never prepares them.
func Menus(reg *registry.Registry, version string) (*MenuList, error) {
	if reg == nil {
		return nil, fmt.Errorf("registry is nil")
	}

	ml := &MenuList{Menus: make([]*kitchen.Menu, 0, reg.Count())}
	for _, c := range reg.List() {
		f, err := reg.Build(c, menu.Discard)
		if err != nil {
			return nil, err
		}
		m, err := kitchen.Describe(f)
		if err != nil {
			return nil, fmt.Errorf("cuisine %s: %w", c, err)
		}
		ml.Menus = append(ml.Menus, m)
	}

	ml.Init(header.KindMenuList, version)
	return ml, nil
}

// WriteText writes one row per cuisine.
func (ml *MenuList) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CUISINE\tAPPETIZER\tMAIN COURSE\tDESSERT")
	for _, m := range ml.Menus {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Cuisine, m.Appetizer, m.MainCourse, m.Dessert)
	}
	return tw.Flush()
}
