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

package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/bistro/pkg/defaults"
	"github.com/NVIDIA/bistro/pkg/menu"
	"github.com/NVIDIA/bistro/pkg/registry"
	"github.com/NVIDIA/bistro/pkg/ticket"
)

func orderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "order",
		EnableShellCompletion: true,
		Usage:                 "Place an order with one or more cuisine kitchens",
		Description: `Place one order per requested cuisine. Each kitchen prepares its
appetizer, main course and dessert, in that order, and the prepared lines are
returned as a ticket.

Cuisines come from --cuisine (repeatable or comma-separated) and from the
cuisines list of an order file. With neither, every registered cuisine is
ordered once: Italian, Chinese and Mexican first, then any others by name.

Examples:
  bistro order --cuisine italian
  bistro order --cuisine italian,chinese --format yaml
  bistro order --file order.yaml --output tickets.json --format json`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "cuisine",
				Aliases: []string{"c"},
				Usage:   "Cuisine to order from (can be repeated)",
				Sources: cli.EnvVars("BISTRO_CUISINE"),
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to an order file (json or yaml) listing cuisines",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			reg := registry.NewFromGlobal()

			cuisines, err := cuisinesFromCmd(cmd, reg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.OrderBatchTimeout)
			defer cancel()

			list, err := ticket.PlaceAll(ctx, reg, cuisines, ticket.WithVersion(version))
			if err != nil {
				return fmt.Errorf("failed to place order: %w", err)
			}

			ser := newWriter(cmd, outFormat)
			defer closeWriter(ser)

			if len(list.Tickets) == 1 {
				return ser.Serialize(ctx, list.Tickets[0])
			}
			return ser.Serialize(ctx, list)
		},
	}
}

func cuisinesFromCmd(cmd *cli.Command, reg *registry.Registry) ([]menu.Cuisine, error) {
	names := cmd.StringSlice("cuisine")

	if path := cmd.String("file"); path != "" {
		req, err := ticket.ReadRequestFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load order from %q: %w", path, err)
		}
		names = append(names, req.Cuisines...)
	}

	if len(names) == 0 {
		return defaultCuisines(reg), nil
	}
	return ticket.ParseCuisines(names...)
}

// defaultCuisines lists every cuisine in reg, built-ins in serving order
// followed by the rest sorted by name.
func defaultCuisines(reg *registry.Registry) []menu.Cuisine {
	builtins := menu.BuiltinCuisines()
	out := make([]menu.Cuisine, 0, reg.Count())
	for _, c := range builtins {
		if reg.Has(c) {
			out = append(out, c)
		}
	}
	for _, c := range reg.List() {
		if !slices.Contains(builtins, c) {
			out = append(out, c)
		}
	}
	return out
}
