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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/bistro/pkg/registry"
	"github.com/NVIDIA/bistro/pkg/ticket"
)

func cuisinesCmd() *cli.Command {
	return &cli.Command{
		Name:  "cuisines",
		Usage: "List registered cuisines and the dishes each kitchen serves",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			ml, err := ticket.Menus(registry.NewFromGlobal(), version)
			if err != nil {
				return fmt.Errorf("failed to describe cuisines: %w", err)
			}

			ser := newWriter(cmd, outFormat)
			defer closeWriter(ser)

			return ser.Serialize(ctx, ml)
		},
	}
}
