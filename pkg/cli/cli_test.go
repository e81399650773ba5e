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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/bistro/pkg/cuisine/chinese"
	"github.com/NVIDIA/bistro/pkg/cuisine/italian"
	"github.com/NVIDIA/bistro/pkg/errors"
	"github.com/NVIDIA/bistro/pkg/header"
	"github.com/NVIDIA/bistro/pkg/kitchen"
	"github.com/NVIDIA/bistro/pkg/menu"
	"github.com/NVIDIA/bistro/pkg/registry"
	"github.com/NVIDIA/bistro/pkg/ticket"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.Writer = &out
	cmd.ErrWriter = &bytes.Buffer{}
	err := cmd.Run(context.Background(), append([]string{name}, args...))
	return out.String(), err
}

func TestOrderCmd_Text(t *testing.T) {
	out, err := run(t, "order", "--cuisine", "italian")
	require.NoError(t, err)

	want := strings.Join([]string{
		"=== Italian Restaurant Order ===",
		italian.PastaLine,
		italian.PizzaLine,
		italian.TiramisuLine,
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestOrderCmd_Batch(t *testing.T) {
	out, err := run(t, "order", "-c", "italian,chinese")
	require.NoError(t, err)

	orders := strings.Split(strings.TrimSpace(out), "\n\n")
	require.Len(t, orders, 2)
	assert.True(t, strings.HasPrefix(orders[0], "=== Italian Restaurant Order ==="))
	assert.True(t, strings.HasPrefix(orders[1], "=== Chinese Restaurant Order ==="))
	assert.Contains(t, orders[1], chinese.DimsumLine)
}

func TestOrderCmd_AllCuisinesByDefault(t *testing.T) {
	out, err := run(t, "order", "--format", "json")
	require.NoError(t, err)

	var list ticket.List
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, header.KindTicketList, list.Kind)
	require.Len(t, list.Tickets, 3)
	assert.Equal(t, "italian", list.Tickets[0].Cuisine.String())
	assert.Equal(t, "chinese", list.Tickets[1].Cuisine.String())
	assert.Equal(t, "mexican", list.Tickets[2].Cuisine.String())
}

func TestOrderCmd_DefaultTextOrder(t *testing.T) {
	out, err := run(t, "order")
	require.NoError(t, err)

	italianAt := strings.Index(out, "=== Italian Restaurant Order ===")
	chineseAt := strings.Index(out, "=== Chinese Restaurant Order ===")
	mexicanAt := strings.Index(out, "=== Mexican Restaurant Order ===")
	require.NotEqual(t, -1, italianAt)
	assert.Less(t, italianAt, chineseAt)
	assert.Less(t, chineseAt, mexicanAt)
}

func TestDefaultCuisines(t *testing.T) {
	reg := registry.New()
	for _, c := range []menu.Cuisine{"thai", menu.CuisineMexican, "greek", menu.CuisineItalian} {
		require.NoError(t, reg.Register(c, func(out menu.LineWriter) kitchen.Factory {
			return italian.New(out)
		}))
	}

	assert.Equal(t, []menu.Cuisine{
		menu.CuisineItalian, menu.CuisineMexican, "greek", "thai",
	}, defaultCuisines(reg))
}

func TestOrderCmd_EnvCuisine(t *testing.T) {
	t.Setenv("BISTRO_CUISINE", "mexican")

	out, err := run(t, "order", "--format", "json")
	require.NoError(t, err)

	var tk ticket.Ticket
	require.NoError(t, json.Unmarshal([]byte(out), &tk))
	assert.Equal(t, header.KindTicket, tk.Kind)
	assert.Equal(t, "mexican", tk.Cuisine.String())
	assert.Len(t, tk.Lines, 3)
}

func TestOrderCmd_File(t *testing.T) {
	dir := t.TempDir()
	orderPath := filepath.Join(dir, "order.yaml")
	outPath := filepath.Join(dir, "tickets.yaml")
	require.NoError(t, os.WriteFile(orderPath, []byte("cuisines:\n  - chinese\n  - mexican\n"), 0o600))

	out, err := run(t, "order", "--file", orderPath, "--format", "yaml", "--output", outPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: TicketList")
	assert.Contains(t, string(data), chinese.NoodlesLine)
}

func TestOrderCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"unknown cuisine", []string{"order", "--cuisine", "french"}, errors.ErrCodeNotFound},
		{"malformed cuisine", []string{"order", "--cuisine", "new mexican"}, errors.ErrCodeInvalidRequest},
		{"missing order file", []string{"order", "--file", "does-not-exist.yaml"}, errors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestOrderCmd_UnknownFormat(t *testing.T) {
	_, err := run(t, "order", "--cuisine", "italian", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestCuisinesCmd(t *testing.T) {
	out, err := run(t, "cuisines")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "MAIN COURSE")
	assert.True(t, strings.HasPrefix(lines[1], "chinese"))
	assert.Contains(t, lines[2], "Tiramisu")
}

func TestCuisinesCmd_JSON(t *testing.T) {
	out, err := run(t, "cuisines", "--format", "json")
	require.NoError(t, err)

	var ml ticket.MenuList
	require.NoError(t, json.Unmarshal([]byte(out), &ml))
	assert.Equal(t, header.KindMenuList, ml.Kind)
	assert.Len(t, ml.Menus, 3)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New(errors.ErrCodeNotFound, "nope")))
	assert.Equal(t, 2, exitCode(context.Canceled))
	assert.Equal(t, 2, exitCode(errors.Wrap(errors.ErrCodeTimeout, "order canceled", context.DeadlineExceeded)))
}
