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

package api

import (
	"context"
	"log/slog"
	"net/http"

	// Register built-in cuisines.
	_ "github.com/NVIDIA/bistro/pkg/cuisine"
	"github.com/NVIDIA/bistro/pkg/errors"
	"github.com/NVIDIA/bistro/pkg/logging"
	"github.com/NVIDIA/bistro/pkg/registry"
	"github.com/NVIDIA/bistro/pkg/server"
)

const (
	name           = "bistrod"
	versionDefault = "dev"
)

// Set at link time, e.g. -X github.com/NVIDIA/bistro/pkg/api.version=v0.3.0.
var (
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve runs bistrod over the globally registered kitchens until the
// process receives SIGINT or SIGTERM.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)

	h := NewHandler(registry.NewFromGlobal(), version)
	slog.Info("starting", "version", version, "commit", commit, "date", date,
		"cuisines", h.reg.List())

	err := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
		server.WithReadinessCheck("kitchens", h.checkKitchens),
	).Run(context.Background())
	if err != nil {
		slog.Error("server exited with error", "error", err)
	}
	return err
}

// Handler serves orders and menus from a kitchen registry.
type Handler struct {
	reg     *registry.Registry
	version string
}

// NewHandler creates a Handler over reg. version is recorded in the
// metadata of every document it returns.
func NewHandler(reg *registry.Registry, version string) *Handler {
	return &Handler{reg: reg, version: version}
}

// Routes returns the API routes keyed by path.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/cuisines": h.HandleCuisines,
		"/v1/orders":   h.HandleOrders,
	}
}

// checkKitchens fails while the registry has no cuisine to serve.
func (h *Handler) checkKitchens() error {
	if h.reg == nil || h.reg.IsEmpty() {
		return errors.New(errors.ErrCodeUnavailable, "no kitchens registered")
	}
	return nil
}
