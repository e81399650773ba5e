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
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NVIDIA/bistro/pkg/defaults"
	"github.com/NVIDIA/bistro/pkg/errors"
	"github.com/NVIDIA/bistro/pkg/menu"
	"github.com/NVIDIA/bistro/pkg/serializer"
	"github.com/NVIDIA/bistro/pkg/server"
	"github.com/NVIDIA/bistro/pkg/ticket"
)

const (
	// menuCacheTTL bounds how long clients may cache the cuisine list, in seconds.
	menuCacheTTL = 300

	maxOrderBodyBytes = 1 << 20
)

var ordersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bistro_orders_total",
		Help: "Total number of orders placed, by cuisine",
	},
	[]string{"cuisine"},
)

// HandleCuisines handles GET /v1/cuisines.
func (h *Handler) HandleCuisines(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET"},
			})
		return
	}

	ml, err := ticket.Menus(h.reg, h.version)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to describe cuisines", nil)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", menuCacheTTL))
	serializer.RespondJSON(w, http.StatusOK, ml)
}

// HandleOrders handles GET and POST /v1/orders.
func (h *Handler) HandleOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.OrderHandlerTimeout)
	defer cancel()

	var cuisines []menu.Cuisine
	var err error

	switch r.Method {
	case http.MethodGet:
		cuisines, err = ticket.ParseCuisines(r.URL.Query()["cuisine"]...)
	case http.MethodPost:
		cuisines, err = cuisinesFromPost(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET", "POST"},
			})
		return
	}

	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid order", nil)
		return
	}

	slog.Debug("placing orders", "cuisines", cuisines, "requestID", server.RequestID(r))

	if len(cuisines) == 1 {
		t, err := ticket.Place(ctx, h.reg, cuisines[0], ticket.WithVersion(h.version))
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Failed to place order", nil)
			return
		}
		ordersTotal.WithLabelValues(t.Cuisine.String()).Inc()
		serializer.RespondJSON(w, http.StatusOK, t)
		return
	}

	list, err := ticket.PlaceAll(ctx, h.reg, cuisines, ticket.WithVersion(h.version))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to place orders", nil)
		return
	}
	for _, t := range list.Tickets {
		ordersTotal.WithLabelValues(t.Cuisine.String()).Inc()
	}
	serializer.RespondJSON(w, http.StatusOK, list)
}

// cuisinesFromPost reads cuisines from the query string, or from the
// body when the query names none.
func cuisinesFromPost(w http.ResponseWriter, r *http.Request) ([]menu.Cuisine, error) {
	if names := r.URL.Query()["cuisine"]; len(names) > 0 {
		return ticket.ParseCuisines(names...)
	}
	if r.Body == nil || r.ContentLength == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "at least one cuisine is required")
	}
	defer r.Body.Close()

	format := serializer.FormatJSON
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil {
		switch mt {
		case "application/x-yaml", "application/yaml", "text/yaml":
			format = serializer.FormatYAML
		}
	}

	req, err := ticket.ReadRequest(format, http.MaxBytesReader(w, r.Body, maxOrderBodyBytes))
	if err != nil {
		return nil, err
	}
	return ticket.ParseCuisines(req.Cuisines...)
}
