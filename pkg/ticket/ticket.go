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
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/bistro/pkg/defaults"
	"github.com/NVIDIA/bistro/pkg/errors"
	"github.com/NVIDIA/bistro/pkg/header"
	"github.com/NVIDIA/bistro/pkg/menu"
	"github.com/NVIDIA/bistro/pkg/order"
	"github.com/NVIDIA/bistro/pkg/registry"
)

// Ticket records one prepared order.
type Ticket struct {
	header.Header `json:",inline" yaml:",inline"`

	// ID uniquely identifies the order.
	ID uuid.UUID `json:"id" yaml:"id"`

	// Cuisine is the cuisine the order was served from.
	Cuisine menu.Cuisine `json:"cuisine" yaml:"cuisine"`

	// Title is the display name of the cuisine.
	Title string `json:"title" yaml:"title"`

	// Lines holds the preparation lines in serving order.
	Lines []string `json:"lines" yaml:"lines"`
}

// List is a batch of tickets.
type List struct {
	header.Header `json:",inline" yaml:",inline"`

	Tickets []*Ticket `json:"tickets" yaml:"tickets"`
}

// Option is a functional option for Place and PlaceAll.
type Option func(*options)

type options struct {
	version string
	logger  *slog.Logger
}

// WithVersion records the tool version in ticket metadata.
func WithVersion(v string) Option {
	return func(o *options) {
		o.version = v
	}
}

// WithLogger sets the logger handed to the order service.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Place orders one meal of cuisine from reg and returns its ticket.
func Place(ctx context.Context, reg *registry.Registry, cuisine menu.Cuisine, opts ...Option) (*Ticket, error) {
	return place(ctx, reg, cuisine, newOptions(opts))
}

func place(ctx context.Context, reg *registry.Registry, cuisine menu.Cuisine, o *options) (*Ticket, error) {
	t, err := prepare(ctx, reg, cuisine, o)
	if err != nil {
		placeTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	placeTotal.WithLabelValues("success").Inc()
	return t, nil
}

func prepare(ctx context.Context, reg *registry.Registry, cuisine menu.Cuisine, o *options) (*Ticket, error) {
	if reg == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "registry is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeTimeout, "order canceled", err,
			map[string]any{"cuisine": cuisine.String()})
	}

	rec := NewRecorder()
	f, err := reg.Build(cuisine, rec)
	if err != nil {
		return nil, err
	}

	svc, err := order.New(f, order.WithLogger(o.logger))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to create order service", err)
	}

	id := uuid.New()
	o.logger.Debug("placing order", "cuisine", cuisine, "id", id)

	start := time.Now()
	svc.PlaceOrder()
	placeDuration.WithLabelValues(cuisine.String()).Observe(time.Since(start).Seconds())

	t := &Ticket{
		ID:      id,
		Cuisine: cuisine,
		Title:   cuisine.Title(),
		Lines:   rec.Lines(),
	}
	t.Init(header.KindTicket, o.version)
	return t, nil
}

// PlaceAll orders one meal per entry in cuisines, concurrently, and
// returns the tickets in request order. The first failure cancels the
// orders that have not started yet.
func PlaceAll(ctx context.Context, reg *registry.Registry, cuisines []menu.Cuisine, opts ...Option) (*List, error) {
	if len(cuisines) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "at least one cuisine is required")
	}
	if len(cuisines) > defaults.MaxBatchCuisines {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("too many cuisines in one batch: %d", len(cuisines)),
			map[string]any{"max": defaults.MaxBatchCuisines})
	}

	batchSize.Observe(float64(len(cuisines)))

	o := newOptions(opts)
	tickets := make([]*Ticket, len(cuisines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaults.MaxConcurrentOrders)

	for i, c := range cuisines {
		g.Go(func() error {
			t, err := place(gctx, reg, c, o)
			if err != nil {
				return fmt.Errorf("order %d (%s): %w", i+1, c, err)
			}
			tickets[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	l := &List{Tickets: tickets}
	l.Init(header.KindTicketList, o.version)
	return l, nil
}

// WriteText writes the order slip for t.
func (t *Ticket) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "=== %s Restaurant Order ===\n", t.Title); err != nil {
		return err
	}
	for _, line := range t.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes the order slip of every ticket, separated by a blank line.
func (l *List) WriteText(w io.Writer) error {
	for i, t := range l.Tickets {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := t.WriteText(w); err != nil {
			return err
		}
	}
	return nil
}
