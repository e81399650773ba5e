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
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/bistro/pkg/menu"
	"github.com/NVIDIA/bistro/pkg/registry"
)

func TestPlaceMetrics(t *testing.T) {
	reg := registry.NewFromGlobal()
	success := testutil.ToFloat64(placeTotal.WithLabelValues("success"))
	failed := testutil.ToFloat64(placeTotal.WithLabelValues("error"))

	_, err := Place(context.Background(), reg, menu.CuisineMexican)
	require.NoError(t, err)
	_, err = Place(context.Background(), reg, "french")
	require.Error(t, err)

	assert.Equal(t, success+1, testutil.ToFloat64(placeTotal.WithLabelValues("success")))
	assert.Equal(t, failed+1, testutil.ToFloat64(placeTotal.WithLabelValues("error")))
	assert.Positive(t, testutil.CollectAndCount(placeDuration, "bistro_ticket_place_duration_seconds"))
}

func TestBatchSizeObserved(t *testing.T) {
	_, err := PlaceAll(context.Background(), registry.NewFromGlobal(),
		[]menu.Cuisine{menu.CuisineItalian, menu.CuisineChinese})
	require.NoError(t, err)

	assert.Equal(t, 1, testutil.CollectAndCount(batchSize, "bistro_ticket_batch_size"))
}
