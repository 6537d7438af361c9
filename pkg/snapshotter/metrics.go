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

package snapshotter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "infrawatch_snapshot_duration_seconds",
			Help:    "Time taken to collect and serialize an engine snapshot",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	snapshotTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "infrawatch_snapshot_total",
			Help: "Total number of snapshot attempts",
		},
		[]string{"status"}, // success, collect_error, serialize_error
	)

	snapshotItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "infrawatch_snapshot_items",
			Help: "Number of entries per category in the last snapshot",
		},
		[]string{"category"},
	)
)
