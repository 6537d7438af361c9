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

package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "infrawatch_collect_duration_seconds",
			Help:    "Time taken to collect a complete engine snapshot",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	collectTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "infrawatch_collect_total",
			Help: "Total number of snapshot collection attempts",
		},
		[]string{"status"}, // success or error
	)

	collectDegraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "infrawatch_collect_degraded_total",
			Help: "Total number of optional categories that degraded to empty",
		},
		[]string{"category"}, // containers, images, networks, volumes
	)

	imageEnrichmentFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "infrawatch_image_enrichment_failures_total",
			Help: "Total number of failed per-image inspect calls",
		},
	)
)
