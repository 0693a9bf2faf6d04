// Copyright (c) 2025, Terrapin Authors.  All rights reserved.
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

package attestor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	windowsHashed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "terrapin_windows_hashed_total",
			Help: "Total number of accumulation windows hashed",
		},
	)

	generateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "terrapin_generate_total",
			Help: "Total number of attestation generation passes",
		},
		[]string{"mode", "status"}, // sequential or parallel; success or error
	)

	generateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "terrapin_generate_duration_seconds",
			Help:    "Time taken to generate a full attestation sequence",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		},
		[]string{"mode"},
	)
)
