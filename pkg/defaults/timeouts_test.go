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

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"EngineListTimeout", EngineListTimeout, 1 * time.Second, 30 * time.Second},
		{"EngineInspectTimeout", EngineInspectTimeout, 1 * time.Second, 60 * time.Second},
		{"EngineActionTimeout", EngineActionTimeout, 1 * time.Second, 60 * time.Second},
		{"HealthCheckTimeout", HealthCheckTimeout, 1 * time.Second, 30 * time.Second},
		{"MetricsHandlerTimeout", MetricsHandlerTimeout, 10 * time.Second, 120 * time.Second},
		{"HealthHandlerTimeout", HealthHandlerTimeout, HealthCheckTimeout, 60 * time.Second},
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},
		{"ConfigMapWriteTimeout", ConfigMapWriteTimeout, 5 * time.Second, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestListTimeoutNotAboveInspect(t *testing.T) {
	if EngineListTimeout > EngineInspectTimeout {
		t.Errorf("EngineListTimeout (%v) should not exceed EngineInspectTimeout (%v)",
			EngineListTimeout, EngineInspectTimeout)
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	if ServerReadTimeout > ServerWriteTimeout {
		t.Errorf("ServerReadTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			ServerReadTimeout, ServerWriteTimeout)
	}
	if ServerWriteTimeout <= MetricsHandlerTimeout {
		t.Errorf("ServerWriteTimeout (%v) should exceed MetricsHandlerTimeout (%v)",
			ServerWriteTimeout, MetricsHandlerTimeout)
	}
	if ServerIdleTimeout < ServerWriteTimeout {
		t.Errorf("ServerIdleTimeout (%v) should be at least ServerWriteTimeout (%v)",
			ServerIdleTimeout, ServerWriteTimeout)
	}
}

func TestWorkerBounds(t *testing.T) {
	if EnrichmentWorkers < 1 || EnrichmentWorkers > MaxEnrichmentWorkers {
		t.Errorf("EnrichmentWorkers (%d) must be within [1, %d]", EnrichmentWorkers, MaxEnrichmentWorkers)
	}
}
