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

package health

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/infrawatch/infrawatch/pkg/command"
	"github.com/infrawatch/infrawatch/pkg/errors"
)

func staticRunner(out string, fail string) command.Runner {
	return command.RunnerFunc(func(_ context.Context, args []string, _ time.Duration) *command.Result {
		if fail != "" {
			return command.Failed(errors.New(errors.ErrCodeCommandFailed, fail))
		}
		return command.Decode([]byte(out))
	})
}

func fakeHost(_ context.Context) (SystemUsage, error) {
	return SystemUsage{Hostname: "node-1", CPUPercent: 12.5, MemoryPercent: 40, DiskPercent: 70}, nil
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		runner     command.Runner
		unitState  UnitStateFunc
		wantStatus string
		wantEngine string
		wantUnit   string
	}{
		{
			name:       "engine running",
			runner:     staticRunner(`{"Client":{"Version":"27.3.1"},"Server":{"Version":"27.3.1","ApiVersion":"1.47"}}`, ""),
			unitState:  func(context.Context, string) (string, error) { return "active", nil },
			wantStatus: StatusHealthy,
			wantEngine: StatusRunning,
			wantUnit:   "active",
		},
		{
			name:       "daemon down",
			runner:     staticRunner("", "Cannot connect to the Docker daemon"),
			unitState:  func(context.Context, string) (string, error) { return "inactive", nil },
			wantStatus: StatusDegraded,
			wantEngine: StatusNotAvailable,
			wantUnit:   "inactive",
		},
		{
			name:       "client only",
			runner:     staticRunner(`{"Client":{"Version":"27.3.1"}}`, ""),
			unitState:  func(context.Context, string) (string, error) { return "", fmt.Errorf("no bus") },
			wantStatus: StatusDegraded,
			wantEngine: StatusNotAvailable,
			wantUnit:   StateUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecker(WithRunner(tt.runner), WithUnitState(tt.unitState), WithHost(fakeHost))

			r := c.Check(context.Background())

			assert.Equal(t, tt.wantStatus, r.Status)
			assert.Equal(t, tt.wantEngine, r.Engine.Status)
			assert.Equal(t, tt.wantUnit, r.Unit.ActiveState)
			assert.Equal(t, DefaultUnit, r.Unit.Name)
			assert.Equal(t, "node-1", r.System.Hostname)
			assert.False(t, r.Timestamp.IsZero())
		})
	}
}

func TestCheckEngineVersion(t *testing.T) {
	c := NewChecker(
		WithRunner(staticRunner(`{"Server":{"Version":"27.3.1","ApiVersion":"1.47"}}`, "")),
		WithUnitState(func(context.Context, string) (string, error) { return "active", nil }),
		WithHost(fakeHost),
	)

	r := c.Check(context.Background())

	assert.Equal(t, "27.3.1", r.Engine.Version)
	assert.Equal(t, "1.47", r.Engine.APIVersion)
	assert.Empty(t, r.Engine.Error)
}

func TestCheckHostFailure(t *testing.T) {
	c := NewChecker(
		WithRunner(staticRunner(`{"Server":{"Version":"27.3.1"}}`, "")),
		WithUnitState(func(context.Context, string) (string, error) { return "active", nil }),
		WithHost(func(context.Context) (SystemUsage, error) { return SystemUsage{}, fmt.Errorf("no procfs") }),
		WithUnit("podman.service"),
	)

	r := c.Check(context.Background())

	assert.Equal(t, StatusHealthy, r.Status)
	assert.Equal(t, "podman.service", r.Unit.Name)
	assert.Zero(t, r.System)
}
