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
	"log/slog"
	"time"

	"github.com/infrawatch/infrawatch/pkg/command"
	"github.com/infrawatch/infrawatch/pkg/defaults"
	"github.com/infrawatch/infrawatch/pkg/normalizer"
)

// Overall and engine statuses.
const (
	StatusHealthy      = "healthy"
	StatusDegraded     = "degraded"
	StatusRunning      = "running"
	StatusNotAvailable = "not_available"
	StateUnknown       = "unknown"
)

// DefaultUnit is the systemd unit of the engine daemon.
const DefaultUnit = "docker.service"

// Report is the result of one health check.
type Report struct {
	Status    string       `json:"status" yaml:"status"`
	Timestamp time.Time    `json:"timestamp" yaml:"timestamp"`
	Engine    EngineStatus `json:"engine" yaml:"engine"`
	Unit      UnitStatus   `json:"unit" yaml:"unit"`
	System    SystemUsage  `json:"system" yaml:"system"`
}

// EngineStatus describes the reachability of the engine CLI and daemon.
type EngineStatus struct {
	Status     string `json:"status" yaml:"status"`
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
	APIVersion string `json:"api_version,omitempty" yaml:"api_version,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// UnitStatus is the systemd state of the engine unit.
type UnitStatus struct {
	Name        string `json:"name" yaml:"name"`
	ActiveState string `json:"active_state" yaml:"active_state"`
}

// SystemUsage describes the host.
type SystemUsage struct {
	Hostname      string  `json:"hostname" yaml:"hostname"`
	Platform      string  `json:"platform" yaml:"platform"`
	KernelVersion string  `json:"kernel_version" yaml:"kernel_version"`
	CPUPercent    float64 `json:"cpu_percent" yaml:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent" yaml:"memory_percent"`
	DiskPercent   float64 `json:"disk_percent" yaml:"disk_percent"`
}

// UnitStateFunc returns the ActiveState of a systemd unit.
type UnitStateFunc func(ctx context.Context, unit string) (string, error)

// HostFunc samples host usage.
type HostFunc func(ctx context.Context) (SystemUsage, error)

// Checker produces health reports.
type Checker struct {
	Runner    command.Runner
	Binary    string
	Unit      string
	Timeout   time.Duration
	UnitState UnitStateFunc
	Host      HostFunc
}

// Option configures a Checker.
type Option func(*Checker)

// WithRunner sets the command runner used for the engine probe.
func WithRunner(r command.Runner) Option {
	return func(c *Checker) {
		if r != nil {
			c.Runner = r
		}
	}
}

// WithBinary sets the engine CLI binary.
func WithBinary(binary string) Option {
	return func(c *Checker) {
		if binary != "" {
			c.Binary = binary
		}
	}
}

// WithUnit sets the systemd unit to inspect.
func WithUnit(unit string) Option {
	return func(c *Checker) {
		if unit != "" {
			c.Unit = unit
		}
	}
}

// WithUnitState replaces the systemd probe.
func WithUnitState(f UnitStateFunc) Option {
	return func(c *Checker) {
		if f != nil {
			c.UnitState = f
		}
	}
}

// WithHost replaces the host usage probe.
func WithHost(f HostFunc) Option {
	return func(c *Checker) {
		if f != nil {
			c.Host = f
		}
	}
}

// NewChecker returns a Checker backed by the real engine CLI, systemd and host.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		Runner:    command.NewExec(),
		Binary:    defaults.EngineBinary,
		Unit:      DefaultUnit,
		Timeout:   defaults.HealthCheckTimeout,
		UnitState: SystemdUnitState,
		Host:      HostUsage,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check runs all probes and returns the report. It never fails.
func (c *Checker) Check(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	r := Report{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC(),
		Engine:    c.engine(ctx),
		Unit:      UnitStatus{Name: c.Unit, ActiveState: StateUnknown},
	}
	if r.Engine.Status != StatusRunning {
		r.Status = StatusDegraded
	}

	if state, err := c.UnitState(ctx, c.Unit); err != nil {
		slog.Debug("unit state unavailable", slog.String("unit", c.Unit), slog.String("error", err.Error()))
	} else if state != "" {
		r.Unit.ActiveState = state
	}

	if usage, err := c.Host(ctx); err != nil {
		slog.Warn("host usage unavailable", slog.String("error", err.Error()))
	} else {
		r.System = usage
	}

	return r
}

func (c *Checker) engine(ctx context.Context) EngineStatus {
	res := c.Runner.Run(ctx, []string{c.Binary, "version", "--format", "{{json .}}"}, c.Timeout)
	if !res.Succeeded {
		return EngineStatus{Status: StatusNotAvailable, Error: res.ErrorMessage()}
	}

	server := normalizer.Record(res.Object).Mapping("Server")
	if server == nil {
		return EngineStatus{Status: StatusNotAvailable, Error: "engine daemon did not report a server version"}
	}
	return EngineStatus{
		Status:     StatusRunning,
		Version:    server.String("Version"),
		APIVersion: server.String("ApiVersion"),
	}
}
