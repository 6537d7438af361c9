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

import "time"

// Engine command timeouts.
const (
	// EngineListTimeout is the timeout for info and list commands.
	EngineListTimeout = 5 * time.Second

	// EngineInspectTimeout is the timeout for a single per-image inspect command.
	EngineInspectTimeout = 10 * time.Second

	// EngineActionTimeout is the timeout for container start and removal commands.
	EngineActionTimeout = 10 * time.Second

	// EngineActionGrace is added to the stop/restart grace period to form the command timeout.
	EngineActionGrace = 5 * time.Second

	// ContainerStopGrace is the default number of seconds the engine waits before killing a container.
	ContainerStopGrace = 10

	// HealthCheckTimeout bounds a complete health report.
	HealthCheckTimeout = 5 * time.Second
)

// Collection limits.
const (
	// EngineBinary is the default container engine CLI.
	EngineBinary = "docker"

	// MaxImages caps the number of images in a snapshot.
	MaxImages = 20

	// MaxNetworks caps the number of networks in a snapshot.
	MaxNetworks = 10

	// MaxVolumes caps the number of volumes in a snapshot.
	MaxVolumes = 10

	// EnrichmentWorkers is the number of concurrent per-image inspect commands.
	EnrichmentWorkers = 4

	// MaxEnrichmentWorkers is the upper bound accepted from configuration.
	MaxEnrichmentWorkers = 8
)

// Handler timeouts for HTTP request processing.
const (
	// MetricsHandlerTimeout bounds a complete snapshot collection triggered over HTTP.
	MetricsHandlerTimeout = 60 * time.Second

	// ActionHandlerTimeout bounds a container action triggered over HTTP.
	ActionHandlerTimeout = 90 * time.Second

	// HealthHandlerTimeout bounds a health report triggered over HTTP.
	HealthHandlerTimeout = 15 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Longer than MetricsHandlerTimeout so collection errors can still be written.
	ServerWriteTimeout = 90 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// ConfigMap timeouts for Kubernetes ConfigMap operations.
const (
	// ConfigMapWriteTimeout is the timeout for writing to ConfigMaps.
	ConfigMapWriteTimeout = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLISnapshotTimeout is the default timeout for snapshot operations.
	CLISnapshotTimeout = 2 * time.Minute
)
