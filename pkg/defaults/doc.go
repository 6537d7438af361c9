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

// Package defaults provides centralized configuration constants for InfraWatch.
//
// This package defines timeout values, result caps, and worker pool sizes used
// across the codebase. Centralizing these values ensures consistency and makes
// tuning easier.
//
// # Categories
//
//   - Engine command timeouts: For invocations of the container engine CLI
//   - Collection limits: Caps applied to the assembled snapshot
//   - Server timeouts: For HTTP server configuration
//   - Kubernetes timeouts: For ConfigMap output
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/infrawatch/infrawatch/pkg/defaults"
//
//	res := runner.Run(ctx, args, defaults.EngineListTimeout)
//
// # Timeout Guidelines
//
//   - List commands: 5s, they are cheap and bounded by engine size
//   - Inspect commands: 10s, one per image and run through a bounded pool
//   - Container actions: stop/restart grace period plus 5s
//   - Server shutdown: 30s for graceful shutdown
package defaults
