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

// Package health reports whether the container engine and its host are usable.
//
// A report combines three probes, each of which degrades independently:
//
//   - Engine: `docker version --format {{json .}}` through the command runner
//   - Unit: the systemd ActiveState of docker.service over D-Bus
//   - Host: CPU, memory and root filesystem usage plus host identity
//
// The overall status is "healthy" when the engine answers and "degraded"
// otherwise. Unit and host failures only blank their own section.
package health
