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

// Package docker defines the canonical entities of an engine snapshot.
//
// The types in this package are the output of the normalizers and the
// input of the serializers and the HTTP layer. Their JSON field names are
// the contract consumed by the monitoring dashboard, so they stay stable
// even where a Go name would read differently.
//
// # Entities
//
//   - EngineInfo: daemon descriptor from `docker info`
//   - Container: one entry of `docker ps -a`
//   - Image: one entry of `docker images`, optionally enriched by `docker image inspect`
//   - NetworkSummary and VolumeSummary: shallow list entries
//   - Snapshot: the aggregate root returned by a single collection
//
// Sequences on every entity are never nil so they serialize as empty
// arrays. Use the New* constructors to get values with every passthrough
// field initialized.
package docker
