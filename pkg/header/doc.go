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

// Package header provides the envelope fields shared by every document
// InfraWatch emits: engine snapshots, health reports and action results.
//
// A Header follows the Kubernetes resource convention of kind, apiVersion and
// a flat string metadata map:
//
//	h := header.New(
//	    header.WithKind(header.KindSnapshot),
//	    header.WithAPIVersion(header.APIVersion),
//	)
//	h.Stamp(time.Now(), "v0.3.0")
//
// which serializes as
//
//	kind: Snapshot
//	apiVersion: infrawatch.dev/v1
//	metadata:
//	  timestamp: "2026-01-02T15:04:05Z"
//	  version: v0.3.0
//
// Structs embed Header inline so the envelope fields sit beside the payload.
// The serializer package reads kind and metadata through GetKind and
// GetMetadata when it labels ConfigMap output.
package header
