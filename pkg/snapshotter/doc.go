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

// Package snapshotter turns one engine collection into a versioned document
// and hands it to a serializer.
//
// The document is a docker.Snapshot with a header.Header envelope inlined
// beside it:
//
//	kind: Snapshot
//	apiVersion: infrawatch.dev/v1
//	metadata:
//	  host: node-1
//	  timestamp: "2026-01-02T15:04:05Z"
//	  version: v0.3.0
//	engine: {...}
//	containers: [...]
//	images: [...]
//
// Usage:
//
//	s := &snapshotter.EngineSnapshotter{
//	    Version:    version,
//	    Collector:  collector.New(collector.WithBinary(cfg.Engine.Binary)),
//	    Serializer: out,
//	}
//	if err := s.Measure(ctx); err != nil {
//	    return err
//	}
//
// A fatal collection error is returned without serializing anything. Partial
// snapshots, where optional categories degraded to empty, are serialized as
// usual.
package snapshotter
