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

// Package serializer renders InfraWatch documents as JSON, YAML or a flat
// FIELD/VALUE table and delivers them to stdout, a file, a Kubernetes
// ConfigMap or an HTTP response.
//
// Destinations are chosen from a single output string:
//
//	""                  stdout
//	"snapshot.yaml"     file (format inferred by FormatFromPath when unset)
//	"cm://ns/name"      ConfigMap applied with server-side apply
//
// Usage:
//
//	s, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, output)
//	if err != nil {
//		return err
//	}
//	defer serializer.Close(s)
//	if err := s.Serialize(ctx, snap); err != nil {
//		return err
//	}
//
// Table output flattens nested values into dotted keys named after the json
// struct tags, so the table and the JSON document use the same vocabulary:
//
//	containers.[0].state    running
//	engine.n_cpu            8
//
// Handlers use RespondJSON, which encodes into a buffer before writing the
// status line so an encoding failure never produces a partial body.
package serializer
