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

// Package collector assembles an engine snapshot from container engine CLI output.
//
// # Overview
//
// A Collector issues the engine commands in a fixed order and normalizes
// each result into the canonical entities of package docker:
//
//  1. `docker info`: the only fatal step. A failure or a payload that is
//     not a JSON object aborts the collection with COLLECTION_FAILED.
//  2. `docker ps -a`: records that are not containers are logged and skipped.
//  3. `docker images`, then `docker image inspect` per image through a
//     bounded worker pool. A failed inspect only blanks the enrichment of
//     that image; the list order is preserved.
//  4. `docker network ls` and `docker volume ls`: a failure yields an
//     empty sequence for that category.
//
// Every degraded step emits a structured warning and increments
// infrawatch_collect_degraded_total. Callers cannot otherwise tell an empty
// category from a failed one.
//
// # Usage
//
//	c := collector.New(
//	    collector.WithBinary("podman"),
//	    collector.WithWorkers(8),
//	)
//	snap, err := c.Collect(ctx)
//	if err != nil {
//	    return err // *errors.StructuredError with code COLLECTION_FAILED
//	}
//
// Snapshots are built fresh for every call and carry no wall-clock fields,
// so two collections of an unchanged engine are equal.
//
// # Testing
//
// Inject a scripted command.Runner with WithRunner; command.RunnerFunc
// adapts a plain function.
package collector
