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

// Package api wires the engine collector, health checker and action
// controller into the HTTP server.
//
// # Endpoints
//
// Engine endpoints (rate limited, behind the server middleware):
//
//	GET    /v1/docker/metrics                          full engine snapshot
//	GET    /v1/health                                  engine, systemd unit and host health
//	POST   /v1/docker/containers/{id}/start
//	POST   /v1/docker/containers/{id}/stop?timeout=10
//	POST   /v1/docker/containers/{id}/restart?timeout=10
//	DELETE /v1/docker/images/{ref}                     docker rmi -f
//	DELETE /v1/docker/volumes/{name}                   docker volume rm -f
//
// System endpoints come from package server: /, /health, /ready, /metrics.
//
// A fatal collection error (engine info unavailable) answers 500 with the
// server ErrorResponse body. Degraded categories still answer 200 with empty
// sequences.
//
// Action endpoints always answer with an action.Outcome body:
//
//	{"status":"success","action":"stop","container_id":"web","message":"Container web stopped successfully"}
//
// with 200 on success, 400 for an invalid identifier or timeout and 500
// when the engine command fails.
//
// # Configuration
//
// Serve takes a config.Config (see package config for the file format and
// the PORT, LOG_LEVEL, INFRAWATCH_ENGINE_BINARY and INFRAWATCH_WORKERS
// overrides). Version information is set at build time:
//
//	go build -ldflags="-X 'github.com/infrawatch/infrawatch/pkg/api.version=1.0.0'"
package api
