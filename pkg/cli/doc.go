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

// Package cli implements the infrawatch command-line interface.
//
// # Commands
//
// snapshot - Capture the engine state:
//
//	infrawatch snapshot [--output FILE|cm://namespace/name] [--format json|yaml|table] [--summary]
//
// Collects engine info, containers, images, networks and volumes through the
// engine CLI and writes the snapshot document. With --summary, per-category
// counts are printed instead of the document unless --output is also given.
//
// serve - Run the HTTP API:
//
//	infrawatch serve
//
// health - Report engine, systemd unit and host status:
//
//	infrawatch health [--format json|yaml|table]
//
// container, image, volume - Act on engine resources:
//
//	infrawatch container stop --timeout 5 web
//	infrawatch image rm library/nginx:1.27
//	infrawatch volume rm pgdata
//
// # Global Flags
//
//	--config      YAML configuration file (env INFRAWATCH_CONFIG)
//	--log-level   debug, info, warn or error (env LOG_LEVEL)
//	--engine      engine CLI binary, e.g. podman (env INFRAWATCH_ENGINE_BINARY)
//
// # Exit Codes
//
//	0  Success
//	1  General error
//	2  Interrupted
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/infrawatch/infrawatch/pkg/cli.version=1.0.0'"
package cli
