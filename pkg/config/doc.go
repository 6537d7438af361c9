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

// Package config loads InfraWatch settings from an optional YAML file and
// the environment.
//
// Precedence, lowest to highest: built-in defaults from package defaults,
// the YAML file, environment variables. Command-line flags are applied by
// the CLI on top of the returned Config.
//
// File format:
//
//	engine:
//	  binary: docker
//	  listTimeout: 5s
//	  inspectTimeout: 10s
//	  workers: 4
//	  maxImages: 20
//	server:
//	  address: ""
//	  port: 8080
//	log:
//	  level: info
//
// Environment overrides:
//
//	INFRAWATCH_ENGINE_BINARY   engine.binary
//	INFRAWATCH_WORKERS         engine.workers
//	PORT                       server.port
//	LOG_LEVEL                  log.level
//
// Unknown keys in the file are rejected so typos surface at startup.
package config
