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

// Package logging installs log/slog loggers tagged with a module name and version.
//
// The server uses the JSON handler and the CLI the text handler, both on
// stderr. Levels come from an explicit name or, when that is empty, from
// LOG_LEVEL; unknown names mean info. Debug loggers record source locations.
//
//	logging.SetDefaultStructuredLoggerWithLevel("infrawatchd", version, cfg.Log.Level)
//	logging.SetDefaultTextLoggerWithLevel("infrawatch", version, "debug")
//
// NewLogLogger(level) bridges the default handler to a *log.Logger, for
// http.Server.ErrorLog.
package logging
