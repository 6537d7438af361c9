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

// Package action performs lifecycle operations on engine resources through the engine CLI.
//
// Supported operations:
//
//   - Start, Stop and Restart a container (`docker start|stop|restart`)
//   - RemoveImage (`docker rmi -f`)
//   - RemoveVolume (`docker volume rm -f`)
//
// Identifiers are validated before any command runs so user input can never
// be read as a CLI flag. Every call returns an Outcome describing the result
// in the shape served by the HTTP API; the error is nil on success, an
// INVALID_REQUEST error for rejected input, or the runner's error otherwise.
package action
