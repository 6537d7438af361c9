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

// Package parser converts engine-specific text into canonical values.
//
// Every function here is total: malformed input yields a sentinel (0 or an
// empty slice) instead of an error, so a single bad field never aborts the
// record it belongs to.
//
//   - Date: engine timestamps to Unix seconds
//   - Ports: `docker ps` port column to port mappings
//   - Size: byte counts and human readable sizes to bytes
package parser
