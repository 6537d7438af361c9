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

// Package command runs container engine CLI invocations and decodes their output.
//
// A Runner executes one command with its own timeout and returns a Result
// that carries exactly one payload shape when the command succeeded:
//
//   - Object: stdout was a single JSON object (`docker info --format {{json .}}`)
//   - Records: stdout was a JSON array or newline delimited JSON (`docker ps --format {{json .}}`)
//   - Raw: anything else, trimmed
//
// Failures are reported in Result.Err as a *errors.StructuredError with one
// of the codes COMMAND_NOT_FOUND, TIMEOUT or COMMAND_FAILED. Runners never
// retry; a fresh call is the retry mechanism.
//
// Usage:
//
//	runner := command.NewExec()
//	res := runner.Run(ctx, []string{"docker", "info", "--format", "{{json .}}"}, 5*time.Second)
//	if !res.Succeeded {
//	    return res.Err
//	}
//	info := res.Object
//
// Every invocation is observed by the infrawatch_command_duration_seconds
// histogram, labeled by engine subcommand and outcome.
package command
