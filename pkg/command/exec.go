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

package command

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/infrawatch/infrawatch/pkg/errors"
)

// TimeoutMessage is the failure message of a command that exceeded its timeout.
const TimeoutMessage = "Command timed out"

// waitDelay bounds how long Run waits for output pipes after the process is killed.
const waitDelay = time.Second

// Runner executes one external command.
type Runner interface {
	// Run executes args[0] with the remaining args as arguments and blocks
	// until it exits, the timeout elapses or ctx is done.
	Run(ctx context.Context, args []string, timeout time.Duration) *Result
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, args []string, timeout time.Duration) *Result

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context, args []string, timeout time.Duration) *Result {
	return f(ctx, args, timeout)
}

// Exec is a Runner backed by os/exec.
type Exec struct {
	// Env, when set, replaces the environment of the child process.
	Env []string
}

// NewExec returns a Runner that spawns real processes.
func NewExec() *Exec {
	return &Exec{}
}

// Run implements Runner.
func (e *Exec) Run(ctx context.Context, args []string, timeout time.Duration) *Result {
	if len(args) == 0 {
		return Failed(errors.New(errors.ErrCodeCommandFailed, "no command given"))
	}

	label := Label(args)
	start := time.Now()
	res := e.run(ctx, args, timeout)
	outcome := outcomeOf(res)

	commandDuration.WithLabelValues(label, outcome).Observe(time.Since(start).Seconds())
	slog.Debug("command finished",
		"command", label,
		"args", args,
		"outcome", outcome,
		"duration", time.Since(start).String())

	return res
}

func (e *Exec) run(ctx context.Context, args []string, timeout time.Duration) *Result {
	path, err := exec.LookPath(args[0])
	if err != nil {
		return Failed(errors.WrapWithContext(errors.ErrCodeCommandNotFound,
			args[0]+" not found in PATH", err, map[string]any{"command": args[0]}))
	}

	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, path, args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	if e.Env != nil {
		cmd.Env = e.Env
	}

	err = cmd.Run()

	if stderrors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return Failed(errors.WrapWithContext(errors.ErrCodeTimeout, TimeoutMessage, err,
			map[string]any{"command": strings.Join(args, " "), "timeout": timeout.String()}))
	}
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return Failed(errors.WrapWithContext(errors.ErrCodeCommandFailed, msg, err,
			map[string]any{"command": strings.Join(args, " ")}))
	}

	return Decode(stdout.Bytes())
}

// engine subcommands that take a second verb, such as "image inspect".
var managementCommands = map[string]bool{
	"builder":   true,
	"container": true,
	"image":     true,
	"network":   true,
	"system":    true,
	"volume":    true,
}

// Label returns a low-cardinality name for a command line, for example
// "image inspect" for `docker image inspect <id> --format ...`.
func Label(args []string) string {
	if len(args) < 2 {
		if len(args) == 1 {
			return args[0]
		}
		return ""
	}
	if managementCommands[args[1]] && len(args) > 2 && !strings.HasPrefix(args[2], "-") {
		return args[1] + " " + args[2]
	}
	return args[1]
}

func outcomeOf(res *Result) string {
	if res.Succeeded {
		return "success"
	}
	switch errors.CodeOf(res.Err) {
	case errors.ErrCodeTimeout:
		return "timeout"
	case errors.ErrCodeCommandNotFound:
		return "not_found"
	default:
		return "failure"
	}
}
