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

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/infrawatch/infrawatch/pkg/command"
	"github.com/infrawatch/infrawatch/pkg/config"
	"github.com/infrawatch/infrawatch/pkg/logging"
)

const (
	name           = "infrawatch"
	versionDefault = "dev"

	exitInterrupted = 2
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the CLI against os.Args and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(nil).rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, context.Canceled) {
			os.Exit(exitInterrupted)
		}
		os.Exit(1)
	}
}

// app carries what the commands share. A nil runner means real processes.
type app struct {
	runner command.Runner
}

func newApp(runner command.Runner) *app {
	if runner == nil {
		runner = command.NewExec()
	}
	return &app{runner: runner}
}

func (a *app) rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Container engine snapshot and control",
		Flags:                 globalFlags(),
		Description: `infrawatch drives the container engine CLI to capture snapshots of
engine state, report engine health and act on containers, images and volumes.`,
		Commands: []*cli.Command{
			a.snapshotCmd(),
			a.serveCmd(),
			a.healthCmd(),
			a.containerCmd(),
			a.imageCmd(),
			a.volumeCmd(),
		},
	}
}

// setup loads the configuration, applies global flag overrides and installs
// the CLI logger.
func (a *app) setup(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String(flagConfig))
	if err != nil {
		return nil, err
	}
	if v := cmd.String(flagEngine); v != "" {
		cfg.Engine.Binary = v
	}
	if v := cmd.String(flagLogLevel); v != "" {
		cfg.Log.Level = v
	}

	logging.SetDefaultTextLoggerWithLevel(name, version, cfg.Log.Level)
	slog.Debug("configuration loaded",
		slog.String("engine", cfg.Engine.Binary),
		slog.Int("workers", cfg.Engine.Workers),
		slog.String("commit", commit),
		slog.String("date", date))
	return cfg, nil
}
