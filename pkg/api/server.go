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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/infrawatch/infrawatch/pkg/action"
	"github.com/infrawatch/infrawatch/pkg/collector"
	"github.com/infrawatch/infrawatch/pkg/command"
	"github.com/infrawatch/infrawatch/pkg/config"
	"github.com/infrawatch/infrawatch/pkg/health"
	"github.com/infrawatch/infrawatch/pkg/logging"
	"github.com/infrawatch/infrawatch/pkg/server"
)

const (
	name           = "infrawatchd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes maps the engine endpoints to h.
func Routes(h *Handlers) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /v1/docker/metrics":                   h.handleMetrics,
		"GET /v1/health":                           h.handleHealth,
		"POST /v1/docker/containers/{id}/{action}": h.handleContainerAction,
		"DELETE /v1/docker/images/{ref...}":        h.handleRemoveImage,
		"DELETE /v1/docker/volumes/{name}":         h.handleRemoveVolume,
	}
}

// NewHandlers builds handlers that share one runner across the collector,
// the action controller and the health checker.
func NewHandlers(cfg *config.Config, runner command.Runner) *Handlers {
	if runner == nil {
		runner = command.NewExec()
	}
	opts := append(cfg.Engine.CollectorOptions(), collector.WithRunner(runner))
	return &Handlers{
		Collector: collector.New(opts...),
		Actions:   action.NewController(runner, cfg.Engine.Binary),
		Health: health.NewChecker(
			health.WithRunner(runner),
			health.WithBinary(cfg.Engine.Binary),
		),
	}
}

// Serve runs the API server until ctx is canceled or a termination signal
// arrives.
func Serve(ctx context.Context, cfg *config.Config) error {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.Log.Level)
	slog.Info("starting",
		slog.String("name", name),
		slog.String("version", version),
		slog.String("commit", commit),
		slog.String("date", date),
		slog.String("engine", cfg.Engine.Binary))

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithAddress(cfg.Server.Address, cfg.Server.Port),
		server.WithHandler(Routes(NewHandlers(cfg, nil))),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return err
	}
	return nil
}
