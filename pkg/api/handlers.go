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
	"net/http"
	"strconv"
	"strings"

	"github.com/infrawatch/infrawatch/pkg/action"
	"github.com/infrawatch/infrawatch/pkg/defaults"
	"github.com/infrawatch/infrawatch/pkg/docker"
	"github.com/infrawatch/infrawatch/pkg/errors"
	"github.com/infrawatch/infrawatch/pkg/health"
	"github.com/infrawatch/infrawatch/pkg/serializer"
	"github.com/infrawatch/infrawatch/pkg/server"
)

// Collector gathers one engine snapshot.
type Collector interface {
	Collect(ctx context.Context) (*docker.Snapshot, error)
}

// HealthChecker produces a health report.
type HealthChecker interface {
	Check(ctx context.Context) health.Report
}

// Handlers serves the engine endpoints.
type Handlers struct {
	Collector Collector
	Actions   *action.Controller
	Health    HealthChecker
}

func (h *Handlers) handleMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.MetricsHandlerTimeout)
	defer cancel()

	snap, err := h.Collector.Collect(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to collect engine metrics", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, snap)
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.HealthHandlerTimeout)
	defer cancel()

	serializer.RespondJSON(w, http.StatusOK, h.Health.Check(ctx))
}

func (h *Handlers) handleContainerAction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	verb := r.PathValue("action")

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ActionHandlerTimeout)
	defer cancel()

	var (
		out action.Outcome
		err error
	)
	switch verb {
	case action.ActionStart:
		out, err = h.Actions.Start(ctx, id)
	case action.ActionStop, action.ActionRestart:
		grace, gerr := graceSeconds(r)
		if gerr != nil {
			msg := gerr.Error()
			if se, ok := errors.As(gerr); ok {
				msg = se.Message
			}
			respondOutcome(w, action.Outcome{
				Status: action.StatusError, Action: verb, ContainerID: id, Error: msg,
			}, gerr)
			return
		}
		if verb == action.ActionStop {
			out, err = h.Actions.Stop(ctx, id, grace)
		} else {
			out, err = h.Actions.Restart(ctx, id, grace)
		}
	default:
		server.WriteError(w, r, http.StatusNotFound, errors.ErrCodeNotFound,
			"Unknown container action", false, map[string]any{"action": verb})
		return
	}
	respondOutcome(w, out, err)
}

func (h *Handlers) handleRemoveImage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ActionHandlerTimeout)
	defer cancel()

	out, err := h.Actions.RemoveImage(ctx, r.PathValue("ref"))
	respondOutcome(w, out, err)
}

func (h *Handlers) handleRemoveVolume(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ActionHandlerTimeout)
	defer cancel()

	out, err := h.Actions.RemoveVolume(ctx, r.PathValue("name"))
	respondOutcome(w, out, err)
}

// graceSeconds reads ?timeout=, defaulting to the engine's stop grace period.
func graceSeconds(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("timeout"))
	if raw == "" {
		return defaults.ContainerStopGrace, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"timeout must be a non-negative integer", map[string]any{"timeout": raw})
	}
	return n, nil
}

func respondOutcome(w http.ResponseWriter, out action.Outcome, err error) {
	status := http.StatusOK
	switch {
	case err == nil:
	case errors.IsCode(err, errors.ErrCodeInvalidRequest):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	serializer.RespondJSON(w, status, out)
}
