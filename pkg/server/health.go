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

package server

import (
	"net/http"
	"time"

	"github.com/infrawatch/infrawatch/pkg/errors"
	"github.com/infrawatch/infrawatch/pkg/serializer"
)

// Probe states.
const (
	StateHealthy  = "healthy"
	StateReady    = "ready"
	StateNotReady = "not_ready"
)

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Service   string    `json:"service" yaml:"service"`
	Version   string    `json:"version" yaml:"version"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func (s *Server) probe(w http.ResponseWriter, r *http.Request, status int, state, reason string) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}
	serializer.RespondJSON(w, status, HealthResponse{
		Status:    state,
		Service:   s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now().UTC(),
		Reason:    reason,
	})
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.probe(w, r, http.StatusOK, StateHealthy, "")
}

// handleReady is the readiness probe. It fails until SetReady(true).
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.IsReady() {
		s.probe(w, r, http.StatusServiceUnavailable, StateNotReady, "server is starting or shutting down")
		return
	}
	s.probe(w, r, http.StatusOK, StateReady, "")
}
