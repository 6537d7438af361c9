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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrawatch/infrawatch/pkg/action"
	"github.com/infrawatch/infrawatch/pkg/command"
	"github.com/infrawatch/infrawatch/pkg/config"
	"github.com/infrawatch/infrawatch/pkg/docker"
	"github.com/infrawatch/infrawatch/pkg/errors"
	"github.com/infrawatch/infrawatch/pkg/health"
	"github.com/infrawatch/infrawatch/pkg/server"
)

// recordingRunner answers by subcommand and remembers every argv.
type recordingRunner struct {
	mu       sync.Mutex
	calls    [][]string
	outputs  map[string]string
	failures map[string]error
}

func (r *recordingRunner) Run(_ context.Context, args []string, _ time.Duration) *command.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, args)

	key := args[1]
	if err, ok := r.failures[key]; ok {
		return command.Failed(err)
	}
	return command.Decode([]byte(r.outputs[key]))
}

func (r *recordingRunner) last() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

type staticChecker health.Report

func (c staticChecker) Check(context.Context) health.Report { return health.Report(c) }

func newTestServer(t *testing.T, runner *recordingRunner) http.Handler {
	t.Helper()
	cfg := config.Default()
	h := NewHandlers(cfg, runner)
	h.Health = staticChecker(health.Report{Status: health.StatusHealthy})
	return server.New(server.WithHandler(Routes(h))).Handler()
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "infrawatchd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestMetrics_Success(t *testing.T) {
	runner := &recordingRunner{outputs: map[string]string{
		"info":    `{"ServerVersion":"27.3.1","NCPU":8}`,
		"ps":      `{"ID":"abc123","Names":"web","Status":"Up 2 hours"}`,
		"images":  "",
		"network": "",
		"volume":  "",
	}}
	h := newTestServer(t, runner)

	rec := do(t, h, http.MethodGet, "/v1/docker/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap docker.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, "27.3.1", snap.Engine.Version)
	require.Len(t, snap.Containers, 1)
	assert.Equal(t, "abc123", snap.Containers[0].ID)
	assert.Empty(t, snap.Images)
}

func TestMetrics_FatalInfoFailure(t *testing.T) {
	runner := &recordingRunner{failures: map[string]error{
		"info": errors.New(errors.ErrCodeTimeout, command.TimeoutMessage),
	}}
	h := newTestServer(t, runner)

	rec := do(t, h, http.MethodGet, "/v1/docker/metrics")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.ErrCodeCollectionFailed), resp.Code)
	assert.NotEmpty(t, resp.RequestID)
	assert.True(t, resp.Retryable)
}

func TestHealthRoute(t *testing.T) {
	h := newTestServer(t, &recordingRunner{})

	rec := do(t, h, http.MethodGet, "/v1/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var report health.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, health.StatusHealthy, report.Status)
}

func TestContainerActions(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		fail       error
		wantStatus int
		wantArgs   []string
		wantBody   action.Outcome
	}{
		{
			name:       "start",
			target:     "/v1/docker/containers/web/start",
			wantStatus: http.StatusOK,
			wantArgs:   []string{"docker", "start", "web"},
			wantBody: action.Outcome{Status: action.StatusSuccess, Action: "start", ContainerID: "web",
				Message: "Container web started successfully"},
		},
		{
			name:       "stop default timeout",
			target:     "/v1/docker/containers/web/stop",
			wantStatus: http.StatusOK,
			wantArgs:   []string{"docker", "stop", "-t", "10", "web"},
			wantBody: action.Outcome{Status: action.StatusSuccess, Action: "stop", ContainerID: "web",
				Message: "Container web stopped successfully"},
		},
		{
			name:       "restart with timeout",
			target:     "/v1/docker/containers/web/restart?timeout=3",
			wantStatus: http.StatusOK,
			wantArgs:   []string{"docker", "restart", "-t", "3", "web"},
			wantBody: action.Outcome{Status: action.StatusSuccess, Action: "restart", ContainerID: "web",
				Message: "Container web restarted successfully"},
		},
		{
			name:       "bad timeout",
			target:     "/v1/docker/containers/web/stop?timeout=soon",
			wantStatus: http.StatusBadRequest,
			wantBody: action.Outcome{Status: action.StatusError, Action: "stop", ContainerID: "web",
				Error: "timeout must be a non-negative integer"},
		},
		{
			name:       "invalid id",
			target:     "/v1/docker/containers/-web/start",
			wantStatus: http.StatusBadRequest,
			wantBody: action.Outcome{Status: action.StatusError, Action: "start", ContainerID: "-web",
				Error: `invalid identifier "-web"`},
		},
		{
			name:       "engine failure",
			target:     "/v1/docker/containers/web/start",
			fail:       errors.New(errors.ErrCodeCommandFailed, "Error: No such container: web"),
			wantStatus: http.StatusInternalServerError,
			wantArgs:   []string{"docker", "start", "web"},
			wantBody: action.Outcome{Status: action.StatusError, Action: "start", ContainerID: "web",
				Error: "Error: No such container: web"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &recordingRunner{}
			if tt.fail != nil {
				runner.failures = map[string]error{"start": tt.fail}
			}
			h := newTestServer(t, runner)

			rec := do(t, h, http.MethodPost, tt.target)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			var got action.Outcome
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantBody, got)
			assert.Equal(t, tt.wantArgs, runner.last())
		})
	}
}

func TestContainerAction_Unknown(t *testing.T) {
	h := newTestServer(t, &recordingRunner{})

	rec := do(t, h, http.MethodPost, "/v1/docker/containers/web/pause")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.ErrCodeNotFound), resp.Code)
	assert.Equal(t, "pause", resp.Details["action"])
}

func TestRemoveImage(t *testing.T) {
	runner := &recordingRunner{}
	h := newTestServer(t, runner)

	rec := do(t, h, http.MethodDelete, "/v1/docker/images/library/nginx:1.27")
	require.Equal(t, http.StatusOK, rec.Code)

	var got action.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, action.Outcome{
		Status: action.StatusSuccess, Action: action.ActionDelete, ResourceType: "image",
		ImageID: "library/nginx:1.27", Message: "Image library/nginx:1.27 deleted successfully",
	}, got)
	assert.Equal(t, []string{"docker", "rmi", "-f", "library/nginx:1.27"}, runner.last())

	rec = do(t, h, http.MethodDelete, "/v1/docker/images/Not%20Valid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveVolume(t *testing.T) {
	runner := &recordingRunner{}
	h := newTestServer(t, runner)

	rec := do(t, h, http.MethodDelete, "/v1/docker/volumes/pgdata")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"docker", "volume", "rm", "-f", "pgdata"}, runner.last())

	var got action.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "pgdata", got.VolumeID)
	assert.Equal(t, "Volume pgdata deleted successfully", got.Message)
}

func TestGraceSeconds(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{"", 10, false},
		{"?timeout=0", 0, false},
		{"?timeout=30", 30, false},
		{"?timeout=-1", 0, true},
		{"?timeout=x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := graceSeconds(httptest.NewRequest(http.MethodPost, "/"+tt.query, nil))
			if tt.wantErr {
				assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
