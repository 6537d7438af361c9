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

package collector

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrawatch/infrawatch/pkg/command"
	"github.com/infrawatch/infrawatch/pkg/errors"
)

const (
	infoOut       = `{"ServerVersion":"27.3.1","ApiVersion":"1.47","NCPU":8,"Containers":2,"Labels":null,"Warnings":null}`
	containersOut = `{"ID":"4f1d2c3b4a5e6f7a8b9c","Names":"web","Image":"nginx","Status":"Up 2 hours","CreatedAt":"2025-12-19 16:42:16 +0300 +03","Ports":"0.0.0.0:8081->80/tcp"}
{"ID":"9a8b7c6d5e4f3a2b1c0d","Names":"db","Image":"postgres","Status":"Exited (0) 1 day ago","Ports":""}
{"Names":"not-a-container"}`
	imagesOut = `{"ID":"aaaaaaaaaaaa","Repository":"nginx","Tag":"1.27","Size":"100MB"}
{"ID":"bbbbbbbbbbbb","Repository":"postgres","Tag":"16","Size":"200MB"}
{"ID":"cccccccccccc","Repository":"redis","Tag":"<none>","Size":"300MB"}`
	networksOut = `{"ID":"1111111111112222","Name":"bridge","Driver":"bridge"}
{"ID":"3333333333334444","Name":"host","Driver":"host"}`
	volumesOut = `{"Name":"pgdata","Driver":"local","Mountpoint":"/var/lib/docker/volumes/pgdata/_data"}`
)

// scriptedRunner answers engine commands from a table keyed by subcommand.
type scriptedRunner struct {
	mu       sync.Mutex
	outputs  map[string]string
	failures map[string]string
	calls    []string
	inflight atomic.Int32
	peak     atomic.Int32
	delay    time.Duration
}

func newScriptedRunner() *scriptedRunner {
	return &scriptedRunner{
		outputs: map[string]string{
			"info":    infoOut,
			"ps":      containersOut,
			"images":  imagesOut,
			"network": networksOut,
			"volume":  volumesOut,
		},
		failures: map[string]string{},
	}
}

// key maps an argv to its table key: the subcommand, or "inspect <id>".
func key(args []string) string {
	if len(args) > 3 && args[1] == "image" && args[2] == "inspect" {
		return "inspect " + args[3]
	}
	return args[1]
}

func (s *scriptedRunner) Run(_ context.Context, args []string, _ time.Duration) *command.Result {
	n := s.inflight.Add(1)
	defer s.inflight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	k := key(args)
	s.mu.Lock()
	s.calls = append(s.calls, k)
	msg, failed := s.failures[k]
	out, ok := s.outputs[k]
	s.mu.Unlock()

	if failed {
		return command.Failed(errors.New(errors.ErrCodeCommandFailed, msg))
	}
	if !ok && strings.HasPrefix(k, "inspect ") {
		id := strings.TrimPrefix(k, "inspect ")
		out = `{"Id":"sha256:` + id + `","Size":1000,"Created":"2025-12-19T16:42:16Z","GraphDriver":{"Data":{"UpperDirSize":"2048"}}}`
	}
	return command.Decode([]byte(out))
}

func (s *scriptedRunner) called(k string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.calls {
		if c == k {
			return true
		}
	}
	return false
}

func TestCollect(t *testing.T) {
	runner := newScriptedRunner()
	c := New(WithRunner(runner))

	snap, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, "27.3.1", snap.Engine.Version)
	assert.Equal(t, "1.47", snap.Engine.APIVersion)
	assert.EqualValues(t, 8, snap.Engine.NCPU)
	assert.Empty(t, snap.Engine.Labels)

	require.Len(t, snap.Containers, 2, "record without id is skipped")
	assert.Equal(t, "4f1d2c3b4a5e", snap.Containers[0].ID)
	assert.Equal(t, []string{"web"}, snap.Containers[0].Names)
	assert.Len(t, snap.Containers[0].Ports, 1)
	assert.Empty(t, snap.Containers[1].Ports)

	require.Len(t, snap.Images, 3)
	assert.Equal(t, []string{"nginx:1.27"}, snap.Images[0].RepoTags)
	assert.Empty(t, snap.Images[2].RepoTags)
	assert.EqualValues(t, 1000, snap.Images[0].ContentSize)
	assert.EqualValues(t, 2048, snap.Images[0].DiskUsage)
	assert.Positive(t, snap.Images[0].Created)

	require.Len(t, snap.Networks, 2)
	assert.Equal(t, "111111111111", snap.Networks[0].ID)
	require.Len(t, snap.Volumes, 1)
	assert.Equal(t, "pgdata", snap.Volumes[0].Name)

	assert.NotNil(t, snap.ContainerStats)
	assert.Empty(t, snap.ContainerStats)
	assert.NotNil(t, snap.Events)
	assert.Empty(t, snap.Events)
}

func TestCollectEngineInfoFailureIsFatal(t *testing.T) {
	runner := newScriptedRunner()
	runner.failures["info"] = "Cannot connect to the Docker daemon at unix:///var/run/docker.sock"

	snap, err := New(WithRunner(runner)).Collect(context.Background())

	require.Error(t, err)
	assert.Nil(t, snap)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCollectionFailed))
	se, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Cannot connect to the Docker daemon at unix:///var/run/docker.sock", se.Message)
	assert.False(t, runner.called("ps"), "no further commands after a fatal failure")
}

func TestCollectEngineInfoNotObject(t *testing.T) {
	runner := newScriptedRunner()
	runner.outputs["info"] = "permission denied"

	_, err := New(WithRunner(runner)).Collect(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCollectionFailed))
	assert.True(t, errors.IsCode(err, errors.ErrCodeDecodeFailure))
}

func TestCollectOptionalFailuresDegrade(t *testing.T) {
	tests := []struct {
		name    string
		failing string
	}{
		{"networks", "network"},
		{"volumes", "volume"},
		{"containers", "ps"},
		{"images", "images"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := newScriptedRunner()
			runner.failures[tt.failing] = "boom"

			snap, err := New(WithRunner(runner)).Collect(context.Background())
			require.NoError(t, err)

			counts := map[string]int{
				"ps":      len(snap.Containers),
				"images":  len(snap.Images),
				"network": len(snap.Networks),
				"volume":  len(snap.Volumes),
			}
			for k, n := range counts {
				if k == tt.failing {
					assert.Zero(t, n, k)
				} else {
					assert.NotZero(t, n, k)
				}
			}
		})
	}
}

func TestCollectNetworkFailureKeepsRest(t *testing.T) {
	runner := newScriptedRunner()
	runner.failures["network"] = "Error response from daemon"

	snap, err := New(WithRunner(runner)).Collect(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, snap.Networks)
	assert.Empty(t, snap.Networks)
	assert.NotEmpty(t, snap.Containers)
	assert.NotEmpty(t, snap.Images)
}

func TestCollectEnrichmentFailurePreservesOrder(t *testing.T) {
	runner := newScriptedRunner()
	runner.failures["inspect bbbbbbbbbbbb"] = "No such image"

	snap, err := New(WithRunner(runner), WithWorkers(3)).Collect(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Images, 3)
	assert.Equal(t, "aaaaaaaaaaaa", snap.Images[0].ID)
	assert.Equal(t, "bbbbbbbbbbbb", snap.Images[1].ID)
	assert.Equal(t, "cccccccccccc", snap.Images[2].ID)

	assert.EqualValues(t, 1000, snap.Images[0].ContentSize)
	assert.EqualValues(t, 1000, snap.Images[2].ContentSize)

	b := snap.Images[1]
	assert.Zero(t, b.ContentSize)
	assert.Zero(t, b.Created)
	assert.EqualValues(t, 200*1024*1024, b.DiskUsage, "falls back to the list size")
	assert.Equal(t, []string{"postgres:16"}, b.RepoTags)
}

func TestCollectCapsImages(t *testing.T) {
	var lines []string
	for i := range 25 {
		lines = append(lines, `{"ID":"img`+strings.Repeat("0", 2)+string(rune('a'+i))+`","Repository":"r"}`)
	}
	runner := newScriptedRunner()
	runner.outputs["images"] = strings.Join(lines, "\n")

	snap, err := New(WithRunner(runner)).Collect(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Images, 20)
	assert.Equal(t, "img00a", snap.Images[0].ID)
	assert.Equal(t, "img00t", snap.Images[19].ID)
	assert.False(t, runner.called("inspect img00u"), "images beyond the cap are not inspected")
}

func TestCollectBoundedConcurrency(t *testing.T) {
	var lines []string
	for i := range 12 {
		lines = append(lines, `{"ID":"id`+string(rune('a'+i))+`"}`)
	}
	runner := newScriptedRunner()
	runner.outputs["images"] = strings.Join(lines, "\n")
	runner.delay = 10 * time.Millisecond

	snap, err := New(WithRunner(runner), WithWorkers(2)).Collect(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.Images, 12)
	assert.LessOrEqual(t, runner.peak.Load(), int32(2))
}

func TestCollectIsIdempotent(t *testing.T) {
	c := New(WithRunner(newScriptedRunner()))

	first, err := c.Collect(context.Background())
	require.NoError(t, err)
	second, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCollectUsesConfiguredBinary(t *testing.T) {
	var seen []string
	var mu sync.Mutex
	runner := command.RunnerFunc(func(_ context.Context, args []string, timeout time.Duration) *command.Result {
		mu.Lock()
		seen = append(seen, args[0])
		mu.Unlock()
		assert.Equal(t, []string{"--format", "{{json .}}"}, args[len(args)-2:])
		assert.Positive(t, timeout)
		return command.Decode([]byte(infoOut))
	})

	_, err := New(WithRunner(runner), WithBinary("podman")).Collect(context.Background())
	require.NoError(t, err)

	for _, bin := range seen {
		assert.Equal(t, "podman", bin)
	}
}

func TestCollectCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(WithRunner(newScriptedRunner())).Collect(ctx)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCollectionFailed))
}

func TestOptions(t *testing.T) {
	c := New(
		WithWorkers(100),
		WithListTimeout(time.Second),
		WithInspectTimeout(0),
		WithMaxImages(5),
		WithBinary(""),
	)

	assert.Equal(t, 8, c.Workers)
	assert.Equal(t, time.Second, c.ListTimeout)
	assert.Equal(t, 10*time.Second, c.InspectTimeout)
	assert.Equal(t, 5, c.MaxImages)
	assert.Equal(t, "docker", c.Binary)
	assert.Equal(t, 1, New(WithWorkers(0)).Workers)
}
