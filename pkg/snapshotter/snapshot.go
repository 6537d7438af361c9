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

package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/infrawatch/infrawatch/pkg/collector"
	"github.com/infrawatch/infrawatch/pkg/header"
	"github.com/infrawatch/infrawatch/pkg/serializer"
)

// EngineSnapshotter collects an engine snapshot and serializes it.
type EngineSnapshotter struct {
	// Version is stamped into the header metadata.
	Version string

	// Collector gathers the snapshot. If nil, collector.New() is used.
	Collector Collector

	// Serializer receives the document. If nil, JSON on stdout is used.
	Serializer serializer.Serializer

	// Hostname overrides the host metadata entry.
	Hostname string
}

// Measure runs one collection and serializes the result.
func (s *EngineSnapshotter) Measure(ctx context.Context) error {
	_, err := s.Snapshot(ctx, true)
	return err
}

// Snapshot runs one collection and returns the document. When emit is true
// the document is also serialized.
func (s *EngineSnapshotter) Snapshot(ctx context.Context, emit bool) (*Snapshot, error) {
	if s.Collector == nil {
		s.Collector = collector.New()
	}
	if s.Serializer == nil {
		s.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	start := time.Now()
	defer func() {
		snapshotDuration.Observe(time.Since(start).Seconds())
	}()

	slog.Debug("starting engine snapshot")

	snap, err := s.Collector.Collect(ctx)
	if err != nil {
		snapshotTotal.WithLabelValues("collect_error").Inc()
		slog.Error("engine collection failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to collect engine snapshot: %w", err)
	}

	doc := NewSnapshot(snap, s.Version)
	doc.SetMetadata(header.MetadataHost, s.hostname())

	for _, c := range Summarize(snap) {
		snapshotItems.WithLabelValues(c.Category).Set(float64(c.Items))
	}

	slog.Debug("engine snapshot collected",
		slog.Int("containers", len(snap.Containers)),
		slog.Int("images", len(snap.Images)),
		slog.Int("networks", len(snap.Networks)),
		slog.Int("volumes", len(snap.Volumes)))

	if emit {
		if err := s.Serializer.Serialize(ctx, doc); err != nil {
			snapshotTotal.WithLabelValues("serialize_error").Inc()
			slog.Error("failed to serialize", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to serialize: %w", err)
		}
	}

	snapshotTotal.WithLabelValues("success").Inc()
	return doc, nil
}

func (s *EngineSnapshotter) hostname() string {
	if s.Hostname != "" {
		return s.Hostname
	}
	name, err := os.Hostname()
	if err != nil {
		slog.Debug("hostname unavailable", slog.String("error", err.Error()))
		return ""
	}
	return name
}
