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
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/infrawatch/infrawatch/pkg/command"
	"github.com/infrawatch/infrawatch/pkg/defaults"
	"github.com/infrawatch/infrawatch/pkg/docker"
	"github.com/infrawatch/infrawatch/pkg/errors"
	"github.com/infrawatch/infrawatch/pkg/normalizer"
)

var jsonFormat = []string{"--format", "{{json .}}"}

// Collector builds snapshots by running the engine CLI.
type Collector struct {
	// Runner executes engine commands.
	Runner command.Runner

	// Binary is the engine CLI, "docker" unless overridden.
	Binary string

	// ListTimeout bounds info and list commands.
	ListTimeout time.Duration

	// InspectTimeout bounds each per-image inspect command.
	InspectTimeout time.Duration

	// Workers is the number of concurrent inspect commands.
	Workers int

	// MaxImages caps the number of images in a snapshot.
	MaxImages int
}

// Option configures a Collector.
type Option func(*Collector)

// WithRunner sets the command runner.
func WithRunner(r command.Runner) Option {
	return func(c *Collector) {
		if r != nil {
			c.Runner = r
		}
	}
}

// WithBinary sets the engine CLI binary.
func WithBinary(binary string) Option {
	return func(c *Collector) {
		if binary != "" {
			c.Binary = binary
		}
	}
}

// WithListTimeout sets the timeout for info and list commands.
func WithListTimeout(d time.Duration) Option {
	return func(c *Collector) {
		if d > 0 {
			c.ListTimeout = d
		}
	}
}

// WithInspectTimeout sets the timeout for each inspect command.
func WithInspectTimeout(d time.Duration) Option {
	return func(c *Collector) {
		if d > 0 {
			c.InspectTimeout = d
		}
	}
}

// WithWorkers sets the enrichment pool size, clamped to [1, defaults.MaxEnrichmentWorkers].
func WithWorkers(n int) Option {
	return func(c *Collector) {
		c.Workers = max(1, min(n, defaults.MaxEnrichmentWorkers))
	}
}

// WithMaxImages sets the image cap.
func WithMaxImages(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.MaxImages = n
		}
	}
}

// New returns a Collector with production defaults.
func New(opts ...Option) *Collector {
	c := &Collector{
		Runner:         command.NewExec(),
		Binary:         defaults.EngineBinary,
		ListTimeout:    defaults.EngineListTimeout,
		InspectTimeout: defaults.EngineInspectTimeout,
		Workers:        defaults.EnrichmentWorkers,
		MaxImages:      defaults.MaxImages,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect runs one complete collection. The only error is a fatal
// *errors.StructuredError with code COLLECTION_FAILED, in which case no
// snapshot is returned.
func (c *Collector) Collect(ctx context.Context) (*docker.Snapshot, error) {
	start := time.Now()
	defer func() {
		collectDuration.Observe(time.Since(start).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		collectTotal.WithLabelValues("error").Inc()
		return nil, errors.Wrap(errors.ErrCodeCollectionFailed, "collection canceled", err)
	}

	engine, err := c.engineInfo(ctx)
	if err != nil {
		collectTotal.WithLabelValues("error").Inc()
		slog.Error("engine info unavailable", slog.String("error", err.Error()))
		return nil, err
	}

	snap := docker.NewSnapshot(engine)
	snap.Containers = c.containers(ctx)
	snap.Images = c.images(ctx)
	snap.Networks = normalizer.Networks(c.list(ctx, "networks", "network", "ls"))
	snap.Volumes = normalizer.Volumes(c.list(ctx, "volumes", "volume", "ls"))

	collectTotal.WithLabelValues("success").Inc()
	slog.Debug("snapshot collected",
		slog.String("engine", engine.Version),
		slog.Int("containers", len(snap.Containers)),
		slog.Int("images", len(snap.Images)),
		slog.Int("networks", len(snap.Networks)),
		slog.Int("volumes", len(snap.Volumes)),
		slog.Duration("duration", time.Since(start)))

	return snap, nil
}

func (c *Collector) engineInfo(ctx context.Context) (docker.EngineInfo, error) {
	res := c.run(ctx, c.ListTimeout, "info")
	if !res.Succeeded {
		return docker.EngineInfo{}, errors.WrapWithContext(errors.ErrCodeCollectionFailed,
			res.ErrorMessage(), res.Err, map[string]any{"command": "info"})
	}
	if res.Object == nil {
		return docker.EngineInfo{}, errors.WrapWithContext(errors.ErrCodeCollectionFailed,
			"Failed to get Docker info",
			errors.New(errors.ErrCodeDecodeFailure, "engine info is not a JSON object"),
			map[string]any{"command": "info"})
	}
	return normalizer.EngineInfo(res.Object), nil
}

func (c *Collector) containers(ctx context.Context) []docker.Container {
	records := c.list(ctx, "containers", "ps", "-a")
	out := make([]docker.Container, 0, len(records))
	for _, r := range records {
		ct, err := normalizer.Container(r)
		if err != nil {
			slog.Warn("skipping container record",
				slog.String("id", r.String("ID", "Id")),
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, ct)
	}
	return out
}

// images lists images and enriches the first MaxImages of them with
// inspect detail, concurrently and in list order.
func (c *Collector) images(ctx context.Context) []docker.Image {
	records := c.list(ctx, "images", "images")
	if len(records) > c.MaxImages {
		records = records[:c.MaxImages]
	}

	details := make([]normalizer.Record, len(records))

	var g errgroup.Group
	g.SetLimit(max(1, c.Workers))
	for i, r := range records {
		id := r.String("ID", "ImageID", "Id")
		if id == "" {
			continue
		}
		g.Go(func() error {
			details[i] = c.inspect(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]docker.Image, 0, len(records))
	for i, r := range records {
		out = append(out, normalizer.Image(normalizer.Enrich(r, details[i])))
	}
	return out
}

// inspect returns the detail record of one image, or nil when unavailable.
func (c *Collector) inspect(ctx context.Context, id string) normalizer.Record {
	res := c.run(ctx, c.InspectTimeout, "image", "inspect", id)
	if !res.Succeeded {
		imageEnrichmentFailures.Inc()
		slog.Warn("image inspect failed",
			slog.String("image", id),
			slog.String("error", res.ErrorMessage()))
		return nil
	}

	if res.Object != nil {
		return res.Object
	}
	if len(res.Records) > 0 {
		return res.Records[0]
	}

	imageEnrichmentFailures.Inc()
	slog.Warn("image inspect returned no object", slog.String("image", id))
	return nil
}

// list runs a list command and returns its records. A failure is logged
// and counted as a degradation of category, and yields no records.
func (c *Collector) list(ctx context.Context, category string, args ...string) []normalizer.Record {
	res := c.run(ctx, c.ListTimeout, args...)
	if !res.Succeeded {
		collectDegraded.WithLabelValues(category).Inc()
		slog.Warn("optional collection failed",
			slog.String("category", category),
			slog.String("error", res.ErrorMessage()))
		return nil
	}
	if res.Object == nil && res.Records == nil && res.Raw != "" {
		collectDegraded.WithLabelValues(category).Inc()
		slog.Warn("optional collection returned no JSON records",
			slog.String("category", category))
		return nil
	}
	return normalizer.Records(res.List())
}

func (c *Collector) run(ctx context.Context, timeout time.Duration, args ...string) *command.Result {
	argv := make([]string, 0, len(args)+3)
	argv = append(argv, c.Binary)
	argv = append(argv, args...)
	argv = append(argv, jsonFormat...)
	return c.Runner.Run(ctx, argv, timeout)
}
