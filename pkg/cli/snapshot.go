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
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/infrawatch/infrawatch/pkg/collector"
	"github.com/infrawatch/infrawatch/pkg/serializer"
	"github.com/infrawatch/infrawatch/pkg/snapshotter"
)

func (a *app) snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture a container engine snapshot",
		Description: `Capture a snapshot of the container engine including:
  - Engine version and resource totals
  - Containers with state, ports, sizes and labels
  - Images enriched with inspect detail
  - Networks and volumes

The snapshot can be output in JSON, YAML, or table format, to stdout, a file
or a Kubernetes ConfigMap (cm://namespace/name).

# Examples

  infrawatch snapshot --format yaml
  infrawatch snapshot --output engine.yaml
  infrawatch snapshot --summary
  infrawatch --engine podman snapshot --output cm://monitoring/engine-snapshot`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagSummary,
				Usage: "Print per-category counts instead of the document (unless --output is set)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := a.setup(cmd)
			if err != nil {
				return err
			}

			ser, err := outputSerializer(cmd, outFormat)
			if err != nil {
				return err
			}
			defer func() {
				if err := serializer.Close(ser); err != nil {
					slog.Warn("failed to close serializer", slog.String("error", err.Error()))
				}
			}()

			opts := append(cfg.Engine.CollectorOptions(), collector.WithRunner(a.runner))
			s := &snapshotter.EngineSnapshotter{
				Version:    version,
				Collector:  collector.New(opts...),
				Serializer: ser,
			}

			summary := cmd.Bool(flagSummary)
			if !summary {
				return s.Measure(ctx)
			}

			doc, err := s.Snapshot(ctx, cmd.String(flagOutput) != "")
			if err != nil {
				return err
			}
			return writeSummary(cmd.Root().Writer, snapshotter.Summarize(&doc.Snapshot))
		},
	}
}

// writeSummary prints one aligned "Category: count" line per category.
func writeSummary(w io.Writer, counts []snapshotter.Count) error {
	title := cases.Title(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range counts {
		if _, err := fmt.Fprintf(tw, "%s:\t%d\n", title.String(c.Category), c.Items); err != nil {
			return err
		}
	}
	return tw.Flush()
}
