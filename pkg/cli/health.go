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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/infrawatch/infrawatch/pkg/header"
	"github.com/infrawatch/infrawatch/pkg/health"
	"github.com/infrawatch/infrawatch/pkg/serializer"
)

// healthDocument is a health report with its header envelope.
type healthDocument struct {
	header.Header `json:",inline" yaml:",inline"`
	health.Report `json:",inline" yaml:",inline"`
}

func (a *app) healthCmd() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Report engine, systemd unit and host status",
		Description: `Check that the engine CLI reaches its daemon, read the systemd state of
the engine unit and sample host CPU, memory and disk usage.

Exits non-zero when the engine is not healthy.`,
		Flags: []cli.Flag{
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

			checker := health.NewChecker(
				health.WithRunner(a.runner),
				health.WithBinary(cfg.Engine.Binary),
			)
			doc := healthDocument{Report: checker.Check(ctx)}
			doc.Init(header.KindHealthReport, version)

			ser, err := outputSerializer(cmd, outFormat)
			if err != nil {
				return err
			}
			defer func() {
				if err := serializer.Close(ser); err != nil {
					slog.Warn("failed to close serializer", slog.String("error", err.Error()))
				}
			}()

			if err := ser.Serialize(ctx, &doc); err != nil {
				return fmt.Errorf("failed to serialize health report: %w", err)
			}
			if doc.Status != health.StatusHealthy {
				return fmt.Errorf("engine is %s: %s", doc.Status, doc.Engine.Error)
			}
			return nil
		},
	}
}
