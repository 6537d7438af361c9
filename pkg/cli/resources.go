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

	"github.com/urfave/cli/v3"

	"github.com/infrawatch/infrawatch/pkg/action"
	"github.com/infrawatch/infrawatch/pkg/header"
	"github.com/infrawatch/infrawatch/pkg/serializer"
)

// actionDocument is an action outcome with its header envelope.
type actionDocument struct {
	header.Header  `json:",inline" yaml:",inline"`
	action.Outcome `json:",inline" yaml:",inline"`
}

func (a *app) containerCmd() *cli.Command {
	return &cli.Command{
		Name:  "container",
		Usage: "Start, stop or restart a container",
		Commands: []*cli.Command{
			a.containerActionCmd(action.ActionStart, "Start a stopped container", false),
			a.containerActionCmd(action.ActionStop, "Stop a running container", true),
			a.containerActionCmd(action.ActionRestart, "Restart a container", true),
		},
	}
}

func (a *app) containerActionCmd(verb, usage string, graceful bool) *cli.Command {
	flags := []cli.Flag{formatFlag()}
	if graceful {
		flags = append(flags, graceFlag())
	}
	return &cli.Command{
		Name:      verb,
		Usage:     usage,
		ArgsUsage: "<container>",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := requireArg(cmd, "container id")
			if err != nil {
				return err
			}
			return a.act(ctx, cmd, func(ctx context.Context, c *action.Controller) (action.Outcome, error) {
				switch verb {
				case action.ActionStop:
					return c.Stop(ctx, id, cmd.Int(flagTimeout))
				case action.ActionRestart:
					return c.Restart(ctx, id, cmd.Int(flagTimeout))
				default:
					return c.Start(ctx, id)
				}
			})
		},
	}
}

func (a *app) imageCmd() *cli.Command {
	return &cli.Command{
		Name:  "image",
		Usage: "Manage images",
		Commands: []*cli.Command{
			{
				Name:      "rm",
				Usage:     "Force-remove an image by id or reference",
				ArgsUsage: "<image>",
				Flags:     []cli.Flag{formatFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ref, err := requireArg(cmd, "image reference")
					if err != nil {
						return err
					}
					return a.act(ctx, cmd, func(ctx context.Context, c *action.Controller) (action.Outcome, error) {
						return c.RemoveImage(ctx, ref)
					})
				},
			},
		},
	}
}

func (a *app) volumeCmd() *cli.Command {
	return &cli.Command{
		Name:  "volume",
		Usage: "Manage volumes",
		Commands: []*cli.Command{
			{
				Name:      "rm",
				Usage:     "Force-remove a volume",
				ArgsUsage: "<volume>",
				Flags:     []cli.Flag{formatFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					volume, err := requireArg(cmd, "volume name")
					if err != nil {
						return err
					}
					return a.act(ctx, cmd, func(ctx context.Context, c *action.Controller) (action.Outcome, error) {
						return c.RemoveVolume(ctx, volume)
					})
				},
			},
		},
	}
}

// act runs fn against a controller for the configured engine, prints the
// outcome and returns the action error, if any.
func (a *app) act(ctx context.Context, cmd *cli.Command,
	fn func(context.Context, *action.Controller) (action.Outcome, error)) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	cfg, err := a.setup(cmd)
	if err != nil {
		return err
	}

	out, actErr := fn(ctx, action.NewController(a.runner, cfg.Engine.Binary))
	doc := &actionDocument{Outcome: out}
	doc.Init(header.KindActionResult, version)
	if err := serializer.NewWriter(outFormat, cmd.Root().Writer).Serialize(ctx, doc); err != nil {
		return fmt.Errorf("failed to print outcome: %w", err)
	}
	if actErr != nil {
		return fmt.Errorf("%s failed: %w", out.Action, actErr)
	}
	return nil
}
