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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/infrawatch/infrawatch/pkg/config"
	"github.com/infrawatch/infrawatch/pkg/defaults"
	"github.com/infrawatch/infrawatch/pkg/serializer"
)

// Flag names shared by several commands.
const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagEngine   = "engine"
	flagOutput   = "output"
	flagFormat   = "format"
	flagSummary  = "summary"
	flagTimeout  = "timeout"
)

// globalFlags returns new root flags. Flag values hold parsed state, so each
// command tree gets its own.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "Path to the YAML configuration file",
			Sources: cli.EnvVars(config.EnvConfigFile),
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Usage: "Log level (debug, info, warn, error), overrides LOG_LEVEL",
		},
		&cli.StringFlag{
			Name:  flagEngine,
			Usage: "Engine CLI binary such as podman, overrides " + config.EnvEngineBinary,
		},
	}
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage:   "Output destination: file path or ConfigMap URI (cm://namespace/name). Default: stdout",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func graceFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:  flagTimeout,
		Value: defaults.ContainerStopGrace,
		Usage: "Seconds to wait for the container to stop before killing it",
	}
}

// parseOutputFormat returns the --format value. An empty format is returned
// when the flag was not given and --output names a file, so the writer can
// infer it from the extension.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	if !cmd.IsSet(flagFormat) && cmd.String(flagOutput) != "" {
		return "", nil
	}
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String(flagFormat))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			f, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// outputSerializer returns the sink for --output, or the command writer.
func outputSerializer(cmd *cli.Command, format serializer.Format) (serializer.Serializer, error) {
	if out := cmd.String(flagOutput); out != "" {
		return serializer.NewFileWriterOrStdout(format, out)
	}
	return serializer.NewWriter(format, cmd.Root().Writer), nil
}

func requireArg(cmd *cli.Command, what string) (string, error) {
	v := strings.TrimSpace(cmd.Args().First())
	if v == "" {
		return "", fmt.Errorf("%s is required", what)
	}
	if cmd.Args().Len() > 1 {
		return "", fmt.Errorf("expected a single %s, got %d arguments", what, cmd.Args().Len())
	}
	return v, nil
}
