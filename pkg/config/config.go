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

package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/infrawatch/infrawatch/pkg/collector"
	"github.com/infrawatch/infrawatch/pkg/defaults"
	"github.com/infrawatch/infrawatch/pkg/errors"
	"github.com/infrawatch/infrawatch/pkg/logging"
)

// Environment variables consulted by Load. EnvConfigFile is read by the
// binaries to locate the file passed to Load.
const (
	EnvConfigFile   = "INFRAWATCH_CONFIG"
	EnvEngineBinary = "INFRAWATCH_ENGINE_BINARY"
	EnvWorkers      = "INFRAWATCH_WORKERS"
	EnvPort         = "PORT"
)

// DefaultPort is the API server port when none is configured.
const DefaultPort = 8080

// Config is the full application configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// EngineConfig controls how the engine CLI is driven.
type EngineConfig struct {
	Binary         string        `yaml:"binary"`
	ListTimeout    time.Duration `yaml:"listTimeout"`
	InspectTimeout time.Duration `yaml:"inspectTimeout"`
	Workers        int           `yaml:"workers"`
	MaxImages      int           `yaml:"maxImages"`
}

// ServerConfig holds the listen address of the API server.
type ServerConfig struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
}

// LogConfig holds the log level name.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Binary:         defaults.EngineBinary,
			ListTimeout:    defaults.EngineListTimeout,
			InspectTimeout: defaults.EngineInspectTimeout,
			Workers:        defaults.EnrichmentWorkers,
			MaxImages:      defaults.MaxImages,
		},
		Server: ServerConfig{Port: DefaultPort},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path, when non-empty, over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("failed to read config file %s", path), err)
		}
		if err := cfg.decode(content); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("failed to parse config file %s", path), err)
		}
		slog.Debug("loaded config file", slog.String("path", path))
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(content []byte) error {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	return dec.Decode(c)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvEngineBinary); ok && strings.TrimSpace(v) != "" {
		c.Engine.Binary = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := cast.ToIntE(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("invalid %s", EnvWorkers), err)
		}
		c.Engine.Workers = n
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		n, err := cast.ToIntE(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("invalid %s", EnvPort), err)
		}
		c.Server.Port = n
	}
	if v, ok := lookup(logging.EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks ranges and returns an INVALID_REQUEST error on the first
// violation.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Engine.Binary) == "":
		return errors.New(errors.ErrCodeInvalidRequest, "engine.binary must not be empty")
	case c.Engine.ListTimeout <= 0:
		return errors.New(errors.ErrCodeInvalidRequest, "engine.listTimeout must be positive")
	case c.Engine.InspectTimeout <= 0:
		return errors.New(errors.ErrCodeInvalidRequest, "engine.inspectTimeout must be positive")
	case c.Engine.Workers < 1 || c.Engine.Workers > defaults.MaxEnrichmentWorkers:
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("engine.workers must be between 1 and %d", defaults.MaxEnrichmentWorkers),
			map[string]any{"workers": c.Engine.Workers})
	case c.Engine.MaxImages < 1:
		return errors.New(errors.ErrCodeInvalidRequest, "engine.maxImages must be positive")
	case c.Server.Port < 1 || c.Server.Port > 65535:
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "server.port out of range",
			map[string]any{"port": c.Server.Port})
	}
	return nil
}

// CollectorOptions translates the engine section into collector options.
func (e EngineConfig) CollectorOptions() []collector.Option {
	return []collector.Option{
		collector.WithBinary(e.Binary),
		collector.WithListTimeout(e.ListTimeout),
		collector.WithInspectTimeout(e.InspectTimeout),
		collector.WithWorkers(e.Workers),
		collector.WithMaxImages(e.MaxImages),
	}
}
