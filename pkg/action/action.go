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

package action

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/distribution/reference"

	"github.com/infrawatch/infrawatch/pkg/command"
	"github.com/infrawatch/infrawatch/pkg/defaults"
	"github.com/infrawatch/infrawatch/pkg/errors"
)

// Outcome statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Action names.
const (
	ActionStart   = "start"
	ActionStop    = "stop"
	ActionRestart = "restart"
	ActionDelete  = "delete"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// Outcome is the result of one action.
type Outcome struct {
	Status       string `json:"status" yaml:"status"`
	Action       string `json:"action" yaml:"action"`
	ResourceType string `json:"resource_type,omitempty" yaml:"resource_type,omitempty"`
	ContainerID  string `json:"container_id,omitempty" yaml:"container_id,omitempty"`
	ImageID      string `json:"image_id,omitempty" yaml:"image_id,omitempty"`
	VolumeID     string `json:"volume_id,omitempty" yaml:"volume_id,omitempty"`
	Message      string `json:"message,omitempty" yaml:"message,omitempty"`
	Error        string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Controller runs actions against the engine.
type Controller struct {
	Runner command.Runner
	Binary string
}

// NewController returns a Controller for the given engine binary.
func NewController(runner command.Runner, binary string) *Controller {
	if runner == nil {
		runner = command.NewExec()
	}
	if binary == "" {
		binary = defaults.EngineBinary
	}
	return &Controller{Runner: runner, Binary: binary}
}

// Start starts a stopped container.
func (c *Controller) Start(ctx context.Context, id string) (Outcome, error) {
	o := Outcome{Action: ActionStart, ContainerID: id}
	if err := ValidateName(id); err != nil {
		return o.fail(err)
	}
	return c.exec(ctx, o, defaults.EngineActionTimeout,
		fmt.Sprintf("Container %s started successfully", id),
		"start", id)
}

// Stop stops a running container, waiting up to grace seconds before killing it.
func (c *Controller) Stop(ctx context.Context, id string, grace int) (Outcome, error) {
	return c.withGrace(ctx, ActionStop, "stopped", id, grace)
}

// Restart restarts a container, waiting up to grace seconds for it to stop.
func (c *Controller) Restart(ctx context.Context, id string, grace int) (Outcome, error) {
	return c.withGrace(ctx, ActionRestart, "restarted", id, grace)
}

func (c *Controller) withGrace(ctx context.Context, action, verb, id string, grace int) (Outcome, error) {
	o := Outcome{Action: action, ContainerID: id}
	if err := ValidateName(id); err != nil {
		return o.fail(err)
	}
	if grace < 0 {
		return o.fail(errors.New(errors.ErrCodeInvalidRequest, "timeout must not be negative"))
	}
	timeout := time.Duration(grace)*time.Second + defaults.EngineActionGrace
	return c.exec(ctx, o, timeout,
		fmt.Sprintf("Container %s %s successfully", id, verb),
		action, "-t", strconv.Itoa(grace), id)
}

// RemoveImage force-removes an image by id or reference.
func (c *Controller) RemoveImage(ctx context.Context, ref string) (Outcome, error) {
	o := Outcome{Action: ActionDelete, ResourceType: "image", ImageID: ref}
	if err := ValidateImageRef(ref); err != nil {
		return o.fail(err)
	}
	return c.exec(ctx, o, defaults.EngineActionTimeout,
		fmt.Sprintf("Image %s deleted successfully", ref),
		"rmi", "-f", ref)
}

// RemoveVolume force-removes a volume.
func (c *Controller) RemoveVolume(ctx context.Context, name string) (Outcome, error) {
	o := Outcome{Action: ActionDelete, ResourceType: "volume", VolumeID: name}
	if err := ValidateName(name); err != nil {
		return o.fail(err)
	}
	return c.exec(ctx, o, defaults.EngineActionTimeout,
		fmt.Sprintf("Volume %s deleted successfully", name),
		"volume", "rm", "-f", name)
}

func (c *Controller) exec(ctx context.Context, o Outcome, timeout time.Duration, success string, args ...string) (Outcome, error) {
	argv := append([]string{c.Binary}, args...)
	res := c.Runner.Run(ctx, argv, timeout)
	if !res.Succeeded {
		slog.Warn("engine action failed",
			slog.String("action", o.Action),
			slog.Any("args", args),
			slog.String("error", res.ErrorMessage()))
		o.Status = StatusError
		o.Error = res.ErrorMessage()
		return o, res.Err
	}

	slog.Info("engine action completed", slog.String("action", o.Action), slog.Any("args", args))
	o.Status = StatusSuccess
	o.Message = success
	return o, nil
}

func (o Outcome) fail(err error) (Outcome, error) {
	o.Status = StatusError
	if se, ok := errors.As(err); ok {
		o.Error = se.Message
	} else {
		o.Error = err.Error()
	}
	return o, err
}

// ValidateName checks a container id or volume name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid identifier %q", name), map[string]any{"identifier": name})
	}
	return nil
}

// ValidateImageRef checks an image id, digest or name reference.
func ValidateImageRef(ref string) error {
	if _, err := reference.ParseAnyReference(ref); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid image reference %q", ref), err, map[string]any{"reference": ref})
	}
	return nil
}
