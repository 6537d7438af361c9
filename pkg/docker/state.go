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

package docker

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var pidPattern = regexp.MustCompile(`\(PID (\d+)\)`)

// State is the container lifecycle state. It serializes as the raw status
// text reported by the engine; PID is a side annotation extracted from a
// "(PID n)" marker and is not part of the serialized form.
type State struct {
	Status string
	PID    int
}

// NewState builds a State from an engine status string.
func NewState(status string) State {
	s := State{Status: status}
	if m := pidPattern.FindStringSubmatch(status); m != nil {
		if pid, err := strconv.Atoi(m[1]); err == nil {
			s.PID = pid
		}
	}
	return s
}

// Running reports whether the status describes a running container.
func (s State) Running() bool {
	lower := strings.ToLower(s.Status)
	return strings.HasPrefix(lower, "up") || strings.HasPrefix(lower, "running")
}

// String returns the raw status.
func (s State) String() string {
	return s.Status
}

// MarshalJSON implements json.Marshaler.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Status)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *State) UnmarshalJSON(data []byte) error {
	var status string
	if err := json.Unmarshal(data, &status); err != nil {
		return err
	}
	*s = NewState(status)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s State) MarshalYAML() (any, error) {
	return s.Status, nil
}
