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

package normalizer

import (
	"strings"
	"unicode/utf8"

	"github.com/infrawatch/infrawatch/pkg/docker"
	"github.com/infrawatch/infrawatch/pkg/errors"
	"github.com/infrawatch/infrawatch/pkg/parser"
)

const (
	maxCommandLength = 200
	truncatedCommand = 197
)

// Container normalizes one record of `docker ps -a --format {{json .}}`.
// Podman style records (names and command as sequences, numeric creation
// time, structured ports) are accepted too. The only error is a record
// without a string id, which is not a container at all.
func Container(r Record) (docker.Container, error) {
	c := docker.NewContainer()

	raw, ok := r.Value("ID", "Id")
	if !ok || ShapeOf(raw) != ShapeScalar {
		return c, errors.New(errors.ErrCodeDecodeFailure, "record has no container id")
	}
	if _, isString := raw.(string); !isString {
		return c, errors.New(errors.ErrCodeDecodeFailure, "container id is not a string")
	}

	c.ID = shortID(raw.(string))
	c.Names = containerNames(r)
	c.Image = r.String("Image")
	c.ImageID = shortID(r.String("ImageID"))
	c.Command = containerCommand(r)
	c.Created = containerCreated(r)
	c.Status = r.String("Status")
	c.State = docker.NewState(c.Status)
	c.Ports = containerPorts(r)

	return c, nil
}

func containerNames(r Record) []string {
	key := "Names"
	if _, ok := r.Value(key); !ok {
		key = "Name"
	}
	v, ok := r.Value(key)
	if !ok {
		return []string{}
	}

	names := []string{}
	if ShapeOf(v) == ShapeSequence {
		for _, n := range r.Strings(key) {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		return names
	}

	if s, ok := toString(v); ok {
		if s = strings.TrimSpace(s); s != "" {
			names = append(names, s)
		}
	}
	return names
}

func containerCommand(r Record) string {
	v, ok := r.Value("Command")
	if !ok {
		return ""
	}

	var cmd string
	switch ShapeOf(v) {
	case ShapeScalar:
		cmd, _ = toString(v)
	case ShapeSequence:
		cmd = strings.Join(r.Strings("Command"), " ")
	default:
		return ""
	}

	if len(cmd) >= 2 && strings.HasPrefix(cmd, `"`) && strings.HasSuffix(cmd, `"`) {
		cmd = cmd[1 : len(cmd)-1]
	}
	if utf8.RuneCountInString(cmd) > maxCommandLength {
		cmd = string([]rune(cmd)[:truncatedCommand]) + "..."
	}
	return cmd
}

func containerCreated(r Record) int64 {
	if s := r.String("CreatedAt"); s != "" {
		if ts := parser.Date(s); ts > 0 {
			return ts
		}
	}
	v, ok := r.Value("Created")
	if !ok {
		return 0
	}
	if s, isString := v.(string); isString {
		return parser.Date(s)
	}
	return toInt64(v)
}

func containerPorts(r Record) []docker.PortMapping {
	v, ok := r.Value("Ports")
	if !ok {
		return []docker.PortMapping{}
	}

	if s, isString := v.(string); isString {
		return parser.Ports(s)
	}

	ports := []docker.PortMapping{}
	if ShapeOf(v) != ShapeSequence {
		return ports
	}
	for _, item := range items(v) {
		p := Record(mapping(item))
		if p == nil {
			continue
		}
		private := p.Int("PrivatePort", "container_port")
		if private == 0 {
			continue
		}
		ip := p.String("IP", "host_ip")
		if ip == "" || ip == "::" {
			ip = "0.0.0.0"
		}
		proto := p.String("Type", "protocol")
		if proto == "" {
			proto = "tcp"
		}
		ports = append(ports, docker.PortMapping{
			IP:          ip,
			PrivatePort: int(private),
			PublicPort:  int(p.Int("PublicPort", "host_port")),
			Type:        proto,
		})
	}
	return ports
}
