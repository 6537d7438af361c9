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

package parser

import (
	"strconv"
	"strings"

	"github.com/infrawatch/infrawatch/pkg/docker"
)

const (
	defaultHostIP   = "0.0.0.0"
	defaultProtocol = "tcp"
)

// Ports parses the port column of `docker ps`, for example
// "0.0.0.0:8081->80/tcp, :::8081->80/tcp". Tokens without "->" (exposed
// but unpublished ports) and tokens with non-numeric ports are skipped.
func Ports(raw string) []docker.PortMapping {
	ports := []docker.PortMapping{}
	if strings.TrimSpace(raw) == "" {
		return ports
	}

	for _, token := range strings.Split(raw, ", ") {
		hostPart, containerPart, ok := strings.Cut(strings.TrimSpace(token), "->")
		if !ok {
			continue
		}

		hostIP, hostPort := defaultHostIP, hostPart
		if i := strings.LastIndex(hostPart, ":"); i >= 0 {
			hostIP, hostPort = normalizeHostIP(hostPart[:i]), hostPart[i+1:]
		}

		containerPort, protocol, found := strings.Cut(containerPart, "/")
		if !found || protocol == "" {
			protocol = defaultProtocol
		}

		private, err := strconv.Atoi(containerPort)
		if err != nil {
			continue
		}
		public := 0
		if hostPort != "" {
			if public, err = strconv.Atoi(hostPort); err != nil {
				continue
			}
		}

		ports = append(ports, docker.PortMapping{
			IP:          hostIP,
			PrivatePort: private,
			PublicPort:  public,
			Type:        protocol,
		})
	}
	return ports
}

// normalizeHostIP maps the empty and IPv6 wildcard host prefixes to 0.0.0.0.
func normalizeHostIP(ip string) string {
	ip = strings.TrimSuffix(strings.TrimPrefix(ip, "["), "]")
	switch ip {
	case "", "::":
		return defaultHostIP
	default:
		return ip
	}
}
