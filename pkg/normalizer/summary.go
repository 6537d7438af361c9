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
	"github.com/infrawatch/infrawatch/pkg/defaults"
	"github.com/infrawatch/infrawatch/pkg/docker"
)

// Networks normalizes `docker network ls --format {{json .}}` records,
// keeping the first entries in listing order.
func Networks(records []Record) []docker.NetworkSummary {
	out := make([]docker.NetworkSummary, 0, min(len(records), defaults.MaxNetworks))
	for _, r := range records {
		if len(out) == defaults.MaxNetworks {
			break
		}
		n := docker.NewNetworkSummary()
		n.ID = shortID(r.String("ID", "Id"))
		n.Name = r.String("Name")
		n.Driver = r.String("Driver")
		out = append(out, n)
	}
	return out
}

// Volumes normalizes `docker volume ls --format {{json .}}` records,
// keeping the first entries in listing order.
func Volumes(records []Record) []docker.VolumeSummary {
	out := make([]docker.VolumeSummary, 0, min(len(records), defaults.MaxVolumes))
	for _, r := range records {
		if len(out) == defaults.MaxVolumes {
			break
		}
		v := docker.NewVolumeSummary()
		v.Name = r.String("Name")
		v.Driver = r.String("Driver")
		v.Mountpoint = r.String("Mountpoint")
		out = append(out, v)
	}
	return out
}
