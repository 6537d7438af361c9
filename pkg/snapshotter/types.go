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

package snapshotter

import (
	"context"

	"github.com/infrawatch/infrawatch/pkg/docker"
	"github.com/infrawatch/infrawatch/pkg/header"
)

// Snapshotter produces and emits a snapshot document.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// Collector gathers one engine snapshot.
type Collector interface {
	Collect(ctx context.Context) (*docker.Snapshot, error)
}

// Snapshot is the serialized document: header envelope plus engine state.
type Snapshot struct {
	header.Header   `json:",inline" yaml:",inline"`
	docker.Snapshot `json:",inline" yaml:",inline"`
}

// NewSnapshot wraps snap in an initialized envelope.
func NewSnapshot(snap *docker.Snapshot, version string) *Snapshot {
	s := &Snapshot{}
	if snap != nil {
		s.Snapshot = *snap
	} else {
		s.Snapshot = *docker.NewSnapshot(docker.NewEngineInfo())
	}
	s.Init(header.KindSnapshot, version)
	return s
}

// Count is the number of entries in one snapshot category.
type Count struct {
	Category string `json:"category" yaml:"category"`
	Items    int    `json:"items" yaml:"items"`
}

// Summarize returns per-category counts in document order.
func Summarize(snap *docker.Snapshot) []Count {
	if snap == nil {
		return nil
	}
	return []Count{
		{Category: "containers", Items: len(snap.Containers)},
		{Category: "running containers", Items: running(snap.Containers)},
		{Category: "images", Items: len(snap.Images)},
		{Category: "networks", Items: len(snap.Networks)},
		{Category: "volumes", Items: len(snap.Volumes)},
	}
}

func running(cs []docker.Container) int {
	n := 0
	for _, c := range cs {
		if c.State.Running() {
			n++
		}
	}
	return n
}
