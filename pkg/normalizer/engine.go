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

import "github.com/infrawatch/infrawatch/pkg/docker"

// EngineInfo normalizes the object printed by `docker info --format {{json .}}`.
// It never fails; every field falls back to its default.
func EngineInfo(r Record) docker.EngineInfo {
	info := docker.NewEngineInfo()

	info.Version = r.StringOr("ServerVersion", docker.UnknownVersion)
	info.APIVersion = r.StringOr("ApiVersion", docker.DefaultAPIVersion)
	info.Arch = r.String("Architecture")
	info.OSType = r.String("OSType")
	info.KernelVersion = r.String("KernelVersion")
	info.Containers = r.Int("Containers")
	info.ContainersRunning = r.Int("ContainersRunning")
	info.ContainersPaused = r.Int("ContainersPaused")
	info.ContainersStopped = r.Int("ContainersStopped")
	info.Images = r.Int("Images")
	info.Driver = r.String("Driver")
	info.StorageDriver = r.String("StorageDriver")
	info.LoggingDriver = r.String("LoggingDriver")
	info.CgroupDriver = r.String("CgroupDriver")
	info.NEventsListener = r.Int("NEventsListener")
	info.NFd = r.Int("NFd")
	info.NGoroutines = r.Int("NGoroutines")
	info.MemTotal = r.Int("MemTotal")
	info.NCPU = r.Int("NCPU")
	info.OperatingSystem = r.String("OperatingSystem")
	info.Labels = r.Strings("Labels")
	info.ServerVersion = r.String("ServerVersion")
	info.ClusterStore = r.String("ClusterStore")
	info.ClusterAdvertise = r.String("ClusterAdvertise")
	info.DefaultRuntime = r.String("DefaultRuntime")
	info.LiveRestoreEnabled = r.Bool("LiveRestoreEnabled")
	info.Isolation = r.String("Isolation")
	info.InitBinary = r.String("InitBinary")
	info.ProductLicense = r.String("ProductLicense")
	info.Warnings = r.Strings("Warnings")

	return info
}
