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

// DefaultAPIVersion is reported when the engine does not expose its API version.
const DefaultAPIVersion = "1.52"

// UnknownVersion is reported when the engine does not expose its server version.
const UnknownVersion = "Unknown"

// EngineInfo describes the container engine daemon.
type EngineInfo struct {
	Version            string   `json:"version" yaml:"version"`
	APIVersion         string   `json:"api_version" yaml:"api_version"`
	Arch               string   `json:"arch" yaml:"arch"`
	OSType             string   `json:"os_type" yaml:"os_type"`
	KernelVersion      string   `json:"kernel_version" yaml:"kernel_version"`
	Containers         int64    `json:"containers" yaml:"containers"`
	ContainersRunning  int64    `json:"containers_running" yaml:"containers_running"`
	ContainersPaused   int64    `json:"containers_paused" yaml:"containers_paused"`
	ContainersStopped  int64    `json:"containers_stopped" yaml:"containers_stopped"`
	Images             int64    `json:"images" yaml:"images"`
	Driver             string   `json:"driver" yaml:"driver"`
	StorageDriver      string   `json:"storage_driver" yaml:"storage_driver"`
	LoggingDriver      string   `json:"logging_driver" yaml:"logging_driver"`
	CgroupDriver       string   `json:"cgroup_driver" yaml:"cgroup_driver"`
	NEventsListener    int64    `json:"n_events_listener" yaml:"n_events_listener"`
	NFd                int64    `json:"n_fd" yaml:"n_fd"`
	NGoroutines        int64    `json:"n_goroutines" yaml:"n_goroutines"`
	MemTotal           int64    `json:"mem_total" yaml:"mem_total"`
	NCPU               int64    `json:"n_cpu" yaml:"n_cpu"`
	OperatingSystem    string   `json:"operating_system" yaml:"operating_system"`
	Labels             []string `json:"labels" yaml:"labels"`
	ServerVersion      string   `json:"server_version" yaml:"server_version"`
	ClusterStore       string   `json:"cluster_store" yaml:"cluster_store"`
	ClusterAdvertise   string   `json:"cluster_advertise" yaml:"cluster_advertise"`
	DefaultRuntime     string   `json:"default_runtime" yaml:"default_runtime"`
	LiveRestoreEnabled bool     `json:"live_restore_enabled" yaml:"live_restore_enabled"`
	Isolation          string   `json:"isolation" yaml:"isolation"`
	InitBinary         string   `json:"init_binary" yaml:"init_binary"`
	ProductLicense     string   `json:"product_license" yaml:"product_license"`
	Warnings           []string `json:"warnings" yaml:"warnings"`
}

// NewEngineInfo returns an EngineInfo holding the documented defaults.
func NewEngineInfo() EngineInfo {
	return EngineInfo{
		Version:    UnknownVersion,
		APIVersion: DefaultAPIVersion,
		Labels:     []string{},
		Warnings:   []string{},
	}
}

// PortMapping is one published container port.
// PublicPort 0 means the port is exposed but not mapped to the host.
type PortMapping struct {
	IP          string `json:"IP" yaml:"IP"`
	PrivatePort int    `json:"PrivatePort" yaml:"PrivatePort"`
	PublicPort  int    `json:"PublicPort" yaml:"PublicPort"`
	Type        string `json:"Type" yaml:"Type"`
}

// Container is a single container as listed by the engine.
type Container struct {
	ID              string            `json:"id" yaml:"id"`
	Names           []string          `json:"names" yaml:"names"`
	Image           string            `json:"image" yaml:"image"`
	ImageID         string            `json:"image_id" yaml:"image_id"`
	Command         string            `json:"command" yaml:"command"`
	Created         int64             `json:"created" yaml:"created"`
	Status          string            `json:"status" yaml:"status"`
	State           State             `json:"state" yaml:"state"`
	Ports           []PortMapping     `json:"ports" yaml:"ports"`
	Labels          map[string]string `json:"labels" yaml:"labels"`
	SizeRw          int64             `json:"size_rw" yaml:"size_rw"`
	SizeRootFs      int64             `json:"size_root_fs" yaml:"size_root_fs"`
	HostConfig      map[string]any    `json:"host_config" yaml:"host_config"`
	NetworkSettings map[string]any    `json:"network_settings" yaml:"network_settings"`
	Mounts          []any             `json:"mounts" yaml:"mounts"`
}

// NewContainer returns a Container with every sequence and mapping initialized.
func NewContainer() Container {
	return Container{
		Names:           []string{},
		Ports:           []PortMapping{},
		Labels:          map[string]string{},
		HostConfig:      map[string]any{},
		NetworkSettings: map[string]any{},
		Mounts:          []any{},
	}
}

// Image is a single image as listed by the engine.
type Image struct {
	ID          string            `json:"id" yaml:"id"`
	RepoTags    []string          `json:"repo_tags" yaml:"repo_tags"`
	RepoDigests []string          `json:"repo_digests" yaml:"repo_digests"`
	ParentID    *string           `json:"parent_id" yaml:"parent_id"`
	Created     int64             `json:"created" yaml:"created"`
	Size        int64             `json:"size" yaml:"size"`
	ContentSize int64             `json:"content_size" yaml:"content_size"`
	DiskUsage   int64             `json:"disk_usage" yaml:"disk_usage"`
	SharedSize  int64             `json:"shared_size" yaml:"shared_size"`
	VirtualSize int64             `json:"virtual_size" yaml:"virtual_size"`
	Labels      map[string]string `json:"labels" yaml:"labels"`
	Containers  int64             `json:"containers" yaml:"containers"`
	Version     string            `json:"version,omitempty" yaml:"version,omitempty"`
	Source      string            `json:"source,omitempty" yaml:"source,omitempty"`
}

// NewImage returns an Image with every sequence and mapping initialized.
func NewImage() Image {
	return Image{
		RepoTags:    []string{},
		RepoDigests: []string{},
		Labels:      map[string]string{},
	}
}

// NetworkSummary is a shallow network descriptor.
type NetworkSummary struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	Created    string            `json:"created" yaml:"created"`
	Scope      string            `json:"scope" yaml:"scope"`
	Driver     string            `json:"driver" yaml:"driver"`
	EnableIPv6 bool              `json:"enable_ipv6" yaml:"enable_ipv6"`
	IPAM       map[string]any    `json:"ipam" yaml:"ipam"`
	Internal   bool              `json:"internal" yaml:"internal"`
	Attachable bool              `json:"attachable" yaml:"attachable"`
	Ingress    bool              `json:"ingress" yaml:"ingress"`
	ConfigFrom *string           `json:"config_from" yaml:"config_from"`
	ConfigOnly bool              `json:"config_only" yaml:"config_only"`
	Containers map[string]any    `json:"containers" yaml:"containers"`
	Options    map[string]string `json:"options" yaml:"options"`
	Labels     map[string]string `json:"labels" yaml:"labels"`
}

// NewNetworkSummary returns a NetworkSummary with every mapping initialized.
func NewNetworkSummary() NetworkSummary {
	return NetworkSummary{
		IPAM:       map[string]any{},
		Containers: map[string]any{},
		Options:    map[string]string{},
		Labels:     map[string]string{},
	}
}

// VolumeSummary is a shallow volume descriptor.
type VolumeSummary struct {
	Name       string            `json:"name" yaml:"name"`
	Driver     string            `json:"driver" yaml:"driver"`
	Mountpoint string            `json:"mountpoint" yaml:"mountpoint"`
	CreatedAt  string            `json:"created_at" yaml:"created_at"`
	Status     map[string]any    `json:"status" yaml:"status"`
	Labels     map[string]string `json:"labels" yaml:"labels"`
	Scope      string            `json:"scope" yaml:"scope"`
	Options    map[string]string `json:"options" yaml:"options"`
	UsageData  map[string]any    `json:"usage_data" yaml:"usage_data"`
}

// NewVolumeSummary returns a VolumeSummary with every mapping except UsageData initialized.
func NewVolumeSummary() VolumeSummary {
	return VolumeSummary{
		Status:  map[string]any{},
		Labels:  map[string]string{},
		Options: map[string]string{},
	}
}

// Snapshot is the aggregate result of one collection.
type Snapshot struct {
	Engine         EngineInfo       `json:"engine" yaml:"engine"`
	Containers     []Container      `json:"containers" yaml:"containers"`
	ContainerStats []map[string]any `json:"container_stats" yaml:"container_stats"`
	Images         []Image          `json:"images" yaml:"images"`
	Networks       []NetworkSummary `json:"networks" yaml:"networks"`
	Volumes        []VolumeSummary  `json:"volumes" yaml:"volumes"`
	Events         []map[string]any `json:"events" yaml:"events"`
}

// NewSnapshot returns an empty Snapshot whose sequences are all non-nil.
func NewSnapshot(engine EngineInfo) *Snapshot {
	return &Snapshot{
		Engine:         engine,
		Containers:     []Container{},
		ContainerStats: []map[string]any{},
		Images:         []Image{},
		Networks:       []NetworkSummary{},
		Volumes:        []VolumeSummary{},
		Events:         []map[string]any{},
	}
}
