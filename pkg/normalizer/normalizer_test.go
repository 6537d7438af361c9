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
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrawatch/infrawatch/pkg/docker"
)

func decode(t *testing.T, s string) Record {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var r Record
	require.NoError(t, dec.Decode(&r))
	return r
}

func TestEngineInfo(t *testing.T) {
	r := decode(t, `{
		"ServerVersion": "27.3.1",
		"Architecture": "x86_64",
		"OSType": "linux",
		"Containers": 5,
		"ContainersRunning": "3",
		"ContainersPaused": null,
		"ContainersStopped": "two",
		"MemTotal": "16652713984",
		"NCPU": 8,
		"Labels": {"b": "second", "a": "first"},
		"Warnings": "WARNING: No swap limit support",
		"LiveRestoreEnabled": true,
		"ClusterStore": null
	}`)

	info := EngineInfo(r)

	assert.Equal(t, "27.3.1", info.Version)
	assert.Equal(t, "27.3.1", info.ServerVersion)
	assert.Equal(t, docker.DefaultAPIVersion, info.APIVersion)
	assert.Equal(t, "x86_64", info.Arch)
	assert.EqualValues(t, 5, info.Containers)
	assert.EqualValues(t, 3, info.ContainersRunning)
	assert.EqualValues(t, 0, info.ContainersPaused)
	assert.EqualValues(t, 0, info.ContainersStopped)
	assert.EqualValues(t, 16652713984, info.MemTotal)
	assert.EqualValues(t, 8, info.NCPU)
	assert.Equal(t, []string{"first", "second"}, info.Labels)
	assert.Equal(t, []string{"WARNING: No swap limit support"}, info.Warnings)
	assert.True(t, info.LiveRestoreEnabled)
	assert.Empty(t, info.ClusterStore)
}

func TestEngineInfoEmpty(t *testing.T) {
	info := EngineInfo(Record{})

	assert.Equal(t, docker.UnknownVersion, info.Version)
	assert.Equal(t, docker.DefaultAPIVersion, info.APIVersion)
	assert.Equal(t, "", info.ServerVersion)
	assert.NotNil(t, info.Labels)
	assert.NotNil(t, info.Warnings)
	assert.Empty(t, info.Warnings)
}

func TestContainer(t *testing.T) {
	r := decode(t, `{
		"ID": "sha256:4f1d2c3b4a5e6f7a8b9c0d1e2f3a4b5c",
		"Names": "web",
		"Image": "nginx:1.27",
		"ImageID": "sha256:aabbccddeeff00112233",
		"Command": "\"/docker-entrypoint.sh nginx -g 'daemon off;'\"",
		"CreatedAt": "2025-12-19 16:42:16 +0300 +03",
		"Status": "Up 3 hours (PID 4242)",
		"Ports": "0.0.0.0:8081->80/tcp, :::8081->80/tcp"
	}`)

	c, err := Container(r)
	require.NoError(t, err)

	assert.Equal(t, "4f1d2c3b4a5e", c.ID)
	assert.Equal(t, []string{"web"}, c.Names)
	assert.Equal(t, "nginx:1.27", c.Image)
	assert.Equal(t, "aabbccddeeff", c.ImageID)
	assert.Equal(t, "/docker-entrypoint.sh nginx -g 'daemon off;'", c.Command)
	assert.Equal(t, time.Date(2025, 12, 19, 13, 42, 16, 0, time.UTC).Unix(), c.Created)
	assert.Equal(t, "Up 3 hours (PID 4242)", c.Status)
	assert.Equal(t, 4242, c.State.PID)
	assert.Len(t, c.Ports, 2)
	assert.NotNil(t, c.Labels)
	assert.NotNil(t, c.Mounts)
}

func TestContainerCommand(t *testing.T) {
	long := strings.Repeat("x", 250)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"quoted", `"sleep infinity"`, "sleep infinity"},
		{"unquoted", "sleep infinity", "sleep infinity"},
		{"argv", []any{"sleep", "infinity"}, "sleep infinity"},
		{"exactly limit", strings.Repeat("y", 200), strings.Repeat("y", 200)},
		{"truncated", long, strings.Repeat("x", 197) + "..."},
		{"mapping", map[string]any{"a": 1}, ""},
		{"absent", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Container(Record{"ID": "abc", "Command": tt.in})
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Command)
		})
	}
}

func TestContainerPodmanShape(t *testing.T) {
	r := decode(t, `{
		"Id": "8e2f6a1b3c4d5e6f7a8b9c0d",
		"Names": ["db", " "],
		"Command": ["postgres", "-c", "fsync=off"],
		"Created": 1734615736,
		"Status": "Exited (0) 2 hours ago",
		"Ports": [{"host_ip": "", "container_port": 5432, "host_port": 15432, "protocol": "tcp"}]
	}`)

	c, err := Container(r)
	require.NoError(t, err)

	assert.Equal(t, "8e2f6a1b3c4d", c.ID)
	assert.Equal(t, []string{"db"}, c.Names)
	assert.Equal(t, "postgres -c fsync=off", c.Command)
	assert.EqualValues(t, 1734615736, c.Created)
	assert.Equal(t, []docker.PortMapping{{IP: "0.0.0.0", PrivatePort: 5432, PublicPort: 15432, Type: "tcp"}}, c.Ports)
	assert.False(t, c.State.Running())
}

func TestContainerRejectsNonContainers(t *testing.T) {
	for name, r := range map[string]Record{
		"no id":      {"Names": "orphan"},
		"numeric id": {"ID": json.Number("12")},
		"mapping id": {"ID": map[string]any{}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Container(r)
			assert.Error(t, err)
		})
	}
}

func TestContainerInvariants(t *testing.T) {
	records := []Record{
		{"ID": "sha256:" + strings.Repeat("f", 64), "CreatedAt": "garbage"},
		{"ID": strings.Repeat("a", 64), "CreatedAt": "1960-01-01T00:00:00Z"},
		{"ID": "", "Created": json.Number("-5")},
		{"Id": "short", "Created": "2025-12-19T16:42:16Z"},
		{"ID": "abc", "Created": "not a date", "Ports": 42},
	}

	for i, r := range records {
		c, err := Container(r)
		require.NoError(t, err, "record %d", i)
		assert.LessOrEqual(t, len(c.ID), 12, "record %d", i)
		assert.LessOrEqual(t, len(c.ImageID), 12, "record %d", i)
		assert.GreaterOrEqual(t, c.Created, int64(0), "record %d", i)
		assert.NotNil(t, c.Ports, "record %d", i)
	}
}

func TestContainerCreatedFallback(t *testing.T) {
	want := time.Date(2025, 12, 19, 16, 42, 16, 0, time.UTC).Unix()

	tests := []struct {
		name string
		in   Record
		want int64
	}{
		{"created at wins", Record{"ID": "a", "CreatedAt": "2025-12-19 16:42:16 +0000 UTC", "Created": int64(1)}, want},
		{"unparsable created at uses created string", Record{"ID": "a", "CreatedAt": "yesterday", "Created": "2025-12-19T16:42:16Z"}, want},
		{"unparsable created at uses created epoch", Record{"ID": "a", "CreatedAt": "yesterday", "Created": want}, want},
		{"nothing usable", Record{"ID": "a", "CreatedAt": "yesterday"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Container(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Created)
		})
	}
}

func TestImage(t *testing.T) {
	tests := []struct {
		name string
		in   Record
		want func(t *testing.T, img docker.Image)
	}{
		{
			name: "list only",
			in: Record{
				"ID":         "sha256:1234567890abcdef1234",
				"Repository": "nginx",
				"Tag":        "1.27",
				"CreatedAt":  "2025-12-19 16:42:16 +0000 UTC",
				"Size":       "221MB",
				"Containers": "N/A",
			},
			want: func(t *testing.T, img docker.Image) {
				assert.Equal(t, "1234567890ab", img.ID)
				assert.Equal(t, []string{"nginx:1.27"}, img.RepoTags)
				assert.Equal(t, time.Date(2025, 12, 19, 16, 42, 16, 0, time.UTC).Unix(), img.Created)
				assert.EqualValues(t, 221*1024*1024, img.DiskUsage)
				assert.Zero(t, img.ContentSize)
				assert.Zero(t, img.Containers)
				assert.Nil(t, img.ParentID)
				assert.Empty(t, img.RepoDigests)
			},
		},
		{
			name: "dangling tag",
			in:   Record{"ID": "abc", "Repository": "<none>", "Tag": "<none>"},
			want: func(t *testing.T, img docker.Image) {
				assert.Empty(t, img.RepoTags)
			},
		},
		{
			name: "bare repository",
			in:   Record{"ImageID": "def", "Repository": "busybox"},
			want: func(t *testing.T, img docker.Image) {
				assert.Equal(t, "def", img.ID)
				assert.Equal(t, []string{"busybox"}, img.RepoTags)
			},
		},
		{
			name: "id preference",
			in:   Record{"ID": "first", "ImageID": "second", "Id": "third"},
			want: func(t *testing.T, img docker.Image) {
				assert.Equal(t, "first", img.ID)
			},
		},
		{
			name: "enriched",
			in: Record{
				"ID":           "abc",
				"Size":         "1GB",
				"VirtualSize":  "2GB",
				KeyContentSize: int64(1000),
				KeyVirtualSize: int64(3000),
				KeyDiskUsage:   int64(2000),
				KeyCreatedTS:   int64(1734615736),
				KeyVersion:     "1.27.3",
			},
			want: func(t *testing.T, img docker.Image) {
				assert.EqualValues(t, 1000, img.ContentSize)
				assert.EqualValues(t, 1000, img.Size)
				assert.EqualValues(t, 3000, img.VirtualSize)
				assert.EqualValues(t, 2000, img.DiskUsage)
				assert.EqualValues(t, 1734615736, img.Created)
				assert.Equal(t, "1.27.3", img.Version)
			},
		},
		{
			name: "detail size without graph driver counters",
			in: Enrich(
				Record{"ID": "abc", "Size": "221MB"},
				decode(t, `{"Id":"sha256:abc","Size":187654321,"GraphDriver":{"Name":"overlay2","Data":{"UpperDir":"/var/lib/docker/overlay2/x/diff"}}}`),
			),
			want: func(t *testing.T, img docker.Image) {
				assert.EqualValues(t, 187654321, img.ContentSize)
				assert.EqualValues(t, 187654321, img.DiskUsage)
			},
		},
		{
			name: "human virtual size without enrichment",
			in:   Record{"ID": "abc", "VirtualSize": "12kB"},
			want: func(t *testing.T, img docker.Image) {
				assert.EqualValues(t, 12*1024, img.VirtualSize)
			},
		},
		{
			name: "inspect style repo tags",
			in:   Record{"Id": "sha256:abc", "RepoTags": []any{"redis:7", "<none>:<none>"}},
			want: func(t *testing.T, img docker.Image) {
				assert.Equal(t, []string{"redis:7"}, img.RepoTags)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, Image(tt.in))
		})
	}
}

func TestEnrich(t *testing.T) {
	list := Record{"ID": "abc", "Size": "221MB"}
	detail := decode(t, `{
		"Id": "sha256:abc",
		"Created": "2025-12-19T16:42:16.123456789Z",
		"Size": 231735296,
		"GraphDriver": {"Data": {"Size": "n/a", "DiskSize": 0, "UpperDirSize": "4096", "Usage": 99}},
		"Config": {"Labels": {
			"org.opencontainers.image.version": "1.27.3",
			"org.opencontainers.image.source": "https://github.com/nginx/docker-nginx"
		}}
	}`)

	out := Enrich(list, detail)

	assert.NotContains(t, list, KeyContentSize, "list record is not modified")
	assert.EqualValues(t, 231735296, out[KeyContentSize])
	assert.EqualValues(t, 0, out[KeyVirtualSize])
	assert.EqualValues(t, 4096, out[KeyDiskUsage])
	assert.EqualValues(t, time.Date(2025, 12, 19, 16, 42, 16, 0, time.UTC).Unix(), out[KeyCreatedTS])
	assert.Equal(t, "1.27.3", out[KeyVersion])
	assert.Equal(t, "https://github.com/nginx/docker-nginx", out[KeySource])

	img := Image(out)
	assert.EqualValues(t, 231735296, img.ContentSize)
	assert.EqualValues(t, 4096, img.DiskUsage)
	assert.Equal(t, "https://github.com/nginx/docker-nginx", img.Source)
}

func TestEnrichWithoutDetail(t *testing.T) {
	list := Record{"ID": "abc", "Size": "1KB"}
	out := Enrich(list, nil)

	assert.Equal(t, list, out)
	assert.EqualValues(t, 1024, Image(out).DiskUsage)
}

func TestDiskUsageFallsBackToListSize(t *testing.T) {
	out := Enrich(Record{"ID": "abc", "Size": "10MB"}, Record{"GraphDriver": Record{"Data": Record{}}})
	assert.EqualValues(t, 10*1024*1024, Image(out).DiskUsage)
}

func TestNetworksAndVolumes(t *testing.T) {
	var nets, vols []Record
	for i := range 15 {
		nets = append(nets, Record{"ID": strings.Repeat("n", 20), "Name": string(rune('a' + i)), "Driver": "bridge"})
		vols = append(vols, Record{"Name": string(rune('a' + i)), "Driver": "local", "Mountpoint": "/var/lib/docker/volumes"})
	}

	networks := Networks(nets)
	require.Len(t, networks, 10)
	assert.Equal(t, "a", networks[0].Name)
	assert.Equal(t, "j", networks[9].Name)
	assert.Len(t, networks[0].ID, 12)
	assert.Nil(t, networks[0].ConfigFrom)

	volumes := Volumes(vols)
	require.Len(t, volumes, 10)
	assert.Equal(t, "a", volumes[0].Name)
	assert.Equal(t, "/var/lib/docker/volumes", volumes[0].Mountpoint)

	assert.NotNil(t, Networks(nil))
	assert.NotNil(t, Volumes(nil))
}
