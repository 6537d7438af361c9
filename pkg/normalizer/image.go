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

	"github.com/infrawatch/infrawatch/pkg/docker"
	"github.com/infrawatch/infrawatch/pkg/parser"
)

const noneTag = "<none>"

// Image normalizes one record of `docker images --format {{json .}}`,
// optionally merged with inspect detail by Enrich.
func Image(r Record) docker.Image {
	img := docker.NewImage()

	img.ID = shortID(r.String("ID", "ImageID", "Id"))
	img.RepoTags = imageTags(r)
	img.Created = imageCreated(r)

	img.ContentSize = r.Int(KeyContentSize, KeySize)
	img.Size = img.ContentSize

	img.VirtualSize = r.Int(KeyVirtualSize)
	if img.VirtualSize == 0 {
		if v, ok := r.Value("VirtualSize"); ok {
			img.VirtualSize = parser.Size(v)
		}
	}

	img.DiskUsage = r.Int(KeyDiskUsage)
	if img.DiskUsage == 0 {
		img.DiskUsage = img.ContentSize
	}
	if img.DiskUsage == 0 {
		for _, key := range []string{"Size", "SizeHuman", "SIZE", "size"} {
			if n := parser.Size(r[key]); n > 0 {
				img.DiskUsage = n
				break
			}
		}
	}

	img.Containers = r.Int("Containers")
	img.Version = r.String(KeyVersion)
	img.Source = r.String(KeySource)

	return img
}

// imageTags builds repo:tag references. A "<none>" tag contributes nothing
// and a missing tag yields the bare repository.
func imageTags(r Record) []string {
	tags := []string{}

	if _, ok := r.Value("RepoTags"); ok {
		for _, t := range r.Strings("RepoTags") {
			if t != "" && t != noneTag+":"+noneTag {
				tags = append(tags, t)
			}
		}
		return tags
	}

	repo := strings.TrimSpace(r.String("Repository"))
	tag := strings.TrimSpace(r.String("Tag"))
	switch {
	case repo == "":
	case tag == "":
		tags = append(tags, repo)
	case tag != noneTag:
		tags = append(tags, repo+":"+tag)
	}
	return tags
}

func imageCreated(r Record) int64 {
	if ts := r.Int(KeyCreatedTS); ts > 0 {
		return ts
	}
	for _, key := range []string{"CreatedAt", "Created", "CreatedSince"} {
		v, ok := r.Value(key)
		if !ok {
			continue
		}
		if s, isString := v.(string); isString {
			if s == "" {
				continue
			}
			return parser.Date(s)
		}
		return toInt64(v)
	}
	return 0
}
