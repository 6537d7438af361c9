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
	"maps"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/infrawatch/infrawatch/pkg/parser"
)

// Enrichment keys merged into an image list record by Enrich.
const (
	KeyContentSize = "_content_size_bytes"
	KeySize        = "_size_bytes"
	KeyVirtualSize = "_virtual_size"
	KeyDiskUsage   = "_disk_usage_bytes"
	KeyCreatedTS   = "_created_ts"
	KeyVersion     = "_version"
	KeySource      = "_source"
)

// graphDriverUsageKeys are the GraphDriver.Data entries that may carry an
// on-disk footprint, in order of preference.
var graphDriverUsageKeys = []string{"Size", "DiskSize", "UpperDirSize", "LowerDirSize", "SizeRoot", "Usage"}

// Enrich returns a copy of the image list record with the fields of its
// `docker image inspect` detail merged in. The list record is not modified.
// A nil detail returns an unmodified copy.
func Enrich(list, detail Record) Record {
	out := make(Record, len(list)+7)
	maps.Copy(out, list)
	if detail == nil {
		return out
	}

	out[KeyContentSize] = detail.Int("Size")
	out[KeyVirtualSize] = detail.Int("VirtualSize")
	out[KeyDiskUsage] = DiskUsage(detail)

	var created int64
	if s := detail.String("Created"); s != "" {
		created = parser.Date(s)
	}
	out[KeyCreatedTS] = created

	labels := detail.Mapping("Config").Mapping("Labels")
	if v := labels.String(ocispec.AnnotationVersion); v != "" {
		out[KeyVersion] = v
	}
	if v := labels.String(ocispec.AnnotationSource); v != "" {
		out[KeySource] = v
	}

	return out
}

// DiskUsage returns the first positive usage counter found in the
// GraphDriver.Data section of an inspect record, or 0.
func DiskUsage(detail Record) int64 {
	data := detail.Mapping("GraphDriver").Mapping("Data")
	if data == nil {
		return 0
	}
	for _, key := range graphDriverUsageKeys {
		v, ok := data.Value(key)
		if !ok {
			continue
		}
		if s, isString := v.(string); isString && !isDigits(s) {
			continue
		}
		if n := toInt64(v); n > 0 {
			return n
		}
	}
	return 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
