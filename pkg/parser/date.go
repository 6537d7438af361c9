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
	"strings"
	"time"
)

// dateLayouts are tried in order; the first successful parse wins.
var dateLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05Z",
	time.RFC3339Nano,
}

// Date returns the Unix seconds of an engine timestamp, or 0 when the
// text matches none of the known layouts.
//
// Only the first three whitespace separated tokens are considered, which
// drops the duplicated zone name some platforms append
// ("2025-12-19 16:42:16 +0300 +03"). Layouts without a zone are read as UTC.
func Date(raw string) int64 {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0
	}
	if len(fields) > 3 {
		fields = fields[:3]
	}
	s := strings.Join(fields, " ")

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if ts := t.Unix(); ts > 0 {
			return ts
		}
		return 0
	}
	return 0
}
