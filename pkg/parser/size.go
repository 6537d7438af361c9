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
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/docker/go-units"
)

var sizeUnits = map[string]float64{
	"B":  1,
	"K":  units.KiB,
	"KB": units.KiB,
	"M":  units.MiB,
	"MB": units.MiB,
	"G":  units.GiB,
	"GB": units.GiB,
	"T":  units.TiB,
	"TB": units.TiB,
}

// Size returns a byte count from a number, a digit string or a human
// readable size such as "221MB", "232.1MB", "12kB" or "1.5 GiB".
// Multipliers are binary; "KiB" and "KB" are equivalent. Anything that
// cannot be read yields 0.
func Size(raw any) int64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case int:
		return clamp(float64(v))
	case int32:
		return clamp(float64(v))
	case int64:
		if v < 0 {
			return 0
		}
		return v
	case uint64:
		return clamp(float64(v))
	case float32:
		return clamp(float64(v))
	case float64:
		return clamp(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return Size(n)
		}
		return Size(v.String())
	case string:
		return sizeFromString(v)
	default:
		return 0
	}
}

func sizeFromString(raw string) int64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0
	}

	if isDigits(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0
		}
		return n
	}

	if n, err := units.RAMInBytes(s); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}

	return scanSize(s)
}

// scanSize reads a leading magnitude and treats the rest as a unit.
// Unknown units count as bytes.
func scanSize(s string) int64 {
	s = strings.ToUpper(s)
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}

	num := s[:i]
	if num == "" {
		num = "0"
	}
	magnitude, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}

	unit := strings.ReplaceAll(strings.TrimSpace(s[i:]), "IB", "")
	multiplier, ok := sizeUnits[unit]
	if !ok {
		multiplier = 1
	}
	return clamp(magnitude * multiplier)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func clamp(f float64) int64 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(f)
}
