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

package health

import (
	"context"
	"fmt"

	"github.com/coreos/go-systemd/v22/dbus"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// SystemdUnitState reads the ActiveState of unit from the system bus.
func SystemdUnitState(ctx context.Context, unit string) (string, error) {
	conn, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to connect to systemd: %w", err)
	}
	defer conn.Close()

	props, err := conn.GetUnitPropertiesContext(ctx, unit)
	if err != nil {
		return "", fmt.Errorf("failed to get unit properties: %w", err)
	}

	state, ok := props["ActiveState"].(string)
	if !ok {
		return "", fmt.Errorf("unit %s has no ActiveState", unit)
	}
	return state, nil
}

// HostUsage samples instantaneous CPU, memory and root filesystem usage.
func HostUsage(ctx context.Context) (SystemUsage, error) {
	var u SystemUsage

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return u, fmt.Errorf("failed to read host info: %w", err)
	}
	u.Hostname = info.Hostname
	u.Platform = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
	u.KernelVersion = info.KernelVersion

	if pct, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pct) > 0 {
		u.CPUPercent = pct[0]
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		u.MemoryPercent = vm.UsedPercent
	}
	if du, err := disk.UsageWithContext(ctx, "/"); err == nil {
		u.DiskPercent = du.UsedPercent
	}

	return u, nil
}
