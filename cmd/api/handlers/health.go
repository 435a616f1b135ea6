package handlers

import (
	"context"

	"vidtube.com/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

type HealthStatus struct {
	Status     string  `json:"status"`
	CPUPercent float64 `json:"cpuPercent"`
	MemPercent float64 `json:"memPercent"`
}

// HealthCheck reports a host resource snapshot. Probe failures leave the
// corresponding figure at zero.
func HealthCheck(ctx context.Context, c *app.RequestContext) {
	status := HealthStatus{Status: "ok"}
	if usage, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(usage) > 0 {
		status.CPUPercent = usage[0]
	} else if err != nil {
		hlog.CtxWarnf(ctx, "cpu probe failed: %v", err)
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		status.MemPercent = vm.UsedPercent
	} else {
		hlog.CtxWarnf(ctx, "memory probe failed: %v", err)
	}
	SendResponse(c, errno.Success, status)
}
