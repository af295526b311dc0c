package system

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var gpuQueryArgs = []string{
	"--query-gpu=name,driver_version,memory.total,utilization.gpu",
	"--format=csv,noheader,nounits",
}

// CollectGPUInfo queries the GPU driver. Any failure becomes the
// error side of the result rather than an error return.
func (p *Probe) CollectGPUInfo(ctx context.Context) GPUResult {
	out, err := p.runCommand(ctx, p.gpuCommand, gpuQueryArgs...)
	if err != nil {
		p.log.Debug("gpu query failed", zap.String("command", p.gpuCommand), zap.Error(err))
		return GPUError(err.Error())
	}

	devices, err := ParseGPUQuery(out)
	if err != nil {
		p.log.Debug("gpu query unreadable", zap.Error(err))
		return GPUError(err.Error())
	}
	return GPUDevices(devices)
}

// ParseGPUQuery reads name, driver, memory (MiB) and utilization (%)
// columns, one GPU per line.
func ParseGPUQuery(out []byte) ([]GPUDevice, error) {
	r := csv.NewReader(bytes.NewReader(out))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = 4

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse GPU query: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoGPU
	}

	devices := make([]GPUDevice, 0, len(records))
	for _, rec := range records {
		devices = append(devices, GPUDevice{
			Name:        orNA(rec[0]),
			Driver:      orNA(rec[1]),
			Memory:      gpuMemory(rec[2]),
			Utilization: gpuUtilization(rec[3]),
		})
	}
	return devices, nil
}

// gpuMemory converts a MiB figure; non-numeric values such as "[N/A]" become NA
func gpuMemory(field string) string {
	mib, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || mib < 0 {
		return NA
	}
	return binarySize(uint64(mib * (1 << 20)))
}

func gpuUtilization(field string) string {
	pct, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return NA
	}
	return formatFloat(pct, -1) + "%"
}
