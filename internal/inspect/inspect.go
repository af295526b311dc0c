// Package inspect runs the collectors and renderers in report order.
package inspect

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"sysinspector/internal/render"
	"sysinspector/internal/system"
)

// Collector is the set of host queries a report needs
type Collector interface {
	CollectSystemInfo(ctx context.Context) (system.Fields, error)
	CollectGPUInfo(ctx context.Context) system.GPUResult
	CollectCPUInfo() string
	CollectBatteryInfo() system.BatteryInfo
	CollectDiskInfo() ([]system.DiskEntry, error)
	CollectNetworkInfo() (system.Fields, error)
}

// Inspector prints one full report
type Inspector struct {
	Console   *render.Console
	Collector Collector
	Progress  func(ctx context.Context, w io.Writer) error
	Log       *zap.Logger
}

// Run prints the progress bar, the header and every domain section.
// It stops at the first error a collector returns.
func (i *Inspector) Run(ctx context.Context) error {
	log := i.Log
	if log == nil {
		log = zap.NewNop()
	}

	if i.Progress != nil {
		if err := i.Progress(ctx, i.Console.Writer()); err != nil {
			return err
		}
	}
	i.Console.Header()

	info, err := i.Collector.CollectSystemInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to get system info: %w", err)
	}
	i.Console.KeyValueTable("System Information", info, "white")

	i.Console.GPUInfo(i.Collector.CollectGPUInfo(ctx))

	i.Console.KeyValueTable("CPU Info", system.Fields{{Key: "Model", Value: i.Collector.CollectCPUInfo()}}, "magenta")

	i.Console.KeyValueTable("Battery Info", i.Collector.CollectBatteryInfo().Fields(), "red")

	disks, err := i.Collector.CollectDiskInfo()
	if err != nil {
		return fmt.Errorf("failed to get disk info: %w", err)
	}
	i.Console.DiskTable(disks)

	ifaces, err := i.Collector.CollectNetworkInfo()
	if err != nil {
		return fmt.Errorf("failed to get network info: %w", err)
	}
	i.Console.KeyValueTable("Network Interfaces", ifaces, "yellow")

	log.Debug("report complete", zap.Int("disks", len(disks)), zap.Int("interfaces", len(ifaces)))
	return nil
}
