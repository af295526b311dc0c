package system

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// CollectDiskInfo returns usage for every mounted physical partition.
// Partitions that refuse a usage query are skipped.
func (p *Probe) CollectDiskInfo() ([]DiskEntry, error) {
	parts, err := p.partitions(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}

	var entries []DiskEntry
	index := make(map[string]int, len(parts))
	for _, part := range parts {
		usage, err := p.diskUsage(part.Mountpoint)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				p.log.Debug("partition skipped", zap.String("mountpoint", part.Mountpoint), zap.Error(err))
				continue
			}
			return nil, fmt.Errorf("failed to get disk usage for path %s: %w", part.Mountpoint, err)
		}

		p.log.Debug("partition read",
			zap.String("device", part.Device),
			zap.String("mountpoint", part.Mountpoint),
			zap.String("total", humanize.IBytes(usage.Total)),
		)

		entry := DiskEntry{
			Device:     part.Device,
			Mountpoint: part.Mountpoint,
			Total:      FormatGB(usage.Total) + " GB",
			Used:       FormatGB(usage.Used) + " GB",
			Free:       FormatGB(usage.Free) + " GB",
			Percent:    formatFloat(usage.UsedPercent, 1) + "%",
		}
		// A device mounted twice keeps its first row and its last figures
		if i, ok := index[part.Device]; ok {
			entries[i] = entry
			continue
		}
		index[part.Device] = len(entries)
		entries = append(entries, entry)
	}
	return entries, nil
}
