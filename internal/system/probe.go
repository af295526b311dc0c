package system

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strings"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
	"go.uber.org/zap"

	"sysinspector/internal/conf"
)

// Probe runs the collectors against the local host.
// Every collector is a one-shot blocking query; a Probe holds no results.
type Probe struct {
	log         *zap.Logger
	gpuCommand  string
	powerSupply string

	hostInfo      func() (*host.InfoStat, error)
	cpuInfo       func() ([]cpu.InfoStat, error)
	cpuCounts     func(logical bool) (int, error)
	virtualMemory func() (*mem.VirtualMemoryStat, error)
	swapMemory    func() (*mem.SwapMemoryStat, error)
	kernelVersion func() (string, error)

	hostname   func() (string, error)
	lookupIP   func(ctx context.Context, host string) ([]net.IPAddr, error)
	nodeID     func() []byte
	runCommand func(ctx context.Context, name string, args ...string) ([]byte, error)
	partitions func(all bool) ([]disk.PartitionStat, error)
	diskUsage  func(path string) (*disk.UsageStat, error)
	interfaces func() (psnet.InterfaceStatList, error)
}

// NewProbe returns a Probe wired to the operating system
func NewProbe(log *zap.Logger, cfg conf.Probe) *Probe {
	if log == nil {
		log = zap.NewNop()
	}
	return &Probe{
		log:           log,
		gpuCommand:    cfg.GPUCommand,
		powerSupply:   cfg.PowerSupply,
		hostInfo:      host.Info,
		cpuInfo:       cpu.Info,
		cpuCounts:     cpu.Counts,
		virtualMemory: mem.VirtualMemory,
		swapMemory:    mem.SwapMemory,
		kernelVersion: kernelBuildVersion,
		hostname:      os.Hostname,
		lookupIP:      net.DefaultResolver.LookupIPAddr,
		nodeID:        uuid.NodeID,
		runCommand:    runCommand,
		partitions:    disk.Partitions,
		diskUsage:     disk.Usage,
		interfaces:    psnet.Interfaces,
	}
}

// absorb records a failure that was replaced by a placeholder
func (p *Probe) absorb(field string, err error) {
	p.log.Debug("value unavailable", zap.String("field", field), zap.Error(err))
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
				return nil, fmt.Errorf("%s: %w: %s", name, err, msg)
			}
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}
