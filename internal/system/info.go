package system

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/host"
)

var platformNames = map[string]string{
	"linux":   "Linux",
	"darwin":  "Darwin",
	"windows": "Windows",
	"freebsd": "FreeBSD",
	"openbsd": "OpenBSD",
	"netbsd":  "NetBSD",
	"solaris": "SunOS",
}

// CollectSystemInfo returns the twelve identity fields of the host.
// Hardware fields degrade to NA; hostname and address resolution
// failures are returned to the caller.
func (p *Probe) CollectSystemInfo(ctx context.Context) (Fields, error) {
	hostInfo, err := p.hostInfo()
	if err != nil {
		p.absorb("host", err)
		hostInfo = &host.InfoStat{}
	}

	fields := Fields{
		{Key: "OS", Value: orNA(platformName(hostInfo.OS))},
		{Key: "OS Version", Value: p.osVersion(hostInfo)},
		{Key: "Architecture", Value: strconv.Itoa(strconv.IntSize) + "bit"},
		{Key: "Machine", Value: orNA(hostInfo.KernelArch)},
		{Key: "Processor", Value: p.processor()},
		{Key: "CPU Cores", Value: p.cpuCount(false)},
		{Key: "Logical CPUs", Value: p.cpuCount(true)},
		{Key: "Memory (GB)", Value: p.memoryTotal()},
		{Key: "Swap Memory (GB)", Value: p.swapTotal()},
	}

	hostname, err := p.hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to get hostname: %w", err)
	}
	ip, err := p.primaryIPv4(ctx, hostname)
	if err != nil {
		return nil, err
	}

	fields = append(fields,
		Field{Key: "Hostname", Value: orNA(hostname)},
		Field{Key: "IP Address", Value: ip},
		Field{Key: "MAC Address", Value: FormatMAC(nodeToUint64(p.nodeID()))},
	)
	return fields, nil
}

// CollectCPUInfo returns the CPU brand string
func (p *Probe) CollectCPUInfo() string {
	if brand := strings.TrimSpace(cpuid.CPU.BrandName); brand != "" {
		return brand
	}
	// cpuid only knows x86; ask the OS elsewhere
	return p.processor()
}

func platformName(goos string) string {
	if name, ok := platformNames[goos]; ok {
		return name
	}
	if goos == "" {
		return ""
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}

func (p *Probe) osVersion(hostInfo *host.InfoStat) string {
	version, err := p.kernelVersion()
	if err != nil {
		p.absorb("os version", err)
		return NA
	}
	if version == "" {
		version = hostInfo.PlatformVersion
	}
	return orNA(version)
}

func (p *Probe) processor() string {
	cpuInfo, err := p.cpuInfo()
	if err != nil {
		p.absorb("processor", err)
		return NA
	}
	if len(cpuInfo) == 0 {
		return NA
	}
	return orNA(strings.TrimSpace(cpuInfo[0].ModelName))
}

func (p *Probe) cpuCount(logical bool) string {
	count, err := p.cpuCounts(logical)
	if err != nil {
		p.absorb("cpu count", err)
		return NA
	}
	if count <= 0 {
		return NA
	}
	return strconv.Itoa(count)
}

func (p *Probe) memoryTotal() string {
	memStat, err := p.virtualMemory()
	if err != nil {
		p.absorb("memory", err)
		return NA
	}
	return FormatGB(memStat.Total)
}

func (p *Probe) swapTotal() string {
	swapStat, err := p.swapMemory()
	if err != nil {
		p.absorb("swap", err)
		return NA
	}
	return FormatGB(swapStat.Total)
}

// primaryIPv4 returns the first IPv4 address the hostname resolves to
func (p *Probe) primaryIPv4(ctx context.Context, hostname string) (string, error) {
	addrs, err := p.lookupIP(ctx, hostname)
	if err != nil {
		return "", fmt.Errorf("failed to resolve host %s: %w", hostname, err)
	}
	for _, addr := range addrs {
		if v4 := addr.IP.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return "", fmt.Errorf("failed to resolve host %s: no IPv4 address", hostname)
}
