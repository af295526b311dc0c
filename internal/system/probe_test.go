package system

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sysinspector/internal/conf"
)

func newTestProbe(t *testing.T) *Probe {
	t.Helper()
	p := NewProbe(zap.NewNop(), conf.Defaults().Probe)
	p.hostname = func() (string, error) { return "testbox", nil }
	p.lookupIP = func(ctx context.Context, host string) ([]net.IPAddr, error) {
		return []net.IPAddr{
			{IP: net.ParseIP("fe80::1")},
			{IP: net.ParseIP("192.168.1.20")},
			{IP: net.ParseIP("10.0.0.5")},
		}, nil
	}
	p.nodeID = func() []byte { return []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab} }
	return p
}

var systemInfoKeys = []string{
	"OS", "OS Version", "Architecture", "Machine", "Processor", "CPU Cores",
	"Logical CPUs", "Memory (GB)", "Swap Memory (GB)", "Hostname", "IP Address",
	"MAC Address",
}

func TestCollectSystemInfo(t *testing.T) {
	p := newTestProbe(t)

	fields, err := p.CollectSystemInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, systemInfoKeys, keysOf(fields))
	for _, f := range fields {
		s, ok := f.Value.(string)
		require.True(t, ok, "%s is not a string", f.Key)
		assert.NotEmpty(t, s, f.Key)
	}

	hostname, _ := lookup(fields, "Hostname")
	ip, _ := lookup(fields, "IP Address")
	mac, _ := lookup(fields, "MAC Address")
	assert.Equal(t, "testbox", hostname)
	assert.Equal(t, "192.168.1.20", ip)
	assert.Equal(t, "01:23:45:67:89:ab", mac)

	arch, _ := lookup(fields, "Architecture")
	assert.Regexp(t, `^(32|64)bit$`, arch)
	for _, key := range []string{"Memory (GB)", "Swap Memory (GB)"} {
		v, _ := lookup(fields, key)
		if v != NA {
			assert.Regexp(t, `^\d+\.\d{2}$`, v, key)
		}
	}
}

func TestCollectSystemInfoDegrades(t *testing.T) {
	p := newTestProbe(t)
	failed := errors.New("not supported")
	p.hostInfo = func() (*host.InfoStat, error) { return nil, failed }
	p.kernelVersion = func() (string, error) { return "", failed }
	p.cpuInfo = func() ([]cpu.InfoStat, error) { return nil, failed }
	p.cpuCounts = func(bool) (int, error) { return 0, failed }
	p.virtualMemory = func() (*mem.VirtualMemoryStat, error) { return nil, failed }
	p.swapMemory = func() (*mem.SwapMemoryStat, error) { return nil, failed }

	fields, err := p.CollectSystemInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, systemInfoKeys, keysOf(fields))

	for _, key := range []string{"OS", "OS Version", "Machine", "Processor", "CPU Cores",
		"Logical CPUs", "Memory (GB)", "Swap Memory (GB)"} {
		v, _ := lookup(fields, key)
		assert.Equal(t, NA, v, key)
	}
	hostname, _ := lookup(fields, "Hostname")
	assert.Equal(t, "testbox", hostname)
}

func TestCollectSystemInfoEmptyReadings(t *testing.T) {
	p := newTestProbe(t)
	p.hostInfo = func() (*host.InfoStat, error) {
		return &host.InfoStat{OS: "linux", KernelArch: "x86_64", PlatformVersion: "22.04"}, nil
	}
	p.kernelVersion = func() (string, error) { return "", nil }
	p.cpuInfo = func() ([]cpu.InfoStat, error) { return nil, nil }
	p.cpuCounts = func(bool) (int, error) { return 0, nil }
	p.virtualMemory = func() (*mem.VirtualMemoryStat, error) { return &mem.VirtualMemoryStat{Total: 16 << 30}, nil }
	p.swapMemory = func() (*mem.SwapMemoryStat, error) { return &mem.SwapMemoryStat{Total: 1 << 29}, nil }

	fields, err := p.CollectSystemInfo(context.Background())
	require.NoError(t, err)

	want := map[string]string{
		"OS":               "Linux",
		"OS Version":       "22.04",
		"Machine":          "x86_64",
		"Processor":        NA,
		"CPU Cores":        NA,
		"Logical CPUs":     NA,
		"Memory (GB)":      "16.00",
		"Swap Memory (GB)": "0.50",
	}
	for key, value := range want {
		v, _ := lookup(fields, key)
		assert.Equal(t, value, v, key)
	}
}

func TestCollectSystemInfoPropagatesResolution(t *testing.T) {
	t.Run("hostname", func(t *testing.T) {
		p := newTestProbe(t)
		p.hostname = func() (string, error) { return "", errors.New("uts unavailable") }

		_, err := p.CollectSystemInfo(context.Background())
		assert.ErrorContains(t, err, "failed to get hostname")
	})

	t.Run("lookup", func(t *testing.T) {
		p := newTestProbe(t)
		lookupErr := &net.DNSError{Err: "no such host", Name: "testbox", IsNotFound: true}
		p.lookupIP = func(ctx context.Context, host string) ([]net.IPAddr, error) {
			return nil, lookupErr
		}

		_, err := p.CollectSystemInfo(context.Background())
		assert.ErrorIs(t, err, lookupErr)
	})

	t.Run("no ipv4", func(t *testing.T) {
		p := newTestProbe(t)
		p.lookupIP = func(ctx context.Context, host string) ([]net.IPAddr, error) {
			return []net.IPAddr{{IP: net.ParseIP("::1")}}, nil
		}

		_, err := p.CollectSystemInfo(context.Background())
		assert.ErrorContains(t, err, "no IPv4 address")
	})
}

func TestCollectCPUInfoNeverEmpty(t *testing.T) {
	assert.NotEmpty(t, newTestProbe(t).CollectCPUInfo())
}

func TestPlatformName(t *testing.T) {
	assert.Equal(t, "Linux", platformName("linux"))
	assert.Equal(t, "Darwin", platformName("darwin"))
	assert.Equal(t, "Plan9", platformName("plan9"))
	assert.Equal(t, "", platformName(""))
}
