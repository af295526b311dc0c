package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset(t *testing.T) {
	t.Helper()
	mu.Lock()
	Conf = Defaults()
	mu.Unlock()
}

func current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Conf
}

func TestLoadConfigMissingFileKeepsDefaults(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, LoadConfig(path))
	assert.Equal(t, Defaults(), current())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "config file must not be created")
}

func TestLoadConfigOverrides(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[Log]
Level = "DEBUG"
Path = "/tmp/inspector.log"

[Probe]
GPUCommand = "/opt/nvidia/bin/nvidia-smi"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	require.NoError(t, LoadConfig(path))

	assert.Equal(t, Log{Level: "debug", Path: "/tmp/inspector.log"}, GetLog())
	probe := GetProbe()
	assert.Equal(t, "/opt/nvidia/bin/nvidia-smi", probe.GPUCommand)
	assert.Equal(t, "/sys/class/power_supply", probe.PowerSupply)
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"syntax":    "[Log\nLevel = ",
		"log level": "[Log]\nLevel = \"verbose\"\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			reset(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			assert.Error(t, LoadConfig(path))
			assert.Equal(t, Defaults(), current())
		})
	}
}
