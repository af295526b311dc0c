package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

var (
	Path string       // Config path
	mu   sync.RWMutex // Protects access to Conf
	Conf = Defaults() // Current values
)

// Defaults returns the configuration used when no config file is present
func Defaults() Config {
	return Config{
		Log: Log{
			Level: "warn",
			Path:  "stderr",
		},
		Probe: Probe{
			GPUCommand:  "nvidia-smi",
			PowerSupply: "/sys/class/power_supply",
		},
	}
}

// LoadConfig sets Path and loads the config into memory.
// A missing file is not an error: the defaults stay in place.
func LoadConfig(path string) error {
	Path = path
	err := Update()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// Update reads the config file and loads it into the global Conf variable
func Update() (err error) {
	mu.Lock()
	defer mu.Unlock()

	if _, err = os.Stat(Path); err != nil {
		return fmt.Errorf("config file does not exist: %s: %w", Path, err)
	}

	next := Defaults()
	if _, err = toml.DecodeFile(Path, &next); err != nil {
		return fmt.Errorf("failed to update global config %w", err)
	}
	if err = next.validate(); err != nil {
		return err
	}
	Conf = next
	return nil
}

func (c *Config) validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	case "":
		c.Log.Level = "warn"
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Log.Path == "" {
		c.Log.Path = "stderr"
	}
	if c.Probe.GPUCommand == "" {
		c.Probe.GPUCommand = "nvidia-smi"
	}
	if c.Probe.PowerSupply == "" {
		c.Probe.PowerSupply = "/sys/class/power_supply"
	}
	return nil
}

// GetLog returns the Log config in a thread-safe manner
func GetLog() Log {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Log
}

// GetProbe returns the Probe config in a thread-safe manner
func GetProbe() Probe {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Probe
}
