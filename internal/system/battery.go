package system

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	secsUnlimited = "Unlimited"
	secsUnknown   = "Unknown"
)

// CollectBatteryInfo reads the first battery under the power supply root.
// Without one both values are NA.
func (p *Probe) CollectBatteryInfo() BatteryInfo {
	info, err := ReadBattery(p.powerSupply)
	if err != nil {
		if !errors.Is(err, ErrNoBattery) {
			p.log.Debug("battery unreadable", zap.String("root", p.powerSupply), zap.Error(err))
		}
		return BatteryInfo{Percent: NA, SecondsLeft: NA}
	}
	return info
}

// Fields returns the battery rows in display order
func (b BatteryInfo) Fields() Fields {
	percent := b.Percent
	if percent != NA {
		percent += "%"
	}
	return Fields{
		{Key: "Percentage", Value: percent},
		{Key: "Time Left (s)", Value: b.SecondsLeft},
	}
}

// ReadBattery parses a sysfs style power supply directory
func ReadBattery(root string) (BatteryInfo, error) {
	dir, err := findBattery(root)
	if err != nil {
		return BatteryInfo{}, err
	}

	pct, err := batteryPercent(dir)
	if err != nil {
		return BatteryInfo{}, fmt.Errorf("failed to read battery %s: %w", dir, err)
	}

	return BatteryInfo{
		Percent:     formatFloat(math.Round(pct*10)/10, -1),
		SecondsLeft: batterySecondsLeft(dir),
	}, nil
}

func findBattery(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNoBattery
		}
		return "", fmt.Errorf("failed to list %s: %w", root, err)
	}
	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())
		if strings.HasPrefix(entry.Name(), "BAT") {
			return dir, nil
		}
		if kind, err := readString(dir, "type"); err == nil && kind == "Battery" {
			return dir, nil
		}
	}
	return "", ErrNoBattery
}

func batteryPercent(dir string) (float64, error) {
	if capacity, err := readNumber(dir, "capacity"); err == nil {
		return capacity, nil
	}
	for _, pair := range [][2]string{{"energy_now", "energy_full"}, {"charge_now", "charge_full"}} {
		now, err := readNumber(dir, pair[0])
		if err != nil {
			continue
		}
		full, err := readNumber(dir, pair[1])
		if err != nil || full <= 0 {
			continue
		}
		return math.Min(100*now/full, 100), nil
	}
	return 0, errors.New("no capacity reading")
}

// batterySecondsLeft is Unlimited unless discharging, Unknown without a rate
func batterySecondsLeft(dir string) string {
	status, _ := readString(dir, "status")
	if status != "Discharging" {
		return secsUnlimited
	}
	for _, pair := range [][2]string{{"energy_now", "power_now"}, {"charge_now", "current_now"}} {
		now, err := readNumber(dir, pair[0])
		if err != nil {
			continue
		}
		rate, err := readNumber(dir, pair[1])
		if err != nil || rate <= 0 {
			continue
		}
		return strconv.Itoa(int(now / rate * 3600))
	}
	return secsUnknown
}

func readString(dir, name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func readNumber(dir, name string) (float64, error) {
	s, err := readString(dir, name)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}
