package system

import "errors"

// NA is shown in place of any value that could not be read
const NA = "N/A"

var (
	ErrNoGPU     = errors.New("no GPU found")
	ErrNoBattery = errors.New("no battery found")
)

// Field is one labelled value in a collector result
type Field struct {
	Key   string
	Value any
}

// Fields is an ordered label to value mapping. Order is display order.
type Fields []Field

// Set replaces the value of key in place, or appends it when absent
func (f *Fields) Set(key string, value any) {
	for i := range *f {
		if (*f)[i].Key == key {
			(*f)[i].Value = value
			return
		}
	}
	*f = append(*f, Field{Key: key, Value: value})
}

// DiskEntry represents usage of one mounted device
type DiskEntry struct {
	Device     string
	Mountpoint string
	Total      string
	Used       string
	Free       string
	Percent    string
}

// GPUDevice represents one row of GPU information
type GPUDevice struct {
	Name        string
	Driver      string
	Memory      string
	Utilization string
}

// GPUResult is either an error message or a list of devices, never both
type GPUResult struct {
	err     string
	devices []GPUDevice
	failed  bool
}

// GPUError builds a failed GPUResult carrying msg
func GPUError(msg string) GPUResult {
	return GPUResult{err: msg, failed: true}
}

// GPUDevices builds a successful GPUResult
func GPUDevices(devices []GPUDevice) GPUResult {
	return GPUResult{devices: devices}
}

// Failed reports whether the GPU query failed
func (r GPUResult) Failed() bool { return r.failed }

// Message returns the failure message; empty on success
func (r GPUResult) Message() string { return r.err }

// Devices returns the GPUs found; nil on failure
func (r GPUResult) Devices() []GPUDevice { return r.devices }

// BatteryInfo represents battery charge and remaining time
type BatteryInfo struct {
	Percent     string
	SecondsLeft string
}
