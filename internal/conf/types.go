package conf

type Config struct {
	Log   Log   `toml:"Log"`
	Probe Probe `toml:"Probe"`
}

// Log controls where diagnostics go. Rendered output always goes to stdout.
type Log struct {
	Level string `toml:"Level"`
	Path  string `toml:"Path"`
}

// Probe tunes how collectors reach the host.
type Probe struct {
	GPUCommand  string `toml:"GPUCommand"`
	PowerSupply string `toml:"PowerSupply"`
}
