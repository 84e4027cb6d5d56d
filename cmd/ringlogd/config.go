package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the TOML surface of the daemon. Values are read once
// at startup; the pipeline configuration never changes afterwards.
type fileConfig struct {
	Range        string `toml:"range"`         // upper severity bound, e.g. "warn" or "all"
	UseTimestamp bool   `toml:"use_timestamp"` // [<ticks>] prefix on buffered lines
	UseColor     bool   `toml:"use_color"`     // ANSI colors on the stderr echo
	Echo         bool   `toml:"echo"`          // synchronous stderr echo of accepted writes
	RingCapacity int    `toml:"ring_capacity"` // entry slots, fixed after start
	IntervalMS   int    `toml:"interval_ms"`   // worker drain interval
	HeartbeatMS  int    `toml:"heartbeat_ms"`  // demo traffic period
	Sink         string `toml:"sink"`          // stdout, tcp or ws
	Addr         string `toml:"addr"`          // tcp host:port or ws:// URL
	MetricsAddr  string `toml:"metrics_addr"`  // promhttp listen address, empty disables
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Range:        "all",
		UseTimestamp: true,
		UseColor:     true,
		Echo:         false,
		RingCapacity: 16,
		IntervalMS:   1,
		HeartbeatMS:  1000,
		Sink:         "stdout",
		MetricsAddr:  "",
	}
}

// loadConfig overlays the TOML file, when present, onto the defaults.
// A missing file is not an error; a malformed one is.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse TOML config: %w", err)
	}
	return cfg, nil
}
