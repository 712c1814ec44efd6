package touch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the board wiring of the panel and the tunable
// reset timings.
type Config struct {
	// Bus is the i2creg bus name, e.g. "1" or "/dev/i2c-1". Empty
	// selects the first available bus.
	Bus string `yaml:"bus"`
	// Addr is the 7-bit device address. Zero selects the chip
	// default.
	Addr uint16 `yaml:"addr"`
	// IntPin and ResetPin are gpioreg pin names. The defaults match
	// the Waveshare 1.28" round touch LCD wiring.
	IntPin   string `yaml:"int_pin"`
	ResetPin string `yaml:"reset_pin"`
	// ResetHoldMs and ResetSettleMs override the reset pulse
	// timings, which are empirical rather than vendor guarantees.
	// Zero keeps the driver defaults.
	ResetHoldMs   int `yaml:"reset_hold_ms"`
	ResetSettleMs int `yaml:"reset_settle_ms"`
	// PollMs bounds the wait for an interrupt edge, so the pump
	// notices Close and missed edges. Zero selects 100ms.
	PollMs int `yaml:"poll_ms"`
}

func (c *Config) setDefaults() {
	if c.IntPin == "" {
		c.IntPin = "GPIO4"
	}
	if c.ResetPin == "" {
		c.ResetPin = "GPIO17"
	}
	if c.PollMs == 0 {
		c.PollMs = 100
	}
}

// LoadConfig reads a YAML wiring config and fills in defaults.
func LoadConfig(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("touch: parse %s: %w", path, err)
	}
	c.setDefaults()
	return c, nil
}
