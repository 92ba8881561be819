package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joduyemi/LedPanel/internal/types"
)

// ErrInvalid is returned by Validate for a configuration that cannot be used
var ErrInvalid = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	Panel   types.PanelConfig   `json:"panel"`
	Input   types.InputConfig   `json:"input"`
	Display types.DisplayConfig `json:"display"`
}

// LoadConfig loads the configuration from a file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := DefaultConfig()
	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig returns the default configuration: a panel on gpiochip0 of a
// Raspberry Pi header and an MCP3008 style ADC exposed through IIO
func DefaultConfig() *Config {
	return &Config{
		Panel: types.PanelConfig{
			Backend:  "cdev",
			Chip:     "gpiochip0",
			DataPin:  6,
			ClockPin: 7,
			LatchPin: 8,
			AddrPins: [4]int{5, 4, 3, 2},
			GPIOBase: 0xfe200000,
		},
		Input: types.InputConfig{
			Backend:       "iio",
			Device:        "/sys/bus/iio/devices/iio:device0",
			Channels:      [2]int{1, 6},
			PollTimeoutMs: 5,
			HoldMs:        150,
		},
		Display: types.DisplayConfig{
			TickMs: 20,
			Scale:  16,
		},
	}
}

// Validate checks the configuration for values the hardware layers would
// reject later
func (c *Config) Validate() error {
	switch c.Panel.Backend {
	case "cdev", "sysfs", "mmio":
	default:
		return fmt.Errorf("%w: unknown panel backend %q", ErrInvalid, c.Panel.Backend)
	}

	pins := append([]int{c.Panel.DataPin, c.Panel.ClockPin, c.Panel.LatchPin}, c.Panel.AddrPins[:]...)
	seen := make(map[int]bool, len(pins))
	for _, pin := range pins {
		if pin < 0 {
			return fmt.Errorf("%w: negative pin %d", ErrInvalid, pin)
		}
		if seen[pin] {
			return fmt.Errorf("%w: pin %d assigned twice", ErrInvalid, pin)
		}
		seen[pin] = true
	}

	switch c.Input.Backend {
	case "iio", "keyboard", "fixed":
	default:
		return fmt.Errorf("%w: unknown input backend %q", ErrInvalid, c.Input.Backend)
	}
	for _, ch := range c.Input.Channels {
		if ch < 0 {
			return fmt.Errorf("%w: negative ADC channel %d", ErrInvalid, ch)
		}
	}
	if c.Input.Channels[0] == c.Input.Channels[1] {
		return fmt.Errorf("%w: both players on ADC channel %d", ErrInvalid, c.Input.Channels[0])
	}
	if c.Input.PollTimeoutMs <= 0 {
		return fmt.Errorf("%w: poll timeout must be positive", ErrInvalid)
	}

	if c.Display.TickMs <= 0 {
		return fmt.Errorf("%w: tick interval must be positive", ErrInvalid)
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive", ErrInvalid)
	}
	return nil
}

// TickInterval returns the delay between game ticks
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Display.TickMs) * time.Millisecond
}

// PollTimeout returns the bound on a single ADC conversion
func (c *Config) PollTimeout() time.Duration {
	return time.Duration(c.Input.PollTimeoutMs) * time.Millisecond
}

// HoldTime returns how long a keyboard press deflects a stick
func (c *Config) HoldTime() time.Duration {
	return time.Duration(c.Input.HoldMs) * time.Millisecond
}
