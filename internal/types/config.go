package types

// PanelConfig represents the wiring of the panel's shift-register interface
type PanelConfig struct {
	// Backend is one of "cdev", "sysfs" or "mmio"
	Backend string `json:"backend"`
	// Chip is the gpiochip used by the cdev backend
	Chip     string `json:"chip"`
	DataPin  int    `json:"dataPin"`
	ClockPin int    `json:"clockPin"`
	LatchPin int    `json:"latchPin"`
	// AddrPins are the row address lines, most significant (weight 8) first
	AddrPins [4]int `json:"addrPins"`
	// GPIOBase is the physical address of the GPIO register block (mmio only)
	GPIOBase uint64 `json:"gpioBase"`
}

// InputConfig represents the configuration for the joystick ADC
type InputConfig struct {
	// Backend is one of "iio", "keyboard" or "fixed"
	Backend string `json:"backend"`
	// Device is the IIO device directory
	Device string `json:"device"`
	// Channels holds the ADC channel of each player
	Channels [2]int `json:"channels"`
	// PollTimeoutMs bounds the wait for a conversion to complete
	PollTimeoutMs int `json:"pollTimeoutMs"`
	// HoldMs is how long a key press keeps a keyboard stick deflected
	HoldMs int `json:"holdMs"`
}

// DisplayConfig represents the configuration for the display
type DisplayConfig struct {
	// TickMs is the delay between game ticks
	TickMs int `json:"tickMs"`
	// Splash is an optional SVG or PNG file shown instead of the game
	Splash string `json:"splash"`
	// ShowSplash shows the splash image instead of the live game
	ShowSplash bool `json:"showSplash"`
	// Scale is the size in window pixels of one LED in the simulator
	Scale int `json:"scale"`
}
