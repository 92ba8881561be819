package joystick

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// IIO reads an ADC exposed by a Linux industrial I/O driver, such as an
// MCP3008 on the SPI bus. Reading in_voltageN_raw performs the conversion,
// so Start does the work and Done is always true.
type IIO struct {
	dir     string
	channel int
	last    uint16
	err     error
}

// NewIIO opens the IIO device directory
func NewIIO(dir string) (*IIO, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open iio device: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not an iio device directory", dir)
	}
	return &IIO{dir: dir}, nil
}

func (a *IIO) Select(channel int) error {
	path := a.path(channel)
	if _, err := os.Stat(path); err != nil {
		return err
	}
	a.channel = channel
	return nil
}

func (a *IIO) Start() error {
	data, err := os.ReadFile(a.path(a.channel))
	if err != nil {
		a.err = err
		return nil
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 16)
	if err != nil {
		a.err = fmt.Errorf("bad sample %q: %w", data, err)
		return nil
	}
	if v > FullScale {
		v = FullScale
	}
	a.last, a.err = uint16(v), nil
	return nil
}

func (a *IIO) Done() bool {
	return true
}

func (a *IIO) Read() (uint16, error) {
	return a.last, a.err
}

func (a *IIO) path(channel int) string {
	return filepath.Join(a.dir, fmt.Sprintf("in_voltage%d_raw", channel))
}
