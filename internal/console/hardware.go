package console

import (
	"fmt"
	"log"

	"github.com/joduyemi/LedPanel/internal/config"
	"github.com/joduyemi/LedPanel/internal/joystick"
	"github.com/joduyemi/LedPanel/pkg/gpio"
	"github.com/joduyemi/LedPanel/internal/hub75"
)

// Closer releases hardware opened by OpenPanel or OpenInput
type Closer func() error

// LineNames labels the lines returned by OpenLines, in order
var LineNames = [...]string{"data", "clock", "latch", "addr8", "addr4", "addr2", "addr1"}

// OpenLines requests the panel lines from the configured backend, in the
// order given by LineNames
func OpenLines(cfg *config.Config) ([]gpio.Output, Closer, error) {
	p := cfg.Panel
	numbers := append([]int{p.DataPin, p.ClockPin, p.LatchPin}, p.AddrPins[:]...)

	var (
		lines []gpio.Output
		err   error
		block *gpio.MMIO
	)
	switch p.Backend {
	case "cdev":
		lines, err = gpio.OpenCdev(p.Chip, numbers...)
	case "sysfs":
		lines, err = gpio.OpenSysfs(numbers...)
	case "mmio":
		block, err = gpio.OpenMMIO(p.GPIOBase)
		if err == nil {
			lines, err = block.Outputs(numbers...)
			if err != nil {
				block.Close()
			}
		}
	default:
		err = fmt.Errorf("%w: unknown panel backend %q", config.ErrInvalid, p.Backend)
	}
	if err != nil {
		return nil, nil, err
	}

	closer := func() error {
		err := gpio.CloseAll(lines)
		if block != nil {
			if berr := block.Close(); err == nil {
				err = berr
			}
		}
		return err
	}
	return lines, closer, nil
}

// OpenPanel requests the panel lines and returns a driver for them
func OpenPanel(cfg *config.Config) (*hub75.Driver, Closer, error) {
	lines, closer, err := OpenLines(cfg)
	if err != nil {
		return nil, nil, err
	}

	pins := hub75.Pins{
		Data:  lines[0],
		Clock: lines[1],
		Latch: lines[2],
	}
	for i := range pins.Addr {
		pins.Addr[i] = lines[3+i]
	}

	driver, err := hub75.NewDriver(pins)
	if err != nil {
		closer()
		return nil, nil, err
	}

	p := cfg.Panel
	log.Printf("Panel on %s backend: data %d, clock %d, latch %d, address %v",
		p.Backend, p.DataPin, p.ClockPin, p.LatchPin, p.AddrPins)
	return driver, closer, nil
}

// OpenInput opens the configured ADC and returns a reader for both sticks
func OpenInput(cfg *config.Config) (*joystick.Reader, Closer, error) {
	in := cfg.Input

	var (
		adc    joystick.ADC
		closer Closer = func() error { return nil }
	)
	switch in.Backend {
	case "iio":
		a, err := joystick.NewIIO(in.Device)
		if err != nil {
			return nil, nil, err
		}
		adc = a
	case "keyboard":
		k, err := joystick.OpenKeyboard(in.Channels, cfg.HoldTime())
		if err != nil {
			return nil, nil, err
		}
		log.Println("Keyboard sticks: W/S for player 1, I/K for player 2")
		adc, closer = k, k.Close
	case "fixed":
		adc = joystick.NewFixed()
	default:
		return nil, nil, fmt.Errorf("%w: unknown input backend %q", config.ErrInvalid, in.Backend)
	}

	return joystick.NewReader(adc, in.Channels, cfg.PollTimeout()), closer, nil
}
