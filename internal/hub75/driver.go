// Package hub75 drives a 32x32 row-multiplexed RGB panel through a single
// serial shift-register chain.
//
// Each of the 16 row addresses lights two physical rows, r and r+16. For every
// address the driver shifts 192 bits, the lower row first and then the upper
// row, each as 32 blue bits followed by 32 green and 32 red bits in column
// order. The address lines are then set, most significant first, and the latch
// is raised to show the new data.
package hub75

import (
	"errors"
	"fmt"

	"github.com/joduyemi/LedPanel/internal/types"
)

const (
	// AddressLines is the number of binary row address lines
	AddressLines = 4
	// ChainLength is the number of bits shifted per row address
	ChainLength = 2 * 3 * types.Width
	// BitsPerRefresh is the number of clock pulses in one full refresh
	BitsPerRefresh = types.RowPairs * ChainLength
)

// ErrNilPin is returned by NewDriver when a line is not wired
var ErrNilPin = errors.New("pin not connected")

// Pin is a digital output line. *gpiocdev.Line satisfies it.
type Pin interface {
	SetValue(value int) error
}

// Pins holds the panel's control lines
type Pins struct {
	Data  Pin
	Clock Pin
	Latch Pin
	// Addr holds the row address lines with weights 8, 4, 2 and 1
	Addr [AddressLines]Pin
}

// Phase is a step of the refresh state machine
type Phase int

const (
	Idle Phase = iota
	DisableLatch
	ShiftRowPairBits
	SetRowAddress
	EnableLatch
)

func (p Phase) String() string {
	switch p {
	case DisableLatch:
		return "DisableLatch"
	case ShiftRowPairBits:
		return "ShiftRowPairBits"
	case SetRowAddress:
		return "SetRowAddress"
	case EnableLatch:
		return "EnableLatch"
	default:
		return "Idle"
	}
}

// Observer is told about every phase the driver enters, with the row address
// being refreshed
type Observer func(phase Phase, row int)

// Driver writes frames to the panel
type Driver struct {
	pins     Pins
	observer Observer
}

// NewDriver creates a driver for the given lines
func NewDriver(pins Pins) (*Driver, error) {
	if pins.Data == nil || pins.Clock == nil || pins.Latch == nil {
		return nil, fmt.Errorf("%w: data, clock and latch are required", ErrNilPin)
	}
	for i, p := range pins.Addr {
		if p == nil {
			return nil, fmt.Errorf("%w: address line %d", ErrNilPin, 8>>i)
		}
	}
	return &Driver{pins: pins}, nil
}

// SetObserver installs a callback for refresh phases. Nil removes it.
func (d *Driver) SetObserver(o Observer) {
	d.observer = o
}

func (d *Driver) enter(phase Phase, row int) {
	if d.observer != nil {
		d.observer(phase, row)
	}
}

// Drive performs one full refresh of the panel from f. A failing line aborts
// the refresh.
func (d *Driver) Drive(f *types.Frame) error {
	for row := 0; row < types.RowPairs; row++ {
		if err := d.driveRow(f, row); err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
	}
	d.enter(Idle, types.RowPairs-1)
	return nil
}

func (d *Driver) driveRow(f *types.Frame, row int) error {
	d.enter(DisableLatch, row)
	if err := d.pins.Latch.SetValue(0); err != nil {
		return fmt.Errorf("failed to disable latch: %w", err)
	}

	d.enter(ShiftRowPairBits, row)
	if err := d.shiftRow(&f[row+types.RowPairs]); err != nil {
		return err
	}
	if err := d.shiftRow(&f[row]); err != nil {
		return err
	}

	d.enter(SetRowAddress, row)
	if err := d.selectRow(row); err != nil {
		return err
	}

	d.enter(EnableLatch, row)
	if err := d.pins.Latch.SetValue(1); err != nil {
		return fmt.Errorf("failed to enable latch: %w", err)
	}
	return nil
}

// shiftRow pushes one row as blue, green then red planes
func (d *Driver) shiftRow(pixels *[types.Width]types.Pixel) error {
	planes := [3]func(types.Pixel) bool{
		func(p types.Pixel) bool { return p.B },
		func(p types.Pixel) bool { return p.G },
		func(p types.Pixel) bool { return p.R },
	}
	for _, channel := range planes {
		for _, p := range pixels {
			if err := d.shiftBit(channel(p)); err != nil {
				return err
			}
		}
	}
	return nil
}

// shiftBit clocks one bit into the chain on the rising clock edge
func (d *Driver) shiftBit(bit bool) error {
	if err := d.pins.Clock.SetValue(0); err != nil {
		return fmt.Errorf("failed to clear clock: %w", err)
	}
	if err := d.pins.Data.SetValue(level(bit)); err != nil {
		return fmt.Errorf("failed to set data: %w", err)
	}
	if err := d.pins.Clock.SetValue(1); err != nil {
		return fmt.Errorf("failed to set clock: %w", err)
	}
	return nil
}

// selectRow writes the row address, weights 8, 4, 2, 1 in that order
func (d *Driver) selectRow(row int) error {
	weight := 1 << (AddressLines - 1)
	for i, line := range d.pins.Addr {
		if err := line.SetValue(level(row&weight != 0)); err != nil {
			return fmt.Errorf("failed to set address line %d: %w", 8>>i, err)
		}
		weight >>= 1
	}
	return nil
}

func level(b bool) int {
	if b {
		return 1
	}
	return 0
}
