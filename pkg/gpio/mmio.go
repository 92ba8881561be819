package gpio

import (
	"fmt"

	"github.com/joduyemi/LedPanel/pkg/mmap"
)

// Register offsets of a BCM283x style GPIO block
const (
	regFSEL0 = 0x00
	regSET0  = 0x1c
	regCLR0  = 0x28

	blockSize = 0xb4

	fselOutput = 0b001
)

// Registers is the register access needed by memory-mapped pins.
// *mmap.MemoryMap satisfies it.
type Registers interface {
	Read32(offset uintptr) uint32
	Write32(offset uintptr, value uint32)
}

// MMIOPin drives a pin through the write-only set and clear registers, so a
// write never disturbs the other pins of the bank
type MMIOPin struct {
	regs   Registers
	number int
}

// MMIO is a mapped GPIO register block
type MMIO struct {
	regs Registers
	mem  *mmap.MemoryMap
}

// OpenMMIO maps the GPIO block at base
func OpenMMIO(base uint64) (*MMIO, error) {
	mem, err := mmap.NewMemoryMap(uintptr(base), blockSize)
	if err != nil {
		return nil, fmt.Errorf("failed to map GPIO block: %w", err)
	}
	return &MMIO{regs: mem, mem: mem}, nil
}

// NewMMIO wraps an existing register block
func NewMMIO(regs Registers) *MMIO {
	return &MMIO{regs: regs}
}

// Outputs configures each pin as an output driven low
func (m *MMIO) Outputs(numbers ...int) ([]Output, error) {
	lines := make([]Output, 0, len(numbers))
	for _, n := range numbers {
		if n < 0 || n > 53 {
			return nil, fmt.Errorf("pin %d outside GPIO block", n)
		}
		fsel := uintptr(regFSEL0 + 4*(n/10))
		shift := uint(3 * (n % 10))
		v := m.regs.Read32(fsel)
		v = v&^(0b111<<shift) | fselOutput<<shift
		m.regs.Write32(fsel, v)

		pin := &MMIOPin{regs: m.regs, number: n}
		if err := pin.SetValue(0); err != nil {
			return nil, err
		}
		lines = append(lines, pin)
	}
	return lines, nil
}

// Close unmaps the block. Lines obtained from Outputs must not be used after.
func (m *MMIO) Close() error {
	if m.mem == nil {
		return nil
	}
	return m.mem.Close()
}

// SetValue sets the value of the pin (0 or 1)
func (p *MMIOPin) SetValue(value int) error {
	reg := uintptr(regCLR0)
	if value != 0 {
		reg = regSET0
	}
	p.regs.Write32(reg+uintptr(4*(p.number/32)), 1<<uint(p.number%32))
	return nil
}

// Close is a no-op; the block is released by MMIO.Close
func (p *MMIOPin) Close() error {
	return nil
}
