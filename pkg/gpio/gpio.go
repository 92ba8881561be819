// Package gpio provides digital output lines for the panel interface.
//
// Three backends are available: character device lines through go-gpiocdev,
// the legacy sysfs interface, and direct writes to the set/clear registers of
// a memory-mapped GPIO block.
package gpio

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Output is a digital output line
type Output interface {
	SetValue(value int) error
	Close() error
}

// CloseAll closes every line, logging failures, and returns the first error
func CloseAll(lines []Output) error {
	var first error
	for _, line := range lines {
		if line == nil {
			continue
		}
		if err := line.Close(); err != nil {
			log.Printf("Warning: failed to close line: %v", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// SysfsPin represents a GPIO pin using the sysfs interface. The value file
// stays open so that writes on the refresh path are a single syscall.
type SysfsPin struct {
	number int
	value  *os.File
	last   int
}

// sysfsRoot is replaced by tests
var sysfsRoot = "/sys/class/gpio"

// OpenSysfs exports and configures each pin as an output driven low
func OpenSysfs(numbers ...int) ([]Output, error) {
	lines := make([]Output, 0, len(numbers))
	for _, n := range numbers {
		pin, err := NewSysfsPin(n)
		if err != nil {
			CloseAll(lines)
			return nil, err
		}
		lines = append(lines, pin)
	}
	return lines, nil
}

// NewSysfsPin creates a new GPIO output pin using sysfs
func NewSysfsPin(number int) (*SysfsPin, error) {
	log.Printf("Creating GPIO pin %d using sysfs", number)

	if err := writeFile("export", strconv.Itoa(number)); err != nil {
		// Already exported pins report busy
		if !os.IsExist(err) && !strings.Contains(err.Error(), "device or resource busy") {
			return nil, fmt.Errorf("failed to export pin %d: %w", number, err)
		}
		log.Printf("Pin %d may already be exported, continuing...", number)
	}

	// Short delay to allow udev to fix up permissions on the new directory
	time.Sleep(100 * time.Millisecond)

	dir := fmt.Sprintf("gpio%d", number)
	if err := writeFile(dir+"/direction", "low"); err != nil {
		unexport(number)
		return nil, fmt.Errorf("failed to set pin %d direction: %w", number, err)
	}

	value, err := os.OpenFile(fmt.Sprintf("%s/%s/value", sysfsRoot, dir), os.O_WRONLY, 0)
	if err != nil {
		unexport(number)
		return nil, fmt.Errorf("failed to open pin %d value: %w", number, err)
	}

	return &SysfsPin{
		number: number,
		value:  value,
	}, nil
}

// SetValue sets the value of the GPIO pin (0 or 1)
func (p *SysfsPin) SetValue(value int) error {
	b := []byte{'0'}
	if value != 0 {
		b[0] = '1'
	}
	if _, err := p.value.WriteAt(b, 0); err != nil {
		return fmt.Errorf("failed to write pin %d: %w", p.number, err)
	}
	p.last = value
	return nil
}

// Value returns the last value written
func (p *SysfsPin) Value() int {
	return p.last
}

// Close closes the value file and unexports the pin
func (p *SysfsPin) Close() error {
	log.Printf("Closing GPIO pin %d", p.number)
	err := p.value.Close()
	unexport(p.number)
	return err
}

func unexport(number int) {
	if err := writeFile("unexport", strconv.Itoa(number)); err != nil {
		// Ignore errors during unexport, as the pin might already be cleaned up
		log.Printf("Warning: failed to unexport pin %d: %v", number, err)
	}
}

func writeFile(name, data string) error {
	f, err := os.OpenFile(sysfsRoot+"/"+name, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(data)
	return err
}
