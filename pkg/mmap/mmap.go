// Package mmap maps physical register blocks from /dev/mem
package mmap

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MemoryMap represents a memory mapped register block
type MemoryMap struct {
	addr   uintptr
	region []byte
}

// NewMemoryMap maps size bytes of physical memory starting at addr. The
// address must be page aligned.
func NewMemoryMap(addr, size uintptr) (*MemoryMap, error) {
	return mapFile("/dev/mem", addr, size)
}

func mapFile(path string, addr, size uintptr) (*MemoryMap, error) {
	page := uintptr(os.Getpagesize())
	if addr%page != 0 {
		return nil, fmt.Errorf("address %#x is not page aligned", addr)
	}
	size = (size + page - 1) &^ (page - 1)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	region, err := unix.Mmap(int(f.Fd()), int64(addr), int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to mmap %#x: %w", addr, err)
	}

	return &MemoryMap{
		addr:   addr,
		region: region,
	}, nil
}

// Close unmaps the memory region
func (m *MemoryMap) Close() error {
	return unix.Munmap(m.region)
}

// Size returns the mapped length in bytes
func (m *MemoryMap) Size() int {
	return len(m.region)
}

func (m *MemoryMap) word(offset uintptr) *uint32 {
	if offset%4 != 0 || int(offset)+4 > len(m.region) {
		panic(fmt.Sprintf("register offset %#x outside mapped block", offset))
	}
	return (*uint32)(unsafe.Pointer(&m.region[offset]))
}

// Read32 reads a 32-bit register. Atomic loads keep the compiler from
// caching or merging device accesses.
func (m *MemoryMap) Read32(offset uintptr) uint32 {
	return atomic.LoadUint32(m.word(offset))
}

// Write32 writes a 32-bit register
func (m *MemoryMap) Write32(offset uintptr, value uint32) {
	atomic.StoreUint32(m.word(offset), value)
}
