package mmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regs")
	if err := os.WriteFile(path, make([]byte, os.Getpagesize()), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := mapFile(path, 0, 0xb4)
	if err != nil {
		t.Fatalf("mapFile() error = %v", err)
	}
	defer m.Close()

	if m.Size() != os.Getpagesize() {
		t.Errorf("Size() = %d, want one page", m.Size())
	}

	m.Write32(0x1c, 0xdeadbeef)
	if got := m.Read32(0x1c); got != 0xdeadbeef {
		t.Errorf("Read32() = %#x, want 0xdeadbeef", got)
	}
	if got := m.Read32(0x20); got != 0 {
		t.Errorf("neighbouring register = %#x, want 0", got)
	}
}

func TestMapFileUnaligned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regs")
	if err := os.WriteFile(path, make([]byte, os.Getpagesize()), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := mapFile(path, 0x10, 0xb4); err == nil {
		t.Error("mapFile() with unaligned address did not return error")
	}
}

func TestWordBounds(t *testing.T) {
	m := &MemoryMap{region: make([]byte, 8)}
	defer func() {
		if recover() == nil {
			t.Error("Read32 past the block did not panic")
		}
	}()
	m.Read32(8)
}
