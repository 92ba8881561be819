package gpio

import (
	"os"
	"path/filepath"
	"testing"
)

func fakeSysfs(t *testing.T, pins ...int) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"export", "unexport"} {
		if err := os.WriteFile(filepath.Join(root, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	for _, n := range pins {
		dir := filepath.Join(root, "gpio"+itoa(n))
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		for _, name := range []string{"direction", "value"} {
			if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}
	old := sysfsRoot
	sysfsRoot = root
	t.Cleanup(func() { sysfsRoot = old })
	return root
}

func itoa(n int) string {
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

func TestSysfsPin(t *testing.T) {
	root := fakeSysfs(t, 17)

	lines, err := OpenSysfs(17)
	if err != nil {
		t.Fatalf("OpenSysfs() error = %v", err)
	}

	direction, _ := os.ReadFile(filepath.Join(root, "gpio17", "direction"))
	if string(direction) != "low" {
		t.Errorf("direction = %q, want \"low\"", direction)
	}

	for _, v := range []int{1, 0, 1} {
		if err := lines[0].SetValue(v); err != nil {
			t.Fatalf("SetValue(%d) error = %v", v, err)
		}
		value, _ := os.ReadFile(filepath.Join(root, "gpio17", "value"))
		if want := string(rune('0' + v)); string(value) != want {
			t.Errorf("value after SetValue(%d) = %q, want %q", v, value, want)
		}
	}
	if got := lines[0].(*SysfsPin).Value(); got != 1 {
		t.Errorf("Value() = %d, want 1", got)
	}

	if err := CloseAll(lines); err != nil {
		t.Errorf("CloseAll() error = %v", err)
	}
}

func TestOpenSysfsMissingPin(t *testing.T) {
	fakeSysfs(t, 17)
	if _, err := OpenSysfs(17, 18); err == nil {
		t.Error("OpenSysfs() with a missing pin directory did not return error")
	}
}

func TestNewSysfsPinUnexportsOnFailure(t *testing.T) {
	tests := []struct {
		name  string
		files []string
	}{
		{name: "no direction file"},
		{name: "no value file", files: []string{"direction"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := fakeSysfs(t)
			dir := filepath.Join(root, "gpio18")
			if err := os.Mkdir(dir, 0o755); err != nil {
				t.Fatal(err)
			}
			for _, name := range tt.files {
				if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
					t.Fatal(err)
				}
			}

			if _, err := NewSysfsPin(18); err == nil {
				t.Fatal("NewSysfsPin() did not return error")
			}
			unexported, _ := os.ReadFile(filepath.Join(root, "unexport"))
			if string(unexported) != "18" {
				t.Errorf("unexport = %q, want \"18\"", unexported)
			}
		})
	}
}

type fakeRegisters map[uintptr]uint32

func (r fakeRegisters) Read32(offset uintptr) uint32         { return r[offset] }
func (r fakeRegisters) Write32(offset uintptr, value uint32) { r[offset] = value }

func TestMMIOOutputs(t *testing.T) {
	regs := fakeRegisters{0x04: 0xffffffff}
	m := NewMMIO(regs)

	lines, err := m.Outputs(2, 13, 40)
	if err != nil {
		t.Fatalf("Outputs() error = %v", err)
	}

	// pin 2 in FSEL0 bits 6-8, pin 13 in FSEL1 bits 9-11
	if got := regs[0x00]; got != 0b001<<6 {
		t.Errorf("FSEL0 = %#x, want %#x", got, 0b001<<6)
	}
	if got, want := regs[0x04], uint32(0xffffffff)&^(0b111<<9)|0b001<<9; got != want {
		t.Errorf("FSEL1 = %#x, want %#x", got, want)
	}

	if err := lines[1].SetValue(1); err != nil {
		t.Fatal(err)
	}
	if got := regs[regSET0]; got != 1<<13 {
		t.Errorf("SET0 = %#x, want %#x", got, 1<<13)
	}
	if err := lines[2].SetValue(0); err != nil {
		t.Fatal(err)
	}
	if got := regs[regCLR0+4]; got != 1<<8 {
		t.Errorf("CLR1 = %#x, want %#x", got, 1<<8)
	}

	if _, err := m.Outputs(60); err == nil {
		t.Error("Outputs(60) did not return error")
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
