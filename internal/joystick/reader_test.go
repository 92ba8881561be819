package joystick

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joduyemi/LedPanel/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  uint16
		want types.Direction
	}{
		{raw: 0, want: types.Down},
		{raw: 999, want: types.Down},
		{raw: 1000, want: types.Neutral},
		{raw: Centre, want: types.Neutral},
		{raw: 3000, want: types.Neutral},
		{raw: 3001, want: types.Up},
		{raw: FullScale, want: types.Up},
	}
	for _, tt := range tests {
		if got := Classify(tt.raw); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestReadDirection(t *testing.T) {
	adc := NewFixed()
	adc.Set(1, 3500)
	adc.Set(6, 200)
	r := NewReader(adc, [2]int{1, 6}, time.Millisecond)

	ctx := context.Background()
	if d, err := r.ReadDirection(ctx, types.Player1); err != nil || d != types.Up {
		t.Errorf("player 1 = %v, %v, want Up", d, err)
	}
	if d, err := r.ReadDirection(ctx, types.Player2); err != nil || d != types.Down {
		t.Errorf("player 2 = %v, %v, want Down", d, err)
	}
}

// stuckADC never completes a conversion
type stuckADC struct {
	Fixed
	polls int
}

func (s *stuckADC) Done() bool {
	s.polls++
	return false
}

func TestReadDirectionTimeout(t *testing.T) {
	adc := &stuckADC{Fixed: *NewFixed()}
	r := NewReader(adc, [2]int{1, 6}, 2*time.Millisecond)

	d, err := r.ReadDirection(context.Background(), types.Player2)
	if !errors.Is(err, ErrSampleTimeout) {
		t.Fatalf("ReadDirection() error = %v, want ErrSampleTimeout", err)
	}
	if d != types.Neutral {
		t.Errorf("ReadDirection() = %v on timeout, want Neutral", d)
	}
	if adc.polls == 0 {
		t.Error("conversion was never polled")
	}
}

func TestReadDirectionCancelled(t *testing.T) {
	adc := &stuckADC{Fixed: *NewFixed()}
	r := NewReader(adc, [2]int{1, 6}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.ReadDirection(ctx, types.Player1); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadDirection() error = %v, want context.Canceled", err)
	}
}

func TestIIO(t *testing.T) {
	dir := t.TempDir()
	write := func(ch, value string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, "in_voltage"+ch+"_raw"), []byte(value), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("1", "3100\n")
	write("6", "garbage\n")

	adc, err := NewIIO(dir)
	if err != nil {
		t.Fatalf("NewIIO() error = %v", err)
	}
	r := NewReader(adc, [2]int{1, 6}, time.Millisecond)

	if d, err := r.ReadDirection(context.Background(), types.Player1); err != nil || d != types.Up {
		t.Errorf("player 1 = %v, %v, want Up", d, err)
	}
	if _, err := r.ReadDirection(context.Background(), types.Player2); err == nil {
		t.Error("malformed sample did not return error")
	}

	write("6", "900")
	if d, err := r.ReadDirection(context.Background(), types.Player2); err != nil || d != types.Down {
		t.Errorf("player 2 = %v, %v, want Down", d, err)
	}

	if err := adc.Select(3); err == nil {
		t.Error("Select() of a missing channel did not return error")
	}
	if _, err := NewIIO(filepath.Join(dir, "missing")); err == nil {
		t.Error("NewIIO() of a missing directory did not return error")
	}
}
