package main

import (
	"testing"

	"github.com/joduyemi/LedPanel/internal/types"
)

func TestUpdateFrame(t *testing.T) {
	var splash types.Frame
	splash[4][4] = types.Yellow

	tests := []struct {
		name  string
		check func(f *types.Frame) bool
	}{
		{name: "red", check: func(f *types.Frame) bool { return f.Count(types.Red) == types.Width*types.Height }},
		{name: "white", check: func(f *types.Frame) bool { return f.Count(types.White) == types.Width*types.Height }},
		{name: "checker", check: func(f *types.Frame) bool { return f.Count(types.Yellow) == types.Width*types.Height/2 }},
		{name: "rows", check: func(f *types.Frame) bool {
			return f.Count(types.Red) == types.Width && f.Count(types.Blue) == types.Width && f[0][0] == types.Red && f[16][0] == types.Blue
		}},
		{name: "splash", check: func(f *types.Frame) bool { return *f == splash }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f types.Frame
			if !updateFrame(&f, tt.name, 0, &splash) {
				t.Fatalf("updateFrame(%q) reported unknown pattern", tt.name)
			}
			if !tt.check(&f) {
				t.Errorf("pattern %q drawn incorrectly", tt.name)
			}
		})
	}

	var f types.Frame
	if updateFrame(&f, "plaid", 0, &splash) {
		t.Error("updateFrame accepted an unknown pattern")
	}
}
