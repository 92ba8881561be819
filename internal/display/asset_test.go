package display

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joduyemi/LedPanel/internal/types"
)

func TestDefaultSplash(t *testing.T) {
	f, err := DefaultSplash()
	if err != nil {
		t.Fatalf("DefaultSplash() error = %v", err)
	}

	red, yellow := f.Count(types.Red), f.Count(types.Yellow)
	off := f.Count(types.Off)
	if red+yellow+off != types.Width*types.Height {
		t.Errorf("splash uses colours other than off, red and yellow")
	}
	if red != 185 || yellow != 258 {
		t.Errorf("splash has %d red and %d yellow cells, want 185 and 258", red, yellow)
	}
	if f[1][16] != types.Red || f[0][16] != types.Off {
		t.Errorf("splash antenna not where expected")
	}
}

func TestLoadSVG(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" width="32" height="32" viewBox="0 0 32 32">
  <rect x="0" y="0" width="32" height="16" fill="#0000ff"/>
  <rect x="4" y="20" width="2" height="2" fill="#ffffff"/>
</svg>`

	f, err := LoadSVG(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadSVG() error = %v", err)
	}
	if got := f.Count(types.Blue); got != 32*16 {
		t.Errorf("blue cells = %d, want %d", got, 32*16)
	}
	if got := f.Count(types.White); got != 4 {
		t.Errorf("white cells = %d, want 4", got)
	}
	if f[21][5] != types.White {
		t.Errorf("cell (21,5) = %+v, want white", f[21][5])
	}
}

func TestFromImageScales(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 32; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	f := FromImage(img)
	if got := f.Count(types.Red); got != 16*32 {
		t.Errorf("red cells = %d, want %d", got, 16*32)
	}
	if f[0][15] != types.Red || f[0][16] != types.Off {
		t.Errorf("scaled edge misplaced")
	}
}

func TestLoadSplashPNG(t *testing.T) {
	var want types.Frame
	want[3][4] = types.Blue
	want[31][31] = types.White

	path := filepath.Join(t.TempDir(), "splash.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(file, Image(&want)); err != nil {
		t.Fatal(err)
	}
	file.Close()

	got, err := LoadSplash(path)
	if err != nil {
		t.Fatalf("LoadSplash() error = %v", err)
	}
	if *got != want {
		t.Error("png round trip changed the frame")
	}

	if _, err := LoadSplash(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("LoadSplash(missing) did not return error")
	}
}
