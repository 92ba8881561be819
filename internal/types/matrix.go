package types

import "image/color"

const (
	// Panel geometry. The panel is addressed as two 16-row halves sharing one
	// row address, so RowPairs rows are refreshed per frame.
	Width    = 32
	Height   = 32
	RowPairs = Height / 2
)

// Pixel is a cell of the panel with one on/off bit per colour channel
type Pixel struct {
	R bool
	G bool
	B bool
}

// Colours used by the game and the splash image
var (
	Off    = Pixel{}
	Red    = Pixel{R: true}
	Blue   = Pixel{B: true}
	White  = Pixel{R: true, G: true, B: true}
	Yellow = Pixel{R: true, G: true}
)

// RGBA converts the pixel to a fully saturated colour
func (p Pixel) RGBA() color.RGBA {
	c := color.RGBA{A: 255}
	if p.R {
		c.R = 255
	}
	if p.G {
		c.G = 255
	}
	if p.B {
		c.B = 255
	}
	return c
}

// PixelFromColor thresholds each channel of c at half intensity. Transparent
// colours are Off.
func PixelFromColor(c color.Color) Pixel {
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return Off
	}
	return Pixel{R: r >= 0x8000, G: g >= 0x8000, B: b >= 0x8000}
}

// Frame is the frame buffer, addressed [row][column]. Row 0 is the top edge
// and column 0 the left edge.
type Frame [Height][Width]Pixel

// Clear sets every cell to Off
func (f *Frame) Clear() {
	for row := range f {
		for col := range f[row] {
			f[row][col] = Off
		}
	}
}

// Set sets a cell, ignoring coordinates outside the panel
func (f *Frame) Set(row, col int, p Pixel) {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return
	}
	f[row][col] = p
}

// Count returns the number of cells holding p
func (f *Frame) Count(p Pixel) int {
	n := 0
	for row := range f {
		for col := range f[row] {
			if f[row][col] == p {
				n++
			}
		}
	}
	return n
}
