package display

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/joduyemi/LedPanel/internal/types"
)

//go:embed assets/splash.svg
var splashSVG []byte

// DefaultSplash returns the built-in splash image
func DefaultSplash() (*types.Frame, error) {
	return LoadSVG(bytes.NewReader(splashSVG))
}

// LoadSplash loads a splash image from an SVG or PNG file. An empty path
// gives the built-in image.
func LoadSplash(path string) (*types.Frame, error) {
	if path == "" {
		return DefaultSplash()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return LoadSVG(file)
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// LoadSVG rasterises an SVG document onto the panel grid
func LoadSVG(r io.Reader) (*types.Frame, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	icon.SetTarget(0, 0, types.Width, types.Height)

	img := image.NewRGBA(image.Rect(0, 0, types.Width, types.Height))
	scanner := rasterx.NewScannerGV(types.Width, types.Height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(types.Width, types.Height, scanner), 1)

	return FromImage(img), nil
}

// FromImage converts an image to a frame, scaling it to the panel size with
// nearest-neighbour sampling so that pixel art keeps hard edges
func FromImage(img image.Image) *types.Frame {
	panel := image.Rect(0, 0, types.Width, types.Height)
	if img.Bounds() != panel {
		scaled := image.NewRGBA(panel)
		draw.NearestNeighbor.Scale(scaled, panel, img, img.Bounds(), draw.Src, nil)
		img = scaled
	}

	f := new(types.Frame)
	for row := 0; row < types.Height; row++ {
		for col := 0; col < types.Width; col++ {
			f[row][col] = types.PixelFromColor(img.At(col, row))
		}
	}
	return f
}

// Image converts a frame to an RGBA image, one image pixel per LED
func Image(f *types.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, types.Width, types.Height))
	for row := range f {
		for col, p := range f[row] {
			img.SetRGBA(col, row, p.RGBA())
		}
	}
	return img
}
