package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joduyemi/LedPanel/internal/config"
	"github.com/joduyemi/LedPanel/internal/console"
	"github.com/joduyemi/LedPanel/internal/display"
	"github.com/joduyemi/LedPanel/internal/types"
)

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	pattern := flag.String("pattern", "cycle", "test pattern: cycle, red, green, blue, white, checker, rows or splash")
	hold := flag.Duration("hold", 2*time.Second, "time each pattern is shown when cycling")
	flag.Parse()

	var scratch types.Frame
	if *pattern != "cycle" && !updateFrame(&scratch, *pattern, 0, &scratch) {
		log.Fatalf("Unknown pattern %q", *pattern)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Failed to load config from %s: %v", *configPath, err)
		}
		cfg = config.DefaultConfig()
	}

	driver, closePanel, err := console.OpenPanel(cfg)
	if err != nil {
		log.Fatalf("Failed to open panel: %v", err)
	}
	defer closePanel()

	splash, err := display.LoadSplash(cfg.Display.Splash)
	if err != nil {
		log.Printf("Failed to load splash image: %v", err)
		splash = new(types.Frame)
	}

	// Set up signal handler for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var frame types.Frame
	counter := 0
	started := time.Now()

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("Panel test stopped")
			return
		case <-ticker.C:
		}

		name := *pattern
		if name == "cycle" {
			names := []string{"red", "green", "blue", "white", "checker", "rows", "splash"}
			name = names[int(time.Since(started) / *hold)%len(names)]
		}
		updateFrame(&frame, name, counter, splash)
		counter++

		if err := driver.Drive(&frame); err != nil {
			log.Printf("Error rendering frame: %v", err)
		}
	}
}

// updateFrame draws the named test pattern. counter animates the moving
// patterns.
func updateFrame(f *types.Frame, name string, counter int, splash *types.Frame) bool {
	switch name {
	case "red":
		fillColor(f, types.Red)
	case "green":
		fillColor(f, types.Pixel{G: true})
	case "blue":
		fillColor(f, types.Blue)
	case "white":
		fillColor(f, types.White)
	case "checker":
		fillCheckerboard(f, counter)
	case "rows":
		// Light one row address at a time to check the address lines
		f.Clear()
		row := (counter / 10) % types.RowPairs
		for col := 0; col < types.Width; col++ {
			f[row][col] = types.Red
			f[row+types.RowPairs][col] = types.Blue
		}
	case "splash":
		*f = *splash
	default:
		return false
	}
	return true
}

// fillColor fills the entire frame with a solid colour
func fillColor(f *types.Frame, p types.Pixel) {
	for row := range f {
		for col := range f[row] {
			f[row][col] = p
		}
	}
}

// fillCheckerboard draws 4x4 yellow cells, shifting every eight frames
func fillCheckerboard(f *types.Frame, offset int) {
	const cellSize = 4
	for row := range f {
		for col := range f[row] {
			if (row/cellSize+col/cellSize+offset/8)%2 == 0 {
				f[row][col] = types.Yellow
			} else {
				f[row][col] = types.Off
			}
		}
	}
}
