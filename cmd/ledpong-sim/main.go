package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/joduyemi/LedPanel/internal/config"
	"github.com/joduyemi/LedPanel/internal/console"
	"github.com/joduyemi/LedPanel/internal/display"
	"github.com/joduyemi/LedPanel/internal/joystick"
	"github.com/joduyemi/LedPanel/internal/sdlpanel"
	"github.com/joduyemi/LedPanel/internal/hub75"
)

func init() {
	// SDL must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	verbose := flag.Bool("v", false, "log the game state every tick")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Failed to load config from %s: %v", *configPath, err)
		}
		cfg = config.DefaultConfig()
	}

	window, err := sdlpanel.Open(cfg.Display.Scale)
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}
	defer window.Close()

	driver, err := hub75.NewDriver(window.Pins())
	if err != nil {
		log.Fatalf("Failed to create driver: %v", err)
	}

	image, err := display.LoadSplash(cfg.Display.Splash)
	if err != nil {
		log.Printf("Failed to load splash image: %v", err)
	}
	renderer := display.NewRenderer(image)
	renderer.ShowSplash(cfg.Display.ShowSplash)

	sticks := sdlpanel.NewSticks(cfg.Input.Channels)
	reader := joystick.NewReader(sticks, cfg.Input.Channels, cfg.PollTimeout())

	loop := console.NewLoop(reader, renderer, driver, cfg.TickInterval())
	loop.Verbose = *verbose

	log.Println("W/S move player 1, arrows or I/K move player 2, space toggles the splash, Esc quits")

	// Events are pumped on this thread between ticks, so the loop is ticked
	// here rather than through Loop.Run
	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()
	ctx := context.Background()
	for range ticker.C {
		switch window.Poll() {
		case sdlpanel.Quit:
			log.Printf("Quit after %d ticks", loop.Ticks())
			return
		case sdlpanel.ToggleSplash:
			renderer.ShowSplash(!renderer.SplashShown())
		}

		loop.Tick(ctx)
		if err := window.Present(); err != nil {
			log.Printf("Failed to present frame: %v", err)
		}
	}
}
