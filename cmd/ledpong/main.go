package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joduyemi/LedPanel/internal/config"
	"github.com/joduyemi/LedPanel/internal/console"
	"github.com/joduyemi/LedPanel/internal/display"
)

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	splash := flag.Bool("splash", false, "show the splash image instead of the game")
	verbose := flag.Bool("v", false, "log the game state every tick")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Failed to load config from %s: %v", *configPath, err)
		}
		log.Printf("No config at %s, using default configuration", *configPath)
		cfg = config.DefaultConfig()
	}

	driver, closePanel, err := console.OpenPanel(cfg)
	if err != nil {
		log.Fatalf("Failed to open panel: %v", err)
	}
	defer closePanel()

	reader, closeInput, err := console.OpenInput(cfg)
	if err != nil {
		closePanel()
		log.Fatalf("Failed to open joysticks: %v", err)
	}
	defer closeInput()

	image, err := display.LoadSplash(cfg.Display.Splash)
	if err != nil {
		log.Printf("Failed to load splash image: %v", err)
	}
	renderer := display.NewRenderer(image)
	renderer.ShowSplash(*splash || cfg.Display.ShowSplash)

	// Set up signal handler for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loop := console.NewLoop(reader, renderer, driver, cfg.TickInterval())
	loop.Verbose = *verbose

	log.Printf("Starting game, tick every %v", cfg.TickInterval())
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Game stopped: %v", err)
	}
	log.Printf("Shutting down after %d ticks", loop.Ticks())
}
