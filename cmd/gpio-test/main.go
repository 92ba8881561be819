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
)

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	period := flag.Duration("period", time.Second, "time each line is held high")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Failed to load config from %s: %v", *configPath, err)
		}
		cfg = config.DefaultConfig()
	}

	log.Println("Starting GPIO test...")

	lines, closeLines, err := console.OpenLines(cfg)
	if err != nil {
		log.Fatalf("Failed to request lines: %v", err)
	}
	defer closeLines()

	log.Println("Successfully requested panel lines")

	// Set up signal handler for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Walk a single high level across the lines so each can be probed
	ticker := time.NewTicker(*period)
	defer ticker.Stop()
	current := 0
	for {
		for i, line := range lines {
			value := 0
			if i == current {
				value = 1
			}
			if err := line.SetValue(value); err != nil {
				log.Printf("Failed to set %s: %v", console.LineNames[i], err)
			}
		}
		log.Printf("%s high", console.LineNames[current])

		select {
		case <-ctx.Done():
			log.Println("Shutting down...")
			return
		case <-ticker.C:
			current = (current + 1) % len(lines)
		}
	}
}
