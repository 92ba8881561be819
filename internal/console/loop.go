// Package console runs the game: it owns the game state and the frame buffer
// and passes them through input, simulation, rendering and display each tick.
package console

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joduyemi/LedPanel/internal/game"
	"github.com/joduyemi/LedPanel/internal/types"
)

// DirectionReader reads a player's stick
type DirectionReader interface {
	ReadDirection(ctx context.Context, player types.Player) (types.Direction, error)
}

// FrameRenderer paints the game state into a frame
type FrameRenderer interface {
	Render(s game.State, f *types.Frame)
}

// FrameDriver pushes a frame to the panel
type FrameDriver interface {
	Drive(f *types.Frame) error
}

// Loop is the main loop
type Loop struct {
	input    DirectionReader
	renderer FrameRenderer
	driver   FrameDriver
	interval time.Duration

	state game.State
	frame types.Frame
	ticks uint64

	// Verbose logs the state after every tick
	Verbose bool
}

// NewLoop creates a loop starting from the serve state
func NewLoop(input DirectionReader, renderer FrameRenderer, driver FrameDriver, interval time.Duration) *Loop {
	return &Loop{
		input:    input,
		renderer: renderer,
		driver:   driver,
		interval: interval,
		state:    game.New(),
	}
}

// State returns the current game state
func (l *Loop) State() game.State {
	return l.state
}

// Frame returns the frame buffer
func (l *Loop) Frame() *types.Frame {
	return &l.frame
}

// Ticks returns the number of completed ticks
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Run ticks at the loop interval until ctx is cancelled. A tick is never
// interrupted part way through a refresh.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Tick(ctx)
		}
	}
}

// Tick reads both sticks, advances the game, renders and refreshes the panel.
// Input and display failures are logged; a stick that cannot be read counts
// as Neutral for the tick.
func (l *Loop) Tick(ctx context.Context) {
	p1 := l.read(ctx, types.Player1)
	p2 := l.read(ctx, types.Player2)

	l.state = game.Advance(l.state, p1, p2)
	l.renderer.Render(l.state, &l.frame)

	if err := l.driver.Drive(&l.frame); err != nil {
		log.Printf("Error driving panel: %v", err)
	}

	l.ticks++
	if l.Verbose {
		log.Printf("tick %d: %v (inputs %v/%v)", l.ticks, l.state, p1, p2)
	}
}

func (l *Loop) read(ctx context.Context, player types.Player) types.Direction {
	d, err := l.input.ReadDirection(ctx, player)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Printf("Failed to read %v: %v", player, err)
		}
		return types.Neutral
	}
	return d
}
