// Package joystick turns analog stick samples into paddle directions.
package joystick

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/joduyemi/LedPanel/internal/types"
)

const (
	// Samples above UpThreshold read as Up and below DownThreshold as Down.
	// The ADC is 12 bit, so a centred stick reads about 2048.
	UpThreshold   = 3000
	DownThreshold = 1000

	// FullScale is the largest 12-bit sample
	FullScale = 4095
	// Centre is the sample of a stick at rest
	Centre = 2048
)

// ErrSampleTimeout is returned when a conversion does not complete in time
var ErrSampleTimeout = errors.New("adc conversion timed out")

// ADC is a single-conversion analog to digital converter
type ADC interface {
	// Select chooses the channel for the next conversion
	Select(channel int) error
	// Start begins a conversion on the selected channel
	Start() error
	// Done reports whether the conversion has completed
	Done() bool
	// Read returns the result of the completed conversion
	Read() (uint16, error)
}

// Classify maps a raw sample to a direction
func Classify(raw uint16) types.Direction {
	switch {
	case raw > UpThreshold:
		return types.Up
	case raw < DownThreshold:
		return types.Down
	default:
		return types.Neutral
	}
}

// Reader reads both players' sticks from one ADC
type Reader struct {
	adc      ADC
	channels [2]int
	timeout  time.Duration
}

// NewReader creates a reader sampling channels[0] for player 1 and
// channels[1] for player 2. A conversion that has not completed after
// timeout is abandoned.
func NewReader(adc ADC, channels [2]int, timeout time.Duration) *Reader {
	return &Reader{
		adc:      adc,
		channels: channels,
		timeout:  timeout,
	}
}

// ReadDirection samples the player's stick and classifies it
func (r *Reader) ReadDirection(ctx context.Context, player types.Player) (types.Direction, error) {
	raw, err := r.Sample(ctx, player)
	if err != nil {
		return types.Neutral, err
	}
	return Classify(raw), nil
}

// Sample performs one conversion on the player's channel, polling until it
// completes, the timeout passes or ctx is cancelled
func (r *Reader) Sample(ctx context.Context, player types.Player) (uint16, error) {
	channel := r.channels[player]
	if err := r.adc.Select(channel); err != nil {
		return 0, fmt.Errorf("failed to select channel %d: %w", channel, err)
	}
	if err := r.adc.Start(); err != nil {
		return 0, fmt.Errorf("failed to start conversion on channel %d: %w", channel, err)
	}

	deadline := time.Now().Add(r.timeout)
	for !r.adc.Done() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if time.Now().After(deadline) {
			return 0, fmt.Errorf("channel %d: %w", channel, ErrSampleTimeout)
		}
		runtime.Gosched()
	}

	raw, err := r.adc.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read channel %d: %w", channel, err)
	}
	return raw, nil
}
