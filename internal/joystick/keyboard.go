package joystick

import (
	"fmt"
	"time"

	"github.com/pkg/term"

	"github.com/joduyemi/LedPanel/internal/types"
)

// Key bindings for the terminal sticks
var keyBindings = map[byte]struct {
	player types.Player
	dir    types.Direction
}{
	'w': {types.Player1, types.Up},
	's': {types.Player1, types.Down},
	'i': {types.Player2, types.Up},
	'k': {types.Player2, types.Down},
}

type keySource interface {
	Available() (int, error)
	Read(b []byte) (int, error)
}

// Keyboard emulates two sticks from a terminal. Terminals only report key
// repeats, not releases, so a key press holds the stick over for a short
// while and auto-repeat keeps it there.
type Keyboard struct {
	src      keySource
	tty      *term.Term
	channels [2]int
	hold     time.Duration
	now      func() time.Time

	dir     [2]types.Direction
	until   [2]time.Time
	channel int
}

// OpenKeyboard puts the controlling terminal into cbreak mode and reads the
// sticks from it. channels gives the ADC channel assigned to each player.
func OpenKeyboard(channels [2]int, hold time.Duration) (*Keyboard, error) {
	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	k := newKeyboard(tty, channels, hold)
	k.tty = tty
	return k, nil
}

func newKeyboard(src keySource, channels [2]int, hold time.Duration) *Keyboard {
	return &Keyboard{
		src:      src,
		channels: channels,
		hold:     hold,
		now:      time.Now,
	}
}

// Close restores the terminal
func (k *Keyboard) Close() error {
	if k.tty == nil {
		return nil
	}
	if err := k.tty.Restore(); err != nil {
		k.tty.Close()
		return err
	}
	return k.tty.Close()
}

func (k *Keyboard) Select(channel int) error {
	if channel != k.channels[0] && channel != k.channels[1] {
		return fmt.Errorf("no stick on channel %d", channel)
	}
	k.channel = channel
	return nil
}

// Start drains pending key presses
func (k *Keyboard) Start() error {
	n, err := k.src.Available()
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	buf := make([]byte, n)
	n, err = k.src.Read(buf)
	if err != nil {
		return err
	}
	now := k.now()
	for _, b := range buf[:n] {
		if bind, ok := keyBindings[b|0x20]; ok {
			k.dir[bind.player] = bind.dir
			k.until[bind.player] = now.Add(k.hold)
		}
	}
	return nil
}

func (k *Keyboard) Done() bool {
	return true
}

func (k *Keyboard) Read() (uint16, error) {
	player := types.Player1
	if k.channel == k.channels[1] {
		player = types.Player2
	}
	if k.now().After(k.until[player]) {
		return Centre, nil
	}
	switch k.dir[player] {
	case types.Up:
		return FullScale, nil
	case types.Down:
		return 0, nil
	}
	return Centre, nil
}
