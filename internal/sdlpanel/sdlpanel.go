// Package sdlpanel shows the emulated panel in an SDL window and reads the
// two sticks from the keyboard, so the game can be played without hardware.
package sdlpanel

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/joduyemi/LedPanel/internal/joystick"
	"github.com/joduyemi/LedPanel/internal/types"
	"github.com/joduyemi/LedPanel/internal/hub75"
)

// Window is an SDL window wired to an emulated panel
type Window struct {
	window  *sdl.Window
	surface *sdl.Surface
	scale   int32

	panel *hub75.Emulator
}

// Event is a user request read from the window
type Event int

const (
	NoEvent Event = iota
	Quit
	ToggleSplash
)

// Open initialises SDL and creates a window with scale window pixels per LED.
// It must be called from the main thread.
func Open(scale int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("can't init SDL: %w", err)
	}

	s := int32(scale)
	window, err := sdl.CreateWindow("ledpong", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		types.Width*s, types.Height*s, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("can't create window: %w", err)
	}

	surface, err := window.GetSurface()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("can't get window surface: %w", err)
	}

	return &Window{
		window:  window,
		surface: surface,
		scale:   s,
		panel:   hub75.NewEmulator(),
	}, nil
}

// Close destroys the window and shuts SDL down
func (w *Window) Close() error {
	err := w.window.Destroy()
	sdl.Quit()
	return err
}

// Pins returns the lines of the emulated panel
func (w *Window) Pins() hub75.Pins {
	return w.panel.Pins()
}

// Present draws what the emulated panel shows. Each LED is drawn as a square
// with a one pixel gap.
func (w *Window) Present() error {
	frame := w.panel.Frame()

	if err := w.surface.FillRect(nil, sdl.MapRGB(w.surface.Format, 16, 16, 16)); err != nil {
		return err
	}
	for row := range frame {
		for col, p := range frame[row] {
			if p == types.Off {
				continue
			}
			c := p.RGBA()
			rect := &sdl.Rect{
				X: int32(col)*w.scale + 1,
				Y: int32(row)*w.scale + 1,
				W: w.scale - 2,
				H: w.scale - 2,
			}
			if err := w.surface.FillRect(rect, sdl.MapRGB(w.surface.Format, c.R, c.G, c.B)); err != nil {
				return err
			}
		}
	}
	return w.window.UpdateSurface()
}

// Poll drains the SDL event queue and returns the most significant request
func (w *Window) Poll() Event {
	ev := NoEvent
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch e := e.(type) {
		case *sdl.QuitEvent:
			return Quit
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_q:
				return Quit
			case sdl.K_SPACE:
				ev = ToggleSplash
			}
		}
	}
	return ev
}

// Sticks is an ADC reading the keyboard state: W/S move player 1 and the
// arrow keys or I/K move player 2
type Sticks struct {
	channels [2]int
	channel  int
	keys     func() []uint8
}

// NewSticks creates keyboard sticks for the given ADC channels
func NewSticks(channels [2]int) *Sticks {
	return &Sticks{
		channels: channels,
		keys:     sdl.GetKeyboardState,
	}
}

var stickKeys = [2]struct{ up, down []sdl.Scancode }{
	{up: []sdl.Scancode{sdl.SCANCODE_W}, down: []sdl.Scancode{sdl.SCANCODE_S}},
	{up: []sdl.Scancode{sdl.SCANCODE_UP, sdl.SCANCODE_I}, down: []sdl.Scancode{sdl.SCANCODE_DOWN, sdl.SCANCODE_K}},
}

func (s *Sticks) Select(channel int) error {
	if channel != s.channels[0] && channel != s.channels[1] {
		return fmt.Errorf("no stick on channel %d", channel)
	}
	s.channel = channel
	return nil
}

func (s *Sticks) Start() error { return nil }

func (s *Sticks) Done() bool { return true }

func (s *Sticks) Read() (uint16, error) {
	player := 0
	if s.channel == s.channels[1] {
		player = 1
	}
	state := s.keys()
	pressed := func(codes []sdl.Scancode) bool {
		for _, c := range codes {
			if int(c) < len(state) && state[c] != 0 {
				return true
			}
		}
		return false
	}

	up, down := pressed(stickKeys[player].up), pressed(stickKeys[player].down)
	switch {
	case up && !down:
		return joystick.FullScale, nil
	case down && !up:
		return 0, nil
	}
	return joystick.Centre, nil
}
