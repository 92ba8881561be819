package display

import (
	"github.com/joduyemi/LedPanel/internal/game"
	"github.com/joduyemi/LedPanel/internal/types"
)

// Render paints the game state into f. The frame is cleared first and the
// ball is drawn after the paddles so it stays visible when they overlap.
func Render(s game.State, f *types.Frame) {
	f.Clear()
	drawPaddle(f, s.Paddle1, game.LeftColumn, types.Red)
	drawPaddle(f, s.Paddle2, game.RightColumn, types.Blue)
	f.Set(s.BallY, s.BallX, types.White)
}

func drawPaddle(f *types.Frame, top, col int, p types.Pixel) {
	for row := top; row < top+game.PaddleLength; row++ {
		f.Set(row, col, p)
	}
}

// Renderer handles the display rendering logic, switching between the live
// game and a static splash image
type Renderer struct {
	splash     *types.Frame
	showSplash bool
}

// NewRenderer creates a new renderer instance. A nil splash disables the
// splash mode.
func NewRenderer(splash *types.Frame) *Renderer {
	return &Renderer{
		splash: splash,
	}
}

// ShowSplash selects between the splash image and the live game
func (r *Renderer) ShowSplash(show bool) {
	r.showSplash = show && r.splash != nil
}

// SplashShown reports whether the splash image is being rendered
func (r *Renderer) SplashShown() bool {
	return r.showSplash
}

// Render renders the current state to f
func (r *Renderer) Render(s game.State, f *types.Frame) {
	if r.showSplash {
		*f = *r.splash
		return
	}
	Render(s, f)
}
