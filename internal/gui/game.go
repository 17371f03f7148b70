//go:build ebiten

// Package gui adapts a snake game to the ebiten.Game interface for the
// graphical frontend.
package gui

import (
	"fmt"
	"image/color"

	"hjkl-snake/internal/render"
	"hjkl-snake/pkg/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Game drives one snake game per window.
type Game struct {
	game    *snake.Game
	painter *render.GridPainter

	onColor  color.Color
	offColor color.Color

	scale   int
	baseTPS int
	paused  bool
	stepOne bool
}

// New constructs a Game for the provided simulation.
func New(g *snake.Game, scale, baseTPS int) *Game {
	cfg := g.Config()
	return &Game{
		game:     g,
		painter:  render.NewGridPainter(cfg.Width, cfg.Height),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		baseTPS:  baseTPS,
	}
}

// Update handles input and advances the simulation by one tick per call;
// the tick cadence is whatever ebiten's TPS is set to.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOne = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Reset()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyK):
		g.game.QueueDirection(snake.Up)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyJ):
		g.game.QueueDirection(snake.Down)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.game.QueueDirection(snake.Left)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.game.QueueDirection(snake.Right)
	}

	if (!g.paused) || g.stepOne {
		g.game.Step()
		g.stepOne = false
	}
	// Speed up with the score; the simulation itself has no difficulty knob.
	ebiten.SetTPS(g.baseTPS + g.game.Score()/2)
	return nil
}

// Draw renders the current occupancy grid plus a score line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, snake.Rasterize(g.game).Cells(), g.onColor, g.offColor, g.scale)

	line := fmt.Sprintf("score %d", g.game.Score())
	if g.game.Status() == snake.Dead {
		line += "  dead: R restarts"
	}
	text.Draw(screen, line, basicfont.Face7x13, 4, 14, color.White)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.game.Config()
	return cfg.Width * g.scale, cfg.Height * g.scale
}
