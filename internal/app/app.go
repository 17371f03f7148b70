// Package app wires a snake game to a tcell terminal: key polling, tick
// pacing, and frame drawing. The core stays single-threaded; every mutation
// happens inside the Run loop.
package app

import (
	"fmt"
	"strings"
	"time"

	"hjkl-snake/pkg/braille"
	"hjkl-snake/pkg/snake"

	"github.com/gdamore/tcell/v2"
)

// App drives one game on one screen.
type App struct {
	screen tcell.Screen
	game   *snake.Game
	timer  *FixedStep

	baseTPS int
	ascii   bool
	paused  bool
	stepOne bool
}

// New constructs an App for the provided screen and game.
func New(screen tcell.Screen, game *snake.Game, cfg *Config) *App {
	return &App{
		screen:  screen,
		game:    game,
		timer:   NewFixedStep(cfg.TPS),
		baseTPS: cfg.TPS,
		ascii:   cfg.ASCII,
	}
}

// Run blocks until the player quits. The caller owns screen Init and Fini.
func (a *App) Run() error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	frame := time.NewTicker(time.Second / 30)
	defer frame.Stop()

	a.draw()
	for {
		select {
		case ev := <-events:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(tev) {
					return nil
				}
				a.draw()
			case *tcell.EventResize:
				a.screen.Sync()
				a.draw()
			}
		case <-frame.C:
			a.timer.SetTPS(a.tps())
			if a.timer.ShouldStep() && (!a.paused || a.stepOne) {
				a.game.Step()
				a.stepOne = false
			}
			a.draw()
		}
	}
}

// tps scales the base tick rate with the score. This is the only difficulty
// knob and it lives entirely outside the simulation.
func (a *App) tps() int {
	return scaledTPS(a.baseTPS, a.game.Score())
}

func scaledTPS(base, score int) int {
	return base + score/2
}

// handleKey maps a key event onto the game. It returns false when the
// player asked to quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.game.QueueDirection(snake.Up)
	case tcell.KeyDown:
		a.game.QueueDirection(snake.Down)
	case tcell.KeyLeft:
		a.game.QueueDirection(snake.Left)
	case tcell.KeyRight:
		a.game.QueueDirection(snake.Right)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			a.game.QueueDirection(snake.Left)
		case 'j':
			a.game.QueueDirection(snake.Down)
		case 'k':
			a.game.QueueDirection(snake.Up)
		case 'l':
			a.game.QueueDirection(snake.Right)
		case ' ':
			a.paused = !a.paused
		case 'n':
			a.stepOne = true
		case 'r':
			a.game.Reset()
		}
	}
	return true
}

// draw renders the current state centered on the screen with a status line
// underneath the board.
func (a *App) draw() {
	a.screen.Clear()

	r := snake.Rasterize(a.game)
	var body string
	if a.ascii {
		body = braille.ToASCII(r)
	} else {
		packed, err := braille.Pack(r)
		if err != nil {
			// Odd board sizes cannot be packed; fall back to ascii cells.
			packed = braille.ToASCII(r)
		}
		body = packed
	}

	lines := strings.Split(body, "\n")
	boardW := 0
	if len(lines) > 0 {
		boardW = len([]rune(lines[0]))
	}

	sw, sh := a.screen.Size()
	offX := (sw - boardW) / 2
	offY := (sh - len(lines) - 2) / 2
	if offX < 0 {
		offX = 0
	}
	if offY < 0 {
		offY = 0
	}

	style := tcell.StyleDefault
	for y, line := range lines {
		for x, ch := range []rune(line) {
			a.screen.SetContent(offX+x, offY+y, ch, nil, style)
		}
	}

	status := a.statusLine()
	statusX := (sw - len(status)) / 2
	if statusX < 0 {
		statusX = 0
	}
	for i, ch := range status {
		a.screen.SetContent(statusX+i, offY+len(lines)+1, ch, nil, style)
	}

	a.screen.Show()
}

func (a *App) statusLine() string {
	switch {
	case a.game.Status() == snake.Dead:
		return fmt.Sprintf("score %d   dead: [r] restart  [q] quit", a.game.Score())
	case a.paused:
		return fmt.Sprintf("score %d   paused: [space] resume  [n] step", a.game.Score())
	default:
		return fmt.Sprintf("score %d   [hjkl/arrows] steer  [space] pause  [q] quit", a.game.Score())
	}
}
