package app

import (
	"strings"
	"testing"

	"hjkl-snake/pkg/snake"

	"github.com/gdamore/tcell/v2"
)

func simApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.Length = 10, 8, 3
	game, err := snake.New(snake.Config{
		Width:           cfg.Width,
		Height:          cfg.Height,
		WrapEdges:       cfg.Wrap,
		InitialLen:      cfg.Length,
		BrailleFriendly: !cfg.ASCII,
	}, cfg.Seed)
	if err != nil {
		t.Fatalf("snake.New: %v", err)
	}
	return New(screen, game, cfg), screen
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestKeysSteerTheSnake(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want snake.Point // head delta after one step
	}{
		{key(tcell.KeyUp, 0), snake.Point{X: 0, Y: -1}},
		{key(tcell.KeyRune, 'k'), snake.Point{X: 0, Y: -1}},
		{key(tcell.KeyDown, 0), snake.Point{X: 0, Y: 1}},
		{key(tcell.KeyRune, 'j'), snake.Point{X: 0, Y: 1}},
		{key(tcell.KeyRight, 0), snake.Point{X: 1, Y: 0}},
		{key(tcell.KeyRune, 'l'), snake.Point{X: 1, Y: 0}},
	}
	for _, c := range cases {
		a, _ := simApp(t)
		before := a.game.Head()
		if !a.handleKey(c.ev) {
			t.Fatalf("steer key %v/%q quit the app", c.ev.Key(), c.ev.Rune())
		}
		a.game.Step()
		after := a.game.Head()
		got := snake.Point{X: after.X - before.X, Y: after.Y - before.Y}
		if got != c.want {
			t.Fatalf("key %v/%q moved head by %v, want %v", c.ev.Key(), c.ev.Rune(), got, c.want)
		}
	}
}

func TestLeftKeyIsDroppedWhileHeadingRight(t *testing.T) {
	a, _ := simApp(t)
	before := a.game.Head()
	a.handleKey(key(tcell.KeyRune, 'h'))
	a.game.Step()
	if (a.game.Head() != snake.Point{X: before.X + 1, Y: before.Y}) {
		t.Fatalf("head = %v, want continued rightward move from %v", a.game.Head(), before)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		key(tcell.KeyEscape, 0),
		key(tcell.KeyCtrlC, 0),
		key(tcell.KeyRune, 'q'),
	} {
		a, _ := simApp(t)
		if a.handleKey(ev) {
			t.Fatalf("key %v/%q did not quit", ev.Key(), ev.Rune())
		}
	}
}

func TestPauseAndSingleStep(t *testing.T) {
	a, _ := simApp(t)
	a.handleKey(key(tcell.KeyRune, ' '))
	if !a.paused {
		t.Fatal("space did not pause")
	}
	a.handleKey(key(tcell.KeyRune, 'n'))
	if !a.stepOne {
		t.Fatal("n did not request a single step")
	}
	a.handleKey(key(tcell.KeyRune, ' '))
	if a.paused {
		t.Fatal("space did not resume")
	}
}

func TestResetKeyRestartsAfterDeath(t *testing.T) {
	a, _ := simApp(t)
	// Run the snake into the right wall.
	for i := 0; i < 20 && a.game.Status() == snake.Running; i++ {
		a.game.Step()
	}
	if a.game.Status() != snake.Dead {
		t.Fatal("snake did not die against the wall")
	}
	a.handleKey(key(tcell.KeyRune, 'r'))
	if a.game.Status() != snake.Running {
		t.Fatalf("status after reset key = %v, want Running", a.game.Status())
	}
}

func TestDrawRendersBoardAndStatus(t *testing.T) {
	a, screen := simApp(t)
	a.draw()

	cells, w, h := screen.GetContents()
	if w != 80 || h != 24 {
		t.Fatalf("screen size = %dx%d, want 80x24", w, h)
	}
	braille := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] >= '⠀' && c.Runes[0] <= '⣿' {
			braille++
		}
	}
	// A 10x8 board packs into 5x2 glyphs.
	if braille != 10 {
		t.Fatalf("drew %d braille cells, want 10", braille)
	}

	var line strings.Builder
	for _, c := range cells {
		if len(c.Runes) > 0 {
			line.WriteRune(c.Runes[0])
		}
	}
	if !strings.Contains(line.String(), "score 0") {
		t.Fatal("status line with the score was not drawn")
	}
}

func TestScoreScalesTickRate(t *testing.T) {
	cases := []struct {
		base, score, want int
	}{
		{8, 0, 8},
		{8, 1, 8},
		{8, 4, 10},
		{8, 20, 18},
		{12, 7, 15},
	}
	for _, c := range cases {
		if got := scaledTPS(c.base, c.score); got != c.want {
			t.Fatalf("scaledTPS(%d, %d) = %d, want %d", c.base, c.score, got, c.want)
		}
	}
}
