package snake

import (
	"fmt"

	"hjkl-snake/pkg/core"
)

// Game owns the full simulation state for one board. It is not safe for
// concurrent use; the expected shape is one control loop calling
// QueueDirection, Step, and a renderer in sequence.
type Game struct {
	cfg Config

	// body is stored tail-first: body[0] is the tail, body[len-1] the head.
	// Both the per-step push and pop are O(1) that way.
	body []Point

	dir        Direction
	pending    Direction
	hasPending bool

	food map[Point]struct{}

	// rng advances only inside spawnFood, which keeps whole games replayable
	// from a seed plus an input script.
	rng *core.RNG

	status Status
	score  int
}

// New builds a game from cfg with a deterministic RNG seeded by seed.
// It fails fast on degenerate board dimensions.
func New(cfg Config, seed uint64) (*Game, error) {
	return NewWithRNG(cfg, core.NewRNG(seed))
}

// NewWithRNG builds a game that draws food positions from the provided RNG.
func NewWithRNG(cfg Config, rng *core.RNG) (*Game, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("snake: board %dx%d: %w", cfg.Width, cfg.Height, ErrBadDimensions)
	}
	g := &Game{cfg: cfg, rng: rng}
	g.Reset()
	return g, nil
}

// Config returns the board parameters.
func (g *Game) Config() Config { return g.cfg }

// Status returns Running or Dead.
func (g *Game) Status() Status { return g.status }

// Score returns the number of food items eaten since the last reset.
func (g *Game) Score() int { return g.score }

// Head returns the current head position. The body is never empty.
func (g *Game) Head() Point { return g.body[len(g.body)-1] }

// Segments returns a head-first copy of the snake body.
func (g *Game) Segments() []Point {
	out := make([]Point, len(g.body))
	for i, p := range g.body {
		out[len(out)-1-i] = p
	}
	return out
}

// Food returns the food positions in no particular order.
func (g *Game) Food() []Point {
	out := make([]Point, 0, len(g.food))
	for p := range g.food {
		out = append(out, p)
	}
	return out
}

// QueueDirection records a heading request for the next Step. Only the most
// recent request before a Step is honored; the 180-degree check happens at
// step time, not here.
func (g *Game) QueueDirection(d Direction) {
	g.pending = d
	g.hasPending = true
}

// Reset restores the initial layout: snake centered at mid-height heading
// right, score zero, one food item. The RNG stream is reused, not re-seeded.
func (g *Game) Reset() {
	g.status = Running
	g.score = 0
	g.body = g.body[:0]
	g.food = make(map[Point]struct{})
	g.dir = Right
	g.hasPending = false

	cx := g.cfg.Width / 2
	cy := g.cfg.Height / 2
	initLen := g.cfg.InitialLen
	if initLen < 1 {
		initLen = 1
	}
	for i := initLen - 1; i >= 0; i-- {
		g.body = append(g.body, Point{X: cx - i, Y: cy})
	}

	g.spawnFood()
}

// Step advances the game by one tick and reports the outcome. On a dead
// game it is a no-op.
func (g *Game) Step() TickResult {
	if g.status == Dead {
		return g.result(false)
	}

	// Commit the queued heading unless it would reverse the snake in place.
	if g.hasPending {
		if !g.pending.IsOpposite(g.dir) {
			g.dir = g.pending
		}
		g.hasPending = false
	}

	dx, dy := g.dir.Delta()
	head := g.Head()
	next := Point{X: head.X + dx, Y: head.Y + dy}

	if !g.cfg.WrapEdges && g.outOfBounds(next) {
		g.status = Dead
		return g.result(false)
	}
	if g.cfg.WrapEdges {
		next = g.wrap(next)
	}

	// The eating test comes before collision resolution: it decides whether
	// the tail stays put this tick, which changes what counts as the body.
	_, eating := g.food[next]
	tailMovesOff := !eating
	if g.collidesWithBody(next, tailMovesOff) {
		// Running into yourself is a rejected move, not a death; the board
		// is left untouched.
		return g.result(false)
	}

	g.body = append(g.body, next)

	if eating {
		delete(g.food, next)
		g.score++
		g.spawnFood()
		return g.result(true)
	}
	g.body = g.body[1:]
	return g.result(false)
}

func (g *Game) result(ate bool) TickResult {
	return TickResult{AteFood: ate, Status: g.status, Score: g.score}
}

func (g *Game) outOfBounds(p Point) bool {
	return p.X < 0 || p.X >= g.cfg.Width || p.Y < 0 || p.Y >= g.cfg.Height
}

// wrap maps an out-of-range coordinate onto the opposite edge. A single step
// moves at most one unit, so one wrap per axis is enough.
func (g *Game) wrap(p Point) Point {
	if p.X < 0 {
		p.X = g.cfg.Width - 1
	} else if p.X >= g.cfg.Width {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = g.cfg.Height - 1
	} else if p.Y >= g.cfg.Height {
		p.Y = 0
	}
	return p
}

// collidesWithBody reports whether p hits the snake. When the tail is about
// to move off it is excluded: the head may slide into the cell the tail
// vacates on the same tick.
func (g *Game) collidesWithBody(p Point, tailMovesOff bool) bool {
	start := 0
	if tailMovesOff && len(g.body) > 0 {
		start = 1
	}
	for _, s := range g.body[start:] {
		if s == p {
			return true
		}
	}
	return false
}

// spawnFood tries to place one food item on a free cell. Attempts are
// bounded so a nearly-full board degrades to "no food placed" instead of
// looping forever.
func (g *Game) spawnFood() {
	maxAttempts := 2 * g.cfg.Width * g.cfg.Height
	if maxAttempts < 8 {
		maxAttempts = 8
	}
	for i := 0; i < maxAttempts; i++ {
		p := Point{X: g.rng.IntN(g.cfg.Width), Y: g.rng.IntN(g.cfg.Height)}
		if g.occupiedBySnake(p) {
			continue
		}
		if _, ok := g.food[p]; ok {
			continue
		}
		g.food[p] = struct{}{}
		return
	}
}

func (g *Game) occupiedBySnake(p Point) bool {
	for _, s := range g.body {
		if s == p {
			return true
		}
	}
	return false
}
