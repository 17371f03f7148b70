// hjkl-sim steps a game headlessly and dumps each frame to stdout. Useful
// for eyeballing the renderer and for replaying a seed plus input script
// without a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"hjkl-snake/pkg/braille"
	"hjkl-snake/pkg/snake"
)

func main() {
	steps := flag.Int("steps", 5, "ticks to simulate")
	seed := flag.Uint64("seed", 42, "seed for food placement")
	script := flag.String("script", "", "per-tick inputs, one of UDLR per tick ('.' = none)")
	ascii := flag.Bool("ascii", false, "render with ascii cells instead of braille")
	set := flag.String("set", "", "board overrides, comma-separated k=v pairs (w, h, wrap, len)")
	flag.Parse()

	cfg := snake.FromMap(parsePairs(*set))
	game, err := snake.New(cfg, *seed)
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < *steps; i++ {
		if d, ok := scriptedDirection(*script, i); ok {
			game.QueueDirection(d)
		}
		fmt.Println("===============================")
		fmt.Println(frame(game, *ascii))
		res := game.Step()
		fmt.Printf("tick %d: ate=%v status=%v score=%d\n", i+1, res.AteFood, res.Status, res.Score)
	}
	fmt.Println("===============================")
	fmt.Println(frame(game, *ascii))
}

func frame(g *snake.Game, ascii bool) string {
	r := snake.Rasterize(g)
	if !ascii {
		if packed, err := braille.Pack(r); err == nil {
			return packed
		}
	}
	return braille.ToASCII(r)
}

func scriptedDirection(script string, tick int) (snake.Direction, bool) {
	if tick >= len(script) {
		return 0, false
	}
	switch script[tick] {
	case 'U', 'u':
		return snake.Up, true
	case 'D', 'd':
		return snake.Down, true
	case 'L', 'l':
		return snake.Left, true
	case 'R', 'r':
		return snake.Right, true
	}
	return 0, false
}

func parsePairs(s string) map[string]string {
	if s == "" {
		return nil
	}
	out := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out
}
