//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"hjkl-snake/internal/app"
	"hjkl-snake/internal/gui"
	"hjkl-snake/pkg/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	scale := flag.Int("scale", 16, "pixel scale multiplier")
	flag.Parse()

	game, err := snake.New(snake.Config{
		Width:           cfg.Width,
		Height:          cfg.Height,
		WrapEdges:       cfg.Wrap,
		InitialLen:      cfg.Length,
		BrailleFriendly: false,
	}, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("hjkl-snake")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*(*scale), cfg.Height*(*scale))

	if err := ebiten.RunGame(gui.New(game, *scale, cfg.TPS)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
