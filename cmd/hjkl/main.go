package main

import (
	"flag"
	"fmt"
	"log"

	"hjkl-snake/internal/app"
	"hjkl-snake/pkg/snake"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := snake.New(snake.Config{
		Width:           cfg.Width,
		Height:          cfg.Height,
		WrapEdges:       cfg.Wrap,
		InitialLen:      cfg.Length,
		BrailleFriendly: !cfg.ASCII,
	}, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.HideCursor()

	runErr := app.New(screen, game, cfg).Run()
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
	fmt.Printf("final score: %d\n", game.Score())
}
