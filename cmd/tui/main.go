package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"encircle/internal/config"
	"encircle/internal/game"
	"encircle/internal/logging"
)

// Terminal hot-seat game.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal("new screen", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		log.Fatal("init screen", zap.Error(err))
	}
	defer screen.Fini()
	screen.EnableMouse()

	newGame := func() (*game.Game, error) {
		return game.New(cfg.Board.Rows, cfg.Board.Cols, game.WithNames(cfg.Players.Blue, cfg.Players.Red))
	}
	u, err := newUI(screen, newGame, cfg.Board.HitRadius)
	if err != nil {
		screen.Fini()
		log.Fatal("new game", zap.Error(err))
	}

	for {
		u.draw()
		if !u.handle(screen.PollEvent()) {
			return
		}
	}
}
