package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"encircle/internal/config"
	"encircle/internal/game"
	"encircle/internal/logging"
	"encircle/internal/render"
)

// Console hot-seat game: both players share the terminal and type the
// intersection they want as "i j".
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

	newGame := func() *game.Game {
		g, err := game.New(cfg.Board.Rows, cfg.Board.Cols, game.WithNames(cfg.Players.Blue, cfg.Players.Red))
		if err != nil {
			log.Fatal("new game", zap.Error(err))
		}
		return g
	}
	g := newGame()

	reader := bufio.NewReader(os.Stdin)
	for {
		s := g.Snapshot()
		fmt.Printf("\n%s", render.ASCII(s))
		fmt.Println(render.ScoreLine(s))
		fmt.Printf("Enter column and row (0-%d 0-%d), r to reset, q to quit\n> ", s.Cols-1, s.Rows-1)

		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if err != nil && len(parts) == 0 {
			break
		}

		switch {
		case len(parts) == 1 && parts[0] == "q":
			finish(g)
			return
		case len(parts) == 1 && parts[0] == "r":
			g = newGame()
			continue
		case len(parts) != 2:
			fmt.Println("Expected two numbers, e.g. 4 7.")
			continue
		}

		i, errI := strconv.Atoi(parts[0])
		j, errJ := strconv.Atoi(parts[1])
		if errI != nil || errJ != nil {
			fmt.Println("Expected two numbers, e.g. 4 7.")
			continue
		}

		res, err := g.Play(i, j)
		switch {
		case errors.Is(err, game.ErrOutOfBounds):
			fmt.Println("That intersection is off the board.")
			continue
		case errors.Is(err, game.ErrCellOccupied):
			fmt.Println("That intersection is taken.")
			continue
		case err != nil:
			log.Error("play", zap.Error(err))
			continue
		}
		if res.ScoreDelta > 0 {
			fmt.Printf("%s encircled %d point(s)!\n", g.Name(res.Player), res.ScoreDelta)
		}
	}
	finish(g)
}

func finish(g *game.Game) {
	fmt.Println("\nGame over.")
	js, _ := json.MarshalIndent(g.Snapshot(), "", "  ")
	fmt.Println(string(js))
}
