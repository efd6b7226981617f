package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/othello"
	"golang.org/x/exp/rand"
)

func main() {
	config.SetLogLevel()

	blackLevel := flag.Int("black", othello.DifficultyHard, "difficulty of the black bot")
	whiteLevel := flag.Int("white", othello.DifficultyMedium, "difficulty of the white bot")
	quiet := flag.Bool("quiet", false, "only print the final board")
	flag.Parse()

	rand.Seed(uint64(time.Now().UnixNano()))

	levels := map[othello.Color]int{
		othello.BLACK: *blackLevel,
		othello.WHITE: *whiteLevel,
	}

	game := othello.NewGame()

	for {
		turn, ok := game.Turn()
		if !ok {
			break
		}

		start := time.Now()
		move, _ := engine.BotMove(game.GetBoard(), turn, levels[turn])

		if err := game.PushMove(move); err != nil {
			slog.Error("Bot played an invalid move", "error", err)
			os.Exit(1)
		}

		if !*quiet {
			fmt.Printf("%s plays %s (score %d) in %s\n", turn, move, move.Score, time.Since(start).Round(time.Millisecond))
			game.GetBoard().Print(turn.Opponent())
		}
	}

	board := game.GetBoard()
	board.Print(othello.BLACK)

	black := board.CountDiscs(othello.BLACK)
	white := board.CountDiscs(othello.WHITE)

	moves := len(game.Moves())

	switch {
	case black > white:
		fmt.Printf("black wins %d-%d after %d moves\n", black, white, moves)
	case white > black:
		fmt.Printf("white wins %d-%d after %d moves\n", white, black, moves)
	default:
		fmt.Printf("draw %d-%d after %d moves\n", black, white, moves)
	}
}
