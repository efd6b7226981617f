package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/reversi/internal/othello"
)

func main() {
	boardString := flag.String("board", othello.NewBoardStart().String(), "the board to show, 64 characters of '-', 'X' and 'O'")
	white := flag.Bool("white", false, "show the valid moves of white instead of black")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	player := othello.BLACK
	if *white {
		player = othello.WHITE
	}

	board.Print(player)
	fmt.Printf("black: %d white: %d evaluation for %s: %d\n",
		board.CountDiscs(othello.BLACK), board.CountDiscs(othello.WHITE), player, othello.EvaluateBoard(board, player))
}
