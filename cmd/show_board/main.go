package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/checkers/internal/checkers"
)

func main() {
	boardString := flag.String("board", "", "the board to show, 32 dark squares followed by -w or -b")
	cell := flag.Int("cell", checkers.NoCell, "mark the destinations of the piece on this cell")
	flag.Parse()

	state := checkers.NewState()
	if *boardString != "" {
		var err error
		state, err = checkers.NewStateFromString(*boardString)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	var marked []checkers.Move
	if *cell != checkers.NoCell {
		game := checkers.NewGameFromState(state)
		moves, err := game.Destinations(*cell)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		marked = moves
	}

	state.Board.Print(marked)
	fmt.Printf("%s to move\n", state.Turn)
}
