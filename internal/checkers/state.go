package checkers

import (
	"fmt"
)

// State is everything that persists between turns: board, side to move, result and draw counter.
type State struct {
	Board       Board
	Turn        Side
	Winner      Winner
	DrawCounter *DrawCounter
}

// NewState creates the state of a new game. White moves first.
func NewState() State {
	return State{
		Board: NewBoardStart(),
		Turn:  White,
	}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	clone := s
	if s.DrawCounter != nil {
		counter := *s.DrawCounter
		clone.DrawCounter = &counter
	}
	return clone
}

// Equal checks if two states are structurally equal.
func (s State) Equal(other State) bool {
	if s.Board != other.Board || s.Turn != other.Turn || s.Winner != other.Winner {
		return false
	}
	if s.DrawCounter == nil || other.DrawCounter == nil {
		return s.DrawCounter == nil && other.DrawCounter == nil
	}
	return *s.DrawCounter == *other.DrawCounter
}

// IsOver reports whether the game has a winner or ended in a draw.
func (s State) IsOver() bool {
	return s.Winner != NoWinner
}

// String returns the board string followed by "-w" or "-b" for the side to move.
func (s State) String() string {
	turn := "-w"
	if s.Turn == Black {
		turn = "-b"
	}
	return s.Board.String() + turn
}

// NewStateFromString parses the output of State.String. Winner and draw counter are left unset.
func NewStateFromString(s string) (State, error) {
	if len(s) != NumCells/2+2 {
		return State{}, fmt.Errorf("state string must be %d characters long, got %d", NumCells/2+2, len(s))
	}

	board, err := NewBoardFromString(s[:NumCells/2])
	if err != nil {
		return State{}, fmt.Errorf("invalid board: %w", err)
	}

	var turn Side
	switch s[NumCells/2:] {
	case "-w":
		turn = White
	case "-b":
		turn = Black
	default:
		return State{}, fmt.Errorf("invalid turn: %s", s[NumCells/2:])
	}

	return State{Board: board, Turn: turn}, nil
}
