package checkers

import "fmt"

const (
	Size      = 8
	NumCells  = Size * Size
	NoCell    = -1
	DrawLimit = 12
)

// Cell is the content of a single square of the board.
type Cell int8

const (
	Absent Cell = iota // light square, never addressed by a move
	Free
	WhiteMan
	BlackMan
	WhiteKing
	BlackKing
)

// IsPiece reports whether the cell holds a man or a king.
func (c Cell) IsPiece() bool {
	return c >= WhiteMan && c <= BlackKing
}

// IsKing reports whether the cell holds a king of either side.
func (c Cell) IsKing() bool {
	return c == WhiteKing || c == BlackKing
}

// IsMan reports whether the cell holds a man of either side.
func (c Cell) IsMan() bool {
	return c == WhiteMan || c == BlackMan
}

// Crowned returns the king of the same side, or the cell itself if it is not a man.
func (c Cell) Crowned() Cell {
	switch c {
	case WhiteMan:
		return WhiteKing
	case BlackMan:
		return BlackKing
	default:
		return c
	}
}

func (c Cell) String() string {
	switch c {
	case Absent:
		return "absent"
	case Free:
		return "free"
	case WhiteMan:
		return "w"
	case BlackMan:
		return "b"
	case WhiteKing:
		return "W"
	case BlackKing:
		return "B"
	default:
		return fmt.Sprintf("Cell(%d)", int8(c))
	}
}

// Side is one of the two players.
type Side int8

const (
	White Side = iota
	Black
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return White + Black - s
}

// Owns reports whether the cell holds a man or king of this side.
func (s Side) Owns(c Cell) bool {
	if s == White {
		return c == WhiteMan || c == WhiteKing
	}
	return c == BlackMan || c == BlackKing
}

// Man returns the man marker of this side.
func (s Side) Man() Cell {
	if s == White {
		return WhiteMan
	}
	return BlackMan
}

// King returns the king marker of this side.
func (s Side) King() Cell {
	if s == White {
		return WhiteKing
	}
	return BlackKing
}

// Forward is the row delta of a plain man step.
func (s Side) Forward() int {
	if s == White {
		return -1
	}
	return 1
}

// PromotionRow is the row on which men of this side are crowned.
func (s Side) PromotionRow() int {
	if s == White {
		return 0
	}
	return Size - 1
}

// Wins returns the winner value for a game won by this side.
func (s Side) Wins() Winner {
	if s == White {
		return WhiteWins
	}
	return BlackWins
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// ParseSide is the inverse of Side.String.
func ParseSide(s string) (Side, error) {
	switch s {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	default:
		return White, fmt.Errorf("invalid side: %q", s)
	}
}

// SideOf returns the owner of a piece. The boolean is false for empty and absent cells.
func SideOf(c Cell) (Side, bool) {
	switch c {
	case WhiteMan, WhiteKing:
		return White, true
	case BlackMan, BlackKing:
		return Black, true
	default:
		return White, false
	}
}

// Winner is the terminal state of a game.
type Winner int8

const (
	NoWinner Winner = iota
	WhiteWins
	BlackWins
	Draw
)

func (w Winner) String() string {
	switch w {
	case WhiteWins:
		return "white"
	case BlackWins:
		return "black"
	case Draw:
		return "draw"
	default:
		return ""
	}
}

// ParseWinner is the inverse of Winner.String.
func ParseWinner(s string) (Winner, error) {
	switch s {
	case "":
		return NoWinner, nil
	case "white":
		return WhiteWins, nil
	case "black":
		return BlackWins, nil
	case "draw":
		return Draw, nil
	default:
		return NoWinner, fmt.Errorf("invalid winner: %q", s)
	}
}

// Direction is a diagonal step expressed as row and column deltas.
type Direction struct {
	DRow int
	DCol int
}

var (
	SouthEast = Direction{DRow: 1, DCol: 1}   // +9
	SouthWest = Direction{DRow: 1, DCol: -1}  // +7
	NorthWest = Direction{DRow: -1, DCol: -1} // -9
	NorthEast = Direction{DRow: -1, DCol: 1}  // -7

	// Directions lists the diagonals in the order candidates are generated.
	Directions = [4]Direction{SouthEast, SouthWest, NorthWest, NorthEast}
)

// IsZero reports whether the direction is unset, as for the origin of a move.
func (d Direction) IsZero() bool {
	return d.DRow == 0 && d.DCol == 0
}

// Reverse returns the opposite diagonal.
func (d Direction) Reverse() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// Delta flattens the direction to a row-major index offset.
func (d Direction) Delta() int {
	return d.DRow*Size + d.DCol
}

// DirectionFromDelta parses a flat index offset, accepting only the four diagonals and zero.
func DirectionFromDelta(delta int) (Direction, error) {
	switch delta {
	case 0:
		return Direction{}, nil
	case 9:
		return SouthEast, nil
	case 7:
		return SouthWest, nil
	case -9:
		return NorthWest, nil
	case -7:
		return NorthEast, nil
	default:
		return Direction{}, fmt.Errorf("invalid direction delta: %d", delta)
	}
}

// Move is a candidate destination for the piece currently being moved.
type Move struct {
	To        int
	Captured  int // NoCell when the move does not capture
	Direction Direction
}

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoCell
}

func (m Move) String() string {
	if m.IsCapture() {
		return fmt.Sprintf("x%d(%d)", m.To, m.Captured)
	}
	return fmt.Sprintf("-%d", m.To)
}

// DrawCounter tracks moves made by a side reduced to a lone king.
type DrawCounter struct {
	Count int  `json:"count"`
	Side  Side `json:"side"`
}
