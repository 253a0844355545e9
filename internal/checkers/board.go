package checkers

import (
	"fmt"
	"strings"
)

// Board holds the 64 squares in row-major order.
type Board [NumCells]Cell

// Index flattens a row and column to a board index.
func Index(row, col int) int {
	return row*Size + col
}

// RowCol splits a board index into its row and column.
func RowCol(index int) (int, int) {
	return index / Size, index % Size
}

// InBounds reports whether the coordinates lie on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsDark reports whether the square at the given index is playable.
func IsDark(index int) bool {
	if index < 0 || index >= NumCells {
		return false
	}
	row, col := RowCol(index)
	return (row+col)%2 == 1
}

// NewBoardEmpty creates a board with all dark squares free.
func NewBoardEmpty() Board {
	var b Board
	for i := range NumCells {
		if IsDark(i) {
			b[i] = Free
		}
	}
	return b
}

// NewBoardStart creates a board with twelve men per side on their three home rows.
func NewBoardStart() Board {
	b := NewBoardEmpty()
	for i := range NumCells {
		if !IsDark(i) {
			continue
		}
		row, _ := RowCol(i)
		switch {
		case row < 3:
			b[i] = BlackMan
		case row > 4:
			b[i] = WhiteMan
		}
	}
	return b
}

// At returns the cell at the given coordinates, or Absent when they are off the board.
func (b *Board) At(row, col int) Cell {
	if !InBounds(row, col) {
		return Absent
	}
	return b[Index(row, col)]
}

// Get returns the cell at the given index, or Absent when the index is off the board.
func (b *Board) Get(index int) Cell {
	if index < 0 || index >= NumCells {
		return Absent
	}
	return b[index]
}

// Step returns the index n diagonal steps away, and false when that leaves the board.
func Step(index int, d Direction, n int) (int, bool) {
	row, col := RowCol(index)
	row += n * d.DRow
	col += n * d.DCol
	if !InBounds(row, col) {
		return NoCell, false
	}
	return Index(row, col), true
}

// Count returns the number of men and kings owned by the side.
func (b *Board) Count(side Side) (men, kings int) {
	for _, c := range b {
		if !side.Owns(c) {
			continue
		}
		if c.IsKing() {
			kings++
		} else {
			men++
		}
	}
	return men, kings
}

// Pieces returns the indices of all cells owned by the side, in board order.
func (b *Board) Pieces(side Side) []int {
	pieces := make([]int, 0, 12) //nolint:mnd
	for i, c := range b {
		if side.Owns(c) {
			pieces = append(pieces, i)
		}
	}
	return pieces
}

var cellRunes = map[Cell]byte{
	Free:      '.',
	WhiteMan:  'w',
	BlackMan:  'b',
	WhiteKing: 'W',
	BlackKing: 'B',
}

// String returns the 32 dark squares in board order, one character each.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(NumCells / 2)
	for i, c := range b {
		if !IsDark(i) {
			continue
		}
		r, ok := cellRunes[c]
		if !ok {
			r = '?'
		}
		sb.WriteByte(r)
	}
	return sb.String()
}

// NewBoardFromString parses the output of Board.String.
func NewBoardFromString(s string) (Board, error) {
	if len(s) != NumCells/2 {
		return Board{}, fmt.Errorf("board string must be %d characters long, got %d", NumCells/2, len(s))
	}

	var b Board
	dark := 0
	for i := range NumCells {
		if !IsDark(i) {
			continue
		}

		ch := s[dark]
		dark++

		found := false
		for cell, r := range cellRunes {
			if r == ch {
				b[i] = cell
				found = true
				break
			}
		}
		if !found {
			return Board{}, fmt.Errorf("invalid cell character %q at square %d", ch, i)
		}
	}

	return b, nil
}

// ASCIIArtLines returns the ascii art lines for the board, marking the given destinations.
func (b *Board) ASCIIArtLines(marked []Move) []string {
	marks := make(map[int]bool, len(marked))
	for _, m := range marked {
		marks[m.To] = true
	}

	lines := make([]string, Size+2)
	lines[0] = "+-0-1-2-3-4-5-6-7-+"
	for row := range Size {
		line := fmt.Sprintf("%d ", row)

		for col := range Size {
			index := Index(row, col)

			switch c := b[index]; {
			case c == WhiteMan:
				line += "○ "
			case c == BlackMan:
				line += "● "
			case c == WhiteKing:
				line += "♔ "
			case c == BlackKing:
				line += "♚ "
			case marks[index]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}
	lines[Size+1] = "+-----------------+"

	return lines
}

// Print prints the board to the console, marking the given destinations. This is used for debugging.
func (b *Board) Print(marked []Move) {
	for _, line := range b.ASCIIArtLines(marked) {
		fmt.Println(line)
	}
}
