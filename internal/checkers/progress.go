package checkers

// Progress is the move being played out in the current turn. The first entry is the
// selected piece; every later entry is a leg already applied to the board.
type Progress []Move

// NewProgress starts a move from the given cell.
func NewProgress(from int) Progress {
	return Progress{{To: from, Captured: NoCell}}
}

// Opening reports whether no leg has been played yet.
func (p Progress) Opening() bool {
	return len(p) <= 1
}

// Current returns the cell the moving piece stands on, or NoCell if nothing is selected.
func (p Progress) Current() int {
	if len(p) == 0 {
		return NoCell
	}
	return p[len(p)-1].To
}

// LastDirection returns the direction of the previous leg, zero at the opening step.
func (p Progress) LastDirection() Direction {
	if len(p) == 0 {
		return Direction{}
	}
	return p[len(p)-1].Direction
}
