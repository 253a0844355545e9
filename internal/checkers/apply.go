package checkers

// Apply moves the piece on from to m.To, crowning a man that reaches its promotion row and
// removing the captured piece, if any. It reports whether the piece was promoted.
//
// The move is not validated: it must come from Destinations for the same board.
func (b *Board) Apply(from int, m Move) bool {
	piece := b[from]
	b[m.To] = piece
	b[from] = Free

	promoted := false
	if side, ok := SideOf(piece); ok && piece.IsMan() {
		if row, _ := RowCol(m.To); row == side.PromotionRow() {
			b[m.To] = piece.Crowned()
			promoted = true
		}
	}

	if m.IsCapture() {
		b[m.Captured] = Free
	}

	return promoted
}
