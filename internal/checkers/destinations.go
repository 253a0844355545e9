package checkers

// Destinations returns the candidates for the piece at from. Plain moves are only generated on
// the opening step of a turn when no capture is mandatory anywhere on the board. When
// continuing a capture, the reverse of the previous leg's direction is excluded.
//
// A cell not owned by turn yields no candidates.
func (b *Board) Destinations(turn Side, from int, opening bool, progress Progress, mandatory bool) []Move {
	piece := b.Get(from)
	if !turn.Owns(piece) {
		return nil
	}

	var banned Direction
	if !opening {
		banned = progress.LastDirection().Reverse()
	}

	plain := opening && !mandatory

	if piece.IsMan() {
		return b.manDestinations(turn, from, plain, banned)
	}
	return b.kingDestinations(turn, from, plain, banned)
}

func (b *Board) manDestinations(turn Side, from int, plain bool, banned Direction) []Move {
	moves := make([]Move, 0, 4) //nolint:mnd

	if plain {
		for _, dCol := range [2]int{-1, 1} {
			d := Direction{DRow: turn.Forward(), DCol: dCol}
			to, ok := Step(from, d, 1)
			if ok && b[to] == Free {
				moves = append(moves, Move{To: to, Captured: NoCell, Direction: d})
			}
		}
	}

	opponent := turn.Opponent()
	for _, d := range Directions {
		if d == banned {
			continue
		}

		over, ok := Step(from, d, 1)
		if !ok || !opponent.Owns(b[over]) {
			continue
		}

		to, ok := Step(from, d, 2) //nolint:mnd
		if !ok || b[to] != Free {
			continue
		}

		moves = append(moves, Move{To: to, Captured: over, Direction: d})
	}

	return moves
}

func (b *Board) kingDestinations(turn Side, from int, plain bool, banned Direction) []Move {
	moves := make([]Move, 0, 16) //nolint:mnd
	opponent := turn.Opponent()

	for _, d := range Directions {
		if d == banned {
			continue
		}

		captured := NoCell
	slide:
		for n := 1; ; n++ {
			to, ok := Step(from, d, n)
			if !ok {
				break
			}

			switch c := b[to]; {
			case c == Free:
				if captured != NoCell {
					moves = append(moves, Move{To: to, Captured: captured, Direction: d})
				} else if plain {
					moves = append(moves, Move{To: to, Captured: NoCell, Direction: d})
				}
			case captured == NoCell && opponent.Owns(c):
				landing, ok := Step(from, d, n+1)
				if !ok || b[landing] != Free {
					break slide
				}
				captured = to
				moves = append(moves, Move{To: landing, Captured: captured, Direction: d})
				n++
			default:
				break slide
			}
		}
	}

	return b.filterContinuing(turn, moves)
}

// filterContinuing keeps only the king captures whose landing square allows another capture,
// when at least one such capture exists. It looks a single capture ahead.
func (b *Board) filterContinuing(turn Side, moves []Move) []Move {
	continuing := make([]Move, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture() && b.kingCanCapture(turn, m.To, m.Direction.Reverse()) {
			continuing = append(continuing, m)
		}
	}

	if len(continuing) == 0 {
		return moves
	}
	return continuing
}

// kingCanCapture reports whether a king of turn standing on from could capture in any
// direction other than banned.
func (b *Board) kingCanCapture(turn Side, from int, banned Direction) bool {
	opponent := turn.Opponent()

	for _, d := range Directions {
		if d == banned {
			continue
		}

		for n := 1; ; n++ {
			to, ok := Step(from, d, n)
			if !ok {
				break
			}

			c := b[to]
			if c == Free {
				continue
			}

			if opponent.Owns(c) {
				landing, ok := Step(from, d, n+1)
				if ok && b[landing] == Free {
					return true
				}
			}
			break
		}
	}

	return false
}

// LegalMoves returns the opening-step candidates of every piece of side that has at least one.
func (b *Board) LegalMoves(side Side, mandatory bool) map[int][]Move {
	legal := make(map[int][]Move)
	for _, from := range b.Pieces(side) {
		if moves := b.Destinations(side, from, true, nil, mandatory); len(moves) > 0 {
			legal[from] = moves
		}
	}
	return legal
}

func hasCapture(legal map[int][]Move) bool {
	for _, moves := range legal {
		for _, m := range moves {
			if m.IsCapture() {
				return true
			}
		}
	}
	return false
}
