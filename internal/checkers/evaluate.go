package checkers

// Evaluation is the result of closing a turn.
type Evaluation struct {
	// CapturingMandatory is true when the side to move has a capture somewhere on the board.
	CapturingMandatory bool

	// Outcome is NoWinner unless the game just ended.
	Outcome Winner
}

// Evaluate closes a turn. It must run once, after Turn has been switched to the side that
// moves next. It sets Winner when that side has no legal move or when the draw counter has
// expired, and updates the draw counter.
func (s *State) Evaluate() Evaluation {
	legal := s.Board.LegalMoves(s.Turn, false)
	if len(legal) == 0 {
		s.Winner = s.Turn.Opponent().Wins()
		return Evaluation{Outcome: s.Winner}
	}

	eval := Evaluation{CapturingMandatory: hasCapture(legal)}

	if s.DrawCounter == nil {
		if men, kings := s.Board.Count(s.Turn); men == 0 && kings == 1 {
			s.DrawCounter = &DrawCounter{Count: 1, Side: s.Turn}
		}
		return eval
	}

	if s.DrawCounter.Count >= DrawLimit {
		s.Winner = Draw
		eval.Outcome = Draw
		return eval
	}

	if s.Turn == s.DrawCounter.Side {
		s.DrawCounter.Count++
	}

	return eval
}

// MandatoryCapture reports whether the side to move has a capture anywhere on the board.
// Unlike Evaluate it has no side effects.
func (s *State) MandatoryCapture() bool {
	return hasCapture(s.Board.LegalMoves(s.Turn, false))
}

// RecordCapture resets the draw counter when the side it tracks captures.
func (s *State) RecordCapture() {
	if s.DrawCounter != nil && s.Turn == s.DrawCounter.Side {
		s.DrawCounter.Count = 1
	}
}
