package checkers

import "fmt"

// Game drives the turn loop on top of a State: selecting a piece, playing its legs one click
// at a time and closing the turn. It is not safe for concurrent use.
type Game struct {
	State State

	// Progress is empty until a piece with destinations is selected.
	Progress Progress

	// Highlighted are the candidates the next click may choose from.
	Highlighted []Move

	// CapturingMandatory is the capture flag of the last evaluation.
	CapturingMandatory bool
}

// ClickResult describes what a click did.
type ClickResult struct {
	Highlighted []Move
	Moved       *Move
	Promoted    bool
	TurnEnded   bool
	Evaluation  *Evaluation
}

// NewGame creates a game in the starting position.
func NewGame() *Game {
	return NewGameFromState(NewState())
}

// NewGameFromState creates a game continuing from a stored state, with nothing selected.
func NewGameFromState(state State) *Game {
	return &Game{
		State:              state,
		CapturingMandatory: state.MandatoryCapture(),
	}
}

// Destinations returns the opening-step candidates of a cell without selecting it.
func (g *Game) Destinations(index int) ([]Move, error) {
	if index < 0 || index >= NumCells {
		return nil, ErrInvalidCell
	}
	return g.State.Board.Destinations(g.State.Turn, index, true, nil, g.CapturingMandatory), nil
}

// Continuing reports whether the current turn is in the middle of a capture sequence.
func (g *Game) Continuing() bool {
	return !g.Progress.Opening()
}

// Click handles a click on a board cell. Without a selection it selects the piece; with a
// selection it plays the highlighted candidate on that cell, or reselects when the cell is
// not highlighted and no leg has been played yet.
func (g *Game) Click(index int) (ClickResult, error) {
	if g.State.IsOver() {
		return ClickResult{}, ErrGameOver
	}

	if index < 0 || index >= NumCells {
		return ClickResult{}, fmt.Errorf("click on %d: %w", index, ErrInvalidCell)
	}

	if len(g.Progress) == 0 {
		return g.selectCell(index), nil
	}

	for _, m := range g.Highlighted {
		if m.To == index {
			return g.play(m), nil
		}
	}

	if g.Continuing() {
		return ClickResult{}, ErrIllegalContinuation
	}

	g.Deselect()
	return g.selectCell(index), nil
}

// Deselect drops the selection. It must not be called in the middle of a capture sequence.
func (g *Game) Deselect() {
	g.Progress = nil
	g.Highlighted = nil
}

func (g *Game) selectCell(index int) ClickResult {
	if !g.State.Turn.Owns(g.State.Board[index]) {
		return ClickResult{}
	}

	moves := g.State.Board.Destinations(g.State.Turn, index, true, nil, g.CapturingMandatory)
	g.Highlighted = moves
	if len(moves) > 0 {
		g.Progress = NewProgress(index)
	}

	return ClickResult{Highlighted: moves}
}

func (g *Game) play(m Move) ClickResult {
	from := g.Progress.Current()
	promoted := g.State.Board.Apply(from, m)
	g.Progress = append(g.Progress, m)

	result := ClickResult{Moved: &m, Promoted: promoted}

	if m.IsCapture() {
		g.State.RecordCapture()

		next := g.State.Board.Destinations(g.State.Turn, m.To, false, g.Progress, g.CapturingMandatory)
		if len(next) > 0 {
			g.Highlighted = next
			result.Highlighted = next
			return result
		}
	}

	g.Deselect()
	g.State.Turn = g.State.Turn.Opponent()

	eval := g.State.Evaluate()
	g.CapturingMandatory = eval.CapturingMandatory

	result.TurnEnded = true
	result.Evaluation = &eval
	return result
}
