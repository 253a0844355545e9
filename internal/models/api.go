package models

import (
	"errors"
	"time"

	"github.com/lk16/checkers/internal/checkers"
)

// ClickRequest is the payload of a click on a board cell. Either Cell or both Row and Col are set.
type ClickRequest struct {
	Cell *int `json:"cell"`
	Row  *int `json:"row"`
	Col  *int `json:"col"`
}

var ErrMissingCell = errors.New("either cell or row and col must be set")

// Index returns the board index the request refers to.
func (r ClickRequest) Index() (int, error) {
	if r.Cell != nil {
		return *r.Cell, nil
	}
	if r.Row == nil || r.Col == nil {
		return 0, ErrMissingCell
	}
	if !checkers.InBounds(*r.Row, *r.Col) {
		return 0, checkers.ErrInvalidCell
	}
	return checkers.Index(*r.Row, *r.Col), nil
}

// GameView is the public representation of a session.
type GameView struct {
	ID                 string            `json:"id"`
	State              checkers.Snapshot `json:"state"`
	Board              string            `json:"board"`
	Selected           *int              `json:"selected"`
	Continuing         bool              `json:"continuing"`
	Highlighted        []checkers.Move   `json:"highlighted"`
	CapturingMandatory bool              `json:"capturing_mandatory"`
	Turns              int               `json:"turns"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// NewGameView builds the view of a session.
func NewGameView(s Session) GameView {
	view := GameView{
		ID:                 s.ID,
		State:              s.Snapshot,
		Board:              checkers.Board(s.Snapshot.Cells).String(),
		Continuing:         len(s.Progress) > 1,
		Highlighted:        s.Highlighted,
		CapturingMandatory: s.CapturingMandatory,
		Turns:              s.Turns,
		UpdatedAt:          s.UpdatedAt,
	}

	if current := s.Progress.Current(); current != checkers.NoCell {
		view.Selected = &current
	}

	if view.Highlighted == nil {
		view.Highlighted = []checkers.Move{}
	}

	return view
}

// ClickResponse is returned after a click.
type ClickResponse struct {
	Moved     *checkers.Move  `json:"moved"`
	Promoted  bool            `json:"promoted"`
	TurnEnded bool            `json:"turn_ended"`
	Outcome   checkers.Winner `json:"outcome,omitempty"`
	Game      GameView        `json:"game"`
}

// DestinationsResponse lists the candidates of a cell.
type DestinationsResponse struct {
	Cell         int             `json:"cell"`
	Destinations []checkers.Move `json:"destinations"`
}

// FinishedGame is a completed game in the archive. A game that is restarted or undone and then
// finished again gets a new ID, GameID stays the ID of the session.
type FinishedGame struct {
	ID         string    `json:"id"`
	GameID     string    `json:"game_id"`
	Winner     string    `json:"winner"`
	Board      string    `json:"board"`
	Turns      int       `json:"turns"`
	FinishedAt time.Time `json:"finished_at"`
}

// ArchiveStats counts finished games by result.
type ArchiveStats struct {
	Total     int `json:"total"      db:"total"`
	WhiteWins int `json:"white_wins" db:"white_wins"`
	BlackWins int `json:"black_wins" db:"black_wins"`
	Draws     int `json:"draws"      db:"draws"`
}

// NewClickResponse builds the response to a click.
func NewClickResponse(result checkers.ClickResult, s Session) ClickResponse {
	resp := ClickResponse{
		Moved:     result.Moved,
		Promoted:  result.Promoted,
		TurnEnded: result.TurnEnded,
		Game:      NewGameView(s),
	}

	if result.Evaluation != nil {
		resp.Outcome = result.Evaluation.Outcome
	}

	return resp
}

// NewDestinationsResponse builds the response listing the candidates of a cell.
func NewDestinationsResponse(cell int, moves []checkers.Move) DestinationsResponse {
	if moves == nil {
		moves = []checkers.Move{}
	}
	return DestinationsResponse{Cell: cell, Destinations: moves}
}
